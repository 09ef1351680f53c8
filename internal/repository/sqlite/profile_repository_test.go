package sqlite_test

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/suite"
	"github.com/vocabree/vocabree-server/internal/models"
	"github.com/vocabree/vocabree-server/internal/repository"
	"github.com/vocabree/vocabree-server/internal/repository/sqlite"
	"github.com/vocabree/vocabree-server/internal/testutil"
)

type ProfileRepositorySuite struct {
	suite.Suite
	db   *sql.DB
	repo repository.ProfileRepository
}

func (s *ProfileRepositorySuite) SetupTest() {
	s.db = testutil.NewTestDB(s.T())
	s.repo = sqlite.NewProfileRepository(s.db)
}

func (s *ProfileRepositorySuite) TearDownTest() {
	testutil.MustClose(s.T(), s.db)
}

func newProfile(id string) models.UserProfile {
	return models.UserProfile{
		ID:           id,
		DisplayName:  "Asha",
		DailyXPGoal:  20,
		Achievements: []string{},
		Settings:     models.DefaultSettings(),
	}
}

func (s *ProfileRepositorySuite) TestUpsertAndGet() {
	ctx := context.Background()

	created, err := s.repo.Upsert(ctx, newProfile("u1"))
	s.Require().NoError(err)
	s.Equal("u1", created.ID)
	s.Equal("Asha", created.DisplayName)
	s.Equal(20, created.DailyXPGoal)
	s.Empty(created.Achievements)
	s.True(created.Settings.SoundEnabled)

	got, err := s.repo.Get(ctx, "u1")
	s.Require().NoError(err)
	s.Require().NotNil(got)
	s.Equal(created.ID, got.ID)
}

func (s *ProfileRepositorySuite) TestGetMissingReturnsNil() {
	got, err := s.repo.Get(context.Background(), "nobody")
	s.Require().NoError(err)
	s.Nil(got)
}

func (s *ProfileRepositorySuite) TestUpsertExistingKeepsTotals() {
	ctx := context.Background()

	_, err := s.repo.Upsert(ctx, newProfile("u1"))
	s.Require().NoError(err)
	s.Require().NoError(s.repo.UpdateTotals(ctx, "u1", 300, 4, 9))

	p := newProfile("u1")
	p.DisplayName = "Asha K"
	updated, err := s.repo.Upsert(ctx, p)
	s.Require().NoError(err)
	s.Equal("Asha K", updated.DisplayName)
	s.Equal(300, updated.TotalXP)
	s.Equal(4, updated.CurrentStreak)
	s.Equal(9, updated.LongestStreak)
}

func (s *ProfileRepositorySuite) TestUpdateAchievements() {
	ctx := context.Background()

	_, err := s.repo.Upsert(ctx, newProfile("u1"))
	s.Require().NoError(err)
	s.Require().NoError(s.repo.UpdateAchievements(ctx, "u1", []string{"first_lesson", "week_warrior"}))

	got, err := s.repo.Get(ctx, "u1")
	s.Require().NoError(err)
	s.Equal([]string{"first_lesson", "week_warrior"}, got.Achievements)
}

func (s *ProfileRepositorySuite) TestUpdateSettings() {
	ctx := context.Background()

	_, err := s.repo.Upsert(ctx, newProfile("u1"))
	s.Require().NoError(err)

	settings := models.DefaultSettings()
	settings.SoundEnabled = false
	settings.NotificationTime = "08:30"
	s.Require().NoError(s.repo.UpdateSettings(ctx, "u1", 50, settings))

	got, err := s.repo.Get(ctx, "u1")
	s.Require().NoError(err)
	s.Equal(50, got.DailyXPGoal)
	s.False(got.Settings.SoundEnabled)
	s.Equal("08:30", got.Settings.NotificationTime)
}

func TestProfileRepositorySuite(t *testing.T) {
	suite.Run(t, new(ProfileRepositorySuite))
}
