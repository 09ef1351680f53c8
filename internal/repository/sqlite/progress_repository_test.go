package sqlite_test

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"github.com/vocabree/vocabree-server/internal/models"
	"github.com/vocabree/vocabree-server/internal/repository"
	"github.com/vocabree/vocabree-server/internal/repository/sqlite"
	"github.com/vocabree/vocabree-server/internal/testutil"
)

type ProgressRepositorySuite struct {
	suite.Suite
	db       *sql.DB
	profiles repository.ProfileRepository
	repo     repository.ProgressRepository
}

func (s *ProgressRepositorySuite) SetupTest() {
	s.db = testutil.NewTestDB(s.T())
	s.profiles = sqlite.NewProfileRepository(s.db)
	s.repo = sqlite.NewProgressRepository(s.db)

	_, err := s.profiles.Upsert(context.Background(), newProfile("u1"))
	s.Require().NoError(err)
}

func (s *ProgressRepositorySuite) TearDownTest() {
	testutil.MustClose(s.T(), s.db)
}

func (s *ProgressRepositorySuite) TestUpsertAndGet() {
	ctx := context.Background()

	now := time.Date(2026, 3, 14, 11, 0, 0, 0, time.UTC)
	accuracy := 85.0
	record := models.NewProgress("u1", "hindi")
	record.Level = 2
	record.TotalXP = 450
	record.CurrentStreak = 5
	record.LongestStreak = 12
	record.LastActiveDate = &now
	record.Skills["basics_1"] = models.SkillProgress{
		Level:            3,
		CompletedLessons: []string{"hindi_basics_1_l1", "hindi_basics_1_l2", "hindi_basics_1_l3"},
		LastPracticed:    &now,
		Accuracy:         &accuracy,
	}
	record.Vocabulary = []string{"नमस्ते", "धन्यवाद"}

	s.Require().NoError(s.repo.Upsert(ctx, record))

	got, err := s.repo.Get(ctx, "u1", "hindi")
	s.Require().NoError(err)
	s.Require().NotNil(got)
	s.Equal(2, got.Level)
	s.Equal(450, got.TotalXP)
	s.Equal(5, got.CurrentStreak)
	s.Equal(12, got.LongestStreak)
	s.Require().NotNil(got.LastActiveDate)
	s.True(got.LastActiveDate.Equal(now))

	sp, ok := got.Skills["basics_1"]
	s.Require().True(ok)
	s.Equal(3, sp.Level)
	s.Len(sp.CompletedLessons, 3)
	s.Require().NotNil(sp.Accuracy)
	s.InDelta(85.0, *sp.Accuracy, 0.001)
	s.Equal([]string{"नमस्ते", "धन्यवाद"}, got.Vocabulary)
}

func (s *ProgressRepositorySuite) TestGetMissingReturnsNil() {
	got, err := s.repo.Get(context.Background(), "u1", "tamil")
	s.Require().NoError(err)
	s.Nil(got)
}

func (s *ProgressRepositorySuite) TestUpsertOverwrites() {
	ctx := context.Background()

	record := models.NewProgress("u1", "hindi")
	record.TotalXP = 10
	s.Require().NoError(s.repo.Upsert(ctx, record))

	record.TotalXP = 25
	record.Level = 1
	s.Require().NoError(s.repo.Upsert(ctx, record))

	got, err := s.repo.Get(ctx, "u1", "hindi")
	s.Require().NoError(err)
	s.Equal(25, got.TotalXP)
}

func (s *ProgressRepositorySuite) TestListForUser() {
	ctx := context.Background()

	for lang, xp := range map[string]int{"hindi": 450, "tamil": 30, "bengali": 120} {
		record := models.NewProgress("u1", lang)
		record.TotalXP = xp
		s.Require().NoError(s.repo.Upsert(ctx, record))
	}

	records, err := s.repo.ListForUser(ctx, models.ProgressFilter{
		UserID:   "u1",
		OrderBy:  "total_xp",
		OrderDir: "DESC",
	})
	s.Require().NoError(err)
	s.Require().Len(records, 3)
	s.Equal("hindi", records[0].LanguageID)
	s.Equal("bengali", records[1].LanguageID)
	s.Equal("tamil", records[2].LanguageID)
}

func (s *ProgressRepositorySuite) TestListForUserLanguageFilter() {
	ctx := context.Background()

	for _, lang := range []string{"hindi", "tamil"} {
		s.Require().NoError(s.repo.Upsert(ctx, models.NewProgress("u1", lang)))
	}

	records, err := s.repo.ListForUser(ctx, models.ProgressFilter{UserID: "u1", LanguageID: "tamil"})
	s.Require().NoError(err)
	s.Require().Len(records, 1)
	s.Equal("tamil", records[0].LanguageID)
}

func (s *ProgressRepositorySuite) TestListForUserPagination() {
	ctx := context.Background()

	for _, lang := range []string{"bengali", "hindi", "tamil"} {
		s.Require().NoError(s.repo.Upsert(ctx, models.NewProgress("u1", lang)))
	}

	records, err := s.repo.ListForUser(ctx, models.ProgressFilter{UserID: "u1", Limit: 2, Offset: 1})
	s.Require().NoError(err)
	s.Require().Len(records, 2)
	s.Equal("hindi", records[0].LanguageID)
	s.Equal("tamil", records[1].LanguageID)
}

func TestProgressRepositorySuite(t *testing.T) {
	suite.Run(t, new(ProgressRepositorySuite))
}
