package services

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/vocabree/vocabree-server/internal/content"
	apperrors "github.com/vocabree/vocabree-server/internal/errors"
	"github.com/vocabree/vocabree-server/internal/models"
	"github.com/vocabree/vocabree-server/internal/repository"
	"github.com/vocabree/vocabree-server/internal/repository/memory"
	"github.com/vocabree/vocabree-server/internal/testutil/mocks"
)

// testNow is mid-morning so time-of-day achievements stay out of the way.
var testNow = time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC)

func newProgressFixture(t *testing.T) (ProgressService, repository.ProfileRepository, repository.ProgressRepository) {
	t.Helper()
	profiles := memory.NewProfileRepository()
	progress := memory.NewProgressRepository()
	svc := NewProgressService(profiles, progress, content.NewStaticProvider())
	svc.(*progressService).now = func() time.Time { return testNow }

	_, err := profiles.Upsert(context.Background(), models.UserProfile{
		ID:           "u1",
		DisplayName:  "Asha",
		DailyXPGoal:  20,
		Achievements: []string{},
		Settings:     models.DefaultSettings(),
	})
	require.NoError(t, err)
	return svc, profiles, progress
}

func TestAwardXP_FirstAward(t *testing.T) {
	svc, _, _ := newProgressFixture(t)

	result, err := svc.AwardXP(context.Background(), "u1", "hindi", 10, 0, true)
	require.NoError(t, err)

	assert.Equal(t, 10, result.TotalXP)
	assert.Equal(t, 1, result.NewLevel)
	assert.False(t, result.LeveledUp)
	assert.Equal(t, 1, result.CurrentStreak)
	assert.Equal(t, 1, result.LongestStreak)
	assert.Contains(t, result.NewAchievements, "first_lesson")
}

func TestAwardXP_NegativeAmountsContributeNothing(t *testing.T) {
	svc, _, _ := newProgressFixture(t)

	result, err := svc.AwardXP(context.Background(), "u1", "hindi", -10, -5, false)
	require.NoError(t, err)

	assert.Equal(t, 0, result.TotalXP)
	assert.Equal(t, 1, result.CurrentStreak)
}

func TestAwardXP_LevelUp(t *testing.T) {
	svc, _, _ := newProgressFixture(t)

	result, err := svc.AwardXP(context.Background(), "u1", "hindi", 400, 0, false)
	require.NoError(t, err)

	assert.Equal(t, 400, result.TotalXP)
	assert.Equal(t, 2, result.NewLevel)
	assert.True(t, result.LeveledUp)
	assert.Equal(t, 500, result.TotalXP+result.XPToNextLevel)
}

func TestAwardXP_SameDayDoesNotDoubleCountStreak(t *testing.T) {
	svc, _, _ := newProgressFixture(t)
	ctx := context.Background()

	_, err := svc.AwardXP(ctx, "u1", "hindi", 10, 0, false)
	require.NoError(t, err)
	result, err := svc.AwardXP(ctx, "u1", "hindi", 10, 0, false)
	require.NoError(t, err)
	assert.Equal(t, 1, result.CurrentStreak)

	svc.(*progressService).now = func() time.Time { return testNow.AddDate(0, 0, 1) }
	result, err = svc.AwardXP(ctx, "u1", "hindi", 10, 0, false)
	require.NoError(t, err)
	assert.Equal(t, 2, result.CurrentStreak)
}

func TestAwardXP_UnknownUser(t *testing.T) {
	svc, _, _ := newProgressFixture(t)

	_, err := svc.AwardXP(context.Background(), "nobody", "hindi", 10, 0, false)
	require.Error(t, err)
	appErr, ok := err.(*apperrors.AppError)
	require.True(t, ok)
	assert.Equal(t, apperrors.ErrCodeNotFound, appErr.Code)
}

func TestAwardXP_ReconcilesProfileAcrossLanguages(t *testing.T) {
	svc, profiles, _ := newProgressFixture(t)
	ctx := context.Background()

	_, err := svc.AwardXP(ctx, "u1", "hindi", 100, 0, false)
	require.NoError(t, err)
	_, err = svc.AwardXP(ctx, "u1", "tamil", 40, 5, false)
	require.NoError(t, err)

	profile, err := profiles.Get(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, 145, profile.TotalXP)
	assert.Equal(t, 1, profile.CurrentStreak)
}

func TestAwardXP_PrimaryWriteFailure(t *testing.T) {
	profiles := new(mocks.MockProfileRepository)
	progress := new(mocks.MockProgressRepository)
	svc := NewProgressService(profiles, progress, content.NewStaticProvider())
	svc.(*progressService).now = func() time.Time { return testNow }

	profiles.On("Get", mock.Anything, "u1").Return(&models.UserProfile{ID: "u1"}, nil)
	progress.On("Get", mock.Anything, "u1", "hindi").Return(nil, nil)
	progress.On("Upsert", mock.Anything, mock.Anything).Return(fmt.Errorf("disk full"))

	_, err := svc.AwardXP(context.Background(), "u1", "hindi", 10, 0, false)
	require.Error(t, err)
	appErr, ok := err.(*apperrors.AppError)
	require.True(t, ok)
	assert.Equal(t, apperrors.ErrCodeProgressUpdateFailed, appErr.Code)
	assert.Equal(t, 500, appErr.Status)
}

func TestAwardXP_ReconciliationFailureIsNonFatal(t *testing.T) {
	profiles := new(mocks.MockProfileRepository)
	progress := new(mocks.MockProgressRepository)
	svc := NewProgressService(profiles, progress, content.NewStaticProvider())
	svc.(*progressService).now = func() time.Time { return testNow }

	profiles.On("Get", mock.Anything, "u1").Return(&models.UserProfile{ID: "u1"}, nil)
	progress.On("Get", mock.Anything, "u1", "hindi").Return(nil, nil)
	progress.On("Upsert", mock.Anything, mock.Anything).Return(nil)
	progress.On("ListForUser", mock.Anything, mock.Anything).Return([]models.Progress{}, nil)
	profiles.On("UpdateTotals", mock.Anything, "u1", 0, 0, 0).Return(fmt.Errorf("connection reset"))

	result, err := svc.AwardXP(context.Background(), "u1", "hindi", 10, 0, false)
	require.NoError(t, err)
	assert.Equal(t, 10, result.TotalXP)
}

func TestUpdateSkillProgress(t *testing.T) {
	svc, _, progress := newProgressFixture(t)
	ctx := context.Background()

	accuracy := 80.0
	record, err := svc.UpdateSkillProgress(ctx, "u1", "hindi", SkillUpdate{
		SkillID:    "basics_1",
		Level:      1,
		LessonID:   "hindi_basics_1_l1",
		Accuracy:   &accuracy,
		Vocabulary: []string{"नमस्ते", "धन्यवाद"},
	})
	require.NoError(t, err)

	sp := record.Skills["basics_1"]
	assert.Equal(t, 1, sp.Level)
	assert.Equal(t, []string{"hindi_basics_1_l1"}, sp.CompletedLessons)
	require.NotNil(t, sp.LastPracticed)
	assert.True(t, sp.LastPracticed.Equal(testNow))
	require.NotNil(t, sp.Accuracy)
	assert.InDelta(t, 80.0, *sp.Accuracy, 0.001)
	assert.Equal(t, []string{"नमस्ते", "धन्यवाद"}, record.Vocabulary)

	stored, err := progress.Get(ctx, "u1", "hindi")
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Equal(t, 1, stored.Skills["basics_1"].Level)
}

func TestUpdateSkillProgress_LevelNeverRegresses(t *testing.T) {
	svc, _, _ := newProgressFixture(t)
	ctx := context.Background()

	_, err := svc.UpdateSkillProgress(ctx, "u1", "hindi", SkillUpdate{SkillID: "basics_1", Level: 3})
	require.NoError(t, err)

	record, err := svc.UpdateSkillProgress(ctx, "u1", "hindi", SkillUpdate{SkillID: "basics_1", Level: 1})
	require.NoError(t, err)
	assert.Equal(t, 3, record.Skills["basics_1"].Level)
}

func TestUpdateSkillProgress_CompletedLessonsAreSetSemantics(t *testing.T) {
	svc, _, _ := newProgressFixture(t)
	ctx := context.Background()

	update := SkillUpdate{SkillID: "basics_1", Level: 1, LessonID: "hindi_basics_1_l1", Vocabulary: []string{"नमस्ते"}}
	_, err := svc.UpdateSkillProgress(ctx, "u1", "hindi", update)
	require.NoError(t, err)
	record, err := svc.UpdateSkillProgress(ctx, "u1", "hindi", update)
	require.NoError(t, err)

	assert.Equal(t, []string{"hindi_basics_1_l1"}, record.Skills["basics_1"].CompletedLessons)
	assert.Equal(t, []string{"नमस्ते"}, record.Vocabulary)
}

func TestUpdateSkillProgress_UnknownSkill(t *testing.T) {
	svc, _, _ := newProgressFixture(t)

	_, err := svc.UpdateSkillProgress(context.Background(), "u1", "hindi", SkillUpdate{SkillID: "quantum_mechanics", Level: 1})
	require.Error(t, err)
	appErr, ok := err.(*apperrors.AppError)
	require.True(t, ok)
	assert.Equal(t, apperrors.ErrCodeNotFound, appErr.Code)
}

func TestIsSkillUnlocked(t *testing.T) {
	svc, _, _ := newProgressFixture(t)
	ctx := context.Background()

	unlocked, err := svc.IsSkillUnlocked(ctx, "u1", "hindi", "basics_1")
	require.NoError(t, err)
	assert.True(t, unlocked, "entry skill has no prerequisites")

	unlocked, err = svc.IsSkillUnlocked(ctx, "u1", "hindi", "basics_2")
	require.NoError(t, err)
	assert.False(t, unlocked)

	_, err = svc.UpdateSkillProgress(ctx, "u1", "hindi", SkillUpdate{SkillID: "basics_1", Level: 1})
	require.NoError(t, err)

	unlocked, err = svc.IsSkillUnlocked(ctx, "u1", "hindi", "basics_2")
	require.NoError(t, err)
	assert.True(t, unlocked)
}

func TestPracticeQueue_FreshUser(t *testing.T) {
	svc, _, _ := newProgressFixture(t)

	ranked, err := svc.PracticeQueue(context.Background(), "u1", "hindi")
	require.NoError(t, err)
	require.Len(t, ranked, 1, "only the entry skill is unlocked")
	assert.Equal(t, "basics_1", ranked[0].Skill.ID)
	assert.InDelta(t, 20.0, ranked[0].Priority, 0.001)
}

func TestSkillTree(t *testing.T) {
	svc, _, _ := newProgressFixture(t)
	ctx := context.Background()

	_, err := svc.UpdateSkillProgress(ctx, "u1", "hindi", SkillUpdate{SkillID: "basics_1", Level: 2})
	require.NoError(t, err)

	tree, err := svc.SkillTree(ctx, "u1", "hindi")
	require.NoError(t, err)
	require.Len(t, tree, 5)

	byID := map[string]SkillStatus{}
	for _, status := range tree {
		byID[status.Skill.ID] = status
	}
	assert.True(t, byID["basics_1"].Unlocked)
	require.NotNil(t, byID["basics_1"].Progress)
	assert.Equal(t, 2, byID["basics_1"].Progress.Level)
	assert.True(t, byID["basics_2"].Unlocked)
	assert.False(t, byID["food"].Unlocked)
	assert.Nil(t, byID["food"].Progress)
}

func TestGetProgress_LazilyInitialized(t *testing.T) {
	svc, _, _ := newProgressFixture(t)

	summary, err := svc.GetProgress(context.Background(), "u1", "hindi")
	require.NoError(t, err)
	assert.Equal(t, 1, summary.Level)
	assert.Equal(t, 0, summary.TotalXP)
	assert.Equal(t, 400, summary.XPToNextLevel)
	assert.Empty(t, summary.Skills)
}

func TestGetProgress_UnknownLanguageFallsBack(t *testing.T) {
	svc, _, _ := newProgressFixture(t)

	summary, err := svc.GetProgress(context.Background(), "u1", "klingon")
	require.NoError(t, err)
	assert.Equal(t, "hindi", summary.LanguageID)
}

func TestListProgress(t *testing.T) {
	svc, _, _ := newProgressFixture(t)
	ctx := context.Background()

	_, err := svc.AwardXP(ctx, "u1", "hindi", 100, 0, false)
	require.NoError(t, err)
	_, err = svc.AwardXP(ctx, "u1", "tamil", 30, 0, false)
	require.NoError(t, err)

	summaries, err := svc.ListProgress(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, summaries, 2)
	assert.Equal(t, "hindi", summaries[0].LanguageID)
	assert.Equal(t, "tamil", summaries[1].LanguageID)
}
