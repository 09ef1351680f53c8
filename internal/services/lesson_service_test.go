package services

import (
	"context"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vocabree/vocabree-server/internal/content"
	apperrors "github.com/vocabree/vocabree-server/internal/errors"
	"github.com/vocabree/vocabree-server/internal/lesson"
	"github.com/vocabree/vocabree-server/internal/models"
)

func newLessonFixture(t *testing.T) (LessonService, ProgressService) {
	t.Helper()
	progressSvc, _, _ := newProgressFixture(t)
	provider := content.NewStaticProvider()
	svc := NewLessonService(lesson.NewGenerator(provider), progressSvc, provider, rand.New(rand.NewSource(42)))
	return svc, progressSvc
}

func results(total, correct int) []models.ExerciseResult {
	out := make([]models.ExerciseResult, total)
	for i := range out {
		out[i] = models.ExerciseResult{ExerciseID: "ex", Correct: i < correct}
	}
	return out
}

func TestGetLesson(t *testing.T) {
	svc, _ := newLessonFixture(t)

	built, err := svc.GetLesson(context.Background(), "hindi", "basics_1", 1)
	require.NoError(t, err)
	assert.Equal(t, "hindi_basics_1_l1", built.ID)
	assert.Len(t, built.Exercises, 10)
}

func TestGetLesson_UnknownSkill(t *testing.T) {
	svc, _ := newLessonFixture(t)

	_, err := svc.GetLesson(context.Background(), "hindi", "astrophysics", 1)
	require.Error(t, err)
	appErr, ok := err.(*apperrors.AppError)
	require.True(t, ok)
	assert.Equal(t, apperrors.ErrCodeNotFound, appErr.Code)
}

func TestGetNextLesson(t *testing.T) {
	svc, progressSvc := newLessonFixture(t)
	ctx := context.Background()

	built, err := svc.GetNextLesson(ctx, "u1", "hindi", "basics_1")
	require.NoError(t, err)
	require.NotNil(t, built)
	assert.Equal(t, 1, built.Level)

	_, err = progressSvc.UpdateSkillProgress(ctx, "u1", "hindi", SkillUpdate{SkillID: "basics_1", Level: 2})
	require.NoError(t, err)

	built, err = svc.GetNextLesson(ctx, "u1", "hindi", "basics_1")
	require.NoError(t, err)
	require.NotNil(t, built)
	assert.Equal(t, 3, built.Level)
}

func TestGetNextLesson_MasteredSkill(t *testing.T) {
	svc, progressSvc := newLessonFixture(t)
	ctx := context.Background()

	_, err := progressSvc.UpdateSkillProgress(ctx, "u1", "hindi", SkillUpdate{SkillID: "basics_1", Level: content.SkillLevels})
	require.NoError(t, err)

	built, err := svc.GetNextLesson(ctx, "u1", "hindi", "basics_1")
	require.NoError(t, err)
	assert.Nil(t, built)
}

func TestGetPracticeLesson(t *testing.T) {
	svc, _ := newLessonFixture(t)
	ctx := context.Background()

	full, err := svc.GetLesson(ctx, "hindi", "basics_1", 1)
	require.NoError(t, err)
	missed := []string{full.Exercises[0].ID, full.Exercises[3].ID}

	practiceLesson, err := svc.GetPracticeLesson(ctx, "u1", "hindi", "basics_1", 1, missed)
	require.NoError(t, err)
	assert.True(t, practiceLesson.IsPractice)
	assert.GreaterOrEqual(t, len(practiceLesson.Exercises), 5)
	assert.LessOrEqual(t, len(practiceLesson.Exercises), 7)

	ids := map[string]bool{}
	for _, ex := range practiceLesson.Exercises {
		ids[ex.ID] = true
	}
	for _, id := range missed {
		assert.True(t, ids[id], "missed exercise %s should be included", id)
	}
}

func TestGetPracticeLesson_LockedSkill(t *testing.T) {
	svc, _ := newLessonFixture(t)

	_, err := svc.GetPracticeLesson(context.Background(), "u1", "hindi", "numbers", 1, nil)
	require.Error(t, err)
	appErr, ok := err.(*apperrors.AppError)
	require.True(t, ok)
	assert.Equal(t, apperrors.ErrCodeBadRequest, appErr.Code)
}

func TestCompleteLesson_FullLesson(t *testing.T) {
	svc, progressSvc := newLessonFixture(t)
	ctx := context.Background()

	result, err := svc.CompleteLesson(ctx, "u1", "hindi", CompleteLessonRequest{
		LessonID: "hindi_basics_1_l1",
		SkillID:  "basics_1",
		Level:    1,
		Results:  results(10, 8),
	})
	require.NoError(t, err)

	assert.InDelta(t, 80.0, result.Accuracy, 0.001)
	assert.False(t, result.Perfect)
	assert.Equal(t, lesson.FullLessonXP, result.BaseXP)
	assert.Equal(t, 0, result.BonusXP)
	assert.Equal(t, 10, result.Award.TotalXP)
	assert.Equal(t, 1, result.Award.NewLevel)
	assert.False(t, result.Award.LeveledUp)

	summary, err := progressSvc.GetProgress(ctx, "u1", "hindi")
	require.NoError(t, err)
	sp := summary.Skills["basics_1"]
	assert.Equal(t, 1, sp.Level)
	assert.Contains(t, sp.CompletedLessons, "hindi_basics_1_l1")
	require.NotNil(t, sp.Accuracy)
	assert.InDelta(t, 80.0, *sp.Accuracy, 0.001)
	assert.Len(t, summary.Vocabulary, 5, "full lesson adds its five words")
}

func TestCompleteLesson_PerfectBonus(t *testing.T) {
	svc, _ := newLessonFixture(t)

	result, err := svc.CompleteLesson(context.Background(), "u1", "hindi", CompleteLessonRequest{
		LessonID: "hindi_basics_1_l1",
		SkillID:  "basics_1",
		Level:    1,
		Results:  results(10, 10),
	})
	require.NoError(t, err)

	assert.True(t, result.Perfect)
	assert.Equal(t, lesson.PerfectLessonBonus, result.BonusXP)
	assert.Equal(t, lesson.FullLessonXP+lesson.PerfectLessonBonus, result.Award.TotalXP)
}

func TestCompleteLesson_Practice(t *testing.T) {
	svc, progressSvc := newLessonFixture(t)
	ctx := context.Background()

	result, err := svc.CompleteLesson(ctx, "u1", "hindi", CompleteLessonRequest{
		LessonID:   "hindi_basics_1_practice_abc",
		SkillID:    "basics_1",
		Level:      1,
		IsPractice: true,
		Results:    results(5, 5),
	})
	require.NoError(t, err)

	assert.Equal(t, lesson.PracticeLessonXP, result.BaseXP)
	assert.Equal(t, lesson.PerfectPracticeBonus, result.BonusXP)

	// Practice stamps lastPracticed but never advances the skill or adds
	// vocabulary.
	summary, err := progressSvc.GetProgress(ctx, "u1", "hindi")
	require.NoError(t, err)
	sp := summary.Skills["basics_1"]
	assert.Equal(t, 0, sp.Level)
	assert.Empty(t, sp.CompletedLessons)
	assert.NotNil(t, sp.LastPracticed)
	assert.Empty(t, summary.Vocabulary)
}

func TestCompleteLesson_EmptyResults(t *testing.T) {
	svc, _ := newLessonFixture(t)

	_, err := svc.CompleteLesson(context.Background(), "u1", "hindi", CompleteLessonRequest{
		SkillID: "basics_1",
		Level:   1,
	})
	require.Error(t, err)
	appErr, ok := err.(*apperrors.AppError)
	require.True(t, ok)
	assert.Equal(t, apperrors.ErrCodeValidation, appErr.Code)
}

func TestLanguages(t *testing.T) {
	svc, _ := newLessonFixture(t)

	langs := svc.Languages(context.Background())
	require.Len(t, langs, 5)
	assert.Equal(t, "hindi", langs[0].ID)
}

// End-to-end: a brand new learner finishes the first lesson of the course.
func TestFirstLessonEndToEnd(t *testing.T) {
	svc, progressSvc := newLessonFixture(t)
	ctx := context.Background()

	built, err := svc.GetNextLesson(ctx, "u1", "hindi", "basics_1")
	require.NoError(t, err)
	require.Len(t, built.Exercises, 10)

	result, err := svc.CompleteLesson(ctx, "u1", "hindi", CompleteLessonRequest{
		LessonID: built.ID,
		SkillID:  "basics_1",
		Level:    built.Level,
		Results:  results(10, 8),
	})
	require.NoError(t, err)
	require.Equal(t, 10, result.Award.TotalXP)
	require.Contains(t, result.Award.NewAchievements, "first_lesson")

	next, err := svc.GetNextLesson(ctx, "u1", "hindi", "basics_1")
	require.NoError(t, err)
	assert.Equal(t, 2, next.Level)

	unlocked, err := progressSvc.IsSkillUnlocked(ctx, "u1", "hindi", "basics_2")
	require.NoError(t, err)
	assert.True(t, unlocked)
}
