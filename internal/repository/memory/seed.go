package memory

import (
	"context"
	"fmt"
	"time"

	"github.com/vocabree/vocabree-server/internal/content"
	"github.com/vocabree/vocabree-server/internal/leveling"
	"github.com/vocabree/vocabree-server/internal/models"
	"github.com/vocabree/vocabree-server/internal/repository"
)

// DemoUserID identifies the learner seeded into demo-mode repositories.
const DemoUserID = "demo_user"

// NewDemoStores returns in-memory repositories pre-seeded with a Hindi
// learner part-way through the course, so the app is explorable without
// creating an account.
func NewDemoStores(provider content.Provider) (repository.ProfileRepository, repository.ProgressRepository) {
	profiles := NewProfileRepository()
	progress := NewProgressRepository()

	now := time.Now().UTC()
	totalXP := 450

	_, _ = profiles.Upsert(context.Background(), models.UserProfile{
		ID:          DemoUserID,
		DisplayName: "Demo Learner",
		DailyXPGoal: 20,
		Settings:    models.DefaultSettings(),
	})
	_ = profiles.UpdateTotals(context.Background(), DemoUserID, totalXP, 5, 12)
	_ = profiles.UpdateAchievements(context.Background(), DemoUserID, []string{"first_lesson"})

	practiced := func(daysAgo int) *time.Time {
		t := now.AddDate(0, 0, -daysAgo)
		return &t
	}
	accuracy := func(pct float64) *float64 { return &pct }

	demo := models.NewProgress(DemoUserID, content.DefaultLanguageID)
	demo.Level = leveling.LevelForXP(totalXP)
	demo.TotalXP = totalXP
	demo.CurrentStreak = 5
	demo.LongestStreak = 12
	demo.LastActiveDate = practiced(0)
	demo.Skills["basics_1"] = models.SkillProgress{
		Level:            3,
		CompletedLessons: lessonIDs(content.DefaultLanguageID, "basics_1", 3),
		LastPracticed:    practiced(1),
		Accuracy:         accuracy(92),
	}
	demo.Skills["basics_2"] = models.SkillProgress{
		Level:            1,
		CompletedLessons: lessonIDs(content.DefaultLanguageID, "basics_2", 1),
		LastPracticed:    practiced(3),
		Accuracy:         accuracy(80),
	}
	demo.Vocabulary = seededVocabulary(provider)
	_ = progress.Upsert(context.Background(), demo)

	return profiles, progress
}

func lessonIDs(languageID, skillID string, levels int) []string {
	ids := make([]string, 0, levels)
	for level := 1; level <= levels; level++ {
		ids = append(ids, fmt.Sprintf("%s_%s_l%d", languageID, skillID, level))
	}
	return ids
}

// seededVocabulary collects the words from every lesson the demo learner has
// completed.
func seededVocabulary(provider content.Provider) []string {
	var words []string
	for level := 1; level <= 3; level++ {
		words = append(words, provider.Vocabulary(content.DefaultLanguageID, "basics_1", level).Words()...)
	}
	words = append(words, provider.Vocabulary(content.DefaultLanguageID, "basics_2", 1).Words()...)
	return words
}
