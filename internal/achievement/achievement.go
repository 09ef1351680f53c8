// Package achievement evaluates badge unlocks from profile and progress
// state after each lesson.
package achievement

import (
	"time"

	"github.com/samber/lo"
	"github.com/vocabree/vocabree-server/internal/models"
)

// Achievement IDs.
const (
	FirstLesson    = "first_lesson"
	WeekWarrior    = "week_warrior"
	Polyglot       = "polyglot"
	PerfectStudent = "perfect_student"
	EarlyBird      = "early_bird"
	NightOwl       = "night_owl"
	MonthMaster    = "month_master"
	VocabMaster    = "vocab_master"
)

var definitions = []models.Achievement{
	{ID: FirstLesson, Name: "First Steps", Description: "Complete your first lesson", Icon: "🎯", Tier: "bronze"},
	{ID: WeekWarrior, Name: "Week Warrior", Description: "Maintain a 7-day streak", Icon: "🔥", Tier: "silver"},
	{ID: Polyglot, Name: "Polyglot", Description: "Start learning 3 languages", Icon: "🌍", Tier: "gold"},
	{ID: PerfectStudent, Name: "Perfect Student", Description: "Complete 10 lessons with 100% accuracy", Icon: "⭐", Tier: "gold"},
	{ID: EarlyBird, Name: "Early Bird", Description: "Complete a lesson before 8 AM", Icon: "🌅", Tier: "bronze"},
	{ID: NightOwl, Name: "Night Owl", Description: "Complete a lesson after 10 PM", Icon: "🦉", Tier: "bronze"},
	{ID: MonthMaster, Name: "Month Master", Description: "Maintain a 30-day streak", Icon: "👑", Tier: "gold"},
	{ID: VocabMaster, Name: "Vocabulary Master", Description: "Learn 100 words", Icon: "📚", Tier: "silver"},
}

// All returns every achievement definition.
func All() []models.Achievement {
	out := make([]models.Achievement, len(definitions))
	copy(out, definitions)
	return out
}

// Get returns the definition for an ID, or nil when unknown.
func Get(id string) *models.Achievement {
	for i := range definitions {
		if definitions[i].ID == id {
			return &definitions[i]
		}
	}
	return nil
}

// Unlocked resolves a profile's achievement IDs to definitions, skipping
// IDs with no known definition.
func Unlocked(profile models.UserProfile) []models.Achievement {
	var out []models.Achievement
	for _, id := range profile.Achievements {
		if def := Get(id); def != nil {
			out = append(out, *def)
		}
	}
	return out
}

// Locked returns the definitions the profile has not earned yet.
func Locked(profile models.UserProfile) []models.Achievement {
	return lo.Filter(All(), func(a models.Achievement, _ int) bool {
		return !lo.Contains(profile.Achievements, a.ID)
	})
}

// Check evaluates which achievements the given state newly earns.
// languageCount is the number of languages with a progress record,
// wordCount the size of the current language's learned vocabulary, and
// lessonCompleted reports whether this evaluation follows a finished
// lesson. Already-held achievements are never returned again.
func Check(profile models.UserProfile, languageCount, wordCount int, lessonCompleted bool, now time.Time) []string {
	var earned []string
	has := func(id string) bool {
		return lo.Contains(profile.Achievements, id) || lo.Contains(earned, id)
	}

	if lessonCompleted && !has(FirstLesson) {
		earned = append(earned, FirstLesson)
	}
	if profile.CurrentStreak >= 7 && !has(WeekWarrior) {
		earned = append(earned, WeekWarrior)
	}
	if profile.CurrentStreak >= 30 && !has(MonthMaster) {
		earned = append(earned, MonthMaster)
	}
	if languageCount >= 3 && !has(Polyglot) {
		earned = append(earned, Polyglot)
	}
	if wordCount >= 100 && !has(VocabMaster) {
		earned = append(earned, VocabMaster)
	}
	if lessonCompleted {
		hour := now.Hour()
		if hour < 8 && !has(EarlyBird) {
			earned = append(earned, EarlyBird)
		}
		if hour >= 22 && !has(NightOwl) {
			earned = append(earned, NightOwl)
		}
	}

	return earned
}
