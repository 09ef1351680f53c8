package repository

import (
	"context"

	"github.com/vocabree/vocabree-server/internal/models"
)

// ProfileRepository handles user profile data access
type ProfileRepository interface {
	// Get returns the profile, or (nil, nil) when the user does not exist.
	Get(ctx context.Context, id string) (*models.UserProfile, error)
	Upsert(ctx context.Context, profile models.UserProfile) (*models.UserProfile, error)
	UpdateTotals(ctx context.Context, id string, totalXP, currentStreak, longestStreak int) error
	UpdateAchievements(ctx context.Context, id string, achievements []string) error
	UpdateSettings(ctx context.Context, id string, dailyXPGoal int, settings models.Settings) error
}

// ProgressRepository handles per-language progress data access
type ProgressRepository interface {
	// Get returns the progress record, or (nil, nil) when none exists for the
	// user and language pair.
	Get(ctx context.Context, userID, languageID string) (*models.Progress, error)
	Upsert(ctx context.Context, progress models.Progress) error
	ListForUser(ctx context.Context, filter models.ProgressFilter) ([]models.Progress, error)
}
