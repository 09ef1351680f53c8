package sqlite

import (
	"context"
	"database/sql"
	"errors"

	"github.com/vocabree/vocabree-server/internal/logger"
	"github.com/vocabree/vocabree-server/internal/models"
	"github.com/vocabree/vocabree-server/internal/repository"
)

type profileRepository struct {
	db *sql.DB
}

// NewProfileRepository creates a new ProfileRepository implementation
func NewProfileRepository(db *sql.DB) repository.ProfileRepository {
	return &profileRepository{db: db}
}

func (r *profileRepository) Get(ctx context.Context, id string) (*models.UserProfile, error) {
	log := logger.FromContext(ctx).WithPrefix("profile_repo")
	log.Debug("getting profile: id=%s", id)

	var (
		p            models.UserProfile
		achievements string
		settings     string
	)
	err := r.db.QueryRowContext(ctx, `
SELECT id, display_name, total_xp, current_streak, longest_streak, daily_xp_goal, achievements, settings, created_at, updated_at
FROM users
WHERE id = ?
`, id).Scan(&p.ID, &p.DisplayName, &p.TotalXP, &p.CurrentStreak, &p.LongestStreak, &p.DailyXPGoal, &achievements, &settings, &p.CreatedAt, &p.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		log.Debug("profile not found: id=%s", id)
		return nil, nil
	}
	if err != nil {
		log.Error("failed to get profile: %v", err)
		return nil, err
	}

	p.Achievements = []string{}
	if err := unmarshalJSON(achievements, &p.Achievements); err != nil {
		log.Error("failed to decode achievements: %v", err)
		return nil, err
	}
	p.Settings = models.DefaultSettings()
	if err := unmarshalJSON(settings, &p.Settings); err != nil {
		log.Error("failed to decode settings: %v", err)
		return nil, err
	}
	return &p, nil
}

func (r *profileRepository) Upsert(ctx context.Context, profile models.UserProfile) (*models.UserProfile, error) {
	log := logger.FromContext(ctx).WithPrefix("profile_repo")
	log.Debug("upserting profile: id=%s", profile.ID)

	achievements, err := marshalJSON(profile.Achievements)
	if err != nil {
		return nil, err
	}
	settings, err := marshalJSON(profile.Settings)
	if err != nil {
		return nil, err
	}

	_, err = r.db.ExecContext(ctx, `
INSERT INTO users (id, display_name, total_xp, current_streak, longest_streak, daily_xp_goal, achievements, settings)
VALUES (?, ?, ?, ?, ?, ?, ?, ?)
ON CONFLICT(id) DO UPDATE SET
    display_name = excluded.display_name,
    daily_xp_goal = excluded.daily_xp_goal,
    updated_at = CURRENT_TIMESTAMP
`, profile.ID, profile.DisplayName, profile.TotalXP, profile.CurrentStreak, profile.LongestStreak, profile.DailyXPGoal, achievements, settings)
	if err != nil {
		log.Error("failed to upsert profile: %v", err)
		return nil, err
	}

	stored, err := r.Get(ctx, profile.ID)
	if err != nil {
		return nil, err
	}
	log.Debug("profile upserted: id=%s", profile.ID)
	return stored, nil
}

func (r *profileRepository) UpdateTotals(ctx context.Context, id string, totalXP, currentStreak, longestStreak int) error {
	log := logger.FromContext(ctx).WithPrefix("profile_repo")
	log.Debug("updating profile totals: id=%s, total_xp=%d, streak=%d/%d", id, totalXP, currentStreak, longestStreak)

	_, err := r.db.ExecContext(ctx, `
UPDATE users
SET total_xp = ?, current_streak = ?, longest_streak = ?, updated_at = CURRENT_TIMESTAMP
WHERE id = ?
`, totalXP, currentStreak, longestStreak, id)
	if err != nil {
		log.Error("failed to update profile totals: %v", err)
	}
	return err
}

func (r *profileRepository) UpdateAchievements(ctx context.Context, id string, achievements []string) error {
	log := logger.FromContext(ctx).WithPrefix("profile_repo")
	log.Debug("updating achievements: id=%s, count=%d", id, len(achievements))

	encoded, err := marshalJSON(achievements)
	if err != nil {
		return err
	}
	_, err = r.db.ExecContext(ctx, `
UPDATE users
SET achievements = ?, updated_at = CURRENT_TIMESTAMP
WHERE id = ?
`, encoded, id)
	if err != nil {
		log.Error("failed to update achievements: %v", err)
	}
	return err
}

func (r *profileRepository) UpdateSettings(ctx context.Context, id string, dailyXPGoal int, settings models.Settings) error {
	log := logger.FromContext(ctx).WithPrefix("profile_repo")
	log.Debug("updating settings: id=%s, daily_xp_goal=%d", id, dailyXPGoal)

	encoded, err := marshalJSON(settings)
	if err != nil {
		return err
	}
	_, err = r.db.ExecContext(ctx, `
UPDATE users
SET daily_xp_goal = ?, settings = ?, updated_at = CURRENT_TIMESTAMP
WHERE id = ?
`, dailyXPGoal, encoded, id)
	if err != nil {
		log.Error("failed to update settings: %v", err)
	}
	return err
}
