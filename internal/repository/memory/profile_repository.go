// Package memory provides in-memory repository implementations backing the
// demo mode, where the server runs without a database and serves a pre-seeded
// learner.
package memory

import (
	"context"
	"sync"
	"time"

	"github.com/vocabree/vocabree-server/internal/models"
	"github.com/vocabree/vocabree-server/internal/repository"
)

type profileRepository struct {
	mu       sync.RWMutex
	profiles map[string]models.UserProfile
}

// NewProfileRepository creates an empty in-memory ProfileRepository
func NewProfileRepository() repository.ProfileRepository {
	return &profileRepository{profiles: map[string]models.UserProfile{}}
}

func (r *profileRepository) Get(ctx context.Context, id string) (*models.UserProfile, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.profiles[id]
	if !ok {
		return nil, nil
	}
	clone := cloneProfile(p)
	return &clone, nil
}

func (r *profileRepository) Upsert(ctx context.Context, profile models.UserProfile) (*models.UserProfile, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now().UTC()
	existing, ok := r.profiles[profile.ID]
	if ok {
		existing.DisplayName = profile.DisplayName
		existing.DailyXPGoal = profile.DailyXPGoal
		existing.UpdatedAt = now
		r.profiles[profile.ID] = existing
		clone := cloneProfile(existing)
		return &clone, nil
	}

	stored := cloneProfile(profile)
	stored.CreatedAt = now
	stored.UpdatedAt = now
	r.profiles[profile.ID] = stored
	clone := cloneProfile(stored)
	return &clone, nil
}

func (r *profileRepository) UpdateTotals(ctx context.Context, id string, totalXP, currentStreak, longestStreak int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	p, ok := r.profiles[id]
	if !ok {
		return nil
	}
	p.TotalXP = totalXP
	p.CurrentStreak = currentStreak
	p.LongestStreak = longestStreak
	p.UpdatedAt = time.Now().UTC()
	r.profiles[id] = p
	return nil
}

func (r *profileRepository) UpdateAchievements(ctx context.Context, id string, achievements []string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	p, ok := r.profiles[id]
	if !ok {
		return nil
	}
	p.Achievements = append([]string(nil), achievements...)
	p.UpdatedAt = time.Now().UTC()
	r.profiles[id] = p
	return nil
}

func (r *profileRepository) UpdateSettings(ctx context.Context, id string, dailyXPGoal int, settings models.Settings) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	p, ok := r.profiles[id]
	if !ok {
		return nil
	}
	p.DailyXPGoal = dailyXPGoal
	p.Settings = settings
	p.UpdatedAt = time.Now().UTC()
	r.profiles[id] = p
	return nil
}

func cloneProfile(p models.UserProfile) models.UserProfile {
	clone := p
	clone.Achievements = append([]string(nil), p.Achievements...)
	return clone
}
