package services

import (
	"context"
	"fmt"

	"github.com/vocabree/vocabree-server/internal/achievement"
	"github.com/vocabree/vocabree-server/internal/errors"
	"github.com/vocabree/vocabree-server/internal/logger"
	"github.com/vocabree/vocabree-server/internal/models"
	"github.com/vocabree/vocabree-server/internal/repository"
)

// AchievementStatus groups achievement definitions by unlock state.
type AchievementStatus struct {
	Unlocked []models.Achievement `json:"unlocked"`
	Locked   []models.Achievement `json:"locked"`
}

// ProfileService handles user profile business logic
type ProfileService interface {
	CreateProfile(ctx context.Context, id, displayName string) (*models.UserProfile, error)
	GetProfile(ctx context.Context, id string) (*models.UserProfile, error)
	UpdateSettings(ctx context.Context, id string, dailyXPGoal int, settings models.Settings) (*models.UserProfile, error)
	Achievements(ctx context.Context, id string) (*AchievementStatus, error)
}

type profileService struct {
	profiles repository.ProfileRepository
}

// NewProfileService creates a new ProfileService
func NewProfileService(profiles repository.ProfileRepository) ProfileService {
	return &profileService{profiles: profiles}
}

func (s *profileService) CreateProfile(ctx context.Context, id, displayName string) (*models.UserProfile, error) {
	log := logger.FromContext(ctx)
	log.Debug("creating profile: id=%s", id)

	if id == "" {
		return nil, errors.NewValidationError("id", "cannot be empty")
	}
	if displayName == "" {
		return nil, errors.NewValidationError("displayName", "cannot be empty")
	}

	profile, err := s.profiles.Upsert(ctx, models.UserProfile{
		ID:           id,
		DisplayName:  displayName,
		DailyXPGoal:  20,
		Achievements: []string{},
		Settings:     models.DefaultSettings(),
	})
	if err != nil {
		log.Error("failed to create profile: %v", err)
		return nil, errors.NewInternalError(err)
	}

	log.Info("profile created: id=%s", id)
	return profile, nil
}

func (s *profileService) GetProfile(ctx context.Context, id string) (*models.UserProfile, error) {
	log := logger.FromContext(ctx)
	log.Debug("getting profile: id=%s", id)

	profile, err := s.profiles.Get(ctx, id)
	if err != nil {
		log.Error("failed to get profile: %v", err)
		return nil, errors.NewInternalError(err)
	}
	if profile == nil {
		return nil, errors.NewNotFoundError("user", id)
	}
	return profile, nil
}

func (s *profileService) UpdateSettings(ctx context.Context, id string, dailyXPGoal int, settings models.Settings) (*models.UserProfile, error) {
	log := logger.FromContext(ctx)
	log.Debug("updating settings: id=%s, daily_xp_goal=%d", id, dailyXPGoal)

	if !models.ValidDailyXPGoal(dailyXPGoal) {
		return nil, errors.NewValidationError("dailyXpGoal", fmt.Sprintf("must be one of %v", models.DailyXPGoals))
	}

	if _, err := s.GetProfile(ctx, id); err != nil {
		return nil, err
	}

	if err := s.profiles.UpdateSettings(ctx, id, dailyXPGoal, settings); err != nil {
		log.Error("failed to update settings: %v", err)
		return nil, errors.NewInternalError(err)
	}
	return s.GetProfile(ctx, id)
}

func (s *profileService) Achievements(ctx context.Context, id string) (*AchievementStatus, error) {
	profile, err := s.GetProfile(ctx, id)
	if err != nil {
		return nil, err
	}
	return &AchievementStatus{
		Unlocked: achievement.Unlocked(*profile),
		Locked:   achievement.Locked(*profile),
	}, nil
}
