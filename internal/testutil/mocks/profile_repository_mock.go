package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
	"github.com/vocabree/vocabree-server/internal/models"
)

// MockProfileRepository is a mock implementation of repository.ProfileRepository
type MockProfileRepository struct {
	mock.Mock
}

func (m *MockProfileRepository) Get(ctx context.Context, id string) (*models.UserProfile, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.UserProfile), args.Error(1)
}

func (m *MockProfileRepository) Upsert(ctx context.Context, profile models.UserProfile) (*models.UserProfile, error) {
	args := m.Called(ctx, profile)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.UserProfile), args.Error(1)
}

func (m *MockProfileRepository) UpdateTotals(ctx context.Context, id string, totalXP, currentStreak, longestStreak int) error {
	args := m.Called(ctx, id, totalXP, currentStreak, longestStreak)
	return args.Error(0)
}

func (m *MockProfileRepository) UpdateAchievements(ctx context.Context, id string, achievements []string) error {
	args := m.Called(ctx, id, achievements)
	return args.Error(0)
}

func (m *MockProfileRepository) UpdateSettings(ctx context.Context, id string, dailyXPGoal int, settings models.Settings) error {
	args := m.Called(ctx, id, dailyXPGoal, settings)
	return args.Error(0)
}
