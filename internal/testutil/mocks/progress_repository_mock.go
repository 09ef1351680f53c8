package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
	"github.com/vocabree/vocabree-server/internal/models"
)

// MockProgressRepository is a mock implementation of repository.ProgressRepository
type MockProgressRepository struct {
	mock.Mock
}

func (m *MockProgressRepository) Get(ctx context.Context, userID, languageID string) (*models.Progress, error) {
	args := m.Called(ctx, userID, languageID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Progress), args.Error(1)
}

func (m *MockProgressRepository) Upsert(ctx context.Context, progress models.Progress) error {
	args := m.Called(ctx, progress)
	return args.Error(0)
}

func (m *MockProgressRepository) ListForUser(ctx context.Context, filter models.ProgressFilter) ([]models.Progress, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Progress), args.Error(1)
}
