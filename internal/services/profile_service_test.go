package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	apperrors "github.com/vocabree/vocabree-server/internal/errors"
	"github.com/vocabree/vocabree-server/internal/models"
	"github.com/vocabree/vocabree-server/internal/repository/memory"
)

func newProfileFixture() ProfileService {
	return NewProfileService(memory.NewProfileRepository())
}

func TestCreateProfile(t *testing.T) {
	svc := newProfileFixture()

	profile, err := svc.CreateProfile(context.Background(), "u1", "Asha")
	require.NoError(t, err)

	assert.Equal(t, "u1", profile.ID)
	assert.Equal(t, "Asha", profile.DisplayName)
	assert.Equal(t, 20, profile.DailyXPGoal)
	assert.Empty(t, profile.Achievements)
	assert.Equal(t, models.DefaultSettings(), profile.Settings)
}

func TestCreateProfile_Validation(t *testing.T) {
	svc := newProfileFixture()
	ctx := context.Background()

	_, err := svc.CreateProfile(ctx, "", "Asha")
	require.Error(t, err)
	assert.Equal(t, apperrors.ErrCodeValidation, err.(*apperrors.AppError).Code)

	_, err = svc.CreateProfile(ctx, "u1", "")
	require.Error(t, err)
	assert.Equal(t, apperrors.ErrCodeValidation, err.(*apperrors.AppError).Code)
}

func TestGetProfile_NotFound(t *testing.T) {
	svc := newProfileFixture()

	_, err := svc.GetProfile(context.Background(), "nobody")
	require.Error(t, err)
	assert.Equal(t, apperrors.ErrCodeNotFound, err.(*apperrors.AppError).Code)
}

func TestUpdateSettings(t *testing.T) {
	svc := newProfileFixture()
	ctx := context.Background()

	_, err := svc.CreateProfile(ctx, "u1", "Asha")
	require.NoError(t, err)

	settings := models.DefaultSettings()
	settings.NotificationsEnabled = false
	profile, err := svc.UpdateSettings(ctx, "u1", 50, settings)
	require.NoError(t, err)

	assert.Equal(t, 50, profile.DailyXPGoal)
	assert.False(t, profile.Settings.NotificationsEnabled)
}

func TestUpdateSettings_InvalidGoal(t *testing.T) {
	svc := newProfileFixture()
	ctx := context.Background()

	_, err := svc.CreateProfile(ctx, "u1", "Asha")
	require.NoError(t, err)

	_, err = svc.UpdateSettings(ctx, "u1", 37, models.DefaultSettings())
	require.Error(t, err)
	assert.Equal(t, apperrors.ErrCodeValidation, err.(*apperrors.AppError).Code)
}

func TestAchievements(t *testing.T) {
	svc := newProfileFixture()
	ctx := context.Background()

	_, err := svc.CreateProfile(ctx, "u1", "Asha")
	require.NoError(t, err)

	status, err := svc.Achievements(ctx, "u1")
	require.NoError(t, err)
	assert.Empty(t, status.Unlocked)
	assert.NotEmpty(t, status.Locked)
}
