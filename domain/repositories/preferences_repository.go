package repositories

import (
	"context"

	"github.com/google/uuid"
	"tododeck/domain/models"
)

type PreferencesRepository interface {
	Create(ctx context.Context, prefs *models.UserPreferences) error
	GetByUser(ctx context.Context, userID uuid.UUID) (*models.UserPreferences, error)
	Update(ctx context.Context, prefs *models.UserPreferences) error
}
