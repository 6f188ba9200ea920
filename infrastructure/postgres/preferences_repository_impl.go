package postgres

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"tododeck/domain/models"
	"tododeck/domain/repositories"
)

type PreferencesRepositoryImpl struct {
	db *gorm.DB
}

func NewPreferencesRepository(db *gorm.DB) repositories.PreferencesRepository {
	return &PreferencesRepositoryImpl{db: db}
}

func (r *PreferencesRepositoryImpl) Create(ctx context.Context, prefs *models.UserPreferences) error {
	return r.db.WithContext(ctx).Create(prefs).Error
}

func (r *PreferencesRepositoryImpl) GetByUser(ctx context.Context, userID uuid.UUID) (*models.UserPreferences, error) {
	var prefs models.UserPreferences
	err := r.db.WithContext(ctx).
		Preload("DefaultCategory").
		Where("user_id = ?", userID).
		First(&prefs).Error
	if err != nil {
		return nil, err
	}
	return &prefs, nil
}

func (r *PreferencesRepositoryImpl) Update(ctx context.Context, prefs *models.UserPreferences) error {
	return r.db.WithContext(ctx).
		Omit("User", "DefaultCategory").
		Save(prefs).Error
}
