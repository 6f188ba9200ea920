package services

import (
	"context"

	"github.com/google/uuid"

	"tododeck/domain/dto"
	"tododeck/domain/models"
)

type PreferencesService interface {
	// GetPreferences คืน preferences ของ user สร้าง default ให้ถ้ายังไม่มี
	GetPreferences(ctx context.Context, userID uuid.UUID) (*models.UserPreferences, error)
	UpdatePreferences(ctx context.Context, userID uuid.UUID, req *dto.UpdatePreferencesRequest) (*models.UserPreferences, error)
}
