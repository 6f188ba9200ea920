package serviceimpl

import (
	"context"
	"time"

	"github.com/google/uuid"

	"tododeck/domain/dto"
	"tododeck/domain/models"
	"tododeck/domain/repositories"
	"tododeck/domain/services"
	"tododeck/pkg/logger"
)

type PreferencesServiceImpl struct {
	prefsRepo    repositories.PreferencesRepository
	categoryRepo repositories.CategoryRepository
}

func NewPreferencesService(
	prefsRepo repositories.PreferencesRepository,
	categoryRepo repositories.CategoryRepository,
) services.PreferencesService {
	return &PreferencesServiceImpl{
		prefsRepo:    prefsRepo,
		categoryRepo: categoryRepo,
	}
}

// GetPreferences คืน preferences ของ user สร้างชุด default ให้ถ้ายังไม่มีแถว
func (s *PreferencesServiceImpl) GetPreferences(ctx context.Context, userID uuid.UUID) (*models.UserPreferences, error) {
	prefs, err := s.prefsRepo.GetByUser(ctx, userID)
	if err == nil {
		return prefs, nil
	}

	prefs = &models.UserPreferences{
		ID:                 uuid.New(),
		UserID:             userID,
		EmailReminders:     true,
		EmailWeeklySummary: true,
		DefaultView:        "list",
		ItemsPerPage:       20,
		ShowCompleted:      true,
		DefaultPriority:    models.PriorityMedium,
		AllowSharing:       true,
		CreatedAt:          time.Now(),
		UpdatedAt:          time.Now(),
	}
	if err := s.prefsRepo.Create(ctx, prefs); err != nil {
		logger.ErrorContext(ctx, "Failed to create default preferences", "user_id", userID, "error", err)
		return nil, err
	}

	return prefs, nil
}

func (s *PreferencesServiceImpl) UpdatePreferences(ctx context.Context, userID uuid.UUID, req *dto.UpdatePreferencesRequest) (*models.UserPreferences, error) {
	prefs, err := s.GetPreferences(ctx, userID)
	if err != nil {
		return nil, err
	}

	if req.EmailReminders != nil {
		prefs.EmailReminders = *req.EmailReminders
	}
	if req.EmailDailySummary != nil {
		prefs.EmailDailySummary = *req.EmailDailySummary
	}
	if req.EmailWeeklySummary != nil {
		prefs.EmailWeeklySummary = *req.EmailWeeklySummary
	}
	if req.DefaultView != nil {
		prefs.DefaultView = *req.DefaultView
	}
	if req.ItemsPerPage != nil {
		prefs.ItemsPerPage = *req.ItemsPerPage
	}
	if req.ShowCompleted != nil {
		prefs.ShowCompleted = *req.ShowCompleted
	}
	if req.DefaultPriority != nil {
		prefs.DefaultPriority = *req.DefaultPriority
	}
	if req.DefaultCategoryID != nil {
		if *req.DefaultCategoryID == uuid.Nil {
			prefs.DefaultCategoryID = nil
		} else {
			// default category ต้องเป็นของ user เอง ไม่งั้นละเว้น
			if category, err := s.categoryRepo.GetOwned(ctx, *req.DefaultCategoryID, userID); err == nil {
				prefs.DefaultCategoryID = &category.ID
			}
		}
	}
	if req.ProfilePublic != nil {
		prefs.ProfilePublic = *req.ProfilePublic
	}
	if req.AllowSharing != nil {
		prefs.AllowSharing = *req.AllowSharing
	}
	prefs.UpdatedAt = time.Now()

	if err := s.prefsRepo.Update(ctx, prefs); err != nil {
		logger.ErrorContext(ctx, "Failed to update preferences", "user_id", userID, "error", err)
		return nil, err
	}

	// reload เพื่อให้ DefaultCategory ถูก preload กลับมา
	return s.prefsRepo.GetByUser(ctx, userID)
}
