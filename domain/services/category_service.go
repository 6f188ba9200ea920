package services

import (
	"context"

	"github.com/google/uuid"

	"tododeck/domain/dto"
	"tododeck/domain/models"
)

type CategoryService interface {
	ListCategories(ctx context.Context, userID uuid.UUID) ([]dto.CategoryResponse, error)
	CreateCategory(ctx context.Context, userID uuid.UUID, req *dto.CreateCategoryRequest) (*models.Category, error)
	UpdateCategory(ctx context.Context, id, userID uuid.UUID, req *dto.UpdateCategoryRequest) (*models.Category, error)
	DeleteCategory(ctx context.Context, id, userID uuid.UUID) error
}
