package serviceimpl

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"tododeck/domain/dto"
	"tododeck/domain/models"
	"tododeck/domain/repositories"
	"tododeck/domain/services"
	"tododeck/pkg/logger"
)

type CategoryServiceImpl struct {
	categoryRepo repositories.CategoryRepository
}

func NewCategoryService(categoryRepo repositories.CategoryRepository) services.CategoryService {
	return &CategoryServiceImpl{categoryRepo: categoryRepo}
}

func (s *CategoryServiceImpl) ListCategories(ctx context.Context, userID uuid.UUID) ([]dto.CategoryResponse, error) {
	categories, err := s.categoryRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	counts, err := s.categoryRepo.CountTodos(ctx, userID)
	if err != nil {
		logger.WarnContext(ctx, "Failed to count todos per category", "user_id", userID, "error", err)
		counts = map[uuid.UUID]int64{}
	}

	out := make([]dto.CategoryResponse, 0, len(categories))
	for _, c := range categories {
		out = append(out, dto.CategoryToCategoryResponse(c, counts[c.ID]))
	}
	return out, nil
}

func (s *CategoryServiceImpl) CreateCategory(ctx context.Context, userID uuid.UUID, req *dto.CreateCategoryRequest) (*models.Category, error) {
	// ชื่อ category unique ต่อ user
	existing, _ := s.categoryRepo.GetByNameAndUser(ctx, req.Name, userID)
	if existing != nil {
		return nil, errors.New("category name already exists")
	}

	category := &models.Category{
		ID:        uuid.New(),
		Name:      req.Name,
		UserID:    userID,
		Color:     req.Color,
		Icon:      req.Icon,
		CreatedAt: time.Now(),
	}
	if category.Color == "" {
		category.Color = "#6366f1"
	}
	if category.Icon == "" {
		category.Icon = "📁"
	}

	if err := s.categoryRepo.Create(ctx, category); err != nil {
		logger.ErrorContext(ctx, "Failed to create category", "user_id", userID, "error", err)
		return nil, err
	}

	logger.InfoContext(ctx, "Category created", "category_id", category.ID, "user_id", userID)

	return category, nil
}

func (s *CategoryServiceImpl) UpdateCategory(ctx context.Context, id, userID uuid.UUID, req *dto.UpdateCategoryRequest) (*models.Category, error) {
	category, err := s.categoryRepo.GetOwned(ctx, id, userID)
	if err != nil {
		return nil, services.ErrCategoryNotFound
	}

	if req.Name != nil && *req.Name != category.Name {
		existing, _ := s.categoryRepo.GetByNameAndUser(ctx, *req.Name, userID)
		if existing != nil {
			return nil, errors.New("category name already exists")
		}
		category.Name = *req.Name
	}
	if req.Color != nil {
		category.Color = *req.Color
	}
	if req.Icon != nil {
		category.Icon = *req.Icon
	}

	if err := s.categoryRepo.Update(ctx, category); err != nil {
		logger.ErrorContext(ctx, "Failed to update category", "category_id", id, "error", err)
		return nil, err
	}

	return category, nil
}

func (s *CategoryServiceImpl) DeleteCategory(ctx context.Context, id, userID uuid.UUID) error {
	if _, err := s.categoryRepo.GetOwned(ctx, id, userID); err != nil {
		return services.ErrCategoryNotFound
	}

	// todos ที่อ้าง category นี้ถูกปลด category_id เป็น null ผ่าน FK ON DELETE SET NULL
	if err := s.categoryRepo.Delete(ctx, id); err != nil {
		logger.ErrorContext(ctx, "Failed to delete category", "category_id", id, "error", err)
		return err
	}

	logger.InfoContext(ctx, "Category deleted", "category_id", id, "user_id", userID)

	return nil
}
