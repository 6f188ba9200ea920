package postgres

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"tododeck/domain/models"
	"tododeck/domain/repositories"
)

type TemplateRepositoryImpl struct {
	db *gorm.DB
}

func NewTemplateRepository(db *gorm.DB) repositories.TemplateRepository {
	return &TemplateRepositoryImpl{db: db}
}

func (r *TemplateRepositoryImpl) Create(ctx context.Context, template *models.TodoTemplate) error {
	return r.db.WithContext(ctx).Create(template).Error
}

func (r *TemplateRepositoryImpl) GetOwned(ctx context.Context, id, userID uuid.UUID) (*models.TodoTemplate, error) {
	var template models.TodoTemplate
	err := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		First(&template).Error
	if err != nil {
		return nil, err
	}
	return &template, nil
}

func (r *TemplateRepositoryImpl) Update(ctx context.Context, template *models.TodoTemplate) error {
	return r.db.WithContext(ctx).Save(template).Error
}

func (r *TemplateRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&models.TodoTemplate{}).Error
}

func (r *TemplateRepositoryImpl) ListByUser(ctx context.Context, userID uuid.UUID) ([]*models.TodoTemplate, error) {
	var templates []*models.TodoTemplate
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("name ASC").
		Find(&templates).Error
	return templates, err
}
