package repositories

import (
	"context"

	"github.com/google/uuid"
	"tododeck/domain/models"
)

type TemplateRepository interface {
	Create(ctx context.Context, template *models.TodoTemplate) error
	GetOwned(ctx context.Context, id, userID uuid.UUID) (*models.TodoTemplate, error)
	Update(ctx context.Context, template *models.TodoTemplate) error
	Delete(ctx context.Context, id uuid.UUID) error
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*models.TodoTemplate, error)
}
