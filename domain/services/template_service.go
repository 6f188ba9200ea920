package services

import (
	"context"

	"github.com/google/uuid"

	"tododeck/domain/dto"
	"tododeck/domain/models"
)

type TemplateService interface {
	ListTemplates(ctx context.Context, userID uuid.UUID) ([]models.TodoTemplate, error)
	CreateTemplate(ctx context.Context, userID uuid.UUID, req *dto.CreateTemplateRequest) (*models.TodoTemplate, error)
	UpdateTemplate(ctx context.Context, id, userID uuid.UUID, req *dto.UpdateTemplateRequest) (*models.TodoTemplate, error)
	DeleteTemplate(ctx context.Context, id, userID uuid.UUID) error

	// InstantiateTemplate สร้าง todo ใหม่จาก template_data
	InstantiateTemplate(ctx context.Context, id, userID uuid.UUID) (*models.Todo, error)
}
