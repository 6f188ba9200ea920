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

type TemplateServiceImpl struct {
	templateRepo repositories.TemplateRepository
	todoService  services.TodoService
}

func NewTemplateService(templateRepo repositories.TemplateRepository, todoService services.TodoService) services.TemplateService {
	return &TemplateServiceImpl{
		templateRepo: templateRepo,
		todoService:  todoService,
	}
}

func (s *TemplateServiceImpl) ListTemplates(ctx context.Context, userID uuid.UUID) ([]models.TodoTemplate, error) {
	templates, err := s.templateRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	out := make([]models.TodoTemplate, 0, len(templates))
	for _, t := range templates {
		out = append(out, *t)
	}
	return out, nil
}

func (s *TemplateServiceImpl) CreateTemplate(ctx context.Context, userID uuid.UUID, req *dto.CreateTemplateRequest) (*models.TodoTemplate, error) {
	template := &models.TodoTemplate{
		ID:           uuid.New(),
		UserID:       userID,
		Name:         req.Name,
		Description:  req.Description,
		TemplateData: req.TemplateData,
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}

	if err := s.templateRepo.Create(ctx, template); err != nil {
		logger.ErrorContext(ctx, "Failed to create template", "user_id", userID, "error", err)
		return nil, err
	}

	return template, nil
}

func (s *TemplateServiceImpl) UpdateTemplate(ctx context.Context, id, userID uuid.UUID, req *dto.UpdateTemplateRequest) (*models.TodoTemplate, error) {
	template, err := s.templateRepo.GetOwned(ctx, id, userID)
	if err != nil {
		return nil, services.ErrTemplateNotFound
	}

	if req.Name != nil {
		template.Name = *req.Name
	}
	if req.Description != nil {
		template.Description = *req.Description
	}
	if req.TemplateData != nil {
		template.TemplateData = *req.TemplateData
	}
	template.UpdatedAt = time.Now()

	if err := s.templateRepo.Update(ctx, template); err != nil {
		logger.ErrorContext(ctx, "Failed to update template", "template_id", id, "error", err)
		return nil, err
	}

	return template, nil
}

func (s *TemplateServiceImpl) DeleteTemplate(ctx context.Context, id, userID uuid.UUID) error {
	if _, err := s.templateRepo.GetOwned(ctx, id, userID); err != nil {
		return services.ErrTemplateNotFound
	}
	return s.templateRepo.Delete(ctx, id)
}

// InstantiateTemplate สร้าง todo ใหม่จาก template_data
// field ที่ template ไม่ได้กำหนดใช้ default ปกติของ create
func (s *TemplateServiceImpl) InstantiateTemplate(ctx context.Context, id, userID uuid.UUID) (*models.Todo, error) {
	template, err := s.templateRepo.GetOwned(ctx, id, userID)
	if err != nil {
		return nil, services.ErrTemplateNotFound
	}

	req := &dto.CreateTodoRequest{
		Title: template.Name,
	}
	data := template.TemplateData
	if title, ok := data["title"].(string); ok && title != "" {
		req.Title = title
	}
	if description, ok := data["description"].(string); ok {
		req.Description = description
	}
	if priority, ok := data["priority"].(string); ok && models.ValidPriority(priority) {
		req.Priority = priority
	}
	if tags, ok := data["tags"].([]interface{}); ok {
		for _, tag := range tags {
			if str, ok := tag.(string); ok {
				req.Tags = append(req.Tags, str)
			}
		}
	}
	// JSON numbers ถูก decode เป็น float64
	if minutes, ok := data["estimated_minutes"].(float64); ok {
		m := int(minutes)
		req.EstimatedMinutes = &m
	}

	todo, err := s.todoService.CreateTodo(ctx, userID, req)
	if err != nil {
		return nil, err
	}

	logger.InfoContext(ctx, "Todo created from template", "template_id", id, "todo_id", todo.ID)

	return todo, nil
}
