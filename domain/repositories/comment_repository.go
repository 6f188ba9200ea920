package repositories

import (
	"context"

	"github.com/google/uuid"
	"tododeck/domain/models"
)

type CommentRepository interface {
	Create(ctx context.Context, comment *models.TodoComment) error
	// ListByTodo เรียง created_at DESC
	ListByTodo(ctx context.Context, todoID uuid.UUID) ([]*models.TodoComment, error)
}
