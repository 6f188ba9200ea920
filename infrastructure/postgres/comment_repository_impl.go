package postgres

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"tododeck/domain/models"
	"tododeck/domain/repositories"
)

type CommentRepositoryImpl struct {
	db *gorm.DB
}

func NewCommentRepository(db *gorm.DB) repositories.CommentRepository {
	return &CommentRepositoryImpl{db: db}
}

func (r *CommentRepositoryImpl) Create(ctx context.Context, comment *models.TodoComment) error {
	if err := r.db.WithContext(ctx).Create(comment).Error; err != nil {
		return err
	}
	// โหลด User กลับมาให้ response ใช้ได้เลย
	return r.db.WithContext(ctx).
		Preload("User").
		Where("id = ?", comment.ID).
		First(comment).Error
}

func (r *CommentRepositoryImpl) ListByTodo(ctx context.Context, todoID uuid.UUID) ([]*models.TodoComment, error) {
	var comments []*models.TodoComment
	err := r.db.WithContext(ctx).
		Preload("User").
		Where("todo_id = ?", todoID).
		Order("created_at DESC").
		Find(&comments).Error
	return comments, err
}
