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

type CommentServiceImpl struct {
	commentRepo repositories.CommentRepository
	todoRepo    repositories.TodoRepository
	activity    services.ActivityService
}

func NewCommentService(
	commentRepo repositories.CommentRepository,
	todoRepo repositories.TodoRepository,
	activity services.ActivityService,
) services.CommentService {
	return &CommentServiceImpl{
		commentRepo: commentRepo,
		todoRepo:    todoRepo,
		activity:    activity,
	}
}

// requireMember คืน todo เมื่อ user เป็นเจ้าของหรือถูกแชร์ให้
// comments path เป็นที่เดียวที่แยก "ไม่มีสิทธิ์" ออกจาก "ไม่มีอยู่จริง"
func (s *CommentServiceImpl) requireMember(ctx context.Context, todoID, userID uuid.UUID) (*models.Todo, error) {
	todo, err := s.todoRepo.GetVisible(ctx, todoID, userID)
	if err == nil {
		return todo, nil
	}
	if _, err := s.todoRepo.GetByID(ctx, todoID); err != nil {
		return nil, services.ErrTodoNotFound
	}
	return nil, services.ErrNotTodoMember
}

func (s *CommentServiceImpl) ListComments(ctx context.Context, todoID, userID uuid.UUID) ([]models.TodoComment, error) {
	// ทั้งเจ้าของและผู้ที่ถูกแชร์ให้อ่าน comment ได้
	if _, err := s.requireMember(ctx, todoID, userID); err != nil {
		return nil, err
	}

	comments, err := s.commentRepo.ListByTodo(ctx, todoID)
	if err != nil {
		return nil, err
	}

	out := make([]models.TodoComment, 0, len(comments))
	for _, c := range comments {
		out = append(out, *c)
	}
	return out, nil
}

func (s *CommentServiceImpl) AddComment(ctx context.Context, todoID, userID uuid.UUID, req *dto.CreateCommentRequest) (*models.TodoComment, error) {
	todo, err := s.requireMember(ctx, todoID, userID)
	if err != nil {
		return nil, err
	}

	comment := &models.TodoComment{
		ID:        uuid.New(),
		TodoID:    todoID,
		UserID:    userID,
		Comment:   req.Comment,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}

	if err := s.commentRepo.Create(ctx, comment); err != nil {
		logger.ErrorContext(ctx, "Failed to create comment", "todo_id", todoID, "error", err)
		return nil, err
	}

	if s.activity != nil {
		if err := s.activity.Record(ctx, userID, models.ActionCommented, todo, nil); err != nil {
			logger.WarnContext(ctx, "Activity record failed", "action", models.ActionCommented, "error", err)
		}
	}

	logger.InfoContext(ctx, "Comment added", "todo_id", todoID, "user_id", userID)

	return comment, nil
}
