package services

import (
	"context"

	"github.com/google/uuid"

	"tododeck/domain/dto"
	"tododeck/domain/models"
)

type CommentService interface {
	// ListComments คืน comment ของ todo ที่ user มองเห็น
	ListComments(ctx context.Context, todoID, userID uuid.UUID) ([]models.TodoComment, error)

	// AddComment เพิ่ม comment ได้ทั้งเจ้าของและผู้ที่ถูกแชร์ให้
	AddComment(ctx context.Context, todoID, userID uuid.UUID, req *dto.CreateCommentRequest) (*models.TodoComment, error)
}
