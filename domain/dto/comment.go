package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateCommentRequest struct {
	Comment string `json:"comment" validate:"required,min=1,max=2000"`
}

type CommentResponse struct {
	ID        uuid.UUID    `json:"id"`
	User      UserResponse `json:"user"`
	Comment   string       `json:"comment"`
	CreatedAt time.Time    `json:"created_at"`
	UpdatedAt time.Time    `json:"updated_at"`
}

type CommentListResponse struct {
	Comments []CommentResponse `json:"comments"`
}
