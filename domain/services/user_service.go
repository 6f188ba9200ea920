package services

import (
	"context"

	"github.com/google/uuid"

	"tododeck/domain/dto"
	"tododeck/domain/models"
)

type UserService interface {
	Register(ctx context.Context, req *dto.RegisterRequest) (string, *models.User, error)
	Login(ctx context.Context, req *dto.LoginRequest) (string, *models.User, error)
	GetProfile(ctx context.Context, userID uuid.UUID) (*models.User, error)
	UpdateProfile(ctx context.Context, userID uuid.UUID, req *dto.UpdateProfileRequest) (*models.User, error)

	// SearchUsers ค้นหา user อื่นสำหรับ share picker ไม่รวมตัวเอง
	SearchUsers(ctx context.Context, query string, exclude uuid.UUID) ([]*models.User, error)

	GenerateJWT(user *models.User) (string, error)
	ValidateJWT(token string) (*models.User, error)
}
