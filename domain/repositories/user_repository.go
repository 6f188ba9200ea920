package repositories

import (
	"context"

	"github.com/google/uuid"
	"tododeck/domain/models"
)

type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	GetByUsername(ctx context.Context, username string) (*models.User, error)
	Update(ctx context.Context, id uuid.UUID, user *models.User) error
	Delete(ctx context.Context, id uuid.UUID) error
	// GetByIDs คืนเฉพาะ users ที่มีอยู่จริง id ที่หาไม่เจอถูกข้ามเงียบๆ
	GetByIDs(ctx context.Context, ids []uuid.UUID) ([]*models.User, error)
	// Search หา users สำหรับ share picker (username/email/ชื่อ) ไม่รวมตัวเอง
	Search(ctx context.Context, query string, exclude uuid.UUID, limit int) ([]*models.User, error)
}
