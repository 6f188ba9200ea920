package repositories

import (
	"context"

	"github.com/google/uuid"
	"tododeck/domain/models"
)

type CategoryRepository interface {
	Create(ctx context.Context, category *models.Category) error
	// GetOwned คืน category เฉพาะเมื่อ userID เป็นเจ้าของ
	GetOwned(ctx context.Context, id, userID uuid.UUID) (*models.Category, error)
	GetByNameAndUser(ctx context.Context, name string, userID uuid.UUID) (*models.Category, error)
	Update(ctx context.Context, category *models.Category) error
	Delete(ctx context.Context, id uuid.UUID) error
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*models.Category, error)
	// CountTodos คืน map ของ category_id -> จำนวน todos ที่ยังไม่ archived
	CountTodos(ctx context.Context, userID uuid.UUID) (map[uuid.UUID]int64, error)
}
