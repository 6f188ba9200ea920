package repositories

import (
	"context"

	"github.com/google/uuid"
	"tododeck/domain/models"
)

// ActivityRepository เป็น append-only มีแค่ Create กับการอ่าน
type ActivityRepository interface {
	Create(ctx context.Context, entry *models.ActivityLog) error
	// ListByUser เรียง timestamp DESC (ล่าสุดก่อน)
	ListByUser(ctx context.Context, userID uuid.UUID, limit int) ([]*models.ActivityLog, error)
}
