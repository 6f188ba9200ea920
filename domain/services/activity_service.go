package services

import (
	"context"

	"github.com/google/uuid"

	"tododeck/domain/models"
)

type ActivityService interface {
	// Record บันทึก activity แบบ append-only และ publish event แบบ best-effort
	Record(ctx context.Context, userID uuid.UUID, action string, todo *models.Todo, details map[string]interface{}) error

	// RecordAccount บันทึก activity ระดับ account (ไม่ผูกกับ todo) เช่นตอน register
	RecordAccount(ctx context.Context, userID uuid.UUID, action, title string) error

	// ListRecent คืน activity ล่าสุดของ user เรียงใหม่ไปเก่า
	ListRecent(ctx context.Context, userID uuid.UUID, limit int) ([]models.ActivityLog, error)
}
