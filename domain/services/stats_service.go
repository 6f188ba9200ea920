package services

import (
	"context"

	"github.com/google/uuid"

	"tododeck/domain/dto"
)

type StatsService interface {
	// GetStats คำนวณสถิติจาก todos ที่ user เป็นเจ้าของเท่านั้น
	GetStats(ctx context.Context, userID uuid.UUID) (*dto.StatsResponse, error)

	// InvalidateCache ล้าง cache ของ user หลัง mutation
	InvalidateCache(ctx context.Context, userID uuid.UUID)
}
