package repositories

import (
	"context"
	"time"

	"github.com/google/uuid"
	"tododeck/domain/models"
)

// Due-date buckets ที่ filter รองรับ
const (
	DueBucketToday   = "today"
	DueBucketWeek    = "week"
	DueBucketOverdue = "overdue"
)

// TodoFilter เป็น predicate set สำหรับ ListVisible
// ทุก field เป็น optional และ AND กันหมด ค่าที่ไม่รู้จักถูกละเว้นตั้งแต่ชั้น handler
type TodoFilter struct {
	CategoryID *uuid.UUID
	Priority   string
	Completed  *bool
	// Archived nil หมายถึงซ่อน archived (default policy)
	// ต่างจาก Completed ที่ nil หมายถึงแสดงทั้งสองแบบ
	Archived  *bool
	Search    string
	DueBucket string
}

type BulkUpdates map[string]interface{}

type TodoRepository interface {
	Create(ctx context.Context, todo *models.Todo) error

	// GetByID คืน todo โดยไม่สน ownership ใช้แยกกรณี "ไม่มีอยู่จริง" ออกจาก "ไม่มีสิทธิ์"
	GetByID(ctx context.Context, id uuid.UUID) (*models.Todo, error)

	// GetOwned คืน todo เฉพาะเมื่อ userID เป็นเจ้าของ ใช้กับทุก mutation path
	GetOwned(ctx context.Context, id, userID uuid.UUID) (*models.Todo, error)

	// GetVisible คืน todo เมื่อ userID เป็นเจ้าของหรืออยู่ใน share set
	GetVisible(ctx context.Context, id, userID uuid.UUID) (*models.Todo, error)

	Update(ctx context.Context, todo *models.Todo) error
	Delete(ctx context.Context, id uuid.UUID) error

	// ListVisible คืน todos ที่ user มองเห็น (owned + shared-in) ตาม filter
	// เรียง position ASC แล้ว created_at DESC และไม่มีแถวซ้ำ
	ListVisible(ctx context.Context, userID uuid.UUID, filter *TodoFilter) ([]*models.Todo, error)

	// ListOwned คืน todos ที่ user เป็นเจ้าของทั้งหมด (สำหรับ statistics)
	ListOwned(ctx context.Context, userID uuid.UUID) ([]*models.Todo, error)

	// UpdatePosition อัปเดต position เฉพาะเมื่อ userID เป็นเจ้าของ
	// id ที่ resolve ไม่ได้หรือไม่ใช่ของตัวเองถูกข้ามเงียบๆ
	UpdatePosition(ctx context.Context, id, userID uuid.UUID, position int) error

	// BulkUpdate/BulkDelete ทำงานกับ subset ของ ids ที่ userID เป็นเจ้าของเท่านั้น
	BulkUpdate(ctx context.Context, userID uuid.UUID, ids []uuid.UUID, updates BulkUpdates) error
	BulkDelete(ctx context.Context, userID uuid.UUID, ids []uuid.UUID) error

	// ReplaceShares แทนที่ share set ทั้งชุด (ไม่ใช่ additive)
	ReplaceShares(ctx context.Context, todo *models.Todo, users []*models.User) error

	// ListDueReminders คืน todos ที่ถึงเวลาแจ้งเตือนและยังไม่ได้ส่ง
	ListDueReminders(ctx context.Context, now time.Time) ([]*models.Todo, error)
	MarkReminderSent(ctx context.Context, id uuid.UUID) error
}
