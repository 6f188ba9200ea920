package models

import (
	"time"

	"github.com/google/uuid"
)

const (
	PriorityLow    = "low"
	PriorityMedium = "medium"
	PriorityHigh   = "high"
)

const (
	RecurrenceNone    = "none"
	RecurrenceDaily   = "daily"
	RecurrenceWeekly  = "weekly"
	RecurrenceMonthly = "monthly"
	RecurrenceYearly  = "yearly"
)

// ValidPriority ตรวจสอบค่า priority
func ValidPriority(p string) bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	}
	return false
}

// ValidRecurrencePattern ตรวจสอบค่า recurrence pattern
func ValidRecurrencePattern(p string) bool {
	switch p {
	case RecurrenceNone, RecurrenceDaily, RecurrenceWeekly, RecurrenceMonthly, RecurrenceYearly:
		return true
	}
	return false
}

type Todo struct {
	ID          uuid.UUID  `gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	UserID      uuid.UUID  `gorm:"type:uuid;not null;index:idx_todos_user_completed"`
	User        User       `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Title       string     `gorm:"size:200;not null"`
	Description string
	CategoryID  *uuid.UUID `gorm:"type:uuid"`
	Category    *Category  `gorm:"foreignKey:CategoryID;constraint:OnDelete:SET NULL"`
	Priority    string     `gorm:"size:10;default:'medium'"`
	DueDate     *time.Time `gorm:"index"`
	Completed   bool       `gorm:"default:false;index:idx_todos_user_completed"`
	CompletedAt *time.Time
	CreatedAt   time.Time `gorm:"index"`
	UpdatedAt   time.Time

	IsPinned     bool       `gorm:"default:false"`
	IsArchived   bool       `gorm:"default:false"`
	Position     int        `gorm:"default:0"`
	ParentTodoID *uuid.UUID `gorm:"type:uuid;index"`
	ParentTodo   *Todo      `gorm:"foreignKey:ParentTodoID;constraint:OnDelete:CASCADE"`
	Subtasks     []Todo     `gorm:"foreignKey:ParentTodoID"`

	// Sharing
	IsShared   bool   `gorm:"default:false"`
	SharedWith []User `gorm:"many2many:todo_shares;constraint:OnDelete:CASCADE"`

	// Recurrence
	IsRecurring       bool       `gorm:"default:false"`
	RecurrencePattern string     `gorm:"size:10;default:'none'"`
	RecurrenceEndDate *time.Time `gorm:"type:date"`

	Tags StringList `gorm:"type:jsonb;default:'[]'"`

	// Time tracking
	EstimatedMinutes *int
	ActualMinutes    *int

	// Reminder
	ReminderDate *time.Time
	ReminderSent bool `gorm:"default:false"`

	Comments    []TodoComment    `gorm:"foreignKey:TodoID"`
	Attachments []TodoAttachment `gorm:"foreignKey:TodoID"`
}

func (Todo) TableName() string {
	return "todos"
}

// ApplyCompletion รักษา invariant: completed_at ไม่เป็น null ก็ต่อเมื่อ completed เป็น true
// ต้องเรียกทุก mutation path ไม่ใช่เฉพาะ create/update หลัก
func (t *Todo) ApplyCompletion(now time.Time) {
	if t.Completed && t.CompletedAt == nil {
		t.CompletedAt = &now
	} else if !t.Completed {
		t.CompletedAt = nil
	}
}

// IsOverdue ตรวจสอบว่าเลยกำหนดแล้วหรือยัง
func (t *Todo) IsOverdue(now time.Time) bool {
	return t.DueDate != nil && !t.Completed && t.DueDate.Before(now)
}
