package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateTodoRequest struct {
	Title             string      `json:"title" validate:"required,min=1,max=200"`
	Description       string      `json:"description" validate:"omitempty,max=5000"`
	CategoryID        *uuid.UUID  `json:"category_id"`
	Priority          string      `json:"priority" validate:"omitempty,oneof=low medium high"`
	DueDate           *time.Time  `json:"due_date"`
	Completed         bool        `json:"completed"`
	IsPinned          bool        `json:"is_pinned"`
	IsArchived        bool        `json:"is_archived"`
	Position          int         `json:"position"`
	ParentTodoID      *uuid.UUID  `json:"parent_todo_id"`
	SharedWithIDs     []uuid.UUID `json:"shared_with_ids"`
	IsRecurring       bool        `json:"is_recurring"`
	RecurrencePattern string      `json:"recurrence_pattern" validate:"omitempty,oneof=none daily weekly monthly yearly"`
	RecurrenceEndDate *time.Time  `json:"recurrence_end_date"`
	Tags              []string    `json:"tags"`
	EstimatedMinutes  *int        `json:"estimated_minutes" validate:"omitempty,gte=0"`
	ActualMinutes     *int        `json:"actual_minutes" validate:"omitempty,gte=0"`
	ReminderDate      *time.Time  `json:"reminder_date"`
}

// UpdateTodoRequest ใช้ pointer ทุก field เพื่อแยก "ไม่ได้ส่งมา" ออกจาก zero value
// (partial update semantics: apply เฉพาะ field ที่ส่งมา)
type UpdateTodoRequest struct {
	Title             *string      `json:"title" validate:"omitempty,min=1,max=200"`
	Description       *string      `json:"description" validate:"omitempty,max=5000"`
	CategoryID        *uuid.UUID   `json:"category_id"`
	Priority          *string      `json:"priority" validate:"omitempty,oneof=low medium high"`
	DueDate           *time.Time   `json:"due_date"`
	Completed         *bool        `json:"completed"`
	IsPinned          *bool        `json:"is_pinned"`
	IsArchived        *bool        `json:"is_archived"`
	Position          *int         `json:"position"`
	ParentTodoID      *uuid.UUID   `json:"parent_todo_id"`
	SharedWithIDs     *[]uuid.UUID `json:"shared_with_ids"`
	IsRecurring       *bool        `json:"is_recurring"`
	RecurrencePattern *string      `json:"recurrence_pattern" validate:"omitempty,oneof=none daily weekly monthly yearly"`
	RecurrenceEndDate *time.Time   `json:"recurrence_end_date"`
	Tags              *[]string    `json:"tags"`
	EstimatedMinutes  *int         `json:"estimated_minutes" validate:"omitempty,gte=0"`
	ActualMinutes     *int         `json:"actual_minutes" validate:"omitempty,gte=0"`
	ReminderDate      *time.Time   `json:"reminder_date"`
}

type TodoResponse struct {
	ID                uuid.UUID         `json:"id"`
	User              UserResponse      `json:"user"`
	Title             string            `json:"title"`
	Description       string            `json:"description"`
	Category          *CategoryResponse `json:"category"`
	Priority          string            `json:"priority"`
	DueDate           *time.Time        `json:"due_date"`
	Completed         bool              `json:"completed"`
	CompletedAt       *time.Time        `json:"completed_at"`
	CreatedAt         time.Time         `json:"created_at"`
	UpdatedAt         time.Time         `json:"updated_at"`
	IsPinned          bool              `json:"is_pinned"`
	IsArchived        bool              `json:"is_archived"`
	Position          int               `json:"position"`
	ParentTodoID      *uuid.UUID        `json:"parent_todo"`
	IsShared          bool              `json:"is_shared"`
	SharedWith        []UserResponse    `json:"shared_with"`
	IsRecurring       bool              `json:"is_recurring"`
	RecurrencePattern string            `json:"recurrence_pattern"`
	RecurrenceEndDate *time.Time        `json:"recurrence_end_date"`
	Tags              []string          `json:"tags"`
	EstimatedMinutes  *int              `json:"estimated_minutes"`
	ActualMinutes     *int              `json:"actual_minutes"`
	ReminderDate      *time.Time        `json:"reminder_date"`
	ReminderSent      bool              `json:"reminder_sent"`
	Subtasks          []TodoResponse    `json:"subtasks"`
	CommentCount      int               `json:"comment_count"`
	AttachmentCount   int               `json:"attachment_count"`
	IsOverdue         bool              `json:"is_overdue"`
}

type TodoListResponse struct {
	Todos []TodoResponse `json:"todos"`
}

type ShareTodoRequest struct {
	UserIDs []uuid.UUID `json:"user_ids" validate:"required,min=1"`
}

type ReorderRequest struct {
	// key เป็น todo id (string) เพราะ client ส่ง object ของ {id: position}
	Positions map[string]int `json:"positions" validate:"required"`
}

type BulkActionRequest struct {
	Action  string      `json:"action" validate:"required,oneof=complete incomplete archive unarchive delete"`
	TodoIDs []uuid.UUID `json:"todo_ids" validate:"required,min=1"`
}

type BulkActionResponse struct {
	Message string `json:"message"`
}
