package models

import (
	"time"

	"github.com/google/uuid"
)

const (
	ActionCreated   = "created"
	ActionUpdated   = "updated"
	ActionCompleted = "completed"
	ActionDeleted   = "deleted"
	ActionShared    = "shared"
	ActionCommented = "commented"
	ActionAttached  = "attached"
)

// ActivityLog เป็น append-only audit record
// application ไม่มีการ update หรือ delete แถวในตารางนี้
type ActivityLog struct {
	ID     uuid.UUID `gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	UserID uuid.UUID `gorm:"type:uuid;not null;index"`
	User   User      `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Action string    `gorm:"size:20;not null"`

	// TodoID ถูก set null เมื่อ todo ถูกลบ, TodoTitle เก็บชื่อไว้แทน
	TodoID    *uuid.UUID `gorm:"type:uuid"`
	Todo      *Todo      `gorm:"foreignKey:TodoID;constraint:OnDelete:SET NULL"`
	TodoTitle string     `gorm:"size:200;not null"`

	Timestamp time.Time `gorm:"index"`
	Details   JSONMap   `gorm:"type:jsonb;default:'{}'"`
}

func (ActivityLog) TableName() string {
	return "activity_logs"
}
