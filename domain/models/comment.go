package models

import (
	"time"

	"github.com/google/uuid"
)

type TodoComment struct {
	ID        uuid.UUID `gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	TodoID    uuid.UUID `gorm:"type:uuid;not null;index"`
	Todo      Todo      `gorm:"foreignKey:TodoID;constraint:OnDelete:CASCADE"`
	UserID    uuid.UUID `gorm:"type:uuid;not null"`
	User      User      `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Comment   string    `gorm:"not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (TodoComment) TableName() string {
	return "todo_comments"
}
