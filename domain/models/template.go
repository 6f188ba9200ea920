package models

import (
	"time"

	"github.com/google/uuid"
)

type TodoTemplate struct {
	ID           uuid.UUID `gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	UserID       uuid.UUID `gorm:"type:uuid;not null;index"`
	User         User      `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Name         string    `gorm:"size:100;not null"`
	Description  string
	TemplateData JSONMap `gorm:"type:jsonb;not null"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (TodoTemplate) TableName() string {
	return "todo_templates"
}
