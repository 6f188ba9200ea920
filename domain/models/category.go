package models

import (
	"time"

	"github.com/google/uuid"
)

type Category struct {
	ID        uuid.UUID `gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	Name      string    `gorm:"size:50;not null;uniqueIndex:idx_categories_name_user"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_categories_name_user"`
	User      User      `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Color     string    `gorm:"size:7;default:'#6366f1'"`
	Icon      string    `gorm:"size:20;default:'📁'"`
	CreatedAt time.Time
}

func (Category) TableName() string {
	return "categories"
}
