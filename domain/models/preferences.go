package models

import (
	"time"

	"github.com/google/uuid"
)

type UserPreferences struct {
	ID     uuid.UUID `gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	UserID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex"`
	User   User      `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`

	// Notification preferences
	EmailReminders     bool `gorm:"default:true"`
	EmailDailySummary  bool `gorm:"default:false"`
	EmailWeeklySummary bool `gorm:"default:true"`

	// UI preferences
	DefaultView   string `gorm:"size:20;default:'list'"` // list, kanban, calendar
	ItemsPerPage  int    `gorm:"default:20"`
	ShowCompleted bool   `gorm:"default:true"`

	// Default todo settings
	DefaultPriority   string     `gorm:"size:10;default:'medium'"`
	DefaultCategoryID *uuid.UUID `gorm:"type:uuid"`
	DefaultCategory   *Category  `gorm:"foreignKey:DefaultCategoryID;constraint:OnDelete:SET NULL"`

	// Privacy settings
	ProfilePublic bool `gorm:"default:false"`
	AllowSharing  bool `gorm:"default:true"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

func (UserPreferences) TableName() string {
	return "user_preferences"
}
