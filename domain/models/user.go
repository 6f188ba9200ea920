package models

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID                  uuid.UUID `gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	Email               string    `gorm:"uniqueIndex;not null"`
	Username            string    `gorm:"uniqueIndex;not null"`
	Password            string
	FirstName           string
	LastName            string
	Avatar              string
	Bio                 string `gorm:"size:500"`
	ThemePreference     string `gorm:"size:10;default:'light'"`
	NotificationEnabled bool   `gorm:"default:true"`
	IsActive            bool   `gorm:"default:true"`
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

func (User) TableName() string {
	return "users"
}

// FullName คืนชื่อเต็ม หรือ username ถ้าไม่ได้ตั้งชื่อ
func (u *User) FullName() string {
	name := u.FirstName
	if u.LastName != "" {
		if name != "" {
			name += " "
		}
		name += u.LastName
	}
	if name == "" {
		return u.Username
	}
	return name
}
