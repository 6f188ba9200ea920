package dto

import (
	"time"

	"github.com/google/uuid"
)

type UserResponse struct {
	ID                  uuid.UUID `json:"id"`
	Username            string    `json:"username"`
	Email               string    `json:"email"`
	FirstName           string    `json:"first_name"`
	LastName            string    `json:"last_name"`
	FullName            string    `json:"full_name"`
	Avatar              string    `json:"avatar,omitempty"`
	Bio                 string    `json:"bio,omitempty"`
	ThemePreference     string    `json:"theme_preference"`
	NotificationEnabled bool      `json:"notification_enabled"`
	CreatedAt           time.Time `json:"created_at"`
}

type UpdateProfileRequest struct {
	FirstName           *string `json:"first_name" validate:"omitempty,max=50"`
	LastName            *string `json:"last_name" validate:"omitempty,max=50"`
	Email               *string `json:"email" validate:"omitempty,email,max=255"`
	Bio                 *string `json:"bio" validate:"omitempty,max=500"`
	Avatar              *string `json:"avatar" validate:"omitempty,max=500"`
	ThemePreference     *string `json:"theme_preference" validate:"omitempty,oneof=light dark"`
	NotificationEnabled *bool   `json:"notification_enabled"`
}

// UserSearchResult เป็นผลลัพธ์ย่อสำหรับ share picker
type UserSearchResult struct {
	ID       uuid.UUID `json:"id"`
	Username string    `json:"username"`
	Email    string    `json:"email"`
	FullName string    `json:"full_name"`
}
