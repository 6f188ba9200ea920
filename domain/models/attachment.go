package models

import (
	"time"

	"github.com/google/uuid"
)

// TodoAttachment เก็บเฉพาะ metadata ของไฟล์แนบ
// ตัวไฟล์จริงอยู่นอกขอบเขตระบบนี้
type TodoAttachment struct {
	ID           uuid.UUID `gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	TodoID       uuid.UUID `gorm:"type:uuid;not null;index"`
	Todo         Todo      `gorm:"foreignKey:TodoID;constraint:OnDelete:CASCADE"`
	Filename     string    `gorm:"size:255;not null"`
	FileSize     int64
	UploadedAt   time.Time
	UploadedByID uuid.UUID `gorm:"type:uuid;not null"`
	UploadedBy   User      `gorm:"foreignKey:UploadedByID;constraint:OnDelete:CASCADE"`
}

func (TodoAttachment) TableName() string {
	return "todo_attachments"
}
