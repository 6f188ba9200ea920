package dto

import (
	"time"

	"github.com/google/uuid"
)

type ActivityResponse struct {
	ID        uuid.UUID              `json:"id"`
	Action    string                 `json:"action"`
	TodoID    *uuid.UUID             `json:"todo"`
	TodoTitle string                 `json:"todo_title"`
	Timestamp time.Time              `json:"timestamp"`
	Details   map[string]interface{} `json:"details"`
}

type ActivityListResponse struct {
	Activities []ActivityResponse `json:"activities"`
}
