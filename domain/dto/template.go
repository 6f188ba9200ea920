package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateTemplateRequest struct {
	Name         string                 `json:"name" validate:"required,min=1,max=100"`
	Description  string                 `json:"description" validate:"omitempty,max=1000"`
	TemplateData map[string]interface{} `json:"template_data" validate:"required"`
}

type UpdateTemplateRequest struct {
	Name         *string                 `json:"name" validate:"omitempty,min=1,max=100"`
	Description  *string                 `json:"description" validate:"omitempty,max=1000"`
	TemplateData *map[string]interface{} `json:"template_data"`
}

type TemplateResponse struct {
	ID           uuid.UUID              `json:"id"`
	Name         string                 `json:"name"`
	Description  string                 `json:"description"`
	TemplateData map[string]interface{} `json:"template_data"`
	CreatedAt    time.Time              `json:"created_at"`
	UpdatedAt    time.Time              `json:"updated_at"`
}

type TemplateListResponse struct {
	Templates []TemplateResponse `json:"templates"`
}
