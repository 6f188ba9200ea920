package dto

import "github.com/google/uuid"

type UpdatePreferencesRequest struct {
	EmailReminders     *bool      `json:"email_reminders"`
	EmailDailySummary  *bool      `json:"email_daily_summary"`
	EmailWeeklySummary *bool      `json:"email_weekly_summary"`
	DefaultView        *string    `json:"default_view" validate:"omitempty,oneof=list kanban calendar"`
	ItemsPerPage       *int       `json:"items_per_page" validate:"omitempty,gte=10,lte=100"`
	ShowCompleted      *bool      `json:"show_completed"`
	DefaultPriority    *string    `json:"default_priority" validate:"omitempty,oneof=low medium high"`
	DefaultCategoryID  *uuid.UUID `json:"default_category_id"`
	ProfilePublic      *bool      `json:"profile_public"`
	AllowSharing       *bool      `json:"allow_sharing"`
}

type PreferencesResponse struct {
	EmailReminders     bool              `json:"email_reminders"`
	EmailDailySummary  bool              `json:"email_daily_summary"`
	EmailWeeklySummary bool              `json:"email_weekly_summary"`
	DefaultView        string            `json:"default_view"`
	ItemsPerPage       int               `json:"items_per_page"`
	ShowCompleted      bool              `json:"show_completed"`
	DefaultPriority    string            `json:"default_priority"`
	DefaultCategory    *CategoryResponse `json:"default_category"`
	ProfilePublic      bool              `json:"profile_public"`
	AllowSharing       bool              `json:"allow_sharing"`
}
