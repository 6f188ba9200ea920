package dto

import (
	"time"

	"tododeck/domain/models"
)

// UserToUserResponse แปลง User model เป็น response
func UserToUserResponse(u *models.User) UserResponse {
	return UserResponse{
		ID:                  u.ID,
		Username:            u.Username,
		Email:               u.Email,
		FirstName:           u.FirstName,
		LastName:            u.LastName,
		FullName:            u.FullName(),
		Avatar:              u.Avatar,
		Bio:                 u.Bio,
		ThemePreference:     u.ThemePreference,
		NotificationEnabled: u.NotificationEnabled,
		CreatedAt:           u.CreatedAt,
	}
}

func UserToSearchResult(u *models.User) UserSearchResult {
	return UserSearchResult{
		ID:       u.ID,
		Username: u.Username,
		Email:    u.Email,
		FullName: u.FullName(),
	}
}

// CategoryToCategoryResponse แปลง Category พร้อมจำนวน todo ที่นับมาแล้ว
func CategoryToCategoryResponse(c *models.Category, todoCount int64) CategoryResponse {
	return CategoryResponse{
		ID:        c.ID,
		Name:      c.Name,
		Color:     c.Color,
		Icon:      c.Icon,
		TodoCount: todoCount,
		CreatedAt: c.CreatedAt,
	}
}

// TodoToTodoResponse แปลง Todo model เป็น response
// now ใช้คำนวณ is_overdue เพื่อให้ deterministic ในเทสต์
func TodoToTodoResponse(t *models.Todo, now time.Time) TodoResponse {
	resp := TodoResponse{
		ID:                t.ID,
		User:              UserToUserResponse(&t.User),
		Title:             t.Title,
		Description:       t.Description,
		Priority:          t.Priority,
		DueDate:           t.DueDate,
		Completed:         t.Completed,
		CompletedAt:       t.CompletedAt,
		CreatedAt:         t.CreatedAt,
		UpdatedAt:         t.UpdatedAt,
		IsPinned:          t.IsPinned,
		IsArchived:        t.IsArchived,
		Position:          t.Position,
		ParentTodoID:      t.ParentTodoID,
		IsShared:          t.IsShared,
		SharedWith:        make([]UserResponse, 0, len(t.SharedWith)),
		IsRecurring:       t.IsRecurring,
		RecurrencePattern: t.RecurrencePattern,
		RecurrenceEndDate: t.RecurrenceEndDate,
		Tags:              t.Tags,
		EstimatedMinutes:  t.EstimatedMinutes,
		ActualMinutes:     t.ActualMinutes,
		ReminderDate:      t.ReminderDate,
		ReminderSent:      t.ReminderSent,
		Subtasks:          make([]TodoResponse, 0, len(t.Subtasks)),
		CommentCount:      len(t.Comments),
		AttachmentCount:   len(t.Attachments),
		IsOverdue:         t.IsOverdue(now),
	}
	if resp.Tags == nil {
		resp.Tags = []string{}
	}
	if t.Category != nil {
		cat := CategoryToCategoryResponse(t.Category, 0)
		resp.Category = &cat
	}
	for i := range t.SharedWith {
		resp.SharedWith = append(resp.SharedWith, UserToUserResponse(&t.SharedWith[i]))
	}
	for i := range t.Subtasks {
		resp.Subtasks = append(resp.Subtasks, TodoToTodoResponse(&t.Subtasks[i], now))
	}
	return resp
}

func TodosToTodoResponses(todos []models.Todo, now time.Time) []TodoResponse {
	out := make([]TodoResponse, 0, len(todos))
	for i := range todos {
		out = append(out, TodoToTodoResponse(&todos[i], now))
	}
	return out
}

func CommentToCommentResponse(c *models.TodoComment) CommentResponse {
	return CommentResponse{
		ID:        c.ID,
		User:      UserToUserResponse(&c.User),
		Comment:   c.Comment,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}

func ActivityToActivityResponse(a *models.ActivityLog) ActivityResponse {
	details := map[string]interface{}(a.Details)
	if details == nil {
		details = map[string]interface{}{}
	}
	return ActivityResponse{
		ID:        a.ID,
		Action:    a.Action,
		TodoID:    a.TodoID,
		TodoTitle: a.TodoTitle,
		Timestamp: a.Timestamp,
		Details:   details,
	}
}

func TemplateToTemplateResponse(t *models.TodoTemplate) TemplateResponse {
	return TemplateResponse{
		ID:           t.ID,
		Name:         t.Name,
		Description:  t.Description,
		TemplateData: t.TemplateData,
		CreatedAt:    t.CreatedAt,
		UpdatedAt:    t.UpdatedAt,
	}
}

func PreferencesToPreferencesResponse(p *models.UserPreferences) PreferencesResponse {
	resp := PreferencesResponse{
		EmailReminders:     p.EmailReminders,
		EmailDailySummary:  p.EmailDailySummary,
		EmailWeeklySummary: p.EmailWeeklySummary,
		DefaultView:        p.DefaultView,
		ItemsPerPage:       p.ItemsPerPage,
		ShowCompleted:      p.ShowCompleted,
		DefaultPriority:    p.DefaultPriority,
		ProfilePublic:      p.ProfilePublic,
		AllowSharing:       p.AllowSharing,
	}
	if p.DefaultCategory != nil {
		cat := CategoryToCategoryResponse(p.DefaultCategory, 0)
		resp.DefaultCategory = &cat
	}
	return resp
}
