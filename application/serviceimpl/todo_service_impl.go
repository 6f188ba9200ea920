package serviceimpl

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"tododeck/domain/dto"
	"tododeck/domain/models"
	"tododeck/domain/repositories"
	"tododeck/domain/services"
	"tododeck/pkg/logger"
)

type TodoServiceImpl struct {
	todoRepo     repositories.TodoRepository
	userRepo     repositories.UserRepository
	categoryRepo repositories.CategoryRepository
	activity     services.ActivityService
	stats        services.StatsService // nil ได้ ถ้าไม่ได้เปิด stats cache
	now          func() time.Time
}

func NewTodoService(
	todoRepo repositories.TodoRepository,
	userRepo repositories.UserRepository,
	categoryRepo repositories.CategoryRepository,
	activity services.ActivityService,
) services.TodoService {
	return &TodoServiceImpl{
		todoRepo:     todoRepo,
		userRepo:     userRepo,
		categoryRepo: categoryRepo,
		activity:     activity,
		now:          time.Now,
	}
}

// NewTodoServiceWithCache เหมือน NewTodoService แต่ invalidate stats cache หลังทุก mutation
func NewTodoServiceWithCache(
	todoRepo repositories.TodoRepository,
	userRepo repositories.UserRepository,
	categoryRepo repositories.CategoryRepository,
	activity services.ActivityService,
	stats services.StatsService,
) services.TodoService {
	return &TodoServiceImpl{
		todoRepo:     todoRepo,
		userRepo:     userRepo,
		categoryRepo: categoryRepo,
		activity:     activity,
		stats:        stats,
		now:          time.Now,
	}
}

func (s *TodoServiceImpl) ListTodos(ctx context.Context, userID uuid.UUID, filter repositories.TodoFilter) ([]models.Todo, error) {
	todos, err := s.todoRepo.ListVisible(ctx, userID, &filter)
	if err != nil {
		return nil, err
	}

	out := make([]models.Todo, 0, len(todos))
	for _, t := range todos {
		out = append(out, *t)
	}
	return out, nil
}

func (s *TodoServiceImpl) GetTodo(ctx context.Context, id, userID uuid.UUID) (*models.Todo, error) {
	todo, err := s.todoRepo.GetVisible(ctx, id, userID)
	if err != nil {
		return nil, services.ErrTodoNotFound
	}
	return todo, nil
}

func (s *TodoServiceImpl) CreateTodo(ctx context.Context, userID uuid.UUID, req *dto.CreateTodoRequest) (*models.Todo, error) {
	now := s.now()

	todo := &models.Todo{
		ID:                uuid.New(),
		UserID:            userID,
		Title:             req.Title,
		Description:       req.Description,
		Priority:          req.Priority,
		DueDate:           req.DueDate,
		Completed:         req.Completed,
		IsPinned:          req.IsPinned,
		IsArchived:        req.IsArchived,
		Position:          req.Position,
		IsRecurring:       req.IsRecurring,
		RecurrencePattern: req.RecurrencePattern,
		RecurrenceEndDate: req.RecurrenceEndDate,
		Tags:              req.Tags,
		EstimatedMinutes:  req.EstimatedMinutes,
		ActualMinutes:     req.ActualMinutes,
		ReminderDate:      req.ReminderDate,
		CreatedAt:         now,
		UpdatedAt:         now,
	}
	if todo.Priority == "" {
		todo.Priority = models.PriorityMedium
	}
	if todo.RecurrencePattern == "" {
		todo.RecurrencePattern = models.RecurrenceNone
	}
	if todo.Tags == nil {
		todo.Tags = models.StringList{}
	}

	// category เป็น owner-scoped: id ที่ resolve ไม่ได้ถูกทิ้งเงียบๆ
	todo.CategoryID = s.resolveCategory(ctx, req.CategoryID, userID)

	if req.ParentTodoID != nil {
		parent, err := s.todoRepo.GetOwned(ctx, *req.ParentTodoID, userID)
		if err != nil {
			return nil, errors.New("parent todo not found")
		}
		todo.ParentTodoID = &parent.ID
	}

	todo.ApplyCompletion(now)

	var sharedUsers []*models.User
	if len(req.SharedWithIDs) > 0 {
		sharedUsers, _ = s.userRepo.GetByIDs(ctx, req.SharedWithIDs)
		todo.IsShared = len(sharedUsers) > 0
	}

	if err := s.todoRepo.Create(ctx, todo); err != nil {
		logger.ErrorContext(ctx, "Failed to create todo", "user_id", userID, "error", err)
		return nil, err
	}

	if len(sharedUsers) > 0 {
		if err := s.todoRepo.ReplaceShares(ctx, todo, sharedUsers); err != nil {
			logger.WarnContext(ctx, "Failed to set shares on create", "todo_id", todo.ID, "error", err)
		}
	}

	s.recordActivity(ctx, userID, models.ActionCreated, todo, nil)
	s.invalidateStats(ctx, userID)

	logger.InfoContext(ctx, "Todo created", "todo_id", todo.ID, "user_id", userID)

	return s.reload(ctx, todo.ID, userID)
}

func (s *TodoServiceImpl) UpdateTodo(ctx context.Context, id, userID uuid.UUID, req *dto.UpdateTodoRequest) (*models.Todo, error) {
	todo, err := s.todoRepo.GetOwned(ctx, id, userID)
	if err != nil {
		return nil, services.ErrTodoNotFound
	}

	// เก็บชื่อ field ที่ถูกแก้ไว้ใส่ details ของ activity log
	var changed []string

	if req.Title != nil {
		todo.Title = *req.Title
		changed = append(changed, "title")
	}
	if req.Description != nil {
		todo.Description = *req.Description
		changed = append(changed, "description")
	}
	if req.CategoryID != nil {
		if *req.CategoryID == uuid.Nil {
			todo.CategoryID = nil
		} else {
			todo.CategoryID = s.resolveCategory(ctx, req.CategoryID, userID)
		}
		changed = append(changed, "category")
	}
	if req.Priority != nil {
		todo.Priority = *req.Priority
		changed = append(changed, "priority")
	}
	if req.DueDate != nil {
		todo.DueDate = req.DueDate
		changed = append(changed, "due_date")
	}
	if req.Completed != nil {
		todo.Completed = *req.Completed
		changed = append(changed, "completed")
	}
	if req.IsPinned != nil {
		todo.IsPinned = *req.IsPinned
		changed = append(changed, "is_pinned")
	}
	if req.IsArchived != nil {
		todo.IsArchived = *req.IsArchived
		changed = append(changed, "is_archived")
	}
	if req.Position != nil {
		todo.Position = *req.Position
		changed = append(changed, "position")
	}
	if req.ParentTodoID != nil {
		if *req.ParentTodoID == uuid.Nil {
			todo.ParentTodoID = nil
		} else {
			parent, err := s.todoRepo.GetOwned(ctx, *req.ParentTodoID, userID)
			if err != nil {
				return nil, errors.New("parent todo not found")
			}
			todo.ParentTodoID = &parent.ID
		}
		changed = append(changed, "parent_todo")
	}
	if req.IsRecurring != nil {
		todo.IsRecurring = *req.IsRecurring
		changed = append(changed, "is_recurring")
	}
	if req.RecurrencePattern != nil {
		todo.RecurrencePattern = *req.RecurrencePattern
		changed = append(changed, "recurrence_pattern")
	}
	if req.RecurrenceEndDate != nil {
		todo.RecurrenceEndDate = req.RecurrenceEndDate
		changed = append(changed, "recurrence_end_date")
	}
	if req.Tags != nil {
		todo.Tags = *req.Tags
		changed = append(changed, "tags")
	}
	if req.EstimatedMinutes != nil {
		todo.EstimatedMinutes = req.EstimatedMinutes
		changed = append(changed, "estimated_minutes")
	}
	if req.ActualMinutes != nil {
		todo.ActualMinutes = req.ActualMinutes
		changed = append(changed, "actual_minutes")
	}
	if req.ReminderDate != nil {
		todo.ReminderDate = req.ReminderDate
		todo.ReminderSent = false
		changed = append(changed, "reminder_date")
	}

	todo.ApplyCompletion(s.now())
	todo.UpdatedAt = s.now()

	if err := s.todoRepo.Update(ctx, todo); err != nil {
		logger.ErrorContext(ctx, "Failed to update todo", "todo_id", id, "error", err)
		return nil, err
	}

	// SharedWithIDs: nil = ไม่แตะ, empty = ล้าง shares, non-empty = replace ทั้งชุด
	if req.SharedWithIDs != nil {
		users, _ := s.userRepo.GetByIDs(ctx, *req.SharedWithIDs)
		if err := s.todoRepo.ReplaceShares(ctx, todo, users); err != nil {
			logger.WarnContext(ctx, "Failed to replace shares", "todo_id", id, "error", err)
		}
		todo.IsShared = len(users) > 0
		if err := s.todoRepo.Update(ctx, todo); err != nil {
			logger.WarnContext(ctx, "Failed to update share flag", "todo_id", id, "error", err)
		}
		changed = append(changed, "shared_with")
	}

	// update path บันทึก "updated" เสมอ แม้จะเพิ่งเปลี่ยนเป็น completed
	// action "completed" สงวนไว้ให้ toggle เท่านั้น
	var details map[string]interface{}
	if len(changed) > 0 {
		details = map[string]interface{}{"changed": changed}
	}
	s.recordActivity(ctx, userID, models.ActionUpdated, todo, details)
	s.invalidateStats(ctx, userID)

	return s.reload(ctx, id, userID)
}

func (s *TodoServiceImpl) DeleteTodo(ctx context.Context, id, userID uuid.UUID) error {
	todo, err := s.todoRepo.GetOwned(ctx, id, userID)
	if err != nil {
		return services.ErrTodoNotFound
	}

	// บันทึก activity ก่อนลบ เพื่อให้ title ติดไปกับ log หลัง todo หายแล้ว
	s.recordActivity(ctx, userID, models.ActionDeleted, todo, nil)

	if err := s.todoRepo.Delete(ctx, id); err != nil {
		logger.ErrorContext(ctx, "Failed to delete todo", "todo_id", id, "error", err)
		return err
	}

	s.invalidateStats(ctx, userID)

	logger.InfoContext(ctx, "Todo deleted", "todo_id", id, "user_id", userID)

	return nil
}

func (s *TodoServiceImpl) ToggleComplete(ctx context.Context, id, userID uuid.UUID) (*models.Todo, error) {
	todo, err := s.todoRepo.GetOwned(ctx, id, userID)
	if err != nil {
		return nil, services.ErrTodoNotFound
	}

	todo.Completed = !todo.Completed
	todo.ApplyCompletion(s.now())
	todo.UpdatedAt = s.now()

	if err := s.todoRepo.Update(ctx, todo); err != nil {
		logger.ErrorContext(ctx, "Failed to toggle todo", "todo_id", id, "error", err)
		return nil, err
	}

	action := models.ActionUpdated
	if todo.Completed {
		action = models.ActionCompleted
	}
	s.recordActivity(ctx, userID, action, todo, nil)
	s.invalidateStats(ctx, userID)

	return s.reload(ctx, id, userID)
}

func (s *TodoServiceImpl) ShareTodo(ctx context.Context, id, userID uuid.UUID, req *dto.ShareTodoRequest) (*models.Todo, error) {
	todo, err := s.todoRepo.GetOwned(ctx, id, userID)
	if err != nil {
		return nil, services.ErrTodoNotFound
	}

	// user id ที่ resolve ไม่ได้ถูกข้ามเงียบๆ ไม่ถือเป็น error
	users, err := s.userRepo.GetByIDs(ctx, req.UserIDs)
	if err != nil {
		return nil, err
	}

	if err := s.todoRepo.ReplaceShares(ctx, todo, users); err != nil {
		logger.ErrorContext(ctx, "Failed to replace shares", "todo_id", id, "error", err)
		return nil, err
	}

	// is_shared ถูกตั้ง true เสมอหลัง share แม้ resolved set จะว่าง
	// พฤติกรรมนี้ตั้งใจคงไว้ตาม behavior เดิมของ API
	todo.IsShared = true
	todo.UpdatedAt = s.now()
	if err := s.todoRepo.Update(ctx, todo); err != nil {
		return nil, err
	}

	usernames := make([]string, 0, len(users))
	for _, u := range users {
		usernames = append(usernames, u.Username)
	}
	s.recordActivity(ctx, userID, models.ActionShared, todo, map[string]interface{}{
		"shared_with": usernames,
	})
	s.invalidateStats(ctx, userID)

	logger.InfoContext(ctx, "Todo shared", "todo_id", id, "user_id", userID, "share_count", len(users))

	return s.reload(ctx, id, userID)
}

// Reorder ตั้ง position ตาม map ของ {todo_id: position}
// key ที่ parse ไม่ได้หรือไม่ใช่ todo ของ user จะถูกข้ามเงียบๆ และไม่บันทึก activity
func (s *TodoServiceImpl) Reorder(ctx context.Context, userID uuid.UUID, req *dto.ReorderRequest) error {
	for idStr, position := range req.Positions {
		id, err := uuid.Parse(idStr)
		if err != nil {
			continue
		}
		if err := s.todoRepo.UpdatePosition(ctx, id, userID, position); err != nil {
			logger.WarnContext(ctx, "Failed to update position", "todo_id", id, "error", err)
		}
	}

	s.invalidateStats(ctx, userID)

	return nil
}

// BulkAction ทำ action กับ todo หลายตัวพร้อมกัน เฉพาะตัวที่ user เป็นเจ้าของ
// id แปลกปลอมถูกข้ามเงียบๆ และ bulk path ไม่บันทึก activity
func (s *TodoServiceImpl) BulkAction(ctx context.Context, userID uuid.UUID, req *dto.BulkActionRequest) (string, error) {
	now := s.now()

	var err error
	switch req.Action {
	case "complete":
		err = s.todoRepo.BulkUpdate(ctx, userID, req.TodoIDs, repositories.BulkUpdates{
			"completed":    true,
			"completed_at": now,
			"updated_at":   now,
		})
	case "incomplete":
		err = s.todoRepo.BulkUpdate(ctx, userID, req.TodoIDs, repositories.BulkUpdates{
			"completed":    false,
			"completed_at": nil,
			"updated_at":   now,
		})
	case "archive":
		err = s.todoRepo.BulkUpdate(ctx, userID, req.TodoIDs, repositories.BulkUpdates{
			"is_archived": true,
			"updated_at":  now,
		})
	case "unarchive":
		err = s.todoRepo.BulkUpdate(ctx, userID, req.TodoIDs, repositories.BulkUpdates{
			"is_archived": false,
			"updated_at":  now,
		})
	case "delete":
		err = s.todoRepo.BulkDelete(ctx, userID, req.TodoIDs)
	default:
		return "", fmt.Errorf("unknown action: %s", req.Action)
	}

	if err != nil {
		logger.ErrorContext(ctx, "Bulk action failed", "action", req.Action, "user_id", userID, "error", err)
		return "", err
	}

	s.invalidateStats(ctx, userID)

	logger.InfoContext(ctx, "Bulk action applied", "action", req.Action, "user_id", userID, "count", len(req.TodoIDs))

	return fmt.Sprintf("Bulk %s applied", req.Action), nil
}

// resolveCategory คืน category id เมื่อ user เป็นเจ้าของเท่านั้น ไม่งั้นคืน nil
func (s *TodoServiceImpl) resolveCategory(ctx context.Context, categoryID *uuid.UUID, userID uuid.UUID) *uuid.UUID {
	if categoryID == nil || *categoryID == uuid.Nil {
		return nil
	}
	category, err := s.categoryRepo.GetOwned(ctx, *categoryID, userID)
	if err != nil {
		return nil
	}
	return &category.ID
}

func (s *TodoServiceImpl) recordActivity(ctx context.Context, userID uuid.UUID, action string, todo *models.Todo, details map[string]interface{}) {
	if s.activity == nil {
		return
	}
	if err := s.activity.Record(ctx, userID, action, todo, details); err != nil {
		logger.WarnContext(ctx, "Activity record failed", "action", action, "error", err)
	}
}

func (s *TodoServiceImpl) invalidateStats(ctx context.Context, userID uuid.UUID) {
	if s.stats != nil {
		s.stats.InvalidateCache(ctx, userID)
	}
}

// reload ดึง todo พร้อม preload ครบหลัง mutation เพื่อให้ response สมบูรณ์
func (s *TodoServiceImpl) reload(ctx context.Context, id, userID uuid.UUID) (*models.Todo, error) {
	todo, err := s.todoRepo.GetOwned(ctx, id, userID)
	if err != nil {
		return nil, err
	}
	return todo, nil
}
