package postgres

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"tododeck/domain/models"
	"tododeck/domain/repositories"
)

type TodoRepositoryImpl struct {
	db *gorm.DB
}

func NewTodoRepository(db *gorm.DB) repositories.TodoRepository {
	return &TodoRepositoryImpl{db: db}
}

func (r *TodoRepositoryImpl) Create(ctx context.Context, todo *models.Todo) error {
	return r.db.WithContext(ctx).Create(todo).Error
}

func (r *TodoRepositoryImpl) GetByID(ctx context.Context, id uuid.UUID) (*models.Todo, error) {
	var todo models.Todo
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&todo).Error
	if err != nil {
		return nil, err
	}
	return &todo, nil
}

func (r *TodoRepositoryImpl) GetOwned(ctx context.Context, id, userID uuid.UUID) (*models.Todo, error) {
	var todo models.Todo
	err := r.preloaded(ctx).
		Where("todos.id = ? AND todos.user_id = ?", id, userID).
		First(&todo).Error
	if err != nil {
		return nil, err
	}
	return &todo, nil
}

func (r *TodoRepositoryImpl) GetVisible(ctx context.Context, id, userID uuid.UUID) (*models.Todo, error) {
	var todo models.Todo
	err := r.preloaded(ctx).
		Where("todos.id = ? AND (todos.user_id = ? OR todos.id IN (?))",
			id, userID, r.sharedWithSubquery(userID)).
		First(&todo).Error
	if err != nil {
		return nil, err
	}
	return &todo, nil
}

func (r *TodoRepositoryImpl) Update(ctx context.Context, todo *models.Todo) error {
	// Save แบบ full เพื่อให้ field ที่กลับไปเป็น zero value (เช่น completed_at = nil) ถูกเขียนด้วย
	return r.db.WithContext(ctx).
		Omit("User", "Category", "SharedWith", "Subtasks", "Comments", "Attachments", "ParentTodo").
		Save(todo).Error
}

func (r *TodoRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&models.Todo{}).Error
}

func (r *TodoRepositoryImpl) ListVisible(ctx context.Context, userID uuid.UUID, filter *repositories.TodoFilter) ([]*models.Todo, error) {
	query := r.preloaded(ctx).
		Where("todos.user_id = ? OR todos.id IN (?)", userID, r.sharedWithSubquery(userID))

	if filter != nil {
		query = applyFilter(query, filter)
	} else {
		query = query.Where("todos.is_archived = ?", false)
	}

	var todos []*models.Todo
	err := query.
		Order("todos.position ASC, todos.created_at DESC").
		Find(&todos).Error
	return todos, err
}

func (r *TodoRepositoryImpl) ListOwned(ctx context.Context, userID uuid.UUID) ([]*models.Todo, error) {
	var todos []*models.Todo
	err := r.db.WithContext(ctx).
		Preload("Category").
		Where("user_id = ?", userID).
		Find(&todos).Error
	return todos, err
}

func (r *TodoRepositoryImpl) UpdatePosition(ctx context.Context, id, userID uuid.UUID, position int) error {
	// Where แบบ owner-scoped ทำให้ id แปลกปลอมกลายเป็น no-op
	return r.db.WithContext(ctx).
		Model(&models.Todo{}).
		Where("id = ? AND user_id = ?", id, userID).
		Update("position", position).Error
}

func (r *TodoRepositoryImpl) BulkUpdate(ctx context.Context, userID uuid.UUID, ids []uuid.UUID, updates repositories.BulkUpdates) error {
	if len(ids) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).
		Model(&models.Todo{}).
		Where("user_id = ? AND id IN ?", userID, ids).
		Updates(map[string]interface{}(updates)).Error
}

func (r *TodoRepositoryImpl) BulkDelete(ctx context.Context, userID uuid.UUID, ids []uuid.UUID) error {
	if len(ids) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).
		Where("user_id = ? AND id IN ?", userID, ids).
		Delete(&models.Todo{}).Error
}

func (r *TodoRepositoryImpl) ReplaceShares(ctx context.Context, todo *models.Todo, users []*models.User) error {
	return r.db.WithContext(ctx).Model(todo).Association("SharedWith").Replace(users)
}

func (r *TodoRepositoryImpl) ListDueReminders(ctx context.Context, now time.Time) ([]*models.Todo, error) {
	var todos []*models.Todo
	err := r.db.WithContext(ctx).
		Preload("User").
		Where("reminder_date IS NOT NULL AND reminder_date <= ? AND reminder_sent = ? AND completed = ?",
			now, false, false).
		Find(&todos).Error
	return todos, err
}

func (r *TodoRepositoryImpl) MarkReminderSent(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).
		Model(&models.Todo{}).
		Where("id = ?", id).
		Update("reminder_sent", true).Error
}

// preloaded คืน query พร้อม preload ความสัมพันธ์ที่ response ต้องใช้
func (r *TodoRepositoryImpl) preloaded(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Model(&models.Todo{}).
		Preload("User").
		Preload("Category").
		Preload("SharedWith").
		Preload("Subtasks").
		Preload("Subtasks.User").
		Preload("Comments").
		Preload("Attachments")
}

func (r *TodoRepositoryImpl) sharedWithSubquery(userID uuid.UUID) *gorm.DB {
	return r.db.
		Table("todo_shares").
		Select("todo_id").
		Where("user_id = ?", userID)
}

// applyFilter แปลง TodoFilter เป็น where clauses
// Archived nil ซ่อน archived โดย default ต่างจาก Completed nil ที่แสดงทั้งคู่
func applyFilter(query *gorm.DB, filter *repositories.TodoFilter) *gorm.DB {
	if filter.Archived != nil {
		query = query.Where("todos.is_archived = ?", *filter.Archived)
	} else {
		query = query.Where("todos.is_archived = ?", false)
	}

	if filter.CategoryID != nil {
		query = query.Where("todos.category_id = ?", *filter.CategoryID)
	}

	if filter.Priority != "" {
		query = query.Where("todos.priority = ?", filter.Priority)
	}

	if filter.Completed != nil {
		query = query.Where("todos.completed = ?", *filter.Completed)
	}

	if filter.Search != "" {
		searchTerm := "%" + filter.Search + "%"
		query = query.Where("todos.title ILIKE ? OR todos.description ILIKE ? OR todos.tags::text ILIKE ?",
			searchTerm, searchTerm, searchTerm)
	}

	switch filter.DueBucket {
	case repositories.DueBucketToday:
		start := startOfDay(time.Now().UTC())
		query = query.Where("todos.due_date >= ? AND todos.due_date < ?", start, start.AddDate(0, 0, 1))
	case repositories.DueBucketWeek:
		// นับจากวันนี้ไปอีก 7 วันแบบ inclusive
		start := startOfDay(time.Now().UTC())
		query = query.Where("todos.due_date >= ? AND todos.due_date < ?", start, start.AddDate(0, 0, 8))
	case repositories.DueBucketOverdue:
		query = query.Where("todos.due_date < ? AND todos.completed = ?", time.Now().UTC(), false)
	}

	return query
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
