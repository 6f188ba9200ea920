package serviceimpl

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"tododeck/domain/models"
	"tododeck/domain/repositories"
)

// in-memory repositories สำหรับ unit tests
// พฤติกรรม filter/visibility เลียนแบบ postgres impl

type fakeTodoRepo struct {
	todos  map[uuid.UUID]*models.Todo
	shares map[uuid.UUID][]uuid.UUID // todo id -> user ids ที่ถูกแชร์ให้
}

func newFakeTodoRepo() *fakeTodoRepo {
	return &fakeTodoRepo{
		todos:  map[uuid.UUID]*models.Todo{},
		shares: map[uuid.UUID][]uuid.UUID{},
	}
}

func (r *fakeTodoRepo) Create(_ context.Context, todo *models.Todo) error {
	clone := *todo
	r.todos[todo.ID] = &clone
	return nil
}

func (r *fakeTodoRepo) GetByID(_ context.Context, id uuid.UUID) (*models.Todo, error) {
	todo, ok := r.todos[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	clone := *todo
	return &clone, nil
}

func (r *fakeTodoRepo) GetOwned(_ context.Context, id, userID uuid.UUID) (*models.Todo, error) {
	todo, ok := r.todos[id]
	if !ok || todo.UserID != userID {
		return nil, gorm.ErrRecordNotFound
	}
	clone := *todo
	return &clone, nil
}

func (r *fakeTodoRepo) GetVisible(_ context.Context, id, userID uuid.UUID) (*models.Todo, error) {
	todo, ok := r.todos[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	if todo.UserID != userID && !r.sharedWith(id, userID) {
		return nil, gorm.ErrRecordNotFound
	}
	clone := *todo
	return &clone, nil
}

func (r *fakeTodoRepo) sharedWith(todoID, userID uuid.UUID) bool {
	for _, uid := range r.shares[todoID] {
		if uid == userID {
			return true
		}
	}
	return false
}

func (r *fakeTodoRepo) Update(_ context.Context, todo *models.Todo) error {
	if _, ok := r.todos[todo.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	clone := *todo
	r.todos[todo.ID] = &clone
	return nil
}

func (r *fakeTodoRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.todos, id)
	delete(r.shares, id)
	return nil
}

func (r *fakeTodoRepo) ListVisible(_ context.Context, userID uuid.UUID, filter *repositories.TodoFilter) ([]*models.Todo, error) {
	var out []*models.Todo
	for id, todo := range r.todos {
		if todo.UserID != userID && !r.sharedWith(id, userID) {
			continue
		}
		if !matchFilter(todo, filter) {
			continue
		}
		clone := *todo
		out = append(out, &clone)
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].Position != out[j].Position {
			return out[i].Position < out[j].Position
		}
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

func matchFilter(todo *models.Todo, filter *repositories.TodoFilter) bool {
	if filter == nil {
		return !todo.IsArchived
	}
	if filter.Archived == nil {
		if todo.IsArchived {
			return false
		}
	} else if todo.IsArchived != *filter.Archived {
		return false
	}
	if filter.Completed != nil && todo.Completed != *filter.Completed {
		return false
	}
	if filter.CategoryID != nil {
		if todo.CategoryID == nil || *todo.CategoryID != *filter.CategoryID {
			return false
		}
	}
	if filter.Priority != "" && todo.Priority != filter.Priority {
		return false
	}
	if filter.Search != "" {
		q := strings.ToLower(filter.Search)
		if !strings.Contains(strings.ToLower(todo.Title), q) &&
			!strings.Contains(strings.ToLower(todo.Description), q) {
			return false
		}
	}
	return true
}

func (r *fakeTodoRepo) ListOwned(_ context.Context, userID uuid.UUID) ([]*models.Todo, error) {
	var out []*models.Todo
	for _, todo := range r.todos {
		if todo.UserID == userID {
			clone := *todo
			out = append(out, &clone)
		}
	}
	return out, nil
}

func (r *fakeTodoRepo) UpdatePosition(_ context.Context, id, userID uuid.UUID, position int) error {
	todo, ok := r.todos[id]
	if !ok || todo.UserID != userID {
		// id แปลกปลอมเป็น no-op ไม่ใช่ error
		return nil
	}
	todo.Position = position
	return nil
}

func (r *fakeTodoRepo) BulkUpdate(_ context.Context, userID uuid.UUID, ids []uuid.UUID, updates repositories.BulkUpdates) error {
	for _, id := range ids {
		todo, ok := r.todos[id]
		if !ok || todo.UserID != userID {
			continue
		}
		if v, ok := updates["completed"]; ok {
			todo.Completed = v.(bool)
		}
		if v, ok := updates["completed_at"]; ok {
			if v == nil {
				todo.CompletedAt = nil
			} else {
				t := v.(time.Time)
				todo.CompletedAt = &t
			}
		}
		if v, ok := updates["is_archived"]; ok {
			todo.IsArchived = v.(bool)
		}
		if v, ok := updates["updated_at"]; ok {
			todo.UpdatedAt = v.(time.Time)
		}
	}
	return nil
}

func (r *fakeTodoRepo) BulkDelete(_ context.Context, userID uuid.UUID, ids []uuid.UUID) error {
	for _, id := range ids {
		todo, ok := r.todos[id]
		if !ok || todo.UserID != userID {
			continue
		}
		delete(r.todos, id)
		delete(r.shares, id)
	}
	return nil
}

func (r *fakeTodoRepo) ReplaceShares(_ context.Context, todo *models.Todo, users []*models.User) error {
	ids := make([]uuid.UUID, 0, len(users))
	shared := make([]models.User, 0, len(users))
	for _, u := range users {
		ids = append(ids, u.ID)
		shared = append(shared, *u)
	}
	r.shares[todo.ID] = ids
	if stored, ok := r.todos[todo.ID]; ok {
		stored.SharedWith = shared
	}
	return nil
}

func (r *fakeTodoRepo) ListDueReminders(_ context.Context, now time.Time) ([]*models.Todo, error) {
	var out []*models.Todo
	for _, todo := range r.todos {
		if todo.ReminderDate == nil || todo.ReminderSent || todo.Completed {
			continue
		}
		if todo.ReminderDate.After(now) {
			continue
		}
		clone := *todo
		out = append(out, &clone)
	}
	return out, nil
}

func (r *fakeTodoRepo) MarkReminderSent(_ context.Context, id uuid.UUID) error {
	todo, ok := r.todos[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	todo.ReminderSent = true
	return nil
}

type fakeUserRepo struct {
	users map[uuid.UUID]*models.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[uuid.UUID]*models.User{}}
}

func (r *fakeUserRepo) Create(_ context.Context, user *models.User) error {
	clone := *user
	r.users[user.ID] = &clone
	return nil
}

func (r *fakeUserRepo) GetByID(_ context.Context, id uuid.UUID) (*models.User, error) {
	user, ok := r.users[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	clone := *user
	return &clone, nil
}

func (r *fakeUserRepo) GetByEmail(_ context.Context, email string) (*models.User, error) {
	for _, user := range r.users {
		if user.Email == email {
			clone := *user
			return &clone, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeUserRepo) GetByUsername(_ context.Context, username string) (*models.User, error) {
	for _, user := range r.users {
		if user.Username == username {
			clone := *user
			return &clone, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeUserRepo) Update(_ context.Context, id uuid.UUID, user *models.User) error {
	clone := *user
	r.users[id] = &clone
	return nil
}

func (r *fakeUserRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.users, id)
	return nil
}

func (r *fakeUserRepo) GetByIDs(_ context.Context, ids []uuid.UUID) ([]*models.User, error) {
	var out []*models.User
	for _, id := range ids {
		if user, ok := r.users[id]; ok {
			clone := *user
			out = append(out, &clone)
		}
	}
	return out, nil
}

func (r *fakeUserRepo) Search(_ context.Context, query string, exclude uuid.UUID, limit int) ([]*models.User, error) {
	q := strings.ToLower(query)
	var out []*models.User
	for _, user := range r.users {
		if user.ID == exclude || !user.IsActive {
			continue
		}
		if strings.Contains(strings.ToLower(user.Username), q) ||
			strings.Contains(strings.ToLower(user.Email), q) {
			clone := *user
			out = append(out, &clone)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Username < out[j].Username })
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

type fakeCategoryRepo struct {
	categories map[uuid.UUID]*models.Category
}

func newFakeCategoryRepo() *fakeCategoryRepo {
	return &fakeCategoryRepo{categories: map[uuid.UUID]*models.Category{}}
}

func (r *fakeCategoryRepo) Create(_ context.Context, category *models.Category) error {
	clone := *category
	r.categories[category.ID] = &clone
	return nil
}

func (r *fakeCategoryRepo) GetOwned(_ context.Context, id, userID uuid.UUID) (*models.Category, error) {
	category, ok := r.categories[id]
	if !ok || category.UserID != userID {
		return nil, gorm.ErrRecordNotFound
	}
	clone := *category
	return &clone, nil
}

func (r *fakeCategoryRepo) GetByNameAndUser(_ context.Context, name string, userID uuid.UUID) (*models.Category, error) {
	for _, category := range r.categories {
		if category.Name == name && category.UserID == userID {
			clone := *category
			return &clone, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeCategoryRepo) Update(_ context.Context, category *models.Category) error {
	clone := *category
	r.categories[category.ID] = &clone
	return nil
}

func (r *fakeCategoryRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.categories, id)
	return nil
}

func (r *fakeCategoryRepo) ListByUser(_ context.Context, userID uuid.UUID) ([]*models.Category, error) {
	var out []*models.Category
	for _, category := range r.categories {
		if category.UserID == userID {
			clone := *category
			out = append(out, &clone)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (r *fakeCategoryRepo) CountTodos(_ context.Context, _ uuid.UUID) (map[uuid.UUID]int64, error) {
	return map[uuid.UUID]int64{}, nil
}

type fakeCommentRepo struct {
	comments []*models.TodoComment
}

func newFakeCommentRepo() *fakeCommentRepo {
	return &fakeCommentRepo{}
}

func (r *fakeCommentRepo) Create(_ context.Context, comment *models.TodoComment) error {
	clone := *comment
	r.comments = append(r.comments, &clone)
	return nil
}

func (r *fakeCommentRepo) ListByTodo(_ context.Context, todoID uuid.UUID) ([]*models.TodoComment, error) {
	var out []*models.TodoComment
	for _, c := range r.comments {
		if c.TodoID == todoID {
			clone := *c
			out = append(out, &clone)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

type fakeActivityRepo struct {
	entries []*models.ActivityLog
}

func newFakeActivityRepo() *fakeActivityRepo {
	return &fakeActivityRepo{}
}

func (r *fakeActivityRepo) Create(_ context.Context, entry *models.ActivityLog) error {
	clone := *entry
	r.entries = append(r.entries, &clone)
	return nil
}

func (r *fakeActivityRepo) ListByUser(_ context.Context, userID uuid.UUID, limit int) ([]*models.ActivityLog, error) {
	var out []*models.ActivityLog
	for _, entry := range r.entries {
		if entry.UserID == userID {
			clone := *entry
			out = append(out, &clone)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Timestamp.After(out[j].Timestamp) })
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

// lastAction คืน action ล่าสุดที่ถูกบันทึก ใช้ใน assertions
func (r *fakeActivityRepo) lastAction() string {
	if len(r.entries) == 0 {
		return ""
	}
	return r.entries[len(r.entries)-1].Action
}
