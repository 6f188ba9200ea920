package serviceimpl

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tododeck/domain/dto"
	"tododeck/domain/models"
	"tododeck/domain/services"
)

type todoFixture struct {
	service      *TodoServiceImpl
	todoRepo     *fakeTodoRepo
	userRepo     *fakeUserRepo
	categoryRepo *fakeCategoryRepo
	activityRepo *fakeActivityRepo
	now          time.Time
	owner        uuid.UUID
}

func newTodoFixture(t *testing.T) *todoFixture {
	t.Helper()

	todoRepo := newFakeTodoRepo()
	userRepo := newFakeUserRepo()
	categoryRepo := newFakeCategoryRepo()
	activityRepo := newFakeActivityRepo()

	activity := NewActivityService(activityRepo, nil)
	service := NewTodoService(todoRepo, userRepo, categoryRepo, activity).(*TodoServiceImpl)

	now := time.Date(2026, 3, 18, 12, 0, 0, 0, time.UTC)
	service.now = func() time.Time { return now }

	owner := uuid.New()
	userRepo.Create(context.Background(), &models.User{ID: owner, Username: "owner", Email: "owner@example.com", IsActive: true})

	return &todoFixture{
		service:      service,
		todoRepo:     todoRepo,
		userRepo:     userRepo,
		categoryRepo: categoryRepo,
		activityRepo: activityRepo,
		now:          now,
		owner:        owner,
	}
}

func (f *todoFixture) addUser(username string) uuid.UUID {
	id := uuid.New()
	f.userRepo.Create(context.Background(), &models.User{
		ID: id, Username: username, Email: username + "@example.com", IsActive: true,
	})
	return id
}

func TestCreateTodoCompletedSetsTimestamp(t *testing.T) {
	f := newTodoFixture(t)

	todo, err := f.service.CreateTodo(context.Background(), f.owner, &dto.CreateTodoRequest{
		Title:     "write report",
		Completed: true,
	})
	require.NoError(t, err)

	assert.True(t, todo.Completed)
	require.NotNil(t, todo.CompletedAt)
	assert.Equal(t, f.now, *todo.CompletedAt)
	assert.Equal(t, models.PriorityMedium, todo.Priority)
}

func TestCreateTodoIgnoresForeignCategory(t *testing.T) {
	f := newTodoFixture(t)

	stranger := f.addUser("stranger")
	foreignCat := uuid.New()
	f.categoryRepo.Create(context.Background(), &models.Category{ID: foreignCat, Name: "Work", UserID: stranger})

	todo, err := f.service.CreateTodo(context.Background(), f.owner, &dto.CreateTodoRequest{
		Title:      "buy milk",
		CategoryID: &foreignCat,
	})
	require.NoError(t, err)

	// category ของคนอื่นถูกทิ้งเงียบๆ ไม่ error
	assert.Nil(t, todo.CategoryID)
}

func TestUpdateTodoClearsCompletedAt(t *testing.T) {
	f := newTodoFixture(t)

	todo, err := f.service.CreateTodo(context.Background(), f.owner, &dto.CreateTodoRequest{
		Title:     "clean desk",
		Completed: true,
	})
	require.NoError(t, err)
	require.NotNil(t, todo.CompletedAt)

	incomplete := false
	updated, err := f.service.UpdateTodo(context.Background(), todo.ID, f.owner, &dto.UpdateTodoRequest{
		Completed: &incomplete,
	})
	require.NoError(t, err)

	assert.False(t, updated.Completed)
	assert.Nil(t, updated.CompletedAt)
}

func TestUpdateTodoCompletingRecordsUpdated(t *testing.T) {
	f := newTodoFixture(t)

	todo, err := f.service.CreateTodo(context.Background(), f.owner, &dto.CreateTodoRequest{Title: "finish report"})
	require.NoError(t, err)

	done := true
	updated, err := f.service.UpdateTodo(context.Background(), todo.ID, f.owner, &dto.UpdateTodoRequest{Completed: &done})
	require.NoError(t, err)
	assert.True(t, updated.Completed)
	require.NotNil(t, updated.CompletedAt)

	// update path บันทึก "updated" เสมอ ไม่โปรโมตเป็น "completed"
	assert.Equal(t, models.ActionUpdated, f.activityRepo.lastAction())

	last := f.activityRepo.entries[len(f.activityRepo.entries)-1]
	assert.Equal(t, []string{"completed"}, last.Details["changed"])
}

func TestUpdateTodoNotOwned(t *testing.T) {
	f := newTodoFixture(t)

	todo, err := f.service.CreateTodo(context.Background(), f.owner, &dto.CreateTodoRequest{Title: "mine"})
	require.NoError(t, err)

	stranger := f.addUser("intruder")
	title := "hijacked"
	_, err = f.service.UpdateTodo(context.Background(), todo.ID, stranger, &dto.UpdateTodoRequest{Title: &title})

	assert.ErrorIs(t, err, services.ErrTodoNotFound)
}

func TestUpdateTodoShareSemantics(t *testing.T) {
	f := newTodoFixture(t)

	friend := f.addUser("friend")
	todo, err := f.service.CreateTodo(context.Background(), f.owner, &dto.CreateTodoRequest{
		Title:         "shared doc",
		SharedWithIDs: []uuid.UUID{friend},
	})
	require.NoError(t, err)
	assert.True(t, todo.IsShared)
	assert.Len(t, f.todoRepo.shares[todo.ID], 1)

	// nil = ไม่แตะ share set
	title := "renamed"
	_, err = f.service.UpdateTodo(context.Background(), todo.ID, f.owner, &dto.UpdateTodoRequest{Title: &title})
	require.NoError(t, err)
	assert.Len(t, f.todoRepo.shares[todo.ID], 1)

	// empty slice = ล้าง shares
	empty := []uuid.UUID{}
	updated, err := f.service.UpdateTodo(context.Background(), todo.ID, f.owner, &dto.UpdateTodoRequest{SharedWithIDs: &empty})
	require.NoError(t, err)
	assert.Empty(t, f.todoRepo.shares[todo.ID])
	assert.False(t, updated.IsShared)

	// non-empty = replace ทั้งชุด
	other := f.addUser("other")
	replacement := []uuid.UUID{other}
	updated, err = f.service.UpdateTodo(context.Background(), todo.ID, f.owner, &dto.UpdateTodoRequest{SharedWithIDs: &replacement})
	require.NoError(t, err)
	require.Len(t, f.todoRepo.shares[todo.ID], 1)
	assert.Equal(t, other, f.todoRepo.shares[todo.ID][0])
	assert.True(t, updated.IsShared)
}

func TestToggleComplete(t *testing.T) {
	f := newTodoFixture(t)

	todo, err := f.service.CreateTodo(context.Background(), f.owner, &dto.CreateTodoRequest{Title: "toggle me"})
	require.NoError(t, err)

	toggled, err := f.service.ToggleComplete(context.Background(), todo.ID, f.owner)
	require.NoError(t, err)
	assert.True(t, toggled.Completed)
	require.NotNil(t, toggled.CompletedAt)
	assert.Equal(t, models.ActionCompleted, f.activityRepo.lastAction())

	toggled, err = f.service.ToggleComplete(context.Background(), todo.ID, f.owner)
	require.NoError(t, err)
	assert.False(t, toggled.Completed)
	assert.Nil(t, toggled.CompletedAt)
	assert.Equal(t, models.ActionUpdated, f.activityRepo.lastAction())
}

func TestShareTodoSetsFlagEvenWhenNoUserResolves(t *testing.T) {
	f := newTodoFixture(t)

	todo, err := f.service.CreateTodo(context.Background(), f.owner, &dto.CreateTodoRequest{Title: "solo"})
	require.NoError(t, err)
	assert.False(t, todo.IsShared)

	// user ids ที่ไม่มีอยู่จริงถูกข้ามเงียบๆ แต่ is_shared ยังถูกตั้ง true
	shared, err := f.service.ShareTodo(context.Background(), todo.ID, f.owner, &dto.ShareTodoRequest{
		UserIDs: []uuid.UUID{uuid.New(), uuid.New()},
	})
	require.NoError(t, err)

	assert.True(t, shared.IsShared)
	assert.Empty(t, f.todoRepo.shares[todo.ID])
	assert.Equal(t, models.ActionShared, f.activityRepo.lastAction())
}

func TestShareTodoReplacesShareSet(t *testing.T) {
	f := newTodoFixture(t)

	alice := f.addUser("alice")
	bob := f.addUser("bob")

	todo, err := f.service.CreateTodo(context.Background(), f.owner, &dto.CreateTodoRequest{
		Title:         "team task",
		SharedWithIDs: []uuid.UUID{alice},
	})
	require.NoError(t, err)

	_, err = f.service.ShareTodo(context.Background(), todo.ID, f.owner, &dto.ShareTodoRequest{
		UserIDs: []uuid.UUID{bob},
	})
	require.NoError(t, err)

	require.Len(t, f.todoRepo.shares[todo.ID], 1)
	assert.Equal(t, bob, f.todoRepo.shares[todo.ID][0])
}

func TestDeleteTodoRecordsActivityWithTitle(t *testing.T) {
	f := newTodoFixture(t)

	todo, err := f.service.CreateTodo(context.Background(), f.owner, &dto.CreateTodoRequest{Title: "doomed"})
	require.NoError(t, err)

	require.NoError(t, f.service.DeleteTodo(context.Background(), todo.ID, f.owner))

	_, err = f.todoRepo.GetOwned(context.Background(), todo.ID, f.owner)
	assert.Error(t, err)

	// title ถูก denormalize ไว้ใน log ก่อนแถว todo หาย
	last := f.activityRepo.entries[len(f.activityRepo.entries)-1]
	assert.Equal(t, models.ActionDeleted, last.Action)
	assert.Equal(t, "doomed", last.TodoTitle)
}

func TestReorderSkipsUnknownIDs(t *testing.T) {
	f := newTodoFixture(t)

	todo, err := f.service.CreateTodo(context.Background(), f.owner, &dto.CreateTodoRequest{Title: "first"})
	require.NoError(t, err)

	stranger := f.addUser("stranger")
	foreign, err := f.service.CreateTodo(context.Background(), stranger, &dto.CreateTodoRequest{Title: "not yours"})
	require.NoError(t, err)

	activityCount := len(f.activityRepo.entries)

	err = f.service.Reorder(context.Background(), f.owner, &dto.ReorderRequest{
		Positions: map[string]int{
			todo.ID.String():    5,
			foreign.ID.String(): 9,
			"not-a-uuid":        1,
		},
	})
	require.NoError(t, err)

	mine, err := f.todoRepo.GetOwned(context.Background(), todo.ID, f.owner)
	require.NoError(t, err)
	assert.Equal(t, 5, mine.Position)

	theirs, err := f.todoRepo.GetOwned(context.Background(), foreign.ID, stranger)
	require.NoError(t, err)
	assert.Equal(t, 0, theirs.Position)

	// reorder ไม่บันทึก activity
	assert.Len(t, f.activityRepo.entries, activityCount)
}

func TestBulkActionComplete(t *testing.T) {
	f := newTodoFixture(t)

	first, err := f.service.CreateTodo(context.Background(), f.owner, &dto.CreateTodoRequest{Title: "a"})
	require.NoError(t, err)
	second, err := f.service.CreateTodo(context.Background(), f.owner, &dto.CreateTodoRequest{Title: "b"})
	require.NoError(t, err)

	stranger := f.addUser("stranger")
	foreign, err := f.service.CreateTodo(context.Background(), stranger, &dto.CreateTodoRequest{Title: "c"})
	require.NoError(t, err)

	message, err := f.service.BulkAction(context.Background(), f.owner, &dto.BulkActionRequest{
		Action:  "complete",
		TodoIDs: []uuid.UUID{first.ID, second.ID, foreign.ID},
	})
	require.NoError(t, err)
	assert.Equal(t, "Bulk complete applied", message)

	for _, id := range []uuid.UUID{first.ID, second.ID} {
		todo, err := f.todoRepo.GetOwned(context.Background(), id, f.owner)
		require.NoError(t, err)
		assert.True(t, todo.Completed)
		require.NotNil(t, todo.CompletedAt)
		assert.Equal(t, f.now, *todo.CompletedAt)
	}

	// todo ของคนอื่นไม่ถูกแตะ
	untouched, err := f.todoRepo.GetOwned(context.Background(), foreign.ID, stranger)
	require.NoError(t, err)
	assert.False(t, untouched.Completed)
}

func TestBulkActionIncompleteClearsTimestamp(t *testing.T) {
	f := newTodoFixture(t)

	todo, err := f.service.CreateTodo(context.Background(), f.owner, &dto.CreateTodoRequest{Title: "done", Completed: true})
	require.NoError(t, err)

	_, err = f.service.BulkAction(context.Background(), f.owner, &dto.BulkActionRequest{
		Action:  "incomplete",
		TodoIDs: []uuid.UUID{todo.ID},
	})
	require.NoError(t, err)

	reloaded, err := f.todoRepo.GetOwned(context.Background(), todo.ID, f.owner)
	require.NoError(t, err)
	assert.False(t, reloaded.Completed)
	assert.Nil(t, reloaded.CompletedAt)
}

func TestBulkActionDelete(t *testing.T) {
	f := newTodoFixture(t)

	todo, err := f.service.CreateTodo(context.Background(), f.owner, &dto.CreateTodoRequest{Title: "trash"})
	require.NoError(t, err)

	_, err = f.service.BulkAction(context.Background(), f.owner, &dto.BulkActionRequest{
		Action:  "delete",
		TodoIDs: []uuid.UUID{todo.ID, uuid.New()},
	})
	require.NoError(t, err)

	_, err = f.todoRepo.GetOwned(context.Background(), todo.ID, f.owner)
	assert.Error(t, err)
}

func TestBulkActionUnknown(t *testing.T) {
	f := newTodoFixture(t)

	_, err := f.service.BulkAction(context.Background(), f.owner, &dto.BulkActionRequest{
		Action:  "explode",
		TodoIDs: []uuid.UUID{uuid.New()},
	})
	assert.Error(t, err)
}

func TestGetTodoVisibleToSharedUser(t *testing.T) {
	f := newTodoFixture(t)

	friend := f.addUser("friend")
	todo, err := f.service.CreateTodo(context.Background(), f.owner, &dto.CreateTodoRequest{
		Title:         "shared read",
		SharedWithIDs: []uuid.UUID{friend},
	})
	require.NoError(t, err)

	visible, err := f.service.GetTodo(context.Background(), todo.ID, friend)
	require.NoError(t, err)
	assert.Equal(t, todo.ID, visible.ID)

	stranger := f.addUser("stranger")
	_, err = f.service.GetTodo(context.Background(), todo.ID, stranger)
	assert.ErrorIs(t, err, services.ErrTodoNotFound)
}
