package serviceimpl

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tododeck/domain/models"
)

type statsFixture struct {
	service  *StatsServiceImpl
	todoRepo *fakeTodoRepo
	now      time.Time
	owner    uuid.UUID
}

func newStatsFixture(t *testing.T) *statsFixture {
	t.Helper()

	todoRepo := newFakeTodoRepo()
	service := NewStatsService(todoRepo).(*StatsServiceImpl)

	// 2026-03-18 ตรงกับวันพุธ
	now := time.Date(2026, 3, 18, 15, 0, 0, 0, time.UTC)
	service.now = func() time.Time { return now }

	return &statsFixture{
		service:  service,
		todoRepo: todoRepo,
		now:      now,
		owner:    uuid.New(),
	}
}

func (f *statsFixture) addTodo(todo models.Todo) {
	if todo.ID == uuid.Nil {
		todo.ID = uuid.New()
	}
	if todo.UserID == uuid.Nil {
		todo.UserID = f.owner
	}
	if todo.CreatedAt.IsZero() {
		todo.CreatedAt = f.now
	}
	f.todoRepo.Create(context.Background(), &todo)
}

func TestStatsEmpty(t *testing.T) {
	f := newStatsFixture(t)

	stats, err := f.service.GetStats(context.Background(), f.owner)
	require.NoError(t, err)

	assert.Equal(t, int64(0), stats.Overview.Total)
	assert.Equal(t, float64(0), stats.Overview.CompletionRate)
	assert.Empty(t, stats.Categories)
	// histogram มี 7 entry เสมอแม้ไม่มีข้อมูล
	require.Len(t, stats.DailyActivity, 7)
	assert.Nil(t, stats.Productivity.AvgCompletionTime)
	// first-max บนสัปดาห์ศูนย์หมดคืนวันแรกของหน้าต่าง ไม่ใช่ null
	require.NotNil(t, stats.Productivity.MostProductiveDay)
	assert.Equal(t, "Thu", *stats.Productivity.MostProductiveDay)
}

func TestStatsCompletionRateRounding(t *testing.T) {
	f := newStatsFixture(t)

	completedAt := f.now.Add(-time.Hour)
	f.addTodo(models.Todo{Title: "done", Completed: true, CompletedAt: &completedAt})
	f.addTodo(models.Todo{Title: "open a"})
	f.addTodo(models.Todo{Title: "open b"})

	stats, err := f.service.GetStats(context.Background(), f.owner)
	require.NoError(t, err)

	assert.Equal(t, int64(3), stats.Overview.Total)
	assert.Equal(t, int64(1), stats.Overview.Completed)
	assert.Equal(t, int64(2), stats.Overview.Active)
	// 1/3 ปัดเป็นทศนิยมหนึ่งตำแหน่ง
	assert.Equal(t, 33.3, stats.Overview.CompletionRate)
}

func TestStatsArchivedNotActive(t *testing.T) {
	f := newStatsFixture(t)

	f.addTodo(models.Todo{Title: "open"})
	f.addTodo(models.Todo{Title: "shelved", IsArchived: true})

	stats, err := f.service.GetStats(context.Background(), f.owner)
	require.NoError(t, err)

	// archived ยังนับใน total แต่ไม่นับเป็น active
	assert.Equal(t, int64(2), stats.Overview.Total)
	assert.Equal(t, int64(1), stats.Overview.Active)
}

func TestStatsOverdueCount(t *testing.T) {
	f := newStatsFixture(t)

	past := f.now.Add(-48 * time.Hour)
	future := f.now.Add(48 * time.Hour)
	completedAt := f.now.Add(-time.Hour)

	f.addTodo(models.Todo{Title: "late", DueDate: &past})
	f.addTodo(models.Todo{Title: "upcoming", DueDate: &future})
	// completed แล้วไม่นับ overdue แม้ due date ผ่านไปแล้ว
	f.addTodo(models.Todo{Title: "late but done", DueDate: &past, Completed: true, CompletedAt: &completedAt})

	stats, err := f.service.GetStats(context.Background(), f.owner)
	require.NoError(t, err)

	assert.Equal(t, int64(1), stats.Overview.Overdue)
}

func TestStatsCategoryRollup(t *testing.T) {
	f := newStatsFixture(t)

	work := &models.Category{ID: uuid.New(), Name: "Work", Color: "#ef4444", UserID: f.owner}
	home := &models.Category{ID: uuid.New(), Name: "Home", Color: "#6366f1", UserID: f.owner}

	completedAt := f.now.Add(-time.Hour)
	f.addTodo(models.Todo{Title: "w1", CategoryID: &work.ID, Category: work, Completed: true, CompletedAt: &completedAt})
	f.addTodo(models.Todo{Title: "w2", CategoryID: &work.ID, Category: work})
	f.addTodo(models.Todo{Title: "h1", CategoryID: &home.ID, Category: home})
	f.addTodo(models.Todo{Title: "uncategorized"})

	stats, err := f.service.GetStats(context.Background(), f.owner)
	require.NoError(t, err)

	// เรียงตามชื่อ โดย bucket ไม่มี category อยู่ท้ายสุด
	require.Len(t, stats.Categories, 3)

	require.NotNil(t, stats.Categories[0].Name)
	assert.Equal(t, "Home", *stats.Categories[0].Name)
	assert.Equal(t, int64(1), stats.Categories[0].Total)

	require.NotNil(t, stats.Categories[1].Name)
	assert.Equal(t, "Work", *stats.Categories[1].Name)
	assert.Equal(t, int64(2), stats.Categories[1].Total)
	assert.Equal(t, int64(1), stats.Categories[1].Completed)
	require.NotNil(t, stats.Categories[1].Color)
	assert.Equal(t, "#ef4444", *stats.Categories[1].Color)

	assert.Nil(t, stats.Categories[2].Name)
	assert.Nil(t, stats.Categories[2].Color)
	assert.Equal(t, int64(1), stats.Categories[2].Total)
}

func TestStatsDailyActivityHistogram(t *testing.T) {
	f := newStatsFixture(t)

	twoDaysAgo := f.now.AddDate(0, 0, -2)
	yesterday := f.now.AddDate(0, 0, -1)
	f.addTodo(models.Todo{Title: "old", CreatedAt: twoDaysAgo, Completed: true, CompletedAt: &yesterday})

	// นอกหน้าต่าง 7 วัน ไม่โผล่ใน histogram
	tenDaysAgo := f.now.AddDate(0, 0, -10)
	f.addTodo(models.Todo{Title: "ancient", CreatedAt: tenDaysAgo})

	stats, err := f.service.GetStats(context.Background(), f.owner)
	require.NoError(t, err)

	require.Len(t, stats.DailyActivity, 7)

	// เรียงจากวันเก่าสุด (วันนี้-6) ไปวันนี้
	assert.Equal(t, "2026-03-12", stats.DailyActivity[0].Date)
	assert.Equal(t, "Thu", stats.DailyActivity[0].Day)
	assert.Equal(t, "2026-03-18", stats.DailyActivity[6].Date)
	assert.Equal(t, "Wed", stats.DailyActivity[6].Day)

	assert.Equal(t, int64(1), stats.DailyActivity[4].Created)   // 2026-03-16
	assert.Equal(t, int64(1), stats.DailyActivity[5].Completed) // 2026-03-17
	assert.Equal(t, int64(0), stats.DailyActivity[0].Created)
}

func TestStatsMostProductiveDayFirstMax(t *testing.T) {
	f := newStatsFixture(t)

	saturday := time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC)
	monday := time.Date(2026, 3, 16, 10, 0, 0, 0, time.UTC)
	created := f.now.AddDate(0, 0, -6)

	// เสมอกันสองวัน วันละ 2 completion
	for i := 0; i < 2; i++ {
		sat := saturday
		mon := monday
		f.addTodo(models.Todo{Title: "sat", CreatedAt: created, Completed: true, CompletedAt: &sat})
		f.addTodo(models.Todo{Title: "mon", CreatedAt: created, Completed: true, CompletedAt: &mon})
	}

	stats, err := f.service.GetStats(context.Background(), f.owner)
	require.NoError(t, err)

	// เสมอกันเลือกวันที่เก่ากว่า
	require.NotNil(t, stats.Productivity.MostProductiveDay)
	assert.Equal(t, "Sat", *stats.Productivity.MostProductiveDay)
}

func TestStatsMostProductiveDayNoCompletions(t *testing.T) {
	f := newStatsFixture(t)

	// มี todo แต่ไม่มี completion ในหน้าต่าง 7 วัน ยังได้ label ของวันแรก
	f.addTodo(models.Todo{Title: "never done"})

	stats, err := f.service.GetStats(context.Background(), f.owner)
	require.NoError(t, err)

	require.NotNil(t, stats.Productivity.MostProductiveDay)
	assert.Equal(t, "Thu", *stats.Productivity.MostProductiveDay)
}

func TestStatsAvgCompletionWholeDays(t *testing.T) {
	f := newStatsFixture(t)

	created := f.now.AddDate(0, 0, -5)
	completedAt := created.Add(3*24*time.Hour + 20*time.Hour) // 3.8 วัน
	f.addTodo(models.Todo{Title: "slow", CreatedAt: created, Completed: true, CompletedAt: &completedAt})

	stats, err := f.service.GetStats(context.Background(), f.owner)
	require.NoError(t, err)

	require.NotNil(t, stats.Productivity.AvgCompletionTime)
	// ตัดเป็นจำนวนวันเต็ม
	assert.Equal(t, int64(3), *stats.Productivity.AvgCompletionTime)
}

func TestStatsOnlyOwnedTodos(t *testing.T) {
	f := newStatsFixture(t)

	f.addTodo(models.Todo{Title: "mine"})
	f.addTodo(models.Todo{Title: "someone else's", UserID: uuid.New()})

	stats, err := f.service.GetStats(context.Background(), f.owner)
	require.NoError(t, err)

	assert.Equal(t, int64(1), stats.Overview.Total)
}
