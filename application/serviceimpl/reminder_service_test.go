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

func TestReminderScanOnce(t *testing.T) {
	todoRepo := newFakeTodoRepo()
	scan := NewReminderService(ReminderConfig{}, todoRepo, nil, nil)

	now := time.Date(2026, 3, 18, 9, 0, 0, 0, time.UTC)
	scan.now = func() time.Time { return now }

	owner := uuid.New()
	past := now.Add(-time.Minute)
	future := now.Add(time.Hour)

	due := models.Todo{ID: uuid.New(), UserID: owner, Title: "call dentist", ReminderDate: &past}
	notYet := models.Todo{ID: uuid.New(), UserID: owner, Title: "later", ReminderDate: &future}
	alreadySent := models.Todo{ID: uuid.New(), UserID: owner, Title: "sent", ReminderDate: &past, ReminderSent: true}
	completedAt := now.Add(-time.Hour)
	done := models.Todo{ID: uuid.New(), UserID: owner, Title: "done", ReminderDate: &past, Completed: true, CompletedAt: &completedAt}

	for _, todo := range []models.Todo{due, notYet, alreadySent, done} {
		clone := todo
		require.NoError(t, todoRepo.Create(context.Background(), &clone))
	}

	sent := scan.ScanOnce(context.Background())
	assert.Equal(t, 1, sent)

	reloaded, err := todoRepo.GetOwned(context.Background(), due.ID, owner)
	require.NoError(t, err)
	assert.True(t, reloaded.ReminderSent)

	pending, err := todoRepo.GetOwned(context.Background(), notYet.ID, owner)
	require.NoError(t, err)
	assert.False(t, pending.ReminderSent)

	// รอบสองไม่มีอะไรให้ส่งแล้ว
	assert.Equal(t, 0, scan.ScanOnce(context.Background()))
}

func TestReminderConfigDefaults(t *testing.T) {
	scan := NewReminderService(ReminderConfig{}, newFakeTodoRepo(), nil, nil)
	assert.Equal(t, time.Minute, scan.config.ScanInterval)
}
