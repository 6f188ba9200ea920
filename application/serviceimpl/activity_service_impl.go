package serviceimpl

import (
	"context"
	"time"

	"github.com/google/uuid"

	"tododeck/domain/models"
	"tododeck/domain/repositories"
	"tododeck/domain/services"
	"tododeck/infrastructure/nats"
	"tododeck/pkg/logger"
)

const defaultActivityLimit = 50

type ActivityServiceImpl struct {
	activityRepo repositories.ActivityRepository
	publisher    *nats.Publisher // nil ได้ ถ้าไม่ได้ต่อ NATS
	now          func() time.Time
}

func NewActivityService(activityRepo repositories.ActivityRepository, publisher *nats.Publisher) services.ActivityService {
	return &ActivityServiceImpl{
		activityRepo: activityRepo,
		publisher:    publisher,
		now:          time.Now,
	}
}

// Record บันทึก activity log และ publish event แบบ best-effort
// ความล้มเหลวของ event publish ไม่ทำให้ operation หลัก fail
func (s *ActivityServiceImpl) Record(ctx context.Context, userID uuid.UUID, action string, todo *models.Todo, details map[string]interface{}) error {
	entry := &models.ActivityLog{
		ID:        uuid.New(),
		UserID:    userID,
		Action:    action,
		Timestamp: s.now(),
		Details:   details,
	}
	if todo != nil {
		todoID := todo.ID
		entry.TodoID = &todoID
		entry.TodoTitle = todo.Title
	}

	if err := s.activityRepo.Create(ctx, entry); err != nil {
		logger.ErrorContext(ctx, "Failed to record activity",
			"user_id", userID, "action", action, "error", err)
		return err
	}

	if s.publisher != nil {
		todoID := ""
		if entry.TodoID != nil {
			todoID = entry.TodoID.String()
		}
		event := nats.NewActivityEvent(userID.String(), action, todoID, entry.TodoTitle, details)
		if err := s.publisher.PublishActivity(ctx, event); err != nil {
			logger.WarnContext(ctx, "Activity event publish failed", "action", action, "error", err)
		}
	}

	return nil
}

// RecordAccount บันทึก activity ที่ไม่ผูกกับ todo โดยใช้ title ตายตัวแทน
func (s *ActivityServiceImpl) RecordAccount(ctx context.Context, userID uuid.UUID, action, title string) error {
	entry := &models.ActivityLog{
		ID:        uuid.New(),
		UserID:    userID,
		Action:    action,
		TodoTitle: title,
		Timestamp: s.now(),
	}

	if err := s.activityRepo.Create(ctx, entry); err != nil {
		logger.ErrorContext(ctx, "Failed to record account activity",
			"user_id", userID, "action", action, "error", err)
		return err
	}

	if s.publisher != nil {
		event := nats.NewActivityEvent(userID.String(), action, "", title, nil)
		if err := s.publisher.PublishActivity(ctx, event); err != nil {
			logger.WarnContext(ctx, "Activity event publish failed", "action", action, "error", err)
		}
	}

	return nil
}

func (s *ActivityServiceImpl) ListRecent(ctx context.Context, userID uuid.UUID, limit int) ([]models.ActivityLog, error) {
	if limit <= 0 || limit > 200 {
		limit = defaultActivityLimit
	}

	entries, err := s.activityRepo.ListByUser(ctx, userID, limit)
	if err != nil {
		return nil, err
	}

	out := make([]models.ActivityLog, 0, len(entries))
	for _, e := range entries {
		out = append(out, *e)
	}
	return out, nil
}
