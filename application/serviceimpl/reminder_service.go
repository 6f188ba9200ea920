package serviceimpl

import (
	"context"
	"time"

	"tododeck/domain/repositories"
	"tododeck/infrastructure/nats"
	"tododeck/pkg/logger"
	"tododeck/pkg/scheduler"
)

// ReminderConfig การตั้งค่าสำหรับ reminder scanner
type ReminderConfig struct {
	ScanInterval time.Duration // รอบการสแกน (default: 1m)
}

// ReminderService สแกน todos ที่ถึงเวลาแจ้งเตือนและ publish reminder event
// แต่ละ reminder ถูกส่งครั้งเดียว (mark reminder_sent หลังส่ง)
type ReminderService struct {
	config    ReminderConfig
	todoRepo  repositories.TodoRepository
	publisher *nats.Publisher // nil ได้ ถ้าไม่ได้ต่อ NATS
	scheduler scheduler.EventScheduler
	now       func() time.Time
}

// NewReminderService สร้าง service ใหม่
func NewReminderService(
	config ReminderConfig,
	todoRepo repositories.TodoRepository,
	publisher *nats.Publisher,
	eventScheduler scheduler.EventScheduler,
) *ReminderService {
	service := &ReminderService{
		config:    config,
		todoRepo:  todoRepo,
		publisher: publisher,
		scheduler: eventScheduler,
		now:       time.Now,
	}

	if service.config.ScanInterval == 0 {
		service.config.ScanInterval = time.Minute
	}

	return service
}

// RegisterScanJob ลงทะเบียน scan job กับ scheduler
func (s *ReminderService) RegisterScanJob() error {
	return s.scheduler.AddIntervalJob("reminder_scan", s.config.ScanInterval, func() {
		ctx := context.Background()
		s.ScanOnce(ctx)
	})
}

// ScanOnce สแกนหนึ่งรอบ คืนจำนวน reminder ที่ส่งสำเร็จ
func (s *ReminderService) ScanOnce(ctx context.Context) int {
	todos, err := s.todoRepo.ListDueReminders(ctx, s.now())
	if err != nil {
		logger.ErrorContext(ctx, "Reminder scan failed", "error", err)
		return 0
	}

	sent := 0
	for _, todo := range todos {
		if s.publisher != nil {
			event := &nats.ReminderEvent{
				UserID:    todo.UserID.String(),
				TodoID:    todo.ID.String(),
				TodoTitle: todo.Title,
			}
			if todo.DueDate != nil {
				event.DueDate = todo.DueDate.Format(time.RFC3339)
			}
			if err := s.publisher.PublishReminder(ctx, event); err != nil {
				// ไม่ mark sent เพื่อให้รอบหน้าลองใหม่
				continue
			}
		}

		if err := s.todoRepo.MarkReminderSent(ctx, todo.ID); err != nil {
			logger.WarnContext(ctx, "Failed to mark reminder sent", "todo_id", todo.ID, "error", err)
			continue
		}
		sent++
	}

	if sent > 0 {
		logger.InfoContext(ctx, "Reminder scan completed", "sent", sent, "due", len(todos))
	}

	return sent
}
