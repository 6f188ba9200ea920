package nats

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"tododeck/pkg/logger"
)

// Publisher publishes todo events to JetStream
// การ publish เป็น best-effort: caller ไม่ควร fail operation หลักเมื่อ publish ไม่สำเร็จ
type Publisher struct {
	client *Client
}

// NewPublisher สร้าง Publisher ใหม่
func NewPublisher(client *Client) *Publisher {
	return &Publisher{
		client: client,
	}
}

// PublishActivity ส่ง activity event ไปยัง JetStream
func (p *Publisher) PublishActivity(ctx context.Context, event *ActivityEvent) error {
	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal activity event: %w", err)
	}

	ack, err := p.client.js.Publish(ctx, SubjectActivity, data)
	if err != nil {
		logger.Error("Failed to publish activity event",
			"user_id", event.UserID,
			"action", event.Action,
			"error", err,
		)
		return fmt.Errorf("failed to publish activity event: %w", err)
	}

	logger.Debug("Activity event published",
		"user_id", event.UserID,
		"action", event.Action,
		"stream", ack.Stream,
		"sequence", ack.Sequence,
	)

	return nil
}

// PublishReminder ส่ง reminder event ไปยัง JetStream
func (p *Publisher) PublishReminder(ctx context.Context, event *ReminderEvent) error {
	if event.Timestamp == 0 {
		event.Timestamp = time.Now().Unix()
	}

	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal reminder event: %w", err)
	}

	ack, err := p.client.js.Publish(ctx, SubjectReminder, data)
	if err != nil {
		logger.Error("Failed to publish reminder event",
			"user_id", event.UserID,
			"todo_id", event.TodoID,
			"error", err,
		)
		return fmt.Errorf("failed to publish reminder event: %w", err)
	}

	logger.Info("Reminder event published",
		"user_id", event.UserID,
		"todo_id", event.TodoID,
		"stream", ack.Stream,
		"sequence", ack.Sequence,
	)

	return nil
}
