package nats

import "time"

// Stream and subject names
const (
	StreamName = "TODO_EVENTS"

	SubjectActivity = "todo.events.activity"
	SubjectReminder = "todo.events.reminder"

	// wildcard สำหรับ stream config
	SubjectAll = "todo.events.>"
)

// ActivityEvent ส่งออกทุกครั้งที่มีการบันทึก activity log
// consumer ภายนอก (notification, analytics) ใช้โครงสร้างนี้
type ActivityEvent struct {
	UserID    string                 `json:"user_id"`
	Action    string                 `json:"action"` // created, updated, completed, deleted, shared, commented
	TodoID    string                 `json:"todo_id,omitempty"`
	TodoTitle string                 `json:"todo_title"`
	Details   map[string]interface{} `json:"details,omitempty"`
	Timestamp int64                  `json:"timestamp"`
}

// ReminderEvent ส่งจาก reminder scanner เมื่อถึงเวลาแจ้งเตือน
type ReminderEvent struct {
	UserID    string `json:"user_id"`
	TodoID    string `json:"todo_id"`
	TodoTitle string `json:"todo_title"`
	DueDate   string `json:"due_date,omitempty"` // RFC3339
	Timestamp int64  `json:"timestamp"`
}

// NewActivityEvent สร้าง ActivityEvent พร้อม timestamp ปัจจุบัน
func NewActivityEvent(userID, action, todoID, todoTitle string, details map[string]interface{}) *ActivityEvent {
	return &ActivityEvent{
		UserID:    userID,
		Action:    action,
		TodoID:    todoID,
		TodoTitle: todoTitle,
		Details:   details,
		Timestamp: time.Now().Unix(),
	}
}
