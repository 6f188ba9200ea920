package services

import (
	"context"

	"github.com/google/uuid"

	"tododeck/domain/dto"
	"tododeck/domain/models"
	"tododeck/domain/repositories"
)

type TodoService interface {
	// ListTodos คืน todos ที่ user มองเห็น (เป็นเจ้าของ หรือถูกแชร์ให้) ตาม filter
	ListTodos(ctx context.Context, userID uuid.UUID, filter repositories.TodoFilter) ([]models.Todo, error)

	// GetTodo คืน todo ที่มองเห็นได้ ไม่จำกัดเฉพาะเจ้าของ
	GetTodo(ctx context.Context, id, userID uuid.UUID) (*models.Todo, error)

	CreateTodo(ctx context.Context, userID uuid.UUID, req *dto.CreateTodoRequest) (*models.Todo, error)
	UpdateTodo(ctx context.Context, id, userID uuid.UUID, req *dto.UpdateTodoRequest) (*models.Todo, error)
	DeleteTodo(ctx context.Context, id, userID uuid.UUID) error

	// ToggleComplete สลับสถานะ completed ของ todo ที่เป็นเจ้าของ
	ToggleComplete(ctx context.Context, id, userID uuid.UUID) (*models.Todo, error)

	// ShareTodo แทนที่รายชื่อ share ทั้งชุดด้วย user ids ที่ resolve ได้
	ShareTodo(ctx context.Context, id, userID uuid.UUID, req *dto.ShareTodoRequest) (*models.Todo, error)

	// Reorder ตั้ง position ใหม่ตาม map, id ที่ไม่ใช่ของ user จะถูกข้ามเงียบๆ
	Reorder(ctx context.Context, userID uuid.UUID, req *dto.ReorderRequest) error

	// BulkAction ทำ action กับหลาย todo พร้อมกัน เฉพาะที่เป็นเจ้าของ
	BulkAction(ctx context.Context, userID uuid.UUID, req *dto.BulkActionRequest) (string, error)
}
