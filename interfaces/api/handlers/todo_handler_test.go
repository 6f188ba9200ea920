package handlers

import (
	"context"
	"errors"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tododeck/domain/dto"
	"tododeck/domain/models"
	"tododeck/domain/services"
	"tododeck/pkg/utils"
)

// stubTodoService ฝัง interface ไว้แล้ว override เฉพาะ method ที่ test ใช้
type stubTodoService struct {
	services.TodoService
	shareErr error
}

func (s *stubTodoService) ShareTodo(_ context.Context, _, userID uuid.UUID, _ *dto.ShareTodoRequest) (*models.Todo, error) {
	if s.shareErr != nil {
		return nil, s.shareErr
	}
	return &models.Todo{
		ID:        uuid.New(),
		UserID:    userID,
		Title:     "shared",
		CreatedAt: time.Now(),
	}, nil
}

func newShareTestApp(svc services.TodoService) *fiber.App {
	app := fiber.New()
	app.Use(func(c *fiber.Ctx) error {
		c.Locals("user", &utils.UserContext{ID: uuid.New(), Username: "tester"})
		return c.Next()
	})

	h := NewTodoHandler(svc)
	app.Post("/todos/:id/share", h.ShareTodo)
	return app
}

func postShare(t *testing.T, app *fiber.App, todoID string) int {
	t.Helper()

	body := `{"user_ids":["` + uuid.New().String() + `"]}`
	req := httptest.NewRequest("POST", "/todos/"+todoID+"/share", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	return resp.StatusCode
}

func TestShareTodoStatusMapping(t *testing.T) {
	// not-found จาก service เท่านั้นที่เป็น 404
	app := newShareTestApp(&stubTodoService{shareErr: services.ErrTodoNotFound})
	assert.Equal(t, fiber.StatusNotFound, postShare(t, app, uuid.New().String()))

	// error อื่น (เช่น write ล้มเหลว) ต้องไม่ถูกกลืนเป็น 404
	app = newShareTestApp(&stubTodoService{shareErr: errors.New("replace shares failed")})
	assert.Equal(t, fiber.StatusBadRequest, postShare(t, app, uuid.New().String()))

	app = newShareTestApp(&stubTodoService{})
	assert.Equal(t, fiber.StatusOK, postShare(t, app, uuid.New().String()))
}
