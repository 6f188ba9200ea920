package handlers

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"tododeck/domain/dto"
	"tododeck/domain/models"
	"tododeck/domain/repositories"
	"tododeck/domain/services"
	"tododeck/pkg/logger"
	"tododeck/pkg/utils"
)

type TodoHandler struct {
	todoService services.TodoService
}

func NewTodoHandler(todoService services.TodoService) *TodoHandler {
	return &TodoHandler{
		todoService: todoService,
	}
}

// parseFilter แปลง query params เป็น TodoFilter
// ค่าที่ไม่รู้จักถูกละเว้นเงียบๆ ไม่ถือเป็น error
func parseFilter(c *fiber.Ctx) repositories.TodoFilter {
	var filter repositories.TodoFilter

	// category "all" หรือค่าที่ parse ไม่ได้ = ไม่ filter
	if category := c.Query("category"); category != "" && category != "all" {
		if id, err := uuid.Parse(category); err == nil {
			filter.CategoryID = &id
		}
	}

	if priority := c.Query("priority"); models.ValidPriority(priority) {
		filter.Priority = priority
	}

	switch c.Query("completed") {
	case "true":
		v := true
		filter.Completed = &v
	case "false":
		v := false
		filter.Completed = &v
	}

	switch c.Query("archived") {
	case "true":
		v := true
		filter.Archived = &v
	case "false":
		v := false
		filter.Archived = &v
	}

	filter.Search = c.Query("search")

	switch c.Query("due_date") {
	case repositories.DueBucketToday, repositories.DueBucketWeek, repositories.DueBucketOverdue:
		filter.DueBucket = c.Query("due_date")
	}

	return filter
}

func (h *TodoHandler) ListTodos(c *fiber.Ctx) error {
	userCtx, err := utils.GetUserFromContext(c)
	if err != nil {
		return utils.UnauthorizedResponse(c, "")
	}

	todos, err := h.todoService.ListTodos(c.UserContext(), userCtx.ID, parseFilter(c))
	if err != nil {
		logger.ErrorContext(c.UserContext(), "Failed to list todos", "user_id", userCtx.ID, "error", err)
		return utils.InternalServerErrorResponse(c)
	}

	return utils.SuccessResponse(c, dto.TodoListResponse{
		Todos: dto.TodosToTodoResponses(todos, time.Now()),
	})
}

func (h *TodoHandler) GetTodo(c *fiber.Ctx) error {
	userCtx, err := utils.GetUserFromContext(c)
	if err != nil {
		return utils.UnauthorizedResponse(c, "")
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid todo id")
	}

	todo, err := h.todoService.GetTodo(c.UserContext(), id, userCtx.ID)
	if err != nil {
		return utils.NotFoundResponse(c, "Todo not found")
	}

	return utils.SuccessResponse(c, dto.TodoToTodoResponse(todo, time.Now()))
}

func (h *TodoHandler) CreateTodo(c *fiber.Ctx) error {
	ctx := c.UserContext()

	userCtx, err := utils.GetUserFromContext(c)
	if err != nil {
		return utils.UnauthorizedResponse(c, "")
	}

	var req dto.CreateTodoRequest
	if err := c.BodyParser(&req); err != nil {
		logger.WarnContext(ctx, "Invalid request body", "error", err)
		return utils.BadRequestResponse(c, "Invalid request body")
	}

	if err := utils.ValidateStruct(&req); err != nil {
		return utils.ValidationErrorResponse(c, utils.GetValidationErrors(err))
	}

	todo, err := h.todoService.CreateTodo(ctx, userCtx.ID, &req)
	if err != nil {
		return utils.BadRequestResponse(c, err.Error())
	}

	return utils.CreatedResponse(c, dto.TodoToTodoResponse(todo, time.Now()))
}

func (h *TodoHandler) UpdateTodo(c *fiber.Ctx) error {
	ctx := c.UserContext()

	userCtx, err := utils.GetUserFromContext(c)
	if err != nil {
		return utils.UnauthorizedResponse(c, "")
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid todo id")
	}

	var req dto.UpdateTodoRequest
	if err := c.BodyParser(&req); err != nil {
		logger.WarnContext(ctx, "Invalid request body", "error", err)
		return utils.BadRequestResponse(c, "Invalid request body")
	}

	if err := utils.ValidateStruct(&req); err != nil {
		return utils.ValidationErrorResponse(c, utils.GetValidationErrors(err))
	}

	todo, err := h.todoService.UpdateTodo(ctx, id, userCtx.ID, &req)
	if err != nil {
		if errors.Is(err, services.ErrTodoNotFound) {
			return utils.NotFoundResponse(c, "Todo not found")
		}
		return utils.BadRequestResponse(c, err.Error())
	}

	return utils.SuccessResponse(c, dto.TodoToTodoResponse(todo, time.Now()))
}

func (h *TodoHandler) DeleteTodo(c *fiber.Ctx) error {
	userCtx, err := utils.GetUserFromContext(c)
	if err != nil {
		return utils.UnauthorizedResponse(c, "")
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid todo id")
	}

	if err := h.todoService.DeleteTodo(c.UserContext(), id, userCtx.ID); err != nil {
		return utils.NotFoundResponse(c, "Todo not found")
	}

	return utils.NoContentResponse(c)
}

func (h *TodoHandler) ToggleComplete(c *fiber.Ctx) error {
	userCtx, err := utils.GetUserFromContext(c)
	if err != nil {
		return utils.UnauthorizedResponse(c, "")
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid todo id")
	}

	todo, err := h.todoService.ToggleComplete(c.UserContext(), id, userCtx.ID)
	if err != nil {
		return utils.NotFoundResponse(c, "Todo not found")
	}

	return utils.SuccessResponse(c, dto.TodoToTodoResponse(todo, time.Now()))
}

func (h *TodoHandler) ShareTodo(c *fiber.Ctx) error {
	ctx := c.UserContext()

	userCtx, err := utils.GetUserFromContext(c)
	if err != nil {
		return utils.UnauthorizedResponse(c, "")
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid todo id")
	}

	var req dto.ShareTodoRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body")
	}

	if err := utils.ValidateStruct(&req); err != nil {
		return utils.ValidationErrorResponse(c, utils.GetValidationErrors(err))
	}

	todo, err := h.todoService.ShareTodo(ctx, id, userCtx.ID, &req)
	if err != nil {
		if errors.Is(err, services.ErrTodoNotFound) {
			return utils.NotFoundResponse(c, "Todo not found")
		}
		return utils.BadRequestResponse(c, err.Error())
	}

	return utils.SuccessResponse(c, dto.TodoToTodoResponse(todo, time.Now()))
}

func (h *TodoHandler) Reorder(c *fiber.Ctx) error {
	userCtx, err := utils.GetUserFromContext(c)
	if err != nil {
		return utils.UnauthorizedResponse(c, "")
	}

	var req dto.ReorderRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body")
	}

	if err := utils.ValidateStruct(&req); err != nil {
		return utils.ValidationErrorResponse(c, utils.GetValidationErrors(err))
	}

	if err := h.todoService.Reorder(c.UserContext(), userCtx.ID, &req); err != nil {
		return utils.InternalServerErrorResponse(c)
	}

	return utils.SuccessResponse(c, fiber.Map{"message": "Reordered"})
}

func (h *TodoHandler) BulkAction(c *fiber.Ctx) error {
	userCtx, err := utils.GetUserFromContext(c)
	if err != nil {
		return utils.UnauthorizedResponse(c, "")
	}

	var req dto.BulkActionRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body")
	}

	if err := utils.ValidateStruct(&req); err != nil {
		return utils.ValidationErrorResponse(c, utils.GetValidationErrors(err))
	}

	message, err := h.todoService.BulkAction(c.UserContext(), userCtx.ID, &req)
	if err != nil {
		return utils.BadRequestResponse(c, err.Error())
	}

	return utils.SuccessResponse(c, dto.BulkActionResponse{Message: message})
}
