package routes

import (
	"github.com/gofiber/fiber/v2"

	"tododeck/interfaces/api/handlers"
	"tododeck/interfaces/api/middleware"
)

func SetupTodoRoutes(api fiber.Router, h *handlers.Handlers) {
	todos := api.Group("/todos")
	todos.Use(middleware.Protected())

	// collection-level actions ต้องมาก่อน :id routes
	todos.Post("/reorder", h.TodoHandler.Reorder)
	todos.Post("/bulk_action", h.TodoHandler.BulkAction)

	todos.Get("/", h.TodoHandler.ListTodos)
	todos.Post("/", h.TodoHandler.CreateTodo)
	todos.Get("/:id", h.TodoHandler.GetTodo)
	todos.Put("/:id", h.TodoHandler.UpdateTodo)
	todos.Delete("/:id", h.TodoHandler.DeleteTodo)
	todos.Post("/:id/toggle", h.TodoHandler.ToggleComplete)
	todos.Post("/:id/share", h.TodoHandler.ShareTodo)

	todos.Get("/:id/comments", h.CommentHandler.ListComments)
	todos.Post("/:id/comments", h.CommentHandler.AddComment)
}
