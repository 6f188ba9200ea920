package routes

import (
	"github.com/gofiber/fiber/v2"

	"tododeck/interfaces/api/handlers"
	"tododeck/interfaces/api/middleware"
)

func SetupCategoryRoutes(api fiber.Router, h *handlers.Handlers) {
	categories := api.Group("/categories")
	categories.Use(middleware.Protected())
	categories.Get("/", h.CategoryHandler.ListCategories)
	categories.Post("/", h.CategoryHandler.CreateCategory)
	categories.Put("/:id", h.CategoryHandler.UpdateCategory)
	categories.Delete("/:id", h.CategoryHandler.DeleteCategory)
}
