package routes

import (
	"github.com/gofiber/fiber/v2"

	"tododeck/interfaces/api/handlers"
	"tododeck/interfaces/api/middleware"
)

func SetupTemplateRoutes(api fiber.Router, h *handlers.Handlers) {
	templates := api.Group("/templates")
	templates.Use(middleware.Protected())
	templates.Get("/", h.TemplateHandler.ListTemplates)
	templates.Post("/", h.TemplateHandler.CreateTemplate)
	templates.Put("/:id", h.TemplateHandler.UpdateTemplate)
	templates.Delete("/:id", h.TemplateHandler.DeleteTemplate)
	templates.Post("/:id/instantiate", h.TemplateHandler.InstantiateTemplate)
}
