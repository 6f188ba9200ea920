package routes

import (
	"github.com/gofiber/fiber/v2"

	"tododeck/interfaces/api/handlers"
	"tododeck/interfaces/api/middleware"
)

func SetupActivityRoutes(api fiber.Router, h *handlers.Handlers) {
	activity := api.Group("/activity")
	activity.Use(middleware.Protected())
	activity.Get("/", h.ActivityHandler.ListActivities)
}
