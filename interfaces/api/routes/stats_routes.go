package routes

import (
	"github.com/gofiber/fiber/v2"

	"tododeck/interfaces/api/handlers"
	"tododeck/interfaces/api/middleware"
)

func SetupStatsRoutes(api fiber.Router, h *handlers.Handlers) {
	stats := api.Group("/stats")
	stats.Use(middleware.Protected())
	stats.Get("/", h.StatsHandler.GetStats)
}
