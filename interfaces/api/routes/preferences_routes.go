package routes

import (
	"github.com/gofiber/fiber/v2"

	"tododeck/interfaces/api/handlers"
	"tododeck/interfaces/api/middleware"
)

func SetupPreferencesRoutes(api fiber.Router, h *handlers.Handlers) {
	preferences := api.Group("/preferences")
	preferences.Use(middleware.Protected())
	preferences.Get("/", h.PreferencesHandler.GetPreferences)
	preferences.Put("/", h.PreferencesHandler.UpdatePreferences)
}
