package routes

import (
	"github.com/gofiber/fiber/v2"

	"tododeck/interfaces/api/handlers"
	"tododeck/interfaces/api/middleware"
)

func SetupAuthRoutes(api fiber.Router, h *handlers.Handlers) {
	auth := api.Group("/auth")

	auth.Post("/register", h.AuthHandler.Register)
	auth.Post("/login", h.AuthHandler.Login)
	auth.Post("/logout", h.AuthHandler.Logout)
	auth.Get("/session", middleware.Optional(), h.AuthHandler.Session)

	// Protected routes - require authentication
	auth.Get("/me", middleware.Protected(), h.AuthHandler.Me)
}
