package handler

import (
	"github.com/gofiber/fiber/v2"
)

func RegisterRoutes(app *fiber.App, h *AuthHandler, health *HealthHandler) {
	api := app.Group("/api")

	api.Get("/health", health.Health)
	api.Get("/ready", health.Ready)

	api.Post("/signup", h.Register)
	api.Post("/login", h.Login)

	// Protected endpoints
	api.Get("/me", h.RequireAuth(), h.Profile)
}
