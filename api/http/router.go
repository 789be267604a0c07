package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/artem13815/devadvisor/api/http/handlers"
)

// Register wires all HTTP routes onto the given Fiber app.
func Register(app *fiber.App, profile *handlers.ProfileHandler, analyses *handlers.AnalysesHandler, health *handlers.HealthHandler) {
	api := app.Group("/api")
	v1 := api.Group("/v1")

	// Health and readiness endpoints for probes/monitoring
	v1.Get("/health", health.Health)
	v1.Get("/ready", health.Ready)

	// Profile analysis pipeline
	v1.Post("/profile/analyze", profile.Analyze)

	// Stored analysis history
	v1.Get("/analyses", analyses.List)
	v1.Get("/analyses/:id", analyses.Get)
}
