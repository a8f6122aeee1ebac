package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/user-service/internal/api/http/handlers"
	"github.com/spec-kit/user-service/internal/auth"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health  *handlers.HealthHandler
	Users   *handlers.UsersHandler
	Profile *handlers.ProfileHandler
	Gate    *auth.Gate
}

// RegisterRoutes wires HTTP routes.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)

	users := app.Group("/api/users")
	users.Post("/register", cfg.Users.Register)
	users.Post("/login", cfg.Users.Login)

	protected := users.Group("", cfg.Gate.Handle)
	protected.Get("/profile", cfg.Profile.Get)
	protected.Put("/profile", cfg.Profile.UpdatePreferences)
	protected.Put("/me/push-token", cfg.Profile.UpdatePushToken)
}
