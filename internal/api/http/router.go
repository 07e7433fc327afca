package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/judiciary-service/internal/api/http/handlers"
	"github.com/spec-kit/judiciary-service/internal/auth"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health         *handlers.HealthHandler
	Auth           *handlers.AuthHandler
	Courts         *handlers.CourtsHandler
	Staff          *handlers.StaffHandler
	Users          *handlers.UsersHandler
	AuthMiddleware *auth.AuthMiddleware
}

// RegisterRoutes wires HTTP routes.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)

	authGroup := app.Group("/auth")
	authGroup.Post("/login", cfg.Auth.Login)
	authGroup.Post("/password/reset/request", cfg.Auth.RequestPasswordReset)
	authGroup.Post("/password/reset/confirm", cfg.Auth.ConfirmPasswordReset)

	authProtected := authGroup.Group("", cfg.AuthMiddleware.Handle)
	authProtected.Get("/me", cfg.Auth.Me)
	authProtected.Post("/password/change", cfg.Auth.ChangePassword)

	courts := app.Group("/courts", cfg.AuthMiddleware.Handle)
	courts.Post("", auth.RequireAdmin(), cfg.Courts.Create)
	courts.Get("", cfg.Courts.List)
	courts.Get("/:id", cfg.Courts.Get)
	courts.Put("/:id", auth.RequireAdmin(), cfg.Courts.Update)
	courts.Delete("/:id", auth.RequireAdmin(), cfg.Courts.Deactivate)

	staff := app.Group("/staff", cfg.AuthMiddleware.Handle)
	staff.Post("", cfg.Staff.Create)
	staff.Get("", cfg.Staff.List)
	staff.Get("/:id", cfg.Staff.Get)
	staff.Put("/:id", cfg.Staff.Update)
	staff.Patch("/:id/status", cfg.Staff.ChangeStatus)
	staff.Delete("/:id", auth.RequireAdmin(), cfg.Staff.Delete)

	users := app.Group("/users", cfg.AuthMiddleware.Handle, auth.RequireAdmin())
	users.Post("", cfg.Users.Create)
	users.Get("", cfg.Users.List)
	users.Get("/:id", cfg.Users.Get)
	users.Put("/:id", cfg.Users.Update)
	users.Post("/:id/deactivate", cfg.Users.Deactivate)
}
