package auth

import (
	"github.com/gofiber/fiber/v2"

	"github.com/AnyaAven/jobly/auth/handlers"
	"github.com/AnyaAven/jobly/internal/middleware/ratelimit"
	"github.com/AnyaAven/jobly/internal/platform/config"
)

// Handlers holds all the handlers this router needs.
type Handlers struct {
	AuthHandler *handlers.AuthHandler
}

// RegisterRoutes wires the public auth endpoints behind their rate limits.
func RegisterRoutes(app *fiber.App, handlers *Handlers, limits config.RateLimitsConfig) {
	group := app.Group("/auth")

	group.Post("/token", ratelimit.FromConfig("token", limits.Token), handlers.AuthHandler.Token)
	group.Post("/register", ratelimit.FromConfig("register", limits.Register), handlers.AuthHandler.Register)
}
