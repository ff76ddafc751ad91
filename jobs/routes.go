package jobs

import (
	"github.com/gofiber/fiber/v2"

	"github.com/AnyaAven/jobly/internal/middleware/admin"
	"github.com/AnyaAven/jobly/internal/middleware/constraints"
	"github.com/AnyaAven/jobly/jobs/handlers"
)

// Handlers holds all the handlers this router needs.
type Handlers struct {
	JobHandler *handlers.JobHandler
}

// RegisterRoutes wires job endpoints. Reads are public, writes need an admin.
func RegisterRoutes(app *fiber.App, handlers *Handlers) {
	adminOnly := admin.New(admin.Config{})
	validID := constraints.RequireInt("id", "job with id")

	group := app.Group("/jobs")

	group.Get("/", handlers.JobHandler.List)
	group.Post("/", adminOnly, handlers.JobHandler.Create)

	group.Get("/:id", validID, handlers.JobHandler.Get)
	group.Patch("/:id", adminOnly, validID, handlers.JobHandler.Update)
	group.Delete("/:id", adminOnly, validID, handlers.JobHandler.Delete)
}
