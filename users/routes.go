package users

import (
	"github.com/gofiber/fiber/v2"

	"github.com/AnyaAven/jobly/internal/middleware/admin"
	"github.com/AnyaAven/jobly/internal/middleware/authjwt"
	"github.com/AnyaAven/jobly/internal/middleware/constraints"
	"github.com/AnyaAven/jobly/users/handlers"
)

// Handlers holds all the handlers this router needs.
type Handlers struct {
	UserHandler *handlers.UserHandler
}

// RegisterRoutes wires user endpoints. Every route needs a logged in user;
// the collection is admin only, a single user is reachable by that user or an
// admin.
func RegisterRoutes(app *fiber.App, handlers *Handlers) {
	adminOnly := admin.New(admin.Config{})
	selfOrAdmin := authjwt.EnsureCorrectUserOrAdmin()

	group := app.Group("/users", authjwt.EnsureLoggedIn())

	group.Post("/", adminOnly, handlers.UserHandler.Create)
	group.Get("/", adminOnly, handlers.UserHandler.List)

	group.Get("/:username", selfOrAdmin, handlers.UserHandler.Get)
	group.Patch("/:username", selfOrAdmin, handlers.UserHandler.Update)
	group.Delete("/:username", selfOrAdmin, handlers.UserHandler.Delete)

	group.Post("/:username/jobs/:id", selfOrAdmin, constraints.RequireInt("id", "job"), handlers.UserHandler.Apply)
}
