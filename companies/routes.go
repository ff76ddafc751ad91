package companies

import (
	"github.com/gofiber/fiber/v2"

	"github.com/AnyaAven/jobly/companies/handlers"
	"github.com/AnyaAven/jobly/internal/middleware/admin"
)

// Handlers holds all the handlers this router needs.
type Handlers struct {
	CompanyHandler *handlers.CompanyHandler
}

// RegisterRoutes wires company endpoints. Reads are public, writes need an admin.
func RegisterRoutes(app *fiber.App, handlers *Handlers) {
	adminOnly := admin.New(admin.Config{})

	group := app.Group("/companies")

	group.Get("/", handlers.CompanyHandler.List)
	group.Get("/:handle", handlers.CompanyHandler.Get)

	group.Post("/", adminOnly, handlers.CompanyHandler.Create)
	group.Patch("/:handle", adminOnly, handlers.CompanyHandler.Update)
	group.Delete("/:handle", adminOnly, handlers.CompanyHandler.Delete)
}
