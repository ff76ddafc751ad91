package constraints

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/AnyaAven/jobly/internal/httperrors"
)

// RequireInt ensures a path parameter is a positive integer. Anything else
// is answered with 404, the same as a missing row.
func RequireInt(param, resource string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		value := c.Params(param)
		if n, err := strconv.Atoi(value); err != nil || n <= 0 {
			return httperrors.HandleServiceError(c, httperrors.NewNotFound("No "+resource+": "+value))
		}
		return c.Next()
	}
}
