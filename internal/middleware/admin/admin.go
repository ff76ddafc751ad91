package admin

import (
	"github.com/gofiber/fiber/v2"

	"github.com/AnyaAven/jobly/internal/httperrors"
	"github.com/AnyaAven/jobly/internal/types"
)

type Config struct {
	UserCtxName string
	// Optional override of the IsAdmin check
	HasAccess func(u types.UserContext) bool
}

// New rejects requests unless the authenticated user is an admin.
func New(config Config) fiber.Handler {
	userKey := config.UserCtxName
	if userKey == "" {
		userKey = types.UserCtxName
	}
	hasAccess := config.HasAccess
	if hasAccess == nil {
		hasAccess = func(u types.UserContext) bool { return u.IsAdmin }
	}

	return func(c *fiber.Ctx) error {
		user, ok := c.Locals(userKey).(types.UserContext)
		if !ok || !hasAccess(user) {
			return httperrors.HandleUnauthorized(c, "Unauthorized")
		}
		return c.Next()
	}
}
