package authjwt

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/AnyaAven/jobly/internal/httperrors"
	"github.com/AnyaAven/jobly/internal/pkg/log"
	"github.com/AnyaAven/jobly/internal/types"
)

// TokenParser verifies a token and returns the user it was issued for.
type TokenParser interface {
	ParseToken(token string) (types.UserContext, error)
}

// Config defines the config for the JWT middleware.
type Config struct {
	Parser TokenParser
	// The Locals key to store the UserContext. Defaults to types.UserCtxName.
	UserCtxName string
}

func userKey(name string) string {
	if name == "" {
		return types.UserCtxName
	}
	return name
}

// Authenticate stores the user of a valid bearer token in Locals. A missing
// or invalid token is not an error: the request continues anonymously.
func Authenticate(cfg Config) fiber.Handler {
	key := userKey(cfg.UserCtxName)

	return func(c *fiber.Ctx) error {
		tokenString := bearerToken(c.Get(types.HeaderAuthorization))
		if tokenString == "" {
			return c.Next()
		}

		user, err := cfg.Parser.ParseToken(tokenString)
		if err != nil {
			log.Debug("ignoring bearer token: %v", err)
			return c.Next()
		}

		c.Locals(key, user)
		return c.Next()
	}
}

// bearerToken strips a leading "Bearer " or "bearer " from the header value.
func bearerToken(header string) string {
	for _, prefix := range []string{types.BearerPrefix, strings.ToLower(types.BearerPrefix)} {
		if strings.HasPrefix(header, prefix) {
			header = strings.TrimPrefix(header, prefix)
			break
		}
	}
	return strings.TrimSpace(header)
}

// CurrentUser returns the authenticated user, if any.
func CurrentUser(c *fiber.Ctx) (types.UserContext, bool) {
	return CurrentUserFrom(c, types.UserCtxName)
}

// CurrentUserFrom reads the user stored under a custom Locals key.
func CurrentUserFrom(c *fiber.Ctx, key string) (types.UserContext, bool) {
	user, ok := c.Locals(userKey(key)).(types.UserContext)
	return user, ok
}

// EnsureLoggedIn rejects requests without an authenticated user.
func EnsureLoggedIn() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if user, ok := CurrentUser(c); !ok || user.Username == "" {
			return httperrors.HandleUnauthorized(c, "Unauthorized")
		}
		return c.Next()
	}
}

// EnsureCorrectUserOrAdmin passes admins, and users acting on their own
// :username route parameter.
func EnsureCorrectUserOrAdmin() fiber.Handler {
	return func(c *fiber.Ctx) error {
		user, ok := CurrentUser(c)
		if !ok {
			return httperrors.HandleUnauthorized(c, "Unauthorized")
		}
		if user.IsAdmin || (user.Username != "" && user.Username == c.Params("username")) {
			return c.Next()
		}
		return httperrors.HandleUnauthorized(c, "Unauthorized")
	}
}
