package admin

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"

	"github.com/AnyaAven/jobly/internal/httperrors"
	"github.com/AnyaAven/jobly/internal/types"
)

func newApp(user *types.UserContext, cfg Config) *fiber.App {
	app := fiber.New()
	app.Use(func(c *fiber.Ctx) error {
		if user != nil {
			c.Locals(types.UserCtxName, *user)
		}
		return c.Next()
	})
	app.Get("/", New(cfg), func(c *fiber.Ctx) error { return c.SendStatus(http.StatusOK) })
	return app
}

func TestAdmin_AuthorizedForAdmin(t *testing.T) {
	resp, err := newApp(&types.UserContext{Username: "a", IsAdmin: true}, Config{}).Test(httptest.NewRequest("GET", "/", nil))
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestAdmin_UnauthorizedForNonAdmin(t *testing.T) {
	resp, err := newApp(&types.UserContext{Username: "u"}, Config{}).Test(httptest.NewRequest("GET", "/", nil))
	require.NoError(t, err)
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	var body httperrors.ErrorResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	require.Equal(t, httperrors.CodeUnauthorized, body.Code)
}

func TestAdmin_UnauthorizedWithoutUser(t *testing.T) {
	resp, err := newApp(nil, Config{}).Test(httptest.NewRequest("GET", "/", nil))
	require.NoError(t, err)
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestAdmin_CustomAccess(t *testing.T) {
	cfg := Config{HasAccess: func(u types.UserContext) bool { return u.Username == "root" }}
	resp, err := newApp(&types.UserContext{Username: "root"}, cfg).Test(httptest.NewRequest("GET", "/", nil))
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)
}
