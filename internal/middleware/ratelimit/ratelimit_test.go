package ratelimit

import (
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AnyaAven/jobly/internal/platform/config"
	"github.com/AnyaAven/jobly/internal/types"
)

func newApp(h fiber.Handler) *fiber.App {
	app := fiber.New()
	app.Use(h)
	app.Post("/auth/token", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"success": true})
	})
	return app
}

func post(t *testing.T, app *fiber.App, ip string) int {
	t.Helper()
	req := httptest.NewRequest("POST", "/auth/token", strings.NewReader("{}"))
	req.Header.Set(types.HeaderContentType, "application/json")
	req.Header.Set("X-Client", ip)
	resp, err := app.Test(req)
	require.NoError(t, err)
	resp.Body.Close()
	return resp.StatusCode
}

func TestRateLimit_RejectsExcessiveRequests(t *testing.T) {
	app := newApp(New(Config{Name: "token", Max: 3, Duration: time.Minute}))

	for i := 0; i < 3; i++ {
		assert.Equal(t, 200, post(t, app, "a"))
	}

	req := httptest.NewRequest("POST", "/auth/token", strings.NewReader("{}"))
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, 429, resp.StatusCode)

	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "RATE_LIMIT_EXCEEDED", body["code"])
	assert.Contains(t, body["message"], "token")
	assert.Equal(t, float64(60), body["retryAfter"])
}

func TestRateLimit_IndependentKeys(t *testing.T) {
	app := newApp(New(Config{
		Name:         "token",
		Max:          1,
		Duration:     time.Minute,
		KeyGenerator: func(c *fiber.Ctx) string { return c.Get("X-Client") },
	}))

	assert.Equal(t, 200, post(t, app, "a"))
	assert.Equal(t, 429, post(t, app, "a"))
	assert.Equal(t, 200, post(t, app, "b"))
}

func TestRateLimit_Defaults(t *testing.T) {
	cfg := configDefault(Config{})
	assert.Equal(t, 5, cfg.Max)
	assert.Equal(t, 15*time.Minute, cfg.Duration)
	assert.NotNil(t, cfg.KeyGenerator)
}

func TestFromConfig(t *testing.T) {
	disabled := newApp(FromConfig("token", config.RateLimitConfig{Enabled: false, Max: 1, Duration: time.Minute}))
	for i := 0; i < 3; i++ {
		assert.Equal(t, 200, post(t, disabled, "a"))
	}

	enabled := newApp(FromConfig("register", config.RateLimitConfig{Enabled: true, Max: 1, Duration: time.Minute}))
	assert.Equal(t, 200, post(t, enabled, "a"))
	assert.Equal(t, 429, post(t, enabled, "a"))
}
