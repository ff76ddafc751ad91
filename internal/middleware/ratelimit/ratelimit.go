// Package ratelimit limits requests per client IP on the auth endpoints.
package ratelimit

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"

	"github.com/AnyaAven/jobly/internal/httperrors"
	"github.com/AnyaAven/jobly/internal/pkg/log"
	"github.com/AnyaAven/jobly/internal/platform/config"
)

// Config holds the configuration for rate limiting middleware
type Config struct {
	// Name appears in the 429 message, e.g. "token".
	Name     string
	Max      int
	Duration time.Duration

	// Next defines a function to skip this middleware when returned true
	Next func(c *fiber.Ctx) bool

	// Custom key generator (optional, defaults to IP + path)
	KeyGenerator func(c *fiber.Ctx) string
}

func configDefault(cfg Config) Config {
	if cfg.Max <= 0 {
		cfg.Max = 5
	}
	if cfg.Duration <= 0 {
		cfg.Duration = 15 * time.Minute
	}
	if cfg.KeyGenerator == nil {
		cfg.KeyGenerator = func(c *fiber.Ctx) string {
			return c.IP() + ":" + c.Path()
		}
	}
	return cfg
}

// New creates a new rate limiting middleware handler
func New(config Config) fiber.Handler {
	cfg := configDefault(config)

	return limiter.New(limiter.Config{
		Max:          cfg.Max,
		Expiration:   cfg.Duration,
		KeyGenerator: cfg.KeyGenerator,
		Next:         cfg.Next,
		LimitReached: func(c *fiber.Ctx) error {
			log.WarnWithContext(c.UserContext(), "rate limit exceeded for %s from IP: %s", cfg.Name, c.IP())

			return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
				"code":       httperrors.CodeRateLimitError,
				"message":    fmt.Sprintf("Too many %s attempts. Please try again later.", cfg.Name),
				"retryAfter": int(cfg.Duration.Seconds()),
			})
		},
	})
}

// FromConfig builds a limiter from endpoint settings. A disabled limit
// returns a pass-through handler.
func FromConfig(name string, rl config.RateLimitConfig) fiber.Handler {
	if !rl.Enabled {
		return func(c *fiber.Ctx) error { return c.Next() }
	}
	return New(Config{Name: name, Max: rl.Max, Duration: rl.Duration})
}
