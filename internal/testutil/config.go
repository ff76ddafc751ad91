package testutil

import (
	"os"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/AnyaAven/jobly/internal/platform/config"
)

// TestSecretKey signs every token issued in tests.
const TestSecretKey = "secret-dev"

// DefaultTestDatabaseURL is used when DATABASE_URL is not set.
const DefaultTestDatabaseURL = "postgresql:///jobly_test?sslmode=disable"

// Config returns a configuration suited to tests: a fixed secret, the
// cheapest bcrypt cost, no rate limits and caching in memory.
func Config(t *testing.T) *config.Config {
	t.Helper()

	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		dsn = DefaultTestDatabaseURL
	}

	cfg, err := config.LoadFromMap(map[string]string{
		"SECRET_KEY":                  TestSecretKey,
		"BCRYPT_WORK_FACTOR":          "4",
		"DATABASE_URL":                dsn,
		"CACHE_BACKEND":               "memory",
		"RATE_LIMIT_TOKEN_ENABLED":    "false",
		"RATE_LIMIT_REGISTER_ENABLED": "false",
	})
	require.NoError(t, err)
	return cfg
}

// ShouldRunDatabaseTests checks if database tests should be executed.
func ShouldRunDatabaseTests() bool {
	return os.Getenv("RUN_DB_TESTS") == "1"
}
