package config

import (
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config is the application configuration.
type Config struct {
	Server     ServerConfig     `json:"server"`
	Database   DatabaseConfig   `json:"database"`
	Auth       AuthConfig       `json:"auth"`
	Cache      CacheConfig      `json:"cache"`
	RateLimits RateLimitsConfig `json:"rateLimits"`
}

// ServerConfig holds server-related configuration
type ServerConfig struct {
	Host      string `json:"host"`
	Port      int    `json:"port"`
	WebDomain string `json:"webDomain"`
	Debug     bool   `json:"debug"`
}

// Addr returns the listen address.
func (s ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

// DatabaseConfig holds database-related configuration
type DatabaseConfig struct {
	Postgres    PostgreSQLConfig `json:"postgres"`
	AutoMigrate bool             `json:"autoMigrate"`
}

// PostgreSQLConfig holds PostgreSQL-specific configuration.
// DSN wins over the discrete connection fields when set.
type PostgreSQLConfig struct {
	Host            string        `json:"host"`
	Port            int           `json:"port"`
	Username        string        `json:"username"`
	Password        string        `json:"password"`
	Database        string        `json:"database"`
	DSN             string        `json:"dsn"`
	SSLMode         string        `json:"sslMode"`
	MaxOpenConns    int           `json:"maxOpenConns"`
	MaxIdleConns    int           `json:"maxIdleConns"`
	ConnMaxLifetime time.Duration `json:"connMaxLifetime"`
}

// AuthConfig holds token signing and password hashing settings.
type AuthConfig struct {
	SecretKey        string        `json:"-"`
	TokenTTL         time.Duration `json:"tokenTtl"`
	BcryptWorkFactor int           `json:"bcryptWorkFactor"`
}

// CacheConfig holds cache-related configuration
type CacheConfig struct {
	Enabled         bool          `json:"enabled"`
	Backend         string        `json:"backend"`
	TTL             time.Duration `json:"ttl"`
	Prefix          string        `json:"prefix"`
	MaxMemory       int64         `json:"maxMemory"`
	CleanupInterval time.Duration `json:"cleanupInterval"`
	Redis           RedisConfig   `json:"redis"`
}

// RedisConfig holds Redis-specific configuration
type RedisConfig struct {
	Address      string        `json:"address"`
	Password     string        `json:"password"`
	Database     int           `json:"database"`
	PoolSize     int           `json:"poolSize"`
	MinIdleConns int           `json:"minIdleConns"`
	MaxConnAge   time.Duration `json:"maxConnAge"`
}

// RateLimitConfig holds rate limiting configuration for a specific endpoint
type RateLimitConfig struct {
	Enabled  bool          `json:"enabled"`
	Max      int           `json:"max"`
	Duration time.Duration `json:"duration"`
}

// RateLimitsConfig holds rate limiting configuration for all endpoints
type RateLimitsConfig struct {
	Token    RateLimitConfig `json:"token"`
	Register RateLimitConfig `json:"register"`
}

// LoadFromEnv loads configuration from the environment.
// Precedence: explicit environment variables, then the .env file, then defaults.
func LoadFromEnv() (*Config, error) {
	envPaths := []string{".env", "../.env", "../../.env"}

	var loadErr error
	for _, envPath := range envPaths {
		if loadErr = godotenv.Load(envPath); loadErr == nil {
			break
		}
	}
	if loadErr != nil {
		fmt.Println("INFO: .env file not found, using environment variables and defaults.")
	}

	return build(os.LookupEnv)
}

// LoadFromMap loads configuration from an in-memory map.
// Tests use it to exercise configuration without touching the process environment.
func LoadFromMap(envMap map[string]string) (*Config, error) {
	return build(func(key string) (string, bool) {
		v, ok := envMap[key]
		return v, ok
	})
}

type lookupFunc func(key string) (string, bool)

func build(lookup lookupFunc) (*Config, error) {
	env := envReader{lookup: lookup}

	config := &Config{
		Server: ServerConfig{
			Host:      env.str("HOST", "0.0.0.0"),
			Port:      env.int("SERVER_PORT", 3001),
			WebDomain: env.str("WEB_DOMAIN", "http://localhost:3000"),
			Debug:     env.bool("DEBUG", false),
		},
		Database: DatabaseConfig{
			AutoMigrate: env.bool("MIGRATIONS_AUTO", false),
			Postgres: PostgreSQLConfig{
				Host:            env.str("POSTGRES_HOST", "localhost"),
				Port:            env.int("POSTGRES_PORT", 5432),
				Username:        env.str("POSTGRES_USERNAME", ""),
				Password:        env.str("POSTGRES_PASSWORD", ""),
				Database:        env.str("POSTGRES_DATABASE", "jobly"),
				DSN:             env.str("DATABASE_URL", ""),
				SSLMode:         env.str("POSTGRES_SSL_MODE", "disable"),
				MaxOpenConns:    env.int("POSTGRES_MAX_OPEN_CONNS", 25),
				MaxIdleConns:    env.int("POSTGRES_MAX_IDLE_CONNS", 25),
				ConnMaxLifetime: time.Duration(env.int("POSTGRES_CONN_MAX_LIFETIME", 300)) * time.Second,
			},
		},
		Auth: AuthConfig{
			SecretKey:        env.str("SECRET_KEY", ""),
			TokenTTL:         env.duration("JWT_TTL", 24*time.Hour),
			BcryptWorkFactor: env.int("BCRYPT_WORK_FACTOR", 12),
		},
		Cache: CacheConfig{
			Enabled:         env.bool("CACHE_ENABLED", true),
			Backend:         env.str("CACHE_BACKEND", "memory"),
			TTL:             env.duration("CACHE_TTL", 5*time.Minute),
			Prefix:          env.str("CACHE_PREFIX", "jobly:"),
			MaxMemory:       env.int64("CACHE_MAX_MEMORY", 16*1024*1024),
			CleanupInterval: env.duration("CACHE_CLEANUP_INTERVAL", time.Minute),
			Redis: RedisConfig{
				Address:      env.str("REDIS_ADDRESS", "localhost:6379"),
				Password:     env.str("REDIS_PASSWORD", ""),
				Database:     env.int("REDIS_DATABASE", 0),
				PoolSize:     env.int("REDIS_POOL_SIZE", 10),
				MinIdleConns: env.int("REDIS_MIN_IDLE_CONNS", 2),
				MaxConnAge:   time.Duration(env.int("REDIS_MAX_CONN_AGE", 300)) * time.Second,
			},
		},
		RateLimits: RateLimitsConfig{
			Token: RateLimitConfig{
				Enabled:  env.bool("RATE_LIMIT_TOKEN_ENABLED", true),
				Max:      env.int("RATE_LIMIT_TOKEN_MAX", 10),
				Duration: env.duration("RATE_LIMIT_TOKEN_DURATION", 15*time.Minute),
			},
			Register: RateLimitConfig{
				Enabled:  env.bool("RATE_LIMIT_REGISTER_ENABLED", true),
				Max:      env.int("RATE_LIMIT_REGISTER_MAX", 10),
				Duration: env.duration("RATE_LIMIT_REGISTER_DURATION", time.Hour),
			},
		},
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// Validate validates the configuration for required fields
func (c *Config) Validate() error {
	var errors []string

	if strings.TrimSpace(c.Auth.SecretKey) == "" {
		errors = append(errors, "SECRET_KEY is required")
	}
	if c.Auth.BcryptWorkFactor < 4 || c.Auth.BcryptWorkFactor > 31 {
		errors = append(errors, "BCRYPT_WORK_FACTOR must be between 4 and 31")
	}
	if c.Auth.TokenTTL <= 0 {
		errors = append(errors, "JWT_TTL must be positive")
	}

	validBackends := []string{"memory", "redis"}
	if !contains(validBackends, c.Cache.Backend) {
		errors = append(errors, fmt.Sprintf("CACHE_BACKEND must be one of: %s", strings.Join(validBackends, ", ")))
	}

	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		errors = append(errors, "SERVER_PORT must be a valid port")
	}

	if len(errors) > 0 {
		return fmt.Errorf("validation errors: %s", strings.Join(errors, "; "))
	}

	return nil
}

const redacted = "[redacted]"

// Redacted returns a copy of c with secrets masked, for logging.
func (c *Config) Redacted() Config {
	out := *c
	if out.Auth.SecretKey != "" {
		out.Auth.SecretKey = redacted
	}
	if out.Database.Postgres.Password != "" {
		out.Database.Postgres.Password = redacted
	}
	if out.Cache.Redis.Password != "" {
		out.Cache.Redis.Password = redacted
	}
	out.Database.Postgres.DSN = redactDSN(out.Database.Postgres.DSN)
	return out
}

// redactDSN masks the password of a URL DSN. A key/value DSN carrying a
// password is masked whole.
func redactDSN(dsn string) string {
	if dsn == "" {
		return dsn
	}
	if u, err := url.Parse(dsn); err == nil && u.Scheme != "" {
		if _, ok := u.User.Password(); ok {
			u.User = url.UserPassword(u.User.Username(), redacted)
			return u.String()
		}
		return dsn
	}
	if strings.Contains(dsn, "password") {
		return redacted
	}
	return dsn
}

// envReader reads typed values, falling back to the default when a key is
// unset, empty or unparsable.
type envReader struct {
	lookup lookupFunc
}

func (e envReader) raw(key string) (string, bool) {
	value, ok := e.lookup(key)
	if !ok || value == "" {
		return "", false
	}
	return value, true
}

func (e envReader) str(key, defaultValue string) string {
	if value, ok := e.raw(key); ok {
		return value
	}
	return defaultValue
}

func (e envReader) int(key string, defaultValue int) int {
	if value, ok := e.raw(key); ok {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func (e envReader) int64(key string, defaultValue int64) int64 {
	if value, ok := e.raw(key); ok {
		if intValue, err := strconv.ParseInt(value, 10, 64); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func (e envReader) bool(key string, defaultValue bool) bool {
	if value, ok := e.raw(key); ok {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}

func (e envReader) duration(key string, defaultValue time.Duration) time.Duration {
	if value, ok := e.raw(key); ok {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

func contains(slice []string, item string) bool {
	for _, s := range slice {
		if s == item {
			return true
		}
	}
	return false
}
