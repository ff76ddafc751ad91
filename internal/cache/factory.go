package cache

import (
	"fmt"

	"github.com/AnyaAven/jobly/internal/platform/config"
)

// New creates the backend named in cfg. A disabled cache returns nil and no
// error, and a nil Cache turns Service into a pass-through.
func New(cfg config.CacheConfig) (Cache, error) {
	if !cfg.Enabled {
		return nil, nil
	}

	switch cfg.Backend {
	case BackendMemory:
		return NewMemoryCache(cfg.MaxMemory, cfg.CleanupInterval), nil
	case BackendRedis:
		return NewRedisCache(cfg.Redis)
	default:
		return nil, fmt.Errorf("%w: %s", ErrInvalidCacheType, cfg.Backend)
	}
}
