package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/AnyaAven/jobly/internal/pkg/log"
)

// Service stores JSON values under a key prefix. Cache failures are logged
// and reported as misses so callers can always fall back to the database.
type Service struct {
	cache  Cache
	prefix string
	ttl    time.Duration
}

// NewService wraps c. A nil c disables caching.
func NewService(c Cache, prefix string, ttl time.Duration) *Service {
	return &Service{cache: c, prefix: prefix, ttl: ttl}
}

// Enabled reports whether a backend is configured
func (s *Service) Enabled() bool {
	return s != nil && s.cache != nil
}

func (s *Service) key(key string) string {
	return s.prefix + key
}

// GetJSON unmarshals the cached value into target. It returns false on a
// miss, on a backend error or when caching is disabled.
func (s *Service) GetJSON(ctx context.Context, key string, target interface{}) bool {
	if !s.Enabled() {
		return false
	}

	data, err := s.cache.Get(ctx, s.key(key))
	if err != nil {
		if !errors.Is(err, ErrKeyNotFound) {
			log.WarnWithContext(ctx, "cache get %s: %v", s.key(key), err)
		}
		return false
	}

	if err := json.Unmarshal(data, target); err != nil {
		log.WarnWithContext(ctx, "cache decode %s: %v", s.key(key), fmt.Errorf("%w: %v", ErrDeserializationFailed, err))
		return false
	}
	return true
}

// SetJSON stores value with the default TTL
func (s *Service) SetJSON(ctx context.Context, key string, value interface{}) {
	if !s.Enabled() {
		return
	}

	data, err := json.Marshal(value)
	if err != nil {
		log.WarnWithContext(ctx, "cache encode %s: %v", s.key(key), fmt.Errorf("%w: %v", ErrSerializationFailed, err))
		return
	}
	if err := s.cache.Set(ctx, s.key(key), data, s.ttl); err != nil {
		log.WarnWithContext(ctx, "cache set %s: %v", s.key(key), err)
	}
}

// Invalidate removes the given keys
func (s *Service) Invalidate(ctx context.Context, keys ...string) {
	if !s.Enabled() {
		return
	}
	for _, key := range keys {
		if err := s.cache.Delete(ctx, s.key(key)); err != nil {
			log.WarnWithContext(ctx, "cache delete %s: %v", s.key(key), err)
		}
	}
}
