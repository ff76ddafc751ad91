package cache

import (
	"context"
	"sync"
	"sync/atomic"
	"time"
)

type cacheItem struct {
	value      []byte
	expiration time.Time
}

func (i *cacheItem) expired(now time.Time) bool {
	return now.After(i.expiration)
}

func itemSize(key string, item *cacheItem) int64 {
	// key + value + rough per-entry overhead
	return int64(len(key) + len(item.value) + 64)
}

// MemoryCache implements Cache in process memory. When maxMemory is
// positive, inserts beyond it evict expired entries first, then the entries
// closest to expiry.
type MemoryCache struct {
	mu            sync.Mutex
	items         map[string]*cacheItem
	maxMemory     int64
	currentMemory int64
	hits          int64
	misses        int64
	evictions     int64
	closed        bool
	done          chan struct{}
	now           func() time.Time
}

// NewMemoryCache creates a memory cache. A positive cleanupInterval starts a
// janitor goroutine that runs until Close.
func NewMemoryCache(maxMemory int64, cleanupInterval time.Duration) *MemoryCache {
	c := &MemoryCache{
		items:     make(map[string]*cacheItem),
		maxMemory: maxMemory,
		done:      make(chan struct{}),
		now:       time.Now,
	}
	if cleanupInterval > 0 {
		go c.janitor(cleanupInterval)
	}
	return c
}

// Get retrieves a copy of the stored value
func (c *MemoryCache) Get(ctx context.Context, key string) ([]byte, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return nil, ErrCacheDisabled
	}

	item, ok := c.items[key]
	if !ok || item.expired(c.now()) {
		if ok {
			c.remove(key, item)
		}
		atomic.AddInt64(&c.misses, 1)
		return nil, ErrKeyNotFound
	}

	atomic.AddInt64(&c.hits, 1)
	out := make([]byte, len(item.value))
	copy(out, item.value)
	return out, nil
}

// Set stores a copy of value
func (c *MemoryCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return ErrCacheDisabled
	}

	stored := make([]byte, len(value))
	copy(stored, value)
	item := &cacheItem{value: stored, expiration: c.now().Add(ttl)}

	if old, ok := c.items[key]; ok {
		c.remove(key, old)
	}
	c.items[key] = item
	c.currentMemory += itemSize(key, item)
	c.evictIfNeeded(key)
	return nil
}

// Delete removes a value from cache
func (c *MemoryCache) Delete(ctx context.Context, key string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if item, ok := c.items[key]; ok {
		c.remove(key, item)
	}
	return nil
}

// Close stops the janitor and drops every entry
func (c *MemoryCache) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return nil
	}
	close(c.done)
	c.items = make(map[string]*cacheItem)
	c.currentMemory = 0
	c.closed = true
	return nil
}

// Stats returns cache statistics
func (c *MemoryCache) Stats() Stats {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.now()
	var active int64
	for _, item := range c.items {
		if !item.expired(now) {
			active++
		}
	}

	hits := atomic.LoadInt64(&c.hits)
	misses := atomic.LoadInt64(&c.misses)
	return Stats{
		Hits:        hits,
		Misses:      misses,
		HitRatio:    hitRatio(hits, misses),
		Keys:        active,
		MemoryUsage: c.currentMemory,
		Evictions:   atomic.LoadInt64(&c.evictions),
	}
}

func (c *MemoryCache) janitor(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			c.cleanupExpired()
		case <-c.done:
			return
		}
	}
}

func (c *MemoryCache) cleanupExpired() {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.now()
	for key, item := range c.items {
		if item.expired(now) {
			c.remove(key, item)
		}
	}
}

// remove must be called with mu held.
func (c *MemoryCache) remove(key string, item *cacheItem) {
	delete(c.items, key)
	c.currentMemory -= itemSize(key, item)
}

// evictIfNeeded must be called with mu held. keep is never evicted.
func (c *MemoryCache) evictIfNeeded(keep string) {
	if c.maxMemory <= 0 || c.currentMemory <= c.maxMemory {
		return
	}

	now := c.now()
	for key, item := range c.items {
		if key != keep && item.expired(now) {
			c.remove(key, item)
			atomic.AddInt64(&c.evictions, 1)
		}
	}

	for c.currentMemory > c.maxMemory {
		victim := ""
		var soonest time.Time
		for key, item := range c.items {
			if key == keep {
				continue
			}
			if victim == "" || item.expiration.Before(soonest) {
				victim, soonest = key, item.expiration
			}
		}
		if victim == "" {
			return
		}
		c.remove(victim, c.items[victim])
		atomic.AddInt64(&c.evictions, 1)
	}
}
