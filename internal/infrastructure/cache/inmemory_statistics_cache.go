package cache

import (
	"context"
	"sync"
	"time"

	"github.com/farmstead/backend/internal/domain/report"
)

const defaultCleanupInterval = 30 * time.Second

// InMemoryStatisticsCache caches statistics snapshots in process. It is the
// fallback when Redis is disabled; entries expire by TTL and a background
// goroutine sweeps them out.
type InMemoryStatisticsCache struct {
	mu      sync.RWMutex
	entries map[string]*statsEntry
	stopCh  chan struct{}
	once    sync.Once
}

type statsEntry struct {
	stats     *report.FarmStatistics
	expiresAt time.Time
}

func (e *statsEntry) isExpired() bool {
	return time.Now().After(e.expiresAt)
}

// NewInMemoryStatisticsCache creates an in-memory statistics cache
func NewInMemoryStatisticsCache() *InMemoryStatisticsCache {
	c := &InMemoryStatisticsCache{
		entries: make(map[string]*statsEntry),
		stopCh:  make(chan struct{}),
	}
	go c.cleanupExpired()
	return c
}

// Get returns a cached snapshot, or false on miss or expiry
func (c *InMemoryStatisticsCache) Get(_ context.Context, key string) (*report.FarmStatistics, bool) {
	c.mu.RLock()
	entry, ok := c.entries[key]
	c.mu.RUnlock()

	if !ok || entry.isExpired() {
		return nil, false
	}
	return entry.stats, true
}

// Set stores a snapshot with a TTL
func (c *InMemoryStatisticsCache) Set(_ context.Context, key string, stats *report.FarmStatistics, ttl time.Duration) {
	c.mu.Lock()
	c.entries[key] = &statsEntry{stats: stats, expiresAt: time.Now().Add(ttl)}
	c.mu.Unlock()
}

// Stop terminates the cleanup goroutine
func (c *InMemoryStatisticsCache) Stop() {
	c.once.Do(func() { close(c.stopCh) })
}

func (c *InMemoryStatisticsCache) cleanupExpired() {
	ticker := time.NewTicker(defaultCleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-c.stopCh:
			return
		case <-ticker.C:
			c.mu.Lock()
			for key, entry := range c.entries {
				if entry.isExpired() {
					delete(c.entries, key)
				}
			}
			c.mu.Unlock()
		}
	}
}
