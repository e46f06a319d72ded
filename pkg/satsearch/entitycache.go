package satsearch

import (
	"sync"

	"github.com/google/uuid"

	"github.com/donaldgifford/satsearch-go/internal/metrics"
)

// EntityCache keeps fetched entities by identifier for the lifetime of the
// owning Service. It never evicts.
//
// GetOrAdd does not hold the lock while the factory runs, so concurrent
// misses for the same id may each run their factory; the last one to finish
// is the value that stays cached.
type EntityCache struct {
	mu       sync.RWMutex
	entities map[uuid.UUID]Entity
}

// NewEntityCache returns an empty cache.
func NewEntityCache() *EntityCache {
	return &EntityCache{entities: make(map[uuid.UUID]Entity)}
}

// Get returns the entity stored for id.
func (c *EntityCache) Get(id uuid.UUID) (Entity, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	e, ok := c.entities[id]
	return e, ok
}

// Add stores e under its own identifier, replacing any previous entry.
func (c *EntityCache) Add(e Entity) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entities[e.ID()] = e
}

// GetOrAdd returns the entity stored for id, or runs factory, stores its
// result under the result's own ID and returns it. A result whose ID differs
// from id is therefore found by that ID, not by id. A factory error is
// returned unchanged and nothing is stored.
func (c *EntityCache) GetOrAdd(id uuid.UUID, factory func() (Entity, error)) (Entity, error) {
	if e, ok := c.Get(id); ok {
		metrics.EntityCacheHitsTotal.Inc()
		return e, nil
	}
	metrics.EntityCacheMissesTotal.Inc()

	e, err := factory()
	if err != nil {
		return nil, err
	}

	c.Add(e)
	return e, nil
}

// Len returns the number of cached entities.
func (c *EntityCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entities)
}
