package cache

import (
	"context"
	"sync"
	"time"

	"github.com/Leganyst/room-booking/internal/calendar"
	"github.com/Leganyst/room-booking/internal/dtos"
)

// MemoryCatalogCache is an in-process CatalogCache used when REDIS_ADDR is
// unset and in tests.
type MemoryCatalogCache struct {
	mu      sync.Mutex
	clock   calendar.Clock
	floors  []dtos.Floor
	expires time.Time
	set     bool
}

func NewMemoryCatalogCache(clock calendar.Clock) *MemoryCatalogCache {
	if clock == nil {
		clock = calendar.RealClock{}
	}
	return &MemoryCatalogCache{clock: clock}
}

func (c *MemoryCatalogCache) Floors(context.Context) ([]dtos.Floor, bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.set {
		return nil, false, nil
	}
	if !c.expires.IsZero() && !c.clock.Now().Before(c.expires) {
		c.set = false
		c.floors = nil
		return nil, false, nil
	}
	return cloneFloors(c.floors), true, nil
}

func (c *MemoryCatalogCache) SetFloors(_ context.Context, floors []dtos.Floor, ttl time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.floors = cloneFloors(floors)
	c.set = true
	c.expires = time.Time{}
	if ttl > 0 {
		c.expires = c.clock.Now().Add(ttl)
	}
	return nil
}

func (c *MemoryCatalogCache) Invalidate(context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.floors = nil
	c.set = false
	return nil
}

func cloneFloors(floors []dtos.Floor) []dtos.Floor {
	out := make([]dtos.Floor, len(floors))
	for i, f := range floors {
		out[i] = f
		out[i].Salas = append([]dtos.Room(nil), f.Salas...)
	}
	return out
}
