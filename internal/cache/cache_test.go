package cache

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/Leganyst/room-booking/internal/calendar"
	"github.com/Leganyst/room-booking/internal/config"
	"github.com/Leganyst/room-booking/internal/dtos"
)

type stepClock struct{ now time.Time }

func (c *stepClock) Now() time.Time { return c.now }

func TestMemoryCatalogCache_ExpiresAfterTTL(t *testing.T) {
	ctx := context.Background()
	clock := &stepClock{now: time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)}
	c := NewMemoryCatalogCache(clock)

	_, ok, err := c.Floors(ctx)
	require.NoError(t, err)
	require.False(t, ok)

	floors := []dtos.Floor{{Andar: 1, Salas: []dtos.Room{{ID: "mock-101", Andar: 1}}}}
	require.NoError(t, c.SetFloors(ctx, floors, time.Minute))

	got, ok, err := c.Floors(ctx)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, floors, got)

	clock.now = clock.now.Add(time.Minute)
	_, ok, _ = c.Floors(ctx)
	require.False(t, ok)
}

func TestMemoryCatalogCache_ReturnsCopies(t *testing.T) {
	ctx := context.Background()
	c := NewMemoryCatalogCache(nil)

	floors := []dtos.Floor{{Andar: 1, Salas: []dtos.Room{{ID: "mock-101", Andar: 1}}}}
	require.NoError(t, c.SetFloors(ctx, floors, 0))
	floors[0].Salas[0].ID = "changed by caller"

	got, ok, err := c.Floors(ctx)
	require.NoError(t, err)
	require.True(t, ok)
	got[0].Andar = 9
	got[0].Salas[0].ID = "changed by reader"

	again, _, _ := c.Floors(ctx)
	require.Equal(t, 1, again[0].Andar)
	require.Equal(t, "mock-101", again[0].Salas[0].ID)
}

func TestMemoryCatalogCache_Invalidate(t *testing.T) {
	ctx := context.Background()
	c := NewMemoryCatalogCache(calendar.FixedClock{At: time.Now()})

	require.NoError(t, c.SetFloors(ctx, []dtos.Floor{{Andar: 2}}, 0))
	require.NoError(t, c.Invalidate(ctx))

	_, ok, err := c.Floors(ctx)
	require.NoError(t, err)
	require.False(t, ok)
}

func TestRedisCatalogCache(t *testing.T) {
	addr := os.Getenv("REDIS_TEST_ADDR")
	if addr == "" {
		t.Skip("REDIS_TEST_ADDR not set")
	}
	ctx := context.Background()

	client, err := NewRedisClient(ctx, config.RedisConfig{Addr: addr})
	require.NoError(t, err)
	defer client.Close()

	c := NewRedisCatalogCache(client)
	require.NoError(t, c.Invalidate(ctx))

	_, ok, err := c.Floors(ctx)
	require.NoError(t, err)
	require.False(t, ok)

	floors := []dtos.Floor{{Andar: 3, Salas: []dtos.Room{{ID: "mock-301", Descricao: "301", Andar: 3, Capacidade: 35}}}}
	require.NoError(t, c.SetFloors(ctx, floors, time.Minute))

	got, ok, err := c.Floors(ctx)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, floors, got)

	require.NoError(t, c.Invalidate(ctx))
}
