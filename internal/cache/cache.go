package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/Leganyst/room-booking/internal/config"
	"github.com/Leganyst/room-booking/internal/dtos"
)

const floorsKey = "room-booking:catalog:floors"

// CatalogCache stores the floor groups served by GET /andares.
type CatalogCache interface {
	// Floors returns the cached groups; ok is false on a miss.
	Floors(ctx context.Context) (floors []dtos.Floor, ok bool, err error)
	SetFloors(ctx context.Context, floors []dtos.Floor, ttl time.Duration) error
	Invalidate(ctx context.Context) error
}

type RedisCatalogCache struct {
	conn redis.Cmdable
}

func NewRedisCatalogCache(conn redis.Cmdable) *RedisCatalogCache {
	return &RedisCatalogCache{conn: conn}
}

// NewRedisClient opens a client and pings it once.
func NewRedisClient(ctx context.Context, cfg config.RedisConfig) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("ping redis %s: %w", cfg.Addr, err)
	}
	return client, nil
}

func (c *RedisCatalogCache) Floors(ctx context.Context) ([]dtos.Floor, bool, error) {
	val, err := c.conn.Get(ctx, floorsKey).Result()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("get floors: %w", err)
	}

	var floors []dtos.Floor
	if err := json.Unmarshal([]byte(val), &floors); err != nil {
		// A corrupt entry is a miss; the next SetFloors overwrites it.
		return nil, false, nil
	}
	return floors, true, nil
}

func (c *RedisCatalogCache) SetFloors(ctx context.Context, floors []dtos.Floor, ttl time.Duration) error {
	raw, err := json.Marshal(floors)
	if err != nil {
		return fmt.Errorf("encode floors: %w", err)
	}
	if err := c.conn.Set(ctx, floorsKey, raw, ttl).Err(); err != nil {
		return fmt.Errorf("set floors: %w", err)
	}
	return nil
}

func (c *RedisCatalogCache) Invalidate(ctx context.Context) error {
	if err := c.conn.Del(ctx, floorsKey).Err(); err != nil {
		return fmt.Errorf("invalidate floors: %w", err)
	}
	return nil
}
