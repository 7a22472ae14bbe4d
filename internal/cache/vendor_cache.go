// Package cache keeps assembled vendor detail pages in Redis.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/wedsimplify/wedsimplify-backend/internal/dto"
)

const keyPrefix = "wedsimplify:vendor:"

type RedisVendorCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisVendorCache(client *redis.Client, ttl time.Duration) *RedisVendorCache {
	return &RedisVendorCache{client: client, ttl: ttl}
}

// Connect builds a client for addr and verifies it answers PING.
func Connect(ctx context.Context, addr, password string, db int) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, err
	}
	return client, nil
}

func key(vendorID uuid.UUID) string {
	return keyPrefix + vendorID.String()
}

func (c *RedisVendorCache) Get(ctx context.Context, vendorID uuid.UUID) (*dto.VendorDetail, bool) {
	data, err := c.client.Get(ctx, key(vendorID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false
	}
	if err != nil {
		slog.Warn("vendor cache read failed", "vendor_id", vendorID, "error", err)
		return nil, false
	}

	var detail dto.VendorDetail
	if err := json.Unmarshal(data, &detail); err != nil {
		slog.Warn("vendor cache entry corrupt", "vendor_id", vendorID, "error", err)
		c.Invalidate(ctx, vendorID)
		return nil, false
	}
	return &detail, true
}

func (c *RedisVendorCache) Set(ctx context.Context, detail *dto.VendorDetail) {
	data, err := json.Marshal(detail)
	if err != nil {
		slog.Warn("vendor cache encode failed", "vendor_id", detail.ID, "error", err)
		return
	}
	if err := c.client.Set(ctx, key(detail.ID), data, c.ttl).Err(); err != nil {
		slog.Warn("vendor cache write failed", "vendor_id", detail.ID, "error", err)
	}
}

func (c *RedisVendorCache) Invalidate(ctx context.Context, vendorID uuid.UUID) {
	if err := c.client.Del(ctx, key(vendorID)).Err(); err != nil {
		slog.Warn("vendor cache invalidation failed", "vendor_id", vendorID, "error", err)
	}
}

// Ping reports whether Redis is reachable.
func (c *RedisVendorCache) Ping(ctx context.Context) error {
	return c.client.Ping(ctx).Err()
}

// Noop is used when no Redis address is configured.
type Noop struct{}

func (Noop) Get(context.Context, uuid.UUID) (*dto.VendorDetail, bool) { return nil, false }
func (Noop) Set(context.Context, *dto.VendorDetail)                   {}
func (Noop) Invalidate(context.Context, uuid.UUID)                    {}
func (Noop) Ping(context.Context) error                               { return nil }
