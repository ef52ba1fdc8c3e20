package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/ujen5173/Ridezio-sub000/internal/domain"
	"github.com/wb-go/wbf/logger"
)

// AvailabilityCache keeps recently computed availability maps in Redis.
// Availability reads are speculative (every date-picker interaction fires
// one), while the authoritative check happens inside the commit transaction,
// so serving slightly stale data here is safe.
//
// Entries are keyed by a per-vehicle version counter; any write to a vehicle's
// reservations bumps the counter, which orphans every cached range for that
// vehicle at once. Orphans fall out via the TTL.
type AvailabilityCache struct {
	client *redis.Client
	ttl    time.Duration
	logger logger.Logger
}

func New(addr, password string, ttl time.Duration, log logger.Logger) *AvailabilityCache {
	if addr == "" {
		log.Warn("redis address is empty, availability cache disabled")
		return &AvailabilityCache{logger: log}
	}

	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       0,
		PoolSize: 10,
	})

	return &AvailabilityCache{client: client, ttl: ttl, logger: log}
}

// Get returns the cached availability for the vehicle and range, or nil on a
// miss. Errors are returned so the caller can log and fall through to the
// ledger.
func (c *AvailabilityCache) Get(ctx context.Context, vehicleID string, rng domain.DateRange) (*domain.VehicleAvailability, error) {
	if c.client == nil {
		return nil, nil
	}

	ver, err := c.version(ctx, vehicleID)
	if err != nil {
		return nil, err
	}

	val, err := c.client.Get(ctx, c.key(vehicleID, ver, rng)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("get availability from cache: %w", err)
	}

	var av domain.VehicleAvailability
	if err = json.Unmarshal([]byte(val), &av); err != nil {
		return nil, fmt.Errorf("unmarshal cached availability: %w", err)
	}

	return &av, nil
}

func (c *AvailabilityCache) Set(ctx context.Context, av *domain.VehicleAvailability) error {
	if c.client == nil {
		return nil
	}

	ver, err := c.version(ctx, av.VehicleID)
	if err != nil {
		return err
	}

	data, err := json.Marshal(av)
	if err != nil {
		return fmt.Errorf("marshal availability: %w", err)
	}

	rng := domain.DateRange{Start: av.Start, End: av.End}
	if err = c.client.Set(ctx, c.key(av.VehicleID, ver, rng), data, c.ttl).Err(); err != nil {
		return fmt.Errorf("set availability in cache: %w", err)
	}

	return nil
}

// Invalidate bumps the vehicle's version so every cached range for it misses
// from now on.
func (c *AvailabilityCache) Invalidate(ctx context.Context, vehicleID string) error {
	if c.client == nil {
		return nil
	}

	if err := c.client.Incr(ctx, c.versionKey(vehicleID)).Err(); err != nil {
		return fmt.Errorf("bump availability version: %w", err)
	}

	return nil
}

func (c *AvailabilityCache) Ping(ctx context.Context) error {
	if c.client == nil {
		return nil
	}
	return c.client.Ping(ctx).Err()
}

func (c *AvailabilityCache) Close() error {
	if c.client == nil {
		return nil
	}
	return c.client.Close()
}

func (c *AvailabilityCache) version(ctx context.Context, vehicleID string) (int64, error) {
	ver, err := c.client.Get(ctx, c.versionKey(vehicleID)).Int64()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return 0, nil
		}
		return 0, fmt.Errorf("get availability version: %w", err)
	}
	return ver, nil
}

func (c *AvailabilityCache) key(vehicleID string, ver int64, rng domain.DateRange) string {
	return fmt.Sprintf("availability:%s:%d:%s:%s",
		vehicleID, ver,
		rng.Start.Format(domain.DayFormat), rng.End.Format(domain.DayFormat),
	)
}

func (c *AvailabilityCache) versionKey(vehicleID string) string {
	return "availability:ver:" + vehicleID
}
