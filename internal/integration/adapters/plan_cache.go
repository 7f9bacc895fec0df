package adapters

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/finance-coach/backend/internal/application/adapter"
	"github.com/finance-coach/backend/internal/domain/entity"
)

// redisPlanCache implements adapter.PlanCache on Redis. Entries expire on
// their own; versioned keys mean stale entries are never read, so the TTL
// only bounds memory.
type redisPlanCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisPlanCache creates a Redis-backed plan cache.
func NewRedisPlanCache(client *redis.Client, ttl time.Duration) adapter.PlanCache {
	return &redisPlanCache{
		client: client,
		ttl:    ttl,
	}
}

// Get returns the cached plan for (userID, version), or nil on miss.
func (c *redisPlanCache) Get(ctx context.Context, userID uuid.UUID, version string) (*entity.PlanResult, error) {
	payload, err := c.client.Get(ctx, planKey(userID, version)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("plan cache get: %w", err)
	}

	var plan entity.PlanResult
	if err := json.Unmarshal(payload, &plan); err != nil {
		return nil, fmt.Errorf("plan cache decode: %w", err)
	}
	return &plan, nil
}

// Set stores a computed plan under (userID, version).
func (c *redisPlanCache) Set(ctx context.Context, userID uuid.UUID, version string, plan *entity.PlanResult) error {
	payload, err := json.Marshal(plan)
	if err != nil {
		return fmt.Errorf("plan cache encode: %w", err)
	}

	if err := c.client.Set(ctx, planKey(userID, version), payload, c.ttl).Err(); err != nil {
		return fmt.Errorf("plan cache set: %w", err)
	}
	return nil
}

func planKey(userID uuid.UUID, version string) string {
	return fmt.Sprintf("plan:%s:%s", userID, version)
}
