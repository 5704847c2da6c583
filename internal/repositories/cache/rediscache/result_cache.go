package rediscache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/mosshrp/payroll_backend/internal/core/domain"
	portsrepo "github.com/mosshrp/payroll_backend/internal/core/ports/repositories"
	"github.com/redis/go-redis/v9"
)

const keyPrefix = "reconciliation_"

// ReconciliationCache memoizes stitched reconciliation results in Redis so
// several API instances share one cache. Redis failures degrade to a miss on
// read; writes report their error for the caller to log.
type ReconciliationCache struct {
	client *redis.Client
}

// NewReconciliationCache creates a Redis-backed result cache.
func NewReconciliationCache(client *redis.Client) portsrepo.ResultCache {
	return &ReconciliationCache{client: client}
}

var _ portsrepo.ResultCache = (*ReconciliationCache)(nil)

// Get returns the cached reconciliation for a period. Any Redis or decode
// failure is a miss.
func (c *ReconciliationCache) Get(ctx context.Context, periodID string) (*domain.Reconciliation, bool) {
	payload, err := c.client.Get(ctx, keyPrefix+periodID).Bytes()
	if err != nil {
		return nil, false
	}

	var rec domain.Reconciliation
	if err := json.Unmarshal(payload, &rec); err != nil {
		// A corrupt entry is dropped so it cannot keep serving misses.
		c.client.Del(ctx, keyPrefix+periodID)
		return nil, false
	}
	return &rec, true
}

// Set stores the stitched result for the standard TTL.
func (c *ReconciliationCache) Set(ctx context.Context, periodID string, rec *domain.Reconciliation) error {
	payload, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("failed to encode reconciliation for period %s: %w", periodID, err)
	}
	if err := c.client.Set(ctx, keyPrefix+periodID, payload, portsrepo.ResultCacheTTL).Err(); err != nil {
		return fmt.Errorf("failed to cache reconciliation for period %s: %w", periodID, err)
	}
	return nil
}

// Invalidate drops the cached result for a period.
func (c *ReconciliationCache) Invalidate(ctx context.Context, periodID string) error {
	if err := c.client.Del(ctx, keyPrefix+periodID).Err(); err != nil && !errors.Is(err, redis.Nil) {
		return fmt.Errorf("failed to invalidate cached reconciliation for period %s: %w", periodID, err)
	}
	return nil
}
