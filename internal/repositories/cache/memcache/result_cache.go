package memcache

import (
	"context"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"github.com/mosshrp/payroll_backend/internal/core/domain"
	portsrepo "github.com/mosshrp/payroll_backend/internal/core/ports/repositories"
)

// cacheSize bounds the number of periods held in memory. Reconciliation
// happens per hotel-week, so even a large fleet stays well under this.
const cacheSize = 1024

// ReconciliationCache is the in-process fallback result cache, used when no
// Redis address is configured. Entries expire after the standard TTL.
type ReconciliationCache struct {
	lru *expirable.LRU[string, *domain.Reconciliation]
}

// NewReconciliationCache creates an in-memory result cache.
func NewReconciliationCache() portsrepo.ResultCache {
	return &ReconciliationCache{
		lru: expirable.NewLRU[string, *domain.Reconciliation](cacheSize, nil, portsrepo.ResultCacheTTL),
	}
}

var _ portsrepo.ResultCache = (*ReconciliationCache)(nil)

// Get returns the cached reconciliation for a period, or false on miss.
func (c *ReconciliationCache) Get(_ context.Context, periodID string) (*domain.Reconciliation, bool) {
	return c.lru.Get(periodID)
}

// Set stores the stitched result under the period ID.
func (c *ReconciliationCache) Set(_ context.Context, periodID string, rec *domain.Reconciliation) error {
	c.lru.Add(periodID, rec)
	return nil
}

// Invalidate drops the cached result for a period.
func (c *ReconciliationCache) Invalidate(_ context.Context, periodID string) error {
	c.lru.Remove(periodID)
	return nil
}
