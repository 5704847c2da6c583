package repositories

import (
	"context"
	"time"

	"github.com/mosshrp/payroll_backend/internal/core/domain"
)

// ResultCacheTTL bounds how long a stitched reconciliation result may be
// served without refetching. Entries are evicted on expiry, not on access.
const ResultCacheTTL = 5 * time.Minute

// ResultCache memoizes the expensive reconciliation fetch-and-stitch result
// per payroll period. The cache is best-effort: implementations degrade a
// store failure to a miss, never to an error, so callers fall back to
// uncached computation.
type ResultCache interface {
	// Get returns the cached reconciliation for a period, or false on miss.
	Get(ctx context.Context, periodID string) (*domain.Reconciliation, bool)

	// Set stores the stitched result under the period ID for ResultCacheTTL.
	Set(ctx context.Context, periodID string, rec *domain.Reconciliation) error

	// Invalidate drops the cached result for a period. Every operation that
	// mutates the underlying reconciliation must call it.
	Invalidate(ctx context.Context, periodID string) error
}
