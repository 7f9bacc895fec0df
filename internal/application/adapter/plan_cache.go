package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/finance-coach/backend/internal/domain/entity"
)

// PlanCache defines an optional cache for computed plans. Correctness never
// depends on it: a computation must behave identically with a nil cache.
//
// The version string is derived from the snapshot and goal record versions,
// so any write to either produces a different key and stale entries are
// simply never looked up again.
type PlanCache interface {
	// Get returns the cached plan for (userID, version), or nil on miss.
	// Cache errors are reported but callers treat them as misses.
	Get(ctx context.Context, userID uuid.UUID, version string) (*entity.PlanResult, error)

	// Set stores a computed plan under (userID, version).
	Set(ctx context.Context, userID uuid.UUID, version string, plan *entity.PlanResult) error
}
