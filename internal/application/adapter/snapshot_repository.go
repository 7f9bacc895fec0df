package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/finance-coach/backend/internal/domain/entity"
)

// SnapshotRepository defines the interface for snapshot persistence.
// A snapshot is replaced wholesale; there is no partial update or delete.
type SnapshotRepository interface {
	// Get assembles the user's current snapshot. A user with no snapshot
	// rows gets an empty (but non-nil) Snapshot.
	Get(ctx context.Context, userID uuid.UUID) (*entity.Snapshot, error)

	// Replace atomically removes the user's existing snapshot rows and
	// writes the given ones.
	Replace(ctx context.Context, userID uuid.UUID, snapshot *entity.Snapshot) error
}
