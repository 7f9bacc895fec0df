package snapshot

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/finance-coach/backend/internal/application/adapter"
	"github.com/finance-coach/backend/internal/domain/entity"
)

// GetSnapshotInput represents the input for fetching a snapshot.
type GetSnapshotInput struct {
	UserID uuid.UUID
}

// GetSnapshotOutput represents the output of fetching a snapshot. The
// snapshot is never nil; a user who has not submitted one gets an empty
// snapshot.
type GetSnapshotOutput struct {
	Snapshot *entity.Snapshot
}

// GetSnapshotUseCase handles fetching a user's current snapshot.
type GetSnapshotUseCase struct {
	snapshotRepo adapter.SnapshotRepository
}

// NewGetSnapshotUseCase creates a new GetSnapshotUseCase instance.
func NewGetSnapshotUseCase(snapshotRepo adapter.SnapshotRepository) *GetSnapshotUseCase {
	return &GetSnapshotUseCase{snapshotRepo: snapshotRepo}
}

// Execute retrieves the user's current snapshot.
func (uc *GetSnapshotUseCase) Execute(ctx context.Context, input GetSnapshotInput) (*GetSnapshotOutput, error) {
	snapshot, err := uc.snapshotRepo.Get(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to load snapshot: %w", err)
	}
	return &GetSnapshotOutput{Snapshot: snapshot}, nil
}
