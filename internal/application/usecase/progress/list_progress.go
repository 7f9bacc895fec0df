package progress

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/finance-coach/backend/internal/application/adapter"
	"github.com/finance-coach/backend/internal/domain/entity"
	domainerror "github.com/finance-coach/backend/internal/domain/error"
)

// ListProgressInput represents the input for listing a goal's progress.
type ListProgressInput struct {
	UserID uuid.UUID
	GoalID uuid.UUID
}

// ListProgressOutput represents the output of listing progress, newest
// first.
type ListProgressOutput struct {
	Progress []*entity.GoalProgress
}

// ListProgressUseCase handles listing a goal's progress history.
type ListProgressUseCase struct {
	goalRepo     adapter.GoalRepository
	progressRepo adapter.ProgressRepository
}

// NewListProgressUseCase creates a new ListProgressUseCase instance.
func NewListProgressUseCase(goalRepo adapter.GoalRepository, progressRepo adapter.ProgressRepository) *ListProgressUseCase {
	return &ListProgressUseCase{
		goalRepo:     goalRepo,
		progressRepo: progressRepo,
	}
}

// Execute retrieves the progress history, enforcing goal ownership.
func (uc *ListProgressUseCase) Execute(ctx context.Context, input ListProgressInput) (*ListProgressOutput, error) {
	goal, err := uc.goalRepo.FindByID(ctx, input.GoalID)
	if err != nil {
		return nil, err
	}
	if goal.UserID != input.UserID {
		return nil, domainerror.NewGoalError(
			domainerror.ErrCodeUnauthorizedGoalAccess,
			"goal does not belong to user",
			domainerror.ErrUnauthorizedGoalAccess,
		)
	}

	records, err := uc.progressRepo.FindByGoalID(ctx, input.GoalID)
	if err != nil {
		return nil, fmt.Errorf("failed to list progress: %w", err)
	}

	return &ListProgressOutput{Progress: records}, nil
}
