package goal

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/finance-coach/backend/internal/application/adapter"
	"github.com/finance-coach/backend/internal/domain/entity"
	domainerror "github.com/finance-coach/backend/internal/domain/error"
)

// CancelGoalInput represents the input for goal cancellation.
type CancelGoalInput struct {
	GoalID uuid.UUID
	UserID uuid.UUID
}

// CancelGoalUseCase handles goal cancellation. A cancelled goal keeps its
// progress history but is excluded from plans and the active-goal count.
type CancelGoalUseCase struct {
	goalRepo adapter.GoalRepository
	now      func() time.Time
}

// NewCancelGoalUseCase creates a new CancelGoalUseCase instance.
func NewCancelGoalUseCase(goalRepo adapter.GoalRepository) *CancelGoalUseCase {
	return &CancelGoalUseCase{
		goalRepo: goalRepo,
		now:      time.Now,
	}
}

// Execute cancels the goal.
func (uc *CancelGoalUseCase) Execute(ctx context.Context, input CancelGoalInput) error {
	goal, err := uc.goalRepo.FindByID(ctx, input.GoalID)
	if err != nil {
		return err
	}
	if goal.UserID != input.UserID {
		return domainerror.NewGoalError(
			domainerror.ErrCodeUnauthorizedGoalAccess,
			"goal does not belong to user",
			domainerror.ErrUnauthorizedGoalAccess,
		)
	}
	if goal.Status.IsTerminal() {
		return domainerror.NewGoalError(
			domainerror.ErrCodeGoalAlreadyTerminal,
			"completed or cancelled goals cannot be cancelled",
			domainerror.ErrGoalAlreadyTerminal,
		)
	}

	goal.Status = entity.GoalStatusCancelled
	goal.UpdatedAt = uc.now().UTC()

	if err := uc.goalRepo.Update(ctx, goal); err != nil {
		return fmt.Errorf("failed to cancel goal: %w", err)
	}

	return nil
}
