// Package progress contains goal progress use cases.
package progress

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finance-coach/backend/internal/application/adapter"
	"github.com/finance-coach/backend/internal/domain/entity"
	domainerror "github.com/finance-coach/backend/internal/domain/error"
)

// RecordProgressInput represents the input for recording a progress point.
type RecordProgressInput struct {
	UserID         uuid.UUID
	GoalID         uuid.UUID
	CurrentBalance decimal.Decimal
	Source         entity.ProgressSource
	Note           string
}

// RecordProgressOutput represents the output of recording progress.
// GoalCompleted is set when the recorded balance reached the target and
// the goal was flipped to completed.
type RecordProgressOutput struct {
	Progress      *entity.GoalProgress
	Goal          *entity.Goal
	GoalCompleted bool
}

// RecordProgressUseCase handles appending a progress point to a goal.
type RecordProgressUseCase struct {
	goalRepo     adapter.GoalRepository
	progressRepo adapter.ProgressRepository
	now          func() time.Time
}

// NewRecordProgressUseCase creates a new RecordProgressUseCase instance.
func NewRecordProgressUseCase(goalRepo adapter.GoalRepository, progressRepo adapter.ProgressRepository) *RecordProgressUseCase {
	return &RecordProgressUseCase{
		goalRepo:     goalRepo,
		progressRepo: progressRepo,
		now:          time.Now,
	}
}

// Execute records the progress point and completes the goal when the
// balance has reached the target.
func (uc *RecordProgressUseCase) Execute(ctx context.Context, input RecordProgressInput) (*RecordProgressOutput, error) {
	if input.CurrentBalance.IsNegative() {
		return nil, domainerror.NewProgressError(
			domainerror.ErrCodeNegativeProgressBalance,
			"balance must be non-negative",
			domainerror.ErrNegativeProgressBalance,
		)
	}

	source := input.Source
	if source == "" {
		source = entity.ProgressSourceManual
	}
	if !source.IsValid() {
		return nil, domainerror.NewProgressError(
			domainerror.ErrCodeInvalidProgressSource,
			"source must be manual or checkin",
			domainerror.ErrInvalidProgressSource,
		)
	}

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
	if goal.Status.IsTerminal() {
		return nil, domainerror.NewProgressError(
			domainerror.ErrCodeProgressOnTerminalGoal,
			"cannot record progress on a completed or cancelled goal",
			domainerror.ErrProgressOnTerminalGoal,
		)
	}

	progress := entity.NewGoalProgress(input.UserID, input.GoalID, input.CurrentBalance, source, input.Note)
	if err := uc.progressRepo.Create(ctx, progress); err != nil {
		return nil, fmt.Errorf("failed to record progress: %w", err)
	}

	goal.CurrentBalance = input.CurrentBalance
	goal.UpdatedAt = uc.now().UTC()

	completed := false
	if goal.IsReached() {
		goal.Status = entity.GoalStatusCompleted
		completed = true
	}
	if err := uc.goalRepo.Update(ctx, goal); err != nil {
		return nil, fmt.Errorf("failed to update goal: %w", err)
	}

	return &RecordProgressOutput{
		Progress:      progress,
		Goal:          goal,
		GoalCompleted: completed,
	}, nil
}
