package goal

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finance-coach/backend/internal/application/adapter"
	"github.com/finance-coach/backend/internal/domain/entity"
	domainerror "github.com/finance-coach/backend/internal/domain/error"
)

// UpdateGoalInput represents the input for goal update. Nil fields are
// left unchanged.
type UpdateGoalInput struct {
	GoalID       uuid.UUID
	UserID       uuid.UUID
	Type         *entity.GoalType
	Name         *string
	TargetAmount *decimal.Decimal
	TargetDate   *time.Time
	Priority     *entity.GoalPriority
	Status       *entity.GoalStatus
	WhyText      *string
}

// UpdateGoalOutput represents the output of goal update.
type UpdateGoalOutput struct {
	Goal *entity.Goal
}

// UpdateGoalUseCase handles goal update logic. Any accepted update is a
// plan-recompute trigger for the client.
type UpdateGoalUseCase struct {
	goalRepo adapter.GoalRepository
	now      func() time.Time
}

// NewUpdateGoalUseCase creates a new UpdateGoalUseCase instance.
func NewUpdateGoalUseCase(goalRepo adapter.GoalRepository) *UpdateGoalUseCase {
	return &UpdateGoalUseCase{
		goalRepo: goalRepo,
		now:      time.Now,
	}
}

// Execute performs the goal update.
func (uc *UpdateGoalUseCase) Execute(ctx context.Context, input UpdateGoalInput) (*UpdateGoalOutput, error) {
	if !uc.hasFields(input) {
		return nil, domainerror.NewGoalError(
			domainerror.ErrCodeNoFieldsToUpdate,
			"no fields to update",
			domainerror.ErrNoFieldsToUpdate,
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
		return nil, domainerror.NewGoalError(
			domainerror.ErrCodeGoalAlreadyTerminal,
			"completed or cancelled goals cannot be updated",
			domainerror.ErrGoalAlreadyTerminal,
		)
	}

	if err := uc.apply(goal, input); err != nil {
		return nil, err
	}
	goal.UpdatedAt = uc.now().UTC()

	if err := uc.goalRepo.Update(ctx, goal); err != nil {
		return nil, fmt.Errorf("failed to update goal: %w", err)
	}

	return &UpdateGoalOutput{Goal: goal}, nil
}

func (uc *UpdateGoalUseCase) hasFields(input UpdateGoalInput) bool {
	return input.Type != nil || input.Name != nil || input.TargetAmount != nil ||
		input.TargetDate != nil || input.Priority != nil || input.Status != nil ||
		input.WhyText != nil
}

func (uc *UpdateGoalUseCase) apply(goal *entity.Goal, input UpdateGoalInput) error {
	if input.Type != nil {
		if !input.Type.IsValid() {
			return domainerror.NewGoalError(
				domainerror.ErrCodeInvalidGoalType,
				"type must be one of: debt_payoff, emergency_fund, short_term_saving, fire_starter, custom",
				domainerror.ErrInvalidGoalType,
			)
		}
		goal.Type = *input.Type
	}

	if input.Name != nil {
		name := strings.TrimSpace(*input.Name)
		if name == "" {
			return domainerror.NewGoalError(
				domainerror.ErrCodeMissingGoalFields,
				"goal name cannot be empty",
				nil,
			)
		}
		goal.Name = name
	}

	if input.TargetAmount != nil {
		if !input.TargetAmount.IsPositive() {
			return domainerror.NewGoalError(
				domainerror.ErrCodeInvalidTargetAmount,
				"target amount must be greater than zero",
				domainerror.ErrInvalidTargetAmount,
			)
		}
		goal.TargetAmount = *input.TargetAmount
	}

	if input.TargetDate != nil {
		if !input.TargetDate.After(uc.now().UTC()) {
			return domainerror.NewGoalError(
				domainerror.ErrCodeTargetDateNotFuture,
				"target date must be in the future",
				domainerror.ErrTargetDateNotFuture,
			)
		}
		goal.TargetDate = *input.TargetDate
	}

	if input.Priority != nil {
		if !input.Priority.IsValid() {
			return domainerror.NewGoalError(
				domainerror.ErrCodeInvalidGoalPriority,
				"priority must be High, Medium, or Low",
				domainerror.ErrInvalidGoalPriority,
			)
		}
		goal.Priority = *input.Priority
	}

	if input.Status != nil {
		// Only pausing and resuming are allowed here; completion comes from
		// progress updates and cancellation from the delete endpoint.
		if *input.Status != entity.GoalStatusActive && *input.Status != entity.GoalStatusPaused {
			return domainerror.NewGoalError(
				domainerror.ErrCodeInvalidGoalStatus,
				"status can only be set to active or paused",
				domainerror.ErrInvalidGoalStatus,
			)
		}
		goal.Status = *input.Status
	}

	if input.WhyText != nil {
		goal.WhyText = *input.WhyText
	}

	return nil
}
