// Package goal contains goal-related use cases.
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

// CreateGoalInput represents the input for goal creation.
type CreateGoalInput struct {
	UserID       uuid.UUID
	Type         entity.GoalType
	Name         string
	TargetAmount decimal.Decimal
	TargetDate   time.Time
	Priority     entity.GoalPriority
	WhyText      string
}

// CreateGoalOutput represents the output of goal creation.
type CreateGoalOutput struct {
	Goal *entity.Goal
}

// CreateGoalUseCase handles goal creation logic.
type CreateGoalUseCase struct {
	goalRepo adapter.GoalRepository
	now      func() time.Time
}

// NewCreateGoalUseCase creates a new CreateGoalUseCase instance.
func NewCreateGoalUseCase(goalRepo adapter.GoalRepository) *CreateGoalUseCase {
	return &CreateGoalUseCase{
		goalRepo: goalRepo,
		now:      time.Now,
	}
}

// Execute performs the goal creation.
func (uc *CreateGoalUseCase) Execute(ctx context.Context, input CreateGoalInput) (*CreateGoalOutput, error) {
	if err := uc.validate(input); err != nil {
		return nil, err
	}

	// The active-goal cap is enforced at creation only, never retroactively.
	activeCount, err := uc.goalRepo.CountActiveByUserID(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to count active goals: %w", err)
	}
	if activeCount >= entity.MaxActiveGoals {
		return nil, domainerror.NewGoalError(
			domainerror.ErrCodeGoalLimitExceeded,
			fmt.Sprintf("you can have at most %d active goals", entity.MaxActiveGoals),
			domainerror.ErrGoalLimitExceeded,
		)
	}

	goal := entity.NewGoal(
		input.UserID,
		input.Type,
		strings.TrimSpace(input.Name),
		input.TargetAmount,
		input.TargetDate,
		input.Priority,
		input.WhyText,
	)

	if err := uc.goalRepo.Create(ctx, goal); err != nil {
		return nil, fmt.Errorf("failed to create goal: %w", err)
	}

	return &CreateGoalOutput{Goal: goal}, nil
}

func (uc *CreateGoalUseCase) validate(input CreateGoalInput) error {
	if strings.TrimSpace(input.Name) == "" {
		return domainerror.NewGoalError(
			domainerror.ErrCodeMissingGoalFields,
			"goal name is required",
			nil,
		)
	}

	if !input.Type.IsValid() {
		return domainerror.NewGoalError(
			domainerror.ErrCodeInvalidGoalType,
			"type must be one of: debt_payoff, emergency_fund, short_term_saving, fire_starter, custom",
			domainerror.ErrInvalidGoalType,
		)
	}

	if !input.Priority.IsValid() {
		return domainerror.NewGoalError(
			domainerror.ErrCodeInvalidGoalPriority,
			"priority must be High, Medium, or Low",
			domainerror.ErrInvalidGoalPriority,
		)
	}

	if !input.TargetAmount.IsPositive() {
		return domainerror.NewGoalError(
			domainerror.ErrCodeInvalidTargetAmount,
			"target amount must be greater than zero",
			domainerror.ErrInvalidTargetAmount,
		)
	}

	if !input.TargetDate.After(uc.now().UTC()) {
		return domainerror.NewGoalError(
			domainerror.ErrCodeTargetDateNotFuture,
			"target date must be in the future",
			domainerror.ErrTargetDateNotFuture,
		)
	}

	return nil
}
