// Package snapshot contains financial snapshot use cases.
package snapshot

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finance-coach/backend/internal/application/adapter"
	"github.com/finance-coach/backend/internal/domain/entity"
	domainerror "github.com/finance-coach/backend/internal/domain/error"
)

// IncomeInput carries the income section of a snapshot submission.
type IncomeInput struct {
	Amount      decimal.Decimal
	Frequency   entity.IncomeFrequency
	SourceLabel string
}

// ExpensesInput carries the fixed monthly expense estimate.
type ExpensesInput struct {
	TotalAmount decimal.Decimal
}

// DebtInput carries one debt record. AnnualRate may be given as a
// percentage (18) or a fraction (0.18); values above 1 are treated
// as percentages.
type DebtInput struct {
	Type       entity.DebtType
	Label      string
	Balance    decimal.Decimal
	AnnualRate decimal.Decimal
	MinPayment decimal.Decimal
}

// SavingsInput carries one savings account balance.
type SavingsInput struct {
	Label   string
	Balance decimal.Decimal
}

// UpsertSnapshotInput represents a full snapshot submission. The
// submission replaces whatever snapshot the user had before.
type UpsertSnapshotInput struct {
	UserID   uuid.UUID
	Income   *IncomeInput
	Expenses *ExpensesInput
	Debts    []DebtInput
	Savings  []SavingsInput
}

// UpsertSnapshotOutput represents the output of a snapshot replacement.
type UpsertSnapshotOutput struct {
	Snapshot *entity.Snapshot
}

// UpsertSnapshotUseCase handles wholesale snapshot replacement.
type UpsertSnapshotUseCase struct {
	snapshotRepo adapter.SnapshotRepository
	now          func() time.Time
}

// NewUpsertSnapshotUseCase creates a new UpsertSnapshotUseCase instance.
func NewUpsertSnapshotUseCase(snapshotRepo adapter.SnapshotRepository) *UpsertSnapshotUseCase {
	return &UpsertSnapshotUseCase{
		snapshotRepo: snapshotRepo,
		now:          time.Now,
	}
}

var maxAnnualRatePercent = decimal.NewFromInt(100)

// Execute validates the submission and replaces the user's snapshot.
func (uc *UpsertSnapshotUseCase) Execute(ctx context.Context, input UpsertSnapshotInput) (*UpsertSnapshotOutput, error) {
	if err := uc.validate(input); err != nil {
		return nil, err
	}

	snapshot := uc.build(input)
	if err := uc.snapshotRepo.Replace(ctx, input.UserID, snapshot); err != nil {
		return nil, domainerror.NewSnapshotError(
			domainerror.ErrCodeSnapshotSaveFailed,
			"failed to save snapshot",
			err,
		)
	}

	return &UpsertSnapshotOutput{Snapshot: snapshot}, nil
}

func (uc *UpsertSnapshotUseCase) validate(input UpsertSnapshotInput) error {
	if input.Income != nil {
		if input.Income.Amount.IsNegative() {
			return domainerror.NewSnapshotError(
				domainerror.ErrCodeNegativeSnapshotAmount,
				"income amount must be non-negative",
				domainerror.ErrNegativeSnapshotAmount,
			)
		}
		if !input.Income.Frequency.IsValid() {
			return domainerror.NewSnapshotError(
				domainerror.ErrCodeInvalidIncomeFrequency,
				"frequency must be one of: weekly, biweekly, monthly, annual",
				domainerror.ErrInvalidIncomeFrequency,
			)
		}
	}

	if input.Expenses != nil && input.Expenses.TotalAmount.IsNegative() {
		return domainerror.NewSnapshotError(
			domainerror.ErrCodeNegativeSnapshotAmount,
			"expense total must be non-negative",
			domainerror.ErrNegativeSnapshotAmount,
		)
	}

	for _, debt := range input.Debts {
		if !debt.Type.IsValid() {
			return domainerror.NewSnapshotError(
				domainerror.ErrCodeInvalidDebtType,
				"debt type must be one of: student_loan, credit_card, personal_loan, mortgage, car_loan, other",
				domainerror.ErrInvalidDebtType,
			)
		}
		if debt.Balance.IsNegative() || debt.MinPayment.IsNegative() {
			return domainerror.NewSnapshotError(
				domainerror.ErrCodeNegativeSnapshotAmount,
				"debt balance and minimum payment must be non-negative",
				domainerror.ErrNegativeSnapshotAmount,
			)
		}
		if debt.AnnualRate.IsNegative() || debt.AnnualRate.GreaterThan(maxAnnualRatePercent) {
			return domainerror.NewSnapshotError(
				domainerror.ErrCodeInvalidInterestRate,
				"annual interest rate must be between 0 and 100",
				domainerror.ErrInvalidInterestRate,
			)
		}
	}

	for _, savings := range input.Savings {
		if savings.Balance.IsNegative() {
			return domainerror.NewSnapshotError(
				domainerror.ErrCodeNegativeSnapshotAmount,
				"savings balance must be non-negative",
				domainerror.ErrNegativeSnapshotAmount,
			)
		}
	}

	return nil
}

func (uc *UpsertSnapshotUseCase) build(input UpsertSnapshotInput) *entity.Snapshot {
	now := uc.now().UTC()
	snapshot := &entity.Snapshot{}

	if input.Income != nil {
		snapshot.Income = &entity.Income{
			ID:          uuid.New(),
			UserID:      input.UserID,
			Amount:      input.Income.Amount,
			Frequency:   input.Income.Frequency,
			SourceLabel: input.Income.SourceLabel,
			CreatedAt:   now,
		}
	}

	if input.Expenses != nil {
		snapshot.Expenses = &entity.ExpenseEstimate{
			ID:          uuid.New(),
			UserID:      input.UserID,
			TotalAmount: input.Expenses.TotalAmount,
			CreatedAt:   now,
		}
	}

	for _, debt := range input.Debts {
		snapshot.Debts = append(snapshot.Debts, entity.Debt{
			ID:         uuid.New(),
			UserID:     input.UserID,
			Type:       debt.Type,
			Label:      debt.Label,
			Balance:    debt.Balance,
			AnnualRate: normalizeRate(debt.AnnualRate),
			MinPayment: debt.MinPayment,
			CreatedAt:  now,
		})
	}

	for _, savings := range input.Savings {
		snapshot.Savings = append(snapshot.Savings, entity.SavingsAccount{
			ID:        uuid.New(),
			UserID:    input.UserID,
			Label:     savings.Label,
			Balance:   savings.Balance,
			CreatedAt: now,
		})
	}

	return snapshot
}

// normalizeRate stores rates as fractions. Submissions above 1 are read
// as percentages, so both 18 and 0.18 end up as 0.18.
func normalizeRate(rate decimal.Decimal) decimal.Decimal {
	if rate.GreaterThan(decimal.NewFromInt(1)) {
		return rate.Div(maxAnnualRatePercent)
	}
	return rate
}
