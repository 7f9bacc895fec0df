package snapshot

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finance-coach/backend/internal/domain/entity"
	domainerror "github.com/finance-coach/backend/internal/domain/error"
)

// fakeSnapshotRepo is an in-memory SnapshotRepository for use case tests.
type fakeSnapshotRepo struct {
	snapshots  map[uuid.UUID]*entity.Snapshot
	replaceErr error
}

func newFakeSnapshotRepo() *fakeSnapshotRepo {
	return &fakeSnapshotRepo{snapshots: make(map[uuid.UUID]*entity.Snapshot)}
}

func (r *fakeSnapshotRepo) Get(_ context.Context, userID uuid.UUID) (*entity.Snapshot, error) {
	if snapshot, ok := r.snapshots[userID]; ok {
		return snapshot, nil
	}
	return &entity.Snapshot{}, nil
}

func (r *fakeSnapshotRepo) Replace(_ context.Context, userID uuid.UUID, snapshot *entity.Snapshot) error {
	if r.replaceErr != nil {
		return r.replaceErr
	}
	r.snapshots[userID] = snapshot
	return nil
}

func assertSnapshotErrorCode(t *testing.T, err error, want domainerror.SnapshotErrorCode) {
	t.Helper()
	var snapErr *domainerror.SnapshotError
	if !errors.As(err, &snapErr) {
		t.Fatalf("expected SnapshotError, got %v", err)
	}
	if snapErr.Code != want {
		t.Errorf("expected code %s, got %s", want, snapErr.Code)
	}
}

func TestUpsertSnapshot(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	fullInput := func() UpsertSnapshotInput {
		return UpsertSnapshotInput{
			UserID: userID,
			Income: &IncomeInput{
				Amount:      decimal.NewFromInt(2500),
				Frequency:   entity.IncomeFrequencyBiweekly,
				SourceLabel: "salary",
			},
			Expenses: &ExpensesInput{TotalAmount: decimal.NewFromInt(3200)},
			Debts: []DebtInput{
				{
					Type:       entity.DebtTypeCreditCard,
					Label:      "visa",
					Balance:    decimal.NewFromInt(1800),
					AnnualRate: decimal.NewFromInt(24),
					MinPayment: decimal.NewFromInt(55),
				},
			},
			Savings: []SavingsInput{
				{Label: "checking buffer", Balance: decimal.NewFromInt(900)},
			},
		}
	}

	t.Run("replaces the snapshot wholesale", func(t *testing.T) {
		repo := newFakeSnapshotRepo()
		uc := NewUpsertSnapshotUseCase(repo)

		output, err := uc.Execute(ctx, fullInput())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if output.Snapshot.Income == nil || output.Snapshot.Expenses == nil {
			t.Fatal("expected income and expenses to be present")
		}
		if len(output.Snapshot.Debts) != 1 || len(output.Snapshot.Savings) != 1 {
			t.Fatalf("expected 1 debt and 1 savings account, got %d and %d",
				len(output.Snapshot.Debts), len(output.Snapshot.Savings))
		}

		// Submitting again drops the old debt rather than appending.
		second := fullInput()
		second.Debts = nil
		output, err = uc.Execute(ctx, second)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(output.Snapshot.Debts) != 0 {
			t.Errorf("expected debts to be replaced, got %d", len(output.Snapshot.Debts))
		}
		stored := repo.snapshots[userID]
		if len(stored.Debts) != 0 {
			t.Errorf("expected stored debts to be replaced, got %d", len(stored.Debts))
		}
	})

	t.Run("normalizes percentage rates to fractions", func(t *testing.T) {
		uc := NewUpsertSnapshotUseCase(newFakeSnapshotRepo())

		output, err := uc.Execute(ctx, fullInput())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		want := decimal.NewFromFloat(0.24)
		if !output.Snapshot.Debts[0].AnnualRate.Equal(want) {
			t.Errorf("expected rate %s, got %s", want, output.Snapshot.Debts[0].AnnualRate)
		}
	})

	t.Run("keeps fractional rates as submitted", func(t *testing.T) {
		uc := NewUpsertSnapshotUseCase(newFakeSnapshotRepo())
		input := fullInput()
		input.Debts[0].AnnualRate = decimal.NewFromFloat(0.24)

		output, err := uc.Execute(ctx, input)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !output.Snapshot.Debts[0].AnnualRate.Equal(decimal.NewFromFloat(0.24)) {
			t.Errorf("expected rate 0.24, got %s", output.Snapshot.Debts[0].AnnualRate)
		}
	})

	t.Run("accepts a partial snapshot", func(t *testing.T) {
		uc := NewUpsertSnapshotUseCase(newFakeSnapshotRepo())

		output, err := uc.Execute(ctx, UpsertSnapshotInput{
			UserID:   userID,
			Expenses: &ExpensesInput{TotalAmount: decimal.NewFromInt(2000)},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if output.Snapshot.Income != nil {
			t.Error("expected no income")
		}
		if !output.Snapshot.HasCashFlowData() {
			t.Error("expected expense-only snapshot to count as cash flow data")
		}
	})

	t.Run("rejects negative income", func(t *testing.T) {
		uc := NewUpsertSnapshotUseCase(newFakeSnapshotRepo())
		input := fullInput()
		input.Income.Amount = decimal.NewFromInt(-1)

		_, err := uc.Execute(ctx, input)
		assertSnapshotErrorCode(t, err, domainerror.ErrCodeNegativeSnapshotAmount)
	})

	t.Run("rejects unknown income frequency", func(t *testing.T) {
		uc := NewUpsertSnapshotUseCase(newFakeSnapshotRepo())
		input := fullInput()
		input.Income.Frequency = "daily"

		_, err := uc.Execute(ctx, input)
		assertSnapshotErrorCode(t, err, domainerror.ErrCodeInvalidIncomeFrequency)
	})

	t.Run("rejects unknown debt type", func(t *testing.T) {
		uc := NewUpsertSnapshotUseCase(newFakeSnapshotRepo())
		input := fullInput()
		input.Debts[0].Type = "payday"

		_, err := uc.Execute(ctx, input)
		assertSnapshotErrorCode(t, err, domainerror.ErrCodeInvalidDebtType)
	})

	t.Run("rejects rate above 100", func(t *testing.T) {
		uc := NewUpsertSnapshotUseCase(newFakeSnapshotRepo())
		input := fullInput()
		input.Debts[0].AnnualRate = decimal.NewFromInt(150)

		_, err := uc.Execute(ctx, input)
		assertSnapshotErrorCode(t, err, domainerror.ErrCodeInvalidInterestRate)
	})

	t.Run("rejects negative savings balance", func(t *testing.T) {
		uc := NewUpsertSnapshotUseCase(newFakeSnapshotRepo())
		input := fullInput()
		input.Savings[0].Balance = decimal.NewFromInt(-500)

		_, err := uc.Execute(ctx, input)
		assertSnapshotErrorCode(t, err, domainerror.ErrCodeNegativeSnapshotAmount)
	})

	t.Run("wraps storage failures", func(t *testing.T) {
		repo := newFakeSnapshotRepo()
		repo.replaceErr = errors.New("connection reset")
		uc := NewUpsertSnapshotUseCase(repo)

		_, err := uc.Execute(ctx, fullInput())
		assertSnapshotErrorCode(t, err, domainerror.ErrCodeSnapshotSaveFailed)
	})
}

func TestGetSnapshot(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	t.Run("returns empty snapshot for new user", func(t *testing.T) {
		uc := NewGetSnapshotUseCase(newFakeSnapshotRepo())

		output, err := uc.Execute(ctx, GetSnapshotInput{UserID: userID})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if output.Snapshot == nil {
			t.Fatal("expected non-nil snapshot")
		}
		if output.Snapshot.HasCashFlowData() {
			t.Error("expected empty snapshot to report no cash flow data")
		}
	})

	t.Run("returns stored snapshot", func(t *testing.T) {
		repo := newFakeSnapshotRepo()
		upsert := NewUpsertSnapshotUseCase(repo)
		if _, err := upsert.Execute(ctx, UpsertSnapshotInput{
			UserID: userID,
			Income: &IncomeInput{Amount: decimal.NewFromInt(5000), Frequency: entity.IncomeFrequencyMonthly},
		}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		output, err := NewGetSnapshotUseCase(repo).Execute(ctx, GetSnapshotInput{UserID: userID})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if output.Snapshot.Income == nil {
			t.Fatal("expected income to be present")
		}
		if !output.Snapshot.Income.Amount.Equal(decimal.NewFromInt(5000)) {
			t.Errorf("expected amount 5000, got %s", output.Snapshot.Income.Amount)
		}
	})
}
