package entity

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestIncomeMonthlyEquivalent(t *testing.T) {
	tests := []struct {
		name      string
		amount    string
		frequency IncomeFrequency
		want      string
	}{
		{"monthly passes through", "3000", IncomeFrequencyMonthly, "3000"},
		{"weekly times 52 over 12", "600", IncomeFrequencyWeekly, "2600"},
		{"biweekly times 26 over 12", "1200", IncomeFrequencyBiweekly, "2600"},
		{"annual over 12", "36000", IncomeFrequencyAnnual, "3000"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			income := Income{
				Amount:    decimal.RequireFromString(tt.amount),
				Frequency: tt.frequency,
			}
			want := decimal.RequireFromString(tt.want)
			if got := income.MonthlyEquivalent(); !got.Equal(want) {
				t.Errorf("MonthlyEquivalent() = %s, want %s", got, want)
			}
		})
	}
}

func TestSnapshotHasCashFlowData(t *testing.T) {
	t.Run("nil snapshot has none", func(t *testing.T) {
		var s *Snapshot
		if s.HasCashFlowData() {
			t.Error("expected nil snapshot to report no cash flow data")
		}
	})

	t.Run("empty snapshot has none", func(t *testing.T) {
		if (&Snapshot{}).HasCashFlowData() {
			t.Error("expected empty snapshot to report no cash flow data")
		}
	})

	t.Run("income alone is enough", func(t *testing.T) {
		s := &Snapshot{Income: &Income{Amount: decimal.NewFromInt(100), Frequency: IncomeFrequencyMonthly}}
		if !s.HasCashFlowData() {
			t.Error("expected snapshot with income to report cash flow data")
		}
	})
}

func TestSnapshotTotals(t *testing.T) {
	s := &Snapshot{
		Debts: []Debt{
			{MinPayment: decimal.NewFromInt(50)},
			{MinPayment: decimal.NewFromInt(75)},
		},
		Savings: []SavingsAccount{
			{Balance: decimal.NewFromInt(1000)},
			{Balance: decimal.NewFromFloat(250.50)},
		},
	}

	if got := s.MinimumPaymentsTotal(); !got.Equal(decimal.NewFromInt(125)) {
		t.Errorf("MinimumPaymentsTotal() = %s, want 125", got)
	}
	if got := s.SavingsTotal(); !got.Equal(decimal.NewFromFloat(1250.50)) {
		t.Errorf("SavingsTotal() = %s, want 1250.50", got)
	}
}

func TestGoalRemainingAmount(t *testing.T) {
	goal := Goal{
		TargetAmount:   decimal.NewFromInt(1000),
		CurrentBalance: decimal.NewFromInt(1300),
	}
	if got := goal.RemainingAmount(); !got.IsZero() {
		t.Errorf("expected overfunded goal to have zero remaining, got %s", got)
	}
	if !goal.IsReached() {
		t.Error("expected overfunded goal to be reached")
	}
}

func TestGoalPriorityRank(t *testing.T) {
	if !(GoalPriorityHigh.Rank() < GoalPriorityMedium.Rank() &&
		GoalPriorityMedium.Rank() < GoalPriorityLow.Rank()) {
		t.Error("expected High < Medium < Low in rank order")
	}
}
