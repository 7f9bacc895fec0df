package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// IncomeFrequency represents how often a reported income amount arrives.
type IncomeFrequency string

const (
	IncomeFrequencyWeekly   IncomeFrequency = "weekly"
	IncomeFrequencyBiweekly IncomeFrequency = "biweekly"
	IncomeFrequencyMonthly  IncomeFrequency = "monthly"
	IncomeFrequencyAnnual   IncomeFrequency = "annual"
)

// IsValid reports whether the frequency is one of the known values.
func (f IncomeFrequency) IsValid() bool {
	switch f {
	case IncomeFrequencyWeekly, IncomeFrequencyBiweekly, IncomeFrequencyMonthly, IncomeFrequencyAnnual:
		return true
	}
	return false
}

// DebtType categorizes a debt record.
type DebtType string

const (
	DebtTypeStudentLoan  DebtType = "student_loan"
	DebtTypeCreditCard   DebtType = "credit_card"
	DebtTypePersonalLoan DebtType = "personal_loan"
	DebtTypeMortgage     DebtType = "mortgage"
	DebtTypeCarLoan      DebtType = "car_loan"
	DebtTypeOther        DebtType = "other"
)

// IsValid reports whether the debt type is one of the known values.
func (t DebtType) IsValid() bool {
	switch t {
	case DebtTypeStudentLoan, DebtTypeCreditCard, DebtTypePersonalLoan,
		DebtTypeMortgage, DebtTypeCarLoan, DebtTypeOther:
		return true
	}
	return false
}

// Income is the user's reported income at its native pay frequency.
type Income struct {
	ID          uuid.UUID
	UserID      uuid.UUID
	Amount      decimal.Decimal
	Frequency   IncomeFrequency
	SourceLabel string
	CreatedAt   time.Time
}

// MonthlyEquivalent normalizes the income amount to a monthly figure.
func (i *Income) MonthlyEquivalent() decimal.Decimal {
	switch i.Frequency {
	case IncomeFrequencyWeekly:
		return i.Amount.Mul(decimal.NewFromInt(52)).Div(decimal.NewFromInt(12))
	case IncomeFrequencyBiweekly:
		return i.Amount.Mul(decimal.NewFromInt(26)).Div(decimal.NewFromInt(12))
	case IncomeFrequencyAnnual:
		return i.Amount.Div(decimal.NewFromInt(12))
	default:
		return i.Amount
	}
}

// ExpenseEstimate is the user's reported fixed monthly expenses.
type ExpenseEstimate struct {
	ID          uuid.UUID
	UserID      uuid.UUID
	TotalAmount decimal.Decimal
	CreatedAt   time.Time
}

// Debt is a single debt record within the snapshot.
// AnnualRate is stored as a decimal fraction (0.18 for 18%).
type Debt struct {
	ID         uuid.UUID
	UserID     uuid.UUID
	Type       DebtType
	Label      string
	Balance    decimal.Decimal
	AnnualRate decimal.Decimal
	MinPayment decimal.Decimal
	CreatedAt  time.Time
}

// SavingsAccount is a single savings balance within the snapshot.
type SavingsAccount struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	Label     string
	Balance   decimal.Decimal
	CreatedAt time.Time
}

// Snapshot is a user's current financial picture. A snapshot may be
// partial; the planning engine treats one with neither income nor an
// expense estimate as absent.
type Snapshot struct {
	Income   *Income
	Expenses *ExpenseEstimate
	Debts    []Debt
	Savings  []SavingsAccount
}

// HasCashFlowData reports whether the snapshot carries enough information
// to estimate a monthly surplus.
func (s *Snapshot) HasCashFlowData() bool {
	return s != nil && (s.Income != nil || s.Expenses != nil)
}

// SavingsTotal sums all savings account balances.
func (s *Snapshot) SavingsTotal() decimal.Decimal {
	total := decimal.Zero
	for _, acct := range s.Savings {
		total = total.Add(acct.Balance)
	}
	return total
}

// MinimumPaymentsTotal sums the minimum payments across all debts.
func (s *Snapshot) MinimumPaymentsTotal() decimal.Decimal {
	total := decimal.Zero
	for _, d := range s.Debts {
		total = total.Add(d.MinPayment)
	}
	return total
}
