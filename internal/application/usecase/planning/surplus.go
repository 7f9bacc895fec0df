package planning

import (
	"github.com/shopspring/decimal"

	"github.com/finance-coach/backend/internal/domain/entity"
)

// EstimateMonthlySurplus aggregates a snapshot into a single monthly
// surplus figure: monthly-equivalent income minus fixed monthly expenses
// minus the sum of debt minimum payments. The result may be negative; a
// negative surplus is a valid input to allocation, not an error. The
// result is rounded to cents so downstream arithmetic stays cent-exact.
func EstimateMonthlySurplus(snapshot *entity.Snapshot) decimal.Decimal {
	income := decimal.Zero
	if snapshot.Income != nil {
		income = snapshot.Income.MonthlyEquivalent()
	}

	expenses := decimal.Zero
	if snapshot.Expenses != nil {
		expenses = snapshot.Expenses.TotalAmount
	}

	return income.Sub(expenses).Sub(snapshot.MinimumPaymentsTotal()).Round(2)
}
