package dto

import (
	"github.com/finance-coach/backend/internal/domain/entity"
)

// SnapshotIncomeRequest represents the income section of a snapshot submission.
type SnapshotIncomeRequest struct {
	Amount      float64 `json:"amount" binding:"min=0"`
	Frequency   string  `json:"frequency" binding:"required,oneof=weekly biweekly monthly annual"`
	SourceLabel string  `json:"source_label,omitempty"`
}

// SnapshotExpensesRequest represents the fixed expense section of a snapshot submission.
type SnapshotExpensesRequest struct {
	TotalAmount float64 `json:"total_amount" binding:"min=0"`
}

// SnapshotDebtRequest represents one debt in a snapshot submission.
// AnnualRate accepts a percentage (18) or a fraction (0.18).
type SnapshotDebtRequest struct {
	Type       string  `json:"type" binding:"required,oneof=student_loan credit_card personal_loan mortgage car_loan other"`
	Label      string  `json:"label,omitempty"`
	Balance    float64 `json:"balance" binding:"min=0"`
	AnnualRate float64 `json:"annual_rate" binding:"min=0,max=100"`
	MinPayment float64 `json:"min_payment" binding:"min=0"`
}

// SnapshotSavingsRequest represents one savings account in a snapshot submission.
type SnapshotSavingsRequest struct {
	Label   string  `json:"label,omitempty"`
	Balance float64 `json:"balance" binding:"min=0"`
}

// UpsertSnapshotRequest represents the request body for snapshot replacement.
type UpsertSnapshotRequest struct {
	Income   *SnapshotIncomeRequest   `json:"income,omitempty"`
	Expenses *SnapshotExpensesRequest `json:"expenses,omitempty"`
	Debts    []SnapshotDebtRequest    `json:"debts,omitempty"`
	Savings  []SnapshotSavingsRequest `json:"savings,omitempty"`
}

// SnapshotIncomeResponse represents the income section in API responses.
type SnapshotIncomeResponse struct {
	Amount            string `json:"amount"`
	Frequency         string `json:"frequency"`
	MonthlyEquivalent string `json:"monthly_equivalent"`
	SourceLabel       string `json:"source_label,omitempty"`
}

// SnapshotExpensesResponse represents the expense section in API responses.
type SnapshotExpensesResponse struct {
	TotalAmount string `json:"total_amount"`
}

// SnapshotDebtResponse represents one debt in API responses. AnnualRate
// is a fraction.
type SnapshotDebtResponse struct {
	ID         string `json:"id"`
	Type       string `json:"type"`
	Label      string `json:"label,omitempty"`
	Balance    string `json:"balance"`
	AnnualRate string `json:"annual_rate"`
	MinPayment string `json:"min_payment"`
}

// SnapshotSavingsResponse represents one savings account in API responses.
type SnapshotSavingsResponse struct {
	ID      string `json:"id"`
	Label   string `json:"label,omitempty"`
	Balance string `json:"balance"`
}

// SnapshotResponse represents the full snapshot in API responses.
type SnapshotResponse struct {
	Income   *SnapshotIncomeResponse   `json:"income"`
	Expenses *SnapshotExpensesResponse `json:"expenses"`
	Debts    []SnapshotDebtResponse    `json:"debts"`
	Savings  []SnapshotSavingsResponse `json:"savings"`
}

// ToSnapshotResponse converts a domain Snapshot entity to a SnapshotResponse DTO.
func ToSnapshotResponse(s *entity.Snapshot) SnapshotResponse {
	response := SnapshotResponse{
		Debts:   make([]SnapshotDebtResponse, 0, len(s.Debts)),
		Savings: make([]SnapshotSavingsResponse, 0, len(s.Savings)),
	}

	if s.Income != nil {
		response.Income = &SnapshotIncomeResponse{
			Amount:            s.Income.Amount.StringFixed(2),
			Frequency:         string(s.Income.Frequency),
			MonthlyEquivalent: s.Income.MonthlyEquivalent().Round(2).StringFixed(2),
			SourceLabel:       s.Income.SourceLabel,
		}
	}
	if s.Expenses != nil {
		response.Expenses = &SnapshotExpensesResponse{
			TotalAmount: s.Expenses.TotalAmount.StringFixed(2),
		}
	}
	for _, debt := range s.Debts {
		response.Debts = append(response.Debts, SnapshotDebtResponse{
			ID:         debt.ID.String(),
			Type:       string(debt.Type),
			Label:      debt.Label,
			Balance:    debt.Balance.StringFixed(2),
			AnnualRate: debt.AnnualRate.String(),
			MinPayment: debt.MinPayment.StringFixed(2),
		})
	}
	for _, account := range s.Savings {
		response.Savings = append(response.Savings, SnapshotSavingsResponse{
			ID:      account.ID.String(),
			Label:   account.Label,
			Balance: account.Balance.StringFixed(2),
		})
	}

	return response
}
