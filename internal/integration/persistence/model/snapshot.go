package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finance-coach/backend/internal/domain/entity"
)

// IncomeModel represents the incomes table in the database. Each user
// has at most one row; snapshot replacement rewrites it.
type IncomeModel struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey"`
	UserID      uuid.UUID       `gorm:"type:uuid;not null;index"`
	Amount      decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	Frequency   string          `gorm:"type:varchar(10);not null"`
	SourceLabel string          `gorm:"type:varchar(255)"`
	CreatedAt   time.Time       `gorm:"not null"`
}

// TableName returns the table name for the IncomeModel.
func (IncomeModel) TableName() string {
	return "incomes"
}

// ToEntity converts an IncomeModel to a domain Income entity.
func (m *IncomeModel) ToEntity() *entity.Income {
	return &entity.Income{
		ID:          m.ID,
		UserID:      m.UserID,
		Amount:      m.Amount,
		Frequency:   entity.IncomeFrequency(m.Frequency),
		SourceLabel: m.SourceLabel,
		CreatedAt:   m.CreatedAt,
	}
}

// IncomeFromEntity creates an IncomeModel from a domain Income entity.
func IncomeFromEntity(income *entity.Income) *IncomeModel {
	return &IncomeModel{
		ID:          income.ID,
		UserID:      income.UserID,
		Amount:      income.Amount,
		Frequency:   string(income.Frequency),
		SourceLabel: income.SourceLabel,
		CreatedAt:   income.CreatedAt,
	}
}

// ExpenseEstimateModel represents the expense_estimates table in the database.
type ExpenseEstimateModel struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey"`
	UserID      uuid.UUID       `gorm:"type:uuid;not null;index"`
	TotalAmount decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	CreatedAt   time.Time       `gorm:"not null"`
}

// TableName returns the table name for the ExpenseEstimateModel.
func (ExpenseEstimateModel) TableName() string {
	return "expense_estimates"
}

// ToEntity converts an ExpenseEstimateModel to a domain ExpenseEstimate entity.
func (m *ExpenseEstimateModel) ToEntity() *entity.ExpenseEstimate {
	return &entity.ExpenseEstimate{
		ID:          m.ID,
		UserID:      m.UserID,
		TotalAmount: m.TotalAmount,
		CreatedAt:   m.CreatedAt,
	}
}

// ExpenseEstimateFromEntity creates an ExpenseEstimateModel from a domain entity.
func ExpenseEstimateFromEntity(expenses *entity.ExpenseEstimate) *ExpenseEstimateModel {
	return &ExpenseEstimateModel{
		ID:          expenses.ID,
		UserID:      expenses.UserID,
		TotalAmount: expenses.TotalAmount,
		CreatedAt:   expenses.CreatedAt,
	}
}

// DebtModel represents the debts table in the database. AnnualRate is
// stored as a fraction, matching the entity.
type DebtModel struct {
	ID         uuid.UUID       `gorm:"type:uuid;primaryKey"`
	UserID     uuid.UUID       `gorm:"type:uuid;not null;index"`
	Type       string          `gorm:"type:varchar(20);not null"`
	Label      string          `gorm:"type:varchar(255)"`
	Balance    decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	AnnualRate decimal.Decimal `gorm:"type:decimal(7,6);not null"`
	MinPayment decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	CreatedAt  time.Time       `gorm:"not null"`
}

// TableName returns the table name for the DebtModel.
func (DebtModel) TableName() string {
	return "debts"
}

// ToEntity converts a DebtModel to a domain Debt entity.
func (m *DebtModel) ToEntity() entity.Debt {
	return entity.Debt{
		ID:         m.ID,
		UserID:     m.UserID,
		Type:       entity.DebtType(m.Type),
		Label:      m.Label,
		Balance:    m.Balance,
		AnnualRate: m.AnnualRate,
		MinPayment: m.MinPayment,
		CreatedAt:  m.CreatedAt,
	}
}

// DebtFromEntity creates a DebtModel from a domain Debt entity.
func DebtFromEntity(debt entity.Debt) *DebtModel {
	return &DebtModel{
		ID:         debt.ID,
		UserID:     debt.UserID,
		Type:       string(debt.Type),
		Label:      debt.Label,
		Balance:    debt.Balance,
		AnnualRate: debt.AnnualRate,
		MinPayment: debt.MinPayment,
		CreatedAt:  debt.CreatedAt,
	}
}

// SavingsAccountModel represents the savings_accounts table in the database.
type SavingsAccountModel struct {
	ID        uuid.UUID       `gorm:"type:uuid;primaryKey"`
	UserID    uuid.UUID       `gorm:"type:uuid;not null;index"`
	Label     string          `gorm:"type:varchar(255)"`
	Balance   decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	CreatedAt time.Time       `gorm:"not null"`
}

// TableName returns the table name for the SavingsAccountModel.
func (SavingsAccountModel) TableName() string {
	return "savings_accounts"
}

// ToEntity converts a SavingsAccountModel to a domain SavingsAccount entity.
func (m *SavingsAccountModel) ToEntity() entity.SavingsAccount {
	return entity.SavingsAccount{
		ID:        m.ID,
		UserID:    m.UserID,
		Label:     m.Label,
		Balance:   m.Balance,
		CreatedAt: m.CreatedAt,
	}
}

// SavingsAccountFromEntity creates a SavingsAccountModel from a domain entity.
func SavingsAccountFromEntity(account entity.SavingsAccount) *SavingsAccountModel {
	return &SavingsAccountModel{
		ID:        account.ID,
		UserID:    account.UserID,
		Label:     account.Label,
		Balance:   account.Balance,
		CreatedAt: account.CreatedAt,
	}
}
