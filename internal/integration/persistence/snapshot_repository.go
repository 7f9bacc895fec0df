package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/finance-coach/backend/internal/application/adapter"
	"github.com/finance-coach/backend/internal/domain/entity"
	"github.com/finance-coach/backend/internal/integration/persistence/model"
)

// snapshotRepository implements the adapter.SnapshotRepository interface.
// The snapshot is spread across four tables and always replaced as a
// whole.
type snapshotRepository struct {
	db *gorm.DB
}

// NewSnapshotRepository creates a new snapshot repository instance.
func NewSnapshotRepository(db *gorm.DB) adapter.SnapshotRepository {
	return &snapshotRepository{
		db: db,
	}
}

// Get assembles the user's current snapshot. A user with no snapshot
// rows gets an empty snapshot.
func (r *snapshotRepository) Get(ctx context.Context, userID uuid.UUID) (*entity.Snapshot, error) {
	snapshot := &entity.Snapshot{}
	db := r.db.WithContext(ctx)

	var incomeModel model.IncomeModel
	result := db.Where("user_id = ?", userID).First(&incomeModel)
	if result.Error != nil {
		if !errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, result.Error
		}
	} else {
		snapshot.Income = incomeModel.ToEntity()
	}

	var expensesModel model.ExpenseEstimateModel
	result = db.Where("user_id = ?", userID).First(&expensesModel)
	if result.Error != nil {
		if !errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, result.Error
		}
	} else {
		snapshot.Expenses = expensesModel.ToEntity()
	}

	var debtModels []model.DebtModel
	if err := db.Where("user_id = ?", userID).Order("created_at ASC").Find(&debtModels).Error; err != nil {
		return nil, err
	}
	for i := range debtModels {
		snapshot.Debts = append(snapshot.Debts, debtModels[i].ToEntity())
	}

	var savingsModels []model.SavingsAccountModel
	if err := db.Where("user_id = ?", userID).Order("created_at ASC").Find(&savingsModels).Error; err != nil {
		return nil, err
	}
	for i := range savingsModels {
		snapshot.Savings = append(snapshot.Savings, savingsModels[i].ToEntity())
	}

	return snapshot, nil
}

// Replace atomically removes the user's existing snapshot rows and writes
// the given ones.
func (r *snapshotRepository) Replace(ctx context.Context, userID uuid.UUID, snapshot *entity.Snapshot) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, m := range []any{
			&model.IncomeModel{},
			&model.ExpenseEstimateModel{},
			&model.DebtModel{},
			&model.SavingsAccountModel{},
		} {
			if err := tx.Where("user_id = ?", userID).Delete(m).Error; err != nil {
				return err
			}
		}

		if snapshot.Income != nil {
			if err := tx.Create(model.IncomeFromEntity(snapshot.Income)).Error; err != nil {
				return err
			}
		}
		if snapshot.Expenses != nil {
			if err := tx.Create(model.ExpenseEstimateFromEntity(snapshot.Expenses)).Error; err != nil {
				return err
			}
		}
		for _, debt := range snapshot.Debts {
			if err := tx.Create(model.DebtFromEntity(debt)).Error; err != nil {
				return err
			}
		}
		for _, account := range snapshot.Savings {
			if err := tx.Create(model.SavingsAccountFromEntity(account)).Error; err != nil {
				return err
			}
		}

		return nil
	})
}
