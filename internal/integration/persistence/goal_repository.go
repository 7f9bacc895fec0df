package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/finance-coach/backend/internal/application/adapter"
	"github.com/finance-coach/backend/internal/domain/entity"
	domainerror "github.com/finance-coach/backend/internal/domain/error"
	"github.com/finance-coach/backend/internal/integration/persistence/model"
)

// goalRepository implements the adapter.GoalRepository interface. Every
// goal it returns carries CurrentBalance resolved from the newest
// goal_progress row.
type goalRepository struct {
	db *gorm.DB
}

// NewGoalRepository creates a new goal repository instance.
func NewGoalRepository(db *gorm.DB) adapter.GoalRepository {
	return &goalRepository{
		db: db,
	}
}

// Create creates a new goal in the database.
func (r *goalRepository) Create(ctx context.Context, goal *entity.Goal) error {
	goalModel := model.GoalFromEntity(goal)
	result := r.db.WithContext(ctx).Create(goalModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// FindByID retrieves a goal by its ID.
func (r *goalRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Goal, error) {
	var goalModel model.GoalModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&goalModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.NewGoalError(
				domainerror.ErrCodeGoalNotFound,
				"goal not found",
				domainerror.ErrGoalNotFound,
			)
		}
		return nil, result.Error
	}

	goal := goalModel.ToEntity()
	balances, err := r.latestBalances(ctx, []uuid.UUID{goal.ID})
	if err != nil {
		return nil, err
	}
	if balance, ok := balances[goal.ID]; ok {
		goal.CurrentBalance = balance
	}
	return goal, nil
}

// FindByUserID retrieves all goals for a given user, newest first.
func (r *goalRepository) FindByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.Goal, error) {
	return r.findGoals(ctx, r.db.WithContext(ctx).Where("user_id = ?", userID))
}

// FindActiveByUserID retrieves the user's active goals, newest first.
func (r *goalRepository) FindActiveByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.Goal, error) {
	return r.findGoals(ctx, r.db.WithContext(ctx).
		Where("user_id = ? AND status = ?", userID, string(entity.GoalStatusActive)))
}

// CountActiveByUserID counts the user's active goals.
func (r *goalRepository) CountActiveByUserID(ctx context.Context, userID uuid.UUID) (int64, error) {
	var count int64
	result := r.db.WithContext(ctx).
		Model(&model.GoalModel{}).
		Where("user_id = ? AND status = ?", userID, string(entity.GoalStatusActive)).
		Count(&count)
	if result.Error != nil {
		return 0, result.Error
	}
	return count, nil
}

// Update updates an existing goal in the database.
func (r *goalRepository) Update(ctx context.Context, goal *entity.Goal) error {
	goalModel := model.GoalFromEntity(goal)
	result := r.db.WithContext(ctx).Save(goalModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

func (r *goalRepository) findGoals(ctx context.Context, query *gorm.DB) ([]*entity.Goal, error) {
	var goalModels []model.GoalModel
	result := query.Order("created_at DESC").Find(&goalModels)
	if result.Error != nil {
		return nil, result.Error
	}
	if len(goalModels) == 0 {
		return nil, nil
	}

	ids := make([]uuid.UUID, 0, len(goalModels))
	for _, m := range goalModels {
		ids = append(ids, m.ID)
	}
	balances, err := r.latestBalances(ctx, ids)
	if err != nil {
		return nil, err
	}

	goals := make([]*entity.Goal, 0, len(goalModels))
	for i := range goalModels {
		goal := goalModels[i].ToEntity()
		if balance, ok := balances[goal.ID]; ok {
			goal.CurrentBalance = balance
		}
		goals = append(goals, goal)
	}
	return goals, nil
}

// latestBalances resolves the newest recorded balance for each goal.
// Rows come back newest first, so the first row seen per goal wins.
func (r *goalRepository) latestBalances(ctx context.Context, goalIDs []uuid.UUID) (map[uuid.UUID]decimal.Decimal, error) {
	var progressModels []model.GoalProgressModel
	result := r.db.WithContext(ctx).
		Where("goal_id IN ?", goalIDs).
		Order("recorded_at DESC").
		Find(&progressModels)
	if result.Error != nil {
		return nil, result.Error
	}

	balances := make(map[uuid.UUID]decimal.Decimal, len(goalIDs))
	for _, m := range progressModels {
		if _, seen := balances[m.GoalID]; !seen {
			balances[m.GoalID] = m.CurrentBalance
		}
	}
	return balances, nil
}
