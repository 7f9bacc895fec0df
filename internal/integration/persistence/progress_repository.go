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

// progressRepository implements the adapter.ProgressRepository interface.
type progressRepository struct {
	db *gorm.DB
}

// NewProgressRepository creates a new goal progress repository instance.
func NewProgressRepository(db *gorm.DB) adapter.ProgressRepository {
	return &progressRepository{
		db: db,
	}
}

// Create appends a new progress record.
func (r *progressRepository) Create(ctx context.Context, progress *entity.GoalProgress) error {
	progressModel := model.GoalProgressFromEntity(progress)
	result := r.db.WithContext(ctx).Create(progressModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// FindByGoalID retrieves progress records for a goal, newest first.
func (r *progressRepository) FindByGoalID(ctx context.Context, goalID uuid.UUID) ([]*entity.GoalProgress, error) {
	var progressModels []model.GoalProgressModel
	result := r.db.WithContext(ctx).
		Where("goal_id = ?", goalID).
		Order("recorded_at DESC").
		Find(&progressModels)
	if result.Error != nil {
		return nil, result.Error
	}

	records := make([]*entity.GoalProgress, 0, len(progressModels))
	for i := range progressModels {
		records = append(records, progressModels[i].ToEntity())
	}
	return records, nil
}

// FindLatestByGoalID retrieves the most recent progress record for a goal,
// or nil when none exists.
func (r *progressRepository) FindLatestByGoalID(ctx context.Context, goalID uuid.UUID) (*entity.GoalProgress, error) {
	var progressModel model.GoalProgressModel
	result := r.db.WithContext(ctx).
		Where("goal_id = ?", goalID).
		Order("recorded_at DESC").
		First(&progressModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return progressModel.ToEntity(), nil
}
