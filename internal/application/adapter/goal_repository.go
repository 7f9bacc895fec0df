package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/finance-coach/backend/internal/domain/entity"
)

// GoalRepository defines the interface for goal persistence operations.
// Goals returned by Find methods carry CurrentBalance resolved from the
// latest progress record.
type GoalRepository interface {
	// Create creates a new goal in the database.
	Create(ctx context.Context, goal *entity.Goal) error

	// FindByID retrieves a goal by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Goal, error)

	// FindByUserID retrieves all goals for a given user, newest first.
	FindByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.Goal, error)

	// FindActiveByUserID retrieves the user's active goals.
	FindActiveByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.Goal, error)

	// CountActiveByUserID counts the user's active goals.
	CountActiveByUserID(ctx context.Context, userID uuid.UUID) (int64, error)

	// Update updates an existing goal in the database.
	Update(ctx context.Context, goal *entity.Goal) error
}

// ProgressRepository defines the interface for goal progress persistence.
type ProgressRepository interface {
	// Create appends a new progress record.
	Create(ctx context.Context, progress *entity.GoalProgress) error

	// FindByGoalID retrieves progress records for a goal, newest first.
	FindByGoalID(ctx context.Context, goalID uuid.UUID) ([]*entity.GoalProgress, error)

	// FindLatestByGoalID retrieves the most recent progress record for a
	// goal, or nil when none exists.
	FindLatestByGoalID(ctx context.Context, goalID uuid.UUID) (*entity.GoalProgress, error)
}
