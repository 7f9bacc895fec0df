package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ProgressSource identifies how a progress point was recorded.
type ProgressSource string

const (
	ProgressSourceManual  ProgressSource = "manual"
	ProgressSourceCheckin ProgressSource = "checkin"
)

// IsValid reports whether the source is one of the known values.
func (s ProgressSource) IsValid() bool {
	return s == ProgressSourceManual || s == ProgressSourceCheckin
}

// GoalProgress records a goal's balance at a point in time. The goal's
// current balance is the most recently recorded point.
type GoalProgress struct {
	ID             uuid.UUID
	UserID         uuid.UUID
	GoalID         uuid.UUID
	CurrentBalance decimal.Decimal
	Source         ProgressSource
	Note           string
	RecordedAt     time.Time
}

// NewGoalProgress creates a new GoalProgress entity.
func NewGoalProgress(userID, goalID uuid.UUID, balance decimal.Decimal, source ProgressSource, note string) *GoalProgress {
	return &GoalProgress{
		ID:             uuid.New(),
		UserID:         userID,
		GoalID:         goalID,
		CurrentBalance: balance,
		Source:         source,
		Note:           note,
		RecordedAt:     time.Now().UTC(),
	}
}
