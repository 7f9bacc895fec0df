package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// GoalType represents the kind of financial goal a user is working toward.
type GoalType string

const (
	GoalTypeDebtPayoff      GoalType = "debt_payoff"
	GoalTypeEmergencyFund   GoalType = "emergency_fund"
	GoalTypeShortTermSaving GoalType = "short_term_saving"
	GoalTypeFireStarter     GoalType = "fire_starter"
	GoalTypeCustom          GoalType = "custom"
)

// IsValid reports whether the goal type is one of the known values.
func (t GoalType) IsValid() bool {
	switch t {
	case GoalTypeDebtPayoff, GoalTypeEmergencyFund, GoalTypeShortTermSaving,
		GoalTypeFireStarter, GoalTypeCustom:
		return true
	}
	return false
}

// GoalPriority represents the user's priority for a goal.
// Priorities carry an explicit total order; do not compare the strings.
type GoalPriority string

const (
	GoalPriorityHigh   GoalPriority = "High"
	GoalPriorityMedium GoalPriority = "Medium"
	GoalPriorityLow    GoalPriority = "Low"
)

// Rank returns the allocation ordering for the priority: lower ranks are
// funded first. Unknown priorities sort last.
func (p GoalPriority) Rank() int {
	switch p {
	case GoalPriorityHigh:
		return 0
	case GoalPriorityMedium:
		return 1
	case GoalPriorityLow:
		return 2
	default:
		return 3
	}
}

// IsValid reports whether the priority is one of the known values.
func (p GoalPriority) IsValid() bool {
	return p == GoalPriorityHigh || p == GoalPriorityMedium || p == GoalPriorityLow
}

// GoalStatus represents the lifecycle state of a goal.
type GoalStatus string

const (
	GoalStatusActive    GoalStatus = "active"
	GoalStatusPaused    GoalStatus = "paused"
	GoalStatusCompleted GoalStatus = "completed"
	GoalStatusCancelled GoalStatus = "cancelled"
)

// IsTerminal reports whether the goal can no longer change state.
func (s GoalStatus) IsTerminal() bool {
	return s == GoalStatusCompleted || s == GoalStatusCancelled
}

// IsValid reports whether the status is one of the known values.
func (s GoalStatus) IsValid() bool {
	switch s {
	case GoalStatusActive, GoalStatusPaused, GoalStatusCompleted, GoalStatusCancelled:
		return true
	}
	return false
}

// MaxActiveGoals is the largest number of goals a user may have in the
// active state at the same time. Enforced at creation, not retroactively.
const MaxActiveGoals = 5

// Goal represents a financial goal in the Finance Coach system.
// CurrentBalance is derived from the latest GoalProgress record and is
// read-only from the goal's own point of view.
type Goal struct {
	ID             uuid.UUID
	UserID         uuid.UUID
	Type           GoalType
	Name           string
	TargetAmount   decimal.Decimal
	TargetDate     time.Time
	Priority       GoalPriority
	Status         GoalStatus
	CurrentBalance decimal.Decimal
	WhyText        string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// NewGoal creates a new active Goal entity.
func NewGoal(
	userID uuid.UUID,
	goalType GoalType,
	name string,
	targetAmount decimal.Decimal,
	targetDate time.Time,
	priority GoalPriority,
	whyText string,
) *Goal {
	now := time.Now().UTC()

	return &Goal{
		ID:             uuid.New(),
		UserID:         userID,
		Type:           goalType,
		Name:           name,
		TargetAmount:   targetAmount,
		TargetDate:     targetDate,
		Priority:       priority,
		Status:         GoalStatusActive,
		CurrentBalance: decimal.Zero,
		WhyText:        whyText,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
}

// RemainingAmount returns how much is still needed to reach the target,
// never negative.
func (g *Goal) RemainingAmount() decimal.Decimal {
	remaining := g.TargetAmount.Sub(g.CurrentBalance)
	if remaining.IsNegative() {
		return decimal.Zero
	}
	return remaining
}

// IsReached reports whether the current balance has met the target.
func (g *Goal) IsReached() bool {
	return g.CurrentBalance.GreaterThanOrEqual(g.TargetAmount)
}
