package entity

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Feasibility labels how realistic a goal's required contribution is given
// the user's surplus and goal priorities.
type Feasibility string

const (
	FeasibilityComfortable Feasibility = "Comfortable"
	FeasibilityTight       Feasibility = "Tight"
	FeasibilityUnrealistic Feasibility = "Unrealistic"
)

// PlannedGoal is the per-goal outcome of a plan computation.
type PlannedGoal struct {
	GoalID               uuid.UUID
	Name                 string
	Type                 GoalType
	RequiredContribution decimal.Decimal
	AllocatedAmount      decimal.Decimal
	Feasibility          Feasibility
	Explanation          string
}

// PlanSummary aggregates a plan across all goals.
// When the surplus is non-negative, AllocatedToGoals + BufferRemaining
// equals EstimatedMonthlySurplus exactly.
type PlanSummary struct {
	EstimatedMonthlySurplus decimal.Decimal
	AllocatedToGoals        decimal.Decimal
	BufferRemaining         decimal.Decimal
}

// PlanResult is the full result of one plan computation. It is ephemeral:
// recomputed on demand, never persisted.
type PlanResult struct {
	Goals   []PlannedGoal
	Summary PlanSummary
}
