// Package planning implements the goal planning and feasibility engine.
//
// The engine is a pure, deterministic computation: a financial snapshot
// plus a set of prioritized goals in, a funding plan out. Identical inputs
// always produce identical plans. All storage access happens in the
// ComputePlanUseCase; the engine itself never touches I/O.
package planning

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/finance-coach/backend/internal/domain/entity"
)

// DefaultTightHeadroom is the monthly buffer below which a fully funded
// goal is labeled Tight instead of Comfortable. The product has only
// confirmed this threshold qualitatively; treat it as tunable.
const DefaultTightHeadroom = 100

// daysPerMonth is the fixed month length used to turn a date distance into
// a number of contribution months.
const daysPerMonth = 30

// Engine computes funding plans. Safe for concurrent use: it holds only
// configuration, never per-computation state.
type Engine struct {
	tightHeadroom decimal.Decimal
	now           func() time.Time
}

// NewEngine creates an engine with the given Tight/Comfortable headroom
// threshold, in currency units.
func NewEngine(tightHeadroom decimal.Decimal) *Engine {
	return &Engine{
		tightHeadroom: tightHeadroom,
		now:           time.Now,
	}
}

// NewEngineWithClock creates an engine with a fixed clock. Tests use this
// to pin "today" for months-remaining arithmetic.
func NewEngineWithClock(tightHeadroom decimal.Decimal, now func() time.Time) *Engine {
	return &Engine{
		tightHeadroom: tightHeadroom,
		now:           now,
	}
}

// BuildPlan computes a plan from an already-loaded snapshot and goal list.
// Only active goals participate; anything else is skipped. Goal order in
// the result follows allocation order: priority rank, then nearer target
// date, then ID as a final tie-break so the output is fully deterministic.
func (e *Engine) BuildPlan(snapshot *entity.Snapshot, goals []*entity.Goal) *entity.PlanResult {
	active := make([]*entity.Goal, 0, len(goals))
	for _, g := range goals {
		if g.Status == entity.GoalStatusActive {
			active = append(active, g)
		}
	}
	sortForAllocation(active)

	if !snapshot.HasCashFlowData() {
		return e.noSnapshotPlan(active)
	}

	surplus := EstimateMonthlySurplus(snapshot)
	allocations := e.allocate(surplus, active)

	planned := make([]entity.PlannedGoal, len(active))
	allocatedTotal := decimal.Zero
	for i, g := range active {
		a := allocations[i]
		feasibility := e.classify(surplus, a)
		planned[i] = entity.PlannedGoal{
			GoalID:               g.ID,
			Name:                 g.Name,
			Type:                 g.Type,
			RequiredContribution: a.required,
			AllocatedAmount:      a.allocated,
			Feasibility:          feasibility,
			Explanation:          explain(feasibility, a),
		}
		allocatedTotal = allocatedTotal.Add(a.allocated)
	}

	return &entity.PlanResult{
		Goals: planned,
		Summary: entity.PlanSummary{
			EstimatedMonthlySurplus: surplus,
			AllocatedToGoals:        allocatedTotal,
			BufferRemaining:         surplus.Sub(allocatedTotal),
		},
	}
}

// noSnapshotPlan is the short-circuit result when the user has never saved
// a snapshot: every goal is Unrealistic, nothing is allocated, and the
// summary reports zero since nothing is known about cash flow.
func (e *Engine) noSnapshotPlan(active []*entity.Goal) *entity.PlanResult {
	planned := make([]entity.PlannedGoal, len(active))
	today := dateOnly(e.now().UTC())
	for i, g := range active {
		months := monthsRemaining(today, dateOnly(g.TargetDate))
		planned[i] = entity.PlannedGoal{
			GoalID:               g.ID,
			Name:                 g.Name,
			Type:                 g.Type,
			RequiredContribution: requiredContribution(g, months),
			AllocatedAmount:      decimal.Zero,
			Feasibility:          entity.FeasibilityUnrealistic,
			Explanation:          NoSnapshotExplanation,
		}
	}

	return &entity.PlanResult{
		Goals: planned,
		Summary: entity.PlanSummary{
			EstimatedMonthlySurplus: decimal.Zero,
			AllocatedToGoals:        decimal.Zero,
			BufferRemaining:         decimal.Zero,
		},
	}
}

// sortForAllocation orders goals by priority rank, then earlier target
// date, then ID string.
func sortForAllocation(goals []*entity.Goal) {
	sort.SliceStable(goals, func(i, j int) bool {
		a, b := goals[i], goals[j]
		if a.Priority.Rank() != b.Priority.Rank() {
			return a.Priority.Rank() < b.Priority.Rank()
		}
		if !a.TargetDate.Equal(b.TargetDate) {
			return a.TargetDate.Before(b.TargetDate)
		}
		return a.ID.String() < b.ID.String()
	})
}

// dateOnly strips the clock from a timestamp, keeping the UTC date.
func dateOnly(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
