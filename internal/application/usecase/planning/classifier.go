package planning

import (
	"github.com/shopspring/decimal"

	"github.com/finance-coach/backend/internal/domain/entity"
)

// classify labels one goal's allocation outcome. The label depends only on
// the numbers in the allocation and the starting surplus; there is no
// randomness and no external state.
//
// Rules, in order:
//   - a negative starting surplus makes every goal Unrealistic;
//   - a goal that received less than it requires is Unrealistic;
//   - a goal that requires nothing (target already reached) is Comfortable;
//   - a fully funded goal is Tight when the headroom left after it is
//     below the threshold, Comfortable otherwise.
func (e *Engine) classify(surplus decimal.Decimal, a allocation) entity.Feasibility {
	if surplus.IsNegative() {
		return entity.FeasibilityUnrealistic
	}
	if a.allocated.LessThan(a.required) {
		return entity.FeasibilityUnrealistic
	}
	if a.required.IsZero() {
		return entity.FeasibilityComfortable
	}
	if a.headroomAfter.LessThan(e.tightHeadroom) {
		return entity.FeasibilityTight
	}
	return entity.FeasibilityComfortable
}
