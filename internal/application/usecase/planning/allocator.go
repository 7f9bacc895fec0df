package planning

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/finance-coach/backend/internal/domain/entity"
)

// allocation is the allocator's per-goal outcome, plus the numbers the
// classifier needs to label it.
type allocation struct {
	// required is the monthly contribution that would hit the target on
	// time, rounded to cents.
	required decimal.Decimal
	// allocated is the share of the surplus this goal actually received.
	allocated decimal.Decimal
	// headroomAfter is the surplus left over after this goal's allocation
	// in priority order.
	headroomAfter decimal.Decimal
}

// allocate distributes the monthly surplus across goals greedily in the
// given order. A higher-priority goal is fully funded before the next goal
// receives anything; that is the product's "pay off what matters most
// first" intent, with nearer deadlines breaking priority ties upstream.
//
// A negative surplus skips allocation entirely: every goal gets zero and
// the recorded headroom is the (negative) surplus itself.
func (e *Engine) allocate(surplus decimal.Decimal, goals []*entity.Goal) []allocation {
	today := dateOnly(e.now().UTC())
	allocations := make([]allocation, len(goals))

	remaining := surplus
	if remaining.IsNegative() {
		remaining = decimal.Zero
	}

	for i, g := range goals {
		months := monthsRemaining(today, dateOnly(g.TargetDate))
		required := requiredContribution(g, months)

		allocated := decimal.Min(required, remaining)
		if surplus.IsNegative() {
			allocated = decimal.Zero
		}
		remaining = remaining.Sub(allocated)

		headroom := remaining
		if surplus.IsNegative() {
			headroom = surplus
		}

		allocations[i] = allocation{
			required:      required,
			allocated:     allocated,
			headroomAfter: headroom,
		}
	}

	return allocations
}

// monthsRemaining converts the distance between two dates into whole
// contribution months: ceil(days/30), never below 1. A target date in the
// past still plans with a single month so the user sees a concrete number
// instead of a divide-by-zero.
func monthsRemaining(today, target time.Time) int64 {
	days := int64(target.Sub(today).Hours() / 24)
	if days <= 0 {
		return 1
	}
	months := (days + daysPerMonth - 1) / daysPerMonth
	if months < 1 {
		return 1
	}
	return months
}

// requiredContribution is the per-month amount still needed to reach the
// goal's target, rounded to cents. Already-reached goals need nothing.
func requiredContribution(g *entity.Goal, months int64) decimal.Decimal {
	remaining := g.RemainingAmount()
	if remaining.IsZero() {
		return decimal.Zero
	}
	return remaining.Div(decimal.NewFromInt(months)).Round(2)
}
