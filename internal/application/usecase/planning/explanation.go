package planning

import (
	"fmt"

	"github.com/finance-coach/backend/internal/domain/entity"
)

// NoSnapshotExplanation is attached to every goal when the user has no
// financial snapshot on file. The client surfaces it as "complete your
// snapshot first", never as an HTTP failure.
const NoSnapshotExplanation = "No financial snapshot on file; complete your snapshot to plan this goal."

// explain builds the templated sentence for a classified goal. Pure string
// formatting: every amount is rounded to two decimal places and no
// currency or locale logic is applied.
func explain(feasibility entity.Feasibility, a allocation) string {
	switch feasibility {
	case entity.FeasibilityComfortable:
		if a.required.IsZero() {
			return "This goal is already funded; no monthly contribution is needed."
		}
		return fmt.Sprintf(
			"You have plenty of room: contributing %s/mo leaves a %s surplus.",
			a.allocated.StringFixed(2), a.headroomAfter.StringFixed(2),
		)
	case entity.FeasibilityTight:
		return fmt.Sprintf(
			"Contributing %s/mo is achievable but leaves only %s leftover each month.",
			a.allocated.StringFixed(2), a.headroomAfter.StringFixed(2),
		)
	default:
		shortfall := a.required.Sub(a.allocated)
		return fmt.Sprintf(
			"You are short by %s/mo to hit this goal on time; consider extending the date or lowering the target.",
			shortfall.StringFixed(2),
		)
	}
}
