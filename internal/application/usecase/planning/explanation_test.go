package planning

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/finance-coach/backend/internal/domain/entity"
)

func TestExplain(t *testing.T) {
	t.Run("comfortable", func(t *testing.T) {
		got := explain(entity.FeasibilityComfortable, allocation{
			required:      decimal.NewFromInt(300),
			allocated:     decimal.NewFromInt(300),
			headroomAfter: decimal.NewFromInt(700),
		})
		want := "You have plenty of room: contributing 300.00/mo leaves a 700.00 surplus."
		if got != want {
			t.Errorf("got %q, want %q", got, want)
		}
	})

	t.Run("comfortable with nothing required", func(t *testing.T) {
		got := explain(entity.FeasibilityComfortable, allocation{
			required:      decimal.Zero,
			allocated:     decimal.Zero,
			headroomAfter: decimal.NewFromInt(50),
		})
		if !strings.Contains(got, "already funded") {
			t.Errorf("expected an already-funded sentence, got %q", got)
		}
	})

	t.Run("tight", func(t *testing.T) {
		got := explain(entity.FeasibilityTight, allocation{
			required:      decimal.NewFromInt(300),
			allocated:     decimal.NewFromInt(300),
			headroomAfter: decimal.NewFromInt(20),
		})
		want := "Contributing 300.00/mo is achievable but leaves only 20.00 leftover each month."
		if got != want {
			t.Errorf("got %q, want %q", got, want)
		}
	})

	t.Run("unrealistic reports the shortfall", func(t *testing.T) {
		got := explain(entity.FeasibilityUnrealistic, allocation{
			required:  decimal.NewFromInt(150),
			allocated: decimal.NewFromInt(100),
		})
		if !strings.Contains(got, "short by 50.00/mo") {
			t.Errorf("expected a 50.00 shortfall, got %q", got)
		}
	})

	t.Run("amounts carry two decimal places", func(t *testing.T) {
		got := explain(entity.FeasibilityTight, allocation{
			required:      decimal.NewFromFloat(123.4),
			allocated:     decimal.NewFromFloat(123.4),
			headroomAfter: decimal.NewFromFloat(7.5),
		})
		if !strings.Contains(got, "123.40") || !strings.Contains(got, "7.50") {
			t.Errorf("expected 2-decimal formatting, got %q", got)
		}
	})
}
