package planning

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finance-coach/backend/internal/domain/entity"
	domainerror "github.com/finance-coach/backend/internal/domain/error"
)

type stubSnapshotRepo struct {
	snapshot *entity.Snapshot
	err      error
}

func (s *stubSnapshotRepo) Get(ctx context.Context, userID uuid.UUID) (*entity.Snapshot, error) {
	return s.snapshot, s.err
}

func (s *stubSnapshotRepo) Replace(ctx context.Context, userID uuid.UUID, snapshot *entity.Snapshot) error {
	s.snapshot = snapshot
	return nil
}

type stubGoalRepo struct {
	goals []*entity.Goal
	err   error
}

func (s *stubGoalRepo) Create(ctx context.Context, goal *entity.Goal) error { return nil }
func (s *stubGoalRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Goal, error) {
	return nil, nil
}
func (s *stubGoalRepo) FindByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.Goal, error) {
	return s.goals, s.err
}
func (s *stubGoalRepo) FindActiveByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.Goal, error) {
	return s.goals, s.err
}
func (s *stubGoalRepo) CountActiveByUserID(ctx context.Context, userID uuid.UUID) (int64, error) {
	return int64(len(s.goals)), nil
}
func (s *stubGoalRepo) Update(ctx context.Context, goal *entity.Goal) error { return nil }

type recordingCache struct {
	store map[string]*entity.PlanResult
	gets  int
	sets  int
	err   error
}

func newRecordingCache() *recordingCache {
	return &recordingCache{store: make(map[string]*entity.PlanResult)}
}

func (c *recordingCache) Get(ctx context.Context, userID uuid.UUID, version string) (*entity.PlanResult, error) {
	c.gets++
	if c.err != nil {
		return nil, c.err
	}
	return c.store[userID.String()+":"+version], nil
}

func (c *recordingCache) Set(ctx context.Context, userID uuid.UUID, version string, plan *entity.PlanResult) error {
	c.sets++
	if c.err != nil {
		return c.err
	}
	c.store[userID.String()+":"+version] = plan
	return nil
}

func TestComputePlanUseCase(t *testing.T) {
	userID := uuid.New()

	t.Run("computes a plan without a cache", func(t *testing.T) {
		uc := NewComputePlanUseCase(
			&stubSnapshotRepo{snapshot: monthlySnapshot(1000, 0)},
			&stubGoalRepo{goals: []*entity.Goal{testGoal(entity.GoalPriorityHigh, 3600, 360)}},
			newTestEngine(),
			nil,
		)

		output, err := uc.Execute(context.Background(), ComputePlanInput{UserID: userID})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(output.Plan.Goals) != 1 {
			t.Fatalf("expected 1 planned goal, got %d", len(output.Plan.Goals))
		}
		if !output.Plan.Summary.EstimatedMonthlySurplus.Equal(decimal.NewFromInt(1000)) {
			t.Errorf("expected surplus 1000, got %s", output.Plan.Summary.EstimatedMonthlySurplus)
		}
	})

	t.Run("serves repeat requests from cache", func(t *testing.T) {
		cache := newRecordingCache()
		uc := NewComputePlanUseCase(
			&stubSnapshotRepo{snapshot: monthlySnapshot(1000, 0)},
			&stubGoalRepo{goals: []*entity.Goal{testGoal(entity.GoalPriorityHigh, 3600, 360)}},
			newTestEngine(),
			cache,
		)

		first, err := uc.Execute(context.Background(), ComputePlanInput{UserID: userID})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		second, err := uc.Execute(context.Background(), ComputePlanInput{UserID: userID})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if cache.sets != 1 {
			t.Errorf("expected 1 cache write, got %d", cache.sets)
		}
		if cache.gets != 2 {
			t.Errorf("expected 2 cache reads, got %d", cache.gets)
		}
		if first.Plan != second.Plan &&
			!first.Plan.Summary.EstimatedMonthlySurplus.Equal(second.Plan.Summary.EstimatedMonthlySurplus) {
			t.Error("expected the cached plan to match the computed plan")
		}
	})

	t.Run("goal write changes the cache key", func(t *testing.T) {
		cache := newRecordingCache()
		goal := testGoal(entity.GoalPriorityHigh, 3600, 360)
		goalRepo := &stubGoalRepo{goals: []*entity.Goal{goal}}
		uc := NewComputePlanUseCase(
			&stubSnapshotRepo{snapshot: monthlySnapshot(1000, 0)},
			goalRepo,
			newTestEngine(),
			cache,
		)

		if _, err := uc.Execute(context.Background(), ComputePlanInput{UserID: userID}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		// Simulate an edit: the updated stamp moves, so the old entry must
		// not be served.
		goal.TargetAmount = decimal.NewFromInt(7200)
		goal.UpdatedAt = goal.UpdatedAt.Add(time.Second)

		output, err := uc.Execute(context.Background(), ComputePlanInput{UserID: userID})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cache.sets != 2 {
			t.Errorf("expected a fresh computation after the goal write, got %d cache writes", cache.sets)
		}
		if !output.Plan.Goals[0].RequiredContribution.Equal(decimal.NewFromInt(600)) {
			t.Errorf("expected recomputed required 600, got %s", output.Plan.Goals[0].RequiredContribution)
		}
	})

	t.Run("cache failure falls back to computing", func(t *testing.T) {
		cache := newRecordingCache()
		cache.err = errors.New("redis down")
		uc := NewComputePlanUseCase(
			&stubSnapshotRepo{snapshot: monthlySnapshot(1000, 0)},
			&stubGoalRepo{goals: []*entity.Goal{testGoal(entity.GoalPriorityHigh, 3600, 360)}},
			newTestEngine(),
			cache,
		)

		output, err := uc.Execute(context.Background(), ComputePlanInput{UserID: userID})
		if err != nil {
			t.Fatalf("expected cache failure to be non-fatal, got %v", err)
		}
		if len(output.Plan.Goals) != 1 {
			t.Errorf("expected a computed plan despite cache failure")
		}
	})

	t.Run("storage failure fails the whole computation", func(t *testing.T) {
		uc := NewComputePlanUseCase(
			&stubSnapshotRepo{err: errors.New("connection reset")},
			&stubGoalRepo{},
			newTestEngine(),
			nil,
		)

		_, err := uc.Execute(context.Background(), ComputePlanInput{UserID: userID})
		if err == nil {
			t.Fatal("expected an error")
		}
		var planErr *domainerror.PlanningError
		if !errors.As(err, &planErr) {
			t.Fatalf("expected a PlanningError, got %T", err)
		}
		if planErr.Code != domainerror.ErrCodePlanComputationFailed {
			t.Errorf("expected code %s, got %s", domainerror.ErrCodePlanComputationFailed, planErr.Code)
		}
	})
}
