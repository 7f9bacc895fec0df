package planning

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/finance-coach/backend/internal/application/adapter"
	"github.com/finance-coach/backend/internal/domain/entity"
	domainerror "github.com/finance-coach/backend/internal/domain/error"
)

// ComputePlanInput represents the input for plan computation.
type ComputePlanInput struct {
	UserID uuid.UUID
}

// ComputePlanOutput represents the output of plan computation.
type ComputePlanOutput struct {
	Plan *entity.PlanResult
}

// ComputePlanUseCase fetches a user's snapshot and active goals, runs the
// engine, and returns the plan. It is invoked on every "(re)compute my
// plan" trigger: goal writes, snapshot writes, or an explicit refresh.
type ComputePlanUseCase struct {
	snapshotRepo adapter.SnapshotRepository
	goalRepo     adapter.GoalRepository
	engine       *Engine
	cache        adapter.PlanCache // optional; nil disables caching
}

// NewComputePlanUseCase creates a new ComputePlanUseCase instance.
// cache may be nil; computation is cheap and caching is an optimization.
func NewComputePlanUseCase(
	snapshotRepo adapter.SnapshotRepository,
	goalRepo adapter.GoalRepository,
	engine *Engine,
	cache adapter.PlanCache,
) *ComputePlanUseCase {
	return &ComputePlanUseCase{
		snapshotRepo: snapshotRepo,
		goalRepo:     goalRepo,
		engine:       engine,
		cache:        cache,
	}
}

// Execute computes the user's current plan. Storage failures fail the
// whole computation; a plan is never partially computed.
func (uc *ComputePlanUseCase) Execute(ctx context.Context, input ComputePlanInput) (*ComputePlanOutput, error) {
	snapshot, err := uc.snapshotRepo.Get(ctx, input.UserID)
	if err != nil {
		return nil, domainerror.NewPlanningError(
			domainerror.ErrCodePlanComputationFailed,
			"unable to compute plan",
			err,
		)
	}

	goals, err := uc.goalRepo.FindActiveByUserID(ctx, input.UserID)
	if err != nil {
		return nil, domainerror.NewPlanningError(
			domainerror.ErrCodePlanComputationFailed,
			"unable to compute plan",
			err,
		)
	}

	version := planVersion(snapshot, goals)

	if uc.cache != nil {
		cached, cacheErr := uc.cache.Get(ctx, input.UserID, version)
		if cacheErr != nil {
			slog.Warn("plan cache read failed, computing plan",
				"user_id", input.UserID.String(),
				"error", cacheErr,
			)
		} else if cached != nil {
			return &ComputePlanOutput{Plan: cached}, nil
		}
	}

	plan := uc.engine.BuildPlan(snapshot, goals)

	if uc.cache != nil {
		if cacheErr := uc.cache.Set(ctx, input.UserID, version, plan); cacheErr != nil {
			slog.Warn("plan cache write failed",
				"user_id", input.UserID.String(),
				"error", cacheErr,
			)
		}
	}

	return &ComputePlanOutput{Plan: plan}, nil
}

// planVersion derives the cache key material from the snapshot and goal
// record versions. Any write to either changes a timestamp or an ID below,
// so stale cache entries can never be served; no explicit invalidation is
// needed.
func planVersion(snapshot *entity.Snapshot, goals []*entity.Goal) string {
	h := sha256.New()

	writeStamp := func(id uuid.UUID, t time.Time) {
		h.Write(id[:])
		h.Write([]byte(t.UTC().Format(time.RFC3339Nano)))
	}

	if snapshot != nil {
		if snapshot.Income != nil {
			writeStamp(snapshot.Income.ID, snapshot.Income.CreatedAt)
		}
		if snapshot.Expenses != nil {
			writeStamp(snapshot.Expenses.ID, snapshot.Expenses.CreatedAt)
		}
		for _, d := range snapshot.Debts {
			writeStamp(d.ID, d.CreatedAt)
		}
		for _, s := range snapshot.Savings {
			writeStamp(s.ID, s.CreatedAt)
		}
	}

	for _, g := range goals {
		writeStamp(g.ID, g.UpdatedAt)
		h.Write([]byte(g.CurrentBalance.String()))
	}

	return hex.EncodeToString(h.Sum(nil))
}
