package adapters

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"

	"github.com/finance-coach/backend/internal/domain/entity"
)

func newTestCache(t *testing.T) (*redisPlanCache, *miniredis.Miniredis) {
	t.Helper()

	server, err := miniredis.Run()
	if err != nil {
		t.Fatalf("failed to start miniredis: %v", err)
	}
	t.Cleanup(server.Close)

	client := redis.NewClient(&redis.Options{Addr: server.Addr()})
	cache := NewRedisPlanCache(client, time.Hour).(*redisPlanCache)
	return cache, server
}

func samplePlan() *entity.PlanResult {
	return &entity.PlanResult{
		Goals: []entity.PlannedGoal{
			{
				GoalID:               uuid.New(),
				Name:                 "Emergency fund",
				Type:                 entity.GoalTypeEmergencyFund,
				RequiredContribution: decimal.NewFromInt(250),
				AllocatedAmount:      decimal.NewFromInt(250),
				Feasibility:          entity.FeasibilityComfortable,
				Explanation:          "on track",
			},
		},
		Summary: entity.PlanSummary{
			EstimatedMonthlySurplus: decimal.NewFromInt(600),
			AllocatedToGoals:        decimal.NewFromInt(250),
			BufferRemaining:         decimal.NewFromInt(350),
		},
	}
}

func TestRedisPlanCache(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	t.Run("round trips a plan", func(t *testing.T) {
		cache, _ := newTestCache(t)
		plan := samplePlan()

		if err := cache.Set(ctx, userID, "v1", plan); err != nil {
			t.Fatalf("unexpected set error: %v", err)
		}

		got, err := cache.Get(ctx, userID, "v1")
		if err != nil {
			t.Fatalf("unexpected get error: %v", err)
		}
		if got == nil {
			t.Fatal("expected cache hit")
		}
		if len(got.Goals) != 1 {
			t.Fatalf("expected 1 goal, got %d", len(got.Goals))
		}
		if !got.Goals[0].RequiredContribution.Equal(plan.Goals[0].RequiredContribution) {
			t.Errorf("expected contribution %s, got %s",
				plan.Goals[0].RequiredContribution, got.Goals[0].RequiredContribution)
		}
		if !got.Summary.BufferRemaining.Equal(plan.Summary.BufferRemaining) {
			t.Errorf("expected buffer %s, got %s",
				plan.Summary.BufferRemaining, got.Summary.BufferRemaining)
		}
	})

	t.Run("misses on unknown version", func(t *testing.T) {
		cache, _ := newTestCache(t)

		if err := cache.Set(ctx, userID, "v1", samplePlan()); err != nil {
			t.Fatalf("unexpected set error: %v", err)
		}

		got, err := cache.Get(ctx, userID, "v2")
		if err != nil {
			t.Fatalf("unexpected get error: %v", err)
		}
		if got != nil {
			t.Error("expected miss for different version")
		}
	})

	t.Run("entries expire", func(t *testing.T) {
		cache, server := newTestCache(t)

		if err := cache.Set(ctx, userID, "v1", samplePlan()); err != nil {
			t.Fatalf("unexpected set error: %v", err)
		}

		server.FastForward(2 * time.Hour)

		got, err := cache.Get(ctx, userID, "v1")
		if err != nil {
			t.Fatalf("unexpected get error: %v", err)
		}
		if got != nil {
			t.Error("expected entry to have expired")
		}
	})
}
