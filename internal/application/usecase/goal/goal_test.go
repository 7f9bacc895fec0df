package goal

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

// fakeGoalRepo is an in-memory GoalRepository for use case tests.
type fakeGoalRepo struct {
	goals map[uuid.UUID]*entity.Goal
}

func newFakeGoalRepo() *fakeGoalRepo {
	return &fakeGoalRepo{goals: make(map[uuid.UUID]*entity.Goal)}
}

func (r *fakeGoalRepo) Create(_ context.Context, goal *entity.Goal) error {
	copied := *goal
	r.goals[goal.ID] = &copied
	return nil
}

func (r *fakeGoalRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Goal, error) {
	goal, ok := r.goals[id]
	if !ok {
		return nil, domainerror.NewGoalError(
			domainerror.ErrCodeGoalNotFound,
			"goal not found",
			domainerror.ErrGoalNotFound,
		)
	}
	copied := *goal
	return &copied, nil
}

func (r *fakeGoalRepo) FindByUserID(_ context.Context, userID uuid.UUID) ([]*entity.Goal, error) {
	var result []*entity.Goal
	for _, goal := range r.goals {
		if goal.UserID == userID {
			copied := *goal
			result = append(result, &copied)
		}
	}
	return result, nil
}

func (r *fakeGoalRepo) FindActiveByUserID(_ context.Context, userID uuid.UUID) ([]*entity.Goal, error) {
	var result []*entity.Goal
	for _, goal := range r.goals {
		if goal.UserID == userID && goal.Status == entity.GoalStatusActive {
			copied := *goal
			result = append(result, &copied)
		}
	}
	return result, nil
}

func (r *fakeGoalRepo) CountActiveByUserID(_ context.Context, userID uuid.UUID) (int64, error) {
	var count int64
	for _, goal := range r.goals {
		if goal.UserID == userID && goal.Status == entity.GoalStatusActive {
			count++
		}
	}
	return count, nil
}

func (r *fakeGoalRepo) Update(_ context.Context, goal *entity.Goal) error {
	if _, ok := r.goals[goal.ID]; !ok {
		return domainerror.ErrGoalNotFound
	}
	copied := *goal
	r.goals[goal.ID] = &copied
	return nil
}

func validCreateInput(userID uuid.UUID) CreateGoalInput {
	return CreateGoalInput{
		UserID:       userID,
		Type:         entity.GoalTypeEmergencyFund,
		Name:         "Emergency fund",
		TargetAmount: decimal.NewFromInt(5000),
		TargetDate:   time.Now().UTC().AddDate(1, 0, 0),
		Priority:     entity.GoalPriorityHigh,
	}
}

func assertGoalErrorCode(t *testing.T, err error, want domainerror.GoalErrorCode) {
	t.Helper()
	var goalErr *domainerror.GoalError
	if !errors.As(err, &goalErr) {
		t.Fatalf("expected GoalError, got %v", err)
	}
	if goalErr.Code != want {
		t.Errorf("expected code %s, got %s", want, goalErr.Code)
	}
}

func TestCreateGoal(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	t.Run("creates active goal with zero balance", func(t *testing.T) {
		repo := newFakeGoalRepo()
		uc := NewCreateGoalUseCase(repo)

		output, err := uc.Execute(ctx, validCreateInput(userID))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if output.Goal.Status != entity.GoalStatusActive {
			t.Errorf("expected status active, got %s", output.Goal.Status)
		}
		if !output.Goal.CurrentBalance.IsZero() {
			t.Errorf("expected zero balance, got %s", output.Goal.CurrentBalance)
		}
		if _, ok := repo.goals[output.Goal.ID]; !ok {
			t.Error("expected goal to be persisted")
		}
	})

	t.Run("rejects empty name", func(t *testing.T) {
		uc := NewCreateGoalUseCase(newFakeGoalRepo())
		input := validCreateInput(userID)
		input.Name = "   "

		_, err := uc.Execute(ctx, input)
		assertGoalErrorCode(t, err, domainerror.ErrCodeMissingGoalFields)
	})

	t.Run("rejects unknown type", func(t *testing.T) {
		uc := NewCreateGoalUseCase(newFakeGoalRepo())
		input := validCreateInput(userID)
		input.Type = "vacation"

		_, err := uc.Execute(ctx, input)
		assertGoalErrorCode(t, err, domainerror.ErrCodeInvalidGoalType)
	})

	t.Run("rejects unknown priority", func(t *testing.T) {
		uc := NewCreateGoalUseCase(newFakeGoalRepo())
		input := validCreateInput(userID)
		input.Priority = "Urgent"

		_, err := uc.Execute(ctx, input)
		assertGoalErrorCode(t, err, domainerror.ErrCodeInvalidGoalPriority)
	})

	t.Run("rejects non-positive target amount", func(t *testing.T) {
		uc := NewCreateGoalUseCase(newFakeGoalRepo())
		input := validCreateInput(userID)
		input.TargetAmount = decimal.Zero

		_, err := uc.Execute(ctx, input)
		assertGoalErrorCode(t, err, domainerror.ErrCodeInvalidTargetAmount)
	})

	t.Run("rejects past target date", func(t *testing.T) {
		uc := NewCreateGoalUseCase(newFakeGoalRepo())
		input := validCreateInput(userID)
		input.TargetDate = time.Now().UTC().AddDate(0, 0, -1)

		_, err := uc.Execute(ctx, input)
		assertGoalErrorCode(t, err, domainerror.ErrCodeTargetDateNotFuture)
	})

	t.Run("enforces active goal limit", func(t *testing.T) {
		repo := newFakeGoalRepo()
		uc := NewCreateGoalUseCase(repo)

		for i := 0; i < entity.MaxActiveGoals; i++ {
			if _, err := uc.Execute(ctx, validCreateInput(userID)); err != nil {
				t.Fatalf("unexpected error on goal %d: %v", i+1, err)
			}
		}

		_, err := uc.Execute(ctx, validCreateInput(userID))
		assertGoalErrorCode(t, err, domainerror.ErrCodeGoalLimitExceeded)
	})

	t.Run("cancelled goals do not count toward the limit", func(t *testing.T) {
		repo := newFakeGoalRepo()
		createUC := NewCreateGoalUseCase(repo)
		cancelUC := NewCancelGoalUseCase(repo)

		var lastID uuid.UUID
		for i := 0; i < entity.MaxActiveGoals; i++ {
			output, err := createUC.Execute(ctx, validCreateInput(userID))
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			lastID = output.Goal.ID
		}

		if err := cancelUC.Execute(ctx, CancelGoalInput{GoalID: lastID, UserID: userID}); err != nil {
			t.Fatalf("unexpected cancel error: %v", err)
		}

		if _, err := createUC.Execute(ctx, validCreateInput(userID)); err != nil {
			t.Errorf("expected creation to succeed after cancellation, got %v", err)
		}
	})
}

func TestGetGoal(t *testing.T) {
	ctx := context.Background()
	repo := newFakeGoalRepo()
	owner := uuid.New()

	created, err := NewCreateGoalUseCase(repo).Execute(ctx, validCreateInput(owner))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	uc := NewGetGoalUseCase(repo)

	t.Run("returns goal for owner", func(t *testing.T) {
		output, err := uc.Execute(ctx, GetGoalInput{GoalID: created.Goal.ID, UserID: owner})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if output.Goal.ID != created.Goal.ID {
			t.Errorf("expected goal %s, got %s", created.Goal.ID, output.Goal.ID)
		}
	})

	t.Run("rejects other users", func(t *testing.T) {
		_, err := uc.Execute(ctx, GetGoalInput{GoalID: created.Goal.ID, UserID: uuid.New()})
		assertGoalErrorCode(t, err, domainerror.ErrCodeUnauthorizedGoalAccess)
	})

	t.Run("not found for unknown id", func(t *testing.T) {
		_, err := uc.Execute(ctx, GetGoalInput{GoalID: uuid.New(), UserID: owner})
		assertGoalErrorCode(t, err, domainerror.ErrCodeGoalNotFound)
	})
}

func TestUpdateGoal(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	setup := func(t *testing.T) (*fakeGoalRepo, *entity.Goal) {
		t.Helper()
		repo := newFakeGoalRepo()
		output, err := NewCreateGoalUseCase(repo).Execute(ctx, validCreateInput(userID))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		return repo, output.Goal
	}

	t.Run("updates provided fields only", func(t *testing.T) {
		repo, goal := setup(t)
		uc := NewUpdateGoalUseCase(repo)

		newName := "Rainy day fund"
		newAmount := decimal.NewFromInt(8000)
		output, err := uc.Execute(ctx, UpdateGoalInput{
			GoalID:       goal.ID,
			UserID:       userID,
			Name:         &newName,
			TargetAmount: &newAmount,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if output.Goal.Name != newName {
			t.Errorf("expected name %q, got %q", newName, output.Goal.Name)
		}
		if !output.Goal.TargetAmount.Equal(newAmount) {
			t.Errorf("expected target %s, got %s", newAmount, output.Goal.TargetAmount)
		}
		if output.Goal.Priority != goal.Priority {
			t.Errorf("expected priority unchanged, got %s", output.Goal.Priority)
		}
	})

	t.Run("pauses and resumes", func(t *testing.T) {
		repo, goal := setup(t)
		uc := NewUpdateGoalUseCase(repo)

		paused := entity.GoalStatusPaused
		if _, err := uc.Execute(ctx, UpdateGoalInput{GoalID: goal.ID, UserID: userID, Status: &paused}); err != nil {
			t.Fatalf("unexpected error pausing: %v", err)
		}

		active := entity.GoalStatusActive
		output, err := uc.Execute(ctx, UpdateGoalInput{GoalID: goal.ID, UserID: userID, Status: &active})
		if err != nil {
			t.Fatalf("unexpected error resuming: %v", err)
		}
		if output.Goal.Status != entity.GoalStatusActive {
			t.Errorf("expected status active, got %s", output.Goal.Status)
		}
	})

	t.Run("rejects direct transition to terminal status", func(t *testing.T) {
		repo, goal := setup(t)
		uc := NewUpdateGoalUseCase(repo)

		completed := entity.GoalStatusCompleted
		_, err := uc.Execute(ctx, UpdateGoalInput{GoalID: goal.ID, UserID: userID, Status: &completed})
		assertGoalErrorCode(t, err, domainerror.ErrCodeInvalidGoalStatus)
	})

	t.Run("rejects update of cancelled goal", func(t *testing.T) {
		repo, goal := setup(t)
		if err := NewCancelGoalUseCase(repo).Execute(ctx, CancelGoalInput{GoalID: goal.ID, UserID: userID}); err != nil {
			t.Fatalf("unexpected cancel error: %v", err)
		}

		newName := "too late"
		_, err := NewUpdateGoalUseCase(repo).Execute(ctx, UpdateGoalInput{GoalID: goal.ID, UserID: userID, Name: &newName})
		assertGoalErrorCode(t, err, domainerror.ErrCodeGoalAlreadyTerminal)
	})

	t.Run("rejects empty update", func(t *testing.T) {
		repo, goal := setup(t)
		_, err := NewUpdateGoalUseCase(repo).Execute(ctx, UpdateGoalInput{GoalID: goal.ID, UserID: userID})
		assertGoalErrorCode(t, err, domainerror.ErrCodeNoFieldsToUpdate)
	})

	t.Run("rejects past target date", func(t *testing.T) {
		repo, goal := setup(t)
		past := time.Now().UTC().AddDate(0, -1, 0)
		_, err := NewUpdateGoalUseCase(repo).Execute(ctx, UpdateGoalInput{GoalID: goal.ID, UserID: userID, TargetDate: &past})
		assertGoalErrorCode(t, err, domainerror.ErrCodeTargetDateNotFuture)
	})

	t.Run("rejects other users", func(t *testing.T) {
		repo, goal := setup(t)
		newName := "not yours"
		_, err := NewUpdateGoalUseCase(repo).Execute(ctx, UpdateGoalInput{GoalID: goal.ID, UserID: uuid.New(), Name: &newName})
		assertGoalErrorCode(t, err, domainerror.ErrCodeUnauthorizedGoalAccess)
	})
}

func TestCancelGoal(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	t.Run("marks goal cancelled", func(t *testing.T) {
		repo := newFakeGoalRepo()
		output, err := NewCreateGoalUseCase(repo).Execute(ctx, validCreateInput(userID))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if err := NewCancelGoalUseCase(repo).Execute(ctx, CancelGoalInput{GoalID: output.Goal.ID, UserID: userID}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		stored := repo.goals[output.Goal.ID]
		if stored.Status != entity.GoalStatusCancelled {
			t.Errorf("expected status cancelled, got %s", stored.Status)
		}
	})

	t.Run("cancel is not idempotent", func(t *testing.T) {
		repo := newFakeGoalRepo()
		output, err := NewCreateGoalUseCase(repo).Execute(ctx, validCreateInput(userID))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		uc := NewCancelGoalUseCase(repo)
		input := CancelGoalInput{GoalID: output.Goal.ID, UserID: userID}
		if err := uc.Execute(ctx, input); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		err = uc.Execute(ctx, input)
		assertGoalErrorCode(t, err, domainerror.ErrCodeGoalAlreadyTerminal)
	})
}
