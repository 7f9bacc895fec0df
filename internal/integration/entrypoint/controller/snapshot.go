package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/finance-coach/backend/internal/application/usecase/snapshot"
	"github.com/finance-coach/backend/internal/domain/entity"
	domainerror "github.com/finance-coach/backend/internal/domain/error"
	"github.com/finance-coach/backend/internal/integration/entrypoint/dto"
	"github.com/finance-coach/backend/internal/integration/entrypoint/middleware"
)

// SnapshotController handles financial snapshot endpoints.
type SnapshotController struct {
	upsertUseCase *snapshot.UpsertSnapshotUseCase
	getUseCase    *snapshot.GetSnapshotUseCase
}

// NewSnapshotController creates a new snapshot controller instance.
func NewSnapshotController(
	upsertUseCase *snapshot.UpsertSnapshotUseCase,
	getUseCase *snapshot.GetSnapshotUseCase,
) *SnapshotController {
	return &SnapshotController{
		upsertUseCase: upsertUseCase,
		getUseCase:    getUseCase,
	}
}

// Upsert handles PUT /snapshot requests. The submitted snapshot replaces
// the user's previous one wholesale.
func (c *SnapshotController) Upsert(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	var req dto.UpsertSnapshotRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
			Code:  string(domainerror.ErrCodeMissingSnapshotFields),
		})
		return
	}

	input := snapshot.UpsertSnapshotInput{UserID: userID}
	if req.Income != nil {
		input.Income = &snapshot.IncomeInput{
			Amount:      decimal.NewFromFloat(req.Income.Amount),
			Frequency:   entity.IncomeFrequency(req.Income.Frequency),
			SourceLabel: req.Income.SourceLabel,
		}
	}
	if req.Expenses != nil {
		input.Expenses = &snapshot.ExpensesInput{
			TotalAmount: decimal.NewFromFloat(req.Expenses.TotalAmount),
		}
	}
	for _, debt := range req.Debts {
		input.Debts = append(input.Debts, snapshot.DebtInput{
			Type:       entity.DebtType(debt.Type),
			Label:      debt.Label,
			Balance:    decimal.NewFromFloat(debt.Balance),
			AnnualRate: decimal.NewFromFloat(debt.AnnualRate),
			MinPayment: decimal.NewFromFloat(debt.MinPayment),
		})
	}
	for _, account := range req.Savings {
		input.Savings = append(input.Savings, snapshot.SavingsInput{
			Label:   account.Label,
			Balance: decimal.NewFromFloat(account.Balance),
		})
	}

	output, err := c.upsertUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleSnapshotError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToSnapshotResponse(output.Snapshot))
}

// Get handles GET /snapshot requests.
func (c *SnapshotController) Get(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	output, err := c.getUseCase.Execute(ctx.Request.Context(), snapshot.GetSnapshotInput{UserID: userID})
	if err != nil {
		c.handleSnapshotError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToSnapshotResponse(output.Snapshot))
}

// handleSnapshotError handles snapshot errors and returns appropriate HTTP responses.
func (c *SnapshotController) handleSnapshotError(ctx *gin.Context, err error) {
	var snapErr *domainerror.SnapshotError
	if errors.As(err, &snapErr) {
		status := http.StatusBadRequest
		if snapErr.Code == domainerror.ErrCodeSnapshotSaveFailed {
			status = http.StatusInternalServerError
		}
		ctx.JSON(status, dto.ErrorResponse{
			Error: snapErr.Message,
			Code:  string(snapErr.Code),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}
