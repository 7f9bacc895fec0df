package controller

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finance-coach/backend/internal/application/usecase/goal"
	"github.com/finance-coach/backend/internal/application/usecase/progress"
	"github.com/finance-coach/backend/internal/domain/entity"
	domainerror "github.com/finance-coach/backend/internal/domain/error"
	"github.com/finance-coach/backend/internal/integration/entrypoint/dto"
	"github.com/finance-coach/backend/internal/integration/entrypoint/middleware"
)

// GoalController handles goal and goal progress endpoints.
type GoalController struct {
	createUseCase       *goal.CreateGoalUseCase
	listUseCase         *goal.ListGoalsUseCase
	getUseCase          *goal.GetGoalUseCase
	updateUseCase       *goal.UpdateGoalUseCase
	cancelUseCase       *goal.CancelGoalUseCase
	recordProgressUC    *progress.RecordProgressUseCase
	listProgressUseCase *progress.ListProgressUseCase
}

// NewGoalController creates a new goal controller instance.
func NewGoalController(
	createUseCase *goal.CreateGoalUseCase,
	listUseCase *goal.ListGoalsUseCase,
	getUseCase *goal.GetGoalUseCase,
	updateUseCase *goal.UpdateGoalUseCase,
	cancelUseCase *goal.CancelGoalUseCase,
	recordProgressUC *progress.RecordProgressUseCase,
	listProgressUseCase *progress.ListProgressUseCase,
) *GoalController {
	return &GoalController{
		createUseCase:       createUseCase,
		listUseCase:         listUseCase,
		getUseCase:          getUseCase,
		updateUseCase:       updateUseCase,
		cancelUseCase:       cancelUseCase,
		recordProgressUC:    recordProgressUC,
		listProgressUseCase: listProgressUseCase,
	}
}

// Create handles POST /goals requests.
func (c *GoalController) Create(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	var req dto.CreateGoalRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
			Code:  string(domainerror.ErrCodeMissingGoalFields),
		})
		return
	}

	targetDate, err := time.Parse("2006-01-02", req.TargetDate)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid target date format, expected YYYY-MM-DD",
			Code:  string(domainerror.ErrCodeTargetDateNotFuture),
		})
		return
	}

	input := goal.CreateGoalInput{
		UserID:       userID,
		Type:         entity.GoalType(req.Type),
		Name:         req.Name,
		TargetAmount: decimal.NewFromFloat(req.TargetAmount),
		TargetDate:   targetDate,
		Priority:     entity.GoalPriority(req.Priority),
		WhyText:      req.WhyText,
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleGoalError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToGoalResponse(output.Goal))
}

// List handles GET /goals requests.
func (c *GoalController) List(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), goal.ListGoalsInput{UserID: userID})
	if err != nil {
		c.handleGoalError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToGoalListResponse(output.Goals))
}

// Get handles GET /goals/:id requests.
func (c *GoalController) Get(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	goalID, ok := parseGoalID(ctx)
	if !ok {
		return
	}

	output, err := c.getUseCase.Execute(ctx.Request.Context(), goal.GetGoalInput{
		GoalID: goalID,
		UserID: userID,
	})
	if err != nil {
		c.handleGoalError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToGoalResponse(output.Goal))
}

// Update handles PATCH /goals/:id requests.
func (c *GoalController) Update(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	goalID, ok := parseGoalID(ctx)
	if !ok {
		return
	}

	var req dto.UpdateGoalRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
			Code:  string(domainerror.ErrCodeMissingGoalFields),
		})
		return
	}

	input := goal.UpdateGoalInput{
		GoalID:  goalID,
		UserID:  userID,
		Name:    req.Name,
		WhyText: req.WhyText,
	}
	if req.Type != nil {
		goalType := entity.GoalType(*req.Type)
		input.Type = &goalType
	}
	if req.TargetAmount != nil {
		amount := decimal.NewFromFloat(*req.TargetAmount)
		input.TargetAmount = &amount
	}
	if req.TargetDate != nil {
		targetDate, err := time.Parse("2006-01-02", *req.TargetDate)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid target date format, expected YYYY-MM-DD",
				Code:  string(domainerror.ErrCodeTargetDateNotFuture),
			})
			return
		}
		input.TargetDate = &targetDate
	}
	if req.Priority != nil {
		priority := entity.GoalPriority(*req.Priority)
		input.Priority = &priority
	}
	if req.Status != nil {
		status := entity.GoalStatus(*req.Status)
		input.Status = &status
	}

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleGoalError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToGoalResponse(output.Goal))
}

// Cancel handles DELETE /goals/:id requests.
func (c *GoalController) Cancel(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	goalID, ok := parseGoalID(ctx)
	if !ok {
		return
	}

	if err := c.cancelUseCase.Execute(ctx.Request.Context(), goal.CancelGoalInput{
		GoalID: goalID,
		UserID: userID,
	}); err != nil {
		c.handleGoalError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "Goal cancelled"})
}

// RecordProgress handles POST /goals/:id/progress requests.
func (c *GoalController) RecordProgress(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	goalID, ok := parseGoalID(ctx)
	if !ok {
		return
	}

	var req dto.RecordProgressRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
			Code:  string(domainerror.ErrCodeMissingProgressFields),
		})
		return
	}

	output, err := c.recordProgressUC.Execute(ctx.Request.Context(), progress.RecordProgressInput{
		UserID:         userID,
		GoalID:         goalID,
		CurrentBalance: decimal.NewFromFloat(req.CurrentBalance),
		Source:         entity.ProgressSource(req.Source),
		Note:           req.Note,
	})
	if err != nil {
		c.handleGoalError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.RecordProgressResponse{
		Progress:      dto.ToProgressResponse(output.Progress),
		Goal:          dto.ToGoalResponse(output.Goal),
		GoalCompleted: output.GoalCompleted,
	})
}

// ListProgress handles GET /goals/:id/progress requests.
func (c *GoalController) ListProgress(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	goalID, ok := parseGoalID(ctx)
	if !ok {
		return
	}

	output, err := c.listProgressUseCase.Execute(ctx.Request.Context(), progress.ListProgressInput{
		UserID: userID,
		GoalID: goalID,
	})
	if err != nil {
		c.handleGoalError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToProgressListResponse(output.Progress))
}

// handleGoalError handles goal and progress errors and returns appropriate
// HTTP responses.
func (c *GoalController) handleGoalError(ctx *gin.Context, err error) {
	var goalErr *domainerror.GoalError
	if errors.As(err, &goalErr) {
		ctx.JSON(c.getStatusCodeForGoalError(goalErr.Code), dto.ErrorResponse{
			Error: goalErr.Message,
			Code:  string(goalErr.Code),
		})
		return
	}

	var progErr *domainerror.ProgressError
	if errors.As(err, &progErr) {
		status := http.StatusBadRequest
		if progErr.Code == domainerror.ErrCodeProgressOnTerminalGoal {
			status = http.StatusConflict
		}
		ctx.JSON(status, dto.ErrorResponse{
			Error: progErr.Message,
			Code:  string(progErr.Code),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}

// getStatusCodeForGoalError maps goal error codes to HTTP status codes.
func (c *GoalController) getStatusCodeForGoalError(code domainerror.GoalErrorCode) int {
	switch code {
	case domainerror.ErrCodeGoalNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeUnauthorizedGoalAccess:
		return http.StatusForbidden
	case domainerror.ErrCodeGoalLimitExceeded,
		domainerror.ErrCodeGoalAlreadyTerminal:
		return http.StatusConflict
	case domainerror.ErrCodeInvalidTargetAmount,
		domainerror.ErrCodeTargetDateNotFuture,
		domainerror.ErrCodeInvalidGoalType,
		domainerror.ErrCodeInvalidGoalPriority,
		domainerror.ErrCodeInvalidGoalStatus,
		domainerror.ErrCodeMissingGoalFields,
		domainerror.ErrCodeNoFieldsToUpdate:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func parseGoalID(ctx *gin.Context) (uuid.UUID, bool) {
	goalID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid goal ID format",
		})
		return uuid.Nil, false
	}
	return goalID, true
}

func respondUnauthenticated(ctx *gin.Context) {
	ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
		Error: "User not authenticated",
		Code:  string(domainerror.ErrCodeMissingToken),
	})
}
