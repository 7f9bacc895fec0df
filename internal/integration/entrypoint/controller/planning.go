package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/finance-coach/backend/internal/application/usecase/planning"
	domainerror "github.com/finance-coach/backend/internal/domain/error"
	"github.com/finance-coach/backend/internal/integration/entrypoint/dto"
	"github.com/finance-coach/backend/internal/integration/entrypoint/middleware"
)

// PlanningController handles plan computation endpoints.
type PlanningController struct {
	computePlanUseCase *planning.ComputePlanUseCase
}

// NewPlanningController creates a new planning controller instance.
func NewPlanningController(computePlanUseCase *planning.ComputePlanUseCase) *PlanningController {
	return &PlanningController{
		computePlanUseCase: computePlanUseCase,
	}
}

// ComputePlan handles POST /planning/plan requests. The plan is computed
// from the user's current snapshot and active goals; the request has no
// body.
func (c *PlanningController) ComputePlan(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	output, err := c.computePlanUseCase.Execute(ctx.Request.Context(), planning.ComputePlanInput{UserID: userID})
	if err != nil {
		c.handlePlanningError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToPlanResponse(output.Plan))
}

// handlePlanningError handles planning errors and returns appropriate HTTP responses.
func (c *PlanningController) handlePlanningError(ctx *gin.Context, err error) {
	var planErr *domainerror.PlanningError
	if errors.As(err, &planErr) {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: planErr.Message,
			Code:  string(planErr.Code),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}
