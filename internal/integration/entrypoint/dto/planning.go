package dto

import (
	"github.com/finance-coach/backend/internal/domain/entity"
)

// PlannedGoalResponse represents one goal's planning outcome.
type PlannedGoalResponse struct {
	GoalID                       string `json:"goal_id"`
	Name                         string `json:"name"`
	Type                         string `json:"type"`
	RequiredMonthlyContribution  string `json:"required_monthly_contribution"`
	AllocatedMonthlyContribution string `json:"allocated_monthly_contribution"`
	Feasibility                  string `json:"feasibility"`
	Explanation                  string `json:"explanation"`
}

// PlanSummaryResponse aggregates the plan across all goals.
type PlanSummaryResponse struct {
	EstimatedMonthlySurplus string `json:"estimated_monthly_surplus"`
	AllocatedToGoals        string `json:"allocated_to_goals"`
	BufferRemaining         string `json:"buffer_remaining"`
}

// PlanResponse represents the response for a plan computation.
type PlanResponse struct {
	Goals   []PlannedGoalResponse `json:"goals"`
	Summary PlanSummaryResponse   `json:"summary"`
}

// ToPlanResponse converts a domain PlanResult into a PlanResponse DTO.
func ToPlanResponse(plan *entity.PlanResult) PlanResponse {
	goals := make([]PlannedGoalResponse, 0, len(plan.Goals))
	for _, g := range plan.Goals {
		goals = append(goals, PlannedGoalResponse{
			GoalID:                       g.GoalID.String(),
			Name:                         g.Name,
			Type:                         string(g.Type),
			RequiredMonthlyContribution:  g.RequiredContribution.StringFixed(2),
			AllocatedMonthlyContribution: g.AllocatedAmount.StringFixed(2),
			Feasibility:                  string(g.Feasibility),
			Explanation:                  g.Explanation,
		})
	}

	return PlanResponse{
		Goals: goals,
		Summary: PlanSummaryResponse{
			EstimatedMonthlySurplus: plan.Summary.EstimatedMonthlySurplus.StringFixed(2),
			AllocatedToGoals:        plan.Summary.AllocatedToGoals.StringFixed(2),
			BufferRemaining:         plan.Summary.BufferRemaining.StringFixed(2),
		},
	}
}
