package dto

import (
	"time"

	"github.com/finance-coach/backend/internal/domain/entity"
)

// CreateGoalRequest represents the request body for goal creation.
type CreateGoalRequest struct {
	Type         string  `json:"type" binding:"required,oneof=debt_payoff emergency_fund short_term_saving fire_starter custom"`
	Name         string  `json:"name" binding:"required,min=1,max=255"`
	TargetAmount float64 `json:"target_amount" binding:"required,gt=0"`
	TargetDate   string  `json:"target_date" binding:"required"` // Format: "YYYY-MM-DD"
	Priority     string  `json:"priority" binding:"required,oneof=High Medium Low"`
	WhyText      string  `json:"why_text,omitempty"`
}

// UpdateGoalRequest represents the request body for goal update. Absent
// fields are left unchanged.
type UpdateGoalRequest struct {
	Type         *string  `json:"type,omitempty" binding:"omitempty,oneof=debt_payoff emergency_fund short_term_saving fire_starter custom"`
	Name         *string  `json:"name,omitempty" binding:"omitempty,min=1,max=255"`
	TargetAmount *float64 `json:"target_amount,omitempty" binding:"omitempty,gt=0"`
	TargetDate   *string  `json:"target_date,omitempty"`
	Priority     *string  `json:"priority,omitempty" binding:"omitempty,oneof=High Medium Low"`
	Status       *string  `json:"status,omitempty" binding:"omitempty,oneof=active paused"`
	WhyText      *string  `json:"why_text,omitempty"`
}

// GoalResponse represents a single goal in API responses. Monetary fields
// are decimal strings.
type GoalResponse struct {
	ID             string    `json:"id"`
	Type           string    `json:"type"`
	Name           string    `json:"name"`
	TargetAmount   string    `json:"target_amount"`
	TargetDate     string    `json:"target_date"`
	Priority       string    `json:"priority"`
	Status         string    `json:"status"`
	CurrentBalance string    `json:"current_balance"`
	WhyText        string    `json:"why_text,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// GoalListResponse represents the response for listing goals.
type GoalListResponse struct {
	Goals []GoalResponse `json:"goals"`
}

// ToGoalResponse converts a domain Goal entity to a GoalResponse DTO.
func ToGoalResponse(g *entity.Goal) GoalResponse {
	return GoalResponse{
		ID:             g.ID.String(),
		Type:           string(g.Type),
		Name:           g.Name,
		TargetAmount:   g.TargetAmount.StringFixed(2),
		TargetDate:     g.TargetDate.Format("2006-01-02"),
		Priority:       string(g.Priority),
		Status:         string(g.Status),
		CurrentBalance: g.CurrentBalance.StringFixed(2),
		WhyText:        g.WhyText,
		CreatedAt:      g.CreatedAt,
		UpdatedAt:      g.UpdatedAt,
	}
}

// ToGoalListResponse converts a slice of goals to a GoalListResponse DTO.
func ToGoalListResponse(goals []*entity.Goal) GoalListResponse {
	responses := make([]GoalResponse, 0, len(goals))
	for _, g := range goals {
		responses = append(responses, ToGoalResponse(g))
	}
	return GoalListResponse{Goals: responses}
}

// RecordProgressRequest represents the request body for recording goal progress.
type RecordProgressRequest struct {
	CurrentBalance float64 `json:"current_balance" binding:"min=0"`
	Source         string  `json:"source,omitempty" binding:"omitempty,oneof=manual checkin"`
	Note           string  `json:"note,omitempty"`
}

// ProgressResponse represents a single progress record in API responses.
type ProgressResponse struct {
	ID             string    `json:"id"`
	GoalID         string    `json:"goal_id"`
	CurrentBalance string    `json:"current_balance"`
	Source         string    `json:"source"`
	Note           string    `json:"note,omitempty"`
	RecordedAt     time.Time `json:"recorded_at"`
}

// RecordProgressResponse represents the response for recording progress.
type RecordProgressResponse struct {
	Progress      ProgressResponse `json:"progress"`
	Goal          GoalResponse     `json:"goal"`
	GoalCompleted bool             `json:"goal_completed"`
}

// ProgressListResponse represents the response for listing progress.
type ProgressListResponse struct {
	Progress []ProgressResponse `json:"progress"`
}

// ToProgressResponse converts a domain GoalProgress entity to a DTO.
func ToProgressResponse(p *entity.GoalProgress) ProgressResponse {
	return ProgressResponse{
		ID:             p.ID.String(),
		GoalID:         p.GoalID.String(),
		CurrentBalance: p.CurrentBalance.StringFixed(2),
		Source:         string(p.Source),
		Note:           p.Note,
		RecordedAt:     p.RecordedAt,
	}
}

// ToProgressListResponse converts progress records to a list DTO.
func ToProgressListResponse(records []*entity.GoalProgress) ProgressListResponse {
	responses := make([]ProgressResponse, 0, len(records))
	for _, p := range records {
		responses = append(responses, ToProgressResponse(p))
	}
	return ProgressListResponse{Progress: responses}
}
