package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finance-coach/backend/internal/domain/entity"
)

// GoalModel represents the goals table in the database. The current
// balance lives in goal_progress; the model only carries what the user
// declared.
type GoalModel struct {
	ID           uuid.UUID       `gorm:"type:uuid;primaryKey"`
	UserID       uuid.UUID       `gorm:"type:uuid;not null;index"`
	Type         string          `gorm:"type:varchar(30);not null"`
	Name         string          `gorm:"type:varchar(255);not null"`
	TargetAmount decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	TargetDate   time.Time       `gorm:"type:date;not null"`
	Priority     string          `gorm:"type:varchar(10);not null"`
	Status       string          `gorm:"type:varchar(20);not null;default:'active';index"`
	WhyText      string          `gorm:"type:text"`
	CreatedAt    time.Time       `gorm:"not null"`
	UpdatedAt    time.Time       `gorm:"not null"`
}

// TableName returns the table name for the GoalModel.
func (GoalModel) TableName() string {
	return "goals"
}

// ToEntity converts a GoalModel to a domain Goal entity. CurrentBalance
// starts at zero; the repository resolves it from the latest progress row.
func (m *GoalModel) ToEntity() *entity.Goal {
	return &entity.Goal{
		ID:             m.ID,
		UserID:         m.UserID,
		Type:           entity.GoalType(m.Type),
		Name:           m.Name,
		TargetAmount:   m.TargetAmount,
		TargetDate:     m.TargetDate,
		Priority:       entity.GoalPriority(m.Priority),
		Status:         entity.GoalStatus(m.Status),
		CurrentBalance: decimal.Zero,
		WhyText:        m.WhyText,
		CreatedAt:      m.CreatedAt,
		UpdatedAt:      m.UpdatedAt,
	}
}

// GoalFromEntity creates a GoalModel from a domain Goal entity.
func GoalFromEntity(goal *entity.Goal) *GoalModel {
	return &GoalModel{
		ID:           goal.ID,
		UserID:       goal.UserID,
		Type:         string(goal.Type),
		Name:         goal.Name,
		TargetAmount: goal.TargetAmount,
		TargetDate:   goal.TargetDate,
		Priority:     string(goal.Priority),
		Status:       string(goal.Status),
		WhyText:      goal.WhyText,
		CreatedAt:    goal.CreatedAt,
		UpdatedAt:    goal.UpdatedAt,
	}
}

// GoalProgressModel represents the goal_progress table in the database.
type GoalProgressModel struct {
	ID             uuid.UUID       `gorm:"type:uuid;primaryKey"`
	UserID         uuid.UUID       `gorm:"type:uuid;not null;index"`
	GoalID         uuid.UUID       `gorm:"type:uuid;not null;index"`
	CurrentBalance decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	Source         string          `gorm:"type:varchar(10);not null;default:'manual'"`
	Note           string          `gorm:"type:text"`
	RecordedAt     time.Time       `gorm:"not null;index"`
}

// TableName returns the table name for the GoalProgressModel.
func (GoalProgressModel) TableName() string {
	return "goal_progress"
}

// ToEntity converts a GoalProgressModel to a domain GoalProgress entity.
func (m *GoalProgressModel) ToEntity() *entity.GoalProgress {
	return &entity.GoalProgress{
		ID:             m.ID,
		UserID:         m.UserID,
		GoalID:         m.GoalID,
		CurrentBalance: m.CurrentBalance,
		Source:         entity.ProgressSource(m.Source),
		Note:           m.Note,
		RecordedAt:     m.RecordedAt,
	}
}

// GoalProgressFromEntity creates a GoalProgressModel from a domain GoalProgress entity.
func GoalProgressFromEntity(progress *entity.GoalProgress) *GoalProgressModel {
	return &GoalProgressModel{
		ID:             progress.ID,
		UserID:         progress.UserID,
		GoalID:         progress.GoalID,
		CurrentBalance: progress.CurrentBalance,
		Source:         string(progress.Source),
		Note:           progress.Note,
		RecordedAt:     progress.RecordedAt,
	}
}
