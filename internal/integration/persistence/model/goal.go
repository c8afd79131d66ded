package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/gestao-financeira/backend/internal/domain/entity"
)

// GoalModel represents the goals table in the database. (month, year) is unique.
type GoalModel struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Month       int             `gorm:"not null;uniqueIndex:idx_goals_month_year"`
	Year        int             `gorm:"not null;uniqueIndex:idx_goals_month_year"`
	SalesTarget decimal.Decimal `gorm:"type:decimal(15,2);not null;default:0"`
	UnitsTarget int             `gorm:"not null;default:0"`
	CreatedAt   time.Time       `gorm:"not null"`
	UpdatedAt   time.Time       `gorm:"not null"`
}

// TableName returns the table name for the GoalModel.
func (GoalModel) TableName() string {
	return "goals"
}

// ToEntity converts a GoalModel to a domain Goal entity.
func (m *GoalModel) ToEntity() *entity.Goal {
	return &entity.Goal{
		ID:          m.ID,
		Month:       m.Month,
		Year:        m.Year,
		SalesTarget: m.SalesTarget,
		UnitsTarget: m.UnitsTarget,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

// GoalFromEntity creates a GoalModel from a domain Goal entity.
func GoalFromEntity(goal *entity.Goal) *GoalModel {
	return &GoalModel{
		ID:          goal.ID,
		Month:       goal.Month,
		Year:        goal.Year,
		SalesTarget: goal.SalesTarget,
		UnitsTarget: goal.UnitsTarget,
		CreatedAt:   goal.CreatedAt,
		UpdatedAt:   goal.UpdatedAt,
	}
}
