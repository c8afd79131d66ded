package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/gestao-financeira/backend/internal/domain/entity"
)

// UpsertGoalRequest represents the request body for setting a monthly goal.
type UpsertGoalRequest struct {
	Month       int              `json:"month" binding:"required"`
	Year        int              `json:"year" binding:"required"`
	SalesTarget *decimal.Decimal `json:"sales_target"`
	UnitsTarget int              `json:"units_target"`
}

// GoalResponse represents a monthly goal in API responses.
type GoalResponse struct {
	ID          string    `json:"id"`
	Month       int       `json:"month"`
	Year        int       `json:"year"`
	SalesTarget string    `json:"sales_target"`
	UnitsTarget int       `json:"units_target"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// ToGoalResponse converts a domain Goal entity to a GoalResponse DTO.
func ToGoalResponse(g *entity.Goal) GoalResponse {
	return GoalResponse{
		ID:          g.ID.String(),
		Month:       g.Month,
		Year:        g.Year,
		SalesTarget: g.SalesTarget.StringFixed(2),
		UnitsTarget: g.UnitsTarget,
		UpdatedAt:   g.UpdatedAt,
	}
}
