package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Goal is the monthly sales target, unique per (month, year).
type Goal struct {
	ID          uuid.UUID
	Month       int
	Year        int
	SalesTarget decimal.Decimal
	UnitsTarget int
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// NewGoal creates a Goal for the given month with the given targets.
func NewGoal(month, year int, salesTarget decimal.Decimal, unitsTarget int) *Goal {
	now := time.Now().UTC()
	return &Goal{
		ID:          uuid.New(),
		Month:       month,
		Year:        year,
		SalesTarget: salesTarget,
		UnitsTarget: unitsTarget,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// NewEmptyGoal creates the zero-target Goal used when a month has none yet.
func NewEmptyGoal(month, year int) *Goal {
	return NewGoal(month, year, decimal.Zero, 0)
}
