package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Expense represents a cost transaction.
type Expense struct {
	ID            uuid.UUID
	Date          time.Time
	Category      string
	Value         decimal.Decimal
	PaymentMethod PaymentMethod
	Description   string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// NewExpense creates a new Expense entity.
func NewExpense(date time.Time, category string, value decimal.Decimal, method PaymentMethod, description string) *Expense {
	now := time.Now().UTC()
	return &Expense{
		ID:            uuid.New(),
		Date:          date,
		Category:      category,
		Value:         value,
		PaymentMethod: method,
		Description:   description,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}
