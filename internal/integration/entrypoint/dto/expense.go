package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/gestao-financeira/backend/internal/application/usecase/expense"
	"github.com/gestao-financeira/backend/internal/domain/entity"
)

// ExpenseRequest represents the request body for expense creation and update.
type ExpenseRequest struct {
	Date          string           `json:"date" binding:"required"`
	Category      string           `json:"category" binding:"max=50"`
	Value         *decimal.Decimal `json:"value"`
	PaymentMethod string           `json:"payment_method" binding:"required"`
	Description   string           `json:"description,omitempty" binding:"omitempty,max=255"`
}

// SuggestCategoryRequest represents the request body for category suggestion.
type SuggestCategoryRequest struct {
	Description string `json:"description" binding:"required,min=1,max=255"`
}

// ExpenseResponse represents a single expense in API responses.
type ExpenseResponse struct {
	ID                 string    `json:"id"`
	Date               string    `json:"date"`
	Category           string    `json:"category"`
	Value              string    `json:"value"`
	PaymentMethod      string    `json:"payment_method"`
	PaymentMethodLabel string    `json:"payment_method_label"`
	Description        string    `json:"description"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}

// ExpenseListResponse represents the response for listing expenses.
type ExpenseListResponse struct {
	Expenses []ExpenseResponse `json:"expenses"`
	Total    string            `json:"total"`
	Count    int               `json:"count"`
}

// SuggestCategoryResponse represents a category suggestion.
type SuggestCategoryResponse struct {
	Category   string  `json:"category"`
	Confidence float64 `json:"confidence"`
	Reasoning  string  `json:"reasoning,omitempty"`
}

// ToExpenseResponse converts a domain Expense entity to an ExpenseResponse DTO.
func ToExpenseResponse(e *entity.Expense) ExpenseResponse {
	return ExpenseResponse{
		ID:                 e.ID.String(),
		Date:               e.Date.Format(DateLayout),
		Category:           e.Category,
		Value:              e.Value.StringFixed(2),
		PaymentMethod:      string(e.PaymentMethod),
		PaymentMethodLabel: e.PaymentMethod.Label(),
		Description:        e.Description,
		CreatedAt:          e.CreatedAt,
		UpdatedAt:          e.UpdatedAt,
	}
}

// ToExpenseListResponse converts the list use case output.
func ToExpenseListResponse(output *expense.ListExpensesOutput) ExpenseListResponse {
	expenses := make([]ExpenseResponse, len(output.Expenses))
	for i, e := range output.Expenses {
		expenses[i] = ToExpenseResponse(e)
	}
	return ExpenseListResponse{
		Expenses: expenses,
		Total:    output.Total.StringFixed(2),
		Count:    len(expenses),
	}
}
