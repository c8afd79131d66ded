package expense

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/gestao-financeira/backend/internal/application/adapter"
	"github.com/gestao-financeira/backend/internal/domain/aggregation"
	"github.com/gestao-financeira/backend/internal/domain/entity"
	domainerror "github.com/gestao-financeira/backend/internal/domain/error"
)

// ListExpensesInput represents the input for listing expenses.
type ListExpensesInput struct {
	Filter aggregation.Filter
}

// ListExpensesOutput holds the matching expenses, most recent first, and their total.
type ListExpensesOutput struct {
	Expenses []*entity.Expense
	Total    decimal.Decimal
}

// ListExpensesUseCase lists expenses matching a filter.
type ListExpensesUseCase struct {
	expenseRepo adapter.ExpenseRepository
	location    *time.Location
}

// NewListExpensesUseCase creates a new ListExpensesUseCase.
func NewListExpensesUseCase(expenseRepo adapter.ExpenseRepository, location *time.Location) *ListExpensesUseCase {
	if location == nil {
		location = time.UTC
	}
	return &ListExpensesUseCase{
		expenseRepo: expenseRepo,
		location:    location,
	}
}

// Execute lists the expenses.
func (uc *ListExpensesUseCase) Execute(ctx context.Context, input ListExpensesInput) (*ListExpensesOutput, error) {
	f := input.Filter
	if f.DateFrom != nil && f.DateTo != nil && f.DateTo.Before(*f.DateFrom) {
		return nil, domainerror.NewExpenseError(
			domainerror.ErrCodeInvalidExpenseFilter,
			domainerror.ErrInvalidDateRange.Error(),
			domainerror.ErrInvalidDateRange,
		)
	}

	expenses, err := uc.expenseRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list expenses: %w", err)
	}

	records := aggregation.InLocation(aggregation.FromExpenses(expenses), uc.location)
	matched := aggregation.Apply(records, f)

	byID := make(map[string]*entity.Expense, len(expenses))
	for _, e := range expenses {
		byID[e.ID.String()] = e
	}
	result := make([]*entity.Expense, 0, len(matched))
	for _, r := range matched {
		result = append(result, byID[r.ID])
	}

	return &ListExpensesOutput{
		Expenses: result,
		Total:    aggregation.Total(matched),
	}, nil
}
