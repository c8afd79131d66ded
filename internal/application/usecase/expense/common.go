// Package expense contains expense-related use cases.
package expense

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/gestao-financeira/backend/internal/domain/entity"
	domainerror "github.com/gestao-financeira/backend/internal/domain/error"
)

// ExpenseFields holds the editable fields of an expense.
type ExpenseFields struct {
	Date          time.Time
	Category      string
	Value         *decimal.Decimal
	PaymentMethod string
	Description   string
}

type validatedExpense struct {
	date        time.Time
	category    string
	value       decimal.Decimal
	method      entity.PaymentMethod
	description string
}

func validate(fields ExpenseFields) (*validatedExpense, error) {
	category := strings.TrimSpace(fields.Category)
	if fields.Date.IsZero() || category == "" || fields.Value == nil || strings.TrimSpace(fields.PaymentMethod) == "" {
		return nil, domainerror.NewExpenseError(
			domainerror.ErrCodeMissingExpenseFields,
			domainerror.ErrMissingExpenseFields.Error(),
			domainerror.ErrMissingExpenseFields,
		)
	}

	if !fields.Value.IsPositive() {
		return nil, domainerror.NewExpenseError(
			domainerror.ErrCodeInvalidExpenseValue,
			domainerror.ErrInvalidExpenseValue.Error(),
			domainerror.ErrInvalidExpenseValue,
		)
	}

	method, ok := entity.ParsePaymentMethod(fields.PaymentMethod)
	if !ok {
		return nil, domainerror.NewExpenseError(
			domainerror.ErrCodeInvalidExpensePayment,
			domainerror.ErrInvalidPaymentMethod.Error(),
			domainerror.ErrInvalidPaymentMethod,
		)
	}

	return &validatedExpense{
		date:        fields.Date.UTC(),
		category:    category,
		value:       *fields.Value,
		method:      method,
		description: strings.TrimSpace(fields.Description),
	}, nil
}

func notFound() error {
	return domainerror.NewExpenseError(
		domainerror.ErrCodeExpenseNotFound,
		"expense not found",
		domainerror.ErrExpenseNotFound,
	)
}
