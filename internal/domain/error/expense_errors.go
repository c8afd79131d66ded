package error

import "errors"

// Expense domain errors.
var (
	// ErrExpenseNotFound is returned when an expense is not found.
	ErrExpenseNotFound = errors.New("expense not found")

	// ErrMissingExpenseFields is returned when date, category, value or payment method is absent.
	ErrMissingExpenseFields = errors.New("date, category, value and payment method are required")

	// ErrInvalidExpenseValue is returned when the value is not positive.
	ErrInvalidExpenseValue = errors.New("expense value must be greater than zero")

	// ErrCategorySuggestionUnavailable is returned when no AI provider is configured.
	ErrCategorySuggestionUnavailable = errors.New("category suggestion is not available")
)

// ExpenseErrorCode defines error codes for expense errors.
// Format: EXP-XXYYYY where XX is category and YYYY is specific error.
type ExpenseErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeMissingExpenseFields      ExpenseErrorCode = "EXP-010001"
	ErrCodeInvalidExpenseValue       ExpenseErrorCode = "EXP-010002"
	ErrCodeInvalidExpensePayment     ExpenseErrorCode = "EXP-010003"
	ErrCodeInvalidExpenseDate        ExpenseErrorCode = "EXP-010004"
	ErrCodeInvalidExpenseFilter      ExpenseErrorCode = "EXP-010005"
	ErrCodeInvalidExpenseID          ExpenseErrorCode = "EXP-010006"
	ErrCodeInvalidExpenseRequestBody ExpenseErrorCode = "EXP-010007"

	// Not found errors (02XXXX)
	ErrCodeExpenseNotFound ExpenseErrorCode = "EXP-020001"

	// Suggestion errors (03XXXX)
	ErrCodeSuggestionUnavailable ExpenseErrorCode = "EXP-030001"
	ErrCodeSuggestionFailed      ExpenseErrorCode = "EXP-030002"

	// Internal errors (99XXXX)
	ErrCodeExpenseInternalError ExpenseErrorCode = "EXP-990001"
)

// ExpenseError represents an expense error with code and message.
type ExpenseError struct {
	Code    ExpenseErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *ExpenseError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *ExpenseError) Unwrap() error {
	return e.Err
}

// NewExpenseError creates a new ExpenseError with the given code and message.
func NewExpenseError(code ExpenseErrorCode, message string, err error) *ExpenseError {
	return &ExpenseError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
