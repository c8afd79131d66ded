package error

import "errors"

// Expense category preference errors.
var (
	// ErrCategoryPreferencesNotFound is returned when a user never saved a category list.
	ErrCategoryPreferencesNotFound = errors.New("category preferences not found")

	// ErrEmptyCategoryList is returned when saving a list with no usable names.
	ErrEmptyCategoryList = errors.New("at least one category is required")

	// ErrTooManyCategories is returned when the list exceeds the maximum size.
	ErrTooManyCategories = errors.New("too many categories")

	// ErrCategoryNameTooLong is returned when a name exceeds the maximum length.
	ErrCategoryNameTooLong = errors.New("category name is too long")
)

// CategoryErrorCode defines error codes for category errors.
// Format: CAT-XXYYYY where XX is category and YYYY is specific error.
type CategoryErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeEmptyCategoryList          CategoryErrorCode = "CAT-010001"
	ErrCodeTooManyCategories          CategoryErrorCode = "CAT-010002"
	ErrCodeCategoryNameTooLong        CategoryErrorCode = "CAT-010003"
	ErrCodeInvalidCategoryRequestBody CategoryErrorCode = "CAT-010004"

	// Internal errors (99XXXX)
	ErrCodeCategoryInternalError CategoryErrorCode = "CAT-990001"
)

// CategoryError represents a category error with code and message.
type CategoryError struct {
	Code    CategoryErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *CategoryError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *CategoryError) Unwrap() error {
	return e.Err
}

// NewCategoryError creates a new CategoryError with the given code and message.
func NewCategoryError(code CategoryErrorCode, message string, err error) *CategoryError {
	return &CategoryError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
