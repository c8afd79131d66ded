package error

import "errors"

// Product domain errors.
var (
	// ErrProductNotFound is returned when a product is not found.
	ErrProductNotFound = errors.New("product not found")

	// ErrProductNameRequired is returned when the product name is blank.
	ErrProductNameRequired = errors.New("product name is required")

	// ErrInvalidProductPrice is returned when the price is negative.
	ErrInvalidProductPrice = errors.New("product price cannot be negative")

	// ErrInvalidProductStock is returned when the stock is negative.
	ErrInvalidProductStock = errors.New("product stock cannot be negative")
)

// ProductErrorCode defines error codes for product errors.
// Format: PRD-XXYYYY where XX is category and YYYY is specific error.
type ProductErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeProductNameRequired       ProductErrorCode = "PRD-010001"
	ErrCodeInvalidProductPrice       ProductErrorCode = "PRD-010002"
	ErrCodeInvalidProductStock       ProductErrorCode = "PRD-010003"
	ErrCodeInvalidProductID          ProductErrorCode = "PRD-010004"
	ErrCodeInvalidProductRequestBody ProductErrorCode = "PRD-010005"

	// Not found errors (02XXXX)
	ErrCodeProductNotFound ProductErrorCode = "PRD-020001"

	// Internal errors (99XXXX)
	ErrCodeProductInternalError ProductErrorCode = "PRD-990001"
)

// ProductError represents a product error with code and message.
type ProductError struct {
	Code    ProductErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *ProductError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *ProductError) Unwrap() error {
	return e.Err
}

// NewProductError creates a new ProductError with the given code and message.
func NewProductError(code ProductErrorCode, message string, err error) *ProductError {
	return &ProductError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
