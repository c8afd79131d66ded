package error

import "errors"

// Sale domain errors.
var (
	// ErrSaleNotFound is returned when a sale is not found.
	ErrSaleNotFound = errors.New("sale not found")

	// ErrSaleWithoutItems is returned when a sale has no line items.
	ErrSaleWithoutItems = errors.New("a sale must have at least one item")

	// ErrSaleProductNotFound is returned when a line item references a missing product.
	ErrSaleProductNotFound = errors.New("product not found")

	// ErrInvalidItemQuantity is returned when a line item quantity is not positive.
	ErrInvalidItemQuantity = errors.New("item quantity must be greater than zero")

	// ErrInvalidItemPrice is returned when a line item unit price is negative.
	ErrInvalidItemPrice = errors.New("item unit price cannot be negative")

	// ErrInvalidSaleValue is returned when the declared value is negative.
	ErrInvalidSaleValue = errors.New("sale value cannot be negative")

	// ErrInvalidPaymentMethod is returned when the payment method is not supported.
	ErrInvalidPaymentMethod = errors.New("payment method must be one of: cash, credit_card, debit_card, pix, transfer")

	// ErrInvalidSaleStatus is returned when the status is not supported.
	ErrInvalidSaleStatus = errors.New("status must be one of: pending, delivered, settled")

	// ErrInvalidMonth is returned when a month path parameter is outside 1..12.
	ErrInvalidMonth = errors.New("month must be between 1 and 12")

	// ErrInvalidYear is returned when a year path parameter is not plausible.
	ErrInvalidYear = errors.New("year must be between 2000 and 2100")
)

// SaleErrorCode defines error codes for sale errors.
// Format: SAL-XXYYYY where XX is category and YYYY is specific error.
type SaleErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeSaleWithoutItems       SaleErrorCode = "SAL-010001"
	ErrCodeSaleProductNotFound    SaleErrorCode = "SAL-010002"
	ErrCodeInvalidItemQuantity    SaleErrorCode = "SAL-010003"
	ErrCodeInvalidItemPrice       SaleErrorCode = "SAL-010004"
	ErrCodeInvalidSaleValue       SaleErrorCode = "SAL-010005"
	ErrCodeInvalidSalePayment     SaleErrorCode = "SAL-010006"
	ErrCodeInvalidSaleStatus      SaleErrorCode = "SAL-010007"
	ErrCodeInvalidSaleDate        SaleErrorCode = "SAL-010008"
	ErrCodeInvalidSalePeriod      SaleErrorCode = "SAL-010009"
	ErrCodeInvalidSaleFilter      SaleErrorCode = "SAL-010010"
	ErrCodeInvalidSaleID          SaleErrorCode = "SAL-010011"
	ErrCodeInvalidSaleRequestBody SaleErrorCode = "SAL-010012"

	// Not found errors (02XXXX)
	ErrCodeSaleNotFound SaleErrorCode = "SAL-020001"

	// Internal errors (99XXXX)
	ErrCodeSaleInternalError SaleErrorCode = "SAL-990001"
)

// SaleError represents a sale error with code and message.
type SaleError struct {
	Code    SaleErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *SaleError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *SaleError) Unwrap() error {
	return e.Err
}

// NewSaleError creates a new SaleError with the given code and message.
func NewSaleError(code SaleErrorCode, message string, err error) *SaleError {
	return &SaleError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
