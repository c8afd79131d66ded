package error

import "errors"

// ErrInvalidMonthCount is returned when the series window is outside
// 1..the configured maximum.
var ErrInvalidMonthCount = errors.New("months must be between 1 and the configured maximum")

// DashboardErrorCode follows the DSH-XXYYYY scheme: 01 validation, 02 data.
type DashboardErrorCode string

const (
	ErrCodeInvalidDateRange  DashboardErrorCode = "DSH-010003"
	ErrCodeInvalidDateFormat DashboardErrorCode = "DSH-010006"
	ErrCodeInvalidMonthCount DashboardErrorCode = "DSH-010007"

	// ErrCodeDashboardFetchFailed wraps repository failures while loading the
	// dataset behind a panel.
	ErrCodeDashboardFetchFailed DashboardErrorCode = "DSH-020001"
)

// DashboardError is returned by the dashboard use cases.
type DashboardError struct {
	Code    DashboardErrorCode
	Message string
	Err     error
}

func NewDashboardError(code DashboardErrorCode, message string, err error) *DashboardError {
	return &DashboardError{Code: code, Message: message, Err: err}
}

func (e *DashboardError) Error() string {
	if e.Err == nil {
		return e.Message
	}
	return e.Message + ": " + e.Err.Error()
}

func (e *DashboardError) Unwrap() error { return e.Err }
