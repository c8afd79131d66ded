package error

import "errors"

// Report domain errors.
var (
	// ErrInvalidReportType is returned for an unknown report type.
	ErrInvalidReportType = errors.New("report type must be one of: sales, expenses, overview")

	// ErrInvalidReportFormat is returned for an unknown export format.
	ErrInvalidReportFormat = errors.New("format must be one of: pdf, xlsx, txt")

	// ErrRendererNotFound is returned when no renderer is registered for a format.
	ErrRendererNotFound = errors.New("no renderer registered for format")
)

// ReportErrorCode defines error codes for report errors.
// Format: RPT-XXYYYY where XX is category and YYYY is specific error.
type ReportErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeInvalidReportType   ReportErrorCode = "RPT-010001"
	ErrCodeInvalidReportFormat ReportErrorCode = "RPT-010002"
	ErrCodeInvalidReportFilter ReportErrorCode = "RPT-010003"

	// Data errors (02XXXX)
	ErrCodeReportFetchFailed ReportErrorCode = "RPT-020001"

	// Rendering errors (03XXXX)
	ErrCodeReportRenderFailed ReportErrorCode = "RPT-030001"

	// Internal errors (99XXXX)
	ErrCodeReportInternalError ReportErrorCode = "RPT-990001"
)

// ReportError represents a report error with code and message.
type ReportError struct {
	Code    ReportErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *ReportError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *ReportError) Unwrap() error {
	return e.Err
}

// NewReportError creates a new ReportError with the given code and message.
func NewReportError(code ReportErrorCode, message string, err error) *ReportError {
	return &ReportError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
