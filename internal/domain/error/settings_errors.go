package error

import "errors"

// Company settings errors.
var (
	// ErrSettingsNotFound is returned before company settings are first saved.
	ErrSettingsNotFound = errors.New("company settings not found")

	// ErrLogoMissing is returned when an upload carries no file.
	ErrLogoMissing = errors.New("no logo file sent")

	// ErrLogoTooLarge is returned when the logo exceeds the configured size.
	ErrLogoTooLarge = errors.New("logo file is too large")

	// ErrLogoUnsupportedType is returned for anything other than png or jpeg.
	ErrLogoUnsupportedType = errors.New("logo must be a png or jpeg image")

	// ErrLogoNotFound is returned when no logo was uploaded yet.
	ErrLogoNotFound = errors.New("no logo uploaded")

	// ErrObjectNotFound is returned by object storage for a missing key.
	ErrObjectNotFound = errors.New("object not found")
)

// SettingsErrorCode defines error codes for settings errors.
// Format: CFG-XXYYYY where XX is category and YYYY is specific error.
type SettingsErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeLogoMissing                SettingsErrorCode = "CFG-010001"
	ErrCodeLogoTooLarge               SettingsErrorCode = "CFG-010002"
	ErrCodeLogoUnsupportedType        SettingsErrorCode = "CFG-010003"
	ErrCodeInvalidSettingsRequestBody SettingsErrorCode = "CFG-010004"

	// Not found errors (02XXXX)
	ErrCodeLogoNotFound SettingsErrorCode = "CFG-020001"

	// Storage errors (03XXXX)
	ErrCodeLogoStorageFailed SettingsErrorCode = "CFG-030001"

	// Internal errors (99XXXX)
	ErrCodeSettingsInternalError SettingsErrorCode = "CFG-990001"
)

// SettingsError represents a settings error with code and message.
type SettingsError struct {
	Code    SettingsErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *SettingsError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *SettingsError) Unwrap() error {
	return e.Err
}

// NewSettingsError creates a new SettingsError with the given code and message.
func NewSettingsError(code SettingsErrorCode, message string, err error) *SettingsError {
	return &SettingsError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
