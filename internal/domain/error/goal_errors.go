package error

import "errors"

// Goal domain errors.
var (
	// ErrGoalNotFound is returned when no goal exists for a month.
	ErrGoalNotFound = errors.New("goal not found")

	// ErrInvalidGoalTarget is returned when a target is negative.
	ErrInvalidGoalTarget = errors.New("goal targets cannot be negative")
)

// GoalErrorCode defines error codes for goal errors.
// Format: GOL-XXYYYY where XX is category and YYYY is specific error.
type GoalErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeInvalidGoalMonth       GoalErrorCode = "GOL-010001"
	ErrCodeInvalidGoalYear        GoalErrorCode = "GOL-010002"
	ErrCodeInvalidGoalTarget      GoalErrorCode = "GOL-010003"
	ErrCodeInvalidGoalRequestBody GoalErrorCode = "GOL-010004"

	// Not found errors (02XXXX)
	ErrCodeGoalNotFound GoalErrorCode = "GOL-020001"

	// Internal errors (99XXXX)
	ErrCodeGoalInternalError GoalErrorCode = "GOL-990001"
)

// GoalError represents a goal error with code and message.
type GoalError struct {
	Code    GoalErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *GoalError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *GoalError) Unwrap() error {
	return e.Err
}

// NewGoalError creates a new GoalError with the given code and message.
func NewGoalError(code GoalErrorCode, message string, err error) *GoalError {
	return &GoalError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
