package error

import "errors"

// Period errors are shared by every listing, dashboard and report that takes
// a date_from/date_to pair.
var (
	ErrInvalidDateFormat = errors.New("invalid date format, expected YYYY-MM-DD")
	ErrInvalidDateRange  = errors.New("date_to must not be before date_from")
)
