// Package goal contains the monthly sales goal use cases.
package goal

import (
	domainerror "github.com/gestao-financeira/backend/internal/domain/error"
	"github.com/gestao-financeira/backend/internal/domain/valueobject"
)

// validMonth checks the (month, year) key of a goal.
func validMonth(month, year int) error {
	if month < 1 || month > 12 {
		return domainerror.NewGoalError(
			domainerror.ErrCodeInvalidGoalMonth,
			"month must be between 1 and 12",
			domainerror.ErrInvalidMonth,
		)
	}
	if _, err := valueobject.NewMonth(month, year); err != nil {
		return domainerror.NewGoalError(
			domainerror.ErrCodeInvalidGoalYear,
			"year must be between 2000 and 2100",
			domainerror.ErrInvalidYear,
		)
	}
	return nil
}
