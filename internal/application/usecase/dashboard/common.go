// Package dashboard contains dashboard-related use cases.
package dashboard

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/gestao-financeira/backend/internal/application/adapter"
	"github.com/gestao-financeira/backend/internal/domain/entity"
	domainerror "github.com/gestao-financeira/backend/internal/domain/error"
)

// Clock returns the current time. Tests replace it.
type Clock func() time.Time

func fetchFailed(err error) error {
	return domainerror.NewDashboardError(
		domainerror.ErrCodeDashboardFetchFailed,
		"failed to load dashboard data",
		err,
	)
}

// currentGoal returns the goal of the month of now without creating it.
func currentGoal(ctx context.Context, goalRepo adapter.GoalRepository, now time.Time) (*entity.Goal, error) {
	month, year := int(now.Month()), now.Year()
	goal, err := goalRepo.FindByMonth(ctx, month, year)
	if err != nil {
		if errors.Is(err, domainerror.ErrGoalNotFound) {
			return entity.NewEmptyGoal(month, year), nil
		}
		return nil, fmt.Errorf("failed to load goal: %w", err)
	}
	return goal, nil
}
