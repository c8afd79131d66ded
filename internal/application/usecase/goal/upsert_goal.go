package goal

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/shopspring/decimal"

	"github.com/gestao-financeira/backend/internal/application/adapter"
	"github.com/gestao-financeira/backend/internal/domain/entity"
	domainerror "github.com/gestao-financeira/backend/internal/domain/error"
)

// UpsertGoalInput represents the targets of a month.
type UpsertGoalInput struct {
	Month       int
	Year        int
	SalesTarget decimal.Decimal
	UnitsTarget int
}

// UpsertGoalOutput represents the stored goal.
type UpsertGoalOutput struct {
	Goal *entity.Goal
}

// UpsertGoalUseCase creates or replaces the goal of a month.
type UpsertGoalUseCase struct {
	goalRepo adapter.GoalRepository
}

// NewUpsertGoalUseCase creates a new UpsertGoalUseCase instance.
func NewUpsertGoalUseCase(goalRepo adapter.GoalRepository) *UpsertGoalUseCase {
	return &UpsertGoalUseCase{goalRepo: goalRepo}
}

// Execute performs the upsert.
func (uc *UpsertGoalUseCase) Execute(ctx context.Context, input UpsertGoalInput) (*UpsertGoalOutput, error) {
	if err := validMonth(input.Month, input.Year); err != nil {
		return nil, err
	}
	if input.SalesTarget.IsNegative() || input.UnitsTarget < 0 {
		return nil, domainerror.NewGoalError(
			domainerror.ErrCodeInvalidGoalTarget,
			domainerror.ErrInvalidGoalTarget.Error(),
			domainerror.ErrInvalidGoalTarget,
		)
	}

	goal := entity.NewGoal(input.Month, input.Year, input.SalesTarget, input.UnitsTarget)
	if err := uc.goalRepo.Upsert(ctx, goal); err != nil {
		return nil, fmt.Errorf("failed to save goal: %w", err)
	}

	slog.Info("Goal saved", "month", input.Month, "year", input.Year)

	return &UpsertGoalOutput{Goal: goal}, nil
}
