package goal

import (
	"context"
	"errors"
	"fmt"

	"github.com/gestao-financeira/backend/internal/application/adapter"
	"github.com/gestao-financeira/backend/internal/domain/entity"
	domainerror "github.com/gestao-financeira/backend/internal/domain/error"
)

// GetGoalInput selects the goal of a month.
type GetGoalInput struct {
	Month int
	Year  int
}

// GetGoalOutput represents the output of getting a goal.
type GetGoalOutput struct {
	Goal *entity.Goal
}

// GetGoalUseCase returns the goal of a month, creating an empty one on first access.
type GetGoalUseCase struct {
	goalRepo adapter.GoalRepository
}

// NewGetGoalUseCase creates a new GetGoalUseCase instance.
func NewGetGoalUseCase(goalRepo adapter.GoalRepository) *GetGoalUseCase {
	return &GetGoalUseCase{goalRepo: goalRepo}
}

// Execute performs the goal retrieval.
func (uc *GetGoalUseCase) Execute(ctx context.Context, input GetGoalInput) (*GetGoalOutput, error) {
	if err := validMonth(input.Month, input.Year); err != nil {
		return nil, err
	}

	goal, err := uc.goalRepo.FindByMonth(ctx, input.Month, input.Year)
	if err == nil {
		return &GetGoalOutput{Goal: goal}, nil
	}
	if !errors.Is(err, domainerror.ErrGoalNotFound) {
		return nil, fmt.Errorf("failed to find goal: %w", err)
	}

	// A concurrent request may create the same month first; Create ignores the
	// conflict and the goal is read back.
	if err := uc.goalRepo.Create(ctx, entity.NewEmptyGoal(input.Month, input.Year)); err != nil {
		return nil, fmt.Errorf("failed to create goal: %w", err)
	}
	goal, err = uc.goalRepo.FindByMonth(ctx, input.Month, input.Year)
	if err != nil {
		return nil, fmt.Errorf("failed to find goal: %w", err)
	}
	return &GetGoalOutput{Goal: goal}, nil
}
