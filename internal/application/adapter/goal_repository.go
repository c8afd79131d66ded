package adapter

import (
	"context"

	"github.com/gestao-financeira/backend/internal/domain/entity"
)

// GoalRepository defines the interface for monthly goal persistence operations.
type GoalRepository interface {
	// FindByMonth retrieves the goal of a month, or domain ErrGoalNotFound.
	FindByMonth(ctx context.Context, month, year int) (*entity.Goal, error)

	// Create stores a new goal. A goal for the same month must not exist.
	Create(ctx context.Context, goal *entity.Goal) error

	// Upsert creates the goal or replaces the targets of the existing goal of
	// the same month. The stored goal is written back into goal.
	Upsert(ctx context.Context, goal *entity.Goal) error
}
