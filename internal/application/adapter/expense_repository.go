package adapter

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/gestao-financeira/backend/internal/domain/entity"
)

// ExpenseRepository defines the interface for expense persistence operations.
type ExpenseRepository interface {
	Create(ctx context.Context, expense *entity.Expense) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Expense, error)

	// FindAll retrieves every expense, most recent first.
	FindAll(ctx context.Context) ([]*entity.Expense, error)

	// FindBetween retrieves expenses dated in [from, to), most recent first.
	FindBetween(ctx context.Context, from, to time.Time) ([]*entity.Expense, error)

	Update(ctx context.Context, expense *entity.Expense) error
	Delete(ctx context.Context, id uuid.UUID) error
}
