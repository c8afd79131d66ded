// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/gestao-financeira/backend/internal/domain/entity"
)

// SaleRepository defines the interface for sale persistence operations.
// Sales are always loaded with their line items.
type SaleRepository interface {
	// Create stores a sale and its items in a single transaction.
	Create(ctx context.Context, sale *entity.Sale) error

	// FindByID retrieves a sale by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Sale, error)

	// FindAll retrieves every sale, most recent first.
	FindAll(ctx context.Context) ([]*entity.Sale, error)

	// FindBetween retrieves sales dated in [from, to), most recent first.
	FindBetween(ctx context.Context, from, to time.Time) ([]*entity.Sale, error)

	// Update replaces a sale and its items.
	Update(ctx context.Context, sale *entity.Sale) error

	// Delete removes a sale and its items.
	Delete(ctx context.Context, id uuid.UUID) error
}
