package sale

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/gestao-financeira/backend/internal/application/adapter"
	"github.com/gestao-financeira/backend/internal/domain/aggregation"
	"github.com/gestao-financeira/backend/internal/domain/entity"
	domainerror "github.com/gestao-financeira/backend/internal/domain/error"
)

// GetSaleInput represents the input for loading one sale.
type GetSaleInput struct {
	SaleID uuid.UUID
}

// GetSaleOutput represents a sale with its integrity check.
type GetSaleOutput struct {
	Sale     *entity.Sale
	Warnings []aggregation.IntegrityWarning
}

// GetSaleUseCase loads one sale.
type GetSaleUseCase struct {
	saleRepo adapter.SaleRepository
}

// NewGetSaleUseCase creates a new GetSaleUseCase instance.
func NewGetSaleUseCase(saleRepo adapter.SaleRepository) *GetSaleUseCase {
	return &GetSaleUseCase{saleRepo: saleRepo}
}

// Execute loads the sale.
func (uc *GetSaleUseCase) Execute(ctx context.Context, input GetSaleInput) (*GetSaleOutput, error) {
	sale, err := uc.saleRepo.FindByID(ctx, input.SaleID)
	if err != nil {
		if errors.Is(err, domainerror.ErrSaleNotFound) {
			return nil, notFound()
		}
		return nil, fmt.Errorf("failed to find sale: %w", err)
	}
	return &GetSaleOutput{
		Sale:     sale,
		Warnings: aggregation.CheckIntegrity([]aggregation.Record{aggregation.FromSale(sale)}),
	}, nil
}
