package sale

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/gestao-financeira/backend/internal/application/adapter"
	"github.com/gestao-financeira/backend/internal/domain/aggregation"
	"github.com/gestao-financeira/backend/internal/domain/entity"
)

// CreateSaleInput represents the input for sale creation.
type CreateSaleInput struct {
	SaleFields
}

// CreateSaleOutput represents the output of sale creation. Warnings is non-empty
// when the declared value disagrees with the line items; the sale is stored anyway.
type CreateSaleOutput struct {
	Sale     *entity.Sale
	Warnings []aggregation.IntegrityWarning
}

// CreateSaleUseCase handles sale creation logic.
type CreateSaleUseCase struct {
	saleRepo    adapter.SaleRepository
	productRepo adapter.ProductRepository
}

// NewCreateSaleUseCase creates a new CreateSaleUseCase instance.
func NewCreateSaleUseCase(saleRepo adapter.SaleRepository, productRepo adapter.ProductRepository) *CreateSaleUseCase {
	return &CreateSaleUseCase{
		saleRepo:    saleRepo,
		productRepo: productRepo,
	}
}

// Execute performs the sale creation.
func (uc *CreateSaleUseCase) Execute(ctx context.Context, input CreateSaleInput) (*CreateSaleOutput, error) {
	v, err := validate(ctx, uc.productRepo, input.SaleFields)
	if err != nil {
		return nil, err
	}

	sale := entity.NewSale(v.date, v.payee, v.value, v.method, v.status, v.note, v.items)

	if err := uc.saleRepo.Create(ctx, sale); err != nil {
		return nil, fmt.Errorf("failed to create sale: %w", err)
	}

	slog.Info("Sale created", "sale_id", sale.ID, "items", len(sale.Items))

	return &CreateSaleOutput{
		Sale:     sale,
		Warnings: integrityWarnings(sale),
	}, nil
}
