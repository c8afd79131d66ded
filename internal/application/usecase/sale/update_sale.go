package sale

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/gestao-financeira/backend/internal/application/adapter"
	"github.com/gestao-financeira/backend/internal/domain/aggregation"
	"github.com/gestao-financeira/backend/internal/domain/entity"
	domainerror "github.com/gestao-financeira/backend/internal/domain/error"
)

// UpdateSaleInput represents the input for sale update. Every field is replaced.
type UpdateSaleInput struct {
	SaleID uuid.UUID
	SaleFields
}

// UpdateSaleOutput represents the output of sale update.
type UpdateSaleOutput struct {
	Sale     *entity.Sale
	Warnings []aggregation.IntegrityWarning
}

// UpdateSaleUseCase handles sale update logic.
type UpdateSaleUseCase struct {
	saleRepo    adapter.SaleRepository
	productRepo adapter.ProductRepository
}

// NewUpdateSaleUseCase creates a new UpdateSaleUseCase instance.
func NewUpdateSaleUseCase(saleRepo adapter.SaleRepository, productRepo adapter.ProductRepository) *UpdateSaleUseCase {
	return &UpdateSaleUseCase{
		saleRepo:    saleRepo,
		productRepo: productRepo,
	}
}

// Execute performs the sale update.
func (uc *UpdateSaleUseCase) Execute(ctx context.Context, input UpdateSaleInput) (*UpdateSaleOutput, error) {
	sale, err := uc.saleRepo.FindByID(ctx, input.SaleID)
	if err != nil {
		if errors.Is(err, domainerror.ErrSaleNotFound) {
			return nil, notFound()
		}
		return nil, fmt.Errorf("failed to find sale: %w", err)
	}

	v, err := validate(ctx, uc.productRepo, input.SaleFields)
	if err != nil {
		return nil, err
	}

	for i := range v.items {
		v.items[i].ID = uuid.New()
	}

	sale.Date = v.date
	sale.Payee = v.payee
	sale.PaymentMethod = v.method
	sale.Status = v.status
	sale.Note = v.note
	sale.Items = v.items
	sale.Value = v.value
	if sale.Value.IsZero() {
		sale.Value = sale.ItemsTotal()
	}
	sale.UpdatedAt = time.Now().UTC()

	if err := uc.saleRepo.Update(ctx, sale); err != nil {
		if errors.Is(err, domainerror.ErrSaleNotFound) {
			return nil, notFound()
		}
		return nil, fmt.Errorf("failed to update sale: %w", err)
	}

	return &UpdateSaleOutput{
		Sale:     sale,
		Warnings: integrityWarnings(sale),
	}, nil
}
