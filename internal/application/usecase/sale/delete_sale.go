package sale

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/gestao-financeira/backend/internal/application/adapter"
	domainerror "github.com/gestao-financeira/backend/internal/domain/error"
)

// DeleteSaleInput represents the input for sale deletion.
type DeleteSaleInput struct {
	SaleID uuid.UUID
}

// DeleteSaleOutput represents the output of sale deletion.
type DeleteSaleOutput struct {
	Message string
}

// DeleteSaleUseCase handles sale deletion logic.
type DeleteSaleUseCase struct {
	saleRepo adapter.SaleRepository
}

// NewDeleteSaleUseCase creates a new DeleteSaleUseCase instance.
func NewDeleteSaleUseCase(saleRepo adapter.SaleRepository) *DeleteSaleUseCase {
	return &DeleteSaleUseCase{saleRepo: saleRepo}
}

// Execute deletes the sale and its items.
func (uc *DeleteSaleUseCase) Execute(ctx context.Context, input DeleteSaleInput) (*DeleteSaleOutput, error) {
	if err := uc.saleRepo.Delete(ctx, input.SaleID); err != nil {
		if errors.Is(err, domainerror.ErrSaleNotFound) {
			return nil, notFound()
		}
		return nil, fmt.Errorf("failed to delete sale: %w", err)
	}
	slog.Info("Sale deleted", "sale_id", input.SaleID)
	return &DeleteSaleOutput{Message: "Venda excluída com sucesso"}, nil
}
