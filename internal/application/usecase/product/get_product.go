package product

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/gestao-financeira/backend/internal/application/adapter"
	"github.com/gestao-financeira/backend/internal/domain/entity"
	domainerror "github.com/gestao-financeira/backend/internal/domain/error"
)

// GetProductInput represents the input for loading a product.
type GetProductInput struct {
	ProductID uuid.UUID
}

// GetProductOutput represents the loaded product.
type GetProductOutput struct {
	Product *entity.Product
}

// GetProductUseCase loads a single product.
type GetProductUseCase struct {
	productRepo adapter.ProductRepository
}

// NewGetProductUseCase creates a new GetProductUseCase instance.
func NewGetProductUseCase(productRepo adapter.ProductRepository) *GetProductUseCase {
	return &GetProductUseCase{productRepo: productRepo}
}

// Execute loads the product.
func (uc *GetProductUseCase) Execute(ctx context.Context, input GetProductInput) (*GetProductOutput, error) {
	product, err := uc.productRepo.FindByID(ctx, input.ProductID)
	if err != nil {
		if errors.Is(err, domainerror.ErrProductNotFound) {
			return nil, notFound()
		}
		return nil, fmt.Errorf("failed to find product: %w", err)
	}
	return &GetProductOutput{Product: product}, nil
}
