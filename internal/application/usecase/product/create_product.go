package product

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/gestao-financeira/backend/internal/application/adapter"
	"github.com/gestao-financeira/backend/internal/domain/entity"
)

// CreateProductInput represents the input for product creation.
type CreateProductInput struct {
	ProductFields
}

// CreateProductOutput represents the output of product creation.
type CreateProductOutput struct {
	Product *entity.Product
}

// CreateProductUseCase handles product creation logic.
type CreateProductUseCase struct {
	productRepo adapter.ProductRepository
}

// NewCreateProductUseCase creates a new CreateProductUseCase instance.
func NewCreateProductUseCase(productRepo adapter.ProductRepository) *CreateProductUseCase {
	return &CreateProductUseCase{productRepo: productRepo}
}

// Execute performs the product creation.
func (uc *CreateProductUseCase) Execute(ctx context.Context, input CreateProductInput) (*CreateProductOutput, error) {
	fields, price, err := input.validate()
	if err != nil {
		return nil, err
	}

	product := entity.NewProduct(fields.Name, fields.Description, price, fields.Stock, fields.Category)
	if err := uc.productRepo.Create(ctx, product); err != nil {
		return nil, fmt.Errorf("failed to create product: %w", err)
	}

	slog.Info("Product created", "product_id", product.ID)

	return &CreateProductOutput{Product: product}, nil
}
