// Package product contains product catalogue use cases.
package product

import (
	"strings"

	"github.com/shopspring/decimal"

	domainerror "github.com/gestao-financeira/backend/internal/domain/error"
)

// ProductFields holds the editable fields of a product. A nil Price is zero.
type ProductFields struct {
	Name        string
	Description string
	Price       *decimal.Decimal
	Stock       int
	Category    string
}

func (f ProductFields) validate() (ProductFields, decimal.Decimal, error) {
	f.Name = strings.TrimSpace(f.Name)
	f.Description = strings.TrimSpace(f.Description)
	f.Category = strings.TrimSpace(f.Category)

	if f.Name == "" {
		return f, decimal.Zero, domainerror.NewProductError(
			domainerror.ErrCodeProductNameRequired,
			domainerror.ErrProductNameRequired.Error(),
			domainerror.ErrProductNameRequired,
		)
	}

	price := decimal.Zero
	if f.Price != nil {
		price = *f.Price
	}
	if price.IsNegative() {
		return f, decimal.Zero, domainerror.NewProductError(
			domainerror.ErrCodeInvalidProductPrice,
			domainerror.ErrInvalidProductPrice.Error(),
			domainerror.ErrInvalidProductPrice,
		)
	}
	if f.Stock < 0 {
		return f, decimal.Zero, domainerror.NewProductError(
			domainerror.ErrCodeInvalidProductStock,
			domainerror.ErrInvalidProductStock.Error(),
			domainerror.ErrInvalidProductStock,
		)
	}
	return f, price, nil
}

func notFound() error {
	return domainerror.NewProductError(
		domainerror.ErrCodeProductNotFound,
		"product not found",
		domainerror.ErrProductNotFound,
	)
}
