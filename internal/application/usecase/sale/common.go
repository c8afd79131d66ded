// Package sale contains sale-related use cases.
package sale

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/gestao-financeira/backend/internal/application/adapter"
	"github.com/gestao-financeira/backend/internal/domain/aggregation"
	"github.com/gestao-financeira/backend/internal/domain/entity"
	domainerror "github.com/gestao-financeira/backend/internal/domain/error"
)

// ItemInput is a line item as submitted by the client. A nil UnitPrice uses the
// product's current price.
type ItemInput struct {
	ProductID uuid.UUID
	Quantity  int
	UnitPrice *decimal.Decimal
}

// SaleFields holds the editable fields of a sale. A zero Date means "now" and a
// nil Value means "derive from the items".
type SaleFields struct {
	Date          time.Time
	Payee         string
	Value         *decimal.Decimal
	PaymentMethod string
	Status        string
	Note          string
	Items         []ItemInput
}

type validatedSale struct {
	date   time.Time
	payee  string
	value  decimal.Decimal
	method entity.PaymentMethod
	status entity.SaleStatus
	note   string
	items  []entity.SaleItem
}

// validate checks the fields and resolves every item's product.
func validate(ctx context.Context, products adapter.ProductRepository, fields SaleFields) (*validatedSale, error) {
	if len(fields.Items) == 0 {
		return nil, domainerror.NewSaleError(
			domainerror.ErrCodeSaleWithoutItems,
			"a sale must have at least one item",
			domainerror.ErrSaleWithoutItems,
		)
	}

	method, ok := entity.ParsePaymentMethod(fields.PaymentMethod)
	if !ok {
		return nil, domainerror.NewSaleError(
			domainerror.ErrCodeInvalidSalePayment,
			domainerror.ErrInvalidPaymentMethod.Error(),
			domainerror.ErrInvalidPaymentMethod,
		)
	}

	status := entity.SaleStatusPending
	if strings.TrimSpace(fields.Status) != "" {
		status, ok = entity.ParseSaleStatus(fields.Status)
		if !ok {
			return nil, domainerror.NewSaleError(
				domainerror.ErrCodeInvalidSaleStatus,
				domainerror.ErrInvalidSaleStatus.Error(),
				domainerror.ErrInvalidSaleStatus,
			)
		}
	}

	value := decimal.Zero
	if fields.Value != nil {
		if fields.Value.IsNegative() {
			return nil, domainerror.NewSaleError(
				domainerror.ErrCodeInvalidSaleValue,
				domainerror.ErrInvalidSaleValue.Error(),
				domainerror.ErrInvalidSaleValue,
			)
		}
		value = *fields.Value
	}

	ids := make([]uuid.UUID, 0, len(fields.Items))
	for _, item := range fields.Items {
		if item.Quantity <= 0 {
			return nil, domainerror.NewSaleError(
				domainerror.ErrCodeInvalidItemQuantity,
				domainerror.ErrInvalidItemQuantity.Error(),
				domainerror.ErrInvalidItemQuantity,
			)
		}
		if item.UnitPrice != nil && item.UnitPrice.IsNegative() {
			return nil, domainerror.NewSaleError(
				domainerror.ErrCodeInvalidItemPrice,
				domainerror.ErrInvalidItemPrice.Error(),
				domainerror.ErrInvalidItemPrice,
			)
		}
		ids = append(ids, item.ProductID)
	}

	found, err := products.FindByIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to load products: %w", err)
	}

	items := make([]entity.SaleItem, 0, len(fields.Items))
	for _, item := range fields.Items {
		product, ok := found[item.ProductID]
		if !ok {
			return nil, domainerror.NewSaleError(
				domainerror.ErrCodeSaleProductNotFound,
				fmt.Sprintf("product not found: %s", item.ProductID),
				domainerror.ErrSaleProductNotFound,
			)
		}
		price := product.Price
		if item.UnitPrice != nil {
			price = *item.UnitPrice
		}
		items = append(items, entity.SaleItem{
			ProductID:   product.ID,
			ProductName: product.Name,
			Quantity:    item.Quantity,
			UnitPrice:   price,
		})
	}

	date := fields.Date
	if date.IsZero() {
		date = time.Now()
	}

	return &validatedSale{
		date:   date.UTC(),
		payee:  strings.TrimSpace(fields.Payee),
		value:  value,
		method: method,
		status: status,
		note:   strings.TrimSpace(fields.Note),
		items:  items,
	}, nil
}

// integrityWarnings checks a single sale and logs any mismatch.
func integrityWarnings(sale *entity.Sale) []aggregation.IntegrityWarning {
	warnings := aggregation.CheckIntegrity([]aggregation.Record{aggregation.FromSale(sale)})
	for _, w := range warnings {
		slog.Warn("Sale declared value differs from its items",
			"sale_id", w.RecordID,
			"declared", w.Declared.StringFixed(2),
			"derived", w.Derived.StringFixed(2),
		)
	}
	return warnings
}

func notFound() error {
	return domainerror.NewSaleError(
		domainerror.ErrCodeSaleNotFound,
		"sale not found",
		domainerror.ErrSaleNotFound,
	)
}
