package sale

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/gestao-financeira/backend/internal/application/adapter"
	"github.com/gestao-financeira/backend/internal/domain/aggregation"
	"github.com/gestao-financeira/backend/internal/domain/entity"
	domainerror "github.com/gestao-financeira/backend/internal/domain/error"
)

// ListSalesInput represents the input for listing sales.
type ListSalesInput struct {
	Filter aggregation.Filter
}

// ListSalesOutput holds the matching sales, most recent first, and their totals.
type ListSalesOutput struct {
	Sales    []*entity.Sale
	Total    decimal.Decimal
	Units    int
	Warnings []aggregation.IntegrityWarning
}

// ListSalesUseCase lists sales matching a filter.
type ListSalesUseCase struct {
	saleRepo adapter.SaleRepository
	location *time.Location
}

// NewListSalesUseCase creates a new ListSalesUseCase. Date filters are compared
// by calendar day in location.
func NewListSalesUseCase(saleRepo adapter.SaleRepository, location *time.Location) *ListSalesUseCase {
	if location == nil {
		location = time.UTC
	}
	return &ListSalesUseCase{
		saleRepo: saleRepo,
		location: location,
	}
}

// Execute lists the sales.
func (uc *ListSalesUseCase) Execute(ctx context.Context, input ListSalesInput) (*ListSalesOutput, error) {
	if input.Filter.DateFrom != nil && input.Filter.DateTo != nil && input.Filter.DateTo.Before(*input.Filter.DateFrom) {
		return nil, domainerror.NewSaleError(
			domainerror.ErrCodeInvalidSalePeriod,
			"date_to must not be before date_from",
			domainerror.ErrInvalidDateRange,
		)
	}

	sales, err := uc.saleRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list sales: %w", err)
	}

	records := aggregation.InLocation(aggregation.FromSales(sales), uc.location)
	matched := aggregation.Apply(records, input.Filter)

	byID := make(map[string]*entity.Sale, len(sales))
	for _, s := range sales {
		byID[s.ID.String()] = s
	}
	result := make([]*entity.Sale, 0, len(matched))
	for _, r := range matched {
		result = append(result, byID[r.ID])
	}

	return &ListSalesOutput{
		Sales:    result,
		Total:    aggregation.Total(matched),
		Units:    aggregation.TotalUnits(matched),
		Warnings: aggregation.CheckIntegrity(matched),
	}, nil
}
