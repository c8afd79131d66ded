package sale

import (
	"context"
	"fmt"
	"time"

	"github.com/gestao-financeira/backend/internal/application/adapter"
	"github.com/gestao-financeira/backend/internal/domain/aggregation"
	domainerror "github.com/gestao-financeira/backend/internal/domain/error"
	"github.com/gestao-financeira/backend/internal/domain/valueobject"
)

// DefaultSeriesMonths is the lookback of the monthly sale series.
const DefaultSeriesMonths = 6

// MonthlySeriesInput selects the last month of the series.
type MonthlySeriesInput struct {
	Month int
	Year  int
}

// MonthlySeriesOutput is the zero-filled value series, oldest month first.
type MonthlySeriesOutput struct {
	Points []aggregation.MonthTotal
}

// MonthlyUnitsOutput is the zero-filled units-sold series, oldest month first.
type MonthlyUnitsOutput struct {
	Points []aggregation.MonthUnits
}

// seriesWindow loads the sales of the months ending at input's month.
type seriesWindow struct {
	saleRepo adapter.SaleRepository
	months   int
	location *time.Location
}

func (w seriesWindow) load(ctx context.Context, input MonthlySeriesInput) ([]aggregation.Record, time.Time, error) {
	month, err := valueobject.NewMonth(input.Month, input.Year)
	if err != nil {
		code, sentinel := domainerror.ErrCodeInvalidSalePeriod, domainerror.ErrInvalidMonth
		if input.Month >= 1 && input.Month <= 12 {
			sentinel = domainerror.ErrInvalidYear
		}
		return nil, time.Time{}, domainerror.NewSaleError(code, sentinel.Error(), sentinel)
	}

	first := month.AddMonths(1 - w.months)
	from := first.Start(w.location)
	end := month.End(w.location)
	to := month.AddMonths(1).Start(w.location)

	sales, err := w.saleRepo.FindBetween(ctx, from, to)
	if err != nil {
		return nil, time.Time{}, fmt.Errorf("failed to load sales: %w", err)
	}

	return aggregation.InLocation(aggregation.FromSales(sales), w.location), end, nil
}

// GetMonthlySeriesUseCase returns sale value totals per month.
type GetMonthlySeriesUseCase struct {
	window seriesWindow
}

// NewGetMonthlySeriesUseCase creates a new GetMonthlySeriesUseCase. A
// non-positive months uses DefaultSeriesMonths.
func NewGetMonthlySeriesUseCase(saleRepo adapter.SaleRepository, months int, location *time.Location) *GetMonthlySeriesUseCase {
	return &GetMonthlySeriesUseCase{window: newSeriesWindow(saleRepo, months, location)}
}

// Execute builds the series.
func (uc *GetMonthlySeriesUseCase) Execute(ctx context.Context, input MonthlySeriesInput) (*MonthlySeriesOutput, error) {
	records, end, err := uc.window.load(ctx, input)
	if err != nil {
		return nil, err
	}
	return &MonthlySeriesOutput{
		Points: aggregation.MonthSeries(records, uc.window.months, end),
	}, nil
}

// GetMonthlyUnitsUseCase returns units sold per month.
type GetMonthlyUnitsUseCase struct {
	window seriesWindow
}

// NewGetMonthlyUnitsUseCase creates a new GetMonthlyUnitsUseCase.
func NewGetMonthlyUnitsUseCase(saleRepo adapter.SaleRepository, months int, location *time.Location) *GetMonthlyUnitsUseCase {
	return &GetMonthlyUnitsUseCase{window: newSeriesWindow(saleRepo, months, location)}
}

// Execute builds the series.
func (uc *GetMonthlyUnitsUseCase) Execute(ctx context.Context, input MonthlySeriesInput) (*MonthlyUnitsOutput, error) {
	records, end, err := uc.window.load(ctx, input)
	if err != nil {
		return nil, err
	}
	return &MonthlyUnitsOutput{
		Points: aggregation.UnitSeries(records, uc.window.months, end),
	}, nil
}

func newSeriesWindow(saleRepo adapter.SaleRepository, months int, location *time.Location) seriesWindow {
	if months <= 0 {
		months = DefaultSeriesMonths
	}
	if location == nil {
		location = time.UTC
	}
	return seriesWindow{saleRepo: saleRepo, months: months, location: location}
}
