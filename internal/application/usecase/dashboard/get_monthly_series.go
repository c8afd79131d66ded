package dashboard

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/gestao-financeira/backend/internal/application/usecase/dataset"
	"github.com/gestao-financeira/backend/internal/domain/aggregation"
	domainerror "github.com/gestao-financeira/backend/internal/domain/error"
	"github.com/gestao-financeira/backend/internal/domain/valueobject"
)

const (
	// DefaultSeriesMonths is used when no month count is requested.
	DefaultSeriesMonths = 6

	// DefaultMaxSeriesMonths caps the month count when no maximum is configured.
	DefaultMaxSeriesMonths = 24
)

// GetMonthlySeriesInput selects the number of trailing months. Zero uses the default.
type GetMonthlySeriesInput struct {
	Months int
}

// MonthlyPoint holds sales and expenses of one calendar month.
type MonthlyPoint struct {
	Month        int
	Year         int
	Sales        decimal.Decimal
	Expenses     decimal.Decimal
	Balance      decimal.Decimal
	SaleCount    int
	ExpenseCount int
	UnitsSold    int
}

// GetMonthlySeriesOutput is the zero-filled series, oldest month first.
type GetMonthlySeriesOutput struct {
	Points []MonthlyPoint
}

// GetMonthlySeriesUseCase builds the sales-versus-expenses monthly series.
type GetMonthlySeriesUseCase struct {
	loader    *dataset.Loader
	maxMonths int
	now       Clock
}

// NewGetMonthlySeriesUseCase creates a new GetMonthlySeriesUseCase.
func NewGetMonthlySeriesUseCase(loader *dataset.Loader, maxMonths int, now Clock) *GetMonthlySeriesUseCase {
	if maxMonths <= 0 {
		maxMonths = DefaultMaxSeriesMonths
	}
	if now == nil {
		now = time.Now
	}
	return &GetMonthlySeriesUseCase{
		loader:    loader,
		maxMonths: maxMonths,
		now:       now,
	}
}

// Execute builds the series ending at the current month.
func (uc *GetMonthlySeriesUseCase) Execute(ctx context.Context, input GetMonthlySeriesInput) (*GetMonthlySeriesOutput, error) {
	months := input.Months
	if months == 0 {
		months = DefaultSeriesMonths
	}
	if months < 0 || months > uc.maxMonths {
		return nil, domainerror.NewDashboardError(
			domainerror.ErrCodeInvalidMonthCount,
			fmt.Sprintf("months must be between 1 and %d", uc.maxMonths),
			domainerror.ErrInvalidMonthCount,
		)
	}

	loc := uc.loader.Location()
	now := uc.now().In(loc)
	current := valueobject.MonthOf(now)
	window := dataset.Window{
		From: current.AddMonths(1 - months).Start(loc),
		To:   current.AddMonths(1).Start(loc),
	}

	set, err := uc.loader.Load(ctx, window)
	if err != nil {
		return nil, fetchFailed(err)
	}

	return &GetMonthlySeriesOutput{
		Points: MergeSeries(
			aggregation.MonthSeries(set.SaleRecords, months, now),
			aggregation.MonthSeries(set.ExpenseRecords, months, now),
		),
	}, nil
}

// MergeSeries zips two series built over the same window.
func MergeSeries(sales, expenses []aggregation.MonthTotal) []MonthlyPoint {
	points := make([]MonthlyPoint, len(sales))
	for i, s := range sales {
		e := aggregation.MonthTotal{Total: decimal.Zero}
		if i < len(expenses) {
			e = expenses[i]
		}
		points[i] = MonthlyPoint{
			Month:        s.Month,
			Year:         s.Year,
			Sales:        s.Total,
			Expenses:     e.Total,
			Balance:      s.Total.Sub(e.Total),
			SaleCount:    s.Count,
			ExpenseCount: e.Count,
			UnitsSold:    s.Units,
		}
	}
	return points
}
