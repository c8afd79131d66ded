package dashboard

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/gestao-financeira/backend/internal/application/usecase/dataset"
	"github.com/gestao-financeira/backend/internal/domain/aggregation"
	domainerror "github.com/gestao-financeira/backend/internal/domain/error"
)

// GetCategoryBreakdownInput bounds the breakdown by inclusive calendar days.
type GetCategoryBreakdownInput struct {
	DateFrom *time.Time
	DateTo   *time.Time
}

// CategoryShare is one category of the breakdown.
type CategoryShare struct {
	Category   string
	Total      decimal.Decimal
	Count      int
	Percentage float64
}

// GetCategoryBreakdownOutput represents expenses by category, largest first.
type GetCategoryBreakdownOutput struct {
	Total      decimal.Decimal
	Categories []CategoryShare
}

// GetCategoryBreakdownUseCase groups expenses by category.
type GetCategoryBreakdownUseCase struct {
	loader *dataset.Loader
}

// NewGetCategoryBreakdownUseCase creates a new GetCategoryBreakdownUseCase instance.
func NewGetCategoryBreakdownUseCase(loader *dataset.Loader) *GetCategoryBreakdownUseCase {
	return &GetCategoryBreakdownUseCase{loader: loader}
}

// Execute builds the breakdown.
func (uc *GetCategoryBreakdownUseCase) Execute(ctx context.Context, input GetCategoryBreakdownInput) (*GetCategoryBreakdownOutput, error) {
	if input.DateFrom != nil && input.DateTo != nil && input.DateTo.Before(*input.DateFrom) {
		return nil, domainerror.NewDashboardError(
			domainerror.ErrCodeInvalidDateRange,
			domainerror.ErrInvalidDateRange.Error(),
			domainerror.ErrInvalidDateRange,
		)
	}

	set, err := uc.loader.Load(ctx, dataset.DayWindow(input.DateFrom, input.DateTo, uc.loader.Location()))
	if err != nil {
		return nil, fetchFailed(err)
	}

	records := aggregation.Apply(set.ExpenseRecords, aggregation.Filter{DateFrom: input.DateFrom, DateTo: input.DateTo})
	groups := aggregation.SumBy(records, aggregation.ByCategory).SortedByTotal()
	total := groups.Total()

	return &GetCategoryBreakdownOutput{
		Total:      total,
		Categories: Shares(groups, total),
	}, nil
}

// Shares converts groups to category shares of total.
func Shares(groups aggregation.Groups, total decimal.Decimal) []CategoryShare {
	shares := make([]CategoryShare, len(groups))
	for i, g := range groups {
		shares[i] = CategoryShare{
			Category:   g.Key,
			Total:      g.Total,
			Count:      g.Count,
			Percentage: aggregation.Percentage(g.Total, total),
		}
	}
	return shares
}
