package dashboard

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/gestao-financeira/backend/internal/application/adapter"
	"github.com/gestao-financeira/backend/internal/application/usecase/dataset"
	"github.com/gestao-financeira/backend/internal/domain/aggregation"
	"github.com/gestao-financeira/backend/internal/domain/entity"
	"github.com/gestao-financeira/backend/internal/domain/valueobject"
)

// DefaultRecentLimit is the number of latest sales and expenses on the dashboard.
const DefaultRecentLimit = 10

// GoalStatus is the current month's goal with the progress made so far.
type GoalStatus struct {
	Goal          *entity.Goal
	SalesActual   decimal.Decimal
	UnitsActual   int
	SalesProgress float64
	UnitsProgress float64
}

// GetSummaryOutput represents the dashboard overview.
type GetSummaryOutput struct {
	SalesTotal     decimal.Decimal
	ExpensesTotal  decimal.Decimal
	Balance        decimal.Decimal
	SaleCount      int
	ExpenseCount   int
	UnitsSold      int
	RecentSales    []aggregation.Record
	RecentExpenses []aggregation.Record
	CurrentGoal    GoalStatus
	Warnings       []aggregation.IntegrityWarning
	GeneratedAt    time.Time
}

// GetSummaryUseCase builds the dashboard overview over every record.
type GetSummaryUseCase struct {
	loader      *dataset.Loader
	goalRepo    adapter.GoalRepository
	recentLimit int
	now         Clock
}

// NewGetSummaryUseCase creates a new GetSummaryUseCase. A non-positive
// recentLimit uses DefaultRecentLimit.
func NewGetSummaryUseCase(loader *dataset.Loader, goalRepo adapter.GoalRepository, recentLimit int, now Clock) *GetSummaryUseCase {
	if recentLimit <= 0 {
		recentLimit = DefaultRecentLimit
	}
	if now == nil {
		now = time.Now
	}
	return &GetSummaryUseCase{
		loader:      loader,
		goalRepo:    goalRepo,
		recentLimit: recentLimit,
		now:         now,
	}
}

// Execute builds the summary.
func (uc *GetSummaryUseCase) Execute(ctx context.Context) (*GetSummaryOutput, error) {
	set, err := uc.loader.Load(ctx, dataset.Window{})
	if err != nil {
		return nil, fetchFailed(err)
	}

	now := uc.now().In(uc.loader.Location())
	goal, err := currentGoal(ctx, uc.goalRepo, now)
	if err != nil {
		return nil, fetchFailed(err)
	}

	salesTotal := aggregation.Total(set.SaleRecords)
	expensesTotal := aggregation.Total(set.ExpenseRecords)

	thisMonth := aggregation.MonthOnly(set.SaleRecords, valueobject.MonthOf(now))
	monthSales := aggregation.Total(thisMonth)
	monthUnits := aggregation.TotalUnits(thisMonth)

	return &GetSummaryOutput{
		SalesTotal:     salesTotal,
		ExpensesTotal:  expensesTotal,
		Balance:        salesTotal.Sub(expensesTotal),
		SaleCount:      len(set.SaleRecords),
		ExpenseCount:   len(set.ExpenseRecords),
		UnitsSold:      aggregation.TotalUnits(set.SaleRecords),
		RecentSales:    aggregation.Latest(set.SaleRecords, uc.recentLimit),
		RecentExpenses: aggregation.Latest(set.ExpenseRecords, uc.recentLimit),
		CurrentGoal: GoalStatus{
			Goal:          goal,
			SalesActual:   monthSales,
			UnitsActual:   monthUnits,
			SalesProgress: aggregation.GoalProgress(monthSales, goal.SalesTarget),
			UnitsProgress: aggregation.UnitsProgress(monthUnits, goal.UnitsTarget),
		},
		Warnings:    aggregation.CheckIntegrity(set.SaleRecords),
		GeneratedAt: now,
	}, nil
}
