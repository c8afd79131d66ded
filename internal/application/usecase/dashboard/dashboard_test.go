package dashboard

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/gestao-financeira/backend/internal/application/usecase/dataset"
	"github.com/gestao-financeira/backend/internal/domain/entity"
	domainerror "github.com/gestao-financeira/backend/internal/domain/error"
)

type memSales struct {
	sales []*entity.Sale
	err   error
}

func (m *memSales) Create(context.Context, *entity.Sale) error { return nil }
func (m *memSales) FindByID(context.Context, uuid.UUID) (*entity.Sale, error) {
	return nil, domainerror.ErrSaleNotFound
}
func (m *memSales) FindAll(context.Context) ([]*entity.Sale, error) { return m.sales, m.err }
func (m *memSales) FindBetween(_ context.Context, from, to time.Time) ([]*entity.Sale, error) {
	if m.err != nil {
		return nil, m.err
	}
	out := make([]*entity.Sale, 0)
	for _, s := range m.sales {
		if !s.Date.Before(from) && s.Date.Before(to) {
			out = append(out, s)
		}
	}
	return out, nil
}
func (m *memSales) Update(context.Context, *entity.Sale) error { return nil }
func (m *memSales) Delete(context.Context, uuid.UUID) error    { return nil }

type memExpenses struct {
	expenses []*entity.Expense
}

func (m *memExpenses) Create(context.Context, *entity.Expense) error { return nil }
func (m *memExpenses) FindByID(context.Context, uuid.UUID) (*entity.Expense, error) {
	return nil, domainerror.ErrExpenseNotFound
}
func (m *memExpenses) FindAll(context.Context) ([]*entity.Expense, error) { return m.expenses, nil }
func (m *memExpenses) FindBetween(_ context.Context, from, to time.Time) ([]*entity.Expense, error) {
	out := make([]*entity.Expense, 0)
	for _, e := range m.expenses {
		if !e.Date.Before(from) && e.Date.Before(to) {
			out = append(out, e)
		}
	}
	return out, nil
}
func (m *memExpenses) Update(context.Context, *entity.Expense) error { return nil }
func (m *memExpenses) Delete(context.Context, uuid.UUID) error       { return nil }

type memGoals struct {
	goal *entity.Goal
}

func (m *memGoals) FindByMonth(_ context.Context, month, year int) (*entity.Goal, error) {
	if m.goal != nil && m.goal.Month == month && m.goal.Year == year {
		return m.goal, nil
	}
	return nil, domainerror.ErrGoalNotFound
}
func (m *memGoals) Create(context.Context, *entity.Goal) error { return nil }
func (m *memGoals) Upsert(context.Context, *entity.Goal) error { return nil }

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 12, 0, 0, 0, time.UTC)
}

func sale(date time.Time, qty int, price int64) *entity.Sale {
	item := entity.SaleItem{ProductID: uuid.New(), Quantity: qty, UnitPrice: decimal.NewFromInt(price)}
	return entity.NewSale(date, "Ana", decimal.Zero, entity.PaymentMethodPIX, "", "", []entity.SaleItem{item})
}

func expense(date time.Time, category string, value int64) *entity.Expense {
	return entity.NewExpense(date, category, decimal.NewFromInt(value), entity.PaymentMethodCash, "")
}

func fixedClock() time.Time { return day(2024, time.March, 20) }

func TestGetSummary(t *testing.T) {
	mismatched := sale(day(2024, time.March, 2), 1, 50)
	mismatched.Value = decimal.NewFromInt(45)

	sales := &memSales{sales: []*entity.Sale{
		sale(day(2024, time.January, 10), 2, 100),
		sale(day(2024, time.March, 1), 3, 10),
		mismatched,
	}}
	expenses := &memExpenses{expenses: []*entity.Expense{
		expense(day(2024, time.February, 1), "Food", 60),
		expense(day(2024, time.March, 5), "Transport", 40),
	}}
	goals := &memGoals{goal: entity.NewGoal(3, 2024, decimal.NewFromInt(160), 8)}

	uc := NewGetSummaryUseCase(dataset.NewLoader(sales, expenses, time.UTC), goals, 2, fixedClock)
	out, err := uc.Execute(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !out.SalesTotal.Equal(decimal.NewFromInt(280)) {
		t.Errorf("expected sales total 280 from line items, got %s", out.SalesTotal)
	}
	if !out.Balance.Equal(decimal.NewFromInt(180)) {
		t.Errorf("expected balance 180, got %s", out.Balance)
	}
	if out.SaleCount != 3 || out.ExpenseCount != 2 || out.UnitsSold != 6 {
		t.Errorf("unexpected counts: %+v", out)
	}
	if len(out.RecentSales) != 2 || !out.RecentSales[0].Date.Equal(day(2024, time.March, 2)) {
		t.Errorf("expected 2 latest sales newest first, got %+v", out.RecentSales)
	}
	if !out.CurrentGoal.SalesActual.Equal(decimal.NewFromInt(80)) || out.CurrentGoal.UnitsActual != 4 {
		t.Errorf("unexpected month actuals: %+v", out.CurrentGoal)
	}
	if out.CurrentGoal.SalesProgress != 50 || out.CurrentGoal.UnitsProgress != 50 {
		t.Errorf("expected 50%% progress, got %v / %v", out.CurrentGoal.SalesProgress, out.CurrentGoal.UnitsProgress)
	}
	if len(out.Warnings) != 1 || out.Warnings[0].RecordID != mismatched.ID.String() {
		t.Errorf("expected one integrity warning, got %+v", out.Warnings)
	}
}

func TestGetSummary_MissingGoalIsEmpty(t *testing.T) {
	uc := NewGetSummaryUseCase(dataset.NewLoader(&memSales{}, &memExpenses{}, nil), &memGoals{}, 0, fixedClock)
	out, err := uc.Execute(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.CurrentGoal.Goal.Month != 3 || out.CurrentGoal.SalesProgress != 0 {
		t.Errorf("expected empty March goal, got %+v", out.CurrentGoal)
	}
	if !out.SalesTotal.IsZero() || len(out.RecentSales) != 0 {
		t.Errorf("expected empty summary, got %+v", out)
	}
}

func TestGetSummary_FetchFailure(t *testing.T) {
	uc := NewGetSummaryUseCase(
		dataset.NewLoader(&memSales{err: errors.New("db down")}, &memExpenses{}, nil),
		&memGoals{}, 0, fixedClock,
	)
	_, err := uc.Execute(context.Background())
	var dshErr *domainerror.DashboardError
	if !errors.As(err, &dshErr) || dshErr.Code != domainerror.ErrCodeDashboardFetchFailed {
		t.Fatalf("expected fetch failure, got %v", err)
	}
}

func TestGetMonthlySeries(t *testing.T) {
	sales := &memSales{sales: []*entity.Sale{
		sale(day(2024, time.January, 15), 1, 100),
		sale(day(2023, time.March, 15), 1, 999),
	}}
	expenses := &memExpenses{expenses: []*entity.Expense{
		expense(day(2024, time.March, 1), "Food", 30),
	}}
	uc := NewGetMonthlySeriesUseCase(dataset.NewLoader(sales, expenses, time.UTC), 24, fixedClock)

	out, err := uc.Execute(context.Background(), GetMonthlySeriesInput{Months: 3})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(out.Points) != 3 {
		t.Fatalf("expected 3 points, got %d", len(out.Points))
	}
	jan, feb, mar := out.Points[0], out.Points[1], out.Points[2]
	if jan.Month != 1 || !jan.Sales.Equal(decimal.NewFromInt(100)) {
		t.Errorf("unexpected January: %+v", jan)
	}
	if !feb.Sales.IsZero() || !feb.Expenses.IsZero() {
		t.Errorf("expected zero-filled February: %+v", feb)
	}
	if !mar.Balance.Equal(decimal.NewFromInt(-30)) {
		t.Errorf("expected March balance -30, got %s", mar.Balance)
	}

	defaults, err := uc.Execute(context.Background(), GetMonthlySeriesInput{})
	if err != nil || len(defaults.Points) != DefaultSeriesMonths {
		t.Errorf("expected default length %d, got %v %v", DefaultSeriesMonths, len(defaults.Points), err)
	}

	for _, months := range []int{-1, 25} {
		_, err := uc.Execute(context.Background(), GetMonthlySeriesInput{Months: months})
		if !errors.Is(err, domainerror.ErrInvalidMonthCount) {
			t.Errorf("months=%d: expected invalid month count, got %v", months, err)
		}
	}
}

func TestGetCategoryBreakdown(t *testing.T) {
	expenses := &memExpenses{expenses: []*entity.Expense{
		expense(day(2024, time.January, 5), "Food", 30),
		expense(day(2024, time.January, 6), "Transport", 20),
		expense(day(2024, time.January, 7), "Food", 50),
		expense(day(2024, time.February, 7), "", 100),
	}}
	uc := NewGetCategoryBreakdownUseCase(dataset.NewLoader(&memSales{}, expenses, time.UTC))

	from, to := day(2024, time.January, 1), day(2024, time.January, 31)
	out, err := uc.Execute(context.Background(), GetCategoryBreakdownInput{DateFrom: &from, DateTo: &to})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !out.Total.Equal(decimal.NewFromInt(100)) || len(out.Categories) != 2 {
		t.Fatalf("unexpected breakdown: %+v", out)
	}
	food := out.Categories[0]
	if food.Category != "Food" || !food.Total.Equal(decimal.NewFromInt(80)) || food.Percentage != 80 {
		t.Errorf("unexpected first category: %+v", food)
	}

	all, err := uc.Execute(context.Background(), GetCategoryBreakdownInput{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if all.Categories[0].Category != "Sem categoria" {
		t.Errorf("expected uncategorised expense first, got %+v", all.Categories)
	}

	_, err = uc.Execute(context.Background(), GetCategoryBreakdownInput{DateFrom: &to, DateTo: &from})
	if !errors.Is(err, domainerror.ErrInvalidDateRange) {
		t.Errorf("expected invalid range, got %v", err)
	}
}
