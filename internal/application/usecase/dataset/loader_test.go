package dataset

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/gestao-financeira/backend/internal/domain/entity"
)

type stubSales struct {
	sales []*entity.Sale
	err   error
	calls []string
}

func (s *stubSales) Create(context.Context, *entity.Sale) error { return nil }
func (s *stubSales) FindByID(context.Context, uuid.UUID) (*entity.Sale, error) {
	return nil, errors.New("not used")
}
func (s *stubSales) FindAll(ctx context.Context) ([]*entity.Sale, error) {
	s.calls = append(s.calls, "all")
	return s.sales, s.err
}
func (s *stubSales) FindBetween(ctx context.Context, from, to time.Time) ([]*entity.Sale, error) {
	s.calls = append(s.calls, "between")
	return s.sales, s.err
}
func (s *stubSales) Update(context.Context, *entity.Sale) error { return nil }
func (s *stubSales) Delete(context.Context, uuid.UUID) error    { return nil }

type stubExpenses struct {
	expenses []*entity.Expense
	err      error
	waitCtx  bool
}

func (s *stubExpenses) Create(context.Context, *entity.Expense) error { return nil }
func (s *stubExpenses) FindByID(context.Context, uuid.UUID) (*entity.Expense, error) {
	return nil, errors.New("not used")
}
func (s *stubExpenses) FindAll(ctx context.Context) ([]*entity.Expense, error) {
	if s.waitCtx {
		<-ctx.Done()
		return nil, ctx.Err()
	}
	return s.expenses, s.err
}
func (s *stubExpenses) FindBetween(ctx context.Context, from, to time.Time) ([]*entity.Expense, error) {
	return s.FindAll(ctx)
}
func (s *stubExpenses) Update(context.Context, *entity.Expense) error { return nil }
func (s *stubExpenses) Delete(context.Context, uuid.UUID) error       { return nil }

func TestLoader_Load(t *testing.T) {
	sale := entity.NewSale(time.Date(2024, 1, 1, 2, 0, 0, 0, time.UTC), "A", decimal.NewFromInt(10), entity.PaymentMethodPIX, "", "", nil)
	expense := entity.NewExpense(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC), "Food", decimal.NewFromInt(5), entity.PaymentMethodCash, "")
	saoPaulo := time.FixedZone("BRT", -3*60*60)

	sales := &stubSales{sales: []*entity.Sale{sale}}
	loader := NewLoader(sales, &stubExpenses{expenses: []*entity.Expense{expense}}, saoPaulo)

	set, err := loader.Load(context.Background(), Window{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(set.SaleRecords) != 1 || len(set.ExpenseRecords) != 1 {
		t.Fatalf("expected one record of each kind, got %+v", set)
	}
	if set.SaleRecords[0].Date.Day() != 31 {
		t.Errorf("expected sale converted to the loader location, got %v", set.SaleRecords[0].Date)
	}
	if sales.calls[0] != "all" {
		t.Errorf("expected open window to use FindAll, got %v", sales.calls)
	}

	from := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	if _, err := loader.Load(context.Background(), DayWindow(&from, nil, saoPaulo)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sales.calls[1] != "between" {
		t.Errorf("expected bounded window to use FindBetween, got %v", sales.calls)
	}
}

func TestLoader_FailureCancelsSibling(t *testing.T) {
	loader := NewLoader(
		&stubSales{err: errors.New("connection reset")},
		&stubExpenses{waitCtx: true},
		nil,
	)

	done := make(chan error, 1)
	go func() {
		_, err := loader.Load(context.Background(), Window{})
		done <- err
	}()

	select {
	case err := <-done:
		if err == nil {
			t.Fatal("expected an error")
		}
	case <-time.After(2 * time.Second):
		t.Fatal("sibling fetch was not cancelled")
	}
}

func TestDayWindow(t *testing.T) {
	from := time.Date(2024, 1, 10, 15, 0, 0, 0, time.UTC)
	to := time.Date(2024, 1, 12, 8, 0, 0, 0, time.UTC)

	w := DayWindow(&from, &to, time.UTC)
	if !w.From.Equal(time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("unexpected From: %v", w.From)
	}
	if !w.To.Equal(time.Date(2024, 1, 13, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("expected exclusive To at the next day, got %v", w.To)
	}
	if !DayWindow(nil, nil, time.UTC).IsOpen() {
		t.Error("expected open window")
	}
}

func TestMonthWindow(t *testing.T) {
	tests := []struct {
		name     string
		at       time.Time
		wantFrom time.Time
		wantTo   time.Time
	}{
		{"mid month", time.Date(2024, 3, 20, 12, 0, 0, 0, time.UTC), time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC)},
		{"december rolls the year", time.Date(2023, 12, 31, 23, 0, 0, 0, time.UTC), time.Date(2023, 12, 1, 0, 0, 0, 0, time.UTC), time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := MonthWindow(tt.at)
			if !w.From.Equal(tt.wantFrom) || !w.To.Equal(tt.wantTo) {
				t.Errorf("MonthWindow(%v) = [%v, %v), want [%v, %v)", tt.at, w.From, w.To, tt.wantFrom, tt.wantTo)
			}
		})
	}
}
