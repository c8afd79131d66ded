// Package dataset loads the sales and expenses that dashboards and reports aggregate.
package dataset

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/gestao-financeira/backend/internal/application/adapter"
	"github.com/gestao-financeira/backend/internal/domain/aggregation"
	"github.com/gestao-financeira/backend/internal/domain/entity"
)

// Window bounds a load to [From, To). A zero bound is open.
type Window struct {
	From time.Time
	To   time.Time
}

// IsOpen reports whether the window has no bounds.
func (w Window) IsOpen() bool {
	return w.From.IsZero() && w.To.IsZero()
}

// Set holds the loaded entities and their records, converted to the loader's location.
type Set struct {
	Sales    []*entity.Sale
	Expenses []*entity.Expense

	SaleRecords    []aggregation.Record
	ExpenseRecords []aggregation.Record
}

// Loader fetches sales and expenses concurrently.
type Loader struct {
	saleRepo    adapter.SaleRepository
	expenseRepo adapter.ExpenseRepository
	location    *time.Location
}

// NewLoader creates a new Loader. A nil location uses UTC.
func NewLoader(saleRepo adapter.SaleRepository, expenseRepo adapter.ExpenseRepository, location *time.Location) *Loader {
	if location == nil {
		location = time.UTC
	}
	return &Loader{
		saleRepo:    saleRepo,
		expenseRepo: expenseRepo,
		location:    location,
	}
}

// Location returns the calendar location records are grouped in.
func (l *Loader) Location() *time.Location {
	return l.location
}

// Load fetches both record kinds. If either fetch fails the other is cancelled
// and the first error is returned; no partial Set is produced.
func (l *Loader) Load(ctx context.Context, window Window) (*Set, error) {
	var (
		sales    []*entity.Sale
		expenses []*entity.Expense
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		if window.IsOpen() {
			sales, err = l.saleRepo.FindAll(gctx)
		} else {
			sales, err = l.saleRepo.FindBetween(gctx, window.from(), window.to())
		}
		if err != nil {
			return fmt.Errorf("failed to load sales: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		if window.IsOpen() {
			expenses, err = l.expenseRepo.FindAll(gctx)
		} else {
			expenses, err = l.expenseRepo.FindBetween(gctx, window.from(), window.to())
		}
		if err != nil {
			return fmt.Errorf("failed to load expenses: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &Set{
		Sales:          sales,
		Expenses:       expenses,
		SaleRecords:    aggregation.InLocation(aggregation.FromSales(sales), l.location),
		ExpenseRecords: aggregation.InLocation(aggregation.FromExpenses(expenses), l.location),
	}, nil
}

// LoadSales fetches only sales, as records in the loader's location.
func (l *Loader) LoadSales(ctx context.Context, window Window) ([]aggregation.Record, error) {
	var (
		sales []*entity.Sale
		err   error
	)
	if window.IsOpen() {
		sales, err = l.saleRepo.FindAll(ctx)
	} else {
		sales, err = l.saleRepo.FindBetween(ctx, window.from(), window.to())
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load sales: %w", err)
	}
	return aggregation.InLocation(aggregation.FromSales(sales), l.location), nil
}

// MonthWindow covers the calendar month containing t, in t's location.
func MonthWindow(t time.Time) Window {
	start := time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
	return Window{From: start, To: start.AddDate(0, 1, 0)}
}

var farFuture = time.Date(9999, 12, 31, 0, 0, 0, 0, time.UTC)

func (w Window) from() time.Time {
	return w.From
}

func (w Window) to() time.Time {
	if w.To.IsZero() {
		return farFuture
	}
	return w.To
}

// DayWindow converts inclusive calendar-day bounds into a Window in loc. Nil
// bounds stay open.
func DayWindow(from, to *time.Time, loc *time.Location) Window {
	var w Window
	if from != nil {
		w.From = time.Date(from.Year(), from.Month(), from.Day(), 0, 0, 0, 0, loc)
	}
	if to != nil {
		w.To = time.Date(to.Year(), to.Month(), to.Day(), 0, 0, 0, 0, loc).AddDate(0, 0, 1)
	}
	return w
}
