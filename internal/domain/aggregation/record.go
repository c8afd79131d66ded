// Package aggregation turns snapshots of sales and expenses into totals, groupings,
// monthly series, statistics and goal progress.
//
// Every function is pure: inputs are never mutated and no state is kept between
// calls. Malformed records (zero date, missing value) never cause an error; they
// contribute zero to sums and never match a date-bounded filter.
package aggregation

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/gestao-financeira/backend/internal/domain/entity"
)

// Kind tells whether a record came from a sale or an expense.
type Kind string

const (
	KindSale    Kind = "sale"
	KindExpense Kind = "expense"
)

// LineItem is a sale line item as seen by the engine.
type LineItem struct {
	ProductID   string
	ProductName string
	Quantity    int
	UnitPrice   decimal.Decimal
}

// Subtotal returns quantity x unit price; non-positive quantities contribute zero.
func (i LineItem) Subtotal() decimal.Decimal {
	if i.Quantity <= 0 {
		return decimal.Zero
	}
	return i.UnitPrice.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

// Record is the read-only view of a sale or an expense. A zero Date means the
// date was missing or could not be parsed.
type Record struct {
	ID            string
	Kind          Kind
	Date          time.Time
	Payee         string
	Category      string
	Description   string
	PaymentMethod string
	Status        string
	Declared      decimal.Decimal
	Items         []LineItem
}

// HasDate reports whether the record carries a usable date.
func (r Record) HasDate() bool {
	return !r.Date.IsZero()
}

// Value returns the line-item total when items exist, otherwise the declared value.
func (r Record) Value() decimal.Decimal {
	if len(r.Items) == 0 {
		return r.Declared
	}
	total := decimal.Zero
	for _, item := range r.Items {
		total = total.Add(item.Subtotal())
	}
	return total
}

// Units returns the number of units sold across line items.
func (r Record) Units() int {
	units := 0
	for _, item := range r.Items {
		if item.Quantity > 0 {
			units += item.Quantity
		}
	}
	return units
}

// FromSale builds a Record from a sale.
func FromSale(s *entity.Sale) Record {
	items := make([]LineItem, 0, len(s.Items))
	for _, item := range s.Items {
		items = append(items, LineItem{
			ProductID:   item.ProductID.String(),
			ProductName: item.ProductName,
			Quantity:    item.Quantity,
			UnitPrice:   item.UnitPrice,
		})
	}
	return Record{
		ID:            s.ID.String(),
		Kind:          KindSale,
		Date:          s.Date,
		Payee:         s.Payee,
		Description:   s.Note,
		PaymentMethod: string(s.PaymentMethod),
		Status:        string(s.Status),
		Declared:      s.Value,
		Items:         items,
	}
}

// FromSales builds records for a slice of sales, preserving order.
func FromSales(sales []*entity.Sale) []Record {
	records := make([]Record, 0, len(sales))
	for _, s := range sales {
		if s == nil {
			continue
		}
		records = append(records, FromSale(s))
	}
	return records
}

// FromExpense builds a Record from an expense.
func FromExpense(e *entity.Expense) Record {
	return Record{
		ID:            e.ID.String(),
		Kind:          KindExpense,
		Date:          e.Date,
		Category:      e.Category,
		Description:   e.Description,
		PaymentMethod: string(e.PaymentMethod),
		Declared:      e.Value,
	}
}

// FromExpenses builds records for a slice of expenses, preserving order.
func FromExpenses(expenses []*entity.Expense) []Record {
	records := make([]Record, 0, len(expenses))
	for _, e := range expenses {
		if e == nil {
			continue
		}
		records = append(records, FromExpense(e))
	}
	return records
}

// InLocation returns copies of the records with dates converted to loc, so that
// calendar-day and calendar-month grouping happen in the business timezone.
func InLocation(records []Record, loc *time.Location) []Record {
	if loc == nil {
		return records
	}
	out := make([]Record, len(records))
	for i, r := range records {
		if r.HasDate() {
			r.Date = r.Date.In(loc)
		}
		out[i] = r
	}
	return out
}

var dateLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
	"02/01/2006",
}

// ParseDate parses the date formats records arrive with. It returns the zero
// time instead of an error so the record degrades to "no date".
func ParseDate(raw string) time.Time {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t
		}
	}
	return time.Time{}
}
