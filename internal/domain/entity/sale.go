package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// SaleItem is a line item of a sale.
type SaleItem struct {
	ID          uuid.UUID
	ProductID   uuid.UUID
	ProductName string // display only, resolved from the product when loaded
	Quantity    int
	UnitPrice   decimal.Decimal
}

// Subtotal returns quantity x unit price.
func (i SaleItem) Subtotal() decimal.Decimal {
	return i.UnitPrice.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

// Sale represents a revenue transaction made of one or more product line items.
type Sale struct {
	ID            uuid.UUID
	Date          time.Time
	Payee         string
	Value         decimal.Decimal // value declared by the client
	PaymentMethod PaymentMethod
	Status        SaleStatus
	Note          string
	Items         []SaleItem
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// NewSale creates a new Sale. A zero declared value is replaced by the line-item total.
func NewSale(date time.Time, payee string, value decimal.Decimal, method PaymentMethod, status SaleStatus, note string, items []SaleItem) *Sale {
	now := time.Now().UTC()
	if status == "" {
		status = SaleStatusPending
	}
	for i := range items {
		if items[i].ID == uuid.Nil {
			items[i].ID = uuid.New()
		}
	}
	s := &Sale{
		ID:            uuid.New(),
		Date:          date,
		Payee:         payee,
		Value:         value,
		PaymentMethod: method,
		Status:        status,
		Note:          note,
		Items:         items,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if s.Value.IsZero() {
		s.Value = s.ItemsTotal()
	}
	return s
}

// ItemsTotal sums quantity x unit price over all line items.
func (s *Sale) ItemsTotal() decimal.Decimal {
	total := decimal.Zero
	for _, item := range s.Items {
		total = total.Add(item.Subtotal())
	}
	return total
}

// Total returns the line-item total when items exist, otherwise the declared value.
func (s *Sale) Total() decimal.Decimal {
	if len(s.Items) > 0 {
		return s.ItemsTotal()
	}
	return s.Value
}

// UnitsSold sums the quantities of all line items.
func (s *Sale) UnitsSold() int {
	units := 0
	for _, item := range s.Items {
		units += item.Quantity
	}
	return units
}

// HasIntegrityMismatch reports whether the declared value differs from the line-item total at cent precision.
func (s *Sale) HasIntegrityMismatch() bool {
	if len(s.Items) == 0 {
		return false
	}
	return !s.Value.Round(2).Equal(s.ItemsTotal().Round(2))
}
