package aggregation

import (
	"sort"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/gestao-financeira/backend/internal/domain/valueobject"
)

// UncategorizedKey collects records whose grouping key is empty.
const UncategorizedKey = "Sem categoria"

// KeyFunc derives a grouping key from a record.
type KeyFunc func(Record) string

// ValueFunc derives the amount a record contributes.
type ValueFunc func(Record) decimal.Decimal

// Group is the accumulated total of one key.
type Group struct {
	Key   string
	Total decimal.Decimal
	Count int
	Units int
}

// Groups keeps keys in order of first appearance.
type Groups []Group

// Get returns the total for key, or zero.
func (g Groups) Get(key string) decimal.Decimal {
	if group, ok := g.Find(key); ok {
		return group.Total
	}
	return decimal.Zero
}

// Find returns the group for key.
func (g Groups) Find(key string) (Group, bool) {
	for _, group := range g {
		if group.Key == key {
			return group, true
		}
	}
	return Group{}, false
}

// Total sums all groups.
func (g Groups) Total() decimal.Decimal {
	total := decimal.Zero
	for _, group := range g {
		total = total.Add(group.Total)
	}
	return total
}

// Keys returns the keys in order.
func (g Groups) Keys() []string {
	keys := make([]string, len(g))
	for i, group := range g {
		keys[i] = group.Key
	}
	return keys
}

// SortedByTotal returns a copy ordered by total descending; ties keep first-appearance order.
func (g Groups) SortedByTotal() Groups {
	sorted := make(Groups, len(g))
	copy(sorted, g)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Total.GreaterThan(sorted[j].Total)
	})
	return sorted
}

// SumBy accumulates Record.Value per key.
func SumBy(records []Record, keyFn KeyFunc) Groups {
	return SumByValue(records, keyFn, Record.Value)
}

// SumByValue accumulates valueFn per key. Empty keys fold into UncategorizedKey.
func SumByValue(records []Record, keyFn KeyFunc, valueFn ValueFunc) Groups {
	index := make(map[string]int)
	groups := make(Groups, 0)

	for _, r := range records {
		key := strings.TrimSpace(keyFn(r))
		if key == "" {
			key = UncategorizedKey
		}

		pos, ok := index[key]
		if !ok {
			pos = len(groups)
			index[key] = pos
			groups = append(groups, Group{Key: key, Total: decimal.Zero})
		}

		groups[pos].Total = groups[pos].Total.Add(valueFn(r))
		groups[pos].Count++
		groups[pos].Units += r.Units()
	}

	return groups
}

// ByCategory groups by expense category.
func ByCategory(r Record) string { return r.Category }

// ByPayee groups by the sale payee / deliverer.
func ByPayee(r Record) string { return r.Payee }

// ByPaymentMethod groups by payment method code.
func ByPaymentMethod(r Record) string { return r.PaymentMethod }

// ByStatus groups by sale status code.
func ByStatus(r Record) string { return r.Status }

// ByMonth groups by "MM/YYYY"; undated records fold into UncategorizedKey.
func ByMonth(r Record) string {
	if !r.HasDate() {
		return ""
	}
	return valueobject.MonthOf(r.Date).Key()
}

// ByDay groups by "YYYY-MM-DD"; undated records fold into UncategorizedKey.
func ByDay(r Record) string {
	if !r.HasDate() {
		return ""
	}
	return r.Date.Format("2006-01-02")
}

// Total sums Record.Value over all records.
func Total(records []Record) decimal.Decimal {
	total := decimal.Zero
	for _, r := range records {
		total = total.Add(r.Value())
	}
	return total
}

// TotalUnits sums units over all records.
func TotalUnits(records []Record) int {
	units := 0
	for _, r := range records {
		units += r.Units()
	}
	return units
}
