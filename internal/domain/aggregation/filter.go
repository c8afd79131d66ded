package aggregation

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Filter selects records. Every set field must hold (AND); unset fields impose
// no constraint. Date bounds are inclusive calendar days and value bounds are
// inclusive, both applied to Record.Value.
type Filter struct {
	DateFrom      *time.Time
	DateTo        *time.Time
	Category      string // case-insensitive substring
	PaymentMethod string // case-insensitive equality
	Status        string // case-insensitive equality
	ValueMin      *decimal.Decimal
	ValueMax      *decimal.Decimal
	Payee         string // case-insensitive substring
}

// IsEmpty reports whether no predicate is set.
func (f Filter) IsEmpty() bool {
	return f.DateFrom == nil && f.DateTo == nil &&
		strings.TrimSpace(f.Category) == "" &&
		strings.TrimSpace(f.PaymentMethod) == "" &&
		strings.TrimSpace(f.Status) == "" &&
		f.ValueMin == nil && f.ValueMax == nil &&
		strings.TrimSpace(f.Payee) == ""
}

// HasDateBounds reports whether the filter constrains dates.
func (f Filter) HasDateBounds() bool {
	return f.DateFrom != nil || f.DateTo != nil
}

// Match reports whether r satisfies every set predicate.
func (f Filter) Match(r Record) bool {
	if f.HasDateBounds() {
		if !r.HasDate() {
			return false
		}
		day := dayNumber(r.Date)
		if f.DateFrom != nil && day < dayNumber(*f.DateFrom) {
			return false
		}
		if f.DateTo != nil && day > dayNumber(*f.DateTo) {
			return false
		}
	}

	if !containsFold(r.Category, f.Category) {
		return false
	}
	if !containsFold(r.Payee, f.Payee) {
		return false
	}
	if !equalFoldOrUnset(r.PaymentMethod, f.PaymentMethod) {
		return false
	}
	if !equalFoldOrUnset(r.Status, f.Status) {
		return false
	}

	if f.ValueMin != nil || f.ValueMax != nil {
		value := r.Value()
		if f.ValueMin != nil && value.LessThan(*f.ValueMin) {
			return false
		}
		if f.ValueMax != nil && value.GreaterThan(*f.ValueMax) {
			return false
		}
	}

	return true
}

// Apply returns the records matching f, preserving input order. An empty filter
// returns records unchanged.
func Apply(records []Record, f Filter) []Record {
	if f.IsEmpty() {
		return records
	}
	matched := make([]Record, 0, len(records))
	for _, r := range records {
		if f.Match(r) {
			matched = append(matched, r)
		}
	}
	return matched
}

// dayNumber orders calendar days using the time's own location.
func dayNumber(t time.Time) int {
	return t.Year()*10000 + int(t.Month())*100 + t.Day()
}

func containsFold(value, needle string) bool {
	needle = strings.TrimSpace(needle)
	if needle == "" {
		return true
	}
	return strings.Contains(strings.ToLower(value), strings.ToLower(needle))
}

func equalFoldOrUnset(value, want string) bool {
	want = strings.TrimSpace(want)
	if want == "" {
		return true
	}
	return strings.EqualFold(strings.TrimSpace(value), want)
}
