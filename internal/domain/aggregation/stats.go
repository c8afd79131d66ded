package aggregation

import (
	"sort"

	"github.com/shopspring/decimal"
)

// Stats summarises the values of a record set. For an empty set every field is
// zero and Count is 0.
type Stats struct {
	Min     decimal.Decimal
	Max     decimal.Decimal
	Average decimal.Decimal
	Total   decimal.Decimal
	Count   int
}

// MinMaxAverage computes Stats over valueFn. A nil valueFn uses Record.Value.
func MinMaxAverage(records []Record, valueFn ValueFunc) Stats {
	if valueFn == nil {
		valueFn = Record.Value
	}

	stats := Stats{
		Min:     decimal.Zero,
		Max:     decimal.Zero,
		Average: decimal.Zero,
		Total:   decimal.Zero,
	}
	if len(records) == 0 {
		return stats
	}

	for i, r := range records {
		v := valueFn(r)
		if i == 0 || v.LessThan(stats.Min) {
			stats.Min = v
		}
		if i == 0 || v.GreaterThan(stats.Max) {
			stats.Max = v
		}
		stats.Total = stats.Total.Add(v)
	}
	stats.Count = len(records)
	stats.Average = stats.Total.Div(decimal.NewFromInt(int64(stats.Count)))

	return stats
}

// Latest returns up to n records ordered by date descending. Undated records sort last.
func Latest(records []Record, n int) []Record {
	if n <= 0 {
		return []Record{}
	}
	sorted := make([]Record, len(records))
	copy(sorted, records)
	sort.SliceStable(sorted, func(i, j int) bool {
		a, b := sorted[i], sorted[j]
		if a.HasDate() != b.HasDate() {
			return a.HasDate()
		}
		return a.Date.After(b.Date)
	})
	if len(sorted) > n {
		sorted = sorted[:n]
	}
	return sorted
}
