package aggregation

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/gestao-financeira/backend/internal/domain/valueobject"
)

// MonthTotal is one point of a monthly series.
type MonthTotal struct {
	Month int
	Year  int
	Total decimal.Decimal
	Count int
	Units int
}

// MonthSeries returns one point per calendar month for the monthCount months
// ending at the month of end, oldest first. Months without records are present
// with zero totals. Undated records and records outside the window are ignored.
func MonthSeries(records []Record, monthCount int, end time.Time) []MonthTotal {
	months := valueobject.MonthOf(end).Trailing(monthCount)
	if len(months) == 0 {
		return []MonthTotal{}
	}

	series := make([]MonthTotal, len(months))
	index := make(map[valueobject.Month]int, len(months))
	for i, m := range months {
		series[i] = MonthTotal{Month: int(m.Month), Year: m.Year, Total: decimal.Zero}
		index[m] = i
	}

	for _, r := range records {
		if !r.HasDate() {
			continue
		}
		pos, ok := index[valueobject.MonthOf(r.Date)]
		if !ok {
			continue
		}
		series[pos].Total = series[pos].Total.Add(r.Value())
		series[pos].Count++
		series[pos].Units += r.Units()
	}

	return series
}

// MonthUnits is one point of a monthly units-sold series.
type MonthUnits struct {
	Month int
	Year  int
	Units int
}

// UnitSeries is MonthSeries over line-item quantities.
func UnitSeries(records []Record, monthCount int, end time.Time) []MonthUnits {
	totals := MonthSeries(records, monthCount, end)
	series := make([]MonthUnits, len(totals))
	for i, t := range totals {
		series[i] = MonthUnits{Month: t.Month, Year: t.Year, Units: t.Units}
	}
	return series
}

// MonthOnly keeps the records dated inside month m.
func MonthOnly(records []Record, m valueobject.Month) []Record {
	out := make([]Record, 0)
	for _, r := range records {
		if r.HasDate() && m.Contains(r.Date) {
			out = append(out, r)
		}
	}
	return out
}

// DayOnly keeps the records dated on the calendar day of day.
func DayOnly(records []Record, day time.Time) []Record {
	want := dayNumber(day)
	out := make([]Record, 0)
	for _, r := range records {
		if r.HasDate() && dayNumber(r.Date) == want {
			out = append(out, r)
		}
	}
	return out
}

// DistinctMonths counts the calendar months that have at least one dated record.
func DistinctMonths(records []Record) int {
	seen := make(map[valueobject.Month]struct{})
	for _, r := range records {
		if r.HasDate() {
			seen[valueobject.MonthOf(r.Date)] = struct{}{}
		}
	}
	return len(seen)
}
