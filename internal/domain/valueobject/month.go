// Package valueobject contains immutable value types shared across the domain.
package valueobject

import (
	"fmt"
	"time"
)

// Month identifies a calendar month.
type Month struct {
	Year  int
	Month time.Month
}

// MonthOf returns the calendar month containing t, in t's location.
func MonthOf(t time.Time) Month {
	return Month{Year: t.Year(), Month: t.Month()}
}

// NewMonth validates and builds a Month from numeric parts.
func NewMonth(month, year int) (Month, error) {
	if month < 1 || month > 12 {
		return Month{}, fmt.Errorf("month %d out of range", month)
	}
	if year < 2000 || year > 2100 {
		return Month{}, fmt.Errorf("year %d out of range", year)
	}
	return Month{Year: year, Month: time.Month(month)}, nil
}

// AddMonths returns the month n months later (n may be negative).
func (m Month) AddMonths(n int) Month {
	t := time.Date(m.Year, m.Month, 1, 0, 0, 0, 0, time.UTC).AddDate(0, n, 0)
	return Month{Year: t.Year(), Month: t.Month()}
}

// Start returns the first instant of the month in loc.
func (m Month) Start(loc *time.Location) time.Time {
	return time.Date(m.Year, m.Month, 1, 0, 0, 0, 0, loc)
}

// End returns the last instant of the month in loc.
func (m Month) End(loc *time.Location) time.Time {
	return m.Start(loc).AddDate(0, 1, 0).Add(-time.Nanosecond)
}

// Before reports whether m is earlier than other.
func (m Month) Before(other Month) bool {
	if m.Year != other.Year {
		return m.Year < other.Year
	}
	return m.Month < other.Month
}

// Contains reports whether t falls in the month (using t's own calendar fields).
func (m Month) Contains(t time.Time) bool {
	return t.Year() == m.Year && t.Month() == m.Month
}

// Key returns the "MM/YYYY" grouping key.
func (m Month) Key() string {
	return fmt.Sprintf("%02d/%d", int(m.Month), m.Year)
}

// Trailing returns the count months ending at m, oldest first.
func (m Month) Trailing(count int) []Month {
	if count <= 0 {
		return nil
	}
	months := make([]Month, count)
	for i := 0; i < count; i++ {
		months[i] = m.AddMonths(i - count + 1)
	}
	return months
}
