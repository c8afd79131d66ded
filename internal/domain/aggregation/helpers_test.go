package aggregation

import (
	"time"

	"github.com/shopspring/decimal"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func decPtr(s string) *decimal.Decimal {
	d := dec(s)
	return &d
}

func day(year int, month time.Month, d int) time.Time {
	return time.Date(year, month, d, 12, 0, 0, 0, time.UTC)
}

func dayPtr(year int, month time.Month, d int) *time.Time {
	t := time.Date(year, month, d, 0, 0, 0, 0, time.UTC)
	return &t
}

func sale(id string, date time.Time, payee, value string) Record {
	return Record{ID: id, Kind: KindSale, Date: date, Payee: payee, Declared: dec(value), PaymentMethod: "pix", Status: "pending"}
}

func expense(id string, date time.Time, category, value string) Record {
	return Record{ID: id, Kind: KindExpense, Date: date, Category: category, Declared: dec(value), PaymentMethod: "cash"}
}

func ids(records []Record) []string {
	out := make([]string, len(records))
	for i, r := range records {
		out[i] = r.ID
	}
	return out
}

func sameIDs(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
