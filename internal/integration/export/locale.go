// Package export encodes report bundles as PDF, XLSX and plain text files.
// All pt-BR presentation formatting lives in this file.
package export

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/gestao-financeira/backend/internal/domain/entity"
)

const (
	dateLayout     = "02/01/2006"
	dateTimeLayout = "02/01/2006 15:04"
	emptyValue     = "-"
)

var ptBR = message.NewPrinter(language.BrazilianPortuguese)

var monthAbbreviations = [...]string{
	"jan", "fev", "mar", "abr", "mai", "jun",
	"jul", "ago", "set", "out", "nov", "dez",
}

// FormatInteger groups thousands with dots: 1234 -> "1.234".
func FormatInteger(n int64) string {
	return ptBR.Sprintf("%d", n)
}

// FormatCurrency formats an amount as Brazilian reais: "R$ 1.234,56", "-R$ 10,00".
// The amount is rounded half away from zero to cents.
func FormatCurrency(amount decimal.Decimal) string {
	whole, cents, negative := splitCents(amount, 2)
	formatted := fmt.Sprintf("R$ %s,%s", FormatInteger(whole), cents)
	if negative {
		return "-" + formatted
	}
	return formatted
}

// FormatPercent formats a 0-100 ratio with one decimal place: 45.5 -> "45,5%".
func FormatPercent(ratio float64) string {
	whole, fraction, negative := splitCents(decimal.NewFromFloat(ratio), 1)
	formatted := fmt.Sprintf("%s,%s%%", FormatInteger(whole), fraction)
	if negative {
		return "-" + formatted
	}
	return formatted
}

// FormatDate formats a date as dd/MM/yyyy; the zero time renders as "-".
func FormatDate(t time.Time) string {
	if t.IsZero() {
		return emptyValue
	}
	return t.Format(dateLayout)
}

// FormatDateTime formats a timestamp as dd/MM/yyyy HH:mm.
func FormatDateTime(t time.Time) string {
	if t.IsZero() {
		return emptyValue
	}
	return t.Format(dateTimeLayout)
}

// FormatMonth formats a calendar month as "jan/2024".
func FormatMonth(month, year int) string {
	if month < 1 || month > 12 {
		return emptyValue
	}
	return fmt.Sprintf("%s/%d", monthAbbreviations[month-1], year)
}

// FormatMonthKey converts an "MM/YYYY" grouping key to "jan/2024". Other keys are returned unchanged.
func FormatMonthKey(key string) string {
	rawMonth, rawYear, ok := strings.Cut(key, "/")
	if !ok {
		return key
	}
	month, err := strconv.Atoi(rawMonth)
	if err != nil || month < 1 || month > 12 {
		return key
	}
	year, err := strconv.Atoi(rawYear)
	if err != nil {
		return key
	}
	return FormatMonth(month, year)
}

// FormatCell renders a report cell as display text.
func FormatCell(cell entity.ReportCell) string {
	switch cell.Kind {
	case entity.CellKindCurrency:
		return FormatCurrency(cell.Amount)
	case entity.CellKindInteger:
		return FormatInteger(cell.Number)
	case entity.CellKindPercent:
		return FormatPercent(cell.Ratio)
	case entity.CellKindDate:
		return FormatDate(cell.Date)
	case entity.CellKindMonth:
		if cell.Date.IsZero() {
			return emptyValue
		}
		return FormatMonth(int(cell.Date.Month()), cell.Date.Year())
	default:
		if strings.TrimSpace(cell.Text) == "" {
			return emptyValue
		}
		return cell.Text
	}
}

// splitCents rounds d to places decimals and returns the absolute integer part, the
// zero-padded fractional digits and whether the rounded value is negative.
func splitCents(d decimal.Decimal, places int32) (int64, string, bool) {
	rounded := d.Round(places)
	negative := rounded.IsNegative()
	abs := rounded.Abs()
	whole := abs.Truncate(0)
	fraction := abs.Sub(whole).Shift(places).IntPart()
	return whole.IntPart(), fmt.Sprintf("%0*d", int(places), fraction), negative
}
