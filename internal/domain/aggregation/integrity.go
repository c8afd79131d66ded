package aggregation

import "github.com/shopspring/decimal"

// IntegrityWarning flags a sale whose declared value disagrees with its line items.
type IntegrityWarning struct {
	RecordID string
	Declared decimal.Decimal
	Derived  decimal.Decimal
}

// Difference returns declared minus derived.
func (w IntegrityWarning) Difference() decimal.Decimal {
	return w.Declared.Sub(w.Derived)
}

// CheckIntegrity compares declared values with line-item totals at cent
// precision. Records without items are never flagged.
func CheckIntegrity(records []Record) []IntegrityWarning {
	warnings := make([]IntegrityWarning, 0)
	for _, r := range records {
		if len(r.Items) == 0 {
			continue
		}
		derived := r.Value()
		if !r.Declared.Round(2).Equal(derived.Round(2)) {
			warnings = append(warnings, IntegrityWarning{
				RecordID: r.ID,
				Declared: r.Declared,
				Derived:  derived,
			})
		}
	}
	return warnings
}
