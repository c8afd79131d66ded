package aggregation

import "github.com/shopspring/decimal"

var hundred = decimal.NewFromInt(100)

// GoalProgress returns actual/target as a percentage clamped to [0, 100].
// A non-positive target yields 0.
func GoalProgress(actual, target decimal.Decimal) float64 {
	if !target.IsPositive() {
		return 0
	}
	pct := actual.Div(target).Mul(hundred)
	if pct.GreaterThan(hundred) {
		return 100
	}
	if pct.IsNegative() {
		return 0
	}
	return pct.InexactFloat64()
}

// UnitsProgress is GoalProgress over unit counts.
func UnitsProgress(actual, target int) float64 {
	return GoalProgress(decimal.NewFromInt(int64(actual)), decimal.NewFromInt(int64(target)))
}

// Percentage returns part/total*100, or 0 when total is not positive. It is not clamped.
func Percentage(part, total decimal.Decimal) float64 {
	if !total.IsPositive() {
		return 0
	}
	return part.Div(total).Mul(hundred).InexactFloat64()
}
