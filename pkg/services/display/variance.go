package display

import (
	"github.com/fis-tools/fiscal-atlas/pkg/models/domain"
	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// ComputeVariance derives the delta between an actual figure and a
// comparison figure (budget or prior year).
//
// With no comparison both outputs are absent. A zero comparison against a
// nonzero actual yields the actual as the absolute delta and an undefined
// percentage; zero against zero yields zero for both. Otherwise the
// percentage is absolute/|comparison|*100, rounded to one decimal place with
// round-half-to-even.
//
// A positive percentage always means the actual exceeds the comparison.
// Whether growth is good or bad is a labelling concern, decided per view.
func ComputeVariance(actual decimal.Decimal, comparison decimal.NullDecimal) domain.Variance {
	if !comparison.Valid {
		return domain.Variance{}
	}

	if comparison.Decimal.IsZero() {
		if actual.IsZero() {
			zero := decimal.NullDecimal{Decimal: decimal.Zero, Valid: true}
			return domain.Variance{Absolute: zero, Percent: zero}
		}
		return domain.Variance{
			Absolute: decimal.NullDecimal{Decimal: actual, Valid: true},
		}
	}

	absolute := actual.Sub(comparison.Decimal)
	percent := absolute.Div(comparison.Decimal.Abs()).Mul(hundred).RoundBank(1)

	return domain.Variance{
		Absolute: decimal.NullDecimal{Decimal: absolute, Valid: true},
		Percent:  decimal.NullDecimal{Decimal: percent, Valid: true},
	}
}

// TrendOf maps a variance onto a direction for metric cards. An absent or
// zero delta is flat.
func TrendOf(v domain.Variance) domain.Trend {
	if !v.Absolute.Valid || v.Absolute.Decimal.IsZero() {
		return domain.TrendFlat
	}
	if v.Absolute.Decimal.IsNegative() {
		return domain.TrendDown
	}
	return domain.TrendUp
}
