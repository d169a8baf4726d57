package display

import (
	"strings"

	"github.com/fis-tools/fiscal-atlas/pkg/models/domain"
	"github.com/shopspring/decimal"
)

// Placeholder is rendered wherever a figure is absent from the report.
const Placeholder = "N/A"

var (
	million = decimal.New(1, 6)
	billion = decimal.New(1, 9)
)

// Format renders an amount under the selected display unit. Absent amounts
// render as the placeholder, never as an error; negative amounts carry a
// leading minus sign, not accounting parentheses.
func Format(amount decimal.NullDecimal, unit domain.Unit) string {
	if !amount.Valid {
		return Placeholder
	}
	return formatValid(amount.Decimal, unit, false)
}

// FormatSigned is Format with an explicit leading "+" on non-negative
// amounts, used for variance and change columns.
func FormatSigned(amount decimal.NullDecimal, unit domain.Unit) string {
	if !amount.Valid {
		return Placeholder
	}
	return formatValid(amount.Decimal, unit, true)
}

// FormatPercent renders a percentage with one decimal place and an explicit
// sign. Absent percentages (undefined variance) render as the placeholder.
func FormatPercent(pct decimal.NullDecimal) string {
	if !pct.Valid {
		return Placeholder
	}
	s := pct.Decimal.StringFixed(1)
	if !strings.HasPrefix(s, "-") {
		s = "+" + s
	}
	return s + "%"
}

func formatValid(d decimal.Decimal, unit domain.Unit, signed bool) string {
	var body, suffix string
	switch unit {
	case domain.UnitMillions:
		body = groupThousands(d.Div(million).StringFixed(1))
		suffix = "M"
	case domain.UnitBillions:
		body = groupThousands(d.Div(billion).StringFixed(2))
		suffix = "B"
	default:
		body = groupThousands(d.StringFixed(2))
	}

	sign := ""
	if strings.HasPrefix(body, "-") {
		sign = "-"
		body = body[1:]
	} else if signed {
		sign = "+"
	}

	return sign + "$" + body + suffix
}

// groupThousands inserts comma separators into the integer part of a fixed
// decimal string.
func groupThousands(s string) string {
	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}
	intPart, fracPart, hasFrac := strings.Cut(s, ".")

	var b strings.Builder
	for i, r := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}

	out := b.String()
	if hasFrac {
		out += "." + fracPart
	}
	if neg {
		out = "-" + out
	}
	return out
}
