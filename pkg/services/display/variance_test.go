package display

import (
	"testing"

	"github.com/fis-tools/fiscal-atlas/pkg/models/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestComputeVariance_NoComparison(t *testing.T) {
	v := ComputeVariance(dec("100"), absent())

	assert.False(t, v.Absolute.Valid)
	assert.False(t, v.Percent.Valid)
}

func TestComputeVariance_ZeroComparison(t *testing.T) {
	t.Run("nonzero actual leaves percent undefined", func(t *testing.T) {
		v := ComputeVariance(dec("100"), valid("0"))

		require.True(t, v.Absolute.Valid)
		assert.True(t, v.Absolute.Decimal.Equal(dec("100")))
		assert.False(t, v.Percent.Valid)
	})

	t.Run("zero actual yields zero variance", func(t *testing.T) {
		v := ComputeVariance(dec("0"), valid("0"))

		require.True(t, v.Absolute.Valid)
		require.True(t, v.Percent.Valid)
		assert.True(t, v.Absolute.Decimal.IsZero())
		assert.True(t, v.Percent.Decimal.IsZero())
	})
}

func TestComputeVariance_ReportScenarios(t *testing.T) {
	t.Run("revenue growth", func(t *testing.T) {
		v := ComputeVariance(dec("3480000000"), valid("2700000000"))

		require.True(t, v.Absolute.Valid)
		require.True(t, v.Percent.Valid)
		assert.True(t, v.Absolute.Decimal.Equal(dec("780000000")))
		assert.True(t, v.Percent.Decimal.Equal(dec("28.9")))
	})

	t.Run("expenditure growth", func(t *testing.T) {
		v := ComputeVariance(dec("3590000000"), valid("3370000000"))

		require.True(t, v.Percent.Valid)
		assert.True(t, v.Absolute.Decimal.Equal(dec("220000000")))
		assert.True(t, v.Percent.Decimal.Equal(dec("6.5")))
	})
}

func TestComputeVariance_Antisymmetry(t *testing.T) {
	pairs := [][2]string{
		{"3480000000", "2700000000"},
		{"100", "250"},
		{"-40", "60"},
	}

	for _, p := range pairs {
		a, b := dec(p[0]), dec(p[1])
		ab := ComputeVariance(a, decimal.NullDecimal{Decimal: b, Valid: true})
		ba := ComputeVariance(b, decimal.NullDecimal{Decimal: a, Valid: true})

		require.True(t, ab.Absolute.Valid)
		require.True(t, ba.Absolute.Valid)
		assert.True(t, ab.Absolute.Decimal.Equal(ba.Absolute.Decimal.Neg()),
			"absolute variance must negate when actual and comparison swap")
	}
}

func TestComputeVariance_NegativeComparison(t *testing.T) {
	// Percent is computed against the comparison's magnitude, so the sign
	// convention survives negative prior-year figures.
	v := ComputeVariance(dec("50"), valid("-100"))

	require.True(t, v.Percent.Valid)
	assert.True(t, v.Absolute.Decimal.Equal(dec("150")))
	assert.True(t, v.Percent.Decimal.Equal(dec("150")))
}

func TestComputeVariance_RoundHalfToEven(t *testing.T) {
	// Both 0.15% and 0.25% sit exactly on a rounding boundary; both resolve
	// to the even neighbour 0.2.
	v := ComputeVariance(dec("1001.5"), valid("1000"))
	require.True(t, v.Percent.Valid)
	assert.True(t, v.Percent.Decimal.Equal(dec("0.2")), "0.15 should round to 0.2, got %s", v.Percent.Decimal)

	v = ComputeVariance(dec("1002.5"), valid("1000"))
	require.True(t, v.Percent.Valid)
	assert.True(t, v.Percent.Decimal.Equal(dec("0.2")), "0.25 should round to 0.2, got %s", v.Percent.Decimal)
}

func TestTrendOf(t *testing.T) {
	up := ComputeVariance(dec("120"), valid("100"))
	down := ComputeVariance(dec("80"), valid("100"))
	flat := ComputeVariance(dec("100"), valid("100"))
	missing := ComputeVariance(dec("100"), absent())

	assert.Equal(t, domain.TrendUp, TrendOf(up))
	assert.Equal(t, domain.TrendDown, TrendOf(down))
	assert.Equal(t, domain.TrendFlat, TrendOf(flat))
	assert.Equal(t, domain.TrendFlat, TrendOf(missing))
}
