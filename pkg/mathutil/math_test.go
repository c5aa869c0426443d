package mathutil_test

import (
	"testing"

	"github.com/imetandy/emission-testing/pkg/mathutil"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func TestIntegerDigits(t *testing.T) {
	tests := []struct {
		value string
		want  int32
	}{
		{"1100", 4},
		{"1000000", 7},
		{"909.0909", 3},
		{"0.5", 0},
		{"0.005", -2},
		{"-42", 2},
		{"0", 0},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			d := decimal.RequireFromString(tt.value)
			require.Equal(t, tt.want, mathutil.IntegerDigits(d))
		})
	}
}

func TestDivSignificant(t *testing.T) {
	t.Run("keeps precision on regular quotients", func(t *testing.T) {
		q := mathutil.DivSignificant(
			decimal.NewFromInt(1_000_000), decimal.NewFromInt(1100),
		)
		require.True(t, q.GreaterThan(decimal.RequireFromString("909.0909090909")))
		require.True(t, q.LessThan(decimal.RequireFromString("909.0909090910")))
	})

	t.Run("never rounds a tiny quotient to zero", func(t *testing.T) {
		huge := decimal.New(1, 60)
		q := mathutil.DivSignificant(decimal.NewFromInt(1), huge)
		require.True(t, q.IsPositive())
		require.True(t, q.Equal(decimal.New(1, -60)))
	})

	t.Run("exact quotients stay exact", func(t *testing.T) {
		q := mathutil.DivSignificant(decimal.NewFromInt(10), decimal.NewFromInt(4))
		require.True(t, q.Equal(decimal.RequireFromString("2.5")))
	})
}

func TestRelativeError(t *testing.T) {
	x := decimal.RequireFromString("100.0001")
	y := decimal.NewFromInt(100)
	require.True(t, mathutil.RelativeError(x, y).Equal(decimal.RequireFromString("0.000001")))
	require.True(t, mathutil.RelativeError(y, y).IsZero())
	require.True(t, mathutil.RelativeError(y, decimal.Zero).Equal(y))
}
