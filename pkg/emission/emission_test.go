package emission_test

import (
	"math"
	"testing"

	"github.com/imetandy/emission-testing/pkg/emission"
	"github.com/stretchr/testify/require"
)

func TestSymmetric(t *testing.T) {
	c := emission.DefaultSymmetric()

	require.InDelta(t, 1_000_000, c.Endcoin(21), 1e-6)
	require.InDelta(t, 1_000_000, c.Gaiacoin(21), 1e-6)

	for _, delta := range []float64{0.1, 0.5, 1, 2} {
		require.InDelta(t, c.Endcoin(21-delta), c.Gaiacoin(21+delta), 1e-6)
		require.Greater(t, c.Endcoin(21-delta), c.Endcoin(21+delta))
	}

	require.InDelta(t, 1_000_000*math.Exp(1.125), c.Gaiacoin(22), 1e-6)
}

func TestLegacy(t *testing.T) {
	c := emission.DefaultLegacy()

	require.InDelta(t, math.Exp(1.1023*14)-1, c.Endcoin(21), 1e-3)
	require.InDelta(t, math.Exp(0.75*21)-1, c.Gaiacoin(21), 1e-3)
	require.Greater(t, c.Endcoin(20), c.Endcoin(22))
	require.Less(t, c.Gaiacoin(20), c.Gaiacoin(22))
}

func TestTable(t *testing.T) {
	rows, err := emission.Table(emission.DefaultSymmetric(), 19, 23, 0.1)
	require.NoError(t, err)
	require.Len(t, rows, 40)
	require.InDelta(t, 19, rows[0].Temperature, 1e-9)
	require.InDelta(t, 22.9, rows[len(rows)-1].Temperature, 1e-9)

	rows, err = emission.Table(emission.DefaultLegacy(), 21, 21, 0.1)
	require.NoError(t, err)
	require.Empty(t, rows)
}

func TestFailingTable(t *testing.T) {
	tests := []struct {
		name           string
		from, to, step float64
	}{
		{"zero_step", 19, 23, 0},
		{"negative_step", 19, 23, -0.1},
		{"inverted_range", 23, 19, 0.1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := emission.Table(emission.DefaultSymmetric(), tt.from, tt.to, tt.step)
			require.ErrorIs(t, err, emission.ErrInvalidRange)
		})
	}
}
