package main

import (
	"testing"

	"github.com/imetandy/emission-testing/internal/config"
	"github.com/imetandy/emission-testing/internal/core/domain"
	"github.com/imetandy/emission-testing/pkg/emission"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v2"
)

func TestParseTrade(t *testing.T) {
	tests := []struct {
		trade          string
		expectedSide   domain.Side
		expectedAmount string
	}{
		{"a:42", domain.SideA, "42"},
		{"Endcoin:0.5", domain.SideA, "0.5"},
		{"gc: 100", domain.SideB, "100"},
		{"b:1e3", domain.SideB, "1000"},
	}

	for _, tt := range tests {
		t.Run(tt.trade, func(t *testing.T) {
			side, amount, err := parseTrade(tt.trade)
			require.NoError(t, err)
			require.Equal(t, tt.expectedSide, side)
			require.Equal(t, tt.expectedAmount, amount.String())
		})
	}
}

func TestFailingParseTrade(t *testing.T) {
	tests := []string{"", "a", "a:b:c", "c:10", "a:ten"}

	for _, tt := range tests {
		t.Run(tt, func(t *testing.T) {
			_, _, err := parseTrade(tt)
			require.Error(t, err)
		})
	}
}

func TestParseSignal(t *testing.T) {
	numerator, denominator, err := parseSignal("25/20.8")
	require.NoError(t, err)
	require.Equal(t, "25", numerator.String())
	require.Equal(t, "20.8", denominator.String())

	for _, signal := range []string{"25", "25/", "/20.8", "25/20.8/1"} {
		_, _, err := parseSignal(signal)
		require.Error(t, err, signal)
	}
}

func TestGetCurve(t *testing.T) {
	curve, err := getCurve(legacyCurve)
	require.NoError(t, err)
	require.IsType(t, emission.Legacy{}, curve)

	curve, err = getCurve(symmetricCurve)
	require.NoError(t, err)
	require.IsType(t, emission.Symmetric{}, curve)

	_, err = getCurve("exponential")
	require.Error(t, err)
}

func TestFlagOverrides(t *testing.T) {
	var overrides map[string]interface{}

	app := cli.NewApp()
	app.Commands = []*cli.Command{{
		Name:  simulate.Name,
		Flags: simulate.Flags,
		Action: func(ctx *cli.Context) error {
			overrides = flagOverrides(ctx)
			return nil
		},
	}}

	err := app.Run([]string{
		"ammsim", "simulate", "--signal-file", "signal.jsonl", "--num-trades", "7",
	})
	require.NoError(t, err)
	require.Equal(t, map[string]interface{}{
		config.SignalFileKey: "signal.jsonl",
		config.NumTradesKey:  7,
	}, overrides)
}
