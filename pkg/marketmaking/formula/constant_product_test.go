package formula

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestConstantProduct_SpotPrice(t *testing.T) {
	tests := []struct {
		name          string
		opts          ConstantProductOpts
		wantSpotPrice decimal.Decimal
	}{
		{
			"balanced reserves",
			ConstantProductOpts{BalanceIn: dec("1000"), BalanceOut: dec("1000")},
			dec("1"),
		},
		{
			"unbalanced reserves",
			ConstantProductOpts{BalanceIn: dec("2"), BalanceOut: dec("19520")},
			dec("9760"),
		},
	}

	b := ConstantProduct{}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gotSpotPrice, err := b.SpotPrice(tt.opts)
			require.NoError(t, err)
			assert.True(t, tt.wantSpotPrice.Equal(gotSpotPrice), gotSpotPrice.String())
		})
	}
}

func TestConstantProduct_OutGivenIn(t *testing.T) {
	tests := []struct {
		name          string
		opts          ConstantProductOpts
		amountIn      decimal.Decimal
		wantAmountOut decimal.Decimal
	}{
		{
			"OutGivenIn with derived invariant",
			ConstantProductOpts{BalanceIn: dec("1000"), BalanceOut: dec("1000")},
			dec("1000"),
			dec("500"),
		},
		{
			"OutGivenIn with explicit invariant",
			ConstantProductOpts{
				BalanceIn:  dec("400"),
				BalanceOut: dec("2500"),
				Invariant:  dec("1000000"),
			},
			dec("100"),
			dec("500"),
		},
	}

	failingTests := []struct {
		name      string
		opts      interface{}
		amountIn  decimal.Decimal
		wantError error
	}{
		{
			"OutGivenIn fails if provided amount is 0",
			ConstantProductOpts{BalanceIn: dec("1000"), BalanceOut: dec("1000")},
			decimal.Zero,
			ErrAmountTooLow,
		},
		{
			"OutGivenIn fails if provided amount is negative",
			ConstantProductOpts{BalanceIn: dec("1000"), BalanceOut: dec("1000")},
			dec("-10"),
			ErrAmountTooLow,
		},
		{
			"OutGivenIn fails if a balance is zero",
			ConstantProductOpts{BalanceIn: decimal.Zero, BalanceOut: dec("1000")},
			dec("10"),
			ErrBalanceTooLow,
		},
		{
			"OutGivenIn fails with wrong opts type",
			struct{}{},
			dec("10"),
			ErrInvalidOptsType,
		},
	}

	b := ConstantProduct{}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gotAmountOut, err := b.OutGivenIn(tt.opts, tt.amountIn)
			require.NoError(t, err)
			assert.True(t, tt.wantAmountOut.Equal(gotAmountOut), gotAmountOut.String())
		})
	}

	for _, tt := range failingTests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := b.OutGivenIn(tt.opts, tt.amountIn)
			assert.Equal(t, tt.wantError, err)
		})
	}
}

func TestConstantProduct_OutGivenInHugeAmount(t *testing.T) {
	b := ConstantProduct{}
	opts := ConstantProductOpts{BalanceIn: dec("1000"), BalanceOut: dec("1000")}

	amountOut, err := b.OutGivenIn(opts, decimal.New(1, 40))
	require.NoError(t, err)
	require.True(t, amountOut.LessThan(opts.BalanceOut))
	require.True(t, amountOut.IsPositive())
}

func TestConstantProduct_InGivenOut(t *testing.T) {
	tests := []struct {
		name         string
		opts         ConstantProductOpts
		amountOut    decimal.Decimal
		wantAmountIn decimal.Decimal
	}{
		{
			"InGivenOut with derived invariant",
			ConstantProductOpts{BalanceIn: dec("1000"), BalanceOut: dec("1000")},
			dec("500"),
			dec("1000"),
		},
		{
			"InGivenOut with explicit invariant",
			ConstantProductOpts{
				BalanceIn:  dec("400"),
				BalanceOut: dec("2500"),
				Invariant:  dec("1000000"),
			},
			dec("500"),
			dec("100"),
		},
	}

	failingTests := []struct {
		name      string
		opts      ConstantProductOpts
		amountOut decimal.Decimal
		wantError error
	}{
		{
			"InGivenOut fails if provided amount is 0",
			ConstantProductOpts{BalanceIn: dec("1000"), BalanceOut: dec("1000")},
			decimal.Zero,
			ErrAmountTooLow,
		},
		{
			"InGivenOut fails if provided amount is equal or exceeds the balance",
			ConstantProductOpts{BalanceIn: dec("1000"), BalanceOut: dec("1000")},
			dec("1000"),
			ErrAmountTooBig,
		},
	}

	b := ConstantProduct{}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gotAmountIn, err := b.InGivenOut(tt.opts, tt.amountOut)
			require.NoError(t, err)
			assert.True(t, tt.wantAmountIn.Equal(gotAmountIn), gotAmountIn.String())
		})
	}

	for _, tt := range failingTests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := b.InGivenOut(tt.opts, tt.amountOut)
			assert.Equal(t, tt.wantError, err)
		})
	}
}
