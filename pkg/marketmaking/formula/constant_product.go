// Package formula defines the formulas that implement the
// marketmaking.MakingFormula interface
package formula

import (
	"errors"

	"github.com/imetandy/emission-testing/pkg/mathutil"
	"github.com/shopspring/decimal"
)

const ConstantProductType = 1

var (
	// ErrInvalidOptsType ...
	ErrInvalidOptsType = errors.New("opts must be of type ConstantProductOpts")
	// ErrAmountTooLow ...
	ErrAmountTooLow = errors.New("provided amount is too low")
	// ErrAmountTooBig ...
	ErrAmountTooBig = errors.New("provided amount is too big")
	// ErrBalanceTooLow ...
	ErrBalanceTooLow = errors.New("reserve balance amount is too low")
)

// ConstantProductOpts defines the parameters needed by the ConstantProduct
// formula.
type ConstantProductOpts struct {
	BalanceIn  decimal.Decimal
	BalanceOut decimal.Decimal
	// Invariant is the constant product the reserves must respect. When zero
	// it is derived as BalanceIn * BalanceOut.
	Invariant decimal.Decimal
}

func (o ConstantProductOpts) invariant() decimal.Decimal {
	if o.Invariant.IsZero() {
		return o.BalanceIn.Mul(o.BalanceOut)
	}
	return o.Invariant
}

func (o ConstantProductOpts) validate() error {
	if !mathutil.IsPositive(o.BalanceIn) || !mathutil.IsPositive(o.BalanceOut) {
		return ErrBalanceTooLow
	}
	return nil
}

// ConstantProduct defines an AMM strategy where the product of the two
// reserves stays constant across trades.
type ConstantProduct struct{}

// SpotPrice calculates the spot price of the in asset expressed in units of
// the out asset, given the balances of the two reserves.
func (ConstantProduct) SpotPrice(_opts interface{}) (spotPrice decimal.Decimal, err error) {
	opts, ok := _opts.(ConstantProductOpts)
	if !ok {
		err = ErrInvalidOptsType
		return
	}
	if err = opts.validate(); err != nil {
		return
	}

	spotPrice = mathutil.DivSignificant(opts.BalanceOut, opts.BalanceIn)
	return
}

// OutGivenIn returns the amountOut of asset that will be exchanged for the given amountIn.
func (ConstantProduct) OutGivenIn(
	_opts interface{}, amountIn decimal.Decimal,
) (amountOut decimal.Decimal, err error) {
	opts, ok := _opts.(ConstantProductOpts)
	if !ok {
		err = ErrInvalidOptsType
		return
	}
	if err = opts.validate(); err != nil {
		return
	}
	if !mathutil.IsPositive(amountIn) {
		err = ErrAmountTooLow
		return
	}

	newBalanceOut := mathutil.DivSignificant(
		opts.invariant(), opts.BalanceIn.Add(amountIn),
	)
	amount := opts.BalanceOut.Sub(newBalanceOut)
	if amount.GreaterThanOrEqual(opts.BalanceOut) {
		err = ErrAmountTooBig
		return
	}

	amountOut = amount
	return
}

// InGivenOut returns the amountIn of assets that will be needed for having the desired amountOut in return.
func (ConstantProduct) InGivenOut(
	_opts interface{}, amountOut decimal.Decimal,
) (amountIn decimal.Decimal, err error) {
	opts, ok := _opts.(ConstantProductOpts)
	if !ok {
		err = ErrInvalidOptsType
		return
	}
	if err = opts.validate(); err != nil {
		return
	}
	if !mathutil.IsPositive(amountOut) {
		err = ErrAmountTooLow
		return
	}
	if amountOut.GreaterThanOrEqual(opts.BalanceOut) {
		err = ErrAmountTooBig
		return
	}

	newBalanceIn := mathutil.DivSignificant(
		opts.invariant(), opts.BalanceOut.Sub(amountOut),
	)
	amountIn = newBalanceIn.Sub(opts.BalanceIn)
	return
}

func (ConstantProduct) FormulaType() int {
	return ConstantProductType
}
