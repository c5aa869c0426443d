package mathutil

import (
	"math/big"

	"github.com/shopspring/decimal"
)

var (
	// SignificantDigits is the number of significant digits kept by
	// DivSignificant. Quotients are never rounded to fewer digits than this,
	// no matter their magnitude.
	SignificantDigits int32 = 28

	// One is the decimal representation of 1.
	One = decimal.NewFromInt(1)
)

// DivSignificant divides x by y keeping SignificantDigits significant digits
// in the result. Unlike a division at a fixed number of decimal places, a
// tiny but positive quotient never collapses to zero.
// y must not be zero.
func DivSignificant(x, y decimal.Decimal) decimal.Decimal {
	quotientDigits := IntegerDigits(x) - IntegerDigits(y)
	places := SignificantDigits - quotientDigits + 1
	if places < 0 {
		places = 0
	}
	return x.DivRound(y, places)
}

// IntegerDigits returns the position of the most significant digit of d
// relative to the decimal point: 1100 -> 4, 0.5 -> 0, 0.005 -> -2.
// Zero has no significant digits and returns 0.
func IntegerDigits(d decimal.Decimal) int32 {
	if d.IsZero() {
		return 0
	}
	coefficient := new(big.Int).Abs(d.Coefficient())
	return int32(len(coefficient.String())) + d.Exponent()
}

// RelativeError returns |x - y| / |y|. If y is zero the absolute difference
// is returned instead.
func RelativeError(x, y decimal.Decimal) decimal.Decimal {
	diff := x.Sub(y).Abs()
	if y.IsZero() {
		return diff
	}
	return DivSignificant(diff, y.Abs())
}

// IsPositive returns whether d is strictly greater than zero.
func IsPositive(d decimal.Decimal) bool {
	return d.GreaterThan(decimal.Zero)
}
