package domain

import (
	"github.com/imetandy/emission-testing/pkg/mathutil"
	"github.com/shopspring/decimal"
)

// Snapshot is a consistent read of a pool's state at some point in time.
type Snapshot struct {
	ReserveA          decimal.Decimal `json:"reserve_a"`
	ReserveB          decimal.Decimal `json:"reserve_b"`
	K                 decimal.Decimal `json:"k"`
	Ratio             decimal.Decimal `json:"ratio"`
	PriceAInB         decimal.Decimal `json:"price_a_in_b"`
	PriceBInA         decimal.Decimal `json:"price_b_in_a"`
	PriceAInBAdjusted decimal.Decimal `json:"price_a_in_b_adjusted"`
}

// Reserve returns the reserve of the token supplied on the given side.
func (s Snapshot) Reserve(side Side) decimal.Decimal {
	if side == SideA {
		return s.ReserveA
	}
	return s.ReserveB
}

// InvariantError returns the relative distance between the product of the
// reserves and k.
func (s Snapshot) InvariantError() decimal.Decimal {
	return mathutil.RelativeError(s.ReserveA.Mul(s.ReserveB), s.K)
}

// AmountReceived returns the amount of the opposite token released by a
// trade on the given side, as the difference of the receiving reserve
// before and after the trade.
func AmountReceived(before, after Snapshot, side Side) decimal.Decimal {
	receiving := side.Opposite()
	return before.Reserve(receiving).Sub(after.Reserve(receiving))
}
