package domain

import (
	"sync"

	"github.com/imetandy/emission-testing/pkg/marketmaking"
	"github.com/imetandy/emission-testing/pkg/marketmaking/formula"
	"github.com/imetandy/emission-testing/pkg/mathutil"
	"github.com/shopspring/decimal"
)

var constantProductStrategy = marketmaking.NewStrategyFromFormula(
	"constant-product",
	"two asset pool whose reserves product is kept constant across trades",
	formula.ConstantProduct{},
)

// Pool defines the two asset constant product pool. The invariant k is fixed
// at creation and every trade recomputes the reserves from it.
//
// The ratio scales the adjusted price of token A only. It's derived from the
// latest signal sample but it's committed only when RefreshRatio is called.
type Pool struct {
	lock *sync.RWMutex

	reserveA decimal.Decimal
	reserveB decimal.Decimal
	k        decimal.Decimal
	ratio    decimal.Decimal

	signalNumerator   decimal.Decimal
	signalDenominator decimal.Decimal

	strategy *marketmaking.MakingStrategy
}

// NewPool returns a new pool with the given initial reserves and a neutral
// ratio.
func NewPool(reserveA, reserveB decimal.Decimal) (*Pool, error) {
	if !mathutil.IsPositive(reserveA) || !mathutil.IsPositive(reserveB) {
		return nil, ErrInvalidReserve
	}

	return &Pool{
		lock:              &sync.RWMutex{},
		reserveA:          reserveA,
		reserveB:          reserveB,
		k:                 reserveA.Mul(reserveB),
		ratio:             decimal.NewFromInt(DefaultRatio),
		signalNumerator:   decimal.NewFromInt(DefaultRatio),
		signalDenominator: decimal.NewFromInt(DefaultRatio),
		strategy:          constantProductStrategy,
	}, nil
}

// ReserveA returns the amount of token A held by the pool.
func (p *Pool) ReserveA() decimal.Decimal {
	p.lock.RLock()
	defer p.lock.RUnlock()

	return p.reserveA
}

// ReserveB returns the amount of token B held by the pool.
func (p *Pool) ReserveB() decimal.Decimal {
	p.lock.RLock()
	defer p.lock.RUnlock()

	return p.reserveB
}

// K returns the invariant constant product.
func (p *Pool) K() decimal.Decimal {
	return p.k
}

// Ratio returns the committed ratio used for adjusted prices.
func (p *Pool) Ratio() decimal.Decimal {
	p.lock.RLock()
	defer p.lock.RUnlock()

	return p.ratio
}

// Signal returns the latest recorded signal sample.
func (p *Pool) Signal() (numerator, denominator decimal.Decimal) {
	p.lock.RLock()
	defer p.lock.RUnlock()

	return p.signalNumerator, p.signalDenominator
}

// Strategy returns the market making strategy of the pool.
func (p *Pool) Strategy() *marketmaking.MakingStrategy {
	return p.strategy
}

// PriceAInB returns how many units of token B one unit of token A is worth.
func (p *Pool) PriceAInB() decimal.Decimal {
	p.lock.RLock()
	defer p.lock.RUnlock()

	return p.priceAInB()
}

// PriceBInA returns how many units of token A one unit of token B is worth.
func (p *Pool) PriceBInA() decimal.Decimal {
	p.lock.RLock()
	defer p.lock.RUnlock()

	return p.priceBInA()
}

// PriceAInBAdjusted returns the price of token A in token B scaled by the
// committed ratio.
func (p *Pool) PriceAInBAdjusted() decimal.Decimal {
	p.lock.RLock()
	defer p.lock.RUnlock()

	return p.priceAInB().Mul(p.ratio)
}

// SetSignal records the latest external signal sample. The ratio is left
// untouched until the next RefreshRatio.
func (p *Pool) SetSignal(numerator, denominator decimal.Decimal) error {
	if denominator.IsZero() {
		return ErrInvalidSignal
	}
	if !mathutil.IsPositive(mathutil.DivSignificant(numerator, denominator)) {
		return ErrInvalidSignal
	}

	p.lock.Lock()
	defer p.lock.Unlock()

	p.signalNumerator = numerator
	p.signalDenominator = denominator
	return nil
}

// RefreshRatio commits the ratio derived from the latest signal sample.
func (p *Pool) RefreshRatio() {
	p.lock.Lock()
	defer p.lock.Unlock()

	p.ratio = mathutil.DivSignificant(p.signalNumerator, p.signalDenominator)
}

// Trade supplies amount of the token identified by side to the pool. The
// opposite reserve is recomputed from the invariant and both reserves are
// updated together.
func (p *Pool) Trade(amount decimal.Decimal, side Side) error {
	if !side.IsValid() {
		return ErrInvalidSide
	}
	if !mathutil.IsPositive(amount) {
		return ErrInvalidTradeAmount
	}

	p.lock.Lock()
	defer p.lock.Unlock()

	if side == SideA {
		newReserveA := p.reserveA.Add(amount)
		p.reserveB = mathutil.DivSignificant(p.k, newReserveA)
		p.reserveA = newReserveA
		return nil
	}

	newReserveB := p.reserveB.Add(amount)
	p.reserveA = mathutil.DivSignificant(p.k, newReserveB)
	p.reserveB = newReserveB
	return nil
}

// QuoteOutGivenIn returns the amount of the opposite token that trading
// amountIn on the given side would release, without changing the pool.
func (p *Pool) QuoteOutGivenIn(
	amountIn decimal.Decimal, side Side,
) (decimal.Decimal, error) {
	if !side.IsValid() {
		return decimal.Zero, ErrInvalidSide
	}
	if !mathutil.IsPositive(amountIn) {
		return decimal.Zero, ErrInvalidTradeAmount
	}

	p.lock.RLock()
	defer p.lock.RUnlock()

	return p.strategy.Formula().OutGivenIn(p.formulaOpts(side), amountIn)
}

// QuoteInGivenOut returns the amount of token to supply on the given side to
// receive amountOut of the opposite token, without changing the pool.
func (p *Pool) QuoteInGivenOut(
	amountOut decimal.Decimal, side Side,
) (decimal.Decimal, error) {
	if !side.IsValid() {
		return decimal.Zero, ErrInvalidSide
	}
	if !mathutil.IsPositive(amountOut) {
		return decimal.Zero, ErrInvalidTradeAmount
	}

	p.lock.RLock()
	defer p.lock.RUnlock()

	return p.strategy.Formula().InGivenOut(p.formulaOpts(side), amountOut)
}

// Snapshot returns a consistent view of the whole pool state.
func (p *Pool) Snapshot() Snapshot {
	p.lock.RLock()
	defer p.lock.RUnlock()

	priceAInB := p.priceAInB()
	return Snapshot{
		ReserveA:          p.reserveA,
		ReserveB:          p.reserveB,
		K:                 p.k,
		Ratio:             p.ratio,
		PriceAInB:         priceAInB,
		PriceBInA:         p.priceBInA(),
		PriceAInBAdjusted: priceAInB.Mul(p.ratio),
	}
}

func (p *Pool) priceAInB() decimal.Decimal {
	return mathutil.DivSignificant(p.reserveB, p.reserveA)
}

func (p *Pool) priceBInA() decimal.Decimal {
	return mathutil.DivSignificant(p.reserveA, p.reserveB)
}

func (p *Pool) formulaOpts(side Side) formula.ConstantProductOpts {
	if side == SideA {
		return formula.ConstantProductOpts{
			BalanceIn:  p.reserveA,
			BalanceOut: p.reserveB,
			Invariant:  p.k,
		}
	}
	return formula.ConstantProductOpts{
		BalanceIn:  p.reserveB,
		BalanceOut: p.reserveA,
		Invariant:  p.k,
	}
}
