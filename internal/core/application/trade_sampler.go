package application

import (
	"math/rand"

	"github.com/imetandy/emission-testing/internal/core/domain"
	"github.com/shopspring/decimal"
)

// TradeSampler produces the trades submitted by the simulation.
type TradeSampler interface {
	Next() (amount decimal.Decimal, side domain.Side)
}

type randomTradeSampler struct {
	rnd       *rand.Rand
	minAmount int64
	maxAmount int64
}

// NewRandomTradeSampler returns a sampler of integer amounts uniformly
// distributed in [minAmount, maxAmount) on a uniformly chosen side.
func NewRandomTradeSampler(seed, minAmount, maxAmount int64) TradeSampler {
	return &randomTradeSampler{
		rnd:       rand.New(rand.NewSource(seed)),
		minAmount: minAmount,
		maxAmount: maxAmount,
	}
}

func (s *randomTradeSampler) Next() (decimal.Decimal, domain.Side) {
	amount := s.minAmount + s.rnd.Int63n(s.maxAmount-s.minAmount)
	side := domain.SideA
	if s.rnd.Intn(2) == 1 {
		side = domain.SideB
	}
	return decimal.NewFromInt(amount), side
}
