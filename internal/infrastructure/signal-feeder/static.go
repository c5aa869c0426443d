package signalfeederinfra

import (
	"context"
	"time"

	"github.com/imetandy/emission-testing/internal/core/ports"
	"github.com/shopspring/decimal"
)

type staticSource struct {
	numerator   decimal.Decimal
	denominator decimal.Decimal
}

// NewStaticSource returns a source that always yields the same sample.
func NewStaticSource(numerator, denominator decimal.Decimal) ports.SignalSource {
	return &staticSource{numerator, denominator}
}

func (s *staticSource) Next(ctx context.Context) (ports.SignalSample, error) {
	if err := ctx.Err(); err != nil {
		return ports.SignalSample{}, err
	}
	return ports.SignalSample{
		Numerator:   s.numerator,
		Denominator: s.denominator,
		At:          time.Now(),
	}, nil
}

func (s *staticSource) Close() error {
	return nil
}
