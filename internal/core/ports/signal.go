package ports

import (
	"context"
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

// ErrSignalExhausted is returned by finite signal sources once every sample
// has been consumed.
var ErrSignalExhausted = errors.New("signal source exhausted")

// SignalSample is a single reading of the external signal. The ratio it
// leads to is Numerator / Denominator.
type SignalSample struct {
	Numerator   decimal.Decimal `json:"numerator"`
	Denominator decimal.Decimal `json:"denominator"`
	At          time.Time       `json:"at,omitempty"`
}

// SignalSource produces external signal samples.
type SignalSource interface {
	// Next blocks until the next sample is available.
	Next(ctx context.Context) (SignalSample, error)
	// Close releases any resource held by the source.
	Close() error
}

// SignalFeeder is the service used by the simulation to sample the external
// signal.
type SignalFeeder interface {
	Sample(ctx context.Context) (SignalSample, error)
	Close() error
}
