package signalfeederinfra

import (
	"context"
	"errors"
	"sync"

	"github.com/imetandy/emission-testing/internal/core/ports"
	"github.com/imetandy/emission-testing/pkg/circuitbreaker"
	"github.com/sony/gobreaker"
	log "github.com/sirupsen/logrus"
)

type signalFeederService struct {
	source ports.SignalSource
	cb     *gobreaker.CircuitBreaker

	lock      sync.RWMutex
	exhausted bool
}

// NewService returns a signal feeder sampling the given source through a
// circuit breaker, so that a misbehaving source stops being hammered.
func NewService(source ports.SignalSource) (ports.SignalFeeder, error) {
	if source == nil {
		return nil, ErrMissingSource
	}

	return &signalFeederService{
		source: source,
		cb:     circuitbreaker.NewCircuitBreaker("signal-feeder"),
	}, nil
}

// NewSource is a factory returning the source of the given kind.
func NewSource(
	ctx context.Context, kind string, opts SourceOpts,
) (ports.SignalSource, error) {
	switch kind {
	case StaticSource:
		return NewStaticSource(opts.Numerator, opts.Denominator), nil
	case FileSource:
		return NewFileSource(opts.FilePath)
	case WebsocketSource:
		return NewWebsocketSource(ctx, opts.URL)
	default:
		return nil, ErrUnknownSource
	}
}

func (s *signalFeederService) Sample(
	ctx context.Context,
) (ports.SignalSample, error) {
	if s.isExhausted() {
		return ports.SignalSample{}, ports.ErrSignalExhausted
	}

	res, err := s.cb.Execute(func() (interface{}, error) {
		return s.source.Next(ctx)
	})
	if err != nil {
		if errors.Is(err, ports.ErrSignalExhausted) {
			log.Debug("signal source exhausted, no more samples will be read")
			s.markExhausted()
		}
		return ports.SignalSample{}, err
	}

	return res.(ports.SignalSample), nil
}

func (s *signalFeederService) Close() error {
	return s.source.Close()
}

func (s *signalFeederService) isExhausted() bool {
	s.lock.RLock()
	defer s.lock.RUnlock()

	return s.exhausted
}

func (s *signalFeederService) markExhausted() {
	s.lock.Lock()
	defer s.lock.Unlock()

	s.exhausted = true
}
