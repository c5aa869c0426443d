package application

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/imetandy/emission-testing/internal/core/domain"
	"github.com/imetandy/emission-testing/internal/core/ports"
	"github.com/shopspring/decimal"
	log "github.com/sirupsen/logrus"
	"go.uber.org/ratelimit"
)

// SimulationService drives a pool through a sequence of sampled trades,
// keeping the external signal up to date and refreshing the ratio at a fixed
// cadence.
type SimulationService interface {
	Run(ctx context.Context) (*SimulationResult, error)
}

type simulationService struct {
	pool      *domain.Pool
	feeder    ports.SignalFeeder
	publisher ports.Publisher
	observer  ports.PoolObserver
	sinks     []ports.StepSink
	sampler   TradeSampler
	limiter   ratelimit.Limiter
	cfg       SimulationConfig
}

// NewSimulationService returns a simulation service for the given pool.
// The signal feeder, publisher and observer are optional. When sampler is
// nil, trades are randomly sampled according to cfg.
func NewSimulationService(
	pool *domain.Pool,
	feeder ports.SignalFeeder,
	publisher ports.Publisher,
	observer ports.PoolObserver,
	sinks []ports.StepSink,
	sampler TradeSampler,
	cfg SimulationConfig,
) (SimulationService, error) {
	if pool == nil {
		return nil, ErrMissingPool
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	if cfg.RunID == "" {
		cfg.RunID = uuid.New().String()
	}
	if sampler == nil {
		sampler = NewRandomTradeSampler(
			cfg.Seed, cfg.MinTradeAmount, cfg.MaxTradeAmount,
		)
	}

	limiter := ratelimit.NewUnlimited()
	if cfg.TradesPerSecond > 0 {
		limiter = ratelimit.New(cfg.TradesPerSecond)
	}

	return &simulationService{
		pool:      pool,
		feeder:    feeder,
		publisher: publisher,
		observer:  observer,
		sinks:     sinks,
		sampler:   sampler,
		limiter:   limiter,
		cfg:       cfg,
	}, nil
}

func (s *simulationService) Run(ctx context.Context) (*SimulationResult, error) {
	runLog := log.WithField("run_id", s.cfg.RunID)
	runLog.Infof("starting simulation of %d trades", s.cfg.NumTrades)

	initial := s.pool.Snapshot()
	if s.observer != nil {
		s.observer.ObserveSnapshot(initial)
	}

	result := &SimulationResult{
		RunID:   s.cfg.RunID,
		Steps:   make([]domain.TradeStep, 0, s.cfg.NumTrades),
		VolumeA: decimal.Zero,
		VolumeB: decimal.Zero,
		Initial: initial,
	}
	feederExhausted := false

	for i := 0; i < s.cfg.NumTrades; i++ {
		if err := ctx.Err(); err != nil {
			runLog.WithError(err).Warnf("simulation interrupted after %d trades", i)
			if storeErr := s.storeSteps(result.Steps); storeErr != nil {
				return nil, errors.Join(err, storeErr)
			}
			return nil, err
		}

		s.limiter.Take()

		if s.feeder != nil && !feederExhausted {
			feederExhausted = s.updateSignal(ctx, runLog)
		}

		amount, side := s.sampler.Next()
		step, err := s.trade(i, amount, side)
		if err != nil {
			return nil, err
		}

		if s.cfg.RefreshInterval > 0 && i > 0 && i%s.cfg.RefreshInterval == 0 {
			oldRatio := s.pool.Ratio()
			s.pool.RefreshRatio()
			snapshot := s.pool.Snapshot()

			runLog.Infof(
				"ratio refreshed after trade %d: %s -> %s",
				i, oldRatio.String(), snapshot.Ratio.String(),
			)
			step.RatioRefreshed = true
			result.RatioRefreshes++
			if s.observer != nil {
				s.observer.ObserveRatioRefresh(snapshot)
			}
			publishRatioRefreshTopic(s.publisher, s.cfg.RunID, i, oldRatio, snapshot)
		}

		if side == domain.SideA {
			result.VolumeA = result.VolumeA.Add(amount)
		} else {
			result.VolumeB = result.VolumeB.Add(amount)
		}
		result.Steps = append(result.Steps, *step)
		publishTradeStepTopic(s.publisher, s.cfg.RunID, *step)
	}

	result.NumTrades = len(result.Steps)
	result.Final = s.pool.Snapshot()

	if err := s.storeSteps(result.Steps); err != nil {
		return nil, err
	}

	runLog.Infof(
		"simulation completed: %d trades, %d ratio refreshes",
		result.NumTrades, result.RatioRefreshes,
	)
	return result, nil
}

func (s *simulationService) trade(
	index int, amount decimal.Decimal, side domain.Side,
) (*domain.TradeStep, error) {
	before := s.pool.Snapshot()

	log.Infof(
		"User is trading %s %s for %s",
		amount.String(), side.TokenIn(), side.TokenOut(),
	)
	if err := s.pool.Trade(amount, side); err != nil {
		return nil, err
	}

	after := s.pool.Snapshot()
	if s.observer != nil {
		s.observer.ObserveTrade(side, after)
	}

	log.Debugf(
		"reserves after trade %d: %s %s, %s %s",
		index,
		after.ReserveA.String(), domain.TokenNameA,
		after.ReserveB.String(), domain.TokenNameB,
	)

	return &domain.TradeStep{
		Index:     index,
		Side:      side,
		AmountIn:  amount,
		AmountOut: domain.AmountReceived(before, after, side),
		Before:    before,
		After:     after,
		Timestamp: time.Now().UTC(),
	}, nil
}

// updateSignal samples the feeder and records the result in the pool. It
// returns whether the feeder is exhausted. Any other failure is logged and
// the previous signal is kept.
func (s *simulationService) updateSignal(
	ctx context.Context, runLog *log.Entry,
) bool {
	sample, err := s.feeder.Sample(ctx)
	if err != nil {
		if errors.Is(err, ports.ErrSignalExhausted) {
			runLog.Info("signal source exhausted, keeping latest sample")
			return true
		}
		runLog.WithError(err).Warn("failed to sample signal, keeping latest sample")
		return false
	}

	if err := s.pool.SetSignal(sample.Numerator, sample.Denominator); err != nil {
		runLog.WithError(err).Warnf(
			"discarding signal sample %s/%s",
			sample.Numerator.String(), sample.Denominator.String(),
		)
	}
	return false
}

func (s *simulationService) storeSteps(steps []domain.TradeStep) error {
	for _, sink := range s.sinks {
		if err := sink.PutSteps(steps); err != nil {
			log.WithError(err).Warn("failed to store simulation steps")
			return err
		}
	}
	return nil
}
