package application

import (
	"github.com/imetandy/emission-testing/internal/core/domain"
	"github.com/imetandy/emission-testing/internal/core/ports"
	"github.com/shopspring/decimal"
)

// Config collects everything needed to build the services of the
// application. Services are built lazily and only once.
type Config struct {
	ReserveA decimal.Decimal
	ReserveB decimal.Decimal

	SignalFeeder ports.SignalFeeder
	Publisher    ports.Publisher
	PoolObserver ports.PoolObserver
	StepSinks    []ports.StepSink
	TradeSampler TradeSampler
	Simulation   SimulationConfig

	pool       *domain.Pool
	simulation SimulationService
}

func (c *Config) Validate() error {
	if _, err := c.poolEngine(); err != nil {
		return err
	}
	if _, err := c.simulationService(); err != nil {
		return err
	}
	return nil
}

func (c *Config) Pool() *domain.Pool {
	pool, _ := c.poolEngine()
	return pool
}

func (c *Config) SimulationService() SimulationService {
	svc, _ := c.simulationService()
	return svc
}

func (c *Config) poolEngine() (*domain.Pool, error) {
	if c.pool == nil {
		pool, err := domain.NewPool(c.ReserveA, c.ReserveB)
		if err != nil {
			return nil, err
		}
		c.pool = pool
	}
	return c.pool, nil
}

func (c *Config) simulationService() (SimulationService, error) {
	if c.simulation == nil {
		pool, err := c.poolEngine()
		if err != nil {
			return nil, err
		}
		svc, err := NewSimulationService(
			pool, c.SignalFeeder, c.Publisher, c.PoolObserver,
			c.StepSinks, c.TradeSampler, c.Simulation,
		)
		if err != nil {
			return nil, err
		}
		c.simulation = svc
	}
	return c.simulation, nil
}
