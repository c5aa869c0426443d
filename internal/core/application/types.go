package application

import (
	"github.com/imetandy/emission-testing/internal/core/domain"
	"github.com/shopspring/decimal"
)

// DefaultRefreshInterval is the number of trades between two ratio
// refreshes, ie. about the number of trades made in a day.
const DefaultRefreshInterval = 20

// SimulationConfig holds the driver level policies of a simulation run.
type SimulationConfig struct {
	// RunID identifies the run in logs and published messages. A random one
	// is assigned when empty.
	RunID string
	// NumTrades is the number of trades applied to the pool.
	NumTrades int
	// MinTradeAmount and MaxTradeAmount bound the sampled trade amounts, the
	// former is inclusive while the latter is exclusive.
	MinTradeAmount int64
	MaxTradeAmount int64
	// RefreshInterval is the number of trades after which the pool ratio is
	// refreshed from the latest signal sample. Zero disables refreshes.
	RefreshInterval int
	// TradesPerSecond paces the trades. Zero means unlimited.
	TradesPerSecond int
	// Seed of the random trade sampler.
	Seed int64
}

func (c SimulationConfig) validate() error {
	if c.NumTrades < 0 {
		return ErrInvalidNumOfTrades
	}
	if c.MinTradeAmount <= 0 || c.MinTradeAmount >= c.MaxTradeAmount {
		return ErrInvalidTradeAmountRange
	}
	if c.RefreshInterval < 0 {
		return ErrInvalidRefreshInterval
	}
	if c.TradesPerSecond < 0 {
		return ErrInvalidTradesPerSecond
	}
	return nil
}

// SimulationResult summarizes a simulation run.
type SimulationResult struct {
	RunID          string             `json:"run_id"`
	Steps          []domain.TradeStep `json:"-"`
	NumTrades      int                `json:"num_trades"`
	RatioRefreshes int                `json:"ratio_refreshes"`
	VolumeA        decimal.Decimal    `json:"volume_a"`
	VolumeB        decimal.Decimal    `json:"volume_b"`
	Initial        domain.Snapshot    `json:"initial"`
	Final          domain.Snapshot    `json:"final"`
}

// RatioRefreshEvent is the message published when the ratio is refreshed.
type RatioRefreshEvent struct {
	RunID    string          `json:"run_id"`
	Index    int             `json:"index"`
	OldRatio decimal.Decimal `json:"old_ratio"`
	NewRatio decimal.Decimal `json:"new_ratio"`
	Snapshot domain.Snapshot `json:"snapshot"`
}

// TradeStepEvent is the message published after every trade.
type TradeStepEvent struct {
	RunID string           `json:"run_id"`
	Step  domain.TradeStep `json:"step"`
}
