package ports

import "github.com/imetandy/emission-testing/internal/core/domain"

// StepSink stores the trade steps recorded by a simulation.
type StepSink interface {
	PutSteps(steps []domain.TradeStep) error
}

// PoolObserver is notified about pool state changes, ie. to keep metrics.
type PoolObserver interface {
	ObserveSnapshot(snapshot domain.Snapshot)
	ObserveTrade(side domain.Side, snapshot domain.Snapshot)
	ObserveRatioRefresh(snapshot domain.Snapshot)
}
