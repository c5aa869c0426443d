package application_test

import (
	"context"

	"github.com/imetandy/emission-testing/internal/core/domain"
	"github.com/imetandy/emission-testing/internal/core/ports"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

// **** Signal feeder ****

type mockSignalFeeder struct {
	mock.Mock
}

func (m *mockSignalFeeder) Sample(ctx context.Context) (ports.SignalSample, error) {
	args := m.Called(ctx)

	var res ports.SignalSample
	if a := args.Get(0); a != nil {
		res = a.(ports.SignalSample)
	}
	return res, args.Error(1)
}

func (m *mockSignalFeeder) Close() error {
	args := m.Called()
	return args.Error(0)
}

// **** Publisher ****

type mockPublisher struct {
	mock.Mock
}

func (m *mockPublisher) Subscribe(topic, endpoint, secret string) (string, error) {
	args := m.Called(topic, endpoint, secret)

	var res string
	if a := args.Get(0); a != nil {
		res = a.(string)
	}
	return res, args.Error(1)
}

func (m *mockPublisher) Unsubscribe(id string) error {
	args := m.Called(id)
	return args.Error(0)
}

func (m *mockPublisher) ListSubscriptionsForTopic(topic string) []ports.Subscription {
	args := m.Called(topic)

	var res []ports.Subscription
	if a := args.Get(0); a != nil {
		res = a.([]ports.Subscription)
	}
	return res
}

func (m *mockPublisher) Publish(topic, message string) error {
	args := m.Called(topic, message)
	return args.Error(0)
}

// **** Pool observer ****

type mockPoolObserver struct {
	mock.Mock
}

func (m *mockPoolObserver) ObserveSnapshot(snapshot domain.Snapshot) {
	m.Called(snapshot)
}

func (m *mockPoolObserver) ObserveTrade(side domain.Side, snapshot domain.Snapshot) {
	m.Called(side, snapshot)
}

func (m *mockPoolObserver) ObserveRatioRefresh(snapshot domain.Snapshot) {
	m.Called(snapshot)
}

// **** Step sink ****

type mockStepSink struct {
	mock.Mock
}

func (m *mockStepSink) PutSteps(steps []domain.TradeStep) error {
	args := m.Called(steps)
	return args.Error(0)
}

// **** Trade sampler ****

type sampledTrade struct {
	amount decimal.Decimal
	side   domain.Side
}

// fixedTradeSampler replays the given trades in a loop.
type fixedTradeSampler struct {
	trades []sampledTrade
	next   int
}

func (s *fixedTradeSampler) Next() (decimal.Decimal, domain.Side) {
	t := s.trades[s.next%len(s.trades)]
	s.next++
	return t.amount, t.side
}
