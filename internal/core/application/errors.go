package application

import "errors"

var (
	// ErrMissingPool ...
	ErrMissingPool = errors.New("missing pool")
	// ErrInvalidNumOfTrades ...
	ErrInvalidNumOfTrades = errors.New("number of trades must not be negative")
	// ErrInvalidTradeAmountRange is returned when the range of sampled trade
	// amounts is empty or not positive.
	ErrInvalidTradeAmountRange = errors.New(
		"min trade amount must be positive and lower than max trade amount",
	)
	// ErrInvalidRefreshInterval ...
	ErrInvalidRefreshInterval = errors.New("ratio refresh interval must not be negative")
	// ErrInvalidTradesPerSecond ...
	ErrInvalidTradesPerSecond = errors.New("trades per second must not be negative")
)
