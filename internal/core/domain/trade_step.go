package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// TradeStep records a single trade applied to a pool along with the pool
// state right before and right after it.
type TradeStep struct {
	Index          int             `json:"index"`
	Side           Side            `json:"side"`
	AmountIn       decimal.Decimal `json:"amount_in"`
	AmountOut      decimal.Decimal `json:"amount_out"`
	RatioRefreshed bool            `json:"ratio_refreshed"`
	Before         Snapshot        `json:"before"`
	After          Snapshot        `json:"after"`
	Timestamp      time.Time       `json:"timestamp"`
}

// TokenIn returns the name of the supplied token.
func (s TradeStep) TokenIn() string {
	return s.Side.TokenIn()
}

// TokenOut returns the name of the received token.
func (s TradeStep) TokenOut() string {
	return s.Side.TokenOut()
}
