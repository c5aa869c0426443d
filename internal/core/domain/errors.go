package domain

import "errors"

var (
	// ErrInvalidReserve is returned when a pool is created with a non-positive
	// reserve.
	ErrInvalidReserve = errors.New("reserve must be a positive amount")
	// ErrInvalidTradeAmount is returned when trading a non-positive amount.
	ErrInvalidTradeAmount = errors.New("trade amount must be a positive amount")
	// ErrInvalidSignal is returned when the signal sample has a zero
	// denominator or would produce a non-positive ratio.
	ErrInvalidSignal = errors.New(
		"signal denominator must not be zero and ratio must be positive",
	)
	// ErrInvalidSide ...
	ErrInvalidSide = errors.New("side must be either A or B")
)
