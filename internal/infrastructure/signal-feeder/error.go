package signalfeederinfra

import "errors"

var (
	ErrUnknownSource      = errors.New("unknown signal source")
	ErrMissingSignalFile  = errors.New("missing signal file path")
	ErrMissingSignalURL   = errors.New("missing signal websocket url")
	ErrMissingSource      = errors.New("missing signal source")
	ErrMalformedSignalMsg = errors.New("malformed signal message")
)
