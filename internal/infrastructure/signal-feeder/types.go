package signalfeederinfra

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/imetandy/emission-testing/internal/core/ports"
	"github.com/shopspring/decimal"
)

const (
	StaticSource    = "static"
	FileSource      = "file"
	WebsocketSource = "websocket"
)

var sources = map[string]struct{}{
	StaticSource:    {},
	FileSource:      {},
	WebsocketSource: {},
}

// SupportedSources returns the list of signal source kinds.
func SupportedSources() []string {
	return []string{StaticSource, FileSource, WebsocketSource}
}

// IsSupportedSource returns whether kind is a known signal source.
func IsSupportedSource(kind string) bool {
	_, ok := sources[kind]
	return ok
}

// SourceOpts groups the parameters for all source kinds, only those
// relevant to the chosen kind are used.
type SourceOpts struct {
	Numerator   decimal.Decimal
	Denominator decimal.Decimal
	FilePath    string
	URL         string
}

// signalMsg is the wire format of a sample, shared by file and websocket
// sources: {"numerator":"25","denominator":"20.8"}. Numbers are accepted
// either quoted or not.
type signalMsg struct {
	Numerator   *decimal.Decimal `json:"numerator"`
	Denominator *decimal.Decimal `json:"denominator"`
}

func parseSignalMsg(buf []byte) (ports.SignalSample, error) {
	msg := signalMsg{}
	if err := json.Unmarshal(buf, &msg); err != nil {
		return ports.SignalSample{}, fmt.Errorf("%w: %s", ErrMalformedSignalMsg, err)
	}
	if msg.Numerator == nil || msg.Denominator == nil {
		return ports.SignalSample{}, fmt.Errorf(
			"%w: numerator and denominator are required", ErrMalformedSignalMsg,
		)
	}

	return ports.SignalSample{
		Numerator:   *msg.Numerator,
		Denominator: *msg.Denominator,
		At:          time.Now(),
	}, nil
}
