package signalfeederinfra

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/imetandy/emission-testing/internal/core/ports"
	log "github.com/sirupsen/logrus"
)

type websocketSource struct {
	lock sync.Mutex
	url  string
	conn *websocket.Conn
}

// NewWebsocketSource dials the given websocket endpoint. Every text message
// received is expected to be a JSON signal sample. A normal closure of the
// connection by the server is reported as ports.ErrSignalExhausted.
func NewWebsocketSource(ctx context.Context, url string) (ports.SignalSource, error) {
	if url == "" {
		return nil, ErrMissingSignalURL
	}

	conn, err := connect(ctx, url)
	if err != nil {
		return nil, err
	}

	return &websocketSource{url: url, conn: conn}, nil
}

func (s *websocketSource) Next(ctx context.Context) (ports.SignalSample, error) {
	s.lock.Lock()
	defer s.lock.Unlock()

	if err := ctx.Err(); err != nil {
		return ports.SignalSample{}, err
	}

	deadline, _ := ctx.Deadline()
	//nolint
	s.conn.SetReadDeadline(deadline)

	// A cancelled ctx expires the read deadline to unblock ReadMessage.
	done := make(chan struct{})
	defer close(done)
	go func() {
		select {
		case <-ctx.Done():
			//nolint
			s.conn.SetReadDeadline(time.Now())
		case <-done:
		}
	}()

	for {
		msgType, message, err := s.conn.ReadMessage()
		if err != nil {
			if ctxErr := ctx.Err(); ctxErr != nil {
				return ports.SignalSample{}, ctxErr
			}
			if websocket.IsCloseError(
				err, websocket.CloseNormalClosure, websocket.CloseGoingAway,
			) {
				return ports.SignalSample{}, ports.ErrSignalExhausted
			}
			return ports.SignalSample{}, fmt.Errorf("read signal message: %w", err)
		}
		if msgType != websocket.TextMessage {
			log.Debugf("skipping non-text message from %s", s.url)
			continue
		}

		return parseSignalMsg(message)
	}
}

// Close doesn't take the lock so that a Next blocked on reading is
// unblocked by the connection being closed.
func (s *websocketSource) Close() error {
	//nolint
	s.conn.WriteMessage(
		websocket.CloseMessage,
		websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""),
	)
	return s.conn.Close()
}

func connect(ctx context.Context, url string) (*websocket.Conn, error) {
	conn, _, err := websocket.DefaultDialer.DialContext(ctx, url, nil)
	if err != nil {
		return nil, fmt.Errorf("dial signal websocket: %w", err)
	}
	return conn, nil
}
