package trackingservice

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/goccy/go-json"
	"github.com/gorilla/websocket"

	"trackview/internal/adapters/out/platform"
	"trackview/internal/core/domain/model/kernel"
	"trackview/internal/core/domain/model/tracking"
	"trackview/internal/core/ports"
)

const (
	handshakeTimeout = 10 * time.Second
	pingPeriod       = 30 * time.Second
	closeGracePeriod = time.Second
)

var _ ports.PositionFeed = (*StreamFeed)(nil)

// StreamFeed is the push strategy: one WebSocket connection per
// subscription, carrying position frames for every order. Frames for other
// orders are ignored.
type StreamFeed struct {
	wsURL  string
	dialer *websocket.Dialer
	logger *slog.Logger
}

func NewStreamFeed(wsURL string, logger *slog.Logger) *StreamFeed {
	return &StreamFeed{
		wsURL: wsURL,
		dialer: &websocket.Dialer{
			Proxy:            http.ProxyFromEnvironment,
			HandshakeTimeout: handshakeTimeout,
		},
		logger: logger.With("component", "tracking_stream"),
	}
}

// PositionFrame is one message of the tracking stream.
type PositionFrame struct {
	OrderID   string   `json:"order_id"`
	CourierID string   `json:"courier_id"`
	Status    string   `json:"status"`
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`
}

// Subscribe dials the stream and returns once the connection is open.
func (f *StreamFeed) Subscribe(
	ctx context.Context,
	sub ports.Subscription,
	onUpdate func(tracking.CourierSample),
) (ports.Unsubscribe, error) {
	header := http.Header{}
	platform.SetBearer(header, sub.Credential)

	conn, resp, err := f.dialer.DialContext(ctx, f.wsURL, header)
	if err != nil {
		if resp != nil {
			return nil, fmt.Errorf("tracking stream dial failed (status %d): %w", resp.StatusCode, err)
		}
		return nil, fmt.Errorf("tracking stream dial failed: %w", err)
	}
	if resp != nil && resp.Body != nil {
		_ = resp.Body.Close()
	}

	s := &stream{
		conn:     conn,
		sub:      sub,
		onUpdate: onUpdate,
		logger:   f.logger.With("order_id", sub.OrderID),
		stop:     make(chan struct{}),
	}

	s.wg.Add(2)
	go s.listen()
	go s.pingLoop()

	s.logger.Info("Tracking stream connected")
	return s.close, nil
}

type stream struct {
	conn     *websocket.Conn
	sub      ports.Subscription
	onUpdate func(tracking.CourierSample)
	logger   *slog.Logger

	stop      chan struct{}
	closeOnce sync.Once
	wg        sync.WaitGroup
}

func (s *stream) listen() {
	defer s.wg.Done()

	for {
		_, message, err := s.conn.ReadMessage()
		if err != nil {
			select {
			case <-s.stop:
			default:
				if websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
					s.logger.Info("Tracking stream closed by server")
				} else {
					s.logger.Warn("Tracking stream read failed", "error", err)
				}
			}
			return
		}

		s.handleFrame(message)
	}
}

func (s *stream) handleFrame(message []byte) {
	var frame PositionFrame
	if err := json.Unmarshal(message, &frame); err != nil {
		s.logger.Warn("Dropping malformed tracking frame", "error", err)
		return
	}
	if frame.OrderID != s.sub.OrderID {
		return
	}
	if frame.Latitude == nil || frame.Longitude == nil {
		s.logger.Warn("Dropping tracking frame without coordinates")
		return
	}

	position, err := kernel.NewPoint(*frame.Latitude, *frame.Longitude)
	if err != nil {
		s.logger.Warn("Dropping tracking frame with invalid coordinates", "error", err)
		return
	}

	select {
	case <-s.stop:
		return
	default:
	}

	s.onUpdate(tracking.CourierSample{
		OrderID:   frame.OrderID,
		CourierID: frame.CourierID,
		Position:  position,
	})
}

func (s *stream) pingLoop() {
	defer s.wg.Done()

	ticker := time.NewTicker(pingPeriod)
	defer ticker.Stop()

	for {
		select {
		case <-s.stop:
			return
		case <-ticker.C:
			err := s.conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(closeGracePeriod))
			if err != nil && !errors.Is(err, websocket.ErrCloseSent) {
				s.logger.Debug("Tracking stream ping failed", "error", err)
			}
		}
	}
}

// close sends a normal-closure frame, closes the connection and waits for
// the reader, so onUpdate is never called after it returns.
func (s *stream) close() {
	s.closeOnce.Do(func() {
		close(s.stop)

		err := s.conn.WriteControl(
			websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""),
			time.Now().Add(closeGracePeriod),
		)
		if err != nil && !errors.Is(err, websocket.ErrCloseSent) {
			s.logger.Debug("Failed to send close message", "error", err)
		}
		_ = s.conn.Close()

		s.wg.Wait()
		s.logger.Info("Tracking stream disconnected")
	})
}
