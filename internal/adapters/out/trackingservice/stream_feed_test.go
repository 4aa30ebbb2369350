package trackingservice_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"trackview/internal/adapters/out/trackingservice"
	"trackview/internal/core/domain/model/tracking"
	"trackview/internal/core/ports"
)

// mockTrackingStreamServer hands every accepted connection to the test.
type mockTrackingStreamServer struct {
	server   *httptest.Server
	upgrader websocket.Upgrader
	connChan chan *websocket.Conn
	authChan chan string
}

func newMockTrackingStreamServer(t *testing.T) *mockTrackingStreamServer {
	t.Helper()

	m := &mockTrackingStreamServer{
		upgrader: websocket.Upgrader{
			CheckOrigin: func(*http.Request) bool { return true },
		},
		connChan: make(chan *websocket.Conn, 1),
		authChan: make(chan string, 1),
	}

	m.server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/tracking/ws" {
			http.NotFound(w, r)
			return
		}
		conn, err := m.upgrader.Upgrade(w, r, nil)
		if err != nil {
			return
		}
		m.authChan <- r.Header.Get("Authorization")
		m.connChan <- conn
	}))
	t.Cleanup(m.server.Close)

	return m
}

func (m *mockTrackingStreamServer) url(path string) string {
	return "ws" + strings.TrimPrefix(m.server.URL, "http") + path
}

func (m *mockTrackingStreamServer) accept(t *testing.T) *websocket.Conn {
	t.Helper()
	select {
	case conn := <-m.connChan:
		t.Cleanup(func() { _ = conn.Close() })
		return conn
	case <-time.After(2 * time.Second):
		t.Fatal("client did not connect")
		return nil
	}
}

type sampleRecorder struct {
	mu      sync.Mutex
	samples []tracking.CourierSample
}

func (r *sampleRecorder) onUpdate(s tracking.CourierSample) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.samples = append(r.samples, s)
}

func (r *sampleRecorder) snapshot() []tracking.CourierSample {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]tracking.CourierSample(nil), r.samples...)
}

func TestStreamFeed_FiltersFramesBySelectedOrder(t *testing.T) {
	srv := newMockTrackingStreamServer(t)
	feed := trackingservice.NewStreamFeed(srv.url("/tracking/ws"), newLogger())
	rec := &sampleRecorder{}

	unsubscribe, err := feed.Subscribe(t.Context(),
		ports.Subscription{OrderID: "42", CourierID: "C1", Credential: "token"}, rec.onUpdate)
	require.NoError(t, err)
	defer unsubscribe()

	assert.Equal(t, "Bearer token", <-srv.authChan)
	conn := srv.accept(t)

	frames := []string{
		`{"order_id":"42","latitude":1,"longitude":2}`,
		`{"order_id":"99","latitude":3,"longitude":4}`,
		`not json at all`,
		`{"order_id":"42"}`,
		`{"order_id":"42","latitude":300,"longitude":4}`,
		`{"order_id":"42","courier_id":"C1","latitude":7,"longitude":8}`,
	}
	for _, frame := range frames {
		require.NoError(t, conn.WriteMessage(websocket.TextMessage, []byte(frame)))
	}

	require.Eventually(t, func() bool { return len(rec.snapshot()) == 2 }, 2*time.Second, 5*time.Millisecond)

	samples := rec.snapshot()
	assert.InDelta(t, 1, samples[0].Position.Lat(), 1e-9)
	assert.InDelta(t, 2, samples[0].Position.Lon(), 1e-9)
	assert.Equal(t, "42", samples[0].OrderID)
	assert.InDelta(t, 7, samples[1].Position.Lat(), 1e-9)
	assert.Equal(t, "C1", samples[1].CourierID)
}

func TestStreamFeed_UnsubscribeClosesConnection(t *testing.T) {
	srv := newMockTrackingStreamServer(t)
	feed := trackingservice.NewStreamFeed(srv.url("/tracking/ws"), newLogger())
	rec := &sampleRecorder{}

	unsubscribe, err := feed.Subscribe(t.Context(), ports.Subscription{OrderID: "42"}, rec.onUpdate)
	require.NoError(t, err)
	<-srv.authChan
	conn := srv.accept(t)

	unsubscribe()
	unsubscribe()

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	_, _, err = conn.ReadMessage()
	require.Error(t, err)
	assert.True(t, websocket.IsCloseError(err, websocket.CloseNormalClosure), "got %v", err)

	_ = conn.WriteMessage(websocket.TextMessage, []byte(`{"order_id":"42","latitude":1,"longitude":2}`))
	time.Sleep(20 * time.Millisecond)
	assert.Empty(t, rec.snapshot())
}

func TestStreamFeed_ServerCloseEndsQuietly(t *testing.T) {
	srv := newMockTrackingStreamServer(t)
	feed := trackingservice.NewStreamFeed(srv.url("/tracking/ws"), newLogger())

	unsubscribe, err := feed.Subscribe(t.Context(), ports.Subscription{OrderID: "42"}, func(tracking.CourierSample) {})
	require.NoError(t, err)
	<-srv.authChan
	conn := srv.accept(t)

	require.NoError(t, conn.WriteMessage(websocket.CloseMessage,
		websocket.FormatCloseMessage(websocket.CloseGoingAway, "restart")))

	done := make(chan struct{})
	go func() {
		unsubscribe()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("unsubscribe hung after server close")
	}
}

func TestStreamFeed_DialFailure(t *testing.T) {
	srv := newMockTrackingStreamServer(t)
	feed := trackingservice.NewStreamFeed(srv.url("/wrong"), newLogger())

	_, err := feed.Subscribe(t.Context(), ports.Subscription{OrderID: "42"}, func(tracking.CourierSample) {})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 404")
}

func TestStreamFeed_DialCancelled(t *testing.T) {
	srv := newMockTrackingStreamServer(t)
	feed := trackingservice.NewStreamFeed(srv.url("/tracking/ws"), newLogger())

	ctx, cancel := context.WithCancel(t.Context())
	cancel()

	_, err := feed.Subscribe(ctx, ports.Subscription{OrderID: "42"}, func(tracking.CourierSample) {})

	require.Error(t, err)
}
