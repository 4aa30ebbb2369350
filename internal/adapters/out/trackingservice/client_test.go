package trackingservice_test

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"trackview/internal/adapters/out/trackingservice"
	"trackview/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestClient_CourierPosition(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		wantErr error
		wantLat float64
		wantLon float64
	}{
		{
			name:    "position",
			status:  http.StatusOK,
			body:    `{"courier_id":"C1","status":"в пути","latitude":55.75,"longitude":37.61,"updated_at":"2025-05-14T13:05:51Z"}`,
			wantLat: 55.75,
			wantLon: 37.61,
		},
		{name: "zero is a real coordinate", status: http.StatusOK, body: `{"latitude":0,"longitude":0}`},
		{name: "no coordinates", status: http.StatusOK, body: `{"courier_id":"C1"}`, wantErr: errs.ErrValueIsRequired},
		{name: "invalid coordinates", status: http.StatusOK, body: `{"latitude":91,"longitude":0}`, wantErr: errs.ErrValueIsOutOfRange},
		{name: "unknown courier", status: http.StatusNotFound, body: `{"error":"not found"}`, wantErr: errs.ErrObjectNotFound},
		{name: "server error", status: http.StatusInternalServerError, wantErr: errs.ErrUnexpectedStatus},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "/couriers/tracking/C1", r.URL.Path)
				assert.Equal(t, "Bearer token", r.Header.Get("Authorization"))
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			sample, err := trackingservice.NewClient(srv.URL, srv.Client()).CourierPosition(t.Context(), "C1", "token")

			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "C1", sample.CourierID)
			assert.False(t, sample.Position.IsZero())
			assert.InDelta(t, tt.wantLat, sample.Position.Lat(), 1e-9)
			assert.InDelta(t, tt.wantLon, sample.Position.Lon(), 1e-9)
		})
	}
}
