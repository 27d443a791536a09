package webhook

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/medfieldpro/geofence/internal/config"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestWorker(url string, maxRetries int) *WebhookWorker {
	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{})

	cfg := &config.Config{
		WebhookURL:        url,
		WebhookSecret:     "s3cret",
		WebhookTimeout:    time.Second,
		WebhookMaxRetries: maxRetries,
		WebhookBaseDelay:  time.Millisecond,
	}
	return NewWebhookWorker(nil, logger, cfg)
}

func samplePayload(t *testing.T) (WebhookEvent, string) {
	distance := 150.0
	event := WebhookEvent{
		Type:           EventProximityApproaching,
		RepID:          "rep-42",
		Latitude:       40.7580,
		Longitude:      -73.9855,
		DistanceMeters: &distance,
		Timestamp:      time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC),
	}
	raw, err := json.Marshal(event)
	require.NoError(t, err)
	return event, string(raw)
}

func TestProcessWebhookEvent_DeliversSignedPayload(t *testing.T) {
	var gotBody, gotSignature string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		gotBody = string(body)
		gotSignature = r.Header.Get("X-Webhook-Signature")
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	worker := newTestWorker(srv.URL, 3)
	event, raw := samplePayload(t)

	ok := worker.processWebhookEvent(context.Background(), event, raw)

	require.True(t, ok)
	assert.Equal(t, raw, gotBody)
	assert.Equal(t, generateHMACSHA256(raw, "s3cret"), gotSignature)
}

func TestProcessWebhookEvent_RetriesUntilSuccess(t *testing.T) {
	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if atomic.AddInt32(&calls, 1) < 3 {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	worker := newTestWorker(srv.URL, 5)
	event, raw := samplePayload(t)

	assert.True(t, worker.processWebhookEvent(context.Background(), event, raw))
	assert.Equal(t, int32(3), atomic.LoadInt32(&calls))
}

func TestProcessWebhookEvent_GivesUpAfterMaxRetries(t *testing.T) {
	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	worker := newTestWorker(srv.URL, 2)
	event, raw := samplePayload(t)

	assert.False(t, worker.processWebhookEvent(context.Background(), event, raw))
	assert.Equal(t, int32(2), atomic.LoadInt32(&calls))
}

func TestProcessWebhookEvent_NoURL(t *testing.T) {
	worker := newTestWorker("", 3)
	event, raw := samplePayload(t)

	assert.False(t, worker.processWebhookEvent(context.Background(), event, raw))
}

func TestProcessWebhookEvent_CancelledContext(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	worker := newTestWorker(srv.URL, 3)
	worker.cfg.WebhookBaseDelay = time.Hour
	event, raw := samplePayload(t)

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(20 * time.Millisecond)
		cancel()
	}()

	assert.False(t, worker.processWebhookEvent(ctx, event, raw))
}

func TestWebhookEvent_OmitsUnknownDistance(t *testing.T) {
	raw, err := json.Marshal(WebhookEvent{Type: EventAttendancePending, RepID: "rep-1"})
	require.NoError(t, err)
	assert.NotContains(t, string(raw), "distance_meters")
}

func TestGenerateHMACSHA256(t *testing.T) {
	// RFC 4231, test case 2
	assert.Equal(t,
		"5bdcc146bf60754e6a042426089575c75a003f089d2739839dec58b964ec3843",
		generateHMACSHA256("what do ya want for nothing?", "Jefe"),
	)
}
