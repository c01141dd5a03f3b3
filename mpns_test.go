package mpns

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/notifykit/mpns/pkg/delegate"
	"github.com/notifykit/mpns/pkg/logger"
	"github.com/notifykit/mpns/pkg/notification"
	"github.com/notifykit/mpns/pkg/response"
)

func acceptingServer(t *testing.T) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set(response.HeaderNotificationStatus, "Received")
		w.Header().Set(response.HeaderDeviceConnectionStatus, "Connected")
		w.Header().Set(response.HeaderSubscriptionStatus, "Active")
		w.WriteHeader(http.StatusOK)
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestSynchronousPush(t *testing.T) {
	srv := acceptingServer(t)

	svc, err := New(
		WithHTTPClient(srv.Client()),
		WithLogger(logger.Discard),
	)
	require.NoError(t, err)
	defer svc.Close()

	toast := NewToast().
		MessageID(NewMessageID()).
		Title("Hello").
		Build()

	outcome, err := svc.Push(context.Background(), srv.URL, toast)
	require.NoError(t, err)
	assert.Equal(t, response.Received, outcome)
	assert.True(t, outcome.IsSuccessful())
}

func TestQueuedPushReachesDelegate(t *testing.T) {
	srv := acceptingServer(t)

	outcomes := make(chan response.Outcome, 1)
	svc, err := New(
		WithHTTPClient(srv.Client()),
		WithLogger(logger.Discard),
		WithQueue(2, 16),
		WithDelegate(delegate.Funcs{
			OnSent: func(_ *notification.Notification, o response.Outcome) {
				outcomes <- o
			},
		}),
	)
	require.NoError(t, err)
	defer svc.Close()

	tile := NewTile().
		NotificationClass(Within450).
		Title("Queued").
		Build()

	outcome, err := svc.Push(context.Background(), srv.URL, tile)
	require.NoError(t, err)
	assert.Equal(t, response.Undefined, outcome)

	select {
	case o := <-outcomes:
		assert.Equal(t, response.Received, o)
	case <-time.After(2 * time.Second):
		t.Fatal("delegate did not observe the queued push")
	}
}

func TestInvalidConfiguration(t *testing.T) {
	_, err := New(WithPoolSize(-1))
	require.Error(t, err)
}
