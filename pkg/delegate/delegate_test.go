package delegate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/notifykit/mpns/pkg/logger"
	"github.com/notifykit/mpns/pkg/notification"
	"github.com/notifykit/mpns/pkg/response"
)

type call struct {
	kind    string
	outcome response.Outcome
}

type recordingDelegate struct {
	calls []call
}

func (d *recordingDelegate) MessageSent(n *notification.Notification, o response.Outcome) {
	d.calls = append(d.calls, call{"sent", o})
}

func (d *recordingDelegate) MessageFailed(n *notification.Notification, o response.Outcome) {
	d.calls = append(d.calls, call{"failed", o})
}

func TestNotifyFiresExactlyOneCallback(t *testing.T) {
	n := notification.NewToast().Title("hi").Build()

	tests := []struct {
		name    string
		outcome response.Outcome
		want    string
	}{
		{"received is sent", response.Received, "sent"},
		{"queued is sent", response.Queued, "sent"},
		{"queue full is failed", response.QueueFull, "failed"},
		{"expired is failed", response.Expired, "failed"},
		{"undefined is failed", response.Undefined, "failed"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := &recordingDelegate{}
			NewNotifier(d, logger.Discard).Notify(n, tt.outcome)

			require.Len(t, d.calls, 1)
			assert.Equal(t, tt.want, d.calls[0].kind)
			assert.Equal(t, tt.outcome, d.calls[0].outcome)
		})
	}
}

func TestNotifyNilDelegate(t *testing.T) {
	n := notification.NewToast().Title("hi").Build()
	assert.NotPanics(t, func() {
		NewNotifier(nil, nil).Notify(n, response.Received)
	})
}

func TestNotifyRecoversFromPanic(t *testing.T) {
	n := notification.NewToast().Title("hi").Build()
	d := Funcs{
		OnSent: func(*notification.Notification, response.Outcome) { panic("boom") },
	}

	assert.NotPanics(t, func() {
		NewNotifier(d, logger.Discard).Notify(n, response.Received)
	})
}

func TestFuncsSkipsNilFields(t *testing.T) {
	n := notification.NewToast().Title("hi").Build()

	var failed int
	d := Funcs{
		OnFailed: func(*notification.Notification, response.Outcome) { failed++ },
	}

	notifier := NewNotifier(d, logger.Discard)
	notifier.Notify(n, response.Received) // OnSent is nil, nothing happens
	notifier.Notify(n, response.Expired)

	assert.Equal(t, 1, failed)
}
