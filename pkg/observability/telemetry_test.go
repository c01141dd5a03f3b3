package observability

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/notifykit/mpns/pkg/config"
	"github.com/notifykit/mpns/pkg/errors"
	"github.com/notifykit/mpns/pkg/response"
)

func TestDisabledTelemetryIsNoOp(t *testing.T) {
	telemetry, err := NewTelemetry(config.TelemetryConfig{Enabled: false})
	require.NoError(t, err)

	ctx, span := telemetry.StartPush(context.Background(), "http://example.com/channel")
	require.NotNil(t, span)

	assert.NotPanics(t, func() {
		telemetry.RecordPush(ctx, span, response.Received, 10*time.Millisecond, nil)
	})
	assert.NoError(t, telemetry.Shutdown(context.Background()))
}

func TestDisabledTelemetryRecordsFailures(t *testing.T) {
	telemetry, err := NewTelemetry(config.TelemetryConfig{Enabled: false})
	require.NoError(t, err)

	ctx, span := telemetry.StartPush(context.Background(), "http://example.com/channel")
	assert.NotPanics(t, func() {
		telemetry.RecordPush(ctx, span, response.Undefined, time.Millisecond,
			errors.New(errors.ErrConnectionFailed, "refused"))
	})

	ctx, span = telemetry.StartPush(context.Background(), "http://example.com/channel")
	assert.NotPanics(t, func() {
		telemetry.RecordPush(ctx, span, response.Expired, time.Millisecond, nil)
	})
}
