// Package observability provides optional OpenTelemetry instrumentation for
// push deliveries.
package observability

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.21.0"
	"go.opentelemetry.io/otel/trace"

	"github.com/notifykit/mpns/pkg/config"
	"github.com/notifykit/mpns/pkg/response"
)

const instrumentationName = "mpns"

// Telemetry provides traces and metrics around push deliveries. The
// zero-config provider is a no-op.
type Telemetry struct {
	config        config.TelemetryConfig
	tracer        trace.Tracer
	meter         metric.Meter
	traceProvider *sdktrace.TracerProvider

	pushesSent   metric.Int64Counter
	pushesFailed metric.Int64Counter
	pushDuration metric.Float64Histogram
}

// NewTelemetry creates a telemetry provider. When cfg.Enabled is false the
// provider uses no-op tracer and meter and exports nothing.
func NewTelemetry(cfg config.TelemetryConfig) (*Telemetry, error) {
	t := &Telemetry{config: cfg}

	if !cfg.Enabled {
		t.tracer = otel.Tracer(instrumentationName)
		t.meter = otel.Meter(instrumentationName)
		return t, nil
	}

	if err := t.initTracing(); err != nil {
		return nil, fmt.Errorf("init tracing: %w", err)
	}
	if err := t.initMetrics(); err != nil {
		return nil, fmt.Errorf("init metrics: %w", err)
	}

	return t, nil
}

// initTracing initializes the OTLP trace pipeline.
func (t *Telemetry) initTracing() error {
	res, err := resource.New(context.Background(),
		resource.WithAttributes(
			semconv.ServiceName(t.config.ServiceName),
			semconv.ServiceVersion(t.config.ServiceVersion),
			semconv.DeploymentEnvironment(t.config.Environment),
		),
	)
	if err != nil {
		return fmt.Errorf("create resource: %w", err)
	}

	exporter, err := otlptrace.New(context.Background(),
		otlptracehttp.NewClient(
			otlptracehttp.WithEndpoint(t.config.OTLPEndpoint),
		),
	)
	if err != nil {
		return fmt.Errorf("create exporter: %w", err)
	}

	t.traceProvider = sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
		sdktrace.WithSampler(sdktrace.TraceIDRatioBased(t.config.SampleRate)),
	)

	otel.SetTracerProvider(t.traceProvider)
	otel.SetTextMapPropagator(propagation.TraceContext{})

	t.tracer = otel.Tracer(instrumentationName)
	return nil
}

// initMetrics initializes the push delivery instruments.
func (t *Telemetry) initMetrics() error {
	t.meter = otel.Meter(instrumentationName)

	var err error
	t.pushesSent, err = t.meter.Int64Counter(
		"mpns_pushes_sent_total",
		metric.WithDescription("Total number of push notifications accepted by the service"),
	)
	if err != nil {
		return fmt.Errorf("create pushes_sent counter: %w", err)
	}

	t.pushesFailed, err = t.meter.Int64Counter(
		"mpns_pushes_failed_total",
		metric.WithDescription("Total number of push notifications that failed"),
	)
	if err != nil {
		return fmt.Errorf("create pushes_failed counter: %w", err)
	}

	t.pushDuration, err = t.meter.Float64Histogram(
		"mpns_push_duration_seconds",
		metric.WithDescription("Push request duration in seconds"),
	)
	if err != nil {
		return fmt.Errorf("create push_duration histogram: %w", err)
	}

	return nil
}

// StartPush starts a span for a push attempt.
func (t *Telemetry) StartPush(ctx context.Context, uri string) (context.Context, trace.Span) {
	return t.tracer.Start(ctx, "mpns.push",
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(attribute.String("mpns.subscription_uri", uri)),
	)
}

// RecordPush records the result of a push attempt on the span and counters.
func (t *Telemetry) RecordPush(ctx context.Context, span trace.Span, outcome response.Outcome, duration time.Duration, err error) {
	attrs := metric.WithAttributes(
		attribute.String("outcome", outcome.Name()),
		attribute.Int("status_code", outcome.StatusCode()),
	)

	span.SetAttributes(
		attribute.String("mpns.outcome", outcome.Name()),
		attribute.Int("http.status_code", outcome.StatusCode()),
	)

	switch {
	case err != nil:
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		if t.pushesFailed != nil {
			t.pushesFailed.Add(ctx, 1, attrs)
		}
	case outcome.IsSuccessful():
		span.SetStatus(codes.Ok, "")
		if t.pushesSent != nil {
			t.pushesSent.Add(ctx, 1, attrs)
		}
	default:
		span.SetStatus(codes.Error, outcome.Name())
		if t.pushesFailed != nil {
			t.pushesFailed.Add(ctx, 1, attrs)
		}
	}

	if t.pushDuration != nil {
		t.pushDuration.Record(ctx, duration.Seconds(), attrs)
	}
	span.End()
}

// Shutdown flushes and stops the trace pipeline.
func (t *Telemetry) Shutdown(ctx context.Context) error {
	if t.traceProvider == nil {
		return nil
	}
	return t.traceProvider.Shutdown(ctx)
}
