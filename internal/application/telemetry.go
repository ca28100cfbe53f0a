package application

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	metricnoop "go.opentelemetry.io/otel/metric/noop"
	"go.opentelemetry.io/otel/trace"
)

const instrumentationScope = "athena/coordinator"

type telemetry struct {
	tracer       trace.Tracer
	partnerships metric.Int64Counter
	halts        metric.Int64Counter
	rounds       metric.Int64Histogram
}

// newTelemetry binds to the global providers, which are noop until
// internal/telemetry.Init installs real ones.
func newTelemetry() telemetry {
	meter := otel.Meter(instrumentationScope)

	t := telemetry{tracer: otel.Tracer(instrumentationScope)}

	var err error
	if t.partnerships, err = meter.Int64Counter("athena.partnerships",
		metric.WithDescription("Partnership coordinations by mode and outcome")); err != nil {
		t.partnerships = metricnoop.Int64Counter{}
	}
	if t.halts, err = meter.Int64Counter("athena.halts",
		metric.WithDescription("Coordinations stopped by the halt checkpoint")); err != nil {
		t.halts = metricnoop.Int64Counter{}
	}
	if t.rounds, err = meter.Int64Histogram("athena.infinity.rounds",
		metric.WithDescription("Dialogue rounds per infinity-mode coordination")); err != nil {
		t.rounds = metricnoop.Int64Histogram{}
	}

	return t
}

func (t telemetry) startPhase(ctx context.Context, phase string, attrs ...attribute.KeyValue) (context.Context, trace.Span) {
	return t.tracer.Start(ctx, "phase."+phase, trace.WithAttributes(attrs...))
}
