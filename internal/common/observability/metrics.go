package observability

import (
	"context"
	"log"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/prometheus"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	otelmetric "go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/trace"
)

type Observability struct {
	meterProvider  *metric.MeterProvider
	tracerProvider *trace.TracerProvider
	meter          otelmetric.Meter
	intentCounter  otelmetric.Int64Counter
	intentDuration otelmetric.Float64Histogram
}

// New registers the otel meter provider behind the Prometheus exporter and,
// when tracing is on, a stdout span exporter.
func New(serviceName string, tracing bool) *Observability {
	o := &Observability{}

	if tracing {
		exporter, err := stdouttrace.New(stdouttrace.WithPrettyPrint())
		if err != nil {
			log.Printf("Failed to create stdout trace exporter: %v", err)
		} else {
			o.tracerProvider = trace.NewTracerProvider(trace.WithBatcher(exporter))
			otel.SetTracerProvider(o.tracerProvider)
		}
	}

	exporter, err := prometheus.New()
	if err != nil {
		log.Printf("Failed to create Prometheus exporter: %v", err)
		return o
	}

	provider := metric.NewMeterProvider(metric.WithReader(exporter))
	otel.SetMeterProvider(provider)

	meter := provider.Meter(serviceName)

	intentCounter, _ := meter.Int64Counter(
		"intents.processed",
		otelmetric.WithDescription("Number of Lex intent turns processed"),
	)

	intentDuration, _ := meter.Float64Histogram(
		"intents.duration",
		otelmetric.WithDescription("Intent handling duration"),
		otelmetric.WithUnit("ms"),
	)

	o.meterProvider = provider
	o.meter = meter
	o.intentCounter = intentCounter
	o.intentDuration = intentDuration
	return o
}

func (o *Observability) RecordIntentProcessed(ctx context.Context, intent, outcome string) {
	if o == nil || o.intentCounter == nil {
		return
	}
	o.intentCounter.Add(ctx, 1, otelmetric.WithAttributes(
		attribute.String("intent", intent),
		attribute.String("outcome", outcome),
	))
}

func (o *Observability) RecordIntentDuration(ctx context.Context, duration time.Duration, intent string) {
	if o == nil || o.intentDuration == nil {
		return
	}
	o.intentDuration.Record(ctx, float64(duration.Milliseconds()), otelmetric.WithAttributes(
		attribute.String("intent", intent),
	))
}

// Shutdown flushes pending spans and metric readers.
func (o *Observability) Shutdown() {
	if o == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if o.tracerProvider != nil {
		_ = o.tracerProvider.Shutdown(ctx)
	}
	if o.meterProvider != nil {
		_ = o.meterProvider.Shutdown(ctx)
	}
}
