package router

import (
	"context"
	"fmt"
	"time"

	apperrors "github.com/cristiantrocadero/Grupp3-IoT-AI/internal/common/errors"
	"github.com/cristiantrocadero/Grupp3-IoT-AI/internal/common/logger"
	"github.com/cristiantrocadero/Grupp3-IoT-AI/internal/common/metrics"
	"github.com/cristiantrocadero/Grupp3-IoT-AI/internal/common/observability"
	"github.com/cristiantrocadero/Grupp3-IoT-AI/internal/dialog"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

const tracerName = "github.com/cristiantrocadero/Grupp3-IoT-AI/internal/router"

// unknownIntentLabel keeps metric cardinality bounded for unrecognised
// names.
const unknownIntentLabel = "unknown"

// IntentHandler turns one Lex event into exactly one response.
type IntentHandler interface {
	Handle(ctx context.Context, event *dialog.Event) *dialog.Response
}

type Router struct {
	carCheck   IntentHandler
	getWeather IntentHandler
	logger     logger.Logger
	errors     *apperrors.ErrorHandler
	obs        *observability.Observability
}

func New(carCheck, getWeather IntentHandler, log logger.Logger, obs *observability.Observability) *Router {
	return &Router{
		carCheck:   carCheck,
		getWeather: getWeather,
		logger:     log,
		errors:     apperrors.NewErrorHandler(log),
		obs:        obs,
	}
}

// Route dispatches on the intent name and returns the handler's response
// unchanged. It always returns a response, including when a handler panics.
func (r *Router) Route(ctx context.Context, event *dialog.Event) (resp *dialog.Response) {
	if event == nil {
		event = &dialog.Event{}
	}
	name := event.IntentName()
	intent, known := dialog.ParseIntent(name)
	label := unknownIntentLabel
	if known {
		label = intent.String()
	}
	start := time.Now()

	ctx, span := otel.Tracer(tracerName).Start(ctx, "intent "+label,
		trace.WithSpanKind(trace.SpanKindServer),
		trace.WithAttributes(
			attribute.String("lex.intent", name),
			attribute.String("lex.session_id", event.SessionID),
		),
	)
	defer span.End()

	defer func() {
		if rec := recover(); rec != nil {
			r.logger.Error("intent handler panicked", map[string]interface{}{
				"intent": name,
				"panic":  fmt.Sprintf("%v", rec),
			})
			resp = r.errors.HandleIntentError(name, apperrors.NewPanicError(rec))
		}
		if resp == nil {
			resp = r.errors.HandleIntentError(name, apperrors.New(apperrors.ErrCodeUnknown, "handler returned no response", nil))
		}
		span.SetAttributes(attribute.String("lex.outcome", resp.Outcome()))
		r.record(ctx, label, resp, time.Since(start))
	}()

	r.logger.Info("routing intent", map[string]interface{}{
		"intent":           name,
		"sessionId":        event.SessionID,
		"invocationSource": event.InvocationSource,
	})

	switch intent {
	case dialog.IntentCarCheck:
		return r.carCheck.Handle(ctx, event)
	case dialog.IntentGetWeather:
		return r.getWeather.Handle(ctx, event)
	default:
		r.logger.Warn("unrecognised intent", map[string]interface{}{"intent": name})
		return dialog.Failed(name, fmt.Sprintf("Sorry, I don't recognize the intent '%s'.", name))
	}
}

func (r *Router) record(ctx context.Context, label string, resp *dialog.Response, elapsed time.Duration) {
	outcome := resp.Outcome()
	metrics.IntentsHandled.WithLabelValues(label, outcome).Inc()
	metrics.IntentDuration.WithLabelValues(label).Observe(elapsed.Seconds())
	r.obs.RecordIntentProcessed(ctx, label, outcome)
	r.obs.RecordIntentDuration(ctx, elapsed, label)

	r.logger.Info("intent handled", map[string]interface{}{
		"intent":   label,
		"outcome":  outcome,
		"duration": elapsed.Milliseconds(),
	})
}
