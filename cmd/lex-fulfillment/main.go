// cmd/lex-fulfillment/main.go
package main

import (
	"context"
	"encoding/json"

	"github.com/aws/aws-lambda-go/lambda"
	"go.uber.org/zap"

	"github.com/cristiantrocadero/Grupp3-IoT-AI/internal/bootstrap"
	"github.com/cristiantrocadero/Grupp3-IoT-AI/internal/common/config"
	apperrors "github.com/cristiantrocadero/Grupp3-IoT-AI/internal/common/errors"
	"github.com/cristiantrocadero/Grupp3-IoT-AI/internal/common/logger"
	"github.com/cristiantrocadero/Grupp3-IoT-AI/internal/common/observability"
	"github.com/cristiantrocadero/Grupp3-IoT-AI/internal/common/validation"
	"github.com/cristiantrocadero/Grupp3-IoT-AI/internal/dialog"
	"github.com/cristiantrocadero/Grupp3-IoT-AI/internal/router"
)

// handler adapts the router to the Lambda runtime. Lex needs a response for
// every invocation, so an undecodable event becomes a Failed close as well.
type handler struct {
	router *router.Router
	log    logger.Logger
}

func (h *handler) invoke(ctx context.Context, raw json.RawMessage) (*dialog.Response, error) {
	event, err := validation.DecodeEvent(raw)
	if err != nil {
		h.log.Error("invalid lex event", map[string]interface{}{"error": apperrors.MessageOf(err)})
		return apperrors.NewErrorHandler(h.log).HandleIntentError(intentNameOf(raw), err), nil
	}
	return h.router.Route(ctx, event), nil
}

// intentNameOf digs out the intent name from an event that failed
// validation, so the Failed close still names it.
func intentNameOf(raw json.RawMessage) string {
	var partial struct {
		SessionState struct {
			Intent struct {
				Name string `json:"name"`
			} `json:"intent"`
		} `json:"sessionState"`
	}
	_ = json.Unmarshal(raw, &partial)
	return partial.SessionState.Intent.Name
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		logger.New("info", "json").Fatal("config load failed", zap.Error(err))
	}

	zapLog := logger.New(cfg.Logging.Level, cfg.Logging.Format, cfg.Logging.Output)
	defer zapLog.Sync()
	log := logger.NewZapAdapter(zapLog)

	obs := observability.New(cfg.Observability.ServiceName, cfg.Observability.TracingEnabled)
	defer obs.Shutdown()

	app, err := bootstrap.New(context.Background(), cfg, log, obs)
	if err != nil {
		zapLog.Fatal("bootstrap failed", zap.Error(err))
	}

	zapLog.Info("lex fulfillment lambda ready", zap.String("version", cfg.App.Version))
	h := &handler{router: app.Router, log: log}
	lambda.Start(h.invoke)
}
