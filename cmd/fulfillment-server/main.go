// cmd/fulfillment-server/main.go
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/cristiantrocadero/Grupp3-IoT-AI/internal/bootstrap"
	"github.com/cristiantrocadero/Grupp3-IoT-AI/internal/common/config"
	"github.com/cristiantrocadero/Grupp3-IoT-AI/internal/common/logger"
	"github.com/cristiantrocadero/Grupp3-IoT-AI/internal/common/observability"
	"github.com/cristiantrocadero/Grupp3-IoT-AI/internal/httpserver"
)

func main() {
	zapLog := logger.New("info", "console")
	defer zapLog.Sync()

	zapLog.Info("Starting fulfillment server...")

	cfg, err := config.Load()
	if err != nil {
		zapLog.Fatal("config load failed", zap.Error(err))
	}

	zapLog = logger.New(cfg.Logging.Level, cfg.Logging.Format, cfg.Logging.Output)
	defer zapLog.Sync()
	log := logger.NewZapAdapter(zapLog)

	obs := observability.New(cfg.Observability.ServiceName, cfg.Observability.TracingEnabled)
	defer obs.Shutdown()

	ctx := context.Background()

	app, err := bootstrap.New(ctx, cfg, log, obs)
	if err != nil {
		zapLog.Fatal("bootstrap failed", zap.Error(err))
	}

	srvCfg := httpserver.Config{
		Port:        cfg.Server.Port,
		Mode:        cfg.Server.Mode,
		ServiceName: cfg.Observability.ServiceName,
		Router:      app.Router,
	}
	// Typed nils would make the routes look configured.
	if app.Chat != nil {
		srvCfg.Chat = app.Chat
	}
	if app.Gallery != nil {
		srvCfg.Images = app.Gallery
	}

	srv, err := httpserver.New(log, srvCfg)
	if err != nil {
		zapLog.Fatal("http server init failed", zap.Error(err))
	}

	go func() {
		if err := srv.Run(); err != nil {
			zapLog.Fatal("http server failed", zap.Error(err))
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	<-sigCh

	zapLog.Info("Shutdown signal received, stopping server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		zapLog.Error("Error shutting down http server", zap.Error(err))
	}

	zapLog.Info("Fulfillment server stopped gracefully")
}
