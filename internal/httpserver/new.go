package httpserver

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/cristiantrocadero/Grupp3-IoT-AI/internal/chat"
	"github.com/cristiantrocadero/Grupp3-IoT-AI/internal/common/logger"
	"github.com/cristiantrocadero/Grupp3-IoT-AI/internal/dialog"
	"github.com/cristiantrocadero/Grupp3-IoT-AI/internal/gallery"

	"github.com/gin-gonic/gin"
)

// IntentRouter turns a decoded Lex event into a response.
type IntentRouter interface {
	Route(ctx context.Context, event *dialog.Event) *dialog.Response
}

// ChatRelay forwards a chat turn to the bot.
type ChatRelay interface {
	Send(ctx context.Context, req chat.Request) (*chat.Reply, error)
}

// ImageLister lists the gallery sections.
type ImageLister interface {
	List(ctx context.Context) ([]gallery.Section, error)
}

// HTTPServer serves the fulfillment hook, the chat relay and the gallery.
type HTTPServer struct {
	gin    *gin.Engine
	srv    *http.Server
	l      logger.Logger
	port   int
	mode   string
	name   string
	router IntentRouter
	chat   ChatRelay
	images ImageLister
}

// Config is the dependency bag passed to New. Chat and Images are optional.
type Config struct {
	Port        int
	Mode        string
	ServiceName string

	Router IntentRouter
	Chat   ChatRelay
	Images ImageLister
}

func New(l logger.Logger, cfg Config) (*HTTPServer, error) {
	if cfg.Mode != "" {
		gin.SetMode(cfg.Mode)
	}

	srv := &HTTPServer{
		gin:    gin.New(),
		l:      l,
		port:   cfg.Port,
		mode:   cfg.Mode,
		name:   cfg.ServiceName,
		router: cfg.Router,
		chat:   cfg.Chat,
		images: cfg.Images,
	}
	if err := srv.validate(); err != nil {
		return nil, err
	}

	srv.mapHandlers()
	srv.srv = &http.Server{
		Addr:              fmt.Sprintf(":%d", srv.port),
		Handler:           srv.gin,
		ReadHeaderTimeout: 10 * time.Second,
	}
	return srv, nil
}

func (srv *HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.router == nil {
		return errors.New("intent router is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	return nil
}

// Handler exposes the gin engine, mainly for tests.
func (srv *HTTPServer) Handler() http.Handler {
	return srv.gin
}

// Run blocks until the server stops. http.ErrServerClosed is not an error.
func (srv *HTTPServer) Run() error {
	srv.l.Info("http server listening", map[string]interface{}{"port": srv.port, "mode": srv.mode})
	if err := srv.srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (srv *HTTPServer) Shutdown(ctx context.Context) error {
	return srv.srv.Shutdown(ctx)
}
