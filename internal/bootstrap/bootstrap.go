package bootstrap

import (
	"context"
	"fmt"

	"github.com/cristiantrocadero/Grupp3-IoT-AI/internal/chat"
	awsclient "github.com/cristiantrocadero/Grupp3-IoT-AI/internal/common/aws"
	"github.com/cristiantrocadero/Grupp3-IoT-AI/internal/common/config"
	"github.com/cristiantrocadero/Grupp3-IoT-AI/internal/common/logger"
	"github.com/cristiantrocadero/Grupp3-IoT-AI/internal/common/observability"
	"github.com/cristiantrocadero/Grupp3-IoT-AI/internal/gallery"
	"github.com/cristiantrocadero/Grupp3-IoT-AI/internal/router"
	carcheck "github.com/cristiantrocadero/Grupp3-IoT-AI/internal/workers/car-check"
	getweather "github.com/cristiantrocadero/Grupp3-IoT-AI/internal/workers/get-weather"

	awssdk "github.com/aws/aws-sdk-go-v2/aws"
)

// App holds everything both binaries need. Chat and Gallery are nil when
// their config is absent.
type App struct {
	Router  *router.Router
	Chat    *chat.Service
	Gallery *gallery.Gallery
}

// New builds the router and optional collaborators from cfg.
func New(ctx context.Context, cfg *config.Config, log logger.Logger, obs *observability.Observability) (*App, error) {
	awsCfg, err := awsclient.LoadConfig(ctx, cfg.AWS.Region)
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}
	return NewWithAWS(awsCfg, cfg, log, obs), nil
}

// NewWithAWS is New with an already resolved AWS config.
func NewWithAWS(awsCfg awssdk.Config, cfg *config.Config, log logger.Logger, obs *observability.Observability) *App {
	classifier := awsclient.NewRekognitionClient(awsCfg, cfg.Intents.CarCheck.ProjectVersionARN)
	carCheck := carcheck.NewHandler(carcheck.LoadConfig(cfg.Intents.CarCheck), classifier, log)
	getWeather := getweather.NewHandler(getweather.LoadConfig(cfg.Intents.GetWeather), log)

	app := &App{
		Router: router.New(carCheck, getWeather, log, obs),
	}

	if cfg.Lex.Enabled() {
		lex := awsclient.NewLexClient(awsCfg, cfg.Lex.BotID, cfg.Lex.BotAliasID, cfg.Lex.LocaleID)
		app.Chat = chat.NewService(lex, log)
	} else {
		log.Info("lex bot not configured, chat relay disabled", nil)
	}

	if cfg.Storage.Bucket != "" {
		app.Gallery = gallery.New(cfg.Storage, awsclient.NewS3Client(awsCfg), log)
	} else {
		log.Info("storage bucket not configured, image gallery disabled", nil)
	}

	return app
}
