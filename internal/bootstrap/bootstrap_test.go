package bootstrap

import (
	"context"
	"testing"

	"github.com/cristiantrocadero/Grupp3-IoT-AI/internal/common/config"
	"github.com/cristiantrocadero/Grupp3-IoT-AI/internal/common/logger"
	"github.com/cristiantrocadero/Grupp3-IoT-AI/internal/dialog"

	awssdk "github.com/aws/aws-sdk-go-v2/aws"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestConfig() *config.Config {
	return &config.Config{
		AWS: config.AWSConfig{Region: "us-east-1"},
		Intents: config.IntentsConfig{
			CarCheck: config.CarCheckConfig{ProjectVersionARN: "arn:aws:rekognition:us-east-1:1:project/x/version/y/1"},
			GetWeather: config.GetWeatherConfig{
				Geocoder: config.GeocoderConfig{BaseURL: "http://127.0.0.1:1", APIKey: "k"},
				Forecast: config.ForecastConfig{BaseURL: "http://127.0.0.1:1"},
			},
		},
	}
}

func TestNewWithAWS_OptionalParts(t *testing.T) {
	cfg := createTestConfig()
	app := NewWithAWS(awssdk.Config{Region: "us-east-1"}, cfg, logger.NewTestLogger(t), nil)

	require.NotNil(t, app.Router)
	assert.Nil(t, app.Chat)
	assert.Nil(t, app.Gallery)

	cfg.Lex = config.LexConfig{BotID: "BOT", BotAliasID: "ALIAS", LocaleID: "en_US"}
	cfg.Storage = config.StorageConfig{Bucket: "cars", Prefixes: []string{"Test/clean"}}
	app = NewWithAWS(awssdk.Config{Region: "us-east-1"}, cfg, logger.NewTestLogger(t), nil)

	assert.NotNil(t, app.Chat)
	require.NotNil(t, app.Gallery)
	assert.Equal(t, "cars", app.Gallery.Bucket())
}

func TestNewWithAWS_RoutesElicitationWithoutUpstreams(t *testing.T) {
	app := NewWithAWS(awssdk.Config{Region: "us-east-1"}, createTestConfig(), logger.NewTestLogger(t), nil)

	resp := app.Router.Route(context.Background(), &dialog.Event{
		SessionState: dialog.SessionState{Intent: dialog.Intent{Name: "GetWeather"}},
	})
	assert.True(t, resp.IsElicit())
	assert.Equal(t, "City", resp.SessionState.DialogAction.SlotToElicit)

	resp = app.Router.Route(context.Background(), &dialog.Event{
		SessionState: dialog.SessionState{Intent: dialog.Intent{Name: "CarCheck", Slots: dialog.NewSlots(map[string]string{"imguri": "nope"})}},
	})
	assert.Equal(t, "Invalid S3 URL: nope", resp.Text())
}
