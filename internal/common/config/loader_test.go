package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

const fullConfig = `
app:
  name: car-weather-bot
  environment: test
aws:
  region: eu-north-1
lex:
  bot_id: BOT123
  bot_alias_id: ALIAS456
  locale_id: en_US
storage:
  bucket: grupp3-cars
  prefixes: [Test/clean, Test/dirty]
intents:
  car_check:
    project_version_arn: arn:aws:rekognition:us-east-1:000000000000:project/carCleanliness/version/v1/1
    min_confidence: 50
  get_weather:
    geocoder:
      api_key: file-key
    forecast:
      base_url: https://forecast.example.com
server:
  port: 9090
  mode: test
logging:
  level: debug
  format: console
`

func TestLoadFromFile_FullConfig(t *testing.T) {
	t.Setenv("AWS_REGION", "eu-north-1")

	cfg, err := LoadFromFile(writeConfig(t, fullConfig))
	require.NoError(t, err)

	assert.Equal(t, "eu-north-1", cfg.AWS.Region)
	assert.Equal(t, "BOT123", cfg.Lex.BotID)
	assert.True(t, cfg.Lex.Enabled())
	assert.Equal(t, "grupp3-cars", cfg.Storage.Bucket)
	assert.Equal(t, []string{"Test/clean", "Test/dirty"}, cfg.Storage.Prefixes)
	assert.Equal(t, 50.0, cfg.Intents.CarCheck.MinConfidence)
	assert.Equal(t, "imguri", cfg.Intents.CarCheck.Slot)
	assert.Equal(t, "file-key", cfg.Intents.GetWeather.Geocoder.APIKey)
	assert.Equal(t, "https://forecast.example.com", cfg.Intents.GetWeather.Forecast.BaseURL)
	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "debug", cfg.Logging.Level)
}

func TestLoadFromFile_Defaults(t *testing.T) {
	cfg, err := LoadFromFile(writeConfig(t, `
intents:
  car_check:
    project_version_arn: arn:test
  get_weather:
    geocoder:
      api_key: k
`))
	require.NoError(t, err)

	assert.Equal(t, []string{".jpg", ".jpeg", ".png"}, cfg.Storage.ImageExtensions)
	assert.Equal(t, time.Hour, GetDuration(cfg.Storage.PresignExpiry))
	assert.Equal(t, "https://api.opencagedata.com", cfg.Intents.GetWeather.Geocoder.BaseURL)
	assert.Equal(t, "https://opendata-download-metfcst.smhi.se", cfg.Intents.GetWeather.Forecast.BaseURL)
	assert.Equal(t, "pmp3g", cfg.Intents.GetWeather.Forecast.Category)
	assert.Equal(t, 2, cfg.Intents.GetWeather.Forecast.Version)
	assert.Equal(t, 50.0, cfg.Intents.CarCheck.MinConfidence)
	assert.Equal(t, "json", cfg.Logging.Format)
	assert.False(t, cfg.Lex.Enabled())
}

func TestLoadFromFile_EnvOverridesFile(t *testing.T) {
	t.Setenv("INTENTS_GET_WEATHER_GEOCODER_API_KEY", "env-key")

	cfg, err := LoadFromFile(writeConfig(t, fullConfig))
	require.NoError(t, err)
	assert.Equal(t, "env-key", cfg.Intents.GetWeather.Geocoder.APIKey)
}

func TestLoadFromFile_ExpandsPlaceholders(t *testing.T) {
	t.Setenv("TEST_REKOGNITION_ARN", "arn:from-placeholder")

	cfg, err := LoadFromFile(writeConfig(t, `
intents:
  car_check:
    project_version_arn: ${TEST_REKOGNITION_ARN}
  get_weather:
    geocoder:
      api_key: k
`))
	require.NoError(t, err)
	assert.Equal(t, "arn:from-placeholder", cfg.Intents.CarCheck.ProjectVersionARN)
}

func TestLoadFromFile_ShortEnvFallback(t *testing.T) {
	t.Setenv("OPENCAGE_API_KEY", "short-env-key")
	t.Setenv("S3_BUCKET_NAME", "bucket-from-env")

	cfg, err := LoadFromFile(writeConfig(t, `
intents:
  car_check:
    project_version_arn: arn:test
`))
	require.NoError(t, err)
	assert.Equal(t, "short-env-key", cfg.Intents.GetWeather.Geocoder.APIKey)
	assert.Equal(t, "bucket-from-env", cfg.Storage.Bucket)
}

func TestLoadFromFile_Validation(t *testing.T) {
	tests := []struct {
		name   string
		body   string
		errMsg string
	}{
		{
			name: "missing rekognition arn",
			body: `
intents:
  get_weather:
    geocoder:
      api_key: k
`,
			errMsg: "project_version_arn is required",
		},
		{
			name: "confidence out of range",
			body: `
intents:
  car_check:
    project_version_arn: arn:test
    min_confidence: 150
  get_weather:
    geocoder:
      api_key: k
`,
			errMsg: "min_confidence",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadFromFile(writeConfig(t, tt.body))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errMsg)
		})
	}
}

func TestLoadFromFile_MissingFile(t *testing.T) {
	_, err := LoadFromFile(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read config file")
}
