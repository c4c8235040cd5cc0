// internal/common/config/config.go
package config

import "time"

// Config is the main application configuration struct.
type Config struct {
	App           AppConfig           `mapstructure:"app"`
	AWS           AWSConfig           `mapstructure:"aws"`
	Lex           LexConfig           `mapstructure:"lex"`
	Storage       StorageConfig       `mapstructure:"storage"`
	Intents       IntentsConfig       `mapstructure:"intents"`
	Server        ServerConfig        `mapstructure:"server"`
	Logging       LoggingConfig       `mapstructure:"logging"`
	Observability ObservabilityConfig `mapstructure:"observability"`
}

// --- Core App/Infrastructure Config ---
type AppConfig struct {
	Name        string `mapstructure:"name"`
	Version     string `mapstructure:"version"`
	Environment string `mapstructure:"environment"`
}

type AWSConfig struct {
	Region string `mapstructure:"region"`
}

// LexConfig identifies the bot the chat relay talks to.
type LexConfig struct {
	BotID      string `mapstructure:"bot_id"`
	BotAliasID string `mapstructure:"bot_alias_id"`
	LocaleID   string `mapstructure:"locale_id"`
}

// Enabled reports whether enough is configured to call RecognizeText.
func (l LexConfig) Enabled() bool {
	return l.BotID != "" && l.BotAliasID != ""
}

// StorageConfig drives the image gallery.
type StorageConfig struct {
	Bucket          string   `mapstructure:"bucket"`
	Prefixes        []string `mapstructure:"prefixes"`
	ImageExtensions []string `mapstructure:"image_extensions"`
	PresignExpiry   int      `mapstructure:"presign_expiry"` // milliseconds
}

// --- Intent handler configuration ---

type IntentsConfig struct {
	CarCheck   CarCheckConfig   `mapstructure:"car_check"`
	GetWeather GetWeatherConfig `mapstructure:"get_weather"`
}

type CarCheckConfig struct {
	ProjectVersionARN string  `mapstructure:"project_version_arn"`
	MinConfidence     float64 `mapstructure:"min_confidence"`
	Slot              string  `mapstructure:"slot"`
}

type GetWeatherConfig struct {
	Geocoder GeocoderConfig `mapstructure:"geocoder"`
	Forecast ForecastConfig `mapstructure:"forecast"`
}

type GeocoderConfig struct {
	BaseURL string `mapstructure:"base_url"`
	APIKey  string `mapstructure:"api_key"`
	Timeout int    `mapstructure:"timeout"` // milliseconds
}

type ForecastConfig struct {
	BaseURL  string `mapstructure:"base_url"`
	Category string `mapstructure:"category"`
	Version  int    `mapstructure:"version"`
	Timeout  int    `mapstructure:"timeout"` // milliseconds
}

// ServerConfig is used by the HTTP server binary only.
type ServerConfig struct {
	Port int    `mapstructure:"port"`
	Mode string `mapstructure:"mode"` // gin mode: debug, release, test
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
	Output string `mapstructure:"output"`
}

type ObservabilityConfig struct {
	ServiceName    string `mapstructure:"service_name"`
	TracingEnabled bool   `mapstructure:"tracing_enabled"`
}

// GetDuration converts milliseconds from config to time.Duration.
func GetDuration(milliseconds int) time.Duration {
	return time.Duration(milliseconds) * time.Millisecond
}
