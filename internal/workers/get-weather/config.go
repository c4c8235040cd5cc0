// internal/workers/get-weather/config.go
package getweather

import (
	"time"

	"github.com/cristiantrocadero/Grupp3-IoT-AI/internal/common/config"
)

type Config struct {
	GeocoderBaseURL string
	GeocoderAPIKey  string
	GeocoderTimeout time.Duration

	ForecastBaseURL  string
	ForecastCategory string
	ForecastVersion  int
	ForecastTimeout  time.Duration
}

func LoadConfig(cfg config.GetWeatherConfig) *Config {
	c := &Config{
		GeocoderBaseURL:  cfg.Geocoder.BaseURL,
		GeocoderAPIKey:   cfg.Geocoder.APIKey,
		GeocoderTimeout:  config.GetDuration(cfg.Geocoder.Timeout),
		ForecastBaseURL:  cfg.Forecast.BaseURL,
		ForecastCategory: cfg.Forecast.Category,
		ForecastVersion:  cfg.Forecast.Version,
		ForecastTimeout:  config.GetDuration(cfg.Forecast.Timeout),
	}
	if c.GeocoderTimeout <= 0 {
		c.GeocoderTimeout = 10 * time.Second
	}
	if c.ForecastTimeout <= 0 {
		c.ForecastTimeout = 10 * time.Second
	}
	if c.ForecastCategory == "" {
		c.ForecastCategory = "pmp3g"
	}
	if c.ForecastVersion == 0 {
		c.ForecastVersion = 2
	}
	return c
}
