package getweather

import (
	"context"
	"fmt"
	"strings"
	"time"

	apperrors "github.com/cristiantrocadero/Grupp3-IoT-AI/internal/common/errors"
	apphttp "github.com/cristiantrocadero/Grupp3-IoT-AI/internal/common/http"
	"github.com/cristiantrocadero/Grupp3-IoT-AI/internal/common/logger"
	"github.com/cristiantrocadero/Grupp3-IoT-AI/internal/dialog"
)

const (
	IntentName = dialog.IntentGetWeather

	SlotCity = "City"
	SlotDate = "Date"

	dateLayout = "2006-01-02"
)

const (
	promptCityAndDate = "Which city would you like the weather for?"
	promptCity        = "Which city?"
	promptDate        = "What date?"
)

type Handler struct {
	config   *Config
	geocoder Geocoder
	forecast ForecastProvider
	now      func() time.Time
	logger   logger.Logger
	errors   *apperrors.ErrorHandler
}

// Option customises a Handler.
type Option func(*Handler)

// WithClock replaces time.Now for date normalisation.
func WithClock(now func() time.Time) Option {
	return func(h *Handler) { h.now = now }
}

// NewHandler wires the OpenCage and SMHI clients from config.
func NewHandler(config *Config, log logger.Logger, opts ...Option) *Handler {
	geocoder := NewOpenCageGeocoder(config.GeocoderBaseURL, config.GeocoderAPIKey, apphttp.NewClient(config.GeocoderTimeout))
	forecast := NewSMHIForecast(config.ForecastBaseURL, config.ForecastCategory, config.ForecastVersion, apphttp.NewClient(config.ForecastTimeout))
	return NewHandlerWith(config, geocoder, forecast, log, opts...)
}

func NewHandlerWith(config *Config, geocoder Geocoder, forecast ForecastProvider, log logger.Logger, opts ...Option) *Handler {
	h := &Handler{
		config:   config,
		geocoder: geocoder,
		forecast: forecast,
		now:      time.Now,
		logger:   log.WithFields(map[string]interface{}{"intent": IntentName.String()}),
		errors:   apperrors.NewErrorHandler(log),
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Handle asks for City and then Date before any upstream call is made.
func (h *Handler) Handle(ctx context.Context, event *dialog.Event) *dialog.Response {
	city, hasCity := event.Slot(SlotCity)
	date, hasDate := event.Slot(SlotDate)

	switch {
	case !hasCity && !hasDate:
		return h.elicit(event, SlotCity, promptCityAndDate)
	case !hasCity:
		return h.elicit(event, SlotCity, promptCity)
	case !hasDate:
		return h.elicit(event, SlotDate, promptDate)
	}

	start := time.Now()
	resp, err := h.Execute(ctx, city, NormalizeDate(date, h.now()))
	if err != nil {
		return h.errors.HandleIntentError(IntentName.String(), err)
	}

	h.logger.Info("weather lookup completed", map[string]interface{}{
		"city":     city,
		"date":     date,
		"outcome":  resp.Outcome(),
		"duration": time.Since(start).Milliseconds(),
	})
	return resp
}

func (h *Handler) elicit(event *dialog.Event, slot, prompt string) *dialog.Response {
	h.logger.Debug("eliciting slot", map[string]interface{}{"slot": slot})
	return dialog.Elicit(event.SessionState.Intent, slot, prompt)
}

// Execute geocodes city and looks up the 18:00 UTC forecast for date, which
// must already be normalised.
func (h *Handler) Execute(ctx context.Context, city, date string) (*dialog.Response, error) {
	intent := IntentName.String()

	coords, found, err := h.geocoder.Geocode(ctx, city)
	if err != nil {
		return nil, err
	}
	if !found {
		h.logger.Warn("city not found", map[string]interface{}{"city": city})
		return dialog.Failed(intent, fmt.Sprintf("Could not find coordinates for %s.", city)), nil
	}

	forecast, found, err := h.forecast.Forecast(ctx, coords, date)
	if err != nil {
		return nil, err
	}
	if !found {
		h.logger.Warn("no forecast entry", map[string]interface{}{
			"city": city,
			"date": date,
			"lon":  coords.Longitude,
			"lat":  coords.Latitude,
		})
		return dialog.Failed(intent, fmt.Sprintf("No weather data found for %s on %s.", city, date)), nil
	}

	return dialog.Fulfilled(intent, FormatForecast(city, date, forecast)), nil
}

// NormalizeDate turns "today" and "tomorrow" (any case, no surrounding
// spaces) into UTC calendar dates. Every other value is returned unchanged.
func NormalizeDate(value string, now time.Time) string {
	switch strings.ToLower(value) {
	case "today":
		return now.UTC().Format(dateLayout)
	case "tomorrow":
		return now.UTC().AddDate(0, 0, 1).Format(dateLayout)
	default:
		return value
	}
}

func FormatForecast(city, date string, f Forecast) string {
	return fmt.Sprintf("The weather forecast for %s on %s:\n Temperature: %s°C\n Rainfall: %s mm\n Wind Speed: %s m/s",
		city, date, f.Temperature, f.Rainfall, f.WindSpeed)
}
