package getweather

import (
	"context"
	"fmt"
	"math"
	"net/http"
	"strconv"
	"strings"

	apperrors "github.com/cristiantrocadero/Grupp3-IoT-AI/internal/common/errors"
	apphttp "github.com/cristiantrocadero/Grupp3-IoT-AI/internal/common/http"
)

const (
	paramTemperature = "t"
	paramRainfall    = "pmean"
	paramWindSpeed   = "ws"

	// forecastHour is the only time of day that is looked up.
	forecastHour = "T18:00:00Z"
)

// ForecastProvider returns the forecast for one point and calendar date.
// found is false when the series holds no entry for that date.
type ForecastProvider interface {
	Forecast(ctx context.Context, coords Coordinates, date string) (forecast Forecast, found bool, err error)
}

// SMHIForecast reads SMHI's open point forecast.
type SMHIForecast struct {
	baseURL  string
	category string
	version  int
	client   *apphttp.Client
}

func NewSMHIForecast(baseURL, category string, version int, client *apphttp.Client) *SMHIForecast {
	return &SMHIForecast{
		baseURL:  strings.TrimRight(baseURL, "/"),
		category: category,
		version:  version,
		client:   client,
	}
}

// PointURL builds the point forecast URL with coordinates rounded to four
// decimals.
func (s *SMHIForecast) PointURL(coords Coordinates) string {
	return fmt.Sprintf("%s/api/category/%s/version/%d/geotype/point/lon/%s/lat/%s/data.json",
		s.baseURL, s.category, s.version, formatCoordinate(coords.Longitude), formatCoordinate(coords.Latitude))
}

// Forecast fetches the series and picks the <date>T18:00:00Z entry. Any
// answer other than 200 (SMHI sends 404 outside its grid) is reported as not
// found.
func (s *SMHIForecast) Forecast(ctx context.Context, coords Coordinates, date string) (Forecast, bool, error) {
	var out smhiResponse
	status, err := s.client.GetJSON(ctx, "forecast", s.PointURL(coords), &out)
	if status != 0 && status != http.StatusOK {
		return Forecast{}, false, nil
	}
	if err != nil {
		return Forecast{}, false, wrapUpstream(err, apperrors.NewForecastError)
	}

	entry, ok := findEntry(out.TimeSeries, date+forecastHour)
	if !ok {
		return Forecast{}, false, nil
	}
	return extractForecast(entry), true, nil
}

func findEntry(series []smhiEntry, validTime string) (smhiEntry, bool) {
	for _, e := range series {
		if e.ValidTime == validTime {
			return e, true
		}
	}
	return smhiEntry{}, false
}

// extractForecast reads t, pmean and ws independently; each missing one is
// NotAvailable.
func extractForecast(entry smhiEntry) Forecast {
	f := Forecast{
		Temperature: NotAvailable,
		Rainfall:    NotAvailable,
		WindSpeed:   NotAvailable,
	}
	for _, p := range entry.Parameters {
		if len(p.Values) == 0 {
			continue
		}
		v := Measurement(p.Values[0].String())
		switch p.Name {
		case paramTemperature:
			f.Temperature = v
		case paramRainfall:
			f.Rainfall = v
		case paramWindSpeed:
			f.WindSpeed = v
		}
	}
	return f
}

func formatCoordinate(v float64) string {
	return strconv.FormatFloat(math.Round(v*1e4)/1e4, 'f', -1, 64)
}
