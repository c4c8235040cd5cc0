// internal/workers/get-weather/models.go
package getweather

import "encoding/json"

// Coordinates is a geocoded place. Zero is a valid longitude or latitude.
type Coordinates struct {
	Longitude float64 `json:"lng"`
	Latitude  float64 `json:"lat"`
}

// NotAvailable is printed when the forecast entry lacks a parameter.
const NotAvailable Measurement = "N/A"

// Measurement is a forecast value as the upstream wrote it, or NotAvailable.
type Measurement string

// Forecast holds the 18:00 UTC values for one city and date.
type Forecast struct {
	Temperature Measurement `json:"temperature"`
	Rainfall    Measurement `json:"rainfall"`
	WindSpeed   Measurement `json:"windSpeed"`
}

// opencageResponse is the subset of the OpenCage geocode answer used here.
type opencageResponse struct {
	Results []struct {
		Geometry Coordinates `json:"geometry"`
	} `json:"results"`
	Status struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	} `json:"status"`
}

// smhiResponse is the subset of an SMHI point forecast used here.
type smhiResponse struct {
	TimeSeries []smhiEntry `json:"timeSeries"`
}

type smhiEntry struct {
	ValidTime  string          `json:"validTime"`
	Parameters []smhiParameter `json:"parameters"`
}

type smhiParameter struct {
	Name   string        `json:"name"`
	Unit   string        `json:"unit"`
	Values []json.Number `json:"values"`
}
