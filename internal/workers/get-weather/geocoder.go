package getweather

import (
	"context"
	"net/http"
	"net/url"
	"strings"

	apperrors "github.com/cristiantrocadero/Grupp3-IoT-AI/internal/common/errors"
	apphttp "github.com/cristiantrocadero/Grupp3-IoT-AI/internal/common/http"
)

// Geocoder resolves a free-text place name. found is false when the service
// knows no such place.
type Geocoder interface {
	Geocode(ctx context.Context, place string) (coords Coordinates, found bool, err error)
}

// OpenCageGeocoder calls the OpenCage forward geocoding API.
type OpenCageGeocoder struct {
	baseURL string
	apiKey  string
	client  *apphttp.Client
}

func NewOpenCageGeocoder(baseURL, apiKey string, client *apphttp.Client) *OpenCageGeocoder {
	return &OpenCageGeocoder{
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
		client:  client,
	}
}

// Geocode returns the first result's geometry. An answer other than 200 is
// treated like an empty result; transport and decode failures are errors.
func (g *OpenCageGeocoder) Geocode(ctx context.Context, place string) (Coordinates, bool, error) {
	q := url.Values{}
	q.Set("q", place)
	q.Set("key", g.apiKey)
	q.Set("limit", "1")
	q.Set("no_annotations", "1")

	var out opencageResponse
	status, err := g.client.GetJSON(ctx, "geocoder", g.baseURL+"/geocode/v1/json?"+q.Encode(), &out)
	if status != 0 && status != http.StatusOK {
		return Coordinates{}, false, nil
	}
	if err != nil {
		return Coordinates{}, false, wrapUpstream(err, apperrors.NewGeocodingError)
	}
	if len(out.Results) == 0 {
		return Coordinates{}, false, nil
	}
	return out.Results[0].Geometry, true, nil
}

// wrapUpstream keeps classified errors as they are and files anything else
// under the given constructor.
func wrapUpstream(err error, wrap func(error) *apperrors.StandardError) error {
	if apperrors.CodeOf(err) != apperrors.ErrCodeUnknown {
		return err
	}
	return wrap(err)
}
