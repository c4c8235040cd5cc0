// internal/common/http/client.go
package http

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"io"
	"net"
	"net/http"
	"time"

	apperrors "github.com/cristiantrocadero/Grupp3-IoT-AI/internal/common/errors"
	"github.com/cristiantrocadero/Grupp3-IoT-AI/internal/common/metrics"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

const tracerName = "github.com/cristiantrocadero/Grupp3-IoT-AI/internal/common/http"

// Client is a thin JSON-over-HTTP client for the weather APIs. It never
// retries.
type Client struct {
	httpClient *http.Client
	userAgent  string
}

func NewClient(timeout time.Duration) *Client {
	return &Client{
		httpClient: &http.Client{
			Timeout: timeout,
		},
		userAgent: "car-weather-bot/1.0",
	}
}

// NewClientWith wraps an existing *http.Client, e.g. httptest.Server.Client().
func NewClientWith(hc *http.Client) *Client {
	return &Client{httpClient: hc, userAgent: "car-weather-bot/1.0"}
}

func (c *Client) Do(req *http.Request) (*http.Response, error) {
	return c.httpClient.Do(req)
}

// GetJSON issues a GET and decodes a 200 body into out. Any other status is
// returned together with an UPSTREAM_STATUS error so callers can still
// branch on it (the forecast API answers 404 outside its grid).
func (c *Client) GetJSON(ctx context.Context, service, rawURL string, out interface{}) (int, error) {
	ctx, span := otel.Tracer(tracerName).Start(ctx, service+" GET")
	defer span.End()
	span.SetAttributes(attribute.String("upstream.service", service))

	status, err := c.getJSON(ctx, service, rawURL, out)
	metrics.ObserveUpstream(service, err)

	span.SetAttributes(attribute.Int("http.status_code", status))
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	return status, err
}

func (c *Client) getJSON(ctx context.Context, service, rawURL string, out interface{}) (int, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return 0, err
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if isTimeout(err) {
			return 0, apperrors.NewUpstreamTimeoutError(service, err)
		}
		return 0, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		_, _ = io.Copy(io.Discard, resp.Body)
		return resp.StatusCode, apperrors.NewUpstreamStatusError(service, resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return resp.StatusCode, apperrors.NewDecodeError(service, err)
	}
	return resp.StatusCode, nil
}

func isTimeout(err error) bool {
	if stderrors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return stderrors.As(err, &netErr) && netErr.Timeout()
}
