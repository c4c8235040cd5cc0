package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	apperrors "github.com/cristiantrocadero/Grupp3-IoT-AI/internal/common/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_GetJSON_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Accept"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"name":"Lund"}`))
	}))
	defer server.Close()

	var out struct {
		Name string `json:"name"`
	}
	status, err := NewClient(5*time.Second).GetJSON(context.Background(), "geocoder", server.URL, &out)

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "Lund", out.Name)
}

func TestClient_GetJSON_Non200(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "not found", http.StatusNotFound)
	}))
	defer server.Close()

	var out map[string]interface{}
	status, err := NewClientWith(server.Client()).GetJSON(context.Background(), "forecast", server.URL, &out)

	require.Error(t, err)
	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, apperrors.ErrCodeUpstreamStatus, apperrors.CodeOf(err))
	assert.Equal(t, "forecast returned status 404", apperrors.MessageOf(err))
}

func TestClient_GetJSON_BadBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"name":`))
	}))
	defer server.Close()

	var out map[string]interface{}
	_, err := NewClient(time.Second).GetJSON(context.Background(), "geocoder", server.URL, &out)

	require.Error(t, err)
	assert.Equal(t, apperrors.ErrCodeDecodeFailed, apperrors.CodeOf(err))
}

func TestClient_GetJSON_Timeout(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
		_, _ = w.Write([]byte(`{}`))
	}))
	defer server.Close()

	var out map[string]interface{}
	_, err := NewClient(20*time.Millisecond).GetJSON(context.Background(), "forecast", server.URL, &out)

	require.Error(t, err)
	assert.Equal(t, apperrors.ErrCodeUpstreamTimeout, apperrors.CodeOf(err))
}

func TestClient_GetJSON_BadURL(t *testing.T) {
	var out map[string]interface{}
	_, err := NewClient(time.Second).GetJSON(context.Background(), "geocoder", "://bad", &out)
	require.Error(t, err)
}
