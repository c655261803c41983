package detector

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetectParsesResult(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseMultipartForm(10<<20))

		file, header, err := r.FormFile("file")
		require.NoError(t, err)
		defer file.Close()

		assert.Equal(t, "image.jpg", header.Filename)
		assert.Equal(t, "image/jpeg", header.Header.Get("Content-Type"))

		data, err := io.ReadAll(file)
		require.NoError(t, err)
		assert.Equal(t, []byte("fake image bytes"), data)

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"total_count": 2,
			"boxes": [{"width": 1.5, "height": 2.0, "x": 10, "y": 20}, {"width": 3, "height": 3}],
			"status": "HIGH RISK",
			"risk_score": 42.5
		}`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, 5*time.Second)
	result, err := client.Detect(context.Background(), []byte("fake image bytes"))
	require.NoError(t, err)

	assert.Equal(t, 2, result.TotalCount)
	assert.Equal(t, "HIGH RISK", result.Status)
	assert.InDelta(t, 42.5, result.RiskScore, 1e-9)
	require.Len(t, result.Boxes, 2)
	assert.InDelta(t, 1.5, result.Boxes[0].Width, 1e-9)
	assert.InDelta(t, 2.0, result.Boxes[0].Height, 1e-9)
}

func TestDetectDefaultsMissingFields(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, 5*time.Second)
	result, err := client.Detect(context.Background(), []byte("img"))
	require.NoError(t, err)

	assert.Zero(t, result.TotalCount)
	assert.NotNil(t, result.Boxes)
	assert.Empty(t, result.Boxes)
	assert.Equal(t, StatusUnknown, result.Status)
	assert.Zero(t, result.RiskScore)
}

func TestDetectNon200SurfacesBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte("model exploded"))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, 5*time.Second)
	result, err := client.Detect(context.Background(), []byte("img"))
	require.Error(t, err)
	assert.Nil(t, result)

	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusInternalServerError, apiErr.StatusCode)
	assert.Equal(t, "model exploded", apiErr.Body)
}

func TestDetectTransportError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // connection refused from here on

	client := NewClient(srv.URL, time.Second)
	_, err := client.Detect(context.Background(), []byte("img"))
	require.Error(t, err)

	var apiErr *APIError
	assert.False(t, errors.As(err, &apiErr), "transport failures are not API errors")
}

func TestDetectMalformedJSON(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("not json"))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, 5*time.Second)
	_, err := client.Detect(context.Background(), []byte("img"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "decode response")
}
