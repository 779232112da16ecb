package weather

import (
	"DishAndMovie/domain"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWeatherService_GetWeather(t *testing.T) {
	var path string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		path = r.URL.EscapedPath()
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"temperature": "+21 °C",
			"wind": "12 km/h",
			"description": "Sunny",
			"forecast": [{"day": "1", "temperature": "+19 °C", "wind": "9 km/h"}]
		}`))
	}))
	defer srv.Close()

	svc := NewWeatherService(srv.URL+"/", time.Second)

	w, err := svc.GetWeather(context.Background(), "New York")
	require.NoError(t, err)
	assert.Equal(t, "/New%20York", path)
	assert.Equal(t, "New York", w.City)
	assert.Equal(t, "+21 °C", w.Temperature)
	assert.Equal(t, "Sunny", w.Description)
	require.Len(t, w.Forecast, 1)
	assert.Equal(t, "9 km/h", w.Forecast[0].Wind)

	w, err = svc.GetWeather(context.Background(), "  ")
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultWeatherCity, w.City)
	assert.Equal(t, "/"+domain.DefaultWeatherCity, path)
}

func TestWeatherService_BreakerOpensAfterFailures(t *testing.T) {
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		hits.Add(1)
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	svc := NewWeatherServiceWithClient(srv.URL, srv.Client())

	for i := 0; i < breakerMaxFailures+3; i++ {
		_, err := svc.GetWeather(context.Background(), "Oslo")
		assert.ErrorIs(t, err, domain.ErrWeatherUnavailable)
	}
	assert.EqualValues(t, breakerMaxFailures, hits.Load())
}

func TestWeatherService_ClientErrorsKeepBreakerClosed(t *testing.T) {
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		hits.Add(1)
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	svc := NewWeatherServiceWithClient(srv.URL, srv.Client())

	calls := breakerMaxFailures + 3
	for i := 0; i < calls; i++ {
		_, err := svc.GetWeather(context.Background(), "Atlantis")
		assert.ErrorIs(t, err, domain.ErrWeatherUnavailable)
	}
	assert.EqualValues(t, calls, hits.Load())
}

func TestCountsAsSuccess(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"nil", nil, true},
		{"not found", &statusError{code: http.StatusNotFound}, true},
		{"bad request", &statusError{code: http.StatusBadRequest}, true},
		{"server error", &statusError{code: http.StatusBadGateway}, false},
		{"transport", errors.New("connection refused"), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, countsAsSuccess(tt.err))
		})
	}
}
