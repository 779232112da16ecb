package weather

import (
	"DishAndMovie/domain"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2/log"
	"github.com/sony/gobreaker/v2"
)

const (
	breakerName        = "weather"
	breakerOpenTimeout = 30 * time.Second
	breakerMaxFailures = 5
)

// statusError is a non-2xx answer from the weather upstream.
type statusError struct {
	code int
}

func (e *statusError) Error() string {
	return fmt.Sprintf("unexpected status %d", e.code)
}

// countsAsSuccess keeps client errors, such as an unknown city, from
// tripping the breaker.
func countsAsSuccess(err error) bool {
	var se *statusError
	if errors.As(err, &se) {
		return se.code >= 400 && se.code < 500
	}
	return err == nil
}

type (
	WeatherService interface {
		GetWeather(ctx context.Context, city string) (*domain.Weather, error)
	}

	weatherService struct {
		baseURL string
		client  *http.Client
		breaker *gobreaker.CircuitBreaker[*domain.Weather]
	}
)

func NewWeatherService(baseURL string, timeout time.Duration) WeatherService {
	return NewWeatherServiceWithClient(baseURL, &http.Client{Timeout: timeout})
}

func NewWeatherServiceWithClient(baseURL string, client *http.Client) WeatherService {
	return &weatherService{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  client,
		breaker: gobreaker.NewCircuitBreaker[*domain.Weather](gobreaker.Settings{
			Name:         breakerName,
			Timeout:      breakerOpenTimeout,
			IsSuccessful: countsAsSuccess,
			ReadyToTrip: func(counts gobreaker.Counts) bool {
				return counts.ConsecutiveFailures >= breakerMaxFailures
			},
			OnStateChange: func(name string, from, to gobreaker.State) {
				log.Infof("circuit breaker %s: %s -> %s", name, from, to)
			},
		}),
	}
}

func (s *weatherService) GetWeather(ctx context.Context, city string) (*domain.Weather, error) {
	city = strings.TrimSpace(city)
	if city == "" {
		city = domain.DefaultWeatherCity
	}

	w, err := s.breaker.Execute(func() (*domain.Weather, error) {
		return s.fetch(ctx, city)
	})
	if err != nil {
		log.Warnf("weather lookup for %q failed: %v", city, err)
		return nil, fmt.Errorf("%w: %v", domain.ErrWeatherUnavailable, err)
	}
	return w, nil
}

func (s *weatherService) fetch(ctx context.Context, city string) (*domain.Weather, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.baseURL+"/"+url.PathEscape(city), nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &statusError{code: resp.StatusCode}
	}

	var w domain.Weather
	if err := json.NewDecoder(resp.Body).Decode(&w); err != nil {
		return nil, err
	}
	w.City = city
	return &w, nil
}
