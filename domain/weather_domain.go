package domain

import "errors"

const DefaultWeatherCity = "Toronto"

var (
	MessageSuccessGetWeather  = "success get weather"
	MessageFailedFetchWeather = "could not fetch weather data"

	ErrWeatherUnavailable = errors.New("weather service unavailable")
)

type (
	Forecast struct {
		Day         string `json:"day"`
		Temperature string `json:"temperature"`
		Wind        string `json:"wind"`
	}

	Weather struct {
		City        string     `json:"city"`
		Temperature string     `json:"temperature"`
		Wind        string     `json:"wind"`
		Description string     `json:"description"`
		Forecast    []Forecast `json:"forecast"`
	}
)
