package handlers

import (
	"DishAndMovie/domain"
	"DishAndMovie/internal/api/presenters"
	"DishAndMovie/pkg/weather"

	"github.com/gofiber/fiber/v2"
)

type (
	WeatherPageHandler interface {
		Index(c *fiber.Ctx) error
	}

	weatherPageHandler struct {
		weatherService weather.WeatherService
	}
)

func NewWeatherPageHandler(weatherService weather.WeatherService) WeatherPageHandler {
	return &weatherPageHandler{
		weatherService: weatherService,
	}
}

// Index renders an upstream failure as a message on the page rather than
// an error status.
func (h *weatherPageHandler) Index(c *fiber.Ctx) error {
	city := c.Query("city", domain.DefaultWeatherCity)
	data := fiber.Map{
		"Title": "Weather",
		"City":  city,
	}

	res, err := h.weatherService.GetWeather(c.Context(), city)
	if err != nil {
		data["Error"] = domain.MessageFailedFetchWeather
		return presenters.Render(c, "weather/index", data)
	}

	data["Weather"] = res
	return presenters.Render(c, "weather/index", data)
}
