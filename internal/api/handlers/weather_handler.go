package handlers

import (
	"DishAndMovie/domain"
	"DishAndMovie/internal/api/presenters"
	"DishAndMovie/pkg/weather"

	"github.com/gofiber/fiber/v2"
)

type (
	WeatherHandler interface {
		GetWeather(c *fiber.Ctx) error
	}

	weatherHandler struct {
		weatherService weather.WeatherService
	}
)

func NewWeatherHandler(weatherService weather.WeatherService) WeatherHandler {
	return &weatherHandler{
		weatherService: weatherService,
	}
}

func (h *weatherHandler) GetWeather(c *fiber.Ctx) error {
	res, err := h.weatherService.GetWeather(c.Context(), c.Params("city", domain.DefaultWeatherCity))
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadGateway, domain.MessageFailedFetchWeather, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetWeather)
}
