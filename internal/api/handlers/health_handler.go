package handlers

import (
	"DishAndMovie/internal/api/presenters"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type (
	HealthHandler interface {
		Ping(c *fiber.Ctx) error
		Health(c *fiber.Ctx) error
	}

	healthHandler struct {
		db *gorm.DB
	}
)

func NewHealthHandler(db *gorm.DB) HealthHandler {
	return &healthHandler{
		db: db,
	}
}

func (h *healthHandler) Ping(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"message": "pong"})
}

// Health reports 503 when the database cannot be reached.
func (h *healthHandler) Health(c *fiber.Ctx) error {
	sqlDB, err := h.db.DB()
	if err == nil {
		err = sqlDB.PingContext(c.Context())
	}
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusServiceUnavailable, "database unreachable", err)
	}
	return presenters.SuccessResponse(c, fiber.Map{"database": "ok"}, fiber.StatusOK, "healthy")
}
