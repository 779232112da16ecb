package presenters

import (
	"DishAndMovie/domain"
	"fmt"
	"strings"

	"github.com/gofiber/fiber/v2"
)

func firstMessage(res domain.ServiceResponse) string {
	if len(res.Messages) == 0 {
		return res.Status.String()
	}
	return res.Messages[0]
}

func errorStatus(res domain.ServiceResponse) int {
	switch {
	case res.Status == domain.StatusNotFound:
		return fiber.StatusNotFound
	case res.IsValidationError():
		return fiber.StatusBadRequest
	case res.IsForbidden():
		return fiber.StatusForbidden
	default:
		return fiber.StatusInternalServerError
	}
}

// ServiceResult maps a mutating operation's outcome onto the JSON API.
// Created answers 201 with a Location of locationPrefix + id, Updated and
// Deleted answer 204 with no body.
func ServiceResult(c *fiber.Ctx, res domain.ServiceResponse, locationPrefix string) error {
	switch res.Status {
	case domain.StatusCreated:
		if locationPrefix != "" {
			c.Location(strings.TrimRight(locationPrefix, "/") + "/" + fmt.Sprint(res.CreatedID))
		}
		return SuccessResponse(c, res, fiber.StatusCreated, firstMessage(res))
	case domain.StatusUpdated, domain.StatusDeleted:
		return c.SendStatus(fiber.StatusNoContent)
	default:
		return c.Status(errorStatus(res)).JSON(Response{
			Status:  false,
			Message: firstMessage(res),
			Error:   res.Messages,
		})
	}
}
