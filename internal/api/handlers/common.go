package handlers

import (
	"DishAndMovie/domain"
	"DishAndMovie/internal/api/presenters"
	"DishAndMovie/internal/utils"
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// bindRequest parses the body into req and validates it. On failure the
// 400 response has already been written and handled is true.
func bindRequest(c *fiber.Ctx, v *validator.Validate, req any, failMessage string) (handled bool, err error) {
	if err := c.BodyParser(req); err != nil {
		return true, presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}
	if err := v.Struct(req); err != nil {
		return true, presenters.ErrorResponse(c, fiber.StatusBadRequest, failMessage, err)
	}
	return false, nil
}

func invalidID(c *fiber.Ctx) error {
	return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageInvalidID, domain.ErrInvalidID)
}

func idMismatch(c *fiber.Ctx) error {
	return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageIDMismatch, domain.ErrIDMismatch)
}

// findFailed answers 404 when err is notFound and 500 otherwise.
func findFailed(c *fiber.Ctx, err, notFound error, notFoundMessage string) error {
	if errors.Is(err, notFound) {
		return presenters.ErrorResponse(c, fiber.StatusNotFound, notFoundMessage, err)
	}
	return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedProcessRequest, err)
}

// apiPagination defaults perpage to the full count so an unparameterized
// list returns every row.
func apiPagination(c *fiber.Ctx, total int64) domain.Pagination {
	return utils.ParsePagination(c, int(total))
}
