package handlers

import (
	"DishAndMovie/domain"
	"DishAndMovie/internal/api/presenters"
	"DishAndMovie/internal/utils"
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// pageInfo clamps ?pageNum= against total using the fixed page size.
func pageInfo(c *fiber.Ctx, total int64) domain.PageInfo {
	return domain.NewPageInfo(total, domain.DefaultPageSize, c.QueryInt("pageNum", 0))
}

func badPageID(c *fiber.Ctx) error {
	return presenters.RenderError(c, fiber.StatusBadRequest, domain.MessageInvalidID)
}

func pageFindFailed(c *fiber.Ctx, err, notFound error, notFoundMessage string) error {
	if errors.Is(err, notFound) {
		return presenters.RenderError(c, fiber.StatusNotFound, notFoundMessage)
	}
	return presenters.RenderError(c, fiber.StatusInternalServerError, domain.MessageFailedProcessRequest, err.Error())
}

func pageFailed(c *fiber.Ctx, err error) error {
	return presenters.RenderError(c, fiber.StatusInternalServerError, domain.MessageFailedProcessRequest, err.Error())
}

// bindForm parses and validates a submitted form. When it fails the
// messages are returned for re-rendering the form.
func bindForm(c *fiber.Ctx, v *validator.Validate, req any) []string {
	if err := c.BodyParser(req); err != nil {
		return []string{domain.MessageFailedBodyRequest}
	}
	if err := v.Struct(req); err != nil {
		return utils.ValidationMessages(err)
	}
	return nil
}

func renderForm(c *fiber.Ctx, view string, data fiber.Map, messages []string) error {
	data["Messages"] = messages
	return c.Status(fiber.StatusBadRequest).Render(view, data, presenters.LayoutMain)
}

// formResult re-renders the form for rejected input and otherwise defers
// to the standard page outcome.
func formResult(c *fiber.Ctx, res domain.ServiceResponse, view string, data fiber.Map, target string) error {
	if res.IsValidationError() {
		return renderForm(c, view, data, res.Messages)
	}
	return presenters.PageResult(c, res, target)
}

func pagePath(prefix, action string, ids ...uint) string {
	path := "/" + prefix + "/" + action
	for _, id := range ids {
		path += fmt.Sprintf("/%d", id)
	}
	return path
}
