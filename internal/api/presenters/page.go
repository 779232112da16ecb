package presenters

import (
	"DishAndMovie/domain"

	"github.com/gofiber/fiber/v2"
)

const (
	LayoutMain = "layouts/main"
	ViewError  = "shared/error"
)

func Render(c *fiber.Ctx, view string, data fiber.Map) error {
	return c.Render(view, data, LayoutMain)
}

func RenderError(c *fiber.Ctx, code int, messages ...string) error {
	return c.Status(code).Render(ViewError, fiber.Map{
		"Title":    "Error",
		"Code":     code,
		"Messages": messages,
	}, LayoutMain)
}

// PageResult redirects to target when res succeeded and renders the error
// view otherwise.
func PageResult(c *fiber.Ctx, res domain.ServiceResponse, target string) error {
	switch res.Status {
	case domain.StatusCreated, domain.StatusUpdated, domain.StatusDeleted:
		return c.Redirect(target, fiber.StatusSeeOther)
	default:
		return RenderError(c, errorStatus(res), res.Messages...)
	}
}
