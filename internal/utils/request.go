package utils

import (
	"DishAndMovie/domain"

	"github.com/gofiber/fiber/v2"
)

// ParseID reads a positive integer route parameter.
func ParseID(c *fiber.Ctx, name string) (uint, error) {
	id, err := c.ParamsInt(name)
	if err != nil || id <= 0 {
		return 0, domain.ErrInvalidID
	}
	return uint(id), nil
}

// ParsePagination reads ?skip= and ?perpage=. A missing perpage falls back
// to defaultPerPage.
func ParsePagination(c *fiber.Ctx, defaultPerPage int) domain.Pagination {
	return domain.NewPagination(c.QueryInt("skip", 0), c.QueryInt("perpage", defaultPerPage))
}
