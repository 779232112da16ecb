package presenters

import (
	"DishAndMovie/internal/utils"
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type Response struct {
	Status  bool   `json:"status"`
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
	Error   any    `json:"error,omitempty"`
}

func SuccessResponse(c *fiber.Ctx, data any, code int, message string) error {
	return c.Status(code).JSON(Response{
		Status:  true,
		Message: message,
		Data:    data,
	})
}

// ErrorResponse writes a failure envelope. Validation errors are expanded
// into one entry per offending field.
func ErrorResponse(c *fiber.Ctx, code int, message string, err error) error {
	res := Response{
		Status:  false,
		Message: message,
	}
	var ve validator.ValidationErrors
	switch {
	case errors.As(err, &ve):
		res.Error = utils.ValidationMessages(err)
	case err != nil:
		res.Error = err.Error()
	}
	return c.Status(code).JSON(res)
}
