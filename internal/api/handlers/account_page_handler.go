package handlers

import (
	"DishAndMovie/domain"
	"DishAndMovie/internal/api/presenters"
	"DishAndMovie/pkg/user"
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	AccountPageHandler interface {
		LoginForm(c *fiber.Ctx) error
		Login(c *fiber.Ctx) error
		RegisterForm(c *fiber.Ctx) error
		Register(c *fiber.Ctx) error
		Logout(c *fiber.Ctx) error
	}

	accountPageHandler struct {
		userService user.UserService
		validator   *validator.Validate
		tokenTTL    time.Duration
	}
)

func NewAccountPageHandler(userService user.UserService, validator *validator.Validate, tokenTTL time.Duration) AccountPageHandler {
	return &accountPageHandler{
		userService: userService,
		validator:   validator,
		tokenTTL:    tokenTTL,
	}
}

func (h *accountPageHandler) LoginForm(c *fiber.Ctx) error {
	return presenters.Render(c, "account/login", fiber.Map{"Title": "Log in"})
}

func (h *accountPageHandler) Login(c *fiber.Ctx) error {
	req := domain.LoginRequest{}
	data := fiber.Map{"Title": "Log in"}
	if messages := bindForm(c, h.validator, &req); messages != nil {
		data["Email"] = req.Email
		return renderForm(c, "account/login", data, messages)
	}

	res, err := h.userService.Login(c.Context(), req)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			data["Email"] = req.Email
			data["Messages"] = []string{err.Error()}
			return c.Status(fiber.StatusUnauthorized).Render("account/login", data, presenters.LayoutMain)
		}
		return pageFailed(c, err)
	}

	setTokenCookie(c, res.Token, h.tokenTTL)
	return c.Redirect(pagePath(moviePages, "List"), fiber.StatusSeeOther)
}

func (h *accountPageHandler) RegisterForm(c *fiber.Ctx) error {
	return presenters.Render(c, "account/register", fiber.Map{"Title": "Register"})
}

func (h *accountPageHandler) Register(c *fiber.Ctx) error {
	req := domain.RegisterRequest{}
	data := fiber.Map{"Title": "Register"}
	messages := bindForm(c, h.validator, &req)
	data["Email"] = req.Email
	data["UserName"] = req.UserName
	if messages != nil {
		return renderForm(c, "account/register", data, messages)
	}

	if _, err := h.userService.Register(c.Context(), req); err != nil {
		if errors.Is(err, domain.ErrEmailAlreadyExists) {
			return renderForm(c, "account/register", data, []string{err.Error()})
		}
		return pageFailed(c, err)
	}

	return c.Redirect("/Account/Login", fiber.StatusSeeOther)
}

func (h *accountPageHandler) Logout(c *fiber.Ctx) error {
	clearTokenCookie(c)
	return c.Redirect(pagePath(moviePages, "List"), fiber.StatusSeeOther)
}
