package handlers

import (
	"DishAndMovie/domain"
	"DishAndMovie/internal/api/presenters"
	"DishAndMovie/internal/middleware"
	"DishAndMovie/pkg/user"
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	AccountHandler interface {
		Register(c *fiber.Ctx) error
		Login(c *fiber.Ctx) error
		Logout(c *fiber.Ctx) error
		Me(c *fiber.Ctx) error
	}

	accountHandler struct {
		userService user.UserService
		validator   *validator.Validate
		tokenTTL    time.Duration
	}
)

func NewAccountHandler(userService user.UserService, validator *validator.Validate, tokenTTL time.Duration) AccountHandler {
	return &accountHandler{
		userService: userService,
		validator:   validator,
		tokenTTL:    tokenTTL,
	}
}

func setTokenCookie(c *fiber.Ctx, token string, ttl time.Duration) {
	c.Cookie(&fiber.Cookie{
		Name:     middleware.AccessTokenCookie,
		Value:    token,
		Path:     "/",
		Expires:  time.Now().Add(ttl),
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
}

func clearTokenCookie(c *fiber.Ctx) {
	c.Cookie(&fiber.Cookie{
		Name:     middleware.AccessTokenCookie,
		Value:    "",
		Path:     "/",
		Expires:  time.Unix(0, 0),
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
}

func (h *accountHandler) Register(c *fiber.Ctx) error {
	req := new(domain.RegisterRequest)
	if handled, err := bindRequest(c, h.validator, req, domain.MessageFailedRegister); handled {
		return err
	}

	res, err := h.userService.Register(c.Context(), *req)
	if err != nil {
		if errors.Is(err, domain.ErrEmailAlreadyExists) {
			return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedRegister, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedRegister, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessRegister)
}

func (h *accountHandler) Login(c *fiber.Ctx) error {
	req := new(domain.LoginRequest)
	if handled, err := bindRequest(c, h.validator, req, domain.MessageFailedLogin); handled {
		return err
	}

	res, err := h.userService.Login(c.Context(), *req)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			return presenters.ErrorResponse(c, fiber.StatusUnauthorized, domain.MessageFailedLogin, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedLogin, err)
	}

	setTokenCookie(c, res.Token, h.tokenTTL)
	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessLogin)
}

func (h *accountHandler) Logout(c *fiber.Ctx) error {
	clearTokenCookie(c)
	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessLogout)
}

func (h *accountHandler) Me(c *fiber.Ctx) error {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		return presenters.ErrorResponse(c, fiber.StatusUnauthorized, domain.MesaageUserNotAllowed, domain.ErrUserNotAllowed)
	}

	res, err := h.userService.Me(c.Context(), userID)
	if err != nil {
		return findFailed(c, err, domain.ErrUserNotFound, domain.ErrUserNotFound.Error())
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetUser)
}
