package middleware

import (
	"DishAndMovie/domain"
	"DishAndMovie/internal/api/presenters"
	"DishAndMovie/pkg/jwt"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/csrf"
)

const (
	AccessTokenCookie = "access_token"

	// CSRFField is the hidden form field carrying the form token; its value
	// must match the CSRFCookie cookie.
	CSRFField  = "_csrf"
	CSRFCookie = "csrf_"

	localsUserID = "user_id"
	localsRole   = "role"
	localsCSRF   = "csrf"
)

type (
	Middleware interface {
		CORSMiddleware() fiber.Handler
		CSRFMiddleware() fiber.Handler
		AuthMiddleware(jwtService jwt.JWTService) fiber.Handler
		PageAuthMiddleware(jwtService jwt.JWTService) fiber.Handler
		IdentifyUser(jwtService jwt.JWTService) fiber.Handler
	}

	middleware struct {
		allowOrigins string
	}
)

func NewMiddleware(allowOrigins string) Middleware {
	if allowOrigins == "" {
		allowOrigins = "*"
	}
	return &middleware{
		allowOrigins: allowOrigins,
	}
}

func (m *middleware) CORSMiddleware() fiber.Handler {
	return cors.New(cors.Config{
		AllowOrigins:     m.allowOrigins,
		AllowMethods:     "GET,POST,PUT,PATCH,DELETE,OPTIONS",
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
		AllowCredentials: m.allowOrigins != "*",
	})
}

// CSRFMiddleware guards form posts on the pages. Every call returns a handler
// with its own token store, so build it once and share it between groups.
func (m *middleware) CSRFMiddleware() fiber.Handler {
	return csrf.New(csrf.Config{
		KeyLookup:      "form:" + CSRFField,
		CookieName:     CSRFCookie,
		CookieSameSite: fiber.CookieSameSiteLaxMode,
		CookieHTTPOnly: true,
		Expiration:     2 * time.Hour,
		ContextKey:     localsCSRF,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			log.Warnf("rejected form post %s %s: %v", c.Method(), c.Path(), err)
			return presenters.RenderError(c, fiber.StatusForbidden, domain.MessageFormTokenInvalid)
		},
	})
}

// tokenFromRequest prefers the Authorization header and falls back to the
// session cookie set by the login page.
func tokenFromRequest(c *fiber.Ctx) string {
	header := c.Get(fiber.HeaderAuthorization)
	if token, ok := strings.CutPrefix(header, "Bearer "); ok {
		return strings.TrimSpace(token)
	}
	return c.Cookies(AccessTokenCookie)
}

func authenticate(c *fiber.Ctx, jwtService jwt.JWTService) (string, error) {
	token := tokenFromRequest(c)
	if token == "" {
		return domain.MessageFailedGetToken, domain.ErrTokenNotFound
	}
	userID, role, err := jwtService.GetUserIDByToken(token)
	if err != nil {
		return domain.MessageFailedTokenInvalid, err
	}
	c.Locals(localsUserID, userID)
	c.Locals(localsRole, role)
	return "", nil
}

func (m *middleware) AuthMiddleware(jwtService jwt.JWTService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if msg, err := authenticate(c, jwtService); err != nil {
			return presenters.ErrorResponse(c, fiber.StatusUnauthorized, msg, err)
		}
		return c.Next()
	}
}

func (m *middleware) PageAuthMiddleware(jwtService jwt.JWTService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if msg, err := authenticate(c, jwtService); err != nil {
			return presenters.RenderError(c, fiber.StatusUnauthorized, msg, err.Error())
		}
		return c.Next()
	}
}

// IdentifyUser populates the user locals when a valid token is present and
// never rejects the request.
func (m *middleware) IdentifyUser(jwtService jwt.JWTService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		_, _ = authenticate(c, jwtService)
		return c.Next()
	}
}

func CurrentUserID(c *fiber.Ctx) (uint, bool) {
	id, ok := c.Locals(localsUserID).(uint)
	return id, ok && id != 0
}

func CurrentRole(c *fiber.Ctx) string {
	role, _ := c.Locals(localsRole).(string)
	return role
}

func CurrentActor(c *fiber.Ctx) domain.Actor {
	id, _ := CurrentUserID(c)
	return domain.Actor{UserID: id, Role: CurrentRole(c)}
}
