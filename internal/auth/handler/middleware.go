package handler

import (
	"errors"
	"log/slog"
	"time"

	"github.com/AnthoniusHendriyanto/auth-gate/internal/auth/service"
	autherror "github.com/AnthoniusHendriyanto/auth-gate/internal/errors"
	authconstant "github.com/AnthoniusHendriyanto/auth-gate/pkg/constant"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/requestid"
)

// RequireAuth guards the routes after it with a Bearer token check.
func (h *AuthHandler) RequireAuth() fiber.Handler {
	return func(c *fiber.Ctx) error {
		claims, err := h.gate.Authorize(c.Get(authconstant.AuthorizationHeader))
		if err != nil {
			var e *autherror.Error
			if errors.As(err, &e) && e.Kind == autherror.KindUnauthenticated {
				return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": e.Message})
			}
			h.log.ErrorContext(c.UserContext(), "token verification failed", "error", err, "request_id", requestID(c))
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "internal server error"})
		}

		c.Locals(authconstant.LocalsClaimsKey, claims)
		c.SetUserContext(service.ContextWithClaims(c.UserContext(), claims))
		return c.Next()
	}
}

// ClaimsFromCtx returns the claims stored by RequireAuth.
func ClaimsFromCtx(c *fiber.Ctx) (*service.JWTCustomClaims, bool) {
	claims, ok := c.Locals(authconstant.LocalsClaimsKey).(*service.JWTCustomClaims)
	return claims, ok && claims != nil
}

// RequestLogger logs one line per request.
func RequestLogger(log *slog.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()

		status := c.Response().StatusCode()
		if err != nil {
			if fe, ok := err.(*fiber.Error); ok {
				status = fe.Code
			}
		}

		log.InfoContext(c.UserContext(), "http request",
			"method", c.Method(),
			"path", c.Path(),
			"status", status,
			"latency", time.Since(start),
			"request_id", requestID(c),
		)
		return err
	}
}

func requestID(c *fiber.Ctx) string {
	if id, ok := c.Locals(requestid.ConfigDefault.ContextKey).(string); ok {
		return id
	}
	return ""
}
