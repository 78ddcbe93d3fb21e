package handler

import (
	"log/slog"

	"github.com/AnthoniusHendriyanto/auth-gate/internal/auth/dto"
	"github.com/AnthoniusHendriyanto/auth-gate/internal/auth/service"
	autherror "github.com/AnthoniusHendriyanto/auth-gate/internal/errors"
	"github.com/gofiber/fiber/v2"
)

type AuthHandler struct {
	userService *service.UserService
	gate        *service.AccessGate
	log         *slog.Logger
}

func NewAuthHandler(userService *service.UserService, gate *service.AccessGate, log *slog.Logger) *AuthHandler {
	return &AuthHandler{userService: userService, gate: gate, log: log}
}

func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var input dto.RegisterInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "invalid input",
		})
	}

	user, err := h.userService.Register(c.UserContext(), input)
	if err != nil {
		switch autherror.KindOf(err) {
		case autherror.KindValidation:
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"errors": autherror.DetailsOf(err),
			})
		case autherror.KindConflict:
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{
				"message": "Email already registered.",
			})
		default:
			h.log.ErrorContext(c.UserContext(), "signup failed", "error", err, "request_id", requestID(c))
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"message": "Signup failed.",
			})
		}
	}

	h.log.InfoContext(c.UserContext(), "user registered", "user_id", user.ID, "request_id", requestID(c))

	return c.Status(fiber.StatusCreated).JSON(dto.RegisterOutput{
		Message: "User registered successfully",
		UserID:  user.ID,
	})
}

func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var input dto.LoginInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "invalid input",
		})
	}

	out, err := h.userService.Login(c.UserContext(), input)
	if err != nil {
		switch autherror.KindOf(err) {
		case autherror.KindNotFound:
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "Email Not Found"})
		case autherror.KindBadRequest:
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Password is required"})
		case autherror.KindUnauthenticated:
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "Incorrect password."})
		default:
			h.log.ErrorContext(c.UserContext(), "login failed", "error", err, "request_id", requestID(c))
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Login failed."})
		}
	}

	out.Message = "User logged in successfully"
	return c.Status(fiber.StatusOK).JSON(out)
}

// Profile returns the identity the access gate attached to the request.
func (h *AuthHandler) Profile(c *fiber.Ctx) error {
	claims, ok := ClaimsFromCtx(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": autherror.ErrAuthHeaderMissing.Message})
	}

	out := dto.ProfileOutput{
		UserID: claims.UserID,
		Email:  claims.Email,
	}
	if claims.ExpiresAt != nil {
		out.ExpiresAt = claims.ExpiresAt.Time.UTC()
	}
	return c.Status(fiber.StatusOK).JSON(out)
}
