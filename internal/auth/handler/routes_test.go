package handler_test

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/AnthoniusHendriyanto/auth-gate/internal/auth/handler"
	"github.com/AnthoniusHendriyanto/auth-gate/internal/auth/service"
	autherror "github.com/AnthoniusHendriyanto/auth-gate/internal/errors"
	"github.com/AnthoniusHendriyanto/auth-gate/internal/logging"
	"github.com/AnthoniusHendriyanto/auth-gate/internal/mocks"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

// TestRegisterRoutes verifies that all public routes are mounted correctly.
func TestRegisterRoutes(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockUserRepository(ctrl)
	mockRepo.EXPECT().Ping(gomock.Any()).Return(nil).AnyTimes()
	mockTokenService := mocks.NewMockTokenGenerator(ctrl)
	userService := service.NewUserService(mockRepo, service.NewBcryptHasher(bcrypt.MinCost), mockTokenService)
	authHandler := handler.NewAuthHandler(userService, service.NewAccessGate(mockTokenService), logging.Discard())

	app := fiber.New()
	handler.RegisterRoutes(app, authHandler, handler.NewHealthHandler(mockRepo, logging.Discard()))

	testCases := []struct {
		method string
		path   string
	}{
		{http.MethodPost, "/api/signup"},
		{http.MethodPost, "/api/login"},
		{http.MethodGet, "/api/me"},
		{http.MethodGet, "/api/health"},
		{http.MethodGet, "/api/ready"},
	}

	for _, tc := range testCases {
		t.Run(fmt.Sprintf("%s_%s_exists", tc.method, tc.path), func(t *testing.T) {
			req := httptest.NewRequest(tc.method, tc.path, nil)
			resp, err := app.Test(req)
			require.NoError(t, err)

			// Handlers answer 400/401 for an empty request; only 404 means the route is missing.
			assert.NotEqual(t, http.StatusNotFound, resp.StatusCode)
		})
	}
}

func TestRequireAuthMiddleware(t *testing.T) {
	tokens := service.NewTokenService("gate-secret", time.Hour, "auth-gate")
	authHandler := handler.NewAuthHandler(nil, service.NewAccessGate(tokens), logging.Discard())

	app := fiber.New()
	app.Get("/protected", authHandler.RequireAuth(), func(c *fiber.Ctx) error {
		claims, ok := handler.ClaimsFromCtx(c)
		if !ok {
			return c.SendStatus(fiber.StatusTeapot)
		}
		fromCtx, ok := service.ClaimsFromContext(c.UserContext())
		if !ok || fromCtx != claims {
			return c.SendStatus(fiber.StatusTeapot)
		}
		return c.JSON(fiber.Map{"userId": claims.UserID})
	})

	validToken, _, err := tokens.Generate("user-1", "ada@example.com")
	require.NoError(t, err)

	expiredToken, err := jwt.NewWithClaims(jwt.SigningMethodHS256, service.JWTCustomClaims{
		UserID: "user-1",
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    "auth-gate",
			IssuedAt:  jwt.NewNumericDate(time.Now().Add(-2 * time.Hour)),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
		},
	}).SignedString([]byte("gate-secret"))
	require.NoError(t, err)

	testCases := []struct {
		name           string
		header         string
		expectedStatus int
		expectedError  string
	}{
		{"missing header", "", fiber.StatusUnauthorized, "authorization header missing"},
		{"wrong scheme", "Token abc", fiber.StatusUnauthorized, "invalid authorization format"},
		{"lowercase scheme", "bearer " + validToken, fiber.StatusUnauthorized, "invalid authorization format"},
		{"garbage token", "Bearer not-a-real-token", fiber.StatusUnauthorized, "invalid token"},
		{"expired token", "Bearer " + expiredToken, fiber.StatusUnauthorized, "token expired"},
		{"valid token", "Bearer " + validToken, fiber.StatusOK, ""},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/protected", nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}

			resp, err := app.Test(req)
			require.NoError(t, err)
			assert.Equal(t, tc.expectedStatus, resp.StatusCode)

			body := decodeBody(t, resp)
			if tc.expectedError != "" {
				assert.Equal(t, tc.expectedError, body["error"])
				return
			}
			assert.Equal(t, "user-1", body["userId"])
		})
	}
}

func TestRequireAuthMiddleware_VerifierFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockTokenService := mocks.NewMockTokenGenerator(ctrl)
	mockTokenService.EXPECT().VerifyAccessToken("some-token").
		Return(nil, autherror.Internal(errors.New("key lookup failed")))

	authHandler := handler.NewAuthHandler(nil, service.NewAccessGate(mockTokenService), logging.Discard())

	app := fiber.New()
	app.Get("/protected", authHandler.RequireAuth(), func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusTeapot)
	})

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer some-token")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)
	assert.Equal(t, "internal server error", decodeBody(t, resp)["error"])
}

func TestHealthHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockUserRepository(ctrl)
	health := handler.NewHealthHandler(mockRepo, logging.Discard())

	app := fiber.New()
	app.Get("/health", health.Health)
	app.Get("/ready", health.Ready)

	t.Run("health never touches the store", func(t *testing.T) {
		resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/health", nil))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
		assert.Equal(t, "ok", decodeBody(t, resp)["status"])
	})

	t.Run("ready when store answers", func(t *testing.T) {
		mockRepo.EXPECT().Ping(gomock.Any()).Return(nil)

		resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/ready", nil))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
		assert.Equal(t, "ready", decodeBody(t, resp)["status"])
	})

	t.Run("not ready when store is down", func(t *testing.T) {
		mockRepo.EXPECT().Ping(gomock.Any()).Return(errors.New("connection refused"))

		resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/ready", nil))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusServiceUnavailable, resp.StatusCode)
		assert.Equal(t, "not_ready", decodeBody(t, resp)["status"])
	})
}
