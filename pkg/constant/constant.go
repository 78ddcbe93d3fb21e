package constant

import "time"

const (
	DefaultTokenType = "Bearer"

	// DefaultAccessTokenTTL is the lifetime of login-issued tokens.
	DefaultAccessTokenTTL = time.Hour

	DefaultBcryptCost = 10

	MinPasswordLength = 8
	// MaxPasswordBytes is bcrypt's input limit.
	MaxPasswordBytes = 72

	AuthorizationHeader = "Authorization"
	BearerPrefix        = "Bearer "

	// LocalsClaimsKey is the fiber.Ctx Locals key holding verified token claims.
	LocalsClaimsKey = "claims"
)
