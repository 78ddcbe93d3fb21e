package service

import (
	"context"
	"strings"

	autherror "github.com/AnthoniusHendriyanto/auth-gate/internal/errors"
	authconstant "github.com/AnthoniusHendriyanto/auth-gate/pkg/constant"
)

// AccessGate decides whether a request's Authorization header grants access.
// It is framework independent and never touches the credential store.
type AccessGate struct {
	tokens TokenGenerator
}

func NewAccessGate(tokens TokenGenerator) *AccessGate {
	return &AccessGate{tokens: tokens}
}

// Authorize takes the raw Authorization header value and returns the decoded claims.
func (g *AccessGate) Authorize(authHeader string) (*JWTCustomClaims, error) {
	if authHeader == "" {
		return nil, autherror.ErrAuthHeaderMissing
	}
	if !strings.HasPrefix(authHeader, authconstant.BearerPrefix) {
		return nil, autherror.ErrInvalidAuthFormat
	}

	// The token is the word right after the single space; "Bearer  x" carries an empty token.
	tokenString, _, _ := strings.Cut(strings.TrimPrefix(authHeader, authconstant.BearerPrefix), " ")
	if tokenString == "" {
		return nil, autherror.ErrInvalidToken
	}

	return g.tokens.VerifyAccessToken(tokenString)
}

type claimsContextKey struct{}

// ContextWithClaims attaches verified claims to ctx for downstream handlers.
func ContextWithClaims(ctx context.Context, claims *JWTCustomClaims) context.Context {
	return context.WithValue(ctx, claimsContextKey{}, claims)
}

func ClaimsFromContext(ctx context.Context) (*JWTCustomClaims, bool) {
	claims, ok := ctx.Value(claimsContextKey{}).(*JWTCustomClaims)
	return claims, ok && claims != nil
}
