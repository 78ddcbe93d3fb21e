package service

//go:generate mockgen -destination=../../mocks/mock_token_generator.go -package=mocks github.com/AnthoniusHendriyanto/auth-gate/internal/auth/service TokenGenerator

import (
	"errors"
	"fmt"
	"time"

	autherror "github.com/AnthoniusHendriyanto/auth-gate/internal/errors"
	"github.com/golang-jwt/jwt/v5"
)

type TokenGenerator interface {
	Generate(userID, email string) (string, time.Time, error)
	GetAccessTokenExpiry() time.Duration
	VerifyAccessToken(tokenString string) (*JWTCustomClaims, error)
}

type TokenService struct {
	AccessTokenSecret string
	AccessTokenExpiry time.Duration
	Issuer            string
	now               func() time.Time
}

type JWTCustomClaims struct {
	jwt.RegisteredClaims
	UserID string `json:"user_id"`
	Email  string `json:"email"`
}

type TokenOption func(*TokenService)

// WithClock replaces time.Now for issuing and validating tokens.
func WithClock(now func() time.Time) TokenOption {
	return func(ts *TokenService) {
		ts.now = now
	}
}

func NewTokenService(secret string, expiry time.Duration, issuer string, opts ...TokenOption) *TokenService {
	ts := &TokenService{
		AccessTokenSecret: secret,
		AccessTokenExpiry: expiry,
		Issuer:            issuer,
		now:               time.Now,
	}
	for _, opt := range opts {
		opt(ts)
	}
	return ts
}

func (ts *TokenService) Generate(userID, email string) (string, time.Time, error) {
	now := ts.now()
	expiresAt := now.Add(ts.AccessTokenExpiry)

	claims := JWTCustomClaims{
		UserID: userID,
		Email:  email,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			Issuer:    ts.Issuer,
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(ts.AccessTokenSecret))
	if err != nil {
		return "", time.Time{}, err
	}

	return token, expiresAt, nil
}

func (ts *TokenService) GetAccessTokenExpiry() time.Duration {
	return ts.AccessTokenExpiry
}

// jwtValidationErrors are the failures that mean the presented token is bad,
// as opposed to the verifier itself failing.
var jwtValidationErrors = []error{
	jwt.ErrTokenMalformed,
	jwt.ErrTokenUnverifiable,
	jwt.ErrTokenSignatureInvalid,
	jwt.ErrTokenInvalidClaims,
	jwt.ErrTokenNotValidYet,
	jwt.ErrTokenUsedBeforeIssued,
	jwt.ErrTokenInvalidIssuer,
	jwt.ErrTokenRequiredClaimMissing,
	jwt.ErrTokenInvalidAudience,
	jwt.ErrTokenInvalidSubject,
	jwt.ErrTokenInvalidId,
}

// VerifyAccessToken parses and validates the given access token string.
// Errors are autherror.ErrTokenExpired, autherror.ErrInvalidToken, or an internal error.
func (ts *TokenService) VerifyAccessToken(tokenString string) (*JWTCustomClaims, error) {
	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(ts.now),
		jwt.WithExpirationRequired(),
	}
	if ts.Issuer != "" {
		opts = append(opts, jwt.WithIssuer(ts.Issuer))
	}

	claims := &JWTCustomClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(ts.AccessTokenSecret), nil
	}, opts...)
	if err != nil {
		return nil, classifyTokenError(err)
	}

	if !token.Valid {
		return nil, autherror.ErrInvalidToken
	}

	return claims, nil
}

func classifyTokenError(err error) error {
	if errors.Is(err, jwt.ErrTokenExpired) {
		return autherror.ErrTokenExpired
	}
	for _, target := range jwtValidationErrors {
		if errors.Is(err, target) {
			return autherror.ErrInvalidToken
		}
	}
	return autherror.Internal(err)
}
