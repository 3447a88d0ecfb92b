// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	pkgerrors "github.com/pkg/errors"

	"linkup/config"
	"linkup/internal/domain/errors"
	"linkup/internal/domain/service"
)

// tokenLifetimeMonths is how far out issued tokens expire, in calendar months.
const tokenLifetimeMonths = 6

// jwtService is a concrete implementation of the TokenService interface using the JWT standard.
type jwtService struct {
	secret string // Shared HMAC-SHA256 signing secret.
}

// NewJWTService is the constructor for jwtService.
// An empty secret is a configuration error: the service must refuse to start
// rather than mint tokens signed with an empty key.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg.SecretKey == "" {
		return nil, errors.ErrConfiguration.WrapMessage("jwt signing secret must be provided")
	}

	return &jwtService{secret: cfg.SecretKey}, nil
}

// Issue creates a signed token whose subject is the user id, expiring six
// calendar months from now.
func (s *jwtService) Issue(userID int64) (string, time.Time, error) {
	now := time.Now()
	expiresAt := now.AddDate(0, tokenLifetimeMonths, 0)

	claims := jwt.MapClaims{
		"sub": strconv.FormatInt(userID, 10),
		"iat": now.Unix(),
		"exp": expiresAt.Unix(),
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(s.secret))
	if err != nil {
		return "", time.Time{}, pkgerrors.Wrap(err, "failed to sign token")
	}

	return token, expiresAt, nil
}

// Validate checks the token's structure, signature and expiry, and returns
// the embedded user id. Every failure is a reject; the returned sentinel only
// records the reason for diagnostics.
func (s *jwtService) Validate(tokenString string) (int64, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (any, error) {
		// Ensure the signing method is what we expect.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return []byte(s.secret), nil
	})
	if err != nil {
		switch {
		case pkgerrors.Is(err, jwt.ErrTokenExpired):
			return 0, errors.ErrTokenExpired.WrapMessage("token is past its expiry")
		case pkgerrors.Is(err, jwt.ErrTokenSignatureInvalid):
			return 0, errors.ErrTokenInvalidSignature.WrapMessage("token signature verification failed")
		default:
			return 0, errors.ErrTokenMalformed.WrapMessage("failed to parse token")
		}
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return 0, errors.ErrTokenMalformed.WrapMessage("unexpected claims type")
	}

	subject, ok := claims["sub"].(string)
	if !ok {
		return 0, errors.ErrTokenMalformed.WrapMessage("subject claim is missing")
	}

	userID, err := strconv.ParseInt(subject, 10, 64)
	if err != nil {
		return 0, errors.ErrTokenMalformed.WrapMessage("subject claim is not an integer")
	}

	return userID, nil
}
