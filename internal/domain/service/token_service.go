// Package service defines interfaces for core, stateless domain logic and
// for external systems the use cases depend on.
package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"
)

// ClaimEmail is the claim every gate keys on.
const ClaimEmail = "email"

// Token errors.
var (
	// ErrTokenInvalid covers malformed, tampered, expired or wrongly signed tokens.
	ErrTokenInvalid = errors.New("invalid token")
	// ErrTokenMissingEmail is returned when a payload or token has no email.
	ErrTokenMissingEmail = errors.New("token payload has no email")
)

// Claims is the decoded payload of an access token. Payload holds every
// non-registered claim the issuer was given, including the email.
type Claims struct {
	Email   string
	Payload map[string]any
	jwt.RegisteredClaims
}

// IssuedToken is a signed access token and the instant it stops being accepted.
type IssuedToken struct {
	Token     string
	ExpiresAt time.Time
}

// TokenService defines the interface for issuing and validating access tokens.
type TokenService interface {
	// Issue signs payload into an access token. The payload must carry a non-empty email.
	Issue(payload map[string]any) (*IssuedToken, error)

	// Validate checks the signature and expiry of a token string and returns its claims.
	Validate(tokenString string) (*Claims, error)
}
