// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"strings"
	"time"

	"bloodlink/config"
	"bloodlink/internal/domain/service"
	"bloodlink/internal/errors"

	"github.com/golang-jwt/jwt/v5"
)

// reservedClaims are set by the issuer and never copied from a caller payload.
var reservedClaims = []string{"exp", "iat", "nbf"}

// jwtService is a concrete implementation of the TokenService interface using HS256 JWTs.
type jwtService struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

// NewJWTService is the constructor for jwtService. A missing secret is a startup error.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	return newJWTService(cfg, time.Now)
}

func newJWTService(cfg *config.Config, now func() time.Time) (*jwtService, error) {
	if strings.TrimSpace(cfg.SecretKey.Access) == "" {
		return nil, errors.New("token signing secret must be provided")
	}

	ttl := cfg.Auth.TokenTTL
	if ttl <= 0 {
		ttl = time.Hour
	}

	return &jwtService{
		secret: []byte(cfg.SecretKey.Access),
		ttl:    ttl,
		now:    now,
	}, nil
}

// Issue signs payload with iat and exp = iat + ttl.
func (s *jwtService) Issue(payload map[string]any) (*service.IssuedToken, error) {
	email, _ := payload[service.ClaimEmail].(string)
	if strings.TrimSpace(email) == "" {
		return nil, service.ErrTokenMissingEmail
	}

	claims := make(jwt.MapClaims, len(payload)+2)
	for k, v := range payload {
		claims[k] = v
	}
	for _, k := range reservedClaims {
		delete(claims, k)
	}

	issuedAt := s.now()
	expiresAt := issuedAt.Add(s.ttl)
	claims["iat"] = issuedAt.Unix()
	claims["exp"] = expiresAt.Unix()

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return nil, errors.Wrap(err, "failed to sign token")
	}

	// exp is encoded in whole seconds.
	return &service.IssuedToken{Token: signed, ExpiresAt: time.Unix(expiresAt.Unix(), 0)}, nil
}

// Validate checks the signature, signing method and expiry of tokenString.
func (s *jwtService) Validate(tokenString string) (*service.Claims, error) {
	mapClaims := jwt.MapClaims{}
	_, err := jwt.ParseWithClaims(tokenString, mapClaims, func(token *jwt.Token) (any, error) {
		// Ensure the signing method is what we expect.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return s.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		return nil, errors.Join(service.ErrTokenInvalid, err)
	}

	email, _ := mapClaims[service.ClaimEmail].(string)
	if strings.TrimSpace(email) == "" {
		return nil, service.ErrTokenMissingEmail
	}

	claims := &service.Claims{
		Email:   email,
		Payload: make(map[string]any, len(mapClaims)),
	}
	for k, v := range mapClaims {
		claims.Payload[k] = v
	}
	for _, k := range reservedClaims {
		delete(claims.Payload, k)
	}

	if exp, err := mapClaims.GetExpirationTime(); err == nil {
		claims.ExpiresAt = exp
	}
	if iat, err := mapClaims.GetIssuedAt(); err == nil {
		claims.IssuedAt = iat
	}

	return claims, nil
}
