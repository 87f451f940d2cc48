package auth

import (
	"testing"
	"time"

	"bloodlink/config"
	"bloodlink/internal/domain/service"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test_access_secret_key_very_long_for_testing"

func newTestConfig(secret string) *config.Config {
	cfg := &config.Config{}
	cfg.SecretKey.Access = secret

	return cfg
}

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func TestNewJWTService_RequiresSecret(t *testing.T) {
	svc, err := NewJWTService(newTestConfig("  "))
	assert.Error(t, err)
	assert.Nil(t, svc)
}

func TestJWTService_IssueAndValidate(t *testing.T) {
	issuedAt := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	svc, err := newJWTService(newTestConfig(testSecret), fixedClock(issuedAt))
	require.NoError(t, err)

	issued, err := svc.Issue(map[string]any{"email": "a@x.com", "name": "A", "exp": 1})
	require.NoError(t, err)
	assert.NotEmpty(t, issued.Token)
	assert.True(t, issuedAt.Add(time.Hour).Equal(issued.ExpiresAt))

	claims, err := svc.Validate(issued.Token)
	require.NoError(t, err)
	assert.Equal(t, "a@x.com", claims.Email)
	assert.Equal(t, "A", claims.Payload["name"])
	assert.NotContains(t, claims.Payload, "exp")
	require.NotNil(t, claims.ExpiresAt)
	require.NotNil(t, claims.IssuedAt)
	assert.Equal(t, time.Hour, claims.ExpiresAt.Sub(claims.IssuedAt.Time))
	assert.Equal(t, issuedAt.Unix(), claims.IssuedAt.Unix())
	assert.True(t, claims.ExpiresAt.Equal(issued.ExpiresAt))
}

func TestJWTService_ExpiryFollowsConfiguredTTL(t *testing.T) {
	issuedAt := time.Date(2026, 1, 1, 12, 0, 0, 500, time.UTC)
	cfg := newTestConfig(testSecret)
	cfg.Auth.TokenTTL = 15 * time.Minute
	svc, err := newJWTService(cfg, fixedClock(issuedAt))
	require.NoError(t, err)

	issued, err := svc.Issue(map[string]any{"email": "a@x.com"})
	require.NoError(t, err)
	assert.Equal(t, issuedAt.Add(15*time.Minute).Unix(), issued.ExpiresAt.Unix())
	assert.Zero(t, issued.ExpiresAt.Nanosecond())
}

func TestJWTService_IssueRequiresEmail(t *testing.T) {
	svc, err := NewJWTService(newTestConfig(testSecret))
	require.NoError(t, err)

	for _, payload := range []map[string]any{
		{},
		{"email": ""},
		{"email": 42},
	} {
		_, err := svc.Issue(payload)
		assert.ErrorIs(t, err, service.ErrTokenMissingEmail)
	}
}

func TestJWTService_ValidateRejects(t *testing.T) {
	issuedAt := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	issuer, err := newJWTService(newTestConfig(testSecret), fixedClock(issuedAt))
	require.NoError(t, err)

	issued, err := issuer.Issue(map[string]any{"email": "a@x.com"})
	require.NoError(t, err)
	token := issued.Token

	t.Run("expired", func(t *testing.T) {
		later, err := newJWTService(newTestConfig(testSecret), fixedClock(issuedAt.Add(time.Hour+time.Second)))
		require.NoError(t, err)

		_, err = later.Validate(token)
		assert.ErrorIs(t, err, service.ErrTokenInvalid)
	})

	t.Run("wrong secret", func(t *testing.T) {
		other, err := newJWTService(newTestConfig("another_secret"), fixedClock(issuedAt))
		require.NoError(t, err)

		_, err = other.Validate(token)
		assert.ErrorIs(t, err, service.ErrTokenInvalid)
	})

	t.Run("tampered", func(t *testing.T) {
		_, err := issuer.Validate(token[:len(token)-2] + "xx")
		assert.ErrorIs(t, err, service.ErrTokenInvalid)
	})

	t.Run("not a jwt", func(t *testing.T) {
		_, err := issuer.Validate("clearly-not-a-jwt-token-format")
		assert.ErrorIs(t, err, service.ErrTokenInvalid)
	})

	t.Run("none algorithm", func(t *testing.T) {
		unsigned := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{
			"email": "a@x.com",
			"exp":   issuedAt.Add(time.Hour).Unix(),
		})
		raw, err := unsigned.SignedString(jwt.UnsafeAllowNoneSignatureType)
		require.NoError(t, err)

		_, err = issuer.Validate(raw)
		assert.ErrorIs(t, err, service.ErrTokenInvalid)
	})

	t.Run("missing email", func(t *testing.T) {
		raw, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
			"exp": issuedAt.Add(time.Hour).Unix(),
		}).SignedString([]byte(testSecret))
		require.NoError(t, err)

		_, err = issuer.Validate(raw)
		assert.ErrorIs(t, err, service.ErrTokenMissingEmail)
	})

	t.Run("missing exp", func(t *testing.T) {
		raw, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
			"email": "a@x.com",
		}).SignedString([]byte(testSecret))
		require.NoError(t, err)

		_, err = issuer.Validate(raw)
		assert.ErrorIs(t, err, service.ErrTokenInvalid)
	})
}
