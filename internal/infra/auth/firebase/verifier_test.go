package firebase

import (
	"context"
	"log/slog"
	"testing"

	"bloodlink/config"

	"firebase.google.com/go/v4/auth"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubVerifier struct {
	token *auth.Token
	err   error
}

func (s *stubVerifier) VerifyIDToken(_ context.Context, _ string) (*auth.Token, error) {
	return s.token, s.err
}

func TestNewIdentityVerifier_Disabled(t *testing.T) {
	v, err := NewIdentityVerifier(Params{Config: &config.Config{}, Logger: slog.New(slog.DiscardHandler)})
	require.NoError(t, err)
	assert.Nil(t, v)
}

func TestIdentityVerifier_Verify(t *testing.T) {
	v := &identityVerifier{client: &stubVerifier{token: &auth.Token{
		UID:    "uid-1",
		Claims: map[string]any{"email": "a@x.com", "email_verified": true},
	}}}

	identity, err := v.Verify(context.Background(), "proof")
	require.NoError(t, err)
	assert.Equal(t, "uid-1", identity.UID)
	assert.Equal(t, "a@x.com", identity.Email)
	assert.True(t, identity.EmailVerified)
}

func TestIdentityVerifier_VerifyErrors(t *testing.T) {
	v := &identityVerifier{client: &stubVerifier{err: errors.New("expired")}}

	_, err := v.Verify(context.Background(), "proof")
	assert.ErrorContains(t, err, "expired")

	_, err = v.Verify(context.Background(), " ")
	assert.Error(t, err)
}
