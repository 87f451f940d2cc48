package impl

import (
	"context"
	"testing"
	"time"

	domainerrors "bloodlink/internal/domain/errors"
	"bloodlink/internal/domain/service"
	mockService "bloodlink/internal/mocks/service"
	"bloodlink/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type authServiceFixtures struct {
	tokenService *mockService.MockTokenService
	verifier     *mockService.MockIdentityVerifier
}

func createTestAuthService(t *testing.T, withVerifier bool) (usecase.AuthUsecase, authServiceFixtures) {
	fx := authServiceFixtures{tokenService: mockService.NewMockTokenService(t)}

	params := AuthServiceParams{TokenService: fx.tokenService, Logger: newDiscardLogger()}
	if withVerifier {
		fx.verifier = mockService.NewMockIdentityVerifier(t)
		params.Verifier = fx.verifier
	}

	return NewAuthService(params), fx
}

func TestAuthService_IssueToken(t *testing.T) {
	srv, fx := createTestAuthService(t, false)
	payload := map[string]any{"email": "a@x.com", "name": "A"}

	expiresAt := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	fx.tokenService.EXPECT().Issue(payload).Return(&service.IssuedToken{Token: "signed.jwt.token", ExpiresAt: expiresAt}, nil)

	out, err := srv.IssueToken(context.Background(), usecase.IssueTokenInput{Payload: payload})
	require.NoError(t, err)

	assert.Equal(t, "signed.jwt.token", out.Token)
	assert.Equal(t, expiresAt, out.ExpiresAt)
}

func TestAuthService_IssueToken_RequiresEmail(t *testing.T) {
	srv, _ := createTestAuthService(t, false)

	for _, payload := range []map[string]any{{}, {"email": ""}, {"email": 42}} {
		_, err := srv.IssueToken(context.Background(), usecase.IssueTokenInput{Payload: payload})
		assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	}
}

func TestAuthService_IssueToken_WithIdentityProof(t *testing.T) {
	srv, fx := createTestAuthService(t, true)
	ctx := context.Background()
	payload := map[string]any{"email": "A@x.com"}

	fx.verifier.EXPECT().Verify(ctx, "proof").Return(&service.VerifiedIdentity{UID: "u1", Email: "a@x.com"}, nil)
	fx.tokenService.EXPECT().Issue(payload).Return(&service.IssuedToken{Token: "signed", ExpiresAt: time.Now().Add(time.Hour)}, nil)

	out, err := srv.IssueToken(ctx, usecase.IssueTokenInput{Payload: payload, IDToken: "proof"})
	require.NoError(t, err)
	assert.Equal(t, "signed", out.Token)
}

func TestAuthService_IssueToken_ProofForAnotherEmail(t *testing.T) {
	srv, fx := createTestAuthService(t, true)
	ctx := context.Background()

	fx.verifier.EXPECT().Verify(ctx, "proof").Return(&service.VerifiedIdentity{Email: "b@x.com"}, nil)

	_, err := srv.IssueToken(ctx, usecase.IssueTokenInput{Payload: map[string]any{"email": "a@x.com"}, IDToken: "proof"})
	assert.ErrorIs(t, err, domainerrors.ErrIdentityProofInvalid)
}

func TestAuthService_IssueToken_InvalidProof(t *testing.T) {
	srv, fx := createTestAuthService(t, true)
	ctx := context.Background()

	fx.verifier.EXPECT().Verify(ctx, "").Return(nil, errors.New("identity proof is empty"))

	_, err := srv.IssueToken(ctx, usecase.IssueTokenInput{Payload: map[string]any{"email": "a@x.com"}})
	assert.ErrorIs(t, err, domainerrors.ErrIdentityProofInvalid)
}
