// Package impl contains the application-specific business rules implementations.
package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "bloodlink/internal/delivery/context"
	domainerrors "bloodlink/internal/domain/errors"
	"bloodlink/internal/domain/service"
	"bloodlink/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// AuthServiceParams holds dependencies for AuthService, injected by Fx.
type AuthServiceParams struct {
	fx.In

	TokenService service.TokenService
	// Verifier is nil unless identity proofs are configured.
	Verifier service.IdentityVerifier `optional:"true"`
	Logger   *slog.Logger
}

// authService implements the AuthUsecase interface.
type authService struct {
	tokenService service.TokenService
	verifier     service.IdentityVerifier
	logger       *slog.Logger
}

// NewAuthService is the constructor for authService.
func NewAuthService(params AuthServiceParams) usecase.AuthUsecase {
	return &authService{
		tokenService: params.TokenService,
		verifier:     params.Verifier,
		logger:       params.Logger,
	}
}

func (srv *authService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// IssueToken signs the caller's payload. The payload is trusted unless an
// identity verifier is configured, in which case the proof must match its email.
func (srv *authService) IssueToken(ctx context.Context, input usecase.IssueTokenInput) (*usecase.IssueTokenOutput, error) {
	email, _ := input.Payload[service.ClaimEmail].(string)
	if strings.TrimSpace(email) == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("payload must carry an email")
	}

	if srv.verifier != nil {
		identity, err := srv.verifier.Verify(ctx, input.IDToken)
		if err != nil {
			srv.log(ctx).Warn("Identity proof rejected", slog.String("email", email), slog.Any("error", err))

			return nil, domainerrors.ErrIdentityProofInvalid
		}
		if !strings.EqualFold(identity.Email, strings.TrimSpace(email)) {
			return nil, domainerrors.ErrIdentityProofInvalid.WithDetails("identity proof was issued for another email")
		}
	}

	issued, err := srv.tokenService.Issue(input.Payload)
	if err != nil {
		if errors.Is(err, service.ErrTokenMissingEmail) {
			return nil, domainerrors.ErrValidationFailed.WithDetails("payload must carry an email")
		}

		return nil, errors.Wrap(err, "failed to issue token")
	}

	srv.log(ctx).Debug("Issued access token", slog.String("email", email))

	return &usecase.IssueTokenOutput{
		Token:     issued.Token,
		ExpiresAt: issued.ExpiresAt,
	}, nil
}
