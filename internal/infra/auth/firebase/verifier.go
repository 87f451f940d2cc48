// Package firebase verifies client identity proofs issued by Firebase Authentication.
package firebase

import (
	"context"
	"log/slog"
	"strings"

	"bloodlink/config"
	"bloodlink/internal/domain/service"
	"bloodlink/internal/errors"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/auth"
	"go.uber.org/fx"
	"google.golang.org/api/option"
)

// tokenVerifier is the subset of *auth.Client used here.
type tokenVerifier interface {
	VerifyIDToken(ctx context.Context, idToken string) (*auth.Token, error)
}

type identityVerifier struct {
	client tokenVerifier
}

// Params defines the dependencies of the verifier provider
type Params struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

// NewIdentityVerifier builds a Firebase-backed verifier. It returns nil when Firebase
// is not configured, which turns identity proof checks off.
func NewIdentityVerifier(params Params) (service.IdentityVerifier, error) {
	cfg := params.Config.Firebase
	if cfg == nil || cfg.ProjectID == "" {
		params.Logger.Info("Firebase not configured, token issue accepts unverified payloads")

		return nil, nil
	}

	var opts []option.ClientOption
	if cfg.CredentialsPath != "" {
		opts = append(opts, option.WithCredentialsFile(cfg.CredentialsPath))
	}

	ctx := context.Background()
	app, err := firebase.NewApp(ctx, &firebase.Config{ProjectID: cfg.ProjectID}, opts...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to initialize Firebase app")
	}

	client, err := app.Auth(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get Firebase auth client")
	}

	params.Logger.Info("Firebase identity verification enabled", slog.String("project_id", cfg.ProjectID))

	return &identityVerifier{client: client}, nil
}

// Verify validates idToken and extracts the email it was issued for.
func (v *identityVerifier) Verify(ctx context.Context, idToken string) (*service.VerifiedIdentity, error) {
	if strings.TrimSpace(idToken) == "" {
		return nil, errors.New("identity proof is empty")
	}

	token, err := v.client.VerifyIDToken(ctx, idToken)
	if err != nil {
		return nil, errors.Wrap(err, "failed to verify identity proof")
	}

	email, _ := token.Claims["email"].(string)
	verified, _ := token.Claims["email_verified"].(bool)

	return &service.VerifiedIdentity{
		UID:           token.UID,
		Email:         email,
		EmailVerified: verified,
	}, nil
}
