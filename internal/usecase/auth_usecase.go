package usecase

import (
	"context"
	"time"
)

// IssueTokenInput is the caller-supplied identity payload of POST /jwt.
type IssueTokenInput struct {
	// Payload is signed as-is; it must carry a non-empty "email".
	Payload map[string]any
	// IDToken is the identity-provider proof, required only when a verifier is configured.
	IDToken string
}

// IssueTokenOutput holds the signed bearer credential.
type IssueTokenOutput struct {
	Token     string
	ExpiresAt time.Time
}

// AuthUsecase mints bearer credentials.
type AuthUsecase interface {
	IssueToken(ctx context.Context, input IssueTokenInput) (*IssueTokenOutput, error)
}
