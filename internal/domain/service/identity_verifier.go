package service

import "context"

// VerifiedIdentity is the identity attested by an external identity provider.
type VerifiedIdentity struct {
	UID           string
	Email         string
	EmailVerified bool
}

// IdentityVerifier checks an identity proof issued by the client-side auth provider.
type IdentityVerifier interface {
	// Verify validates idToken and returns the identity it was issued for.
	Verify(ctx context.Context, idToken string) (*VerifiedIdentity, error)
}
