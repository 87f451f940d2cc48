package access

import (
	"bloodlink/internal/domain/entity"
	domainerrors "bloodlink/internal/domain/errors"
)

// Caller is the authenticated identity acting on a resource.
type Caller struct {
	Email string
	// Role is the stored role; empty when the identity was not loaded.
	Role entity.Role
}

// IsAdmin reports whether the caller's stored role is admin.
func (c Caller) IsAdmin() bool {
	return c.Role == entity.RoleAdmin
}

// DonationAction is a mutation on an existing donation request.
type DonationAction uint8

const (
	// ActionDeleteRequest removes a donation request.
	ActionDeleteRequest DonationAction = iota
	// ActionSetStatus changes only the status of a donation request.
	ActionSetStatus
)

// OwnershipPolicy decides per-resource access on donation requests. When Strict
// is false any authenticated caller passes; the coarse route rule is all that applies.
type OwnershipPolicy struct {
	Strict bool
}

// Check returns nil when caller may perform action on req.
// Strict mode: delete needs owner or admin; status needs owner, assigned donor or admin.
func (p OwnershipPolicy) Check(caller Caller, req *entity.DonationRequest, action DonationAction) error {
	if !p.Strict {
		return nil
	}

	if caller.IsAdmin() || req.IsOwnedBy(caller.Email) {
		return nil
	}

	if action == ActionSetStatus && req.IsAssignedTo(caller.Email) {
		return nil
	}

	return domainerrors.ErrForbidden.WithDetails("donation request belongs to another identity")
}
