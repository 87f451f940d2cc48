package access

import (
	"net/http"
	"testing"

	"bloodlink/internal/domain/entity"
	domainerrors "bloodlink/internal/domain/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func params(values map[string]string) func(string) string {
	return func(name string) string { return values[name] }
}

func userWith(role entity.Role, status entity.UserStatus) *entity.User {
	return &entity.User{Email: "a@x.com", Role: role, Status: status}
}

func TestEvaluate(t *testing.T) {
	tests := []struct {
		name    string
		rule    Rule
		in      Input
		wantErr error
	}{
		{
			name: "public allows anonymous",
			rule: Rule{Level: Public},
			in:   Input{},
		},
		{
			name:    "authenticated without email",
			rule:    Rule{Level: Authenticated},
			in:      Input{},
			wantErr: domainerrors.ErrUnauthenticated,
		},
		{
			name: "authenticated with email",
			rule: Rule{Level: Authenticated},
			in:   Input{Email: "a@x.com"},
		},
		{
			name: "self matches case-insensitively",
			rule: Rule{Level: Self, SelfParam: "email"},
			in:   Input{Email: "a@x.com", Param: params(map[string]string{"email": "A@X.com"})},
		},
		{
			name:    "self mismatch",
			rule:    Rule{Level: Self, SelfParam: "email"},
			in:      Input{Email: "a@x.com", Param: params(map[string]string{"email": "b@x.com"})},
			wantErr: domainerrors.ErrForbidden,
		},
		{
			name:    "volunteer gate rejects donor",
			rule:    Rule{Level: Volunteer},
			in:      Input{Email: "a@x.com", User: userWith(entity.RoleDonor, entity.UserStatusActive)},
			wantErr: domainerrors.ErrForbidden,
		},
		{
			name:    "volunteer gate rejects missing role",
			rule:    Rule{Level: Volunteer},
			in:      Input{Email: "a@x.com", User: userWith("", "")},
			wantErr: domainerrors.ErrForbidden,
		},
		{
			name: "volunteer gate accepts volunteer",
			rule: Rule{Level: Volunteer},
			in:   Input{Email: "a@x.com", User: userWith(entity.RoleVolunteer, entity.UserStatusActive)},
		},
		{
			name: "volunteer gate accepts admin",
			rule: Rule{Level: Volunteer},
			in:   Input{Email: "a@x.com", User: userWith(entity.RoleAdmin, entity.UserStatusActive)},
		},
		{
			name:    "volunteer gate rejects unknown identity",
			rule:    Rule{Level: Volunteer},
			in:      Input{Email: "ghost@x.com"},
			wantErr: domainerrors.ErrForbidden,
		},
		{
			name:    "admin gate rejects volunteer",
			rule:    Rule{Level: Admin},
			in:      Input{Email: "a@x.com", User: userWith(entity.RoleVolunteer, entity.UserStatusActive)},
			wantErr: domainerrors.ErrForbidden,
		},
		{
			name: "admin gate accepts admin",
			rule: Rule{Level: Admin},
			in:   Input{Email: "a@x.com", User: userWith(entity.RoleAdmin, entity.UserStatusActive)},
		},
		{
			name:    "blocked admin on mutating route",
			rule:    Rule{Level: Admin, Mutating: true},
			in:      Input{Email: "a@x.com", User: userWith(entity.RoleAdmin, entity.UserStatusBlocked)},
			wantErr: domainerrors.ErrAccountBlocked,
		},
		{
			name: "blocked user on read route",
			rule: Rule{Level: Authenticated},
			in:   Input{Email: "a@x.com", User: userWith(entity.RoleDonor, entity.UserStatusBlocked)},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Evaluate(tt.rule, tt.in)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestRule_NeedsIdentity(t *testing.T) {
	assert.False(t, Rule{Level: Public}.NeedsIdentity())
	assert.False(t, Rule{Level: Self, SelfParam: "email"}.NeedsIdentity())
	assert.True(t, Rule{Level: Self, SelfParam: "email", Mutating: true}.NeedsIdentity())
	assert.True(t, Rule{Level: Volunteer}.NeedsIdentity())
	assert.True(t, Rule{Level: Admin}.NeedsIdentity())
	assert.False(t, Rule{Level: Public}.NeedsToken())
	assert.True(t, Rule{Level: Authenticated}.NeedsToken())
}

func TestDefaultTable(t *testing.T) {
	table := DefaultTable()

	tests := []struct {
		method string
		path   string
		level  Level
	}{
		{http.MethodPost, "/jwt", Public},
		{http.MethodGet, "/users", Volunteer},
		{http.MethodPatch, "/users/admin/:id", Admin},
		{http.MethodPatch, "/users/volunteer/:id", Admin},
		{http.MethodGet, "/users/admin/:email", Self},
		{http.MethodPost, "/api/donation-requests", Volunteer},
		{http.MethodGet, "/api/donation-requests/all", Authenticated},
		{http.MethodGet, "/api/donation-requests/:id", Public},
		{http.MethodDelete, "/all-blogs/:id", Volunteer},
		{http.MethodGet, "/payments-history", Authenticated},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			rule, ok := table.Lookup(tt.method, tt.path)
			require.True(t, ok)
			assert.Equal(t, tt.level, rule.Level)
		})
	}

	_, ok := table.Lookup(http.MethodPut, "/users")
	assert.False(t, ok)
	assert.Len(t, table.Routes(), len(DefaultEntries()))
}

func TestDefaultTable_SelfRoutesNameParam(t *testing.T) {
	for _, e := range DefaultEntries() {
		if e.Rule.Level == Self {
			assert.NotEmpty(t, e.Rule.SelfParam, e.Route.String())
		}
	}
}

func TestOwnershipPolicy_Check(t *testing.T) {
	req := &entity.DonationRequest{
		RequesterEmail: "owner@x.com",
		DonorEmail:     "donor@x.com",
	}

	tests := []struct {
		name    string
		policy  OwnershipPolicy
		caller  Caller
		action  DonationAction
		allowed bool
	}{
		{"lenient allows stranger delete", OwnershipPolicy{}, Caller{Email: "s@x.com"}, ActionDeleteRequest, true},
		{"lenient allows stranger status", OwnershipPolicy{}, Caller{Email: "s@x.com"}, ActionSetStatus, true},
		{"strict allows owner delete", OwnershipPolicy{Strict: true}, Caller{Email: "OWNER@x.com"}, ActionDeleteRequest, true},
		{"strict allows admin delete", OwnershipPolicy{Strict: true}, Caller{Email: "s@x.com", Role: entity.RoleAdmin}, ActionDeleteRequest, true},
		{"strict rejects donor delete", OwnershipPolicy{Strict: true}, Caller{Email: "donor@x.com"}, ActionDeleteRequest, false},
		{"strict allows donor status", OwnershipPolicy{Strict: true}, Caller{Email: "donor@x.com"}, ActionSetStatus, true},
		{"strict rejects stranger status", OwnershipPolicy{Strict: true}, Caller{Email: "s@x.com", Role: entity.RoleVolunteer}, ActionSetStatus, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.policy.Check(tt.caller, req, tt.action)
			if tt.allowed {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, domainerrors.ErrForbidden)
		})
	}
}
