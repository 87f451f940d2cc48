// Package entity contains the core business objects of the project.
package entity

// Role represents the type of role a user can have in the system.
type Role string

const (
	// RoleDonor is the default role of every registered identity.
	RoleDonor Role = "donor"
	// RoleVolunteer may create donation requests and manage the blog.
	RoleVolunteer Role = "volunteer"
	// RoleAdmin may additionally manage identities.
	RoleAdmin Role = "admin"
)

// String returns the string representation of the Role.
func (r Role) String() string {
	return string(r)
}

// IsValid checks if the Role is a valid value.
func (r Role) IsValid() bool {
	switch r {
	case RoleDonor, RoleVolunteer, RoleAdmin:
		return true
	default:
		return false
	}
}

// OrDefault returns RoleDonor for an empty or unknown role.
func (r Role) OrDefault() Role {
	if !r.IsValid() {
		return RoleDonor
	}

	return r
}

// AtLeastVolunteer reports whether the role is volunteer or admin.
func (r Role) AtLeastVolunteer() bool {
	switch r.OrDefault() {
	case RoleVolunteer, RoleAdmin:
		return true
	default:
		return false
	}
}

// UserStatus is the account status of an identity.
type UserStatus string

const (
	// UserStatusActive is the default status.
	UserStatusActive UserStatus = "active"
	// UserStatusBlocked identities keep authenticating but may not mutate anything.
	UserStatusBlocked UserStatus = "blocked"
)

// IsValid checks if the UserStatus is a valid value.
func (s UserStatus) IsValid() bool {
	return s == UserStatusActive || s == UserStatusBlocked
}

// OrDefault returns UserStatusActive for an empty or unknown status.
func (s UserStatus) OrDefault() UserStatus {
	if !s.IsValid() {
		return UserStatusActive
	}

	return s
}
