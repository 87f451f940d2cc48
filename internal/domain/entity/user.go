package entity

import "time"

// User is an authenticated person. Email is the identity key.
type User struct {
	ID         string     `json:"_id"`
	Email      string     `json:"email"`
	Name       string     `json:"name"`
	Avatar     string     `json:"avatar,omitempty"`
	Role       Role       `json:"role"`
	Status     UserStatus `json:"status"`
	BloodGroup string     `json:"bloodGroup,omitempty"`
	District   string     `json:"district,omitempty"`
	Upazila    string     `json:"upazila,omitempty"`
	CreatedAt  time.Time  `json:"createdAt"`
	UpdatedAt  time.Time  `json:"updatedAt"`
}

// EffectiveRole returns the stored role, falling back to donor when absent.
func (u *User) EffectiveRole() Role {
	return u.Role.OrDefault()
}

// IsBlocked reports whether the account has been blocked by an admin.
func (u *User) IsBlocked() bool {
	return u.Status.OrDefault() == UserStatusBlocked
}

// ProfileUpdate holds the self-service fields of a user. Nil fields are left unchanged.
type ProfileUpdate struct {
	Name       *string
	Avatar     *string
	BloodGroup *string
	District   *string
	Upazila    *string
}
