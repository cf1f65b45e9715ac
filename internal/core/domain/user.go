package domain

import (
	"slices"
	"time"
)

const (
	RoleAdmin        = "Admin"
	RoleHospitalUser = "HospitalUser"
	RoleDoctor       = "Doctor"
)

// AllRoles is the fixed role enumeration; the seeded admin holds every entry.
var AllRoles = []string{RoleAdmin, RoleHospitalUser, RoleDoctor}

// User models a registered account in the credential store.
type User struct {
	ID           string    `json:"id"`
	UserName     string    `json:"userName"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Roles        []string  `json:"roles"`
	CreatedAt    time.Time `json:"createdAt"`
}

// HasRole reports whether the user currently holds role.
func (u *User) HasRole(role string) bool {
	return slices.Contains(u.Roles, role)
}

// IsKnownRole reports whether role belongs to the fixed enumeration.
func IsKnownRole(role string) bool {
	return slices.Contains(AllRoles, role)
}
