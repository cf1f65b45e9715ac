package domain

import "slices"

// Principal is the authenticated caller, derived once per request from a
// validated access token. Roles is never mutated after construction.
type Principal struct {
	UserID   string
	UserName string
	Roles    []string
}

// NewPrincipal copies roles so the caller cannot alias the slice.
func NewPrincipal(userID, userName string, roles []string) *Principal {
	return &Principal{UserID: userID, UserName: userName, Roles: slices.Clone(roles)}
}

// HasAnyRole reports whether the principal's roles intersect required.
func (p *Principal) HasAnyRole(required ...string) bool {
	if p == nil {
		return false
	}
	for _, r := range required {
		if slices.Contains(p.Roles, r) {
			return true
		}
	}
	return false
}

// CanModify implements the ownership policy: admins may change anything,
// everyone else only what they own.
func (p *Principal) CanModify(ownerID string) bool {
	if p == nil {
		return false
	}
	if p.HasAnyRole(RoleAdmin) {
		return true
	}
	return ownerID != "" && p.UserID == ownerID
}
