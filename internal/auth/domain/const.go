// Package domain defines authentication domain models: users, roles, and
// revoked access tokens.
package domain

// Role is the closed set of access levels a user can hold.
type Role string

const (
	// RoleAdmin grants full access, including employee mutation and deletion.
	RoleAdmin Role = "admin"

	// RoleStaff is the default role, limited to read and create operations.
	RoleStaff Role = "staff"
)

// IsValid reports whether the role belongs to the closed set.
func (r Role) IsValid() bool {
	switch r {
	case RoleAdmin, RoleStaff:
		return true
	}
	return false
}

// Satisfies reports whether the role meets the required role.
// Admin satisfies every requirement; other roles only satisfy themselves.
func (r Role) Satisfies(required Role) bool {
	if r == RoleAdmin {
		return true
	}
	return r == required
}
