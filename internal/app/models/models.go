package models

// RoleType defines the user role type
type RoleType string

const (
	RoleAdmin      RoleType = "ADMIN"
	RoleApprenant  RoleType = "APPRENANT"
	RoleInstructor RoleType = "INSTRUCTOR"
)

// Valid reports whether r is one of the known roles.
func (r RoleType) Valid() bool {
	switch r {
	case RoleAdmin, RoleApprenant, RoleInstructor:
		return true
	}
	return false
}
