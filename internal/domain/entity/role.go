package entity

import "fmt"

// Role is the closed set of principal roles. Authorization and read-filter
// sites switch exhaustively over these values, so adding a role is a
// compile-visible change instead of a stray string comparison.
type Role string

const (
	RoleAdmin     Role = "admin"
	RoleDoctor    Role = "doctor"
	RoleTherapist Role = "therapist"
	RolePatient   Role = "patient"
)

// Role ID constants, matching the seeded roles table.
const (
	RoleIDAdmin     = 1
	RoleIDDoctor    = 2
	RoleIDTherapist = 3
	RoleIDPatient   = 4
)

// ParseRole maps an untrusted string (URL path segment, JWT claim) onto the
// closed Role set.
func ParseRole(s string) (Role, error) {
	switch Role(s) {
	case RoleAdmin, RoleDoctor, RoleTherapist, RolePatient:
		return Role(s), nil
	}
	return "", fmt.Errorf("unknown role %q", s)
}

// ID returns the roles table ID for a role.
func (r Role) ID() int {
	switch r {
	case RoleAdmin:
		return RoleIDAdmin
	case RoleDoctor:
		return RoleIDDoctor
	case RoleTherapist:
		return RoleIDTherapist
	case RolePatient:
		return RoleIDPatient
	}
	return 0
}

// RoleByID maps a roles table ID back onto the closed Role set.
func RoleByID(id int) (Role, bool) {
	switch id {
	case RoleIDAdmin:
		return RoleAdmin, true
	case RoleIDDoctor:
		return RoleDoctor, true
	case RoleIDTherapist:
		return RoleTherapist, true
	case RoleIDPatient:
		return RolePatient, true
	}
	return "", false
}
