// Package entity contains the core business objects of the project.
package entity

// Role represents the type of role an account can have in the system.
type Role string

const (
	// RolePanchayatOfficer indicates a panchayat-level officer account.
	RolePanchayatOfficer Role = "PANCHAYAT_OFFICER"
	// RoleDistrictAdmin indicates a district administrator account.
	RoleDistrictAdmin Role = "DISTRICT_ADMIN"
	// RoleRuralUser indicates a regular rural citizen account.
	RoleRuralUser Role = "RURAL_USER"
)

// String returns the string representation of the Role.
func (r Role) String() string {
	return string(r)
}

// IsValid checks if the Role is a valid value.
func (r Role) IsValid() bool {
	switch r {
	case RolePanchayatOfficer, RoleDistrictAdmin, RoleRuralUser:
		return true
	default:
		return false
	}
}
