package models

// Role selects which profile table backs a user.
type Role string

const (
	RoleCouple     Role = "couple"
	RoleIndividual Role = "individual"
	RoleVendor     Role = "vendor"
)

// ParseRole reports whether s names one of the supported roles.
func ParseRole(s string) (Role, bool) {
	switch r := Role(s); r {
	case RoleCouple, RoleIndividual, RoleVendor:
		return r, true
	}
	return "", false
}

// IsConsumer is true for the roles that book vendors.
func (r Role) IsConsumer() bool {
	return r == RoleCouple || r == RoleIndividual
}
