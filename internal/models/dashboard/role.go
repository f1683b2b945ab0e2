package models

import "strings"

// Role selects which dashboard a request belongs to. Filter preferences are kept per role.
type Role string

const (
	RoleDonor     Role = "donor"
	RoleRecipient Role = "recipient"
)

var Roles = []Role{RoleDonor, RoleRecipient}

// ParseRole accepts a role name in any case.
func ParseRole(s string) (Role, bool) {
	switch Role(strings.ToLower(strings.TrimSpace(s))) {
	case RoleDonor:
		return RoleDonor, true
	case RoleRecipient:
		return RoleRecipient, true
	}
	return "", false
}

func (r Role) String() string {
	return string(r)
}
