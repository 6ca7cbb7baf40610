package enums

import "fmt"

// MemberRole identifies what a signed-in operator is allowed to do.
type MemberRole string

const (
	MemberRoleAdmin MemberRole = "admin"
	MemberRoleStaff MemberRole = "staff"
)

var validMemberRoles = []MemberRole{
	MemberRoleAdmin,
	MemberRoleStaff,
}

// String implements fmt.Stringer.
func (r MemberRole) String() string {
	return string(r)
}

// IsValid reports whether the value is a known MemberRole.
func (r MemberRole) IsValid() bool {
	for _, candidate := range validMemberRoles {
		if candidate == r {
			return true
		}
	}
	return false
}

// ParseMemberRole converts raw input into a MemberRole.
func ParseMemberRole(value string) (MemberRole, error) {
	for _, candidate := range validMemberRoles {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid member role %q", value)
}
