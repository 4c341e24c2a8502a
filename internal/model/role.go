package model

// Role is a user's authorization level. Roles are ordered:
// user < admin < super-admin.
type Role string

const (
	// RoleUser is the default role for signed-up users.
	RoleUser Role = "user"
	// RoleAdmin can manage users and resources.
	RoleAdmin Role = "admin"
	// RoleSuperAdmin can approve resources and create admins.
	RoleSuperAdmin Role = "super-admin"
)

var roleRank = map[Role]int{
	RoleUser:       1,
	RoleAdmin:      2,
	RoleSuperAdmin: 3,
}

// Valid reports whether r is a known role.
func (r Role) Valid() bool {
	_, ok := roleRank[r]
	return ok
}

// Meets reports whether r is at least the given minimum role.
// Unknown roles never meet any minimum.
func (r Role) Meets(min Role) bool {
	return roleRank[r] >= roleRank[min] && roleRank[r] > 0
}
