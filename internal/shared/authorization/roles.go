// Package authorization centralizes every access decision: role checks,
// resource-relationship policies, and the typed field projections applied
// to self-service updates.
package authorization

type Role string

const (
	RoleAdmin            Role = "admin"
	RoleUserManager      Role = "user_manager"
	RoleInventoryManager Role = "inventory_manager"
	RoleUser             Role = "user"
)

func (r Role) String() string {
	return string(r)
}

func (r Role) IsAdmin() bool {
	return r == RoleAdmin
}

// IsManager reports whether the role carries delegated management rights.
func (r Role) IsManager() bool {
	return r == RoleUserManager || r == RoleInventoryManager
}

func (r Role) IsValid() bool {
	switch r {
	case RoleAdmin, RoleUserManager, RoleInventoryManager, RoleUser:
		return true
	}
	return false
}

// ParseRole returns the role for s, defaulting to the regular user role
// when s is not a known role.
func ParseRole(s string) Role {
	role := Role(s)
	if role.IsValid() {
		return role
	}
	return RoleUser
}
