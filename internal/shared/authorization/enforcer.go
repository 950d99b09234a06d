package authorization

import (
	"fmt"

	"github.com/casbin/casbin/v2"
	"github.com/casbin/casbin/v2/model"
)

// The role model is static: admin inherits every other role, so a single
// grouping-based matcher is enough. Policies are defined in code rather
// than persisted because the hierarchy never changes at runtime.
const roleModel = `
[request_definition]
r = sub, obj

[policy_definition]
p = sub, obj

[role_definition]
g = _, _

[policy_effect]
e = some(where (p.eft == allow))

[matchers]
m = g(r.sub, p.sub) && r.obj == p.obj
`

// RoleChecker answers "does role A satisfy required role B" with the admin
// superset rule applied through a casbin enforcer.
type RoleChecker struct {
	enforcer *casbin.Enforcer
}

func NewRoleChecker() (*RoleChecker, error) {
	m, err := model.NewModelFromString(roleModel)
	if err != nil {
		return nil, fmt.Errorf("failed to build authorization model: %w", err)
	}

	enforcer, err := casbin.NewEnforcer(m)
	if err != nil {
		return nil, fmt.Errorf("failed to build authorization enforcer: %w", err)
	}

	for _, role := range []Role{RoleAdmin, RoleUserManager, RoleInventoryManager, RoleUser} {
		if _, err := enforcer.AddPolicy(role.String(), "role:"+role.String()); err != nil {
			return nil, fmt.Errorf("failed to add role policy: %w", err)
		}
	}

	// Admin is an implicit superset of every role.
	for _, inherited := range []Role{RoleUserManager, RoleInventoryManager, RoleUser} {
		if _, err := enforcer.AddGroupingPolicy(RoleAdmin.String(), inherited.String()); err != nil {
			return nil, fmt.Errorf("failed to add role grouping: %w", err)
		}
	}

	return &RoleChecker{enforcer: enforcer}, nil
}

// Satisfies reports whether actual fulfills the required role.
func (rc *RoleChecker) Satisfies(actual, required Role) bool {
	ok, err := rc.enforcer.Enforce(actual.String(), "role:"+required.String())
	if err != nil {
		return false
	}
	return ok
}

// The model and policies are static, so construction can only fail on a
// programming error.
var defaultChecker = func() *RoleChecker {
	rc, err := NewRoleChecker()
	if err != nil {
		panic("authorization: " + err.Error())
	}
	return rc
}()

// Satisfies reports whether actual fulfills required under the default
// role hierarchy.
func Satisfies(actual, required Role) bool {
	return defaultChecker.Satisfies(actual, required)
}
