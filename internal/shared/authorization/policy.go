package authorization

import "context"

// Actor is the authenticated identity a request acts as.
type Actor struct {
	UserID         uint
	Role           Role
	OrganizationID uint
}

// AssignmentSource resolves whether a manager holds an active assignment to
// a user. Backed by the user_assignments table.
type AssignmentSource interface {
	HasActiveAssignment(ctx context.Context, managerID, userID uint) (bool, error)
}

// ResourcePolicy is the single decision point for resource-level access.
// Every order/ticket/invoice/comment handler consults it instead of
// re-implementing the ownership rules per route.
type ResourcePolicy struct {
	assignments AssignmentSource
}

func NewResourcePolicy(assignments AssignmentSource) *ResourcePolicy {
	return &ResourcePolicy{assignments: assignments}
}

// CanAccessOwned grants access when the actor owns the resource, is an
// admin, or is a user_manager with an active assignment to the owner.
func (p *ResourcePolicy) CanAccessOwned(ctx context.Context, actor Actor, ownerID uint) (bool, error) {
	if Satisfies(actor.Role, RoleAdmin) {
		return true, nil
	}
	if actor.UserID == ownerID {
		return true, nil
	}
	if actor.Role == RoleUserManager {
		return p.assignments.HasActiveAssignment(ctx, actor.UserID, ownerID)
	}
	return false, nil
}

// CanDelete reports whether the actor may hard-delete orders or inventory
// domains. Deletion is admin-only regardless of ownership.
func (p *ResourcePolicy) CanDelete(actor Actor) bool {
	return Satisfies(actor.Role, RoleAdmin)
}

// CanManageInventory reports whether the actor may mutate the shared
// domain inventory. Admin satisfies inventory_manager through the role
// hierarchy.
func (p *ResourcePolicy) CanManageInventory(actor Actor) bool {
	return Satisfies(actor.Role, RoleInventoryManager)
}
