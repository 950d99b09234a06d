package authorization

import "time"

// Typed allow-list projections for self-service updates. Instead of
// deleting keys from an untyped payload, each update request is parsed
// into one of these structs and projected down to the fields the actor's
// role may set. Stripped field names are returned so handlers can log
// them; the request itself still succeeds.

// OrderUpdate is the full set of mutable order fields.
type OrderUpdate struct {
	AnchorText    *string
	TargetURL     *string
	ContentTitle  *string
	ContentBody   *string
	Notes         *string
	Status        *string
	AssignedTo    *uint
	DateCompleted *time.Time
}

// ProjectOrderUpdate strips status, assignment, and completion fields for
// every non-admin actor, including user_managers acting on managed users.
func ProjectOrderUpdate(actor Actor, in OrderUpdate) (OrderUpdate, []string) {
	if actor.Role.IsAdmin() {
		return in, nil
	}

	var stripped []string
	if in.Status != nil {
		in.Status = nil
		stripped = append(stripped, "status")
	}
	if in.AssignedTo != nil {
		in.AssignedTo = nil
		stripped = append(stripped, "assigned_to")
	}
	if in.DateCompleted != nil {
		in.DateCompleted = nil
		stripped = append(stripped, "date_completed")
	}
	return in, stripped
}

// UserUpdate is the full set of mutable user profile fields.
type UserUpdate struct {
	Name           *string
	Email          *string
	CompanyName    *string
	Role           *string
	OrganizationID *uint
	Active         *bool
}

// ProjectUserUpdate strips role, organization, and activation fields for
// non-admin actors.
func ProjectUserUpdate(actor Actor, in UserUpdate) (UserUpdate, []string) {
	if actor.Role.IsAdmin() {
		return in, nil
	}

	var stripped []string
	if in.Role != nil {
		in.Role = nil
		stripped = append(stripped, "role")
	}
	if in.OrganizationID != nil {
		in.OrganizationID = nil
		stripped = append(stripped, "organization_id")
	}
	if in.Active != nil {
		in.Active = nil
		stripped = append(stripped, "active")
	}
	return in, stripped
}
