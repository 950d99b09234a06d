package user

import (
	"fmt"
	"strings"
	"time"

	"github.com/linkdesk-io/linkdesk/internal/shared/authorization"
)

// User is an account in the back office. Role and organization changes go
// through dedicated methods so the projection layer can gate them.
type User struct {
	id             uint
	name           string
	email          string
	passwordHash   string
	companyName    string
	role           authorization.Role
	organizationID uint
	active         bool
	lastLoginAt    *time.Time
	createdAt      time.Time
	updatedAt      time.Time
}

func NewUser(name, email, passwordHash string, role authorization.Role, organizationID uint) (*User, error) {
	if name == "" {
		return nil, fmt.Errorf("name is required")
	}
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || !strings.Contains(email, "@") {
		return nil, fmt.Errorf("invalid email address")
	}
	if passwordHash == "" {
		return nil, fmt.Errorf("password hash is required")
	}
	if !role.IsValid() {
		return nil, fmt.Errorf("invalid role: %s", role)
	}

	now := time.Now()
	return &User{
		name:           name,
		email:          email,
		passwordHash:   passwordHash,
		role:           role,
		organizationID: organizationID,
		active:         true,
		createdAt:      now,
		updatedAt:      now,
	}, nil
}

func ReconstructUser(
	id uint,
	name, email, passwordHash, companyName string,
	role authorization.Role,
	organizationID uint,
	active bool,
	lastLoginAt *time.Time,
	createdAt, updatedAt time.Time,
) (*User, error) {
	if id == 0 {
		return nil, fmt.Errorf("user ID cannot be zero")
	}
	return &User{
		id:             id,
		name:           name,
		email:          email,
		passwordHash:   passwordHash,
		companyName:    companyName,
		role:           role,
		organizationID: organizationID,
		active:         active,
		lastLoginAt:    lastLoginAt,
		createdAt:      createdAt,
		updatedAt:      updatedAt,
	}, nil
}

func (u *User) ID() uint                 { return u.id }
func (u *User) Name() string             { return u.name }
func (u *User) Email() string            { return u.email }
func (u *User) PasswordHash() string     { return u.passwordHash }
func (u *User) CompanyName() string      { return u.companyName }
func (u *User) Role() authorization.Role { return u.role }
func (u *User) OrganizationID() uint     { return u.organizationID }
func (u *User) IsActive() bool           { return u.active }
func (u *User) LastLoginAt() *time.Time  { return u.lastLoginAt }
func (u *User) CreatedAt() time.Time     { return u.createdAt }
func (u *User) UpdatedAt() time.Time     { return u.updatedAt }

func (u *User) SetID(id uint) error {
	if u.id != 0 {
		return fmt.Errorf("user ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("user ID cannot be zero")
	}
	u.id = id
	return nil
}

// Actor converts the user into an authorization subject.
func (u *User) Actor() authorization.Actor {
	return authorization.Actor{
		UserID:         u.id,
		Role:           u.role,
		OrganizationID: u.organizationID,
	}
}

// UpdateProfile applies self-serviceable profile fields. Nil pointers leave
// the current value untouched.
func (u *User) UpdateProfile(name, email, companyName *string) error {
	if name != nil {
		if *name == "" {
			return fmt.Errorf("name cannot be empty")
		}
		u.name = *name
	}
	if email != nil {
		normalized := strings.ToLower(strings.TrimSpace(*email))
		if normalized == "" || !strings.Contains(normalized, "@") {
			return fmt.Errorf("invalid email address")
		}
		u.email = normalized
	}
	if companyName != nil {
		u.companyName = *companyName
	}
	u.updatedAt = time.Now()
	return nil
}

func (u *User) ChangeRole(role authorization.Role) error {
	if !role.IsValid() {
		return fmt.Errorf("invalid role: %s", role)
	}
	u.role = role
	u.updatedAt = time.Now()
	return nil
}

func (u *User) MoveToOrganization(organizationID uint) {
	u.organizationID = organizationID
	u.updatedAt = time.Now()
}

func (u *User) Activate() {
	u.active = true
	u.updatedAt = time.Now()
}

func (u *User) Deactivate() {
	u.active = false
	u.updatedAt = time.Now()
}

func (u *User) ChangePasswordHash(hash string) error {
	if hash == "" {
		return fmt.Errorf("password hash cannot be empty")
	}
	u.passwordHash = hash
	u.updatedAt = time.Now()
	return nil
}

func (u *User) RecordLogin() {
	now := time.Now()
	u.lastLoginAt = &now
	u.updatedAt = now
}
