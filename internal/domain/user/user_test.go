package user

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/linkdesk-io/linkdesk/internal/shared/authorization"
)

func TestNewUser(t *testing.T) {
	u, err := NewUser("Ada", "Ada@Example.COM ", "hashed", authorization.RoleUser, 3)
	require.NoError(t, err)

	assert.Equal(t, "ada@example.com", u.Email())
	assert.True(t, u.IsActive())
	assert.Equal(t, uint(3), u.OrganizationID())
	assert.Nil(t, u.LastLoginAt())
}

func TestNewUser_Validation(t *testing.T) {
	tests := []struct {
		name     string
		userName string
		email    string
		hash     string
		role     authorization.Role
	}{
		{"missing name", "", "a@b.com", "h", authorization.RoleUser},
		{"bad email", "Ada", "not-an-email", "h", authorization.RoleUser},
		{"missing hash", "Ada", "a@b.com", "", authorization.RoleUser},
		{"bad role", "Ada", "a@b.com", "h", authorization.Role("owner")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewUser(tt.userName, tt.email, tt.hash, tt.role, 1)
			assert.Error(t, err)
		})
	}
}

func TestUser_UpdateProfile_Partial(t *testing.T) {
	u, err := NewUser("Ada", "ada@example.com", "h", authorization.RoleUser, 1)
	require.NoError(t, err)

	company := "Acme Ltd"
	require.NoError(t, u.UpdateProfile(nil, nil, &company))
	assert.Equal(t, "Acme Ltd", u.CompanyName())
	assert.Equal(t, "Ada", u.Name())

	bad := ""
	assert.Error(t, u.UpdateProfile(&bad, nil, nil))
}

func TestUser_RoleAndActivation(t *testing.T) {
	u, err := NewUser("Ada", "ada@example.com", "h", authorization.RoleUser, 1)
	require.NoError(t, err)

	require.NoError(t, u.ChangeRole(authorization.RoleUserManager))
	assert.Equal(t, authorization.RoleUserManager, u.Role())
	assert.Error(t, u.ChangeRole(authorization.Role("superuser")))

	u.Deactivate()
	assert.False(t, u.IsActive())
	u.Activate()
	assert.True(t, u.IsActive())
}

func TestUser_RecordLogin(t *testing.T) {
	u, err := NewUser("Ada", "ada@example.com", "h", authorization.RoleUser, 1)
	require.NoError(t, err)

	u.RecordLogin()
	require.NotNil(t, u.LastLoginAt())
}

func TestNewAssignment(t *testing.T) {
	a, err := NewAssignment(10, 2)
	require.NoError(t, err)
	assert.True(t, a.IsActive())

	_, err = NewAssignment(10, 10)
	assert.Error(t, err)

	_, err = NewAssignment(0, 2)
	assert.Error(t, err)
}

func TestAssignment_RevokeAndReactivate(t *testing.T) {
	a, err := NewAssignment(10, 2)
	require.NoError(t, err)

	a.Revoke()
	assert.False(t, a.IsActive())

	a.Reactivate()
	assert.True(t, a.IsActive())
}
