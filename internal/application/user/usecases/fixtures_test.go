package usecases

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/linkdesk-io/linkdesk/internal/domain/user"
	"github.com/linkdesk-io/linkdesk/internal/shared/authorization"
)

func testActor(userID uint, role authorization.Role, orgID uint) authorization.Actor {
	return authorization.Actor{
		UserID:         userID,
		Role:           role,
		OrganizationID: orgID,
	}
}

func testUser(t *testing.T, id uint, name, email string, role authorization.Role, orgID uint) *user.User {
	t.Helper()
	u, err := user.NewUser(name, email, "hashed:secret", role, orgID)
	require.NoError(t, err)
	require.NoError(t, u.SetID(id))
	return u
}

func testAssignment(t *testing.T, id, managerID, userID uint) *user.Assignment {
	t.Helper()
	a, err := user.NewAssignment(managerID, userID)
	require.NoError(t, err)
	require.NoError(t, a.SetID(id))
	return a
}
