package usecases

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/linkdesk-io/linkdesk/internal/domain/order"
	"github.com/linkdesk-io/linkdesk/internal/domain/user"
	"github.com/linkdesk-io/linkdesk/internal/shared/authorization"
)

func testActor(userID uint, role authorization.Role, orgID uint) authorization.Actor {
	return authorization.Actor{UserID: userID, Role: role, OrganizationID: orgID}
}

func testUser(t *testing.T, id uint, name, email string, role authorization.Role, orgID uint) *user.User {
	t.Helper()
	u, err := user.NewUser(name, email, "hash", role, orgID)
	require.NoError(t, err)
	require.NoError(t, u.SetID(id))
	return u
}

func testOrder(t *testing.T, id, userID, orgID uint, orderType order.OrderType) *order.Order {
	t.Helper()
	o, err := order.NewOrder(userID, orgID, nil, orderType, "anchor", "https://example.com/page", 10000)
	require.NoError(t, err)
	require.NoError(t, o.SetID(id))
	return o
}
