package usecases

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/linkdesk-io/linkdesk/internal/domain/invoice"
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
	u, err := user.NewUser(name, email, "hash", role, orgID)
	require.NoError(t, err)
	require.NoError(t, u.SetID(id))
	return u
}

func testInvoice(t *testing.T, id, userID, orgID uint, amountCents int64, due time.Time) *invoice.Invoice {
	t.Helper()
	inv, err := invoice.NewInvoice(userID, orgID, "INV-2026-0042", amountCents, due)
	require.NoError(t, err)
	require.NoError(t, inv.SetID(id))
	return inv
}
