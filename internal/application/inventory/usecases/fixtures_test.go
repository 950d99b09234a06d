package usecases

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/linkdesk-io/linkdesk/internal/domain/inventory"
	"github.com/linkdesk-io/linkdesk/internal/domain/organization"
	"github.com/linkdesk-io/linkdesk/internal/shared/authorization"
)

func testActor(userID uint, role authorization.Role, orgID uint) authorization.Actor {
	return authorization.Actor{
		UserID:         userID,
		Role:           role,
		OrganizationID: orgID,
	}
}

func testDomain(t *testing.T, id uint, name string, gpCents, neCents int64, global bool, orgID *uint) *inventory.Domain {
	t.Helper()
	d, err := inventory.NewDomain(name, gpCents, neCents, global, orgID)
	require.NoError(t, err)
	require.NoError(t, d.SetID(id))
	return d
}

func testOrganization(t *testing.T, id uint, name string, tier organization.PricingTier) *organization.Organization {
	t.Helper()
	org, err := organization.NewOrganization(name, "")
	require.NoError(t, err)
	require.NoError(t, org.SetID(id))
	require.NoError(t, org.ChangeTier(tier))
	return org
}
