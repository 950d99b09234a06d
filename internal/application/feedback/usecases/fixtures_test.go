package usecases

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/linkdesk-io/linkdesk/internal/domain/feedback"
	"github.com/linkdesk-io/linkdesk/internal/domain/user"
	"github.com/linkdesk-io/linkdesk/internal/shared/authorization"
)

func testActor(userID uint, role authorization.Role) authorization.Actor {
	return authorization.Actor{UserID: userID, Role: role, OrganizationID: 1}
}

func testUser(t *testing.T, id uint, name, email string, role authorization.Role) *user.User {
	t.Helper()
	u, err := user.NewUser(name, email, "hash", role, 1)
	require.NoError(t, err)
	require.NoError(t, u.SetID(id))
	return u
}

func testCampaign(t *testing.T, id uint, name string, targetRole authorization.Role) *feedback.Campaign {
	t.Helper()
	c, err := feedback.NewCampaign(name, targetRole)
	require.NoError(t, err)
	require.NoError(t, c.SetID(id))
	return c
}

func testFeedback(t *testing.T, id, userID, campaignID uint) *feedback.Feedback {
	t.Helper()
	f, err := feedback.NewFeedback(userID, campaignID)
	require.NoError(t, err)
	require.NoError(t, f.SetID(id))
	return f
}
