package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/linkdesk-io/linkdesk/internal/domain/inventory"
	"github.com/linkdesk-io/linkdesk/internal/domain/organization"
	"github.com/linkdesk-io/linkdesk/internal/shared/authorization"
	"github.com/linkdesk-io/linkdesk/internal/shared/errors"
	"github.com/linkdesk-io/linkdesk/internal/shared/logger"
)

func TestListDomainsUseCase_CustomerScopedToVisibleInventory(t *testing.T) {
	var captured inventory.ListFilter
	domainRepo := &mockDomainRepository{
		ListFunc: func(ctx context.Context, filter inventory.ListFilter, offset, limit int) ([]*inventory.Domain, int64, error) {
			captured = filter
			return nil, 0, nil
		},
	}
	policy := authorization.NewResourcePolicy(&mockAssignmentSource{})
	uc := NewListDomainsUseCase(domainRepo, policy, logger.NewNop())

	_, err := uc.Execute(context.Background(), ListDomainsQuery{
		Actor:     testActor(5, authorization.RoleUser, 7),
		MinRating: 40,
	})
	require.NoError(t, err)

	assert.Equal(t, uint(7), captured.VisibleToOrg)
	assert.Equal(t, 40, captured.MinRating)
}

func TestListDomainsUseCase_StaffSeesEverything(t *testing.T) {
	var captured inventory.ListFilter
	domainRepo := &mockDomainRepository{
		ListFunc: func(ctx context.Context, filter inventory.ListFilter, offset, limit int) ([]*inventory.Domain, int64, error) {
			captured = filter
			return nil, 0, nil
		},
	}
	policy := authorization.NewResourcePolicy(&mockAssignmentSource{})
	uc := NewListDomainsUseCase(domainRepo, policy, logger.NewNop())

	_, err := uc.Execute(context.Background(), ListDomainsQuery{
		Actor: testActor(2, authorization.RoleInventoryManager, 1),
	})
	require.NoError(t, err)

	assert.Zero(t, captured.VisibleToOrg)
}

func TestGetDomainUseCase_ScopedDomainHiddenFromOtherOrganizations(t *testing.T) {
	ownerOrg := uint(7)
	scoped := testDomain(t, 3, "example.com", 1000, 1000, false, &ownerOrg)
	domainRepo := &mockDomainRepository{
		FindByIDFunc: func(ctx context.Context, id uint) (*inventory.Domain, error) {
			return scoped, nil
		},
	}
	policy := authorization.NewResourcePolicy(&mockAssignmentSource{})
	uc := NewGetDomainUseCase(domainRepo, policy, logger.NewNop())

	_, err := uc.Execute(context.Background(), GetDomainQuery{
		Actor:    testActor(9, authorization.RoleUser, 8),
		DomainID: 3,
	})
	require.Error(t, err)
	assert.True(t, errors.IsNotFoundError(err), "scoped domains read as missing, not forbidden")

	result, err := uc.Execute(context.Background(), GetDomainQuery{
		Actor:    testActor(5, authorization.RoleUser, 7),
		DomainID: 3,
	})
	require.NoError(t, err)
	assert.Equal(t, "example.com", result.Name)
}

func TestQuoteDomainUseCase_AppliesTierDiscount(t *testing.T) {
	d := testDomain(t, 3, "example.com", 20000, 12000, true, nil)
	org := testOrganization(t, 7, "Reeve Media", organization.TierEnterprise)

	domainRepo := &mockDomainRepository{
		FindByIDFunc: func(ctx context.Context, id uint) (*inventory.Domain, error) {
			return d, nil
		},
	}
	orgRepo := &mockOrganizationRepository{
		FindByIDFunc: func(ctx context.Context, id uint) (*organization.Organization, error) {
			assert.Equal(t, uint(7), id)
			return org, nil
		},
	}
	policy := authorization.NewResourcePolicy(&mockAssignmentSource{})
	uc := NewQuoteDomainUseCase(domainRepo, orgRepo, policy, logger.NewNop())

	result, err := uc.Execute(context.Background(), QuoteDomainQuery{
		Actor:     testActor(5, authorization.RoleUser, 7),
		DomainID:  3,
		OrderType: "guest_post",
	})
	require.NoError(t, err)

	assert.Equal(t, int64(20000), result.ListPriceCents)
	assert.Equal(t, int64(18000), result.FinalPriceCents)
	assert.Equal(t, "enterprise", result.PricingTier)
}

func TestQuoteDomainUseCase_UnknownOrderType(t *testing.T) {
	policy := authorization.NewResourcePolicy(&mockAssignmentSource{})
	uc := NewQuoteDomainUseCase(&mockDomainRepository{}, &mockOrganizationRepository{}, policy, logger.NewNop())

	_, err := uc.Execute(context.Background(), QuoteDomainQuery{
		Actor:     testActor(5, authorization.RoleUser, 7),
		DomainID:  3,
		OrderType: "sponsored_tweet",
	})
	require.Error(t, err)
	assert.True(t, errors.IsValidationError(err))
}
