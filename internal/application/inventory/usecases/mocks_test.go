package usecases

import (
	"context"

	"github.com/linkdesk-io/linkdesk/internal/domain/inventory"
	"github.com/linkdesk-io/linkdesk/internal/domain/organization"
	"github.com/linkdesk-io/linkdesk/internal/infrastructure/integrations"
	"github.com/linkdesk-io/linkdesk/internal/shared/errors"
)

type mockDomainRepository struct {
	CreateFunc           func(ctx context.Context, d *inventory.Domain) error
	FindByIDFunc         func(ctx context.Context, id uint) (*inventory.Domain, error)
	FindByNameFunc       func(ctx context.Context, name string) (*inventory.Domain, error)
	ListFunc             func(ctx context.Context, filter inventory.ListFilter, offset, limit int) ([]*inventory.Domain, int64, error)
	UpdateFunc           func(ctx context.Context, d *inventory.Domain) error
	DeleteFunc           func(ctx context.Context, id uint) error
	ListStaleRatingsFunc func(ctx context.Context, maxAgeHours int, limit int) ([]*inventory.Domain, error)
}

func (m *mockDomainRepository) Create(ctx context.Context, d *inventory.Domain) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, d)
	}
	return nil
}

func (m *mockDomainRepository) FindByID(ctx context.Context, id uint) (*inventory.Domain, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, errors.NewNotFoundError("domain not found")
}

func (m *mockDomainRepository) FindByName(ctx context.Context, name string) (*inventory.Domain, error) {
	if m.FindByNameFunc != nil {
		return m.FindByNameFunc(ctx, name)
	}
	return nil, errors.NewNotFoundError("domain not found")
}

func (m *mockDomainRepository) List(ctx context.Context, filter inventory.ListFilter, offset, limit int) ([]*inventory.Domain, int64, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, filter, offset, limit)
	}
	return nil, 0, nil
}

func (m *mockDomainRepository) Update(ctx context.Context, d *inventory.Domain) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, d)
	}
	return nil
}

func (m *mockDomainRepository) Delete(ctx context.Context, id uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

func (m *mockDomainRepository) ListStaleRatings(ctx context.Context, maxAgeHours int, limit int) ([]*inventory.Domain, error) {
	if m.ListStaleRatingsFunc != nil {
		return m.ListStaleRatingsFunc(ctx, maxAgeHours, limit)
	}
	return nil, nil
}

type mockOrganizationRepository struct {
	FindByIDFunc func(ctx context.Context, id uint) (*organization.Organization, error)
}

func (m *mockOrganizationRepository) Create(ctx context.Context, o *organization.Organization) error {
	return nil
}

func (m *mockOrganizationRepository) FindByID(ctx context.Context, id uint) (*organization.Organization, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, errors.NewNotFoundError("organization not found")
}

func (m *mockOrganizationRepository) FindByName(ctx context.Context, name string) (*organization.Organization, error) {
	return nil, errors.NewNotFoundError("organization not found")
}

func (m *mockOrganizationRepository) List(ctx context.Context, offset, limit int) ([]*organization.Organization, int64, error) {
	return nil, 0, nil
}

func (m *mockOrganizationRepository) Update(ctx context.Context, o *organization.Organization) error {
	return nil
}

func (m *mockOrganizationRepository) Delete(ctx context.Context, id uint) error {
	return nil
}

func (m *mockOrganizationRepository) IncrementOrdersCount(ctx context.Context, id uint) error {
	return nil
}

type mockAssignmentSource struct {
	HasActiveAssignmentFunc func(ctx context.Context, managerID, userID uint) (bool, error)
}

func (m *mockAssignmentSource) HasActiveAssignment(ctx context.Context, managerID, userID uint) (bool, error) {
	if m.HasActiveAssignmentFunc != nil {
		return m.HasActiveAssignmentFunc(ctx, managerID, userID)
	}
	return false, nil
}

type mockRatingProvider struct {
	FetchMetricsFunc func(ctx context.Context, domain string) (*integrations.DomainMetrics, error)
	EnabledFunc      func() bool
}

func (m *mockRatingProvider) FetchMetrics(ctx context.Context, domain string) (*integrations.DomainMetrics, error) {
	if m.FetchMetricsFunc != nil {
		return m.FetchMetricsFunc(ctx, domain)
	}
	return &integrations.DomainMetrics{DomainRating: 50, MonthlyTraffic: 1000}, nil
}

func (m *mockRatingProvider) Enabled() bool {
	if m.EnabledFunc != nil {
		return m.EnabledFunc()
	}
	return true
}
