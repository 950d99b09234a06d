package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/linkdesk-io/linkdesk/internal/domain/order"
	"github.com/linkdesk-io/linkdesk/internal/infrastructure/integrations"
	"github.com/linkdesk-io/linkdesk/internal/shared/authorization"
	"github.com/linkdesk-io/linkdesk/internal/shared/errors"
	"github.com/linkdesk-io/linkdesk/internal/shared/logger"
)

type mockOrderRepository struct {
	FindByIDFunc func(ctx context.Context, id uint) (*order.Order, error)
}

func (m *mockOrderRepository) Create(ctx context.Context, o *order.Order) error { return nil }

func (m *mockOrderRepository) FindByID(ctx context.Context, id uint) (*order.Order, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, errors.NewNotFoundError("order not found")
}

func (m *mockOrderRepository) List(ctx context.Context, filter order.ListFilter, offset, limit int) ([]*order.Order, int64, error) {
	return nil, 0, nil
}

func (m *mockOrderRepository) Update(ctx context.Context, o *order.Order) error { return nil }

func (m *mockOrderRepository) Delete(ctx context.Context, id uint) error { return nil }

func (m *mockOrderRepository) CountByStatus(ctx context.Context, filter order.ListFilter) (map[order.Status]int64, error) {
	return nil, nil
}

type mockCopyGenerator struct {
	GenerateDraftFunc func(ctx context.Context, brief integrations.CopyBrief) (string, error)
	EnabledFunc       func() bool
}

func (m *mockCopyGenerator) GenerateDraft(ctx context.Context, brief integrations.CopyBrief) (string, error) {
	if m.GenerateDraftFunc != nil {
		return m.GenerateDraftFunc(ctx, brief)
	}
	return "draft", nil
}

func (m *mockCopyGenerator) Enabled() bool {
	if m.EnabledFunc != nil {
		return m.EnabledFunc()
	}
	return true
}

func testActor(userID uint, role authorization.Role) authorization.Actor {
	return authorization.Actor{UserID: userID, Role: role, OrganizationID: 1}
}

func testGuestPostOrder(t *testing.T, id uint) *order.Order {
	t.Helper()
	o, err := order.NewOrder(5, 7, nil, order.TypeGuestPost, "best crm software", "https://example.com/crm", 25000)
	require.NoError(t, err)
	require.NoError(t, o.SetID(id))
	return o
}

func TestGenerateCopyUseCase_BriefBuiltFromOrder(t *testing.T) {
	o := testGuestPostOrder(t, 9)
	orderRepo := &mockOrderRepository{
		FindByIDFunc: func(ctx context.Context, id uint) (*order.Order, error) {
			return o, nil
		},
	}
	var captured integrations.CopyBrief
	generator := &mockCopyGenerator{
		GenerateDraftFunc: func(ctx context.Context, brief integrations.CopyBrief) (string, error) {
			captured = brief
			return "Ten CRM Tools Worth Your Budget\n\n...", nil
		},
	}

	uc := NewGenerateCopyUseCase(orderRepo, generator, logger.NewNop())

	result, err := uc.Execute(context.Background(), GenerateCopyCommand{
		Actor:   testActor(1, authorization.RoleAdmin),
		OrderID: 9,
		Title:   "Ten CRM Tools Worth Your Budget",
	})
	require.NoError(t, err)

	assert.Equal(t, "best crm software", captured.AnchorText)
	assert.Equal(t, "https://example.com/crm", captured.TargetURL)
	assert.Equal(t, "Ten CRM Tools Worth Your Budget", captured.Title, "command title overrides the order's")
	assert.Contains(t, result.Draft, "CRM Tools")
}

func TestGenerateCopyUseCase_NicheEditRejected(t *testing.T) {
	o, err := order.NewOrder(5, 7, nil, order.TypeNicheEdit, "anchor", "https://example.com/page", 12000)
	require.NoError(t, err)
	require.NoError(t, o.SetID(9))

	orderRepo := &mockOrderRepository{
		FindByIDFunc: func(ctx context.Context, id uint) (*order.Order, error) {
			return o, nil
		},
	}

	uc := NewGenerateCopyUseCase(orderRepo, &mockCopyGenerator{}, logger.NewNop())

	_, err = uc.Execute(context.Background(), GenerateCopyCommand{
		Actor:   testActor(1, authorization.RoleAdmin),
		OrderID: 9,
	})
	require.Error(t, err)
	assert.True(t, errors.IsValidationError(err))
}

func TestGenerateCopyUseCase_DisabledGeneratorConflicts(t *testing.T) {
	generator := &mockCopyGenerator{
		EnabledFunc: func() bool { return false },
	}

	uc := NewGenerateCopyUseCase(&mockOrderRepository{}, generator, logger.NewNop())

	_, err := uc.Execute(context.Background(), GenerateCopyCommand{
		Actor:   testActor(1, authorization.RoleAdmin),
		OrderID: 9,
	})
	require.Error(t, err)
	appErr := errors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrorTypeConflict, appErr.Type)
}

func TestGenerateCopyUseCase_NonAdminForbidden(t *testing.T) {
	uc := NewGenerateCopyUseCase(&mockOrderRepository{}, &mockCopyGenerator{}, logger.NewNop())

	_, err := uc.Execute(context.Background(), GenerateCopyCommand{
		Actor:   testActor(5, authorization.RoleUser),
		OrderID: 9,
	})
	require.Error(t, err)
	assert.True(t, errors.IsForbiddenError(err))
}
