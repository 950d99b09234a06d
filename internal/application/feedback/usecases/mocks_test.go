package usecases

import (
	"context"

	"github.com/linkdesk-io/linkdesk/internal/domain/feedback"
	"github.com/linkdesk-io/linkdesk/internal/domain/outbox"
	"github.com/linkdesk-io/linkdesk/internal/domain/user"
	"github.com/linkdesk-io/linkdesk/internal/shared/errors"
)

type mockCampaignRepository struct {
	CreateFunc   func(ctx context.Context, c *feedback.Campaign) error
	FindByIDFunc func(ctx context.Context, id uint) (*feedback.Campaign, error)
	ListFunc     func(ctx context.Context, activeOnly bool, offset, limit int) ([]*feedback.Campaign, int64, error)
	UpdateFunc   func(ctx context.Context, c *feedback.Campaign) error
}

func (m *mockCampaignRepository) Create(ctx context.Context, c *feedback.Campaign) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, c)
	}
	return nil
}

func (m *mockCampaignRepository) FindByID(ctx context.Context, id uint) (*feedback.Campaign, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, errors.NewNotFoundError("campaign not found")
}

func (m *mockCampaignRepository) List(ctx context.Context, activeOnly bool, offset, limit int) ([]*feedback.Campaign, int64, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, activeOnly, offset, limit)
	}
	return nil, 0, nil
}

func (m *mockCampaignRepository) Update(ctx context.Context, c *feedback.Campaign) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, c)
	}
	return nil
}

type mockQuestionRepository struct {
	CreateFunc         func(ctx context.Context, q *feedback.Question) error
	FindByIDFunc       func(ctx context.Context, id uint) (*feedback.Question, error)
	ListByCampaignFunc func(ctx context.Context, campaignID uint, activeOnly bool) ([]*feedback.Question, error)
	UpdateFunc         func(ctx context.Context, q *feedback.Question) error
}

func (m *mockQuestionRepository) Create(ctx context.Context, q *feedback.Question) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, q)
	}
	return nil
}

func (m *mockQuestionRepository) FindByID(ctx context.Context, id uint) (*feedback.Question, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, errors.NewNotFoundError("question not found")
}

func (m *mockQuestionRepository) ListByCampaign(ctx context.Context, campaignID uint, activeOnly bool) ([]*feedback.Question, error) {
	if m.ListByCampaignFunc != nil {
		return m.ListByCampaignFunc(ctx, campaignID, activeOnly)
	}
	return nil, nil
}

func (m *mockQuestionRepository) Update(ctx context.Context, q *feedback.Question) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, q)
	}
	return nil
}

type mockFeedbackRepository struct {
	CreateFunc                func(ctx context.Context, f *feedback.Feedback) error
	FindByIDFunc              func(ctx context.Context, id uint) (*feedback.Feedback, error)
	FindByCampaignAndUserFunc func(ctx context.Context, campaignID, userID uint) (*feedback.Feedback, error)
	ListByUserFunc            func(ctx context.Context, userID uint, pendingOnly bool, offset, limit int) ([]*feedback.Feedback, int64, error)
	ListByCampaignFunc        func(ctx context.Context, campaignID uint, offset, limit int) ([]*feedback.Feedback, int64, error)
	UpdateFunc                func(ctx context.Context, f *feedback.Feedback) error
}

func (m *mockFeedbackRepository) Create(ctx context.Context, f *feedback.Feedback) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, f)
	}
	return nil
}

func (m *mockFeedbackRepository) FindByID(ctx context.Context, id uint) (*feedback.Feedback, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, errors.NewNotFoundError("feedback not found")
}

func (m *mockFeedbackRepository) FindByCampaignAndUser(ctx context.Context, campaignID, userID uint) (*feedback.Feedback, error) {
	if m.FindByCampaignAndUserFunc != nil {
		return m.FindByCampaignAndUserFunc(ctx, campaignID, userID)
	}
	return nil, errors.NewNotFoundError("feedback not found")
}

func (m *mockFeedbackRepository) ListByUser(ctx context.Context, userID uint, pendingOnly bool, offset, limit int) ([]*feedback.Feedback, int64, error) {
	if m.ListByUserFunc != nil {
		return m.ListByUserFunc(ctx, userID, pendingOnly, offset, limit)
	}
	return nil, 0, nil
}

func (m *mockFeedbackRepository) ListByCampaign(ctx context.Context, campaignID uint, offset, limit int) ([]*feedback.Feedback, int64, error) {
	if m.ListByCampaignFunc != nil {
		return m.ListByCampaignFunc(ctx, campaignID, offset, limit)
	}
	return nil, 0, nil
}

func (m *mockFeedbackRepository) Update(ctx context.Context, f *feedback.Feedback) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, f)
	}
	return nil
}

type mockUserRepository struct {
	FindByIDFunc func(ctx context.Context, id uint) (*user.User, error)
	ListFunc     func(ctx context.Context, filter user.ListFilter, offset, limit int) ([]*user.User, int64, error)
}

func (m *mockUserRepository) Create(ctx context.Context, u *user.User) error { return nil }

func (m *mockUserRepository) FindByID(ctx context.Context, id uint) (*user.User, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, errors.NewNotFoundError("user not found")
}

func (m *mockUserRepository) FindByEmail(ctx context.Context, email string) (*user.User, error) {
	return nil, errors.NewNotFoundError("user not found")
}

func (m *mockUserRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	return false, nil
}

func (m *mockUserRepository) List(ctx context.Context, filter user.ListFilter, offset, limit int) ([]*user.User, int64, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, filter, offset, limit)
	}
	return nil, 0, nil
}

func (m *mockUserRepository) Update(ctx context.Context, u *user.User) error { return nil }

func (m *mockUserRepository) Delete(ctx context.Context, id uint) error { return nil }

func (m *mockUserRepository) Count(ctx context.Context, filter user.ListFilter) (int64, error) {
	return 0, nil
}

type mockOutboxRepository struct {
	EnqueueFunc func(ctx context.Context, msg *outbox.Message) error
}

func (m *mockOutboxRepository) Enqueue(ctx context.Context, msg *outbox.Message) error {
	if m.EnqueueFunc != nil {
		return m.EnqueueFunc(ctx, msg)
	}
	return nil
}

func (m *mockOutboxRepository) ListDue(ctx context.Context, limit int) ([]*outbox.Message, error) {
	return nil, nil
}

func (m *mockOutboxRepository) Update(ctx context.Context, msg *outbox.Message) error {
	return nil
}

func (m *mockOutboxRepository) CountByStatus(ctx context.Context) (map[outbox.Status]int64, error) {
	return nil, nil
}
