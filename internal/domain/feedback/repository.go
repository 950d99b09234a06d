package feedback

import "context"

// CampaignRepository persists survey campaigns.
type CampaignRepository interface {
	Create(ctx context.Context, c *Campaign) error
	FindByID(ctx context.Context, id uint) (*Campaign, error)
	List(ctx context.Context, activeOnly bool, offset, limit int) ([]*Campaign, int64, error)
	Update(ctx context.Context, c *Campaign) error
}

// QuestionRepository persists campaign questions.
type QuestionRepository interface {
	Create(ctx context.Context, q *Question) error
	FindByID(ctx context.Context, id uint) (*Question, error)
	// ListByCampaign returns the campaign's questions ordered by position.
	ListByCampaign(ctx context.Context, campaignID uint, activeOnly bool) ([]*Question, error)
	Update(ctx context.Context, q *Question) error
}

// Repository persists feedback response records.
type Repository interface {
	Create(ctx context.Context, f *Feedback) error
	FindByID(ctx context.Context, id uint) (*Feedback, error)
	// FindByCampaignAndUser returns the existing row in any state, or a
	// not-found error. Generation relies on this for idempotence.
	FindByCampaignAndUser(ctx context.Context, campaignID, userID uint) (*Feedback, error)
	ListByUser(ctx context.Context, userID uint, pendingOnly bool, offset, limit int) ([]*Feedback, int64, error)
	ListByCampaign(ctx context.Context, campaignID uint, offset, limit int) ([]*Feedback, int64, error)
	Update(ctx context.Context, f *Feedback) error
}
