package feedback

import (
	"fmt"
	"time"

	"github.com/linkdesk-io/linkdesk/internal/shared/authorization"
)

// Campaign is an admin-defined survey targeted at a role. An empty target
// role means every active user is in scope.
type Campaign struct {
	id         uint
	name       string
	targetRole authorization.Role
	active     bool
	createdAt  time.Time
	updatedAt  time.Time
}

func NewCampaign(name string, targetRole authorization.Role) (*Campaign, error) {
	if name == "" {
		return nil, fmt.Errorf("campaign name is required")
	}
	if targetRole != "" && !targetRole.IsValid() {
		return nil, fmt.Errorf("invalid target role: %s", targetRole)
	}

	now := time.Now()
	return &Campaign{
		name:       name,
		targetRole: targetRole,
		active:     true,
		createdAt:  now,
		updatedAt:  now,
	}, nil
}

func ReconstructCampaign(id uint, name string, targetRole authorization.Role, active bool, createdAt, updatedAt time.Time) (*Campaign, error) {
	if id == 0 {
		return nil, fmt.Errorf("campaign ID cannot be zero")
	}
	return &Campaign{
		id:         id,
		name:       name,
		targetRole: targetRole,
		active:     active,
		createdAt:  createdAt,
		updatedAt:  updatedAt,
	}, nil
}

func (c *Campaign) ID() uint                       { return c.id }
func (c *Campaign) Name() string                   { return c.name }
func (c *Campaign) TargetRole() authorization.Role { return c.targetRole }
func (c *Campaign) IsActive() bool                 { return c.active }
func (c *Campaign) CreatedAt() time.Time           { return c.createdAt }
func (c *Campaign) UpdatedAt() time.Time           { return c.updatedAt }

func (c *Campaign) SetID(id uint) error {
	if c.id != 0 {
		return fmt.Errorf("campaign ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("campaign ID cannot be zero")
	}
	c.id = id
	return nil
}

// Targets reports whether a user with the given role falls inside the
// campaign's audience.
func (c *Campaign) Targets(role authorization.Role) bool {
	return c.targetRole == "" || c.targetRole == role
}

func (c *Campaign) Deactivate() {
	c.active = false
	c.updatedAt = time.Now()
}

type QuestionKind string

const (
	QuestionRating QuestionKind = "rating"
	QuestionText   QuestionKind = "text"
)

func (k QuestionKind) IsValid() bool {
	return k == QuestionRating || k == QuestionText
}

// Question is a single survey question within a campaign.
type Question struct {
	id         uint
	campaignID uint
	text       string
	kind       QuestionKind
	position   int
	active     bool
	createdAt  time.Time
	updatedAt  time.Time
}

func NewQuestion(campaignID uint, text string, kind QuestionKind, position int) (*Question, error) {
	if campaignID == 0 {
		return nil, fmt.Errorf("campaign ID is required")
	}
	if text == "" {
		return nil, fmt.Errorf("question text is required")
	}
	if !kind.IsValid() {
		return nil, fmt.Errorf("invalid question kind: %s", kind)
	}

	now := time.Now()
	return &Question{
		campaignID: campaignID,
		text:       text,
		kind:       kind,
		position:   position,
		active:     true,
		createdAt:  now,
		updatedAt:  now,
	}, nil
}

func ReconstructQuestion(id, campaignID uint, text string, kind QuestionKind, position int, active bool, createdAt, updatedAt time.Time) (*Question, error) {
	if id == 0 {
		return nil, fmt.Errorf("question ID cannot be zero")
	}
	return &Question{
		id:         id,
		campaignID: campaignID,
		text:       text,
		kind:       kind,
		position:   position,
		active:     active,
		createdAt:  createdAt,
		updatedAt:  updatedAt,
	}, nil
}

func (q *Question) ID() uint           { return q.id }
func (q *Question) CampaignID() uint   { return q.campaignID }
func (q *Question) Text() string       { return q.text }
func (q *Question) Kind() QuestionKind { return q.kind }
func (q *Question) Position() int      { return q.position }
func (q *Question) IsActive() bool     { return q.active }

func (q *Question) SetID(id uint) error {
	if q.id != 0 {
		return fmt.Errorf("question ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("question ID cannot be zero")
	}
	q.id = id
	return nil
}

func (q *Question) Deactivate() {
	q.active = false
	q.updatedAt = time.Now()
}

// Answer is a single response within a submitted feedback.
type Answer struct {
	QuestionID uint
	Rating     *int
	Text       string
}

type Status string

const (
	StatusPending  Status = "pending"
	StatusComplete Status = "complete"
)

// Feedback is one user's response record for a campaign. At most one row
// exists per campaign and user; generation checks for an existing row
// first, in either state, so rerunning a campaign never produces
// duplicates.
type Feedback struct {
	id          uint
	userID      uint
	campaignID  uint
	status      Status
	answers     []Answer
	createdAt   time.Time
	completedAt *time.Time
}

func NewFeedback(userID, campaignID uint) (*Feedback, error) {
	if userID == 0 {
		return nil, fmt.Errorf("user ID is required")
	}
	if campaignID == 0 {
		return nil, fmt.Errorf("campaign ID is required")
	}
	return &Feedback{
		userID:     userID,
		campaignID: campaignID,
		status:     StatusPending,
		createdAt:  time.Now(),
	}, nil
}

func ReconstructFeedback(id, userID, campaignID uint, status Status, answers []Answer, createdAt time.Time, completedAt *time.Time) (*Feedback, error) {
	if id == 0 {
		return nil, fmt.Errorf("feedback ID cannot be zero")
	}
	return &Feedback{
		id:          id,
		userID:      userID,
		campaignID:  campaignID,
		status:      status,
		answers:     answers,
		createdAt:   createdAt,
		completedAt: completedAt,
	}, nil
}

func (f *Feedback) ID() uint                { return f.id }
func (f *Feedback) UserID() uint            { return f.userID }
func (f *Feedback) CampaignID() uint        { return f.campaignID }
func (f *Feedback) Status() Status          { return f.status }
func (f *Feedback) Answers() []Answer       { return f.answers }
func (f *Feedback) CreatedAt() time.Time    { return f.createdAt }
func (f *Feedback) CompletedAt() *time.Time { return f.completedAt }

func (f *Feedback) IsComplete() bool {
	return f.status == StatusComplete
}

func (f *Feedback) SetID(id uint) error {
	if f.id != 0 {
		return fmt.Errorf("feedback ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("feedback ID cannot be zero")
	}
	f.id = id
	return nil
}

// Submit records the answers and completes the request. Rating answers
// must fall in [1,5]; resubmitting a completed request is an error.
func (f *Feedback) Submit(answers []Answer) error {
	if f.status == StatusComplete {
		return fmt.Errorf("feedback has already been submitted")
	}
	if len(answers) == 0 {
		return fmt.Errorf("at least one answer is required")
	}
	for _, a := range answers {
		if a.QuestionID == 0 {
			return fmt.Errorf("answer is missing its question")
		}
		if a.Rating != nil && (*a.Rating < 1 || *a.Rating > 5) {
			return fmt.Errorf("rating must be between 1 and 5")
		}
	}

	f.answers = answers
	f.status = StatusComplete
	now := time.Now()
	f.completedAt = &now
	return nil
}
