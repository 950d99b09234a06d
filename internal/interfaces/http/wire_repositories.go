package http

import (
	"gorm.io/gorm"

	"github.com/linkdesk-io/linkdesk/internal/domain/feedback"
	"github.com/linkdesk-io/linkdesk/internal/domain/inventory"
	"github.com/linkdesk-io/linkdesk/internal/domain/invoice"
	"github.com/linkdesk-io/linkdesk/internal/domain/notification"
	"github.com/linkdesk-io/linkdesk/internal/domain/order"
	"github.com/linkdesk-io/linkdesk/internal/domain/organization"
	"github.com/linkdesk-io/linkdesk/internal/domain/outbox"
	"github.com/linkdesk-io/linkdesk/internal/domain/ticket"
	"github.com/linkdesk-io/linkdesk/internal/domain/user"
	"github.com/linkdesk-io/linkdesk/internal/infrastructure/repository"
)

// repositories holds all repository instances used by the application.
// Types match the return types of the repository constructors.
type repositories struct {
	userRepo          user.Repository
	assignmentRepo    user.AssignmentRepository
	orgRepo           organization.Repository
	domainRepo        inventory.Repository
	orderRepo         order.Repository
	orderCommentRepo  order.CommentRepository
	ticketRepo        ticket.Repository
	ticketCommentRepo ticket.CommentRepository
	invoiceRepo       invoice.Repository
	notificationRepo  notification.Repository
	campaignRepo      feedback.CampaignRepository
	questionRepo      feedback.QuestionRepository
	feedbackRepo      feedback.Repository
	outboxRepo        outbox.Repository
}

func newRepositories(db *gorm.DB) *repositories {
	return &repositories{
		userRepo:          repository.NewUserRepository(db),
		assignmentRepo:    repository.NewUserAssignmentRepository(db),
		orgRepo:           repository.NewOrganizationRepository(db),
		domainRepo:        repository.NewDomainRepository(db),
		orderRepo:         repository.NewOrderRepository(db),
		orderCommentRepo:  repository.NewOrderCommentRepository(db),
		ticketRepo:        repository.NewTicketRepository(db),
		ticketCommentRepo: repository.NewTicketCommentRepository(db),
		invoiceRepo:       repository.NewInvoiceRepository(db),
		notificationRepo:  repository.NewNotificationRepository(db),
		campaignRepo:      repository.NewFeedbackCampaignRepository(db),
		questionRepo:      repository.NewFeedbackQuestionRepository(db),
		feedbackRepo:      repository.NewFeedbackRepository(db),
		outboxRepo:        repository.NewOutboxRepository(db),
	}
}
