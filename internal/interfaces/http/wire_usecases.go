package http

import (
	contentUsecases "github.com/linkdesk-io/linkdesk/internal/application/content/usecases"
	dashboardUsecases "github.com/linkdesk-io/linkdesk/internal/application/dashboard/usecases"
	feedbackUsecases "github.com/linkdesk-io/linkdesk/internal/application/feedback/usecases"
	inventoryUsecases "github.com/linkdesk-io/linkdesk/internal/application/inventory/usecases"
	invoiceUsecases "github.com/linkdesk-io/linkdesk/internal/application/invoice/usecases"
	notificationUsecases "github.com/linkdesk-io/linkdesk/internal/application/notification/usecases"
	orderUsecases "github.com/linkdesk-io/linkdesk/internal/application/order/usecases"
	orgUsecases "github.com/linkdesk-io/linkdesk/internal/application/organization/usecases"
	ticketUsecases "github.com/linkdesk-io/linkdesk/internal/application/ticket/usecases"
	userUsecases "github.com/linkdesk-io/linkdesk/internal/application/user/usecases"
	"github.com/linkdesk-io/linkdesk/internal/infrastructure/integrations"
	"github.com/linkdesk-io/linkdesk/internal/shared/authorization"
	"github.com/linkdesk-io/linkdesk/internal/shared/logger"
)

// allUseCases holds all use case instances used by the handlers and the
// background jobs.
type allUseCases struct {
	// User & Auth
	registerUC         *userUsecases.RegisterUseCase
	loginUC            *userUsecases.LoginUseCase
	createUserUC       *userUsecases.CreateUserUseCase
	getUserUC          *userUsecases.GetUserUseCase
	listUsersUC        *userUsecases.ListUsersUseCase
	updateUserUC       *userUsecases.UpdateUserUseCase
	deleteUserUC       *userUsecases.DeleteUserUseCase
	changePasswordUC   *userUsecases.ChangePasswordUseCase
	assignManagerUC    *userUsecases.AssignManagerUseCase
	revokeManagerUC    *userUsecases.RevokeManagerUseCase
	listManagedUsersUC *userUsecases.ListManagedUsersUseCase

	// Organization
	createOrgUC *orgUsecases.CreateOrganizationUseCase
	getOrgUC    *orgUsecases.GetOrganizationUseCase
	listOrgsUC  *orgUsecases.ListOrganizationsUseCase
	updateOrgUC *orgUsecases.UpdateOrganizationUseCase

	// Inventory
	createDomainUC   *inventoryUsecases.CreateDomainUseCase
	updateDomainUC   *inventoryUsecases.UpdateDomainUseCase
	getDomainUC      *inventoryUsecases.GetDomainUseCase
	listDomainsUC    *inventoryUsecases.ListDomainsUseCase
	deleteDomainUC   *inventoryUsecases.DeleteDomainUseCase
	quoteDomainUC    *inventoryUsecases.QuoteDomainUseCase
	refreshRatingsUC *inventoryUsecases.RefreshRatingsUseCase

	// Order
	createOrderUC       *orderUsecases.CreateOrderUseCase
	getOrderUC          *orderUsecases.GetOrderUseCase
	listOrdersUC        *orderUsecases.ListOrdersUseCase
	updateOrderUC       *orderUsecases.UpdateOrderUseCase
	deleteOrderUC       *orderUsecases.DeleteOrderUseCase
	changeOrderStatusUC *orderUsecases.ChangeStatusUseCase
	assignOrderUC       *orderUsecases.AssignOrderUseCase
	addOrderCommentUC   *orderUsecases.AddCommentUseCase
	listOrderCommentsUC *orderUsecases.ListCommentsUseCase
	markOrderCommentsUC *orderUsecases.MarkCommentsReadUseCase

	// Ticket
	createTicketUC       *ticketUsecases.CreateTicketUseCase
	getTicketUC          *ticketUsecases.GetTicketUseCase
	listTicketsUC        *ticketUsecases.ListTicketsUseCase
	updateTicketUC       *ticketUsecases.UpdateTicketUseCase
	closeTicketUC        *ticketUsecases.CloseTicketUseCase
	closeAllTicketsUC    *ticketUsecases.CloseAllOpenUseCase
	addTicketCommentUC   *ticketUsecases.AddCommentUseCase
	listTicketCommentsUC *ticketUsecases.ListCommentsUseCase

	// Invoice
	createInvoiceUC   *invoiceUsecases.CreateInvoiceUseCase
	getInvoiceUC      *invoiceUsecases.GetInvoiceUseCase
	listInvoicesUC    *invoiceUsecases.ListInvoicesUseCase
	markInvoicePaidUC *invoiceUsecases.MarkInvoicePaidUseCase
	cancelInvoiceUC   *invoiceUsecases.CancelInvoiceUseCase
	overdueSweepUC    *invoiceUsecases.OverdueSweepUseCase

	// Notification
	listNotificationsUC   *notificationUsecases.ListNotificationsUseCase
	markNotificationUC    *notificationUsecases.MarkNotificationReadUseCase
	markAllNotificationUC *notificationUsecases.MarkAllNotificationsReadUseCase
	unreadCountUC         *notificationUsecases.UnreadCountUseCase

	// Feedback
	createCampaignUC   *feedbackUsecases.CreateCampaignUseCase
	listCampaignsUC    *feedbackUsecases.ListCampaignsUseCase
	addQuestionUC      *feedbackUsecases.AddQuestionUseCase
	listQuestionsUC    *feedbackUsecases.ListQuestionsUseCase
	generateRequestsUC *feedbackUsecases.GenerateRequestsUseCase
	submitFeedbackUC   *feedbackUsecases.SubmitFeedbackUseCase
	listMyFeedbackUC   *feedbackUsecases.ListMyFeedbackUseCase

	// Dashboard & Content
	dashboardSummaryUC *dashboardUsecases.SummaryUseCase
	generateCopyUC     *contentUsecases.GenerateCopyUseCase
}

func newUseCases(
	repos *repositories,
	policy *authorization.ResourcePolicy,
	hasher userUsecases.PasswordHasher,
	tokens userUsecases.TokenIssuer,
	throttle userUsecases.LoginThrottle,
	ratings integrations.RatingProvider,
	copygen integrations.CopyGenerator,
	log logger.Interface,
) *allUseCases {
	return &allUseCases{
		registerUC:         userUsecases.NewRegisterUseCase(repos.userRepo, repos.orgRepo, hasher, log),
		loginUC:            userUsecases.NewLoginUseCase(repos.userRepo, hasher, tokens, throttle, log),
		createUserUC:       userUsecases.NewCreateUserUseCase(repos.userRepo, hasher, log),
		getUserUC:          userUsecases.NewGetUserUseCase(repos.userRepo, policy, log),
		listUsersUC:        userUsecases.NewListUsersUseCase(repos.userRepo, log),
		updateUserUC:       userUsecases.NewUpdateUserUseCase(repos.userRepo, policy, log),
		deleteUserUC:       userUsecases.NewDeleteUserUseCase(repos.userRepo, policy, log),
		changePasswordUC:   userUsecases.NewChangePasswordUseCase(repos.userRepo, hasher, log),
		assignManagerUC:    userUsecases.NewAssignManagerUseCase(repos.userRepo, repos.assignmentRepo, log),
		revokeManagerUC:    userUsecases.NewRevokeManagerUseCase(repos.assignmentRepo, log),
		listManagedUsersUC: userUsecases.NewListManagedUsersUseCase(repos.userRepo, repos.assignmentRepo, log),

		createOrgUC: orgUsecases.NewCreateOrganizationUseCase(repos.orgRepo, log),
		getOrgUC:    orgUsecases.NewGetOrganizationUseCase(repos.orgRepo, log),
		listOrgsUC:  orgUsecases.NewListOrganizationsUseCase(repos.orgRepo, log),
		updateOrgUC: orgUsecases.NewUpdateOrganizationUseCase(repos.orgRepo, log),

		createDomainUC:   inventoryUsecases.NewCreateDomainUseCase(repos.domainRepo, policy, log),
		updateDomainUC:   inventoryUsecases.NewUpdateDomainUseCase(repos.domainRepo, policy, log),
		getDomainUC:      inventoryUsecases.NewGetDomainUseCase(repos.domainRepo, policy, log),
		listDomainsUC:    inventoryUsecases.NewListDomainsUseCase(repos.domainRepo, policy, log),
		deleteDomainUC:   inventoryUsecases.NewDeleteDomainUseCase(repos.domainRepo, policy, log),
		quoteDomainUC:    inventoryUsecases.NewQuoteDomainUseCase(repos.domainRepo, repos.orgRepo, policy, log),
		refreshRatingsUC: inventoryUsecases.NewRefreshRatingsUseCase(repos.domainRepo, ratings, log),

		createOrderUC:       orderUsecases.NewCreateOrderUseCase(repos.orderRepo, repos.domainRepo, repos.orgRepo, repos.userRepo, repos.outboxRepo, log),
		getOrderUC:          orderUsecases.NewGetOrderUseCase(repos.orderRepo, policy, log),
		listOrdersUC:        orderUsecases.NewListOrdersUseCase(repos.orderRepo, repos.assignmentRepo, log),
		updateOrderUC:       orderUsecases.NewUpdateOrderUseCase(repos.orderRepo, policy, log),
		deleteOrderUC:       orderUsecases.NewDeleteOrderUseCase(repos.orderRepo, policy, log),
		changeOrderStatusUC: orderUsecases.NewChangeStatusUseCase(repos.orderRepo, repos.orderCommentRepo, repos.userRepo, repos.outboxRepo, log),
		assignOrderUC:       orderUsecases.NewAssignOrderUseCase(repos.orderRepo, repos.userRepo, repos.outboxRepo, log),
		addOrderCommentUC:   orderUsecases.NewAddCommentUseCase(repos.orderRepo, repos.orderCommentRepo, repos.userRepo, repos.outboxRepo, policy, log),
		listOrderCommentsUC: orderUsecases.NewListCommentsUseCase(repos.orderRepo, repos.orderCommentRepo, policy, log),
		markOrderCommentsUC: orderUsecases.NewMarkCommentsReadUseCase(repos.orderRepo, repos.orderCommentRepo, policy, log),

		createTicketUC:       ticketUsecases.NewCreateTicketUseCase(repos.ticketRepo, repos.ticketCommentRepo, repos.userRepo, repos.outboxRepo, log),
		getTicketUC:          ticketUsecases.NewGetTicketUseCase(repos.ticketRepo, policy, log),
		listTicketsUC:        ticketUsecases.NewListTicketsUseCase(repos.ticketRepo, repos.assignmentRepo, log),
		updateTicketUC:       ticketUsecases.NewUpdateTicketUseCase(repos.ticketRepo, log),
		closeTicketUC:        ticketUsecases.NewCloseTicketUseCase(repos.ticketRepo, repos.userRepo, repos.outboxRepo, policy, log),
		closeAllTicketsUC:    ticketUsecases.NewCloseAllOpenUseCase(repos.ticketRepo, log),
		addTicketCommentUC:   ticketUsecases.NewAddCommentUseCase(repos.ticketRepo, repos.ticketCommentRepo, repos.userRepo, repos.outboxRepo, policy, log),
		listTicketCommentsUC: ticketUsecases.NewListCommentsUseCase(repos.ticketRepo, repos.ticketCommentRepo, policy, log),

		createInvoiceUC:   invoiceUsecases.NewCreateInvoiceUseCase(repos.invoiceRepo, repos.userRepo, repos.outboxRepo, log),
		getInvoiceUC:      invoiceUsecases.NewGetInvoiceUseCase(repos.invoiceRepo, policy, log),
		listInvoicesUC:    invoiceUsecases.NewListInvoicesUseCase(repos.invoiceRepo, repos.assignmentRepo, log),
		markInvoicePaidUC: invoiceUsecases.NewMarkInvoicePaidUseCase(repos.invoiceRepo, repos.userRepo, repos.outboxRepo, log),
		cancelInvoiceUC:   invoiceUsecases.NewCancelInvoiceUseCase(repos.invoiceRepo, log),
		overdueSweepUC:    invoiceUsecases.NewOverdueSweepUseCase(repos.invoiceRepo, log),

		listNotificationsUC:   notificationUsecases.NewListNotificationsUseCase(repos.notificationRepo, log),
		markNotificationUC:    notificationUsecases.NewMarkNotificationReadUseCase(repos.notificationRepo, log),
		markAllNotificationUC: notificationUsecases.NewMarkAllNotificationsReadUseCase(repos.notificationRepo, log),
		unreadCountUC:         notificationUsecases.NewUnreadCountUseCase(repos.notificationRepo, log),

		createCampaignUC:   feedbackUsecases.NewCreateCampaignUseCase(repos.campaignRepo, log),
		listCampaignsUC:    feedbackUsecases.NewListCampaignsUseCase(repos.campaignRepo, log),
		addQuestionUC:      feedbackUsecases.NewAddQuestionUseCase(repos.campaignRepo, repos.questionRepo, log),
		listQuestionsUC:    feedbackUsecases.NewListQuestionsUseCase(repos.questionRepo, log),
		generateRequestsUC: feedbackUsecases.NewGenerateRequestsUseCase(repos.campaignRepo, repos.feedbackRepo, repos.userRepo, repos.outboxRepo, log),
		submitFeedbackUC:   feedbackUsecases.NewSubmitFeedbackUseCase(repos.feedbackRepo, log),
		listMyFeedbackUC:   feedbackUsecases.NewListMyFeedbackUseCase(repos.feedbackRepo, log),

		dashboardSummaryUC: dashboardUsecases.NewSummaryUseCase(repos.orderRepo, repos.ticketRepo, repos.invoiceRepo, repos.orgRepo, repos.assignmentRepo, log),
		generateCopyUC:     contentUsecases.NewGenerateCopyUseCase(repos.orderRepo, copygen, log),
	}
}
