package http

import (
	"github.com/linkdesk-io/linkdesk/internal/interfaces/http/handlers"
	"github.com/linkdesk-io/linkdesk/internal/shared/logger"
)

// allHandlers holds all HTTP handler instances used by the application.
type allHandlers struct {
	authHandler         *handlers.AuthHandler
	userHandler         *handlers.UserHandler
	organizationHandler *handlers.OrganizationHandler
	inventoryHandler    *handlers.InventoryHandler
	orderHandler        *handlers.OrderHandler
	ticketHandler       *handlers.TicketHandler
	invoiceHandler      *handlers.InvoiceHandler
	notificationHandler *handlers.NotificationHandler
	feedbackHandler     *handlers.FeedbackHandler
	dashboardHandler    *handlers.DashboardHandler
	contentHandler      *handlers.ContentHandler
}

func newHandlers(ucs *allUseCases, log logger.Interface) *allHandlers {
	return &allHandlers{
		authHandler: handlers.NewAuthHandler(ucs.registerUC, ucs.loginUC, log),
		userHandler: handlers.NewUserHandler(
			ucs.createUserUC,
			ucs.getUserUC,
			ucs.listUsersUC,
			ucs.updateUserUC,
			ucs.deleteUserUC,
			ucs.changePasswordUC,
			ucs.assignManagerUC,
			ucs.revokeManagerUC,
			ucs.listManagedUsersUC,
			log,
		),
		organizationHandler: handlers.NewOrganizationHandler(
			ucs.createOrgUC,
			ucs.getOrgUC,
			ucs.listOrgsUC,
			ucs.updateOrgUC,
			log,
		),
		inventoryHandler: handlers.NewInventoryHandler(
			ucs.createDomainUC,
			ucs.getDomainUC,
			ucs.listDomainsUC,
			ucs.updateDomainUC,
			ucs.deleteDomainUC,
			ucs.quoteDomainUC,
			log,
		),
		orderHandler: handlers.NewOrderHandler(
			ucs.createOrderUC,
			ucs.getOrderUC,
			ucs.listOrdersUC,
			ucs.updateOrderUC,
			ucs.deleteOrderUC,
			ucs.changeOrderStatusUC,
			ucs.assignOrderUC,
			ucs.addOrderCommentUC,
			ucs.listOrderCommentsUC,
			ucs.markOrderCommentsUC,
			log,
		),
		ticketHandler: handlers.NewTicketHandler(
			ucs.createTicketUC,
			ucs.getTicketUC,
			ucs.listTicketsUC,
			ucs.updateTicketUC,
			ucs.closeTicketUC,
			ucs.closeAllTicketsUC,
			ucs.addTicketCommentUC,
			ucs.listTicketCommentsUC,
			log,
		),
		invoiceHandler: handlers.NewInvoiceHandler(
			ucs.createInvoiceUC,
			ucs.getInvoiceUC,
			ucs.listInvoicesUC,
			ucs.markInvoicePaidUC,
			ucs.cancelInvoiceUC,
			log,
		),
		notificationHandler: handlers.NewNotificationHandler(
			ucs.listNotificationsUC,
			ucs.markNotificationUC,
			ucs.markAllNotificationUC,
			ucs.unreadCountUC,
			log,
		),
		feedbackHandler: handlers.NewFeedbackHandler(
			ucs.createCampaignUC,
			ucs.listCampaignsUC,
			ucs.addQuestionUC,
			ucs.listQuestionsUC,
			ucs.generateRequestsUC,
			ucs.submitFeedbackUC,
			ucs.listMyFeedbackUC,
			log,
		),
		dashboardHandler: handlers.NewDashboardHandler(ucs.dashboardSummaryUC, log),
		contentHandler:   handlers.NewContentHandler(ucs.generateCopyUC, log),
	}
}
