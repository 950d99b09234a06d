package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/linkdesk-io/linkdesk/internal/application/notification/usecases"
	"github.com/linkdesk-io/linkdesk/internal/interfaces/http/middleware"
	"github.com/linkdesk-io/linkdesk/internal/shared/logger"
	"github.com/linkdesk-io/linkdesk/internal/shared/utils"
)

type NotificationHandler struct {
	listUC        *usecases.ListNotificationsUseCase
	markReadUC    *usecases.MarkNotificationReadUseCase
	markAllReadUC *usecases.MarkAllNotificationsReadUseCase
	unreadCountUC *usecases.UnreadCountUseCase
	logger        logger.Interface
}

func NewNotificationHandler(
	listUC *usecases.ListNotificationsUseCase,
	markReadUC *usecases.MarkNotificationReadUseCase,
	markAllReadUC *usecases.MarkAllNotificationsReadUseCase,
	unreadCountUC *usecases.UnreadCountUseCase,
	logger logger.Interface,
) *NotificationHandler {
	return &NotificationHandler{
		listUC:        listUC,
		markReadUC:    markReadUC,
		markAllReadUC: markAllReadUC,
		unreadCountUC: unreadCountUC,
		logger:        logger,
	}
}

// ListNotifications handles GET /notifications
func (h *NotificationHandler) ListNotifications(c *gin.Context) {
	p := utils.ParsePagination(c)

	result, err := h.listUC.Execute(c.Request.Context(), usecases.ListNotificationsQuery{
		Actor:      middleware.ActorFromContext(c),
		UnreadOnly: c.Query("unread") == "true",
		Offset:     p.Offset(),
		Limit:      p.PageSize,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, result.Notifications, result.Total, p.Page, p.PageSize)
}

// MarkRead handles POST /notifications/:id/read
func (h *NotificationHandler) MarkRead(c *gin.Context) {
	notificationID, err := utils.ParseIDParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := h.markReadUC.Execute(c.Request.Context(), usecases.MarkNotificationReadCommand{
		Actor:          middleware.ActorFromContext(c),
		NotificationID: notificationID,
	}); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", nil)
}

// MarkAllRead handles POST /notifications/read-all
func (h *NotificationHandler) MarkAllRead(c *gin.Context) {
	result, err := h.markAllReadUC.Execute(c.Request.Context(), usecases.MarkAllNotificationsReadCommand{
		Actor: middleware.ActorFromContext(c),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// UnreadCount handles GET /notifications/unread-count
func (h *NotificationHandler) UnreadCount(c *gin.Context) {
	result, err := h.unreadCountUC.Execute(c.Request.Context(), usecases.UnreadCountQuery{
		Actor: middleware.ActorFromContext(c),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}
