package handlers

import (
	"net/http"

	"impactohub-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// NotificationHandler handles HTTP requests for the notification feed
type NotificationHandler struct {
	notificationService *service.NotificationService
}

// NewNotificationHandler creates a new notification handler
func NewNotificationHandler(notificationService *service.NotificationService) *NotificationHandler {
	return &NotificationHandler{notificationService: notificationService}
}

// ListNotifications handles GET /notifications
// @Summary List notifications
// @Description List the caller's notifications, newest first, with unread count
// @Tags notifications
// @Produce json
// @Param page query int false "Page number"
// @Param page_size query int false "Page size"
// @Success 200 {object} service.NotificationListResponse "Paginated notifications"
// @Security CookieAuth
// @Router /notifications [get]
func (h *NotificationHandler) ListNotifications(c *gin.Context) {
	page, pageSize := pagination(c)

	resp, err := h.notificationService.List(caller(c), page, pageSize)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// MarkNotificationRead handles POST /notifications/:id/read
// @Summary Mark a notification read
// @Tags notifications
// @Produce json
// @Param id path string true "Notification ID (UUID)"
// @Success 200 {object} map[string]interface{} "Confirmation"
// @Failure 404 {object} ErrorResponse "Notification not found"
// @Security CookieAuth
// @Router /notifications/{id}/read [post]
func (h *NotificationHandler) MarkNotificationRead(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.notificationService.MarkRead(caller(c), id); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

// MarkAllNotificationsRead handles POST /notifications/read-all
// @Summary Mark all notifications read
// @Tags notifications
// @Produce json
// @Success 200 {object} map[string]interface{} "Confirmation"
// @Security CookieAuth
// @Router /notifications/read-all [post]
func (h *NotificationHandler) MarkAllNotificationsRead(c *gin.Context) {
	if err := h.notificationService.MarkAllRead(caller(c)); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}
