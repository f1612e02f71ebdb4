package handlers

import (
	"crypto/subtle"
	"errors"
	"net/http"
	"strconv"

	"github.com/anonto42/localflow/internal/feed"
	"github.com/anonto42/localflow/internal/maintenance"
	"github.com/anonto42/localflow/internal/middleware"
	"github.com/anonto42/localflow/internal/models"
	"github.com/anonto42/localflow/internal/repositories"
	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

// NotificationsPerPage is the page size of the notification list.
const NotificationsPerPage = 20

// MaintenanceTokenHeader carries the shared secret of the purge endpoint.
const MaintenanceTokenHeader = "X-Maintenance-Token"

type notificationsPage struct {
	Items      []models.Notification
	Pagination feed.Pagination
	Unread     int64
}

// NotificationHandler handles the notification list and its maintenance endpoint.
type NotificationHandler struct {
	notifications    repositories.NotificationRepository
	purger           *maintenance.Purger
	maintenanceToken string
	shell            *Shell
}

// NewNotificationHandler creates a new NotificationHandler. An empty
// maintenanceToken leaves the purge endpoint open.
func NewNotificationHandler(notifications repositories.NotificationRepository, purger *maintenance.Purger, maintenanceToken string, shell *Shell) *NotificationHandler {
	return &NotificationHandler{
		notifications:    notifications,
		purger:           purger,
		maintenanceToken: maintenanceToken,
		shell:            shell,
	}
}

// RegisterNotificationRoutes registers the list routes on a session-protected group.
func (h *NotificationHandler) RegisterNotificationRoutes(g *echo.Group) {
	g.GET("/notifications", h.GetNotifications)
	g.POST("/notifications/read-all", h.MarkAllAsRead)
	g.POST("/notifications/:id/read", h.MarkAsRead)
}

// RegisterMaintenanceRoutes registers the purge endpoint for every method.
func (h *NotificationHandler) RegisterMaintenanceRoutes(e *echo.Echo) {
	e.Any("/my/notifications/delete-old", h.DeleteOld)
}

// GetNotifications renders one page of the user's notifications, newest first.
func (h *NotificationHandler) GetNotifications(c echo.Context) error {
	ctx := c.Request().Context()
	id := middleware.ProfileID(c)

	current, err := strconv.Atoi(c.QueryParam("page"))
	if err != nil || current < 1 {
		current = 1
	}
	items, total, err := h.notifications.GetByTargetID(ctx, id, current, NotificationsPerPage)
	if err != nil {
		return err
	}
	pagination := feed.NewPagination(current, total, NotificationsPerPage)
	if pagination.CurrentPage != current {
		items, _, err = h.notifications.GetByTargetID(ctx, id, pagination.CurrentPage, NotificationsPerPage)
		if err != nil {
			return err
		}
	}
	unread, err := h.notifications.GetUnreadCount(ctx, id)
	if err != nil {
		return err
	}

	page := notificationsPage{
		Items:      items,
		Pagination: pagination,
		Unread:     unread,
	}
	if wantsJSON(c) {
		return c.JSON(http.StatusOK, echo.Map{"success": true, "data": page.Items, "pagination": page.Pagination, "unread": unread})
	}
	return h.shell.Render(c, http.StatusOK, "notifications", "Notifications", page)
}

// MarkAsRead marks one of the user's notifications as read.
func (h *NotificationHandler) MarkAsRead(c echo.Context) error {
	notificationID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid notification id")
	}
	err = h.notifications.MarkAsRead(c.Request().Context(), middleware.ProfileID(c), notificationID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return echo.NewHTTPError(http.StatusNotFound, "Notification not found")
	}
	if err != nil {
		return err
	}
	return h.backToList(c)
}

// MarkAllAsRead marks every notification of the user as read.
func (h *NotificationHandler) MarkAllAsRead(c echo.Context) error {
	if err := h.notifications.MarkAllAsRead(c.Request().Context(), middleware.ProfileID(c)); err != nil {
		return err
	}
	return h.backToList(c)
}

func (h *NotificationHandler) backToList(c echo.Context) error {
	if wantsJSON(c) {
		return c.JSON(http.StatusOK, echo.Map{"success": true})
	}
	return c.Redirect(http.StatusSeeOther, "/my/notifications")
}

// DeleteOld purges notifications past the retention window. Only POST is
// served; every other method gets an empty 404 and deletes nothing.
func (h *NotificationHandler) DeleteOld(c echo.Context) error {
	if c.Request().Method != http.MethodPost {
		return c.NoContent(http.StatusNotFound)
	}
	if h.maintenanceToken != "" {
		given := c.Request().Header.Get(MaintenanceTokenHeader)
		if subtle.ConstantTimeCompare([]byte(given), []byte(h.maintenanceToken)) != 1 {
			return c.NoContent(http.StatusUnauthorized)
		}
	}
	if _, err := h.purger.PurgeNotifications(c.Request().Context()); err != nil {
		return err
	}
	return c.NoContent(http.StatusOK)
}
