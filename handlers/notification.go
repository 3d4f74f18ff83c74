package handlers

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"tribunal_app_go/apperr"
	"tribunal_app_go/db"
	"tribunal_app_go/middleware"
	"tribunal_app_go/services"
)

// ListNotificationsHandler returns the current user's notifications.
// ?unread=true restricts to unread entries.
func ListNotificationsHandler(c echo.Context) error {
	user := middleware.CurrentUser(c)
	if user == nil {
		return apperr.Permission("authentication required")
	}

	unreadOnly := c.QueryParam("unread") == "true"
	limit, _ := strconv.Atoi(c.QueryParam("limit"))

	notifications, err := services.ListNotifications(db.DB, user.ID, unreadOnly, limit)
	if err != nil {
		return err
	}
	return respondData(c, http.StatusOK, notifications)
}

// UnreadCountHandler returns the current user's unread notification count.
func UnreadCountHandler(c echo.Context) error {
	user := middleware.CurrentUser(c)
	if user == nil {
		return apperr.Permission("authentication required")
	}

	count, err := services.UnreadCount(db.DB, user.ID)
	if err != nil {
		return err
	}
	return respondData(c, http.StatusOK, map[string]int64{"unread": count})
}

// MarkNotificationReadHandler marks one notification as read.
func MarkNotificationReadHandler(c echo.Context) error {
	user := middleware.CurrentUser(c)
	if user == nil {
		return apperr.Permission("authentication required")
	}

	if err := services.MarkNotificationRead(db.DB, user.ID, c.Param("notificationId")); err != nil {
		return err
	}
	return respondNoContent(c)
}

// MarkAllNotificationsReadHandler marks all of the user's notifications read.
func MarkAllNotificationsReadHandler(c echo.Context) error {
	user := middleware.CurrentUser(c)
	if user == nil {
		return apperr.Permission("authentication required")
	}

	if err := services.MarkAllNotificationsRead(db.DB, user.ID); err != nil {
		return err
	}
	return respondNoContent(c)
}
