package handler

import (
	"log/slog"
	"net/http"

	"roomie/internal/delivery/http/middleware"
	"roomie/internal/delivery/http/response"
	"roomie/internal/usecase"

	"github.com/labstack/echo/v4"
)

// NotificationHandler holds dependencies for notification endpoints
type NotificationHandler struct {
	uc     usecase.NotificationUsecase
	logger *slog.Logger
}

// NewNotificationHandler is the constructor for NotificationHandler
func NewNotificationHandler(uc usecase.NotificationUsecase, logger *slog.Logger) *NotificationHandler {
	return &NotificationHandler{
		uc:     uc,
		logger: logger,
	}
}

// ListNotifications handles listing the authenticated caller's notifications
// within a household
func (h *NotificationHandler) ListNotifications(c echo.Context) error {
	householdID, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	notifications := h.uc.ListNotifications(c.Request().Context(), userID, householdID, queryLimit(c))

	return response.Success(c, http.StatusOK, notifications, "")
}

// MarkNotificationRead handles flagging a notification as read
func (h *NotificationHandler) MarkNotificationRead(c echo.Context) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	if err := h.uc.MarkNotificationRead(c.Request().Context(), id); err != nil {
		return handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, nil, "Notification marked as read")
}

// DeleteNotification handles removing a notification
func (h *NotificationHandler) DeleteNotification(c echo.Context) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	if err := h.uc.DeleteNotification(c.Request().Context(), id); err != nil {
		return handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, nil, "Notification deleted successfully")
}
