package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/bookwell/scheduler-api/internal/httperr"
	"github.com/bookwell/scheduler-api/internal/httpresp"
	"github.com/bookwell/scheduler-api/internal/infra/repository"
	"github.com/bookwell/scheduler-api/internal/middleware"
	"github.com/bookwell/scheduler-api/internal/usecase/notification"
)

// ======================================================
// HANDLER
// ======================================================

type NotificationHandler struct {
	confirmation *notification.BookingConfirmation
	alert        *notification.AvailabilityAlert
	inbox        *repository.NotificationGormRepository
}

func NewNotificationHandler(
	confirmation *notification.BookingConfirmation,
	alert *notification.AvailabilityAlert,
	inbox *repository.NotificationGormRepository,
) *NotificationHandler {
	return &NotificationHandler{
		confirmation: confirmation,
		alert:        alert,
		inbox:        inbox,
	}
}

// --------- Requests ---------

type bookingConfirmationRequest struct {
	BookingID uint `json:"booking_id" binding:"required"`
	UserID    uint `json:"user_id" binding:"required"`
}

type availabilityAlertRequest struct {
	ProfileID   uint `json:"profile_id" binding:"required"`
	UserID      uint `json:"user_id" binding:"required"`
	IsAvailable bool `json:"is_available"`
}

// --------- Triggers ---------

func (h *NotificationHandler) BookingConfirmation(c *gin.Context) {
	var req bookingConfirmationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	resp, err := h.confirmation.Execute(c.Request.Context(), req.BookingID, req.UserID)
	if err != nil {
		httperr.Internal(c, "notification_failed", "Could not send confirmation.")
		return
	}

	httpresp.OK(c, resp)
}

func (h *NotificationHandler) AvailabilityAlert(c *gin.Context) {
	var req availabilityAlertRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	resp, err := h.alert.Execute(c.Request.Context(), req.ProfileID, req.UserID, req.IsAvailable)
	if err != nil {
		httperr.Internal(c, "notification_failed", "Could not send alert.")
		return
	}

	httpresp.OK(c, resp)
}

// --------- Inbox ---------

func (h *NotificationHandler) List(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	items, err := h.inbox.ListForUser(c.Request.Context(), userID)
	if err != nil {
		httperr.Internal(c, "notification_list_failed", "Could not list notifications.")
		return
	}

	httpresp.List(c, items)
}

func (h *NotificationHandler) MarkRead(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	notificationID, ok := parseUintParam(c, "notificationId")
	if !ok {
		httperr.BadRequest(c, "invalid_notification_id", "Notification id must be a positive integer.")
		return
	}

	affected, err := h.inbox.MarkRead(c.Request.Context(), userID, notificationID)
	if err != nil {
		httperr.Internal(c, "notification_update_failed", "Could not mark notification as read.")
		return
	}
	if affected == 0 {
		httperr.NotFound(c, "notification_not_found", "Notification not found.")
		return
	}

	httpresp.OK(c, gin.H{"success": true})
}
