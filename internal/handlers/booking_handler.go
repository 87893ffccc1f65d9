package handlers

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/bookwell/scheduler-api/internal/domain/booking"
	"github.com/bookwell/scheduler-api/internal/httperr"
	"github.com/bookwell/scheduler-api/internal/httpresp"
	usecase "github.com/bookwell/scheduler-api/internal/usecase/booking"
)

// ======================================================
// HANDLER
// ======================================================

type BookingHandler struct {
	create       *usecase.Create
	book         *usecase.Book
	get          *usecase.Get
	changeStatus *usecase.ChangeStatus
	reschedule   *usecase.Reschedule
	cancel       *usecase.Cancel
	delete       *usecase.Delete
	schedule     *usecase.Schedule
}

func NewBookingHandler(
	create *usecase.Create,
	book *usecase.Book,
	get *usecase.Get,
	changeStatus *usecase.ChangeStatus,
	reschedule *usecase.Reschedule,
	cancel *usecase.Cancel,
	del *usecase.Delete,
	schedule *usecase.Schedule,
) *BookingHandler {
	return &BookingHandler{
		create:       create,
		book:         book,
		get:          get,
		changeStatus: changeStatus,
		reschedule:   reschedule,
		cancel:       cancel,
		delete:       del,
		schedule:     schedule,
	}
}

// --------- Requests ---------

type createBookingRequest struct {
	UserID    uint      `json:"user_id" binding:"required"`
	ProfileID uint      `json:"profile_id" binding:"required"`
	Time      time.Time `json:"time" binding:"required"`
}

type bookAppointmentRequest struct {
	UserID    uint      `json:"user_id" binding:"required"`
	ProfileID uint      `json:"profile_id" binding:"required"`
	Time      time.Time `json:"time" binding:"required"`
	Notes     string    `json:"notes"`
}

type changeStatusRequest struct {
	NewStatus string     `json:"new_status" binding:"required"`
	NewTime   *time.Time `json:"new_time"`
}

type rescheduleRequest struct {
	NewTime      time.Time `json:"new_time" binding:"required"`
	NewProfileID *uint     `json:"new_profile_id"`
	Notes        *string   `json:"notes"`
}

// --------- Handlers ---------

func (h *BookingHandler) Create(c *gin.Context) {
	var req createBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	resp, err := h.create.Execute(c.Request.Context(), usecase.CreateInput{
		UserID:    req.UserID,
		ProfileID: req.ProfileID,
		Time:      req.Time,
	})
	if err != nil {
		httperr.Internal(c, "booking_create_failed", "Could not create booking.")
		return
	}

	if !resp.Success {
		httpresp.OK(c, resp)
		return
	}
	httpresp.Created(c, resp)
}

func (h *BookingHandler) Book(c *gin.Context) {
	var req bookAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	resp, err := h.book.Execute(c.Request.Context(), usecase.BookInput{
		UserID:    req.UserID,
		ProfileID: req.ProfileID,
		Time:      req.Time,
		Notes:     req.Notes,
	})
	if err != nil {
		httperr.Internal(c, "booking_failed", "Could not book appointment.")
		return
	}

	if !resp.Success {
		httpresp.OK(c, resp)
		return
	}
	httpresp.Created(c, resp)
}

func (h *BookingHandler) Get(c *gin.Context) {
	bookingID, ok := parseUintParam(c, "bookingId")
	if !ok {
		httperr.BadRequest(c, "invalid_booking_id", "Booking id must be a positive integer.")
		return
	}

	resp, err := h.get.Execute(c.Request.Context(), bookingID)
	if err != nil {
		if httperr.IsBusiness(err, "booking_not_found") {
			httperr.NotFound(c, "booking_not_found", "Booking not found.")
			return
		}
		httperr.Internal(c, "booking_read_failed", "Could not read booking.")
		return
	}

	httpresp.OK(c, resp)
}

func (h *BookingHandler) ChangeStatus(c *gin.Context) {
	bookingID, ok := parseUintParam(c, "bookingId")
	if !ok {
		httperr.BadRequest(c, "invalid_booking_id", "Booking id must be a positive integer.")
		return
	}

	var req changeStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	resp, err := h.changeStatus.Execute(c.Request.Context(), usecase.ChangeStatusInput{
		BookingID: bookingID,
		NewStatus: booking.Status(req.NewStatus),
		NewTime:   req.NewTime,
	})
	if err != nil {
		httperr.Internal(c, "booking_update_failed", "Could not update booking.")
		return
	}

	httpresp.OK(c, resp)
}

func (h *BookingHandler) Reschedule(c *gin.Context) {
	bookingID, ok := parseUintParam(c, "bookingId")
	if !ok {
		httperr.BadRequest(c, "invalid_booking_id", "Booking id must be a positive integer.")
		return
	}

	var req rescheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	resp, err := h.reschedule.Execute(c.Request.Context(), usecase.RescheduleInput{
		AppointmentID: bookingID,
		NewTime:       req.NewTime,
		NewProfileID:  req.NewProfileID,
		Notes:         req.Notes,
	})
	if err != nil {
		httperr.Internal(c, "booking_reschedule_failed", "Could not reschedule booking.")
		return
	}

	httpresp.OK(c, resp)
}

func (h *BookingHandler) Cancel(c *gin.Context) {
	bookingID, ok := parseUintParam(c, "bookingId")
	if !ok {
		httperr.BadRequest(c, "invalid_booking_id", "Booking id must be a positive integer.")
		return
	}

	resp, err := h.cancel.Execute(c.Request.Context(), bookingID)
	if err != nil {
		httperr.Internal(c, "booking_cancel_failed", "Could not cancel booking.")
		return
	}

	httpresp.OK(c, resp)
}

func (h *BookingHandler) Delete(c *gin.Context) {
	bookingID, ok := parseUintParam(c, "bookingId")
	if !ok {
		httperr.BadRequest(c, "invalid_booking_id", "Booking id must be a positive integer.")
		return
	}

	resp, err := h.delete.Execute(c.Request.Context(), bookingID)
	if err != nil {
		httperr.Internal(c, "booking_delete_failed", "Could not delete booking.")
		return
	}

	httpresp.OK(c, resp)
}

func (h *BookingHandler) Schedule(c *gin.Context) {
	profileID, ok := parseUintParam(c, "profileId")
	if !ok {
		httperr.BadRequest(c, "invalid_profile_id", "Profile id must be a positive integer.")
		return
	}

	loc := locationFromQuery(c)

	start, err := parseDateQuery(c, "start_date", loc)
	if err != nil {
		httperr.BadRequest(c, "invalid_start_date", "start_date must be YYYY-MM-DD.")
		return
	}
	end, err := parseDateQuery(c, "end_date", loc)
	if err != nil {
		httperr.BadRequest(c, "invalid_end_date", "end_date must be YYYY-MM-DD.")
		return
	}

	resp, err := h.schedule.Execute(c.Request.Context(), usecase.ScheduleInput{
		ProfileID: profileID,
		StartDate: start,
		EndDate:   end,
	})
	if err != nil {
		httperr.Internal(c, "schedule_read_failed", "Could not build schedule.")
		return
	}

	httpresp.OK(c, resp)
}
