package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/bookwell/scheduler-api/internal/audit"
	"github.com/bookwell/scheduler-api/internal/httperr"
	"github.com/bookwell/scheduler-api/internal/httpresp"
	"github.com/bookwell/scheduler-api/internal/middleware"
	"github.com/bookwell/scheduler-api/internal/models"
)

// ======================================================
// HANDLER
// ======================================================

// FeedbackHandler is plain CRUD over gorm. Update and Delete are restricted
// to the feedback author or an admin; the caller identity always comes from
// the auth context, never from the request body.
type FeedbackHandler struct {
	db    *gorm.DB
	audit *audit.Dispatcher
}

func NewFeedbackHandler(db *gorm.DB, dispatcher *audit.Dispatcher) *FeedbackHandler {
	return &FeedbackHandler{db: db, audit: dispatcher}
}

// --------- Requests ---------

type createFeedbackRequest struct {
	ProfileID uint   `json:"profile_id" binding:"required"`
	Content   string `json:"content" binding:"required"`
	Rating    int    `json:"rating" binding:"required,min=1,max=5"`
}

type updateFeedbackRequest struct {
	Content *string `json:"content"`
	Rating  *int    `json:"rating"`
}

// --------- Handlers ---------

func (h *FeedbackHandler) Create(c *gin.Context) {
	callerID := c.MustGet(middleware.ContextUserID).(uint)

	var req createFeedbackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	// Feedback only attaches to bookable profiles.
	var pro models.ProfessionalInfo
	if err := h.db.Where("profile_id = ?", req.ProfileID).First(&pro).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			httperr.NotFound(c, "professional_not_found", "No professional found for the given profile.")
			return
		}
		httperr.Internal(c, "feedback_create_failed", "Could not create feedback.")
		return
	}

	fb := models.Feedback{
		UserID:    callerID,
		ProfileID: req.ProfileID,
		Content:   req.Content,
		Rating:    req.Rating,
	}
	if err := h.db.Create(&fb).Error; err != nil {
		httperr.Internal(c, "feedback_create_failed", "Could not create feedback.")
		return
	}

	h.audit.Dispatch(audit.Event{
		UserID:   &callerID,
		Action:   "feedback_created",
		Entity:   "feedback",
		EntityID: &fb.ID,
	})

	httpresp.Created(c, fb)
}

func (h *FeedbackHandler) Get(c *gin.Context) {
	feedbackID, ok := parseUintParam(c, "feedbackId")
	if !ok {
		httperr.BadRequest(c, "invalid_feedback_id", "Feedback id must be a positive integer.")
		return
	}

	var fb models.Feedback
	if err := h.db.First(&fb, feedbackID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			httperr.NotFound(c, "feedback_not_found", "Feedback not found.")
			return
		}
		httperr.Internal(c, "feedback_read_failed", "Could not read feedback.")
		return
	}

	httpresp.OK(c, fb)
}

func (h *FeedbackHandler) ListForProfessional(c *gin.Context) {
	profileID, ok := parseUintParam(c, "profileId")
	if !ok {
		httperr.BadRequest(c, "invalid_profile_id", "Profile id must be a positive integer.")
		return
	}

	var items []models.Feedback
	if err := h.db.
		Where("profile_id = ?", profileID).
		Order("created_at DESC").
		Find(&items).Error; err != nil {
		httperr.Internal(c, "feedback_list_failed", "Could not list feedback.")
		return
	}

	httpresp.List(c, items)
}

func (h *FeedbackHandler) Update(c *gin.Context) {
	feedbackID, ok := parseUintParam(c, "feedbackId")
	if !ok {
		httperr.BadRequest(c, "invalid_feedback_id", "Feedback id must be a positive integer.")
		return
	}

	var req updateFeedbackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}
	if req.Rating != nil && (*req.Rating < 1 || *req.Rating > 5) {
		httperr.BadRequest(c, "invalid_rating", "Rating must be between 1 and 5.")
		return
	}

	fb, allowed := h.loadOwned(c, feedbackID)
	if fb == nil {
		return
	}
	if !allowed {
		httperr.Forbidden(c, "not_feedback_author", "Only the author or an admin can modify this feedback.")
		return
	}

	if req.Content != nil {
		fb.Content = *req.Content
	}
	if req.Rating != nil {
		fb.Rating = *req.Rating
	}

	if err := h.db.Save(fb).Error; err != nil {
		httperr.Internal(c, "feedback_update_failed", "Could not update feedback.")
		return
	}

	callerID := c.MustGet(middleware.ContextUserID).(uint)
	h.audit.Dispatch(audit.Event{
		UserID:   &callerID,
		Action:   "feedback_updated",
		Entity:   "feedback",
		EntityID: &fb.ID,
	})

	httpresp.OK(c, fb)
}

func (h *FeedbackHandler) Delete(c *gin.Context) {
	feedbackID, ok := parseUintParam(c, "feedbackId")
	if !ok {
		httperr.BadRequest(c, "invalid_feedback_id", "Feedback id must be a positive integer.")
		return
	}

	fb, allowed := h.loadOwned(c, feedbackID)
	if fb == nil {
		return
	}
	if !allowed {
		httperr.Forbidden(c, "not_feedback_author", "Only the author or an admin can delete this feedback.")
		return
	}

	if err := h.db.Delete(fb).Error; err != nil {
		httperr.Internal(c, "feedback_delete_failed", "Could not delete feedback.")
		return
	}

	callerID := c.MustGet(middleware.ContextUserID).(uint)
	h.audit.Dispatch(audit.Event{
		UserID:   &callerID,
		Action:   "feedback_deleted",
		Entity:   "feedback",
		EntityID: &fb.ID,
	})

	httpresp.OK(c, gin.H{"success": true, "message": "Feedback deleted."})
}

// loadOwned fetches the feedback and answers whether the caller may modify
// it. A nil feedback means the response has already been written.
func (h *FeedbackHandler) loadOwned(c *gin.Context, feedbackID uint) (*models.Feedback, bool) {
	var fb models.Feedback
	if err := h.db.First(&fb, feedbackID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			httperr.NotFound(c, "feedback_not_found", "Feedback not found.")
			return nil, false
		}
		httperr.Internal(c, "feedback_read_failed", "Could not read feedback.")
		return nil, false
	}

	callerID := c.MustGet(middleware.ContextUserID).(uint)
	role, _ := c.Get(middleware.ContextUserRole)

	return &fb, fb.UserID == callerID || role == models.RoleAdmin
}
