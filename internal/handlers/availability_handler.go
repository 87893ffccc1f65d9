package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/bookwell/scheduler-api/internal/cache"
	"github.com/bookwell/scheduler-api/internal/httperr"
	"github.com/bookwell/scheduler-api/internal/httpresp"
	"github.com/bookwell/scheduler-api/internal/usecase/availability"
)

// ======================================================
// HANDLER
// ======================================================

const statusCacheTTL = 5 * time.Second

type AvailabilityHandler struct {
	checkCurrent *availability.CheckCurrent
	getStatus    *availability.GetStatus
	setStatus    *availability.SetStatus
	updateStatus *availability.UpdateStatus
	bulkUpdate   *availability.BulkUpdate
	deleteStatus *availability.DeleteStatus
	listAll      *availability.ListAll

	cache cache.Cache
}

func NewAvailabilityHandler(
	checkCurrent *availability.CheckCurrent,
	getStatus *availability.GetStatus,
	setStatus *availability.SetStatus,
	updateStatus *availability.UpdateStatus,
	bulkUpdate *availability.BulkUpdate,
	deleteStatus *availability.DeleteStatus,
	listAll *availability.ListAll,
	c cache.Cache,
) *AvailabilityHandler {
	return &AvailabilityHandler{
		checkCurrent: checkCurrent,
		getStatus:    getStatus,
		setStatus:    setStatus,
		updateStatus: updateStatus,
		bulkUpdate:   bulkUpdate,
		deleteStatus: deleteStatus,
		listAll:      listAll,
		cache:        c,
	}
}

// --------- Requests ---------

type statusWriteRequest struct {
	IsAvailable     bool    `json:"is_available"`
	CurrentActivity *string `json:"current_activity"`
}

type bulkUpdateRequest struct {
	Updates []availability.StatusUpdate `json:"updates" binding:"required"`
}

// --------- Reads ---------

func (h *AvailabilityHandler) CheckCurrent(c *gin.Context) {
	profileID, ok := parseUintParam(c, "profileId")
	if !ok {
		httperr.BadRequest(c, "invalid_profile_id", "Profile id must be a positive integer.")
		return
	}

	resp, err := h.checkCurrent.Execute(c.Request.Context(), profileID)
	if err != nil {
		httperr.Internal(c, "availability_check_failed", "Could not determine availability.")
		return
	}

	httpresp.OK(c, resp)
}

func (h *AvailabilityHandler) GetStatus(c *gin.Context) {
	profileID, ok := parseUintParam(c, "profileId")
	if !ok {
		httperr.BadRequest(c, "invalid_profile_id", "Profile id must be a positive integer.")
		return
	}

	key := statusCacheKey(profileID)
	if cached, hit, err := h.cache.Get(c.Request.Context(), key); err == nil && hit {
		c.Data(200, "application/json; charset=utf-8", cached)
		return
	}

	resp, err := h.getStatus.Execute(c.Request.Context(), profileID)
	if err != nil {
		httperr.Internal(c, "status_read_failed", "Could not read availability status.")
		return
	}

	if body, err := json.Marshal(resp); err == nil {
		_ = h.cache.Set(c.Request.Context(), key, body, statusCacheTTL)
	}

	httpresp.OK(c, resp)
}

func (h *AvailabilityHandler) ListAll(c *gin.Context) {
	items, err := h.listAll.Execute(c.Request.Context())
	if err != nil {
		httperr.Internal(c, "availability_list_failed", "Could not list availabilities.")
		return
	}

	httpresp.List(c, items)
}

// --------- Writes ---------

func (h *AvailabilityHandler) SetStatus(c *gin.Context) {
	profileID, ok := parseUintParam(c, "profileId")
	if !ok {
		httperr.BadRequest(c, "invalid_profile_id", "Profile id must be a positive integer.")
		return
	}

	var req statusWriteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	resp, err := h.setStatus.Execute(c.Request.Context(), profileID, req.IsAvailable, req.CurrentActivity)
	if err != nil {
		httperr.Internal(c, "status_write_failed", "Could not update availability status.")
		return
	}

	h.invalidate(c.Request.Context(), profileID)
	httpresp.OK(c, resp)
}

func (h *AvailabilityHandler) UpdateStatus(c *gin.Context) {
	profileID, ok := parseUintParam(c, "profileId")
	if !ok {
		httperr.BadRequest(c, "invalid_profile_id", "Profile id must be a positive integer.")
		return
	}

	var req statusWriteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	resp, err := h.updateStatus.Execute(c.Request.Context(), profileID, req.IsAvailable, req.CurrentActivity)
	if err != nil {
		httperr.Internal(c, "status_write_failed", "Could not update availability status.")
		return
	}

	h.invalidate(c.Request.Context(), profileID)
	httpresp.OK(c, resp)
}

func (h *AvailabilityHandler) BulkUpdate(c *gin.Context) {
	var req bulkUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	resp, err := h.bulkUpdate.Execute(c.Request.Context(), req.Updates)
	if err != nil {
		httperr.Internal(c, "bulk_update_failed", "Could not apply bulk update.")
		return
	}

	for _, up := range req.Updates {
		h.invalidate(c.Request.Context(), up.ProfileID)
	}

	httpresp.OK(c, resp)
}

func (h *AvailabilityHandler) DeleteStatus(c *gin.Context) {
	profileID, ok := parseUintParam(c, "profileId")
	if !ok {
		httperr.BadRequest(c, "invalid_profile_id", "Profile id must be a positive integer.")
		return
	}

	resp, err := h.deleteStatus.Execute(c.Request.Context(), profileID)
	if err != nil {
		httperr.Internal(c, "status_delete_failed", "Could not remove availability status.")
		return
	}

	h.invalidate(c.Request.Context(), profileID)
	httpresp.OK(c, resp)
}

// --------- Cache ---------

func statusCacheKey(profileID uint) string {
	return fmt.Sprintf("availability:status:%d", profileID)
}

func (h *AvailabilityHandler) invalidate(ctx context.Context, profileID uint) {
	_ = h.cache.Delete(ctx, statusCacheKey(profileID))
}
