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

type UserHandler struct {
	db    *gorm.DB
	audit *audit.Dispatcher
}

func NewUserHandler(db *gorm.DB, dispatcher *audit.Dispatcher) *UserHandler {
	return &UserHandler{db: db, audit: dispatcher}
}

// --------- Requests ---------

type updateRoleRequest struct {
	Role string `json:"role" binding:"required"`
}

type deleteUserRequest struct {
	Confirm bool `json:"confirm"`
}

// --------- Handlers ---------

func (h *UserHandler) GetDetails(c *gin.Context) {
	userID, ok := parseUintParam(c, "userId")
	if !ok {
		httperr.BadRequest(c, "invalid_user_id", "User id must be a positive integer.")
		return
	}

	var user models.User
	if err := h.db.
		Preload("Profile").
		Preload("Profile.ProfessionalInfo").
		First(&user, userID).Error; err != nil {

		if errors.Is(err, gorm.ErrRecordNotFound) {
			httperr.NotFound(c, "user_not_found", "User not found.")
			return
		}
		httperr.Internal(c, "user_read_failed", "Could not read user.")
		return
	}

	httpresp.OK(c, user)
}

func (h *UserHandler) UpdateRole(c *gin.Context) {
	userID, ok := parseUintParam(c, "userId")
	if !ok {
		httperr.BadRequest(c, "invalid_user_id", "User id must be a positive integer.")
		return
	}

	var req updateRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	switch req.Role {
	case models.RoleUser, models.RoleProfessional, models.RoleAdmin:
	default:
		httperr.BadRequest(c, "invalid_role", "Role must be User, Professional or Admin.")
		return
	}

	res := h.db.Model(&models.User{}).Where("id = ?", userID).Update("role", req.Role)
	if res.Error != nil {
		httperr.Internal(c, "role_update_failed", "Could not update role.")
		return
	}
	if res.RowsAffected == 0 {
		httperr.NotFound(c, "user_not_found", "User not found.")
		return
	}

	callerID := c.MustGet(middleware.ContextUserID).(uint)
	h.audit.Dispatch(audit.Event{
		UserID:   &callerID,
		Action:   "user_role_updated",
		Entity:   "user",
		EntityID: &userID,
		Metadata: map[string]string{"new_role": req.Role},
	})

	httpresp.OK(c, gin.H{"success": true, "message": "Role updated."})
}

// Delete removes a user and the rows hanging off it. The confirm flag is a
// deliberate speed bump on a destructive admin action.
func (h *UserHandler) Delete(c *gin.Context) {
	userID, ok := parseUintParam(c, "userId")
	if !ok {
		httperr.BadRequest(c, "invalid_user_id", "User id must be a positive integer.")
		return
	}

	var req deleteUserRequest
	if err := c.ShouldBindJSON(&req); err != nil || !req.Confirm {
		httperr.BadRequest(c, "confirmation_required", "Set confirm=true to delete a user.")
		return
	}

	err := h.db.Transaction(func(tx *gorm.DB) error {
		var profile models.Profile
		if err := tx.Where("user_id = ?", userID).First(&profile).Error; err == nil {
			var pro models.ProfessionalInfo
			if err := tx.Where("profile_id = ?", profile.ID).First(&pro).Error; err == nil {
				if err := tx.Where("professional_info_id = ?", pro.ID).
					Delete(&models.RealTimeStatus{}).Error; err != nil {
					return err
				}
				if err := tx.Delete(&pro).Error; err != nil {
					return err
				}
			}
			if err := tx.Where("profile_id = ?", profile.ID).
				Delete(&models.Feedback{}).Error; err != nil {
				return err
			}
			if err := tx.Delete(&profile).Error; err != nil {
				return err
			}
		}

		if err := tx.Where("user_id = ?", userID).Delete(&models.Appointment{}).Error; err != nil {
			return err
		}
		if err := tx.Where("user_id = ?", userID).Delete(&models.Feedback{}).Error; err != nil {
			return err
		}
		if err := tx.Where("user_id = ?", userID).Delete(&models.Notification{}).Error; err != nil {
			return err
		}

		res := tx.Delete(&models.User{}, userID)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			httperr.NotFound(c, "user_not_found", "User not found.")
			return
		}
		httperr.Internal(c, "user_delete_failed", "Could not delete user.")
		return
	}

	callerID := c.MustGet(middleware.ContextUserID).(uint)
	h.audit.Dispatch(audit.Event{
		UserID:   &callerID,
		Action:   "user_deleted",
		Entity:   "user",
		EntityID: &userID,
	})

	httpresp.OK(c, gin.H{"success": true, "message": "User deleted."})
}
