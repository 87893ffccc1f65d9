package booking

import (
	"context"
	"time"

	"github.com/bookwell/scheduler-api/internal/audit"
	domain "github.com/bookwell/scheduler-api/internal/domain/booking"
	"github.com/bookwell/scheduler-api/internal/httperr"
	"github.com/bookwell/scheduler-api/internal/models"
	"github.com/bookwell/scheduler-api/internal/notify"
)

// ======================================================
// INPUT / OUTPUT
// ======================================================

type CreateInput struct {
	UserID    uint
	ProfileID uint
	Time      time.Time
}

type CreateResponse struct {
	Success       bool   `json:"success"`
	Message       string `json:"message"`
	AppointmentID uint   `json:"appointment_id,omitempty"`

	// Status is what was persisted (Pending). DisplayStatus is what the
	// client is told (Confirmed). Kept as separate fields so the mismatch
	// stays visible.
	Status        string `json:"status,omitempty"`
	DisplayStatus string `json:"display_status,omitempty"`
}

// ======================================================
// USE CASE
// ======================================================

type Create struct {
	repo   domain.Repository
	notify *notify.Policy
	audit  *audit.Dispatcher
}

func NewCreate(
	repo domain.Repository,
	policy *notify.Policy,
	audit *audit.Dispatcher,
) *Create {
	return &Create{
		repo:   repo,
		notify: policy,
		audit:  audit,
	}
}

func (uc *Create) Execute(
	ctx context.Context,
	in CreateInput,
) (*CreateResponse, error) {

	// 1. Both parties must exist and the profile must be bookable.
	user, err := uc.repo.GetUser(ctx, in.UserID)
	if err != nil {
		return nil, err
	}

	profile, err := uc.repo.GetProfessionalProfile(ctx, in.ProfileID)
	if err != nil {
		return nil, err
	}

	if user == nil || profile == nil || profile.ProfessionalInfo == nil {
		return &CreateResponse{
			Success: false,
			Message: "User or professional not found",
		}, nil
	}

	// 2. Conflict check + insert in one locked transaction. A Confirmed
	// appointment at exactly the requested timestamp blocks the slot.
	ap := &models.Appointment{
		UserID:    in.UserID,
		ProfileID: in.ProfileID,
		Time:      in.Time,
		Status:    string(domain.InitialStatus()),
	}

	if err := uc.repo.CreateIfSlotFree(ctx, ap); err != nil {
		if httperr.IsBusiness(err, "no_available_slot") || httperr.IsExclusionConflict(err) {
			return &CreateResponse{
				Success: false,
				Message: "No available slots for the requested time",
			}, nil
		}
		return nil, err
	}

	// 3. Side effects.
	if err := uc.notify.BookingCreated(ctx, in.UserID, in.ProfileID, in.Time); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &in.UserID,
		Action:   "booking_created",
		Entity:   "appointment",
		EntityID: &ap.ID,
	})

	return &CreateResponse{
		Success:       true,
		Message:       "Booking successfully created.",
		AppointmentID: ap.ID,
		Status:        ap.Status,
		DisplayStatus: string(domain.StatusConfirmed),
	}, nil
}
