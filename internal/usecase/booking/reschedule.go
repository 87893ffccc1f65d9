package booking

import (
	"context"
	"time"

	domain "github.com/bookwell/scheduler-api/internal/domain/booking"
	"github.com/bookwell/scheduler-api/internal/models"
)

// ======================================================
// INPUT / OUTPUT
// ======================================================

type RescheduleInput struct {
	AppointmentID uint
	NewTime       time.Time
	NewProfileID  *uint
	Notes         *string
}

type RescheduleResponse struct {
	Success            bool                `json:"success"`
	UpdatedAppointment *models.Appointment `json:"updated_appointment,omitempty"`
}

// ======================================================
// USE CASE
// ======================================================

// Reschedule is a partial update: the time is always refreshed, professional
// and notes only when supplied. Status is untouched and the new slot is NOT
// re-checked for conflicts.
type Reschedule struct {
	repo domain.Repository
}

func NewReschedule(repo domain.Repository) *Reschedule {
	return &Reschedule{repo: repo}
}

func (uc *Reschedule) Execute(
	ctx context.Context,
	in RescheduleInput,
) (*RescheduleResponse, error) {

	ap, err := uc.repo.GetAppointment(ctx, in.AppointmentID)
	if err != nil {
		return nil, err
	}
	if ap == nil {
		return &RescheduleResponse{Success: false}, nil
	}

	ap.Time = in.NewTime
	if in.NewProfileID != nil {
		ap.ProfileID = *in.NewProfileID
	}
	if in.Notes != nil {
		ap.Notes = *in.Notes
	}

	if err := uc.repo.UpdateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	return &RescheduleResponse{
		Success:            true,
		UpdatedAppointment: ap,
	}, nil
}
