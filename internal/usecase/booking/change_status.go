package booking

import (
	"context"
	"fmt"
	"time"

	"github.com/bookwell/scheduler-api/internal/audit"
	domain "github.com/bookwell/scheduler-api/internal/domain/booking"
	"github.com/bookwell/scheduler-api/internal/models"
	"github.com/bookwell/scheduler-api/internal/notify"
)

// ======================================================
// INPUT / OUTPUT
// ======================================================

type ChangeStatusInput struct {
	BookingID uint
	NewStatus domain.Status
	NewTime   *time.Time
}

type ChangeStatusResponse struct {
	Success        bool                `json:"success"`
	Message        string              `json:"message"`
	UpdatedBooking *models.Appointment `json:"updated_booking,omitempty"`
}

// ======================================================
// USE CASE
// ======================================================

// ChangeStatus drives confirm/complete/cancel transitions. The transition
// table is enforced; on success both parties are notified, unless the
// professional's owning user cannot be resolved, in which case the
// notifications are skipped and the status change stands.
type ChangeStatus struct {
	repo   domain.Repository
	notify *notify.Policy
	audit  *audit.Dispatcher
}

func NewChangeStatus(
	repo domain.Repository,
	policy *notify.Policy,
	audit *audit.Dispatcher,
) *ChangeStatus {
	return &ChangeStatus{
		repo:   repo,
		notify: policy,
		audit:  audit,
	}
}

func (uc *ChangeStatus) Execute(
	ctx context.Context,
	in ChangeStatusInput,
) (*ChangeStatusResponse, error) {

	if !in.NewStatus.Valid() {
		return &ChangeStatusResponse{
			Success: false,
			Message: fmt.Sprintf("Invalid booking status %q.", in.NewStatus),
		}, nil
	}

	ap, err := uc.repo.GetAppointment(ctx, in.BookingID)
	if err != nil {
		return nil, err
	}
	if ap == nil {
		return &ChangeStatusResponse{
			Success: false,
			Message: fmt.Sprintf("No booking found with ID %d", in.BookingID),
		}, nil
	}

	from := domain.Status(ap.Status)
	if err := domain.Transition(ap, in.NewStatus, in.NewTime); err != nil {
		return &ChangeStatusResponse{
			Success: false,
			Message: fmt.Sprintf("Cannot change booking status from %s to %s.", from, in.NewStatus),
		}, nil
	}

	if err := uc.repo.UpdateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	// Notify both parties; skipped silently when the professional's user
	// linkage is broken.
	owner, err := uc.repo.GetProfileOwner(ctx, ap.ProfileID)
	if err != nil {
		return nil, err
	}
	if owner != nil {
		if err := uc.notify.StatusChanged(ctx, ap.UserID, owner.ID, ap.ID, ap.Status); err != nil {
			return nil, err
		}
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &ap.UserID,
		Action:   "booking_status_changed",
		Entity:   "appointment",
		EntityID: &ap.ID,
		Metadata: map[string]any{"from": string(from), "to": ap.Status},
	})

	return &ChangeStatusResponse{
		Success:        true,
		Message:        "Booking updated successfully",
		UpdatedBooking: ap,
	}, nil
}
