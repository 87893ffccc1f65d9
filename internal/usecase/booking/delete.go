package booking

import (
	"context"

	"github.com/bookwell/scheduler-api/internal/audit"
	domain "github.com/bookwell/scheduler-api/internal/domain/booking"
	"github.com/bookwell/scheduler-api/internal/notify"
)

type DeleteResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// Delete physically removes the booking row. Cancellation keeps the row
// with status Cancelled; deletion frees the slot entirely. Both parties are
// told beforehand when their linkage resolves.
type Delete struct {
	repo   domain.Repository
	notify *notify.Policy
	audit  *audit.Dispatcher
}

func NewDelete(
	repo domain.Repository,
	policy *notify.Policy,
	audit *audit.Dispatcher,
) *Delete {
	return &Delete{
		repo:   repo,
		notify: policy,
		audit:  audit,
	}
}

func (uc *Delete) Execute(
	ctx context.Context,
	bookingID uint,
) (*DeleteResponse, error) {

	ap, err := uc.repo.GetAppointmentWithParties(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if ap == nil {
		return &DeleteResponse{
			Success: false,
			Message: "Booking does not exist.",
		}, nil
	}

	owner, err := uc.repo.GetProfileOwner(ctx, ap.ProfileID)
	if err != nil {
		return nil, err
	}

	if ap.UserID != 0 && owner != nil {
		if err := uc.notify.BookingDeleted(ctx, ap.UserID, owner.ID, ap.Time); err != nil {
			return nil, err
		}
	}

	if err := uc.repo.DeleteAppointment(ctx, bookingID); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &ap.UserID,
		Action:   "booking_deleted",
		Entity:   "appointment",
		EntityID: &ap.ID,
	})

	return &DeleteResponse{
		Success: true,
		Message: "Booking and notifications processed successfully.",
	}, nil
}
