package booking

import (
	"context"

	"github.com/bookwell/scheduler-api/internal/audit"
	domain "github.com/bookwell/scheduler-api/internal/domain/booking"
	"github.com/bookwell/scheduler-api/internal/httperr"
)

type CancelResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// Cancel is the narrow cancellation path: idempotence-checked, no
// notification side effect (ChangeStatus is the notifying path).
type Cancel struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewCancel(repo domain.Repository, audit *audit.Dispatcher) *Cancel {
	return &Cancel{
		repo:  repo,
		audit: audit,
	}
}

func (uc *Cancel) Execute(
	ctx context.Context,
	appointmentID uint,
) (*CancelResponse, error) {

	ap, err := uc.repo.GetAppointment(ctx, appointmentID)
	if err != nil {
		return nil, err
	}
	if ap == nil {
		return &CancelResponse{
			Success: false,
			Message: "No appointment found with the provided ID.",
		}, nil
	}

	if err := domain.Cancel(ap); err != nil {
		if httperr.IsBusiness(err, "already_cancelled") {
			return &CancelResponse{
				Success: false,
				Message: "The appointment is already canceled.",
			}, nil
		}
		return &CancelResponse{
			Success: false,
			Message: "The appointment can no longer be canceled.",
		}, nil
	}

	if err := uc.repo.UpdateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &ap.UserID,
		Action:   "appointment_cancelled",
		Entity:   "appointment",
		EntityID: &ap.ID,
	})

	return &CancelResponse{
		Success: true,
		Message: "Appointment canceled successfully.",
	}, nil
}
