package notification

import (
	"context"

	domain "github.com/bookwell/scheduler-api/internal/domain/booking"
	"github.com/bookwell/scheduler-api/internal/notify"
)

type BookingConfirmationResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// BookingConfirmation sends the post-booking confirmation message with the
// professional's name and the slot time.
type BookingConfirmation struct {
	repo   domain.Repository
	notify *notify.Policy
}

func NewBookingConfirmation(
	repo domain.Repository,
	policy *notify.Policy,
) *BookingConfirmation {
	return &BookingConfirmation{
		repo:   repo,
		notify: policy,
	}
}

func (uc *BookingConfirmation) Execute(
	ctx context.Context,
	bookingID uint,
	userID uint,
) (*BookingConfirmationResponse, error) {

	ap, err := uc.repo.GetAppointmentWithParties(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if ap == nil {
		return &BookingConfirmationResponse{
			Success: false,
			Message: "Booking not found.",
		}, nil
	}
	if ap.Profile.ID == 0 {
		return &BookingConfirmationResponse{
			Success: false,
			Message: "Profile information for the professional is missing.",
		}, nil
	}

	user, err := uc.repo.GetUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return &BookingConfirmationResponse{
			Success: false,
			Message: "User not found.",
		}, nil
	}

	name := ap.Profile.FirstName + " " + ap.Profile.LastName
	msg, err := uc.notify.BookingConfirmed(ctx, userID, name, ap.Time)
	if err != nil {
		return nil, err
	}

	return &BookingConfirmationResponse{
		Success: true,
		Message: msg,
	}, nil
}
