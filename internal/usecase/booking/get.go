package booking

import (
	"context"
	"time"

	domain "github.com/bookwell/scheduler-api/internal/domain/booking"
	"github.com/bookwell/scheduler-api/internal/httperr"
)

// ======================================================
// OUTPUT
// ======================================================

type ProfessionalSummary struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Bio       string `json:"bio,omitempty"`
}

type ClientSummary struct {
	Email string `json:"email"`
	Role  string `json:"role"`
}

type BookingDetailsResponse struct {
	BookingTime  time.Time           `json:"booking_time"`
	Professional ProfessionalSummary `json:"professional"`
	UserDetails  ClientSummary       `json:"user_details"`
	Status       string              `json:"status"`
}

// ======================================================
// USE CASE
// ======================================================

type Get struct {
	repo domain.Repository
}

func NewGet(repo domain.Repository) *Get {
	return &Get{repo: repo}
}

func (uc *Get) Execute(
	ctx context.Context,
	bookingID uint,
) (*BookingDetailsResponse, error) {

	ap, err := uc.repo.GetAppointmentWithParties(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if ap == nil {
		return nil, httperr.ErrBusiness("booking_not_found")
	}

	return &BookingDetailsResponse{
		BookingTime: ap.Time,
		Professional: ProfessionalSummary{
			FirstName: ap.Profile.FirstName,
			LastName:  ap.Profile.LastName,
			Bio:       ap.Profile.Bio,
		},
		UserDetails: ClientSummary{
			Email: ap.User.Email,
			Role:  ap.User.Role,
		},
		Status: ap.Status,
	}, nil
}
