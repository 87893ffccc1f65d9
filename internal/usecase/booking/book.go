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

type BookInput struct {
	UserID    uint
	ProfileID uint
	Time      time.Time
	Notes     string
}

type AppointmentDetails struct {
	AppointmentID    uint      `json:"appointment_id"`
	Time             time.Time `json:"time"`
	ProfessionalName string    `json:"professional_name"`
	UserName         string    `json:"user_name"`
	Status           string    `json:"status"`
}

type BookResponse struct {
	Success            bool                `json:"success"`
	Message            string              `json:"message"`
	AppointmentDetails *AppointmentDetails `json:"appointment_details,omitempty"`
}

// ======================================================
// USE CASE
// ======================================================

// Book is the second booking entry path. It validates that the client's own
// profile is complete and returns display names for both parties. Unlike
// Create it performs no slot conflict check and emits no notification.
type Book struct {
	repo domain.Repository
}

func NewBook(repo domain.Repository) *Book {
	return &Book{repo: repo}
}

func (uc *Book) Execute(
	ctx context.Context,
	in BookInput,
) (*BookResponse, error) {

	user, err := uc.repo.GetUserWithProfile(ctx, in.UserID)
	if err != nil {
		return nil, err
	}

	profile, err := uc.repo.GetProfessionalProfile(ctx, in.ProfileID)
	if err != nil {
		return nil, err
	}

	if user == nil || profile == nil {
		return &BookResponse{
			Success: false,
			Message: "User or Professional not found.",
		}, nil
	}

	if user.Profile == nil {
		return &BookResponse{
			Success: false,
			Message: "User's profile information is incomplete.",
		}, nil
	}

	ap := &models.Appointment{
		UserID:    in.UserID,
		ProfileID: in.ProfileID,
		Time:      in.Time,
		Status:    string(domain.InitialStatus()),
		Notes:     in.Notes,
	}

	if err := uc.repo.CreateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	return &BookResponse{
		Success: true,
		Message: "Appointment booked successfully.",
		AppointmentDetails: &AppointmentDetails{
			AppointmentID:    ap.ID,
			Time:             ap.Time,
			ProfessionalName: profile.FirstName + " " + profile.LastName,
			UserName:         user.Profile.FirstName + " " + user.Profile.LastName,
			Status:           ap.Status,
		},
	}, nil
}
