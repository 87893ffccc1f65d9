package booking

import (
	"context"
	"time"

	"github.com/bookwell/scheduler-api/internal/models"
)

// Repository lookups return (nil, nil) when the row does not exist; errors
// mean the store itself failed.
type Repository interface {
	// -------- User / Profile lookups --------
	GetUser(
		ctx context.Context,
		id uint,
	) (*models.User, error)

	GetUserWithProfile(
		ctx context.Context,
		id uint,
	) (*models.User, error)

	// GetProfessionalProfile loads a Profile together with its
	// ProfessionalInfo, if any.
	GetProfessionalProfile(
		ctx context.Context,
		profileID uint,
	) (*models.Profile, error)

	// GetProfileOwner resolves the User that owns a Profile.
	GetProfileOwner(
		ctx context.Context,
		profileID uint,
	) (*models.User, error)

	// -------- Appointment (create / conflict) --------

	// CreateIfSlotFree inserts the appointment unless a Confirmed
	// appointment already exists for the same professional at exactly the
	// same timestamp. The conflict scan and the insert run in one
	// transaction with the conflicting rows locked.
	CreateIfSlotFree(
		ctx context.Context,
		ap *models.Appointment,
	) error

	CreateAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	// -------- Appointment (read / mutate) --------
	GetAppointment(
		ctx context.Context,
		id uint,
	) (*models.Appointment, error)

	GetAppointmentWithParties(
		ctx context.Context,
		id uint,
	) (*models.Appointment, error)

	UpdateAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	DeleteAppointment(
		ctx context.Context,
		id uint,
	) error

	// -------- Schedule --------
	ListAppointmentsForPeriod(
		ctx context.Context,
		profileID uint,
		start time.Time,
		end time.Time,
	) ([]models.Appointment, error)
}
