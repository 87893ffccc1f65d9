package availability

import (
	"context"
	"time"

	"github.com/bookwell/scheduler-api/internal/models"
)

// Repository lookups return (nil, nil) when the row does not exist; errors
// mean the store itself failed.
type Repository interface {
	// -------- Professional lookups --------
	GetProfessionalByProfile(
		ctx context.Context,
		profileID uint,
	) (*models.ProfessionalInfo, error)

	// -------- Real-time status --------
	GetStatus(
		ctx context.Context,
		professionalInfoID uint,
	) (*models.RealTimeStatus, error)

	// GetStatusByProfile resolves Profile -> ProfessionalInfo ->
	// RealTimeStatus in one query.
	GetStatusByProfile(
		ctx context.Context,
		profileID uint,
	) (*models.RealTimeStatus, error)

	CreateStatus(
		ctx context.Context,
		st *models.RealTimeStatus,
	) error

	UpdateStatus(
		ctx context.Context,
		st *models.RealTimeStatus,
	) error

	DeleteStatusesForProfessional(
		ctx context.Context,
		professionalInfoID uint,
	) error

	ResetProfessionalAvailability(
		ctx context.Context,
		professionalInfoID uint,
	) error

	// ListStatuses returns every manual status together with its
	// ProfessionalInfo, Profile and owning user linkage.
	ListStatuses(
		ctx context.Context,
	) ([]models.RealTimeStatus, error)

	// -------- Calendar --------

	// ListUpcomingAppointments returns non-cancelled appointments for the
	// professional with time >= from, ascending.
	ListUpcomingAppointments(
		ctx context.Context,
		profileID uint,
		from time.Time,
	) ([]models.Appointment, error)

	// GetProfileForProfessional loads the Profile that owns a
	// ProfessionalInfo row.
	GetProfileForProfessional(
		ctx context.Context,
		professionalInfoID uint,
	) (*models.Profile, error)
}
