package booking

import (
	"time"

	"github.com/bookwell/scheduler-api/internal/models"
)

// ===============================
// Domain Actions
// ===============================

func Cancel(ap *models.Appointment) error {
	if err := CanCancel(Status(ap.Status)); err != nil {
		return err
	}

	ap.Status = string(StatusCancelled)
	return nil
}

// Transition moves an appointment to newStatus, enforcing the transition
// table, and optionally reschedules it in the same write.
func Transition(ap *models.Appointment, newStatus Status, newTime *time.Time) error {
	if err := CanTransition(Status(ap.Status), newStatus); err != nil {
		return err
	}

	ap.Status = string(newStatus)
	if newTime != nil {
		ap.Time = *newTime
	}
	return nil
}
