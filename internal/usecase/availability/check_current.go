package availability

import (
	"context"
	"fmt"
	"time"

	domain "github.com/bookwell/scheduler-api/internal/domain/availability"
)

// Turnover assumed after an in-progress appointment starts.
const appointmentTurnover = 30 * time.Minute

// ======================================================
// OUTPUT
// ======================================================

type CurrentAvailabilityResponse struct {
	IsAvailable       bool       `json:"is_available"`
	NextAvailableTime *time.Time `json:"next_available_time,omitempty"`
	Message           string     `json:"message,omitempty"`
}

// ======================================================
// USE CASE
// ======================================================

// CheckCurrent answers "is this professional available right now" by
// combining the manual status override with the appointment calendar.
// A missing status row means the calendar decides.
type CheckCurrent struct {
	repo domain.Repository
	now  func() time.Time
}

func NewCheckCurrent(repo domain.Repository) *CheckCurrent {
	return &CheckCurrent{
		repo: repo,
		now:  time.Now,
	}
}

func (uc *CheckCurrent) Execute(
	ctx context.Context,
	profileID uint,
) (*CurrentAvailabilityResponse, error) {

	// 1. Manual override always wins when it says unavailable.
	status, err := uc.repo.GetStatusByProfile(ctx, profileID)
	if err != nil {
		return nil, err
	}
	if status != nil && !status.IsAvailable {
		activity := ""
		if status.CurrentActivity != nil {
			activity = *status.CurrentActivity
		}
		return &CurrentAvailabilityResponse{
			IsAvailable: false,
			Message:     fmt.Sprintf("Currently not available due to: %s.", activity),
		}, nil
	}

	// 2. Calendar check: non-cancelled appointments from now on, ascending.
	now := uc.now()
	appointments, err := uc.repo.ListUpcomingAppointments(ctx, profileID, now)
	if err != nil {
		return nil, err
	}

	if len(appointments) == 0 {
		return &CurrentAvailabilityResponse{
			IsAvailable: true,
			Message:     "Professional is currently available.",
		}, nil
	}

	first := appointments[0]
	if !first.Time.After(now) {
		next := first.Time.Add(appointmentTurnover)
		return &CurrentAvailabilityResponse{
			IsAvailable:       false,
			NextAvailableTime: &next,
			Message:           "Currently in an appointment.",
		}, nil
	}

	next := first.Time
	return &CurrentAvailabilityResponse{
		IsAvailable:       false,
		NextAvailableTime: &next,
		Message:           fmt.Sprintf("Next available at %s.", next.Format("2006-01-02 15:04")),
	}, nil
}
