package booking

import (
	"context"
	"time"

	domain "github.com/bookwell/scheduler-api/internal/domain/booking"
)

// Slot length a booked appointment is assumed to occupy in schedule views.
// Deliberately distinct from the availability engine's 30-minute turnover.
const scheduleSlotLength = time.Hour

// ======================================================
// INPUT / OUTPUT
// ======================================================

type ScheduleInput struct {
	ProfileID uint
	StartDate *time.Time
	EndDate   *time.Time
}

type ScheduleSlot struct {
	StartTime time.Time `json:"start_time"`
	EndTime   time.Time `json:"end_time"`
	IsBooked  bool      `json:"is_booked"`
	Status    string    `json:"status"`
}

type ScheduleResponse struct {
	ProfileID uint           `json:"profile_id"`
	Slots     []ScheduleSlot `json:"slots"`
}

// ======================================================
// USE CASE
// ======================================================

// Schedule builds the booked-slot view for a professional over a day range.
// Free gaps are not synthesized; callers infer free time as the complement.
type Schedule struct {
	repo domain.Repository
	now  func() time.Time
}

func NewSchedule(repo domain.Repository) *Schedule {
	return &Schedule{
		repo: repo,
		now:  time.Now,
	}
}

func (uc *Schedule) Execute(
	ctx context.Context,
	in ScheduleInput,
) (*ScheduleResponse, error) {

	startDate := in.StartDate
	if startDate == nil {
		today := uc.now()
		startDate = &today
	}
	endDate := in.EndDate
	if endDate == nil {
		endDate = startDate
	}

	start := startOfDay(*startDate)
	end := endOfDay(*endDate)

	appointments, err := uc.repo.ListAppointmentsForPeriod(ctx, in.ProfileID, start, end)
	if err != nil {
		return nil, err
	}

	slots := make([]ScheduleSlot, 0, len(appointments))
	for _, ap := range appointments {
		slots = append(slots, ScheduleSlot{
			StartTime: ap.Time,
			EndTime:   ap.Time.Add(scheduleSlotLength),
			IsBooked:  true,
			Status:    ap.Status,
		})
	}

	return &ScheduleResponse{
		ProfileID: in.ProfileID,
		Slots:     slots,
	}, nil
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func endOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, int(time.Second-time.Nanosecond), t.Location())
}
