package booking

import "github.com/bookwell/scheduler-api/internal/httperr"

// ===============================
// Appointment Status
// ===============================

type Status string

const (
	StatusPending   Status = "Pending"
	StatusConfirmed Status = "Confirmed"
	StatusCompleted Status = "Completed"
	StatusCancelled Status = "Cancelled"
)

func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

// IsTerminal reports whether no further transitions are permitted.
func (s Status) IsTerminal() bool {
	return s == StatusCompleted || s == StatusCancelled
}

// ===============================
// Transition table
// ===============================

// allowedTransitions: Pending may be confirmed or cancelled, Confirmed may be
// completed or cancelled. Completed and Cancelled are terminal.
var allowedTransitions = map[Status][]Status{
	StatusPending:   {StatusConfirmed, StatusCancelled},
	StatusConfirmed: {StatusCompleted, StatusCancelled},
}

func CanTransition(from, to Status) error {
	for _, next := range allowedTransitions[from] {
		if next == to {
			return nil
		}
	}
	return httperr.ErrBusiness("invalid_state")
}

// CanCancel reports whether an appointment may still be cancelled.
func CanCancel(current Status) error {
	if current == StatusCancelled {
		return httperr.ErrBusiness("already_cancelled")
	}
	return CanTransition(current, StatusCancelled)
}

// InitialStatus is the persisted status for a newly created booking.
func InitialStatus() Status {
	return StatusPending
}
