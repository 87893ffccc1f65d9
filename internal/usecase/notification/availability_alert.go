package notification

import (
	"context"

	availdomain "github.com/bookwell/scheduler-api/internal/domain/availability"
	bookingdomain "github.com/bookwell/scheduler-api/internal/domain/booking"
	"github.com/bookwell/scheduler-api/internal/notify"
)

type AvailabilityAlertResponse struct {
	Message string `json:"message"`
	Status  string `json:"status"`
}

// AvailabilityAlert tells a user that a professional's availability flipped.
// When the stored manual status disagrees with the reported value it is
// brought in line first.
type AvailabilityAlert struct {
	users  bookingdomain.Repository
	avail  availdomain.Repository
	notify *notify.Policy
}

func NewAvailabilityAlert(
	users bookingdomain.Repository,
	avail availdomain.Repository,
	policy *notify.Policy,
) *AvailabilityAlert {
	return &AvailabilityAlert{
		users:  users,
		avail:  avail,
		notify: policy,
	}
}

func (uc *AvailabilityAlert) Execute(
	ctx context.Context,
	profileID uint,
	userID uint,
	newAvailability bool,
) (*AvailabilityAlertResponse, error) {

	user, err := uc.users.GetUserWithProfile(ctx, userID)
	if err != nil {
		return nil, err
	}

	pro, err := uc.avail.GetProfessionalByProfile(ctx, profileID)
	if err != nil {
		return nil, err
	}

	if user == nil || pro == nil {
		return &AvailabilityAlertResponse{
			Message: "Notification failed: User or professional not found.",
			Status:  "failed",
		}, nil
	}
	if user.Profile == nil {
		return &AvailabilityAlertResponse{
			Message: "Notification failed: User profile not found.",
			Status:  "failed",
		}, nil
	}

	status, err := uc.avail.GetStatus(ctx, pro.ID)
	if err != nil {
		return nil, err
	}
	if status != nil && status.IsAvailable != newAvailability {
		status.IsAvailable = newAvailability
		if err := uc.avail.UpdateStatus(ctx, status); err != nil {
			return nil, err
		}
	}

	if err := uc.notify.AvailabilityChanged(
		ctx, userID,
		user.Profile.FirstName, user.Profile.LastName,
		newAvailability,
	); err != nil {
		return nil, err
	}

	return &AvailabilityAlertResponse{
		Message: "Notification sent successfully.",
		Status:  "success",
	}, nil
}
