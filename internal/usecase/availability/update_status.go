package availability

import (
	"context"
	"fmt"

	domain "github.com/bookwell/scheduler-api/internal/domain/availability"
)

// UpdateStatus is the quick-toggle path: update only, no professional
// existence check, and a missing status row is a plain failure result.
type UpdateStatus struct {
	repo domain.Repository
}

func NewUpdateStatus(repo domain.Repository) *UpdateStatus {
	return &UpdateStatus{repo: repo}
}

func (uc *UpdateStatus) Execute(
	ctx context.Context,
	profileID uint,
	isAvailable bool,
	currentActivity *string,
) (*StatusUpdateResponse, error) {

	echo := StatusResponse{IsAvailable: isAvailable, CurrentActivity: currentActivity}

	status, err := uc.repo.GetStatusByProfile(ctx, profileID)
	if err != nil {
		return nil, err
	}
	if status == nil {
		return &StatusUpdateResponse{
			Success:       false,
			Message:       fmt.Sprintf("No real-time status found for professional ID %d.", profileID),
			UpdatedStatus: echo,
		}, nil
	}

	status.IsAvailable = isAvailable
	status.CurrentActivity = currentActivity
	if err := uc.repo.UpdateStatus(ctx, status); err != nil {
		return nil, err
	}

	return &StatusUpdateResponse{
		Success:       true,
		Message:       "Availability status updated successfully.",
		UpdatedStatus: echo,
	}, nil
}
