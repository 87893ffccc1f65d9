package availability

import (
	"context"
	"fmt"

	domain "github.com/bookwell/scheduler-api/internal/domain/availability"
	"github.com/bookwell/scheduler-api/internal/models"
)

type StatusUpdateResponse struct {
	Success       bool           `json:"success"`
	Message       string         `json:"message"`
	UpdatedStatus StatusResponse `json:"updated_status"`
}

// SetStatus is the onboarding upsert: it validates that the profile really
// belongs to a professional, then creates or updates the status row.
type SetStatus struct {
	repo domain.Repository
}

func NewSetStatus(repo domain.Repository) *SetStatus {
	return &SetStatus{repo: repo}
}

func (uc *SetStatus) Execute(
	ctx context.Context,
	profileID uint,
	isAvailable bool,
	currentActivity *string,
) (*StatusUpdateResponse, error) {

	echo := StatusResponse{IsAvailable: isAvailable, CurrentActivity: currentActivity}

	pro, err := uc.repo.GetProfessionalByProfile(ctx, profileID)
	if err != nil {
		return nil, err
	}
	if pro == nil {
		return &StatusUpdateResponse{
			Success:       false,
			Message:       fmt.Sprintf("No professional found for profile ID %d.", profileID),
			UpdatedStatus: echo,
		}, nil
	}

	status, err := uc.repo.GetStatus(ctx, pro.ID)
	if err != nil {
		return nil, err
	}

	if status == nil {
		status = &models.RealTimeStatus{
			ProfessionalInfoID: pro.ID,
			IsAvailable:        isAvailable,
			CurrentActivity:    currentActivity,
		}
		if err := uc.repo.CreateStatus(ctx, status); err != nil {
			return nil, err
		}
	} else {
		status.IsAvailable = isAvailable
		status.CurrentActivity = currentActivity
		if err := uc.repo.UpdateStatus(ctx, status); err != nil {
			return nil, err
		}
	}

	return &StatusUpdateResponse{
		Success: true,
		Message: "Availability status updated successfully.",
		UpdatedStatus: StatusResponse{
			IsAvailable:     status.IsAvailable,
			CurrentActivity: status.CurrentActivity,
		},
	}, nil
}
