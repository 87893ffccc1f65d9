package availability

import (
	"context"

	domain "github.com/bookwell/scheduler-api/internal/domain/availability"
)

type StatusResponse struct {
	IsAvailable     bool    `json:"is_available"`
	CurrentActivity *string `json:"current_activity,omitempty"`
}

// GetStatus reads only the manual status record. Unlike CheckCurrent, a
// missing row here reads as unavailable with "No status available". The two
// defaults disagree on purpose; callers pick the read path they mean.
type GetStatus struct {
	repo domain.Repository
}

func NewGetStatus(repo domain.Repository) *GetStatus {
	return &GetStatus{repo: repo}
}

func (uc *GetStatus) Execute(
	ctx context.Context,
	profileID uint,
) (*StatusResponse, error) {

	status, err := uc.repo.GetStatusByProfile(ctx, profileID)
	if err != nil {
		return nil, err
	}

	if status == nil {
		noStatus := "No status available"
		return &StatusResponse{
			IsAvailable:     false,
			CurrentActivity: &noStatus,
		}, nil
	}

	return &StatusResponse{
		IsAvailable:     status.IsAvailable,
		CurrentActivity: status.CurrentActivity,
	}, nil
}
