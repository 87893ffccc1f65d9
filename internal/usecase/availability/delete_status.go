package availability

import (
	"context"

	domain "github.com/bookwell/scheduler-api/internal/domain/availability"
)

type DeleteStatusResponse struct {
	Status  bool   `json:"status"`
	Message string `json:"message"`
}

// DeleteStatus removes a professional's manual status rows and resets the
// weekly availability template, typically when the professional leaves the
// platform or is disabled.
type DeleteStatus struct {
	repo domain.Repository
}

func NewDeleteStatus(repo domain.Repository) *DeleteStatus {
	return &DeleteStatus{repo: repo}
}

func (uc *DeleteStatus) Execute(
	ctx context.Context,
	profileID uint,
) (*DeleteStatusResponse, error) {

	pro, err := uc.repo.GetProfessionalByProfile(ctx, profileID)
	if err != nil {
		return nil, err
	}
	if pro == nil {
		return &DeleteStatusResponse{
			Status:  false,
			Message: "Failed to find professional or availability info.",
		}, nil
	}

	if err := uc.repo.DeleteStatusesForProfessional(ctx, pro.ID); err != nil {
		return nil, err
	}
	if err := uc.repo.ResetProfessionalAvailability(ctx, pro.ID); err != nil {
		return nil, err
	}

	return &DeleteStatusResponse{
		Status:  true,
		Message: "Professional availability removed.",
	}, nil
}
