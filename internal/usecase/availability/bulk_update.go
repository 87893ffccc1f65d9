package availability

import (
	"context"
	"fmt"

	domain "github.com/bookwell/scheduler-api/internal/domain/availability"
	"github.com/bookwell/scheduler-api/internal/models"
)

// ======================================================
// INPUT / OUTPUT
// ======================================================

type StatusUpdate struct {
	ProfileID       uint    `json:"profile_id" binding:"required"`
	IsAvailable     bool    `json:"is_available"`
	CurrentActivity *string `json:"current_activity"`
}

type BulkUpdateResponse struct {
	UpdatedCount int      `json:"updated_count"`
	Errors       []string `json:"errors,omitempty"`
}

// ======================================================
// USE CASE
// ======================================================

// BulkUpdate applies each status upsert independently. The batch is not
// atomic: failed items are reported per item and never abort the rest.
type BulkUpdate struct {
	repo domain.Repository
}

func NewBulkUpdate(repo domain.Repository) *BulkUpdate {
	return &BulkUpdate{repo: repo}
}

func (uc *BulkUpdate) Execute(
	ctx context.Context,
	updates []StatusUpdate,
) (*BulkUpdateResponse, error) {

	resp := &BulkUpdateResponse{}

	for _, up := range updates {
		if err := uc.applyOne(ctx, up); err != nil {
			resp.Errors = append(resp.Errors, fmt.Sprintf(
				"Failed to update profile ID %d: %v", up.ProfileID, err,
			))
			continue
		}
		resp.UpdatedCount++
	}

	return resp, nil
}

func (uc *BulkUpdate) applyOne(ctx context.Context, up StatusUpdate) error {
	pro, err := uc.repo.GetProfessionalByProfile(ctx, up.ProfileID)
	if err != nil {
		return err
	}
	if pro == nil {
		return fmt.Errorf("professional not found")
	}

	status, err := uc.repo.GetStatus(ctx, pro.ID)
	if err != nil {
		return err
	}

	if status == nil {
		return uc.repo.CreateStatus(ctx, &models.RealTimeStatus{
			ProfessionalInfoID: pro.ID,
			IsAvailable:        up.IsAvailable,
			CurrentActivity:    up.CurrentActivity,
		})
	}

	status.IsAvailable = up.IsAvailable
	status.CurrentActivity = up.CurrentActivity
	return uc.repo.UpdateStatus(ctx, status)
}
