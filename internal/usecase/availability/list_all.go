package availability

import (
	"context"

	domain "github.com/bookwell/scheduler-api/internal/domain/availability"
)

type ProfessionalAvailability struct {
	ProfileID       uint    `json:"profile_id"`
	UserID          uint    `json:"user_id"`
	IsAvailable     bool    `json:"is_available"`
	CurrentActivity *string `json:"current_activity,omitempty"`
}

// ListAll returns the manual status of every professional that has one, for
// administrative overviews. Rows with a broken professional linkage are
// skipped rather than failing the listing.
type ListAll struct {
	repo domain.Repository
}

func NewListAll(repo domain.Repository) *ListAll {
	return &ListAll{repo: repo}
}

func (uc *ListAll) Execute(ctx context.Context) ([]ProfessionalAvailability, error) {
	statuses, err := uc.repo.ListStatuses(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]ProfessionalAvailability, 0, len(statuses))
	for _, st := range statuses {
		profile, err := uc.repo.GetProfileForProfessional(ctx, st.ProfessionalInfoID)
		if err != nil {
			return nil, err
		}
		if profile == nil {
			continue
		}
		out = append(out, ProfessionalAvailability{
			ProfileID:       profile.ID,
			UserID:          profile.UserID,
			IsAvailable:     st.IsAvailable,
			CurrentActivity: st.CurrentActivity,
		})
	}

	return out, nil
}
