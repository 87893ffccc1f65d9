package availability

import (
	"context"
	"time"

	"github.com/bookwell/scheduler-api/internal/models"
)

// fakeRepo is an in-memory availability repository for tests.
type fakeRepo struct {
	professionals map[uint]*models.ProfessionalInfo // by ProfileID
	statuses      map[uint]*models.RealTimeStatus   // by ProfessionalInfoID
	profiles      map[uint]*models.Profile          // by ProfessionalInfoID
	appointments  []models.Appointment

	nextStatusID uint
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		professionals: make(map[uint]*models.ProfessionalInfo),
		statuses:      make(map[uint]*models.RealTimeStatus),
		profiles:      make(map[uint]*models.Profile),
		nextStatusID:  1,
	}
}

func (f *fakeRepo) addProfessional(profileID, professionalInfoID uint) {
	f.professionals[profileID] = &models.ProfessionalInfo{
		ID:           professionalInfoID,
		ProfileID:    profileID,
		Availability: "{}",
	}
}

func (f *fakeRepo) GetProfessionalByProfile(ctx context.Context, profileID uint) (*models.ProfessionalInfo, error) {
	return f.professionals[profileID], nil
}

func (f *fakeRepo) GetStatus(ctx context.Context, professionalInfoID uint) (*models.RealTimeStatus, error) {
	return f.statuses[professionalInfoID], nil
}

func (f *fakeRepo) GetStatusByProfile(ctx context.Context, profileID uint) (*models.RealTimeStatus, error) {
	pro, ok := f.professionals[profileID]
	if !ok {
		return nil, nil
	}
	return f.statuses[pro.ID], nil
}

func (f *fakeRepo) CreateStatus(ctx context.Context, st *models.RealTimeStatus) error {
	st.ID = f.nextStatusID
	f.nextStatusID++
	f.statuses[st.ProfessionalInfoID] = st
	return nil
}

func (f *fakeRepo) UpdateStatus(ctx context.Context, st *models.RealTimeStatus) error {
	f.statuses[st.ProfessionalInfoID] = st
	return nil
}

func (f *fakeRepo) DeleteStatusesForProfessional(ctx context.Context, professionalInfoID uint) error {
	delete(f.statuses, professionalInfoID)
	return nil
}

func (f *fakeRepo) ResetProfessionalAvailability(ctx context.Context, professionalInfoID uint) error {
	for _, pro := range f.professionals {
		if pro.ID == professionalInfoID {
			pro.Availability = "{}"
		}
	}
	return nil
}

func (f *fakeRepo) ListStatuses(ctx context.Context) ([]models.RealTimeStatus, error) {
	var out []models.RealTimeStatus
	for _, st := range f.statuses {
		out = append(out, *st)
	}
	return out, nil
}

func (f *fakeRepo) ListUpcomingAppointments(ctx context.Context, profileID uint, from time.Time) ([]models.Appointment, error) {
	var out []models.Appointment
	for _, ap := range f.appointments {
		if ap.ProfileID != profileID || ap.Status == "Cancelled" {
			continue
		}
		if ap.Time.Before(from) {
			continue
		}
		out = append(out, ap)
	}
	// Insertion order stands in for time ordering; tests seed ascending.
	return out, nil
}

func (f *fakeRepo) GetProfileForProfessional(ctx context.Context, professionalInfoID uint) (*models.Profile, error) {
	return f.profiles[professionalInfoID], nil
}
