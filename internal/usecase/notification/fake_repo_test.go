package notification

import (
	"context"
	"time"

	"github.com/bookwell/scheduler-api/internal/models"
)

// fakeStore implements both the booking and availability repositories for
// the trigger usecases.
type fakeStore struct {
	users         map[uint]*models.User
	profiles      map[uint]*models.Profile          // by Profile ID
	professionals map[uint]*models.ProfessionalInfo // by Profile ID
	statuses      map[uint]*models.RealTimeStatus   // by ProfessionalInfoID
	appointments  map[uint]*models.Appointment
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		users:         make(map[uint]*models.User),
		profiles:      make(map[uint]*models.Profile),
		professionals: make(map[uint]*models.ProfessionalInfo),
		statuses:      make(map[uint]*models.RealTimeStatus),
		appointments:  make(map[uint]*models.Appointment),
	}
}

// -------- booking.Repository --------

func (f *fakeStore) GetUser(ctx context.Context, id uint) (*models.User, error) {
	return f.users[id], nil
}

func (f *fakeStore) GetUserWithProfile(ctx context.Context, id uint) (*models.User, error) {
	return f.users[id], nil
}

func (f *fakeStore) GetProfessionalProfile(ctx context.Context, profileID uint) (*models.Profile, error) {
	return f.profiles[profileID], nil
}

func (f *fakeStore) GetProfileOwner(ctx context.Context, profileID uint) (*models.User, error) {
	p, ok := f.profiles[profileID]
	if !ok {
		return nil, nil
	}
	return f.users[p.UserID], nil
}

func (f *fakeStore) CreateIfSlotFree(ctx context.Context, ap *models.Appointment) error {
	f.appointments[ap.ID] = ap
	return nil
}

func (f *fakeStore) CreateAppointment(ctx context.Context, ap *models.Appointment) error {
	f.appointments[ap.ID] = ap
	return nil
}

func (f *fakeStore) GetAppointment(ctx context.Context, id uint) (*models.Appointment, error) {
	return f.appointments[id], nil
}

func (f *fakeStore) GetAppointmentWithParties(ctx context.Context, id uint) (*models.Appointment, error) {
	ap, ok := f.appointments[id]
	if !ok {
		return nil, nil
	}
	cp := *ap
	if u, ok := f.users[ap.UserID]; ok {
		cp.User = *u
	}
	if p, ok := f.profiles[ap.ProfileID]; ok {
		cp.Profile = *p
	}
	return &cp, nil
}

func (f *fakeStore) UpdateAppointment(ctx context.Context, ap *models.Appointment) error {
	f.appointments[ap.ID] = ap
	return nil
}

func (f *fakeStore) DeleteAppointment(ctx context.Context, id uint) error {
	delete(f.appointments, id)
	return nil
}

func (f *fakeStore) ListAppointmentsForPeriod(ctx context.Context, profileID uint, start, end time.Time) ([]models.Appointment, error) {
	return nil, nil
}

// -------- availability.Repository --------

func (f *fakeStore) GetProfessionalByProfile(ctx context.Context, profileID uint) (*models.ProfessionalInfo, error) {
	return f.professionals[profileID], nil
}

func (f *fakeStore) GetStatus(ctx context.Context, professionalInfoID uint) (*models.RealTimeStatus, error) {
	return f.statuses[professionalInfoID], nil
}

func (f *fakeStore) GetStatusByProfile(ctx context.Context, profileID uint) (*models.RealTimeStatus, error) {
	pro, ok := f.professionals[profileID]
	if !ok {
		return nil, nil
	}
	return f.statuses[pro.ID], nil
}

func (f *fakeStore) CreateStatus(ctx context.Context, st *models.RealTimeStatus) error {
	f.statuses[st.ProfessionalInfoID] = st
	return nil
}

func (f *fakeStore) UpdateStatus(ctx context.Context, st *models.RealTimeStatus) error {
	f.statuses[st.ProfessionalInfoID] = st
	return nil
}

func (f *fakeStore) DeleteStatusesForProfessional(ctx context.Context, professionalInfoID uint) error {
	delete(f.statuses, professionalInfoID)
	return nil
}

func (f *fakeStore) ResetProfessionalAvailability(ctx context.Context, professionalInfoID uint) error {
	return nil
}

func (f *fakeStore) ListStatuses(ctx context.Context) ([]models.RealTimeStatus, error) {
	return nil, nil
}

func (f *fakeStore) ListUpcomingAppointments(ctx context.Context, profileID uint, from time.Time) ([]models.Appointment, error) {
	return nil, nil
}

func (f *fakeStore) GetProfileForProfessional(ctx context.Context, professionalInfoID uint) (*models.Profile, error) {
	for _, p := range f.profiles {
		if pro, ok := f.professionals[p.ID]; ok && pro.ID == professionalInfoID {
			return p, nil
		}
	}
	return nil, nil
}

// fakeSink records appended notifications per user.
type fakeSink struct {
	messages map[uint][]string
}

func newFakeSink() *fakeSink {
	return &fakeSink{messages: make(map[uint][]string)}
}

func (s *fakeSink) Append(ctx context.Context, userID uint, message string) error {
	s.messages[userID] = append(s.messages[userID], message)
	return nil
}
