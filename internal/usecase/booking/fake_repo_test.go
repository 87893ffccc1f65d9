package booking

import (
	"context"
	"time"

	"github.com/bookwell/scheduler-api/internal/httperr"
	"github.com/bookwell/scheduler-api/internal/models"
)

// fakeRepo is an in-memory booking repository for tests.
type fakeRepo struct {
	users        map[uint]*models.User
	profiles     map[uint]*models.Profile // professional profiles, by Profile ID
	appointments map[uint]*models.Appointment

	nextID uint
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		users:        make(map[uint]*models.User),
		profiles:     make(map[uint]*models.Profile),
		appointments: make(map[uint]*models.Appointment),
		nextID:       1,
	}
}

func (f *fakeRepo) addUser(id uint, email string) *models.User {
	u := &models.User{ID: id, Email: email, Role: models.RoleUser}
	f.users[id] = u
	return u
}

func (f *fakeRepo) addProfessional(profileID, userID uint, firstName string) *models.Profile {
	p := &models.Profile{
		ID:               profileID,
		UserID:           userID,
		FirstName:        firstName,
		ProfessionalInfo: &models.ProfessionalInfo{ID: profileID * 10, ProfileID: profileID},
	}
	f.profiles[profileID] = p
	return p
}

func (f *fakeRepo) GetUser(ctx context.Context, id uint) (*models.User, error) {
	return f.users[id], nil
}

func (f *fakeRepo) GetUserWithProfile(ctx context.Context, id uint) (*models.User, error) {
	return f.users[id], nil
}

func (f *fakeRepo) GetProfessionalProfile(ctx context.Context, profileID uint) (*models.Profile, error) {
	return f.profiles[profileID], nil
}

func (f *fakeRepo) GetProfileOwner(ctx context.Context, profileID uint) (*models.User, error) {
	p, ok := f.profiles[profileID]
	if !ok {
		return nil, nil
	}
	return f.users[p.UserID], nil
}

func (f *fakeRepo) CreateIfSlotFree(ctx context.Context, ap *models.Appointment) error {
	for _, existing := range f.appointments {
		if existing.ProfileID == ap.ProfileID &&
			existing.Status == "Confirmed" &&
			existing.Time.Equal(ap.Time) {
			return httperr.ErrBusiness("no_available_slot")
		}
	}
	return f.CreateAppointment(ctx, ap)
}

func (f *fakeRepo) CreateAppointment(ctx context.Context, ap *models.Appointment) error {
	ap.ID = f.nextID
	f.nextID++
	f.appointments[ap.ID] = ap
	return nil
}

func (f *fakeRepo) GetAppointment(ctx context.Context, id uint) (*models.Appointment, error) {
	return f.appointments[id], nil
}

func (f *fakeRepo) GetAppointmentWithParties(ctx context.Context, id uint) (*models.Appointment, error) {
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

func (f *fakeRepo) UpdateAppointment(ctx context.Context, ap *models.Appointment) error {
	f.appointments[ap.ID] = ap
	return nil
}

func (f *fakeRepo) DeleteAppointment(ctx context.Context, id uint) error {
	delete(f.appointments, id)
	return nil
}

func (f *fakeRepo) ListAppointmentsForPeriod(ctx context.Context, profileID uint, start, end time.Time) ([]models.Appointment, error) {
	var out []models.Appointment
	for _, ap := range f.appointments {
		if ap.ProfileID != profileID {
			continue
		}
		if ap.Time.Before(start) || ap.Time.After(end) {
			continue
		}
		out = append(out, *ap)
	}
	return out, nil
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
