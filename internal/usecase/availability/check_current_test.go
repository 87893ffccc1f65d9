package availability

import (
	"context"
	"testing"
	"time"

	"github.com/bookwell/scheduler-api/internal/models"
)

func fixedNow() time.Time {
	return time.Date(2025, 6, 2, 10, 0, 0, 0, time.UTC)
}

func strPtr(s string) *string { return &s }

func TestCheckCurrentManualOverrideWins(t *testing.T) {
	repo := newFakeRepo()
	repo.addProfessional(1, 10)
	repo.statuses[10] = &models.RealTimeStatus{
		ProfessionalInfoID: 10,
		IsAvailable:        false,
		CurrentActivity:    strPtr("On vacation"),
	}
	// An empty calendar would otherwise report available.
	uc := NewCheckCurrent(repo)
	uc.now = fixedNow

	resp, err := uc.Execute(context.Background(), 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.IsAvailable {
		t.Fatal("expected unavailable when manual override says so")
	}
	if resp.Message != "Currently not available due to: On vacation." {
		t.Fatalf("unexpected message: %q", resp.Message)
	}
	if resp.NextAvailableTime != nil {
		t.Fatal("manual override must not expose a next available time")
	}
}

func TestCheckCurrentInProgressAppointment(t *testing.T) {
	repo := newFakeRepo()
	repo.addProfessional(1, 10)
	repo.appointments = append(repo.appointments, models.Appointment{
		ID:        1,
		ProfileID: 1,
		Time:      fixedNow(),
		Status:    "Confirmed",
	})

	uc := NewCheckCurrent(repo)
	uc.now = fixedNow

	resp, err := uc.Execute(context.Background(), 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.IsAvailable {
		t.Fatal("expected unavailable during an appointment")
	}
	if resp.Message != "Currently in an appointment." {
		t.Fatalf("unexpected message: %q", resp.Message)
	}
	want := fixedNow().Add(30 * time.Minute)
	if resp.NextAvailableTime == nil || !resp.NextAvailableTime.Equal(want) {
		t.Fatalf("expected next available %v, got %v", want, resp.NextAvailableTime)
	}
}

func TestCheckCurrentFutureAppointment(t *testing.T) {
	repo := newFakeRepo()
	repo.addProfessional(1, 10)
	at := fixedNow().Add(2 * time.Hour)
	repo.appointments = append(repo.appointments, models.Appointment{
		ID:        1,
		ProfileID: 1,
		Time:      at,
		Status:    "Pending",
	})

	uc := NewCheckCurrent(repo)
	uc.now = fixedNow

	resp, err := uc.Execute(context.Background(), 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.IsAvailable {
		t.Fatal("expected unavailable ahead of an upcoming appointment")
	}
	if resp.NextAvailableTime == nil || !resp.NextAvailableTime.Equal(at) {
		t.Fatalf("expected next available %v, got %v", at, resp.NextAvailableTime)
	}
	if resp.Message != "Next available at 2025-06-02 12:00." {
		t.Fatalf("unexpected message: %q", resp.Message)
	}
}

func TestCheckCurrentEmptyCalendar(t *testing.T) {
	repo := newFakeRepo()
	repo.addProfessional(1, 10)

	uc := NewCheckCurrent(repo)
	uc.now = fixedNow

	resp, err := uc.Execute(context.Background(), 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !resp.IsAvailable {
		t.Fatal("expected available with no status and no appointments")
	}
	if resp.Message != "Professional is currently available." {
		t.Fatalf("unexpected message: %q", resp.Message)
	}
}

func TestCheckCurrentIgnoresCancelledAppointments(t *testing.T) {
	repo := newFakeRepo()
	repo.addProfessional(1, 10)
	repo.appointments = append(repo.appointments, models.Appointment{
		ID:        1,
		ProfileID: 1,
		Time:      fixedNow(),
		Status:    "Cancelled",
	})

	uc := NewCheckCurrent(repo)
	uc.now = fixedNow

	resp, err := uc.Execute(context.Background(), 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !resp.IsAvailable {
		t.Fatal("cancelled appointments must not block availability")
	}
}

// Setting a manual status and reading availability back must agree.
func TestSetStatusThenCheckCurrent(t *testing.T) {
	repo := newFakeRepo()
	repo.addProfessional(1, 10)

	set := NewSetStatus(repo)
	if _, err := set.Execute(context.Background(), 1, false, strPtr("lunch")); err != nil {
		t.Fatalf("set status failed: %v", err)
	}

	uc := NewCheckCurrent(repo)
	uc.now = fixedNow

	resp, err := uc.Execute(context.Background(), 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.IsAvailable {
		t.Fatal("expected unavailable after setting status to unavailable")
	}
	if resp.Message != "Currently not available due to: lunch." {
		t.Fatalf("unexpected message: %q", resp.Message)
	}
}
