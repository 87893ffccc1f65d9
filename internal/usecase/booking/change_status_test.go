package booking

import (
	"context"
	"testing"
	"time"

	domain "github.com/bookwell/scheduler-api/internal/domain/booking"
	"github.com/bookwell/scheduler-api/internal/models"
	"github.com/bookwell/scheduler-api/internal/notify"
)

func newChangeStatusUC(repo *fakeRepo, sink *fakeSink) *ChangeStatus {
	return NewChangeStatus(repo, notify.NewPolicy(sink), nil)
}

func TestChangeStatusPendingToConfirmed(t *testing.T) {
	repo := newFakeRepo()
	repo.addUser(1, "client@example.com")
	repo.addUser(9, "pro@example.com")
	repo.addProfessional(2, 9, "Ana")
	repo.appointments[1] = &models.Appointment{
		ID: 1, UserID: 1, ProfileID: 2, Time: slotTime(), Status: "Pending",
	}

	sink := newFakeSink()
	uc := newChangeStatusUC(repo, sink)

	resp, err := uc.Execute(context.Background(), ChangeStatusInput{
		BookingID: 1,
		NewStatus: domain.StatusConfirmed,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !resp.Success {
		t.Fatalf("expected success, got %q", resp.Message)
	}
	if repo.appointments[1].Status != "Confirmed" {
		t.Fatalf("status not persisted: %q", repo.appointments[1].Status)
	}

	if len(sink.messages[1]) != 1 || len(sink.messages[9]) != 1 {
		t.Fatalf("both parties should be notified: %v", sink.messages)
	}
}

func TestChangeStatusRejectsSkippingConfirmation(t *testing.T) {
	repo := newFakeRepo()
	repo.appointments[1] = &models.Appointment{
		ID: 1, UserID: 1, ProfileID: 2, Time: slotTime(), Status: "Pending",
	}

	uc := newChangeStatusUC(repo, newFakeSink())

	resp, err := uc.Execute(context.Background(), ChangeStatusInput{
		BookingID: 1,
		NewStatus: domain.StatusCompleted,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Success {
		t.Fatal("Pending -> Completed must be rejected")
	}
	if resp.Message != "Cannot change booking status from Pending to Completed." {
		t.Fatalf("unexpected message: %q", resp.Message)
	}
	if repo.appointments[1].Status != "Pending" {
		t.Fatal("status must stay Pending")
	}
}

func TestChangeStatusTerminalStates(t *testing.T) {
	for _, terminal := range []string{"Completed", "Cancelled"} {
		repo := newFakeRepo()
		repo.appointments[1] = &models.Appointment{
			ID: 1, UserID: 1, ProfileID: 2, Time: slotTime(), Status: terminal,
		}

		uc := newChangeStatusUC(repo, newFakeSink())

		resp, err := uc.Execute(context.Background(), ChangeStatusInput{
			BookingID: 1,
			NewStatus: domain.StatusConfirmed,
		})
		if err != nil {
			t.Fatalf("%s: unexpected error: %v", terminal, err)
		}
		if resp.Success {
			t.Fatalf("%s is terminal, transition must fail", terminal)
		}
		if repo.appointments[1].Status != terminal {
			t.Fatalf("%s: status must not change", terminal)
		}
	}
}

func TestChangeStatusInvalidValue(t *testing.T) {
	repo := newFakeRepo()
	repo.appointments[1] = &models.Appointment{
		ID: 1, UserID: 1, ProfileID: 2, Time: slotTime(), Status: "Pending",
	}

	uc := newChangeStatusUC(repo, newFakeSink())

	resp, err := uc.Execute(context.Background(), ChangeStatusInput{
		BookingID: 1,
		NewStatus: domain.Status("Paused"),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Success {
		t.Fatal("unknown status values must be rejected")
	}
}

func TestChangeStatusReschedulesInSameWrite(t *testing.T) {
	repo := newFakeRepo()
	repo.addUser(1, "client@example.com")
	repo.addUser(9, "pro@example.com")
	repo.addProfessional(2, 9, "Ana")
	repo.appointments[1] = &models.Appointment{
		ID: 1, UserID: 1, ProfileID: 2, Time: slotTime(), Status: "Pending",
	}

	newTime := slotTime().Add(48 * time.Hour)
	uc := newChangeStatusUC(repo, newFakeSink())

	resp, err := uc.Execute(context.Background(), ChangeStatusInput{
		BookingID: 1,
		NewStatus: domain.StatusConfirmed,
		NewTime:   &newTime,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !resp.Success {
		t.Fatalf("expected success, got %q", resp.Message)
	}
	if !repo.appointments[1].Time.Equal(newTime) {
		t.Fatalf("time not updated: %v", repo.appointments[1].Time)
	}
}
