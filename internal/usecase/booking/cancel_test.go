package booking

import (
	"context"
	"testing"

	"github.com/bookwell/scheduler-api/internal/models"
)

func TestCancelPendingAppointment(t *testing.T) {
	repo := newFakeRepo()
	repo.appointments[1] = &models.Appointment{
		ID: 1, UserID: 1, ProfileID: 2, Time: slotTime(), Status: "Pending",
	}

	uc := NewCancel(repo, nil)

	resp, err := uc.Execute(context.Background(), 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !resp.Success {
		t.Fatalf("expected success, got %q", resp.Message)
	}
	if resp.Message != "Appointment canceled successfully." {
		t.Fatalf("unexpected message: %q", resp.Message)
	}
	if repo.appointments[1].Status != "Cancelled" {
		t.Fatalf("appointment not cancelled: %q", repo.appointments[1].Status)
	}
}

func TestCancelIsIdempotent(t *testing.T) {
	repo := newFakeRepo()
	repo.appointments[1] = &models.Appointment{
		ID: 1, UserID: 1, ProfileID: 2, Time: slotTime(), Status: "Pending",
	}

	uc := NewCancel(repo, nil)

	if _, err := uc.Execute(context.Background(), 1); err != nil {
		t.Fatalf("first cancel failed: %v", err)
	}

	resp, err := uc.Execute(context.Background(), 1)
	if err != nil {
		t.Fatalf("second cancel errored: %v", err)
	}
	if resp.Success {
		t.Fatal("second cancel must not report success")
	}
	if resp.Message != "The appointment is already canceled." {
		t.Fatalf("unexpected message: %q", resp.Message)
	}
	if repo.appointments[1].Status != "Cancelled" {
		t.Fatal("status must stay Cancelled")
	}
}

func TestCancelCompletedAppointment(t *testing.T) {
	repo := newFakeRepo()
	repo.appointments[1] = &models.Appointment{
		ID: 1, UserID: 1, ProfileID: 2, Time: slotTime(), Status: "Completed",
	}

	uc := NewCancel(repo, nil)

	resp, err := uc.Execute(context.Background(), 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Success {
		t.Fatal("completed appointments cannot be cancelled")
	}
	if resp.Message != "The appointment can no longer be canceled." {
		t.Fatalf("unexpected message: %q", resp.Message)
	}
	if repo.appointments[1].Status != "Completed" {
		t.Fatal("status must stay Completed")
	}
}

func TestCancelMissingAppointment(t *testing.T) {
	repo := newFakeRepo()

	uc := NewCancel(repo, nil)

	resp, err := uc.Execute(context.Background(), 42)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Success {
		t.Fatal("expected failure for missing appointment")
	}
	if resp.Message != "No appointment found with the provided ID." {
		t.Fatalf("unexpected message: %q", resp.Message)
	}
}
