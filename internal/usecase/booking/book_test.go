package booking

import (
	"context"
	"testing"

	"github.com/bookwell/scheduler-api/internal/models"
)

func TestBookReturnsPartyNames(t *testing.T) {
	repo := newFakeRepo()
	client := repo.addUser(1, "client@example.com")
	client.Profile = &models.Profile{ID: 5, UserID: 1, FirstName: "Joao", LastName: "Silva"}
	pro := repo.addProfessional(2, 9, "Ana")
	pro.LastName = "Souza"

	uc := NewBook(repo)

	resp, err := uc.Execute(context.Background(), BookInput{
		UserID:    1,
		ProfileID: 2,
		Time:      slotTime(),
		Notes:     "first visit",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !resp.Success {
		t.Fatalf("expected success, got %q", resp.Message)
	}
	if resp.Message != "Appointment booked successfully." {
		t.Fatalf("unexpected message: %q", resp.Message)
	}

	d := resp.AppointmentDetails
	if d == nil {
		t.Fatal("expected appointment details")
	}
	if d.ProfessionalName != "Ana Souza" || d.UserName != "Joao Silva" {
		t.Fatalf("unexpected names: %q / %q", d.ProfessionalName, d.UserName)
	}
	if d.Status != "Pending" {
		t.Fatalf("booked appointments start Pending, got %q", d.Status)
	}

	stored := repo.appointments[d.AppointmentID]
	if stored == nil || stored.Notes != "first visit" {
		t.Fatalf("notes not persisted: %+v", stored)
	}
}

// Book does not check the slot for conflicts; a double booking goes through.
func TestBookSkipsConflictCheck(t *testing.T) {
	repo := newFakeRepo()
	client := repo.addUser(1, "client@example.com")
	client.Profile = &models.Profile{ID: 5, UserID: 1, FirstName: "Joao"}
	repo.addProfessional(2, 9, "Ana")
	repo.appointments[77] = &models.Appointment{
		ID: 77, UserID: 1, ProfileID: 2, Time: slotTime(), Status: "Confirmed",
	}
	repo.nextID = 78

	uc := NewBook(repo)

	resp, err := uc.Execute(context.Background(), BookInput{
		UserID:    1,
		ProfileID: 2,
		Time:      slotTime(),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !resp.Success {
		t.Fatalf("expected success despite the occupied slot, got %q", resp.Message)
	}
}

func TestBookIncompleteClientProfile(t *testing.T) {
	repo := newFakeRepo()
	repo.addUser(1, "client@example.com")
	repo.addProfessional(2, 9, "Ana")

	uc := NewBook(repo)

	resp, err := uc.Execute(context.Background(), BookInput{
		UserID:    1,
		ProfileID: 2,
		Time:      slotTime(),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Success {
		t.Fatal("expected failure for client without profile")
	}
	if resp.Message != "User's profile information is incomplete." {
		t.Fatalf("unexpected message: %q", resp.Message)
	}
}

func TestBookUnknownParties(t *testing.T) {
	repo := newFakeRepo()

	uc := NewBook(repo)

	resp, err := uc.Execute(context.Background(), BookInput{
		UserID:    1,
		ProfileID: 2,
		Time:      slotTime(),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Success {
		t.Fatal("expected failure for unknown parties")
	}
	if resp.Message != "User or Professional not found." {
		t.Fatalf("unexpected message: %q", resp.Message)
	}
}
