package notify

import (
	"context"
	"fmt"
	"time"
)

// Sink appends a notification row for a user. Append-to-store counts as
// delivered; there is no retry or confirmation.
type Sink interface {
	Append(ctx context.Context, userID uint, message string) error
}

// ======================================================
// POLICY
// ======================================================

// Policy decides, per lifecycle event, who gets notified and with which
// message. Composition is plain string interpolation, one template per
// event kind.
type Policy struct {
	sink Sink
}

func NewPolicy(sink Sink) *Policy {
	return &Policy{sink: sink}
}

func (p *Policy) BookingCreated(
	ctx context.Context,
	userID uint,
	profileID uint,
	at time.Time,
) error {
	msg := fmt.Sprintf(
		"Your appointment with professional ID %d at %s has been booked.",
		profileID, at.Format("2006-01-02 15:04"),
	)
	return p.sink.Append(ctx, userID, msg)
}

// StatusChanged notifies both parties of a booking about its new status.
func (p *Policy) StatusChanged(
	ctx context.Context,
	clientID uint,
	professionalUserID uint,
	bookingID uint,
	newStatus string,
) error {
	userMsg := fmt.Sprintf("Your booking has been updated. New status: %s.", newStatus)
	if err := p.sink.Append(ctx, clientID, userMsg); err != nil {
		return err
	}

	proMsg := fmt.Sprintf("Booking with ID %d has been updated. New status: %s.", bookingID, newStatus)
	return p.sink.Append(ctx, professionalUserID, proMsg)
}

func (p *Policy) BookingDeleted(
	ctx context.Context,
	clientID uint,
	professionalUserID uint,
	at time.Time,
) error {
	when := at.Format("2006-01-02 15:04")

	if err := p.sink.Append(ctx, clientID,
		fmt.Sprintf("Your booking on %s has been canceled.", when)); err != nil {
		return err
	}
	return p.sink.Append(ctx, professionalUserID,
		fmt.Sprintf("A booking on %s has been canceled.", when))
}

func (p *Policy) AvailabilityChanged(
	ctx context.Context,
	userID uint,
	firstName string,
	lastName string,
	available bool,
) error {
	state := "available"
	if !available {
		state = "not available"
	}
	msg := fmt.Sprintf("%s %s is now %s.", firstName, lastName, state)
	return p.sink.Append(ctx, userID, msg)
}

func (p *Policy) BookingConfirmed(
	ctx context.Context,
	userID uint,
	professionalName string,
	at time.Time,
) (string, error) {
	msg := fmt.Sprintf(
		"Booking confirmed! Your appointment with %s is scheduled for %s.",
		professionalName, at.Format("2006-01-02 at 15:04"),
	)
	return msg, p.sink.Append(ctx, userID, msg)
}
