package service

import (
	"context"
)

// Booking event types
const (
	BookingEventCreated = "booking.created"
	BookingEventUpdated = "booking.updated"
	BookingEventDeleted = "booking.deleted"
)

// BookingEvent describes a committed change to a property's calendar
type BookingEvent struct {
	RequestID  string `json:"request_id,omitempty"` // For distributed tracing
	Type       string `json:"type"`
	BookingID  string `json:"booking_id"`
	PropertyID string `json:"property_id"`
	RenterID   string `json:"renter_id"`
	StartDate  string `json:"start_date,omitempty"` // YYYY-MM-DD, empty for deletions
	EndDate    string `json:"end_date,omitempty"`
	OccurredAt string `json:"occurred_at"` // RFC 3339
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishBookingEvent publishes a booking event for downstream consumers
	PublishBookingEvent(ctx context.Context, event *BookingEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
