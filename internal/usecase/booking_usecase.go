// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"
	"time"

	"rental/internal/domain/entity"

	"github.com/google/uuid"
)

// CreateBookingInput defines the data required to reserve a property.
type CreateBookingInput struct {
	PropertyID uuid.UUID
	RenterID   uuid.UUID
	StartDate  time.Time
	EndDate    time.Time
}

// UpdateBookingInput carries new dates for an existing booking. Nil fields keep their value.
type UpdateBookingInput struct {
	StartDate *time.Time
	EndDate   *time.Time
}

// BookingUsecase is the booking ledger. It is the only writer of bookings and
// guarantees that no two bookings on a property overlap.
type BookingUsecase interface {
	// ListActive returns every existing booking on a property.
	ListActive(ctx context.Context, propertyID uuid.UUID) ([]*entity.Booking, error)

	// Create reserves [StartDate, EndDate] for the renter.
	Create(ctx context.Context, input *CreateBookingInput) (*entity.Booking, error)

	// Update moves a booking. Only its renter may do so.
	Update(ctx context.Context, bookingID, requestorID uuid.UUID, input *UpdateBookingInput) (*entity.Booking, error)

	// Delete cancels a booking. Only its renter may do so.
	Delete(ctx context.Context, bookingID, requestorID uuid.UUID) error
}
