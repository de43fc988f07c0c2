package repository

import (
	"context"
	"errors"

	"rental/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrBookingNotFound is returned when a booking ID does not resolve.
var ErrBookingNotFound = errors.New("booking not found")

// BookingRepository stores bookings. Only the booking ledger writes through it.
type BookingRepository interface {
	// FindActiveByProperty returns every existing booking on a property, ordered by start date.
	FindActiveByProperty(ctx context.Context, propertyID uuid.UUID) ([]*entity.Booking, error)

	// FindByRenter returns every booking made by renterID, ordered by start date.
	FindByRenter(ctx context.Context, renterID uuid.UUID) ([]*entity.Booking, error)

	// FindByID retrieves a single booking.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Booking, error)

	// Create inserts a booking. A storage-level overlap violation surfaces as *errors.OverlapError.
	Create(ctx context.Context, booking *entity.Booking) error

	// Update rewrites a booking's dates.
	Update(ctx context.Context, booking *entity.Booking) error

	// Delete removes a booking permanently.
	Delete(ctx context.Context, id uuid.UUID) error
}
