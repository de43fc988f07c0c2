package entity

import (
	"time"

	"rental/internal/domain/calendar"

	"github.com/google/uuid"
)

// Booking reserves a property for an inclusive range of calendar days.
// StartDate and EndDate are UTC midnights and StartDate is never after EndDate.
type Booking struct {
	ID         uuid.UUID
	PropertyID uuid.UUID
	RenterID   uuid.UUID
	StartDate  time.Time
	EndDate    time.Time
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// Range returns the booked days as a calendar range.
func (b *Booking) Range() calendar.Range {
	return calendar.Range{Start: b.StartDate, End: b.EndDate}
}

// Overlaps reports whether the booking occupies any day of r.
func (b *Booking) Overlaps(r calendar.Range) bool {
	return calendar.Overlaps(b.StartDate, b.EndDate, r.Start, r.End)
}

// IsRentedBy reports whether userID made this booking.
func (b *Booking) IsRentedBy(userID uuid.UUID) bool {
	return b.RenterID == userID
}
