package entity

import (
	"time"

	"rental/internal/domain/geo"

	"github.com/google/uuid"
)

// Property is a rentable listing owned by exactly one user.
// Bookings and reviews reference it by ID; it holds no pointers back to them.
type Property struct {
	ID            uuid.UUID
	OwnerID       uuid.UUID
	Title         string
	Description   string
	PricePerNight float64
	LocationName  string          // Free-text label shown to renters.
	Coordinate    *geo.Coordinate // Nil when the listing was never geocoded.
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// HasCoordinate reports whether the property can be measured against a search point.
func (p *Property) HasCoordinate() bool {
	return p.Coordinate != nil
}

// IsOwnedBy reports whether userID owns the property.
func (p *Property) IsOwnedBy(userID uuid.UUID) bool {
	return p.OwnerID == userID
}
