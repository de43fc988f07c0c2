// Package view builds viewer-scoped projections of booking data.
// Every function is a pure function of its inputs; identity is passed explicitly.
package view

import (
	"rental/internal/domain/entity"

	"github.com/google/uuid"
)

// PropertyBookings groups one user's bookings on a single property.
type PropertyBookings struct {
	PropertyID uuid.UUID
	Bookings   []*entity.Booking
}

// ScopeBookings returns the bookings rented by viewerID.
// A nil viewer is the unscoped view and receives every booking.
func ScopeBookings(bookings []*entity.Booking, viewerID *uuid.UUID) []*entity.Booking {
	if viewerID == nil {
		out := make([]*entity.Booking, len(bookings))
		copy(out, bookings)

		return out
	}

	out := make([]*entity.Booking, 0, len(bookings))
	for _, b := range bookings {
		if b.IsRentedBy(*viewerID) {
			out = append(out, b)
		}
	}

	return out
}

// GroupByProperty groups userID's bookings by property, one group per distinct property.
// Groups appear in the order their property is first seen in bookings and rows rented by
// anyone else are dropped.
func GroupByProperty(bookings []*entity.Booking, userID uuid.UUID) []*PropertyBookings {
	index := make(map[uuid.UUID]int)
	groups := make([]*PropertyBookings, 0)

	for _, b := range bookings {
		if !b.IsRentedBy(userID) {
			continue
		}

		i, ok := index[b.PropertyID]
		if !ok {
			i = len(groups)
			index[b.PropertyID] = i
			groups = append(groups, &PropertyBookings{PropertyID: b.PropertyID})
		}
		groups[i].Bookings = append(groups[i].Bookings, b)
	}

	return groups
}

// CanSeeAllBookings reports whether viewerID may see every renter's rows on p.
// Only the owner gets the full calendar.
func CanSeeAllBookings(p *entity.Property, viewerID *uuid.UUID) bool {
	return viewerID != nil && p.IsOwnedBy(*viewerID)
}
