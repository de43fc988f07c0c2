package usecase

import (
	"context"

	"rental/internal/domain/entity"

	"github.com/google/uuid"
)

// BookedProperty is a property together with one user's bookings on it.
type BookedProperty struct {
	Property *entity.Property
	Bookings []*entity.Booking
}

// OwnedProperty is an owner's listing with its full calendar and reviews.
type OwnedProperty struct {
	Property *entity.Property
	Bookings []*entity.Booking
	Reviews  []*entity.Review
}

// PropertyDetail is a listing as seen by one viewer.
type PropertyDetail struct {
	Property *entity.Property
	Reviews  []*entity.Review
	Bookings []*entity.Booking

	// ViewerIsOwner is true when Bookings holds every renter's rows for the owner.
	ViewerIsOwner bool

	// Anonymous is true when the viewer is unauthenticated. Bookings must then be
	// rendered as bare occupied ranges.
	Anonymous bool
}

// Profile collects the two sides of a user's account.
type Profile struct {
	User   *entity.User
	Owned  []*OwnedProperty
	Booked []*BookedProperty
}

// ProjectionUsecase builds viewer-scoped read models. viewerID nil means an
// anonymous, unscoped viewer.
type ProjectionUsecase interface {
	// ProjectPropertyBookings returns the bookings on a property visible to the viewer.
	ProjectPropertyBookings(ctx context.Context, propertyID uuid.UUID, viewerID *uuid.UUID) ([]*entity.Booking, error)

	// ProjectUserBookedProperties groups a user's bookings by property.
	ProjectUserBookedProperties(ctx context.Context, userID uuid.UUID) ([]*BookedProperty, error)

	// ProjectOwnedProperties lists an owner's properties with full calendars and reviews.
	ProjectOwnedProperties(ctx context.Context, ownerID uuid.UUID) ([]*OwnedProperty, error)

	// PropertyDetail returns a listing scoped to the viewer.
	PropertyDetail(ctx context.Context, propertyID uuid.UUID, viewerID *uuid.UUID) (*PropertyDetail, error)

	// Profile returns the user's owned and booked properties.
	Profile(ctx context.Context, userID uuid.UUID) (*Profile, error)
}
