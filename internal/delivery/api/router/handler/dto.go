package handler

import (
	"time"

	"rental/internal/domain/calendar"
	"rental/internal/domain/entity"
	"rental/internal/usecase"

	"github.com/google/uuid"
)

// UserResponse is the public view of an account. The password hash never leaves the server.
type UserResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

// PropertyResponse is a listing.
type PropertyResponse struct {
	ID            uuid.UUID `json:"id"`
	OwnerID       uuid.UUID `json:"owner_id"`
	Title         string    `json:"title"`
	Description   string    `json:"description"`
	PricePerNight float64   `json:"price_per_night"`
	LocationName  string    `json:"location_name"`
	Latitude      *float64  `json:"latitude"`
	Longitude     *float64  `json:"longitude"`
	CreatedAt     time.Time `json:"created_at"`
}

// BookingResponse is a booking as seen by its renter or the property owner.
type BookingResponse struct {
	ID         uuid.UUID `json:"id"`
	PropertyID uuid.UUID `json:"property_id"`
	RenterID   uuid.UUID `json:"renter_id"`
	StartDate  string    `json:"start_date"`
	EndDate    string    `json:"end_date"`
	Nights     int       `json:"nights"`
}

// OccupiedRange is a booking stripped of every identity, shown to anonymous viewers.
type OccupiedRange struct {
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
}

// ReviewResponse is a property review.
type ReviewResponse struct {
	ID         uuid.UUID `json:"id"`
	PropertyID uuid.UUID `json:"property_id"`
	UserID     uuid.UUID `json:"user_id"`
	Rating     int       `json:"rating"`
	Comment    string    `json:"comment"`
	CreatedAt  time.Time `json:"created_at"`
}

// AvailablePropertyResponse is a search hit.
type AvailablePropertyResponse struct {
	PropertyResponse
	IsAvailable   bool     `json:"is_available"`
	DistanceMiles *float64 `json:"distance_miles,omitempty"`
}

// PropertyBookingsResponse carries either identified bookings or, for anonymous
// viewers, bare occupied ranges.
type PropertyBookingsResponse struct {
	Bookings       []BookingResponse `json:"bookings,omitempty"`
	OccupiedRanges []OccupiedRange   `json:"occupied_ranges,omitempty"`
}

// PropertyDetailResponse is a listing scoped to the viewer.
type PropertyDetailResponse struct {
	Property      PropertyResponse `json:"property"`
	Reviews       []ReviewResponse `json:"reviews"`
	ViewerIsOwner bool             `json:"viewer_is_owner"`
	PropertyBookingsResponse
}

// BookedPropertyResponse is a property with the caller's bookings on it.
type BookedPropertyResponse struct {
	Property PropertyResponse  `json:"property"`
	Bookings []BookingResponse `json:"bookings"`
}

// OwnedPropertyResponse is an owner's listing with its full calendar.
type OwnedPropertyResponse struct {
	Property PropertyResponse  `json:"property"`
	Bookings []BookingResponse `json:"bookings"`
	Reviews  []ReviewResponse  `json:"reviews"`
}

// ProfileResponse is the caller's account overview.
type ProfileResponse struct {
	User   UserResponse             `json:"user"`
	Owned  []OwnedPropertyResponse  `json:"owned_properties"`
	Booked []BookedPropertyResponse `json:"booked_properties"`
}

func toUserResponse(u *entity.User) UserResponse {
	return UserResponse{ID: u.ID, Name: u.Name, Email: u.Email, CreatedAt: u.CreatedAt}
}

func toPropertyResponse(p *entity.Property) PropertyResponse {
	out := PropertyResponse{
		ID:            p.ID,
		OwnerID:       p.OwnerID,
		Title:         p.Title,
		Description:   p.Description,
		PricePerNight: p.PricePerNight,
		LocationName:  p.LocationName,
		CreatedAt:     p.CreatedAt,
	}
	if p.Coordinate != nil {
		lat, lng := p.Coordinate.Lat, p.Coordinate.Lng
		out.Latitude = &lat
		out.Longitude = &lng
	}

	return out
}

func toPropertyResponses(properties []*entity.Property) []PropertyResponse {
	out := make([]PropertyResponse, 0, len(properties))
	for _, p := range properties {
		out = append(out, toPropertyResponse(p))
	}

	return out
}

func toBookingResponse(b *entity.Booking) BookingResponse {
	return BookingResponse{
		ID:         b.ID,
		PropertyID: b.PropertyID,
		RenterID:   b.RenterID,
		StartDate:  b.StartDate.Format(calendar.DateLayout),
		EndDate:    b.EndDate.Format(calendar.DateLayout),
		Nights:     b.Range().Nights(),
	}
}

func toBookingResponses(bookings []*entity.Booking) []BookingResponse {
	out := make([]BookingResponse, 0, len(bookings))
	for _, b := range bookings {
		out = append(out, toBookingResponse(b))
	}

	return out
}

func toOccupiedRanges(bookings []*entity.Booking) []OccupiedRange {
	out := make([]OccupiedRange, 0, len(bookings))
	for _, b := range bookings {
		out = append(out, OccupiedRange{
			StartDate: b.StartDate.Format(calendar.DateLayout),
			EndDate:   b.EndDate.Format(calendar.DateLayout),
		})
	}

	return out
}

// toPropertyBookings hides identities from anonymous viewers.
func toPropertyBookings(bookings []*entity.Booking, anonymous bool) PropertyBookingsResponse {
	if anonymous {
		return PropertyBookingsResponse{OccupiedRanges: toOccupiedRanges(bookings)}
	}

	return PropertyBookingsResponse{Bookings: toBookingResponses(bookings)}
}

func toReviewResponses(reviews []*entity.Review) []ReviewResponse {
	out := make([]ReviewResponse, 0, len(reviews))
	for _, r := range reviews {
		out = append(out, toReviewResponse(r))
	}

	return out
}

func toReviewResponse(r *entity.Review) ReviewResponse {
	return ReviewResponse{
		ID:         r.ID,
		PropertyID: r.PropertyID,
		UserID:     r.UserID,
		Rating:     r.Rating,
		Comment:    r.Comment,
		CreatedAt:  r.CreatedAt,
	}
}

func toBookedPropertyResponses(booked []*usecase.BookedProperty) []BookedPropertyResponse {
	out := make([]BookedPropertyResponse, 0, len(booked))
	for _, b := range booked {
		out = append(out, BookedPropertyResponse{
			Property: toPropertyResponse(b.Property),
			Bookings: toBookingResponses(b.Bookings),
		})
	}

	return out
}

func toOwnedPropertyResponses(owned []*usecase.OwnedProperty) []OwnedPropertyResponse {
	out := make([]OwnedPropertyResponse, 0, len(owned))
	for _, o := range owned {
		out = append(out, OwnedPropertyResponse{
			Property: toPropertyResponse(o.Property),
			Bookings: toBookingResponses(o.Bookings),
			Reviews:  toReviewResponses(o.Reviews),
		})
	}

	return out
}
