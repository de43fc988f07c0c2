package view

import (
	"testing"
	"time"

	"rental/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func booking(propertyID, renterID uuid.UUID, start string) *entity.Booking {
	s, _ := time.Parse("2006-01-02", start)

	return &entity.Booking{
		ID:         uuid.New(),
		PropertyID: propertyID,
		RenterID:   renterID,
		StartDate:  s,
		EndDate:    s.AddDate(0, 0, 2),
	}
}

func TestScopeBookings_OnlyViewerRows(t *testing.T) {
	p := uuid.New()
	u1, u2 := uuid.New(), uuid.New()
	b1 := booking(p, u1, "2025-03-01")
	b2 := booking(p, u2, "2025-04-01")

	got := ScopeBookings([]*entity.Booking{b1, b2}, &u1)

	require.Len(t, got, 1)
	assert.Equal(t, b1.ID, got[0].ID)
	for _, b := range got {
		assert.NotEqual(t, u2, b.RenterID)
	}
}

func TestScopeBookings_NilViewerSeesAll(t *testing.T) {
	p := uuid.New()
	all := []*entity.Booking{booking(p, uuid.New(), "2025-03-01"), booking(p, uuid.New(), "2025-04-01")}

	got := ScopeBookings(all, nil)

	assert.ElementsMatch(t, all, got)
}

func TestScopeBookings_StrangerSeesNothing(t *testing.T) {
	p := uuid.New()
	stranger := uuid.New()

	got := ScopeBookings([]*entity.Booking{booking(p, uuid.New(), "2025-03-01")}, &stranger)

	assert.Empty(t, got)
}

func TestGroupByProperty(t *testing.T) {
	p1, p2 := uuid.New(), uuid.New()
	user, other := uuid.New(), uuid.New()

	bookings := []*entity.Booking{
		booking(p1, user, "2025-03-01"),
		booking(p2, user, "2025-03-10"),
		booking(p1, other, "2025-03-20"),
		booking(p1, user, "2025-04-01"),
	}

	groups := GroupByProperty(bookings, user)

	require.Len(t, groups, 2)
	assert.Equal(t, p1, groups[0].PropertyID)
	assert.Len(t, groups[0].Bookings, 2)
	assert.Equal(t, p2, groups[1].PropertyID)
	assert.Len(t, groups[1].Bookings, 1)

	for _, g := range groups {
		for _, b := range g.Bookings {
			assert.Equal(t, user, b.RenterID)
			assert.Equal(t, g.PropertyID, b.PropertyID)
		}
	}

	// Stable for a fixed input.
	again := GroupByProperty(bookings, user)
	assert.Equal(t, groups, again)
}

func TestCanSeeAllBookings(t *testing.T) {
	owner, renter := uuid.New(), uuid.New()
	p := &entity.Property{ID: uuid.New(), OwnerID: owner}

	assert.True(t, CanSeeAllBookings(p, &owner))
	assert.False(t, CanSeeAllBookings(p, &renter))
	assert.False(t, CanSeeAllBookings(p, nil))
}
