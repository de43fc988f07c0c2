package entity

import (
	"time"

	"github.com/google/uuid"
)

const (
	MinReviewRating = 1
	MaxReviewRating = 5
)

// Review is a rating left by a user who has booked the property.
type Review struct {
	ID         uuid.UUID
	PropertyID uuid.UUID
	UserID     uuid.UUID
	Rating     int
	Comment    string
	CreatedAt  time.Time
}
