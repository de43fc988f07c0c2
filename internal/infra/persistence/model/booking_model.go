package model

import (
	"time"

	"github.com/google/uuid"
)

// BookingModel mirrors the 'bookings' table. Dates are inclusive calendar days.
// On PostgreSQL an exclusion constraint forbids overlapping rows per property.
type BookingModel struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	PropertyID uuid.UUID `gorm:"type:uuid;not null;index:idx_bookings_property_start"`
	RenterID   uuid.UUID `gorm:"type:uuid;not null;index"`
	StartDate  time.Time `gorm:"type:date;not null;index:idx_bookings_property_start;check:booking_range,start_date <= end_date"`
	EndDate    time.Time `gorm:"type:date;not null"`
	CreatedAt  time.Time
	UpdatedAt  time.Time

	Property *PropertyModel `gorm:"foreignKey:PropertyID;constraint:OnDelete:CASCADE"`
	Renter   *UserModel     `gorm:"foreignKey:RenterID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (BookingModel) TableName() string {
	return "bookings"
}
