package model

import (
	"time"

	"github.com/google/uuid"
)

// PropertyModel mirrors the 'properties' table. Latitude and longitude are
// either both set or both NULL.
type PropertyModel struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	OwnerID       uuid.UUID `gorm:"type:uuid;not null;index"`
	Title         string    `gorm:"type:varchar(200);not null"`
	Description   string    `gorm:"type:text"`
	PricePerNight float64   `gorm:"not null"`
	LocationName  string    `gorm:"type:varchar(255)"`
	Latitude      *float64  `gorm:"index:idx_properties_lat_lng"`
	Longitude     *float64  `gorm:"index:idx_properties_lat_lng"`
	CreatedAt     time.Time `gorm:"index"`
	UpdatedAt     time.Time

	Owner *UserModel `gorm:"foreignKey:OwnerID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (PropertyModel) TableName() string {
	return "properties"
}
