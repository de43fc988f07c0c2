package model

import (
	"time"

	"github.com/google/uuid"
)

// ReviewModel mirrors the 'reviews' table.
type ReviewModel struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	PropertyID uuid.UUID `gorm:"type:uuid;not null;index"`
	UserID     uuid.UUID `gorm:"type:uuid;not null;index"`
	Rating     int       `gorm:"not null;check:rating_range,rating >= 1 AND rating <= 5"`
	Comment    string    `gorm:"type:text"`
	CreatedAt  time.Time

	Property *PropertyModel `gorm:"foreignKey:PropertyID;constraint:OnDelete:CASCADE"`
	User     *UserModel     `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (ReviewModel) TableName() string {
	return "reviews"
}

// All lists every model in dependency order for migrations.
func All() []any {
	return []any{
		&UserModel{},
		&PropertyModel{},
		&BookingModel{},
		&ReviewModel{},
	}
}
