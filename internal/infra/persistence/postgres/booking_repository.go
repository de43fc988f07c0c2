package postgres

import (
	"context"

	"rental/internal/domain/calendar"
	"rental/internal/domain/entity"
	domainerrors "rental/internal/domain/errors"
	"rental/internal/domain/repository"
	"rental/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

const bookingOrder = "start_date ASC, id ASC"

// bookingRepository implements repository.BookingRepository using GORM.
type bookingRepository struct {
	db *gorm.DB
}

// NewBookingRepository is the constructor for bookingRepository.
func NewBookingRepository(db *gorm.DB) repository.BookingRepository {
	return &bookingRepository{db: db}
}

// FindActiveByProperty returns every booking on a property ordered by start date.
func (repo *bookingRepository) FindActiveByProperty(ctx context.Context, propertyID uuid.UUID) ([]*entity.Booking, error) {
	var rows []*model.BookingModel
	if err := repo.db.WithContext(ctx).Where("property_id = ?", propertyID).Order(bookingOrder).Find(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list bookings by property")
	}

	return toBookingDomains(rows), nil
}

// FindByRenter returns every booking made by renterID ordered by start date.
func (repo *bookingRepository) FindByRenter(ctx context.Context, renterID uuid.UUID) ([]*entity.Booking, error) {
	var rows []*model.BookingModel
	if err := repo.db.WithContext(ctx).Where("renter_id = ?", renterID).Order(bookingOrder).Find(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list bookings by renter")
	}

	return toBookingDomains(rows), nil
}

// FindByID retrieves a single booking.
func (repo *bookingRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Booking, error) {
	var row model.BookingModel
	if err := repo.db.WithContext(ctx).Where("id = ?", id).First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrBookingNotFound
		}

		return nil, errors.Wrap(err, "failed to find booking by id")
	}

	return toBookingDomain(&row), nil
}

// Create inserts a booking and fills in its generated fields.
func (repo *bookingRepository) Create(ctx context.Context, booking *entity.Booking) error {
	if booking.ID == uuid.Nil {
		booking.ID = uuid.New()
	}
	row := fromBookingDomain(booking)

	if err := repo.db.WithContext(ctx).Create(row).Error; err != nil {
		return translateBookingWriteError(err, booking, "failed to create booking")
	}

	booking.CreatedAt = row.CreatedAt
	booking.UpdatedAt = row.UpdatedAt

	return nil
}

// Update rewrites a booking's dates.
func (repo *bookingRepository) Update(ctx context.Context, booking *entity.Booking) error {
	row := fromBookingDomain(booking)

	result := repo.db.WithContext(ctx).
		Model(&model.BookingModel{}).
		Where("id = ?", booking.ID).
		Updates(map[string]any{
			"start_date": row.StartDate,
			"end_date":   row.EndDate,
		})
	if result.Error != nil {
		return translateBookingWriteError(result.Error, booking, "failed to update booking")
	}
	if result.RowsAffected == 0 {
		return repository.ErrBookingNotFound
	}

	return nil
}

// Delete removes a booking permanently.
func (repo *bookingRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).Where("id = ?", id).Delete(&model.BookingModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete booking")
	}
	if result.RowsAffected == 0 {
		return repository.ErrBookingNotFound
	}

	return nil
}

// translateBookingWriteError maps storage constraint failures to domain errors.
func translateBookingWriteError(err error, booking *entity.Booking, details string) error {
	if isExclusionViolation(err) {
		return &domainerrors.OverlapError{
			PropertyID:     booking.PropertyID,
			RequestedStart: booking.StartDate,
			RequestedEnd:   booking.EndDate,
		}
	}
	if isForeignKeyConstraintViolation(err) {
		return domainerrors.ErrPropertyNotFound.WrapMessage("booking references a missing property or renter")
	}
	if isCheckConstraintViolation(err) {
		return domainerrors.NewInvertedRangeError(booking.StartDate, booking.EndDate)
	}

	return domainerrors.NewDatabaseExecuteError(err, details)
}

// --- Mapper Functions ---

func toBookingDomain(data *model.BookingModel) *entity.Booking {
	if data == nil {
		return nil
	}

	return &entity.Booking{
		ID:         data.ID,
		PropertyID: data.PropertyID,
		RenterID:   data.RenterID,
		StartDate:  calendar.Date(data.StartDate),
		EndDate:    calendar.Date(data.EndDate),
		CreatedAt:  data.CreatedAt,
		UpdatedAt:  data.UpdatedAt,
	}
}

func toBookingDomains(rows []*model.BookingModel) []*entity.Booking {
	out := make([]*entity.Booking, 0, len(rows))
	for _, row := range rows {
		out = append(out, toBookingDomain(row))
	}

	return out
}

func fromBookingDomain(data *entity.Booking) *model.BookingModel {
	if data == nil {
		return nil
	}

	return &model.BookingModel{
		ID:         data.ID,
		PropertyID: data.PropertyID,
		RenterID:   data.RenterID,
		StartDate:  calendar.Date(data.StartDate),
		EndDate:    calendar.Date(data.EndDate),
		CreatedAt:  data.CreatedAt,
		UpdatedAt:  data.UpdatedAt,
	}
}
