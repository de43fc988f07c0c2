package postgres

import (
	"context"

	"rental/internal/domain/entity"
	domainerrors "rental/internal/domain/errors"
	"rental/internal/domain/geo"
	"rental/internal/domain/repository"
	"rental/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/plugin/dbresolver"
)

const catalogOrder = "created_at ASC, id ASC"

// propertyRepository implements repository.PropertyRepository using GORM.
type propertyRepository struct {
	db *gorm.DB
}

// NewPropertyRepository is the constructor for propertyRepository.
func NewPropertyRepository(db *gorm.DB) repository.PropertyRepository {
	return &propertyRepository{db: db}
}

// FindAll returns the full catalog in catalog order.
func (repo *propertyRepository) FindAll(ctx context.Context) ([]*entity.Property, error) {
	var rows []*model.PropertyModel
	if err := repo.db.WithContext(ctx).Order(catalogOrder).Find(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list properties")
	}

	return toPropertyDomains(rows), nil
}

// FindWithinBound returns geocoded properties whose coordinate lies inside bound.
func (repo *propertyRepository) FindWithinBound(ctx context.Context, bound orb.Bound) ([]*entity.Property, error) {
	var rows []*model.PropertyModel
	err := repo.db.WithContext(ctx).
		Where("latitude IS NOT NULL AND longitude IS NOT NULL").
		Where("latitude BETWEEN ? AND ?", bound.Min.Lat(), bound.Max.Lat()).
		Where("longitude BETWEEN ? AND ?", bound.Min.Lon(), bound.Max.Lon()).
		Order(catalogOrder).
		Find(&rows).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list properties within bound")
	}

	return toPropertyDomains(rows), nil
}

// FindByID retrieves a single property.
func (repo *propertyRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Property, error) {
	var row model.PropertyModel
	if err := repo.db.WithContext(ctx).Where("id = ?", id).First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrPropertyNotFound
		}

		return nil, errors.Wrap(err, "failed to find property by id")
	}

	return toPropertyDomain(&row), nil
}

// FindByIDs retrieves the existing properties among ids in catalog order.
func (repo *propertyRepository) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]*entity.Property, error) {
	if len(ids) == 0 {
		return []*entity.Property{}, nil
	}

	var rows []*model.PropertyModel
	if err := repo.db.WithContext(ctx).Where("id IN ?", ids).Order(catalogOrder).Find(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find properties by ids")
	}

	return toPropertyDomains(rows), nil
}

// FindByOwner returns an owner's listings in catalog order.
func (repo *propertyRepository) FindByOwner(ctx context.Context, ownerID uuid.UUID) ([]*entity.Property, error) {
	var rows []*model.PropertyModel
	if err := repo.db.WithContext(ctx).Where("owner_id = ?", ownerID).Order(catalogOrder).Find(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find properties by owner")
	}

	return toPropertyDomains(rows), nil
}

// Create persists a new listing and fills in its generated fields.
func (repo *propertyRepository) Create(ctx context.Context, property *entity.Property) error {
	if property.ID == uuid.Nil {
		property.ID = uuid.New()
	}
	row := fromPropertyDomain(property)

	if err := repo.db.WithContext(ctx).Create(row).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrUserNotFound.WrapMessage("property owner does not exist")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required property information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create property")
	}

	property.CreatedAt = row.CreatedAt
	property.UpdatedAt = row.UpdatedAt

	return nil
}

// LockForUpdate reads the property from the primary with SELECT ... FOR UPDATE.
func (repo *propertyRepository) LockForUpdate(ctx context.Context, id uuid.UUID) (*entity.Property, error) {
	var row model.PropertyModel
	err := repo.db.WithContext(ctx).
		Clauses(dbresolver.Write, clause.Locking{Strength: clause.LockingStrengthUpdate}).
		Where("id = ?", id).
		First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrPropertyNotFound
		}

		return nil, errors.Wrap(err, "failed to lock property")
	}

	return toPropertyDomain(&row), nil
}

// --- Mapper Functions ---

func toPropertyDomain(data *model.PropertyModel) *entity.Property {
	if data == nil {
		return nil
	}

	var coord *geo.Coordinate
	if data.Latitude != nil && data.Longitude != nil {
		coord = &geo.Coordinate{Lat: *data.Latitude, Lng: *data.Longitude}
	}

	return &entity.Property{
		ID:            data.ID,
		OwnerID:       data.OwnerID,
		Title:         data.Title,
		Description:   data.Description,
		PricePerNight: data.PricePerNight,
		LocationName:  data.LocationName,
		Coordinate:    coord,
		CreatedAt:     data.CreatedAt,
		UpdatedAt:     data.UpdatedAt,
	}
}

func toPropertyDomains(rows []*model.PropertyModel) []*entity.Property {
	out := make([]*entity.Property, 0, len(rows))
	for _, row := range rows {
		out = append(out, toPropertyDomain(row))
	}

	return out
}

func fromPropertyDomain(data *entity.Property) *model.PropertyModel {
	if data == nil {
		return nil
	}

	row := &model.PropertyModel{
		ID:            data.ID,
		OwnerID:       data.OwnerID,
		Title:         data.Title,
		Description:   data.Description,
		PricePerNight: data.PricePerNight,
		LocationName:  data.LocationName,
		CreatedAt:     data.CreatedAt,
		UpdatedAt:     data.UpdatedAt,
	}
	if data.Coordinate != nil {
		lat, lng := data.Coordinate.Lat, data.Coordinate.Lng
		row.Latitude = &lat
		row.Longitude = &lng
	}

	return row
}
