package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "rental/internal/delivery/context"
	"rental/internal/domain/entity"
	domainerrors "rental/internal/domain/errors"
	"rental/internal/domain/repository"
	"rental/internal/domain/service"
	"rental/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// propertyService implements the PropertyUsecase interface.
type propertyService struct {
	propertyRepo repository.PropertyRepository
	geocoder     service.Geocoder
	logger       *slog.Logger
}

// PropertyServiceParams holds dependencies for PropertyService, injected by Fx.
type PropertyServiceParams struct {
	fx.In

	PropertyRepo repository.PropertyRepository
	Geocoder     service.Geocoder
	Logger       *slog.Logger
}

// NewPropertyService creates the property catalog service.
func NewPropertyService(params PropertyServiceParams) usecase.PropertyUsecase {
	return &propertyService{
		propertyRepo: params.PropertyRepo,
		geocoder:     params.Geocoder,
		logger:       params.Logger,
	}
}

func (s *propertyService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, s.logger)
}

// Create stores a listing. Explicit coordinates win over a place ID.
func (s *propertyService) Create(ctx context.Context, input *usecase.CreatePropertyInput) (*entity.Property, error) {
	property := &entity.Property{
		OwnerID:       input.OwnerID,
		Title:         strings.TrimSpace(input.Title),
		Description:   input.Description,
		PricePerNight: input.PricePerNight,
		LocationName:  strings.TrimSpace(input.LocationName),
	}

	switch {
	case input.Coordinate != nil:
		if err := input.Coordinate.Validate(); err != nil {
			return nil, err
		}
		coord := *input.Coordinate
		property.Coordinate = &coord

	case input.PlaceID != "":
		coord, err := s.geocoder.Resolve(ctx, input.PlaceID)
		if err != nil {
			s.log(ctx).Warn("Failed to geocode listing location",
				slog.String("place_id", input.PlaceID),
				slog.Any("error", err),
			)

			return nil, errors.Wrap(domainerrors.ErrLocationUnresolved, err.Error())
		}
		property.Coordinate = coord
	}

	if err := s.propertyRepo.Create(ctx, property); err != nil {
		return nil, errors.Wrap(err, "failed to create property")
	}

	s.log(ctx).Info("Property created",
		slog.String("property_id", property.ID.String()),
		slog.Bool("geocoded", property.HasCoordinate()),
	)

	return property, nil
}

// List returns the catalog in creation order.
func (s *propertyService) List(ctx context.Context) ([]*entity.Property, error) {
	properties, err := s.propertyRepo.FindAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list properties")
	}

	return properties, nil
}

// Get returns a single listing.
func (s *propertyService) Get(ctx context.Context, id uuid.UUID) (*entity.Property, error) {
	property, err := s.propertyRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrPropertyNotFound) {
			return nil, domainerrors.ErrPropertyNotFound
		}

		return nil, errors.Wrap(err, "failed to find property")
	}

	return property, nil
}
