package impl

import (
	"context"
	"testing"

	"rental/internal/domain/entity"
	domainerrors "rental/internal/domain/errors"
	"rental/internal/domain/geo"
	"rental/internal/domain/repository"
	mockRepo "rental/internal/mocks/repository"
	mockSvc "rental/internal/mocks/service"
	"rental/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type propertyServiceFixtures struct {
	service      usecase.PropertyUsecase
	propertyRepo *mockRepo.MockPropertyRepository
	geocoder     *mockSvc.MockGeocoder
}

func createTestPropertyService(t *testing.T) propertyServiceFixtures {
	propertyRepo := mockRepo.NewMockPropertyRepository(t)
	geocoder := mockSvc.NewMockGeocoder(t)

	return propertyServiceFixtures{
		service: NewPropertyService(PropertyServiceParams{
			PropertyRepo: propertyRepo,
			Geocoder:     geocoder,
			Logger:       newDiscardLogger(),
		}),
		propertyRepo: propertyRepo,
		geocoder:     geocoder,
	}
}

func TestPropertyService_Create_WithCoordinate(t *testing.T) {
	fx := createTestPropertyService(t)

	ctx := context.Background()
	fx.propertyRepo.EXPECT().
		Create(ctx, mock.MatchedBy(func(p *entity.Property) bool {
			return p.Title == "Loft" && p.Coordinate != nil && p.Coordinate.Lat == 40.7
		})).
		Return(nil)

	property, err := fx.service.Create(ctx, &usecase.CreatePropertyInput{
		OwnerID:      uuid.New(),
		Title:        " Loft ",
		PlaceID:      "ignored",
		LocationName: "New York",
		Coordinate:   &geo.Coordinate{Lat: 40.7, Lng: -74},
	})

	require.NoError(t, err)
	assert.True(t, property.HasCoordinate())
}

func TestPropertyService_Create_InvalidCoordinate(t *testing.T) {
	fx := createTestPropertyService(t)

	_, err := fx.service.Create(context.Background(), &usecase.CreatePropertyInput{
		OwnerID:    uuid.New(),
		Title:      "Loft",
		Coordinate: &geo.Coordinate{Lat: 10, Lng: 181},
	})

	assert.ErrorIs(t, err, domainerrors.ErrInvalidCoordinate)
}

func TestPropertyService_Create_GeocodesPlace(t *testing.T) {
	fx := createTestPropertyService(t)

	ctx := context.Background()
	fx.geocoder.EXPECT().Resolve(ctx, "place-1").Return(&geo.Coordinate{Lat: 48.85, Lng: 2.35}, nil)
	fx.propertyRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Property")).Return(nil)

	property, err := fx.service.Create(ctx, &usecase.CreatePropertyInput{
		OwnerID: uuid.New(),
		Title:   "Flat",
		PlaceID: "place-1",
	})

	require.NoError(t, err)
	require.NotNil(t, property.Coordinate)
	assert.InDelta(t, 48.85, property.Coordinate.Lat, 1e-9)
}

func TestPropertyService_Create_GeocodeFailure(t *testing.T) {
	fx := createTestPropertyService(t)

	ctx := context.Background()
	fx.geocoder.EXPECT().Resolve(ctx, "place-1").
		Return(nil, &domainerrors.GeocodeUnavailableError{PlaceID: "place-1", Cause: errors.New("timeout")})

	_, err := fx.service.Create(ctx, &usecase.CreatePropertyInput{
		OwnerID: uuid.New(),
		Title:   "Flat",
		PlaceID: "place-1",
	})

	assert.ErrorIs(t, err, domainerrors.ErrLocationUnresolved)
}

func TestPropertyService_Create_WithoutLocation(t *testing.T) {
	fx := createTestPropertyService(t)

	ctx := context.Background()
	fx.propertyRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Property")).Return(nil)

	property, err := fx.service.Create(ctx, &usecase.CreatePropertyInput{OwnerID: uuid.New(), Title: "Shack"})

	require.NoError(t, err)
	assert.False(t, property.HasCoordinate())
}

func TestPropertyService_Get(t *testing.T) {
	fx := createTestPropertyService(t)

	ctx := context.Background()
	id := uuid.New()
	fx.propertyRepo.EXPECT().FindByID(ctx, id).Return(&entity.Property{ID: id}, nil).Once()
	fx.propertyRepo.EXPECT().FindByID(ctx, id).Return(nil, repository.ErrPropertyNotFound).Once()

	property, err := fx.service.Get(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, id, property.ID)

	_, err = fx.service.Get(ctx, id)
	assert.ErrorIs(t, err, domainerrors.ErrPropertyNotFound)
}

func TestPropertyService_List(t *testing.T) {
	fx := createTestPropertyService(t)

	ctx := context.Background()
	fx.propertyRepo.EXPECT().FindAll(ctx).Return([]*entity.Property{{ID: uuid.New()}, {ID: uuid.New()}}, nil)

	properties, err := fx.service.List(ctx)

	require.NoError(t, err)
	assert.Len(t, properties, 2)
}
