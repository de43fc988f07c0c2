package impl

import (
	"context"
	"log/slog"

	deliverycontext "rental/internal/delivery/context"
	"rental/internal/domain/entity"
	domainerrors "rental/internal/domain/errors"
	"rental/internal/domain/repository"
	"rental/internal/domain/view"
	"rental/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// projectionService implements the ProjectionUsecase interface on top of the pure view package.
type projectionService struct {
	userRepo     repository.UserRepository
	propertyRepo repository.PropertyRepository
	bookingRepo  repository.BookingRepository
	reviewRepo   repository.ReviewRepository
	logger       *slog.Logger
}

// ProjectionServiceParams holds dependencies for ProjectionService, injected by Fx.
type ProjectionServiceParams struct {
	fx.In

	UserRepo     repository.UserRepository
	PropertyRepo repository.PropertyRepository
	BookingRepo  repository.BookingRepository
	ReviewRepo   repository.ReviewRepository
	Logger       *slog.Logger
}

// NewProjectionService creates the scoped view projector.
func NewProjectionService(params ProjectionServiceParams) usecase.ProjectionUsecase {
	return &projectionService{
		userRepo:     params.UserRepo,
		propertyRepo: params.PropertyRepo,
		bookingRepo:  params.BookingRepo,
		reviewRepo:   params.ReviewRepo,
		logger:       params.Logger,
	}
}

func (s *projectionService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, s.logger)
}

// ProjectPropertyBookings returns only the viewer's own rows, or every row for an anonymous viewer.
// Owners get the full calendar through PropertyDetail and ProjectOwnedProperties.
func (s *projectionService) ProjectPropertyBookings(ctx context.Context, propertyID uuid.UUID, viewerID *uuid.UUID) ([]*entity.Booking, error) {
	if _, err := s.findProperty(ctx, propertyID); err != nil {
		return nil, err
	}

	bookings, err := s.bookingRepo.FindActiveByProperty(ctx, propertyID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load property bookings")
	}

	return view.ScopeBookings(bookings, viewerID), nil
}

// ProjectUserBookedProperties pairs each property the user booked with the user's own rows on it.
func (s *projectionService) ProjectUserBookedProperties(ctx context.Context, userID uuid.UUID) ([]*usecase.BookedProperty, error) {
	bookings, err := s.bookingRepo.FindByRenter(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load user bookings")
	}

	groups := view.GroupByProperty(bookings, userID)
	if len(groups) == 0 {
		return []*usecase.BookedProperty{}, nil
	}

	ids := make([]uuid.UUID, 0, len(groups))
	for _, g := range groups {
		ids = append(ids, g.PropertyID)
	}

	properties, err := s.propertyRepo.FindByIDs(ctx, ids)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load booked properties")
	}

	byID := make(map[uuid.UUID]*entity.Property, len(properties))
	for _, p := range properties {
		byID[p.ID] = p
	}

	out := make([]*usecase.BookedProperty, 0, len(groups))
	for _, g := range groups {
		property, ok := byID[g.PropertyID]
		if !ok {
			s.log(ctx).Warn("Booked property no longer exists", slog.String("property_id", g.PropertyID.String()))

			continue
		}
		out = append(out, &usecase.BookedProperty{Property: property, Bookings: g.Bookings})
	}

	return out, nil
}

// ProjectOwnedProperties lists an owner's listings with their full calendars and reviews.
func (s *projectionService) ProjectOwnedProperties(ctx context.Context, ownerID uuid.UUID) ([]*usecase.OwnedProperty, error) {
	properties, err := s.propertyRepo.FindByOwner(ctx, ownerID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load owned properties")
	}

	out := make([]*usecase.OwnedProperty, 0, len(properties))
	for _, p := range properties {
		bookings, err := s.bookingRepo.FindActiveByProperty(ctx, p.ID)
		if err != nil {
			return nil, errors.Wrap(err, "failed to load property bookings")
		}

		reviews, err := s.reviewRepo.FindByProperty(ctx, p.ID)
		if err != nil {
			return nil, errors.Wrap(err, "failed to load property reviews")
		}

		out = append(out, &usecase.OwnedProperty{Property: p, Bookings: bookings, Reviews: reviews})
	}

	return out, nil
}

// PropertyDetail returns a listing with its reviews and the bookings the viewer may see.
func (s *projectionService) PropertyDetail(ctx context.Context, propertyID uuid.UUID, viewerID *uuid.UUID) (*usecase.PropertyDetail, error) {
	property, err := s.findProperty(ctx, propertyID)
	if err != nil {
		return nil, err
	}

	reviews, err := s.reviewRepo.FindByProperty(ctx, propertyID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load property reviews")
	}

	bookings, err := s.bookingRepo.FindActiveByProperty(ctx, propertyID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load property bookings")
	}

	isOwner := view.CanSeeAllBookings(property, viewerID)
	scoped := view.ScopeBookings(bookings, viewerID)
	if isOwner {
		scoped = view.ScopeBookings(bookings, nil)
	}

	return &usecase.PropertyDetail{
		Property:      property,
		Reviews:       reviews,
		Bookings:      scoped,
		ViewerIsOwner: isOwner,
		Anonymous:     viewerID == nil,
	}, nil
}

// Profile returns both sides of the user's account.
func (s *projectionService) Profile(ctx context.Context, userID uuid.UUID) (*usecase.Profile, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user")
	}

	owned, err := s.ProjectOwnedProperties(ctx, userID)
	if err != nil {
		return nil, err
	}

	booked, err := s.ProjectUserBookedProperties(ctx, userID)
	if err != nil {
		return nil, err
	}

	return &usecase.Profile{User: user, Owned: owned, Booked: booked}, nil
}

func (s *projectionService) findProperty(ctx context.Context, propertyID uuid.UUID) (*entity.Property, error) {
	property, err := s.propertyRepo.FindByID(ctx, propertyID)
	if err != nil {
		if errors.Is(err, repository.ErrPropertyNotFound) {
			return nil, domainerrors.ErrPropertyNotFound
		}

		return nil, errors.Wrap(err, "failed to find property")
	}

	return property, nil
}
