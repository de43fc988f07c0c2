package impl

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	deliverycontext "rental/internal/delivery/context"
	"rental/internal/domain/entity"
	domainerrors "rental/internal/domain/errors"
	"rental/internal/domain/repository"
	"rental/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// reviewService implements the ReviewUsecase interface.
type reviewService struct {
	propertyRepo repository.PropertyRepository
	bookingRepo  repository.BookingRepository
	reviewRepo   repository.ReviewRepository
	logger       *slog.Logger
}

// ReviewServiceParams holds dependencies for ReviewService, injected by Fx.
type ReviewServiceParams struct {
	fx.In

	PropertyRepo repository.PropertyRepository
	BookingRepo  repository.BookingRepository
	ReviewRepo   repository.ReviewRepository
	Logger       *slog.Logger
}

// NewReviewService creates the review service.
func NewReviewService(params ReviewServiceParams) usecase.ReviewUsecase {
	return &reviewService{
		propertyRepo: params.PropertyRepo,
		bookingRepo:  params.BookingRepo,
		reviewRepo:   params.ReviewRepo,
		logger:       params.Logger,
	}
}

// Create stores a review from a user who holds at least one booking on the property.
func (s *reviewService) Create(ctx context.Context, input *usecase.CreateReviewInput) (*entity.Review, error) {
	if input.Rating < entity.MinReviewRating || input.Rating > entity.MaxReviewRating {
		return nil, domainerrors.ErrValidationFailed.WithDetails(
			fmt.Sprintf("rating must be between %d and %d", entity.MinReviewRating, entity.MaxReviewRating))
	}

	if _, err := s.propertyRepo.FindByID(ctx, input.PropertyID); err != nil {
		if errors.Is(err, repository.ErrPropertyNotFound) {
			return nil, domainerrors.ErrPropertyNotFound
		}

		return nil, errors.Wrap(err, "failed to find property")
	}

	bookings, err := s.bookingRepo.FindByRenter(ctx, input.UserID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load user bookings")
	}
	if !hasBookingOn(bookings, input) {
		return nil, domainerrors.ErrReviewRequiresBooking
	}

	review := &entity.Review{
		PropertyID: input.PropertyID,
		UserID:     input.UserID,
		Rating:     input.Rating,
		Comment:    strings.TrimSpace(input.Comment),
	}
	if err := s.reviewRepo.Create(ctx, review); err != nil {
		return nil, errors.Wrap(err, "failed to create review")
	}

	deliverycontext.GetLoggerOrDefault(ctx, s.logger).Info("Review created",
		slog.String("review_id", review.ID.String()),
		slog.String("property_id", review.PropertyID.String()),
	)

	return review, nil
}

func hasBookingOn(bookings []*entity.Booking, input *usecase.CreateReviewInput) bool {
	for _, b := range bookings {
		if b.PropertyID == input.PropertyID {
			return true
		}
	}

	return false
}
