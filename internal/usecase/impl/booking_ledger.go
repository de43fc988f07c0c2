package impl

import (
	"context"
	"log/slog"
	"time"

	"rental/config"
	deliverycontext "rental/internal/delivery/context"
	"rental/internal/domain/calendar"
	"rental/internal/domain/entity"
	domainerrors "rental/internal/domain/errors"
	"rental/internal/domain/repository"
	"rental/internal/domain/service"
	"rental/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const defaultLockTimeout = 5 * time.Second

// bookingLedger implements the BookingUsecase interface.
// Writes to one property are serialized by the property locker and, inside the
// transaction, by a row lock on the property.
type bookingLedger struct {
	txManager   repository.TransactionManager
	bookingRepo repository.BookingRepository
	locker      service.PropertyLocker
	publisher   service.EventPublisher
	lockTimeout time.Duration
	now         func() time.Time
	logger      *slog.Logger
}

// BookingLedgerParams holds dependencies for the booking ledger, injected by Fx.
type BookingLedgerParams struct {
	fx.In

	TxManager   repository.TransactionManager
	BookingRepo repository.BookingRepository
	Locker      service.PropertyLocker
	Publisher   service.EventPublisher `optional:"true"`
	Config      *config.Config
	Logger      *slog.Logger
}

// NewBookingLedger creates the booking ledger.
func NewBookingLedger(params BookingLedgerParams) usecase.BookingUsecase {
	lockTimeout := defaultLockTimeout
	if params.Config != nil && params.Config.Booking != nil && params.Config.Booking.LockTimeout > 0 {
		lockTimeout = params.Config.Booking.LockTimeout
	}

	return &bookingLedger{
		txManager:   params.TxManager,
		bookingRepo: params.BookingRepo,
		locker:      params.Locker,
		publisher:   params.Publisher,
		lockTimeout: lockTimeout,
		now:         time.Now,
		logger:      params.Logger,
	}
}

func (l *bookingLedger) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, l.logger)
}

// ListActive returns every booking on the property, ordered by start date.
func (l *bookingLedger) ListActive(ctx context.Context, propertyID uuid.UUID) ([]*entity.Booking, error) {
	bookings, err := l.bookingRepo.FindActiveByProperty(ctx, propertyID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list bookings")
	}

	return bookings, nil
}

// Create reserves the requested days if no existing booking overlaps them.
func (l *bookingLedger) Create(ctx context.Context, input *usecase.CreateBookingInput) (*entity.Booking, error) {
	requested, err := calendar.NewRange(input.StartDate, input.EndDate)
	if err != nil {
		return nil, err
	}

	unlock, err := l.lockProperty(ctx, input.PropertyID)
	if err != nil {
		return nil, err
	}
	defer unlock()

	var booking *entity.Booking
	err = l.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if _, err := repoFactory.PropertyRepo().LockForUpdate(ctx, input.PropertyID); err != nil {
			return err
		}

		bookingRepo := repoFactory.BookingRepo()
		existing, err := bookingRepo.FindActiveByProperty(ctx, input.PropertyID)
		if err != nil {
			return errors.Wrap(err, "failed to load property calendar")
		}

		if conflict := findConflict(existing, requested, uuid.Nil); conflict != nil {
			return newOverlapError(input.PropertyID, conflict, requested)
		}

		booking = &entity.Booking{
			PropertyID: input.PropertyID,
			RenterID:   input.RenterID,
			StartDate:  requested.Start,
			EndDate:    requested.End,
		}

		return bookingRepo.Create(ctx, booking)
	})
	if err != nil {
		return nil, l.translateError(ctx, err, "create booking")
	}

	l.log(ctx).Info("Booking created",
		slog.String("booking_id", booking.ID.String()),
		slog.String("property_id", booking.PropertyID.String()),
		slog.String("range", requested.String()),
	)
	l.publish(ctx, service.BookingEventCreated, booking)

	return booking, nil
}

// Update moves a booking to new dates. The booking never conflicts with itself.
// Omitted dates keep the value stored at the time the property lock is held.
func (l *bookingLedger) Update(ctx context.Context, bookingID, requestorID uuid.UUID, input *usecase.UpdateBookingInput) (*entity.Booking, error) {
	current, err := l.loadOwnedBooking(ctx, l.bookingRepo, bookingID, requestorID)
	if err != nil {
		return nil, err
	}

	if input.StartDate != nil && input.EndDate != nil {
		if _, err := calendar.NewRange(*input.StartDate, *input.EndDate); err != nil {
			return nil, err
		}
	}

	unlock, err := l.lockProperty(ctx, current.PropertyID)
	if err != nil {
		return nil, err
	}
	defer unlock()

	var (
		booking   *entity.Booking
		requested calendar.Range
	)
	err = l.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if _, err := repoFactory.PropertyRepo().LockForUpdate(ctx, current.PropertyID); err != nil {
			return err
		}

		bookingRepo := repoFactory.BookingRepo()

		// Re-read under the lock: the booking may have been moved or deleted meanwhile.
		fresh, err := l.loadOwnedBooking(ctx, bookingRepo, bookingID, requestorID)
		if err != nil {
			return err
		}

		requested, err = mergeRange(fresh, input)
		if err != nil {
			return err
		}

		existing, err := bookingRepo.FindActiveByProperty(ctx, fresh.PropertyID)
		if err != nil {
			return errors.Wrap(err, "failed to load property calendar")
		}

		if conflict := findConflict(existing, requested, fresh.ID); conflict != nil {
			return newOverlapError(fresh.PropertyID, conflict, requested)
		}

		fresh.StartDate = requested.Start
		fresh.EndDate = requested.End
		booking = fresh

		return bookingRepo.Update(ctx, fresh)
	})
	if err != nil {
		return nil, l.translateError(ctx, err, "update booking")
	}

	l.log(ctx).Info("Booking updated",
		slog.String("booking_id", booking.ID.String()),
		slog.String("range", requested.String()),
	)
	l.publish(ctx, service.BookingEventUpdated, booking)

	return booking, nil
}

// Delete cancels a booking permanently.
func (l *bookingLedger) Delete(ctx context.Context, bookingID, requestorID uuid.UUID) error {
	var deleted *entity.Booking
	err := l.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		bookingRepo := repoFactory.BookingRepo()

		booking, err := l.loadOwnedBooking(ctx, bookingRepo, bookingID, requestorID)
		if err != nil {
			return err
		}

		if err := bookingRepo.Delete(ctx, booking.ID); err != nil {
			return err
		}
		deleted = booking

		return nil
	})
	if err != nil {
		return l.translateError(ctx, err, "delete booking")
	}

	l.log(ctx).Info("Booking deleted", slog.String("booking_id", bookingID.String()))
	l.publish(ctx, service.BookingEventDeleted, deleted)

	return nil
}

func (l *bookingLedger) loadOwnedBooking(ctx context.Context, bookingRepo repository.BookingRepository, bookingID, requestorID uuid.UUID) (*entity.Booking, error) {
	booking, err := bookingRepo.FindByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, repository.ErrBookingNotFound) {
			return nil, domainerrors.ErrBookingNotFound
		}

		return nil, errors.Wrap(err, "failed to find booking")
	}

	if !booking.IsRentedBy(requestorID) {
		l.log(ctx).Warn("Booking ownership violation",
			slog.String("booking_id", bookingID.String()),
			slog.String("requestor_id", requestorID.String()),
		)

		return nil, domainerrors.ErrBookingOwnershipViolation
	}

	return booking, nil
}

// lockProperty waits at most lockTimeout for the property's write lock.
func (l *bookingLedger) lockProperty(ctx context.Context, propertyID uuid.UUID) (func(), error) {
	lockCtx, cancel := context.WithTimeout(ctx, l.lockTimeout)
	defer cancel()

	unlock, err := l.locker.Lock(lockCtx, propertyID)
	if err != nil {
		if ctx.Err() != nil {
			return nil, errors.WithStack(ctx.Err())
		}

		l.log(ctx).Warn("Property lock unavailable",
			slog.String("property_id", propertyID.String()),
			slog.Duration("timeout", l.lockTimeout),
			slog.Any("error", err),
		)

		return nil, domainerrors.ErrBookingBusy
	}

	return unlock, nil
}

func (l *bookingLedger) translateError(ctx context.Context, err error, op string) error {
	if errors.Is(err, repository.ErrPropertyNotFound) {
		return domainerrors.ErrPropertyNotFound
	}
	if errors.Is(err, repository.ErrBookingNotFound) {
		return domainerrors.ErrBookingNotFound
	}

	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		return err
	}

	l.log(ctx).Error("Booking ledger failure", slog.String("op", op), slog.Any("error", err))

	return errors.Wrapf(err, "failed to %s", op)
}

// publish emits a booking event. Failures are logged and never undo the write.
func (l *bookingLedger) publish(ctx context.Context, eventType string, booking *entity.Booking) {
	if l.publisher == nil || booking == nil {
		return
	}

	event := &service.BookingEvent{
		RequestID:  deliverycontext.GetRequestIDFromContext(ctx),
		Type:       eventType,
		BookingID:  booking.ID.String(),
		PropertyID: booking.PropertyID.String(),
		RenterID:   booking.RenterID.String(),
		OccurredAt: l.now().UTC().Format(time.RFC3339),
	}
	if eventType != service.BookingEventDeleted {
		event.StartDate = booking.StartDate.Format(calendar.DateLayout)
		event.EndDate = booking.EndDate.Format(calendar.DateLayout)
	}

	if err := l.publisher.PublishBookingEvent(ctx, event); err != nil {
		l.log(ctx).Warn("Failed to publish booking event",
			slog.String("type", eventType),
			slog.String("booking_id", event.BookingID),
			slog.Any("error", err),
		)
	}
}

// mergeRange fills the dates input omits from b and validates the result.
func mergeRange(b *entity.Booking, input *usecase.UpdateBookingInput) (calendar.Range, error) {
	start, end := b.StartDate, b.EndDate
	if input.StartDate != nil {
		start = *input.StartDate
	}
	if input.EndDate != nil {
		end = *input.EndDate
	}

	return calendar.NewRange(start, end)
}

// findConflict returns the first booking, other than excludeID, that overlaps requested.
func findConflict(bookings []*entity.Booking, requested calendar.Range, excludeID uuid.UUID) *entity.Booking {
	for _, b := range bookings {
		if b.ID == excludeID {
			continue
		}
		if b.Overlaps(requested) {
			return b
		}
	}

	return nil
}

func newOverlapError(propertyID uuid.UUID, conflict *entity.Booking, requested calendar.Range) *domainerrors.OverlapError {
	return &domainerrors.OverlapError{
		PropertyID:         propertyID,
		ConflictingBooking: conflict.ID,
		ConflictStart:      conflict.StartDate,
		ConflictEnd:        conflict.EndDate,
		RequestedStart:     requested.Start,
		RequestedEnd:       requested.End,
	}
}
