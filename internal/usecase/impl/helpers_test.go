package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"rental/config"
	"rental/internal/domain/entity"
	"rental/internal/domain/geo"
	"rental/internal/domain/repository"
	"rental/internal/infra/lock"
	"rental/internal/infra/persistence/postgres"
	"rental/internal/infra/persistence/sqlitetest"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func day(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}

	return t
}

func dayPtr(s string) *time.Time {
	t := day(s)

	return &t
}

func newTestConfig() *config.Config {
	return &config.Config{
		Search: &config.SearchConfig{
			MatchRadiusMiles: 25,
			MaxRadiusMiles:   100,
			Workers:          4,
		},
		Booking: &config.BookingConfig{
			LockTimeout: 2 * time.Second,
		},
	}
}

// storeEnv is a ledger and catalog backed by an in-memory SQLite database.
type storeEnv struct {
	db           *gorm.DB
	txManager    repository.TransactionManager
	userRepo     repository.UserRepository
	propertyRepo repository.PropertyRepository
	bookingRepo  repository.BookingRepository
	reviewRepo   repository.ReviewRepository
}

func newStoreEnv(t *testing.T) *storeEnv {
	t.Helper()

	db := sqlitetest.Open(t)
	require.NoError(t, postgres.Migrate(context.Background(), db, newDiscardLogger()))

	return &storeEnv{
		db:           db,
		txManager:    postgres.NewTransactionManager(db),
		userRepo:     postgres.NewUserRepository(db),
		propertyRepo: postgres.NewPropertyRepository(db),
		bookingRepo:  postgres.NewBookingRepository(db),
		reviewRepo:   postgres.NewReviewRepository(db),
	}
}

func (e *storeEnv) ledger() *bookingLedger {
	return NewBookingLedger(BookingLedgerParams{
		TxManager:   e.txManager,
		BookingRepo: e.bookingRepo,
		Locker:      lock.NewMemoryLocker(),
		Config:      newTestConfig(),
		Logger:      newDiscardLogger(),
	}).(*bookingLedger)
}

func (e *storeEnv) seedUser(t *testing.T, email string) *entity.User {
	t.Helper()

	user := &entity.User{Name: email, Email: email, PasswordHash: "hash"}
	require.NoError(t, e.userRepo.Create(context.Background(), user))

	return user
}

func (e *storeEnv) seedProperty(t *testing.T, ownerID uuid.UUID, title string, coord *geo.Coordinate) *entity.Property {
	t.Helper()

	property := &entity.Property{
		OwnerID:       ownerID,
		Title:         title,
		PricePerNight: 100,
		LocationName:  title,
		Coordinate:    coord,
	}
	require.NoError(t, e.propertyRepo.Create(context.Background(), property))

	return property
}
