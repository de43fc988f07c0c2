package postgres

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"rental/internal/domain/entity"
	domainerrors "rental/internal/domain/errors"
	"rental/internal/domain/geo"
	"rental/internal/domain/repository"
	"rental/internal/infra/persistence/sqlitetest"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db := sqlitetest.Open(t)
	require.NoError(t, Migrate(context.Background(), db, slog.New(slog.NewTextHandler(io.Discard, nil))))

	return db
}

func date(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}

	return t
}

func seedUser(t *testing.T, db *gorm.DB, email string) *entity.User {
	t.Helper()

	user := &entity.User{Name: "Test User", Email: email, PasswordHash: "hash"}
	require.NoError(t, NewUserRepository(db).Create(context.Background(), user))

	return user
}

func seedProperty(t *testing.T, db *gorm.DB, ownerID uuid.UUID, title string, coord *geo.Coordinate) *entity.Property {
	t.Helper()

	property := &entity.Property{
		OwnerID:       ownerID,
		Title:         title,
		PricePerNight: 120,
		LocationName:  "Somewhere",
		Coordinate:    coord,
	}
	require.NoError(t, NewPropertyRepository(db).Create(context.Background(), property))

	return property
}

func TestUserRepository_CreateAndFind(t *testing.T) {
	db := newTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	user := seedUser(t, db, " Alice@Example.com ")
	assert.NotEqual(t, uuid.Nil, user.ID)
	assert.Equal(t, "alice@example.com", user.Email)

	found, err := repo.FindByEmail(ctx, "ALICE@example.com")
	require.NoError(t, err)
	assert.Equal(t, user.ID, found.ID)
	assert.Equal(t, "hash", found.PasswordHash)

	byID, err := repo.FindByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, user.Email, byID.Email)

	_, err = repo.FindByID(ctx, uuid.New())
	assert.ErrorIs(t, err, repository.ErrUserNotFound)

	err = repo.Create(ctx, &entity.User{Name: "Dup", Email: "alice@example.com", PasswordHash: "x"})
	assert.ErrorIs(t, err, repository.ErrEmailTaken)
}

func TestPropertyRepository_CatalogQueries(t *testing.T) {
	db := newTestDB(t)
	repo := NewPropertyRepository(db)
	ctx := context.Background()

	owner := seedUser(t, db, "owner@example.com")
	other := seedUser(t, db, "other@example.com")

	nyc := seedProperty(t, db, owner.ID, "NYC loft", &geo.Coordinate{Lat: 40.7128, Lng: -74.0060})
	la := seedProperty(t, db, owner.ID, "LA bungalow", &geo.Coordinate{Lat: 34.0522, Lng: -118.2437})
	nowhere := seedProperty(t, db, other.ID, "Cabin", nil)

	all, err := repo.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 3)

	got, err := repo.FindByID(ctx, nowhere.ID)
	require.NoError(t, err)
	assert.Nil(t, got.Coordinate)
	assert.False(t, got.HasCoordinate())

	got, err = repo.FindByID(ctx, nyc.ID)
	require.NoError(t, err)
	require.NotNil(t, got.Coordinate)
	assert.InDelta(t, 40.7128, got.Coordinate.Lat, 1e-9)

	_, err = repo.FindByID(ctx, uuid.New())
	assert.ErrorIs(t, err, repository.ErrPropertyNotFound)

	bound, ok := geo.SearchBound(geo.Coordinate{Lat: 40.73, Lng: -73.99}, 25)
	require.True(t, ok)
	near, err := repo.FindWithinBound(ctx, bound)
	require.NoError(t, err)
	require.Len(t, near, 1)
	assert.Equal(t, nyc.ID, near[0].ID)

	owned, err := repo.FindByOwner(ctx, owner.ID)
	require.NoError(t, err)
	assert.Len(t, owned, 2)

	byIDs, err := repo.FindByIDs(ctx, []uuid.UUID{la.ID, nowhere.ID, uuid.New()})
	require.NoError(t, err)
	assert.Len(t, byIDs, 2)

	empty, err := repo.FindByIDs(ctx, nil)
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestPropertyRepository_LockForUpdateInTransaction(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	owner := seedUser(t, db, "owner@example.com")
	property := seedProperty(t, db, owner.ID, "Loft", nil)

	tm := NewTransactionManager(db)
	err := tm.Execute(ctx, func(f repository.RepositoryFactory) error {
		locked, err := f.PropertyRepo().LockForUpdate(ctx, property.ID)
		if err != nil {
			return err
		}
		assert.Equal(t, property.ID, locked.ID)

		_, err = f.PropertyRepo().LockForUpdate(ctx, uuid.New())
		assert.ErrorIs(t, err, repository.ErrPropertyNotFound)

		return nil
	})
	require.NoError(t, err)
}

func TestBookingRepository_Lifecycle(t *testing.T) {
	db := newTestDB(t)
	repo := NewBookingRepository(db)
	ctx := context.Background()

	owner := seedUser(t, db, "owner@example.com")
	renter := seedUser(t, db, "renter@example.com")
	property := seedProperty(t, db, owner.ID, "Loft", nil)

	later := &entity.Booking{PropertyID: property.ID, RenterID: renter.ID, StartDate: date("2025-04-01"), EndDate: date("2025-04-03")}
	earlier := &entity.Booking{PropertyID: property.ID, RenterID: renter.ID, StartDate: date("2025-03-01"), EndDate: date("2025-03-05")}
	require.NoError(t, repo.Create(ctx, later))
	require.NoError(t, repo.Create(ctx, earlier))

	active, err := repo.FindActiveByProperty(ctx, property.ID)
	require.NoError(t, err)
	require.Len(t, active, 2)
	assert.Equal(t, earlier.ID, active[0].ID)
	assert.True(t, active[0].StartDate.Equal(date("2025-03-01")))
	assert.True(t, active[0].EndDate.Equal(date("2025-03-05")))

	mine, err := repo.FindByRenter(ctx, renter.ID)
	require.NoError(t, err)
	assert.Len(t, mine, 2)

	earlier.EndDate = date("2025-03-07")
	require.NoError(t, repo.Update(ctx, earlier))
	reloaded, err := repo.FindByID(ctx, earlier.ID)
	require.NoError(t, err)
	assert.True(t, reloaded.EndDate.Equal(date("2025-03-07")))

	require.NoError(t, repo.Delete(ctx, later.ID))
	_, err = repo.FindByID(ctx, later.ID)
	assert.ErrorIs(t, err, repository.ErrBookingNotFound)
	assert.ErrorIs(t, repo.Delete(ctx, later.ID), repository.ErrBookingNotFound)
	assert.ErrorIs(t, repo.Update(ctx, later), repository.ErrBookingNotFound)
}

func TestBookingRepository_RejectsInvertedRange(t *testing.T) {
	db := newTestDB(t)
	owner := seedUser(t, db, "owner@example.com")
	property := seedProperty(t, db, owner.ID, "Loft", nil)

	err := NewBookingRepository(db).Create(context.Background(), &entity.Booking{
		PropertyID: property.ID,
		RenterID:   owner.ID,
		StartDate:  date("2025-03-05"),
		EndDate:    date("2025-03-01"),
	})

	var rangeErr *domainerrors.InvalidRangeError
	assert.True(t, errors.As(err, &rangeErr))
}

func TestReviewRepository(t *testing.T) {
	db := newTestDB(t)
	repo := NewReviewRepository(db)
	ctx := context.Background()

	owner := seedUser(t, db, "owner@example.com")
	property := seedProperty(t, db, owner.ID, "Loft", nil)

	first := &entity.Review{PropertyID: property.ID, UserID: owner.ID, Rating: 4, Comment: "Nice"}
	require.NoError(t, repo.Create(ctx, first))
	assert.False(t, first.CreatedAt.IsZero())

	reviews, err := repo.FindByProperty(ctx, property.ID)
	require.NoError(t, err)
	require.Len(t, reviews, 1)
	assert.Equal(t, "Nice", reviews[0].Comment)

	err = repo.Create(ctx, &entity.Review{PropertyID: property.ID, UserID: owner.ID, Rating: 9})
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestTransactionManager_RollsBackOnError(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	tm := NewTransactionManager(db)

	sentinel := errors.New("boom")
	err := tm.Execute(ctx, func(f repository.RepositoryFactory) error {
		if err := f.UserRepo().Create(ctx, &entity.User{Name: "Tx", Email: "tx@example.com", PasswordHash: "h"}); err != nil {
			return err
		}

		return sentinel
	})
	require.ErrorIs(t, err, sentinel)

	_, err = NewUserRepository(db).FindByEmail(ctx, "tx@example.com")
	assert.ErrorIs(t, err, repository.ErrUserNotFound)
}
