package impl

import (
	"context"
	"math/rand/v2"
	"sync"
	"testing"
	"time"

	"rental/internal/domain/calendar"
	"rental/internal/domain/entity"
	domainerrors "rental/internal/domain/errors"
	"rental/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBookingLedger_SQLite_ConflictScenario(t *testing.T) {
	env := newStoreEnv(t)
	ledger := env.ledger()
	ctx := context.Background()

	owner := env.seedUser(t, "owner@example.com")
	renterA := env.seedUser(t, "a@example.com")
	renterB := env.seedUser(t, "b@example.com")
	property := env.seedProperty(t, owner.ID, "Loft", nil)

	first, err := ledger.Create(ctx, &usecase.CreateBookingInput{
		PropertyID: property.ID,
		RenterID:   renterA.ID,
		StartDate:  day("2025-03-01"),
		EndDate:    day("2025-03-05"),
	})
	require.NoError(t, err)

	_, err = ledger.Create(ctx, &usecase.CreateBookingInput{
		PropertyID: property.ID,
		RenterID:   renterB.ID,
		StartDate:  day("2025-03-03"),
		EndDate:    day("2025-03-10"),
	})
	var overlap *domainerrors.OverlapError
	require.ErrorAs(t, err, &overlap)
	assert.Equal(t, first.ID, overlap.ConflictingBooking)

	second, err := ledger.Create(ctx, &usecase.CreateBookingInput{
		PropertyID: property.ID,
		RenterID:   renterB.ID,
		StartDate:  day("2025-03-06"),
		EndDate:    day("2025-03-10"),
	})
	require.NoError(t, err)

	active, err := ledger.ListActive(ctx, property.ID)
	require.NoError(t, err)
	require.Len(t, active, 2)
	assert.Equal(t, first.ID, active[0].ID)
	assert.Equal(t, second.ID, active[1].ID)

	_, err = ledger.Update(ctx, second.ID, renterB.ID, &usecase.UpdateBookingInput{StartDate: dayPtr("2025-03-05")})
	require.ErrorAs(t, err, &overlap)

	require.NoError(t, ledger.Delete(ctx, first.ID, renterA.ID))
	moved, err := ledger.Update(ctx, second.ID, renterB.ID, &usecase.UpdateBookingInput{StartDate: dayPtr("2025-03-01")})
	require.NoError(t, err)
	assert.Equal(t, day("2025-03-01"), moved.StartDate)

	_, err = ledger.Create(ctx, &usecase.CreateBookingInput{
		PropertyID: uuid.New(),
		RenterID:   renterA.ID,
		StartDate:  day("2025-03-01"),
		EndDate:    day("2025-03-02"),
	})
	assert.ErrorIs(t, err, domainerrors.ErrPropertyNotFound)
}

func TestBookingLedger_SQLite_ConcurrentOverlappingCreates(t *testing.T) {
	env := newStoreEnv(t)
	ledger := env.ledger()
	ctx := context.Background()

	owner := env.seedUser(t, "owner@example.com")
	property := env.seedProperty(t, owner.ID, "Cabin", nil)

	const attempts = 8
	renters := make([]*entity.User, attempts)
	for i := range renters {
		renters[i] = env.seedUser(t, uuid.NewString()+"@example.com")
	}

	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		successes int
		overlaps  int
		others    []error
	)

	start := make(chan struct{})
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func(renterID uuid.UUID, offset int) {
			defer wg.Done()
			<-start

			// Every request covers 2025-06-10.
			_, err := ledger.Create(ctx, &usecase.CreateBookingInput{
				PropertyID: property.ID,
				RenterID:   renterID,
				StartDate:  day("2025-06-05").AddDate(0, 0, offset),
				EndDate:    day("2025-06-10").AddDate(0, 0, offset),
			})

			mu.Lock()
			defer mu.Unlock()

			var overlap *domainerrors.OverlapError
			switch {
			case err == nil:
				successes++
			case errors.As(err, &overlap):
				overlaps++
			default:
				others = append(others, err)
			}
		}(renters[i].ID, i%5)
	}
	close(start)
	wg.Wait()

	assert.Empty(t, others)
	assert.Equal(t, 1, successes)
	assert.Equal(t, attempts-1, overlaps)

	active, err := ledger.ListActive(ctx, property.ID)
	require.NoError(t, err)
	assert.Len(t, active, 1)
}

func TestBookingLedger_SQLite_RandomSequenceKeepsCalendarsDisjoint(t *testing.T) {
	env := newStoreEnv(t)
	ledger := env.ledger()
	ctx := context.Background()

	owner := env.seedUser(t, "owner@example.com")
	renters := []*entity.User{
		env.seedUser(t, "r1@example.com"),
		env.seedUser(t, "r2@example.com"),
		env.seedUser(t, "r3@example.com"),
	}
	properties := []*entity.Property{
		env.seedProperty(t, owner.ID, "One", nil),
		env.seedProperty(t, owner.ID, "Two", nil),
	}

	rng := rand.New(rand.NewPCG(7, 11))
	base := day("2025-01-01")
	randomRange := func() (time.Time, time.Time) {
		start := base.AddDate(0, 0, rng.IntN(60))

		return start, start.AddDate(0, 0, rng.IntN(7))
	}

	var created []*entity.Booking
	for i := 0; i < 150; i++ {
		start, end := randomRange()

		if len(created) > 0 && rng.IntN(3) == 0 {
			target := created[rng.IntN(len(created))]
			updated, err := ledger.Update(ctx, target.ID, target.RenterID, &usecase.UpdateBookingInput{
				StartDate: &start,
				EndDate:   &end,
			})
			if err == nil {
				*target = *updated
			}
			assertLedgerError(t, err)

			continue
		}

		booking, err := ledger.Create(ctx, &usecase.CreateBookingInput{
			PropertyID: properties[rng.IntN(len(properties))].ID,
			RenterID:   renters[rng.IntN(len(renters))].ID,
			StartDate:  start,
			EndDate:    end,
		})
		if err == nil {
			created = append(created, booking)
		}
		assertLedgerError(t, err)
	}

	require.NotEmpty(t, created)

	for _, property := range properties {
		active, err := ledger.ListActive(ctx, property.ID)
		require.NoError(t, err)

		for i := 0; i < len(active); i++ {
			for j := i + 1; j < len(active); j++ {
				a, b := active[i], active[j]
				assert.False(t, calendar.Overlaps(a.StartDate, a.EndDate, b.StartDate, b.EndDate),
					"bookings %s and %s overlap", a.Range(), b.Range())
			}
		}
	}
}

func assertLedgerError(t *testing.T, err error) {
	t.Helper()

	if err == nil {
		return
	}

	var overlap *domainerrors.OverlapError
	assert.ErrorAs(t, err, &overlap)
}
