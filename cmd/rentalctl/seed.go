package main

import (
	"context"
	"log/slog"
	"time"

	"rental/internal/domain/calendar"
	domainerrors "rental/internal/domain/errors"
	"rental/internal/domain/geo"
	"rental/internal/infra/auth"
	"rental/internal/infra/geocode"
	"rental/internal/infra/lock"
	"rental/internal/infra/persistence/postgres"
	"rental/internal/infra/pubsub"
	"rental/internal/usecase"
	"rental/internal/usecase/impl"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

type seedListing struct {
	title    string
	location string
	price    float64
	point    geo.Coordinate
}

var seedListings = []seedListing{
	{"Harbor loft", "Lower Manhattan, NY", 240, geo.Coordinate{Lat: 40.7075, Lng: -74.0113}},
	{"Brownstone garden flat", "Park Slope, NY", 180, geo.Coordinate{Lat: 40.6710, Lng: -73.9814}},
	{"Hoboken waterfront studio", "Hoboken, NJ", 150, geo.Coordinate{Lat: 40.7440, Lng: -74.0324}},
	{"Catskills cabin", "Phoenicia, NY", 130, geo.Coordinate{Lat: 42.0834, Lng: -74.3107}},
}

func newSeedCommand() *cobra.Command {
	var password string

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Create demo accounts, listings and bookings through the booking ledger",
		RunE: func(cmd *cobra.Command, _ []string) error {
			rt, closeDB, err := openRuntime()
			if err != nil {
				return err
			}
			defer closeDB()

			return seed(cmd.Context(), rt, password)
		},
	}
	cmd.Flags().StringVar(&password, "password", "rental-demo-pass", "password for the demo accounts")

	return cmd
}

func seed(ctx context.Context, rt *runtime, password string) error {
	tokens, err := auth.NewJWTService(rt.cfg)
	if err != nil {
		return err
	}

	users := impl.NewUserService(impl.UserServiceParams{
		UserRepo:     postgres.NewUserRepository(rt.db),
		Hasher:       auth.NewBcryptHasher(rt.cfg),
		TokenService: tokens,
		Logger:       rt.logger,
	})
	properties := impl.NewPropertyService(impl.PropertyServiceParams{
		PropertyRepo: postgres.NewPropertyRepository(rt.db),
		Geocoder:     geocode.NewDisabledGeocoder(),
		Logger:       rt.logger,
	})
	ledger := impl.NewBookingLedger(impl.BookingLedgerParams{
		TxManager:   postgres.NewTransactionManager(rt.db),
		BookingRepo: postgres.NewBookingRepository(rt.db),
		Locker:      lock.NewMemoryLocker(),
		Publisher:   pubsub.NewNoopPublisher(rt.logger),
		Config:      rt.cfg,
		Logger:      rt.logger,
	})

	owner, err := signupOrLogin(ctx, users, "Olive Owner", "owner@rental.local", password)
	if err != nil {
		return err
	}
	renter, err := signupOrLogin(ctx, users, "Riley Renter", "renter@rental.local", password)
	if err != nil {
		return err
	}

	start := calendar.Date(time.Now()).AddDate(0, 0, 14)
	for i, listing := range seedListings {
		point := listing.point
		property, err := properties.Create(ctx, &usecase.CreatePropertyInput{
			OwnerID:       owner.User.ID,
			Title:         listing.title,
			LocationName:  listing.location,
			PricePerNight: listing.price,
			Coordinate:    &point,
		})
		if err != nil {
			return errors.Wrapf(err, "create listing %q", listing.title)
		}

		// Stagger stays so searches around the seed dates see both outcomes.
		stayStart := start.AddDate(0, 0, i*3)
		booking, err := ledger.Create(ctx, &usecase.CreateBookingInput{
			PropertyID: property.ID,
			RenterID:   renter.User.ID,
			StartDate:  stayStart,
			EndDate:    stayStart.AddDate(0, 0, 4),
		})
		if err != nil {
			return errors.Wrapf(err, "book listing %q", listing.title)
		}

		rt.logger.Info("Seeded listing",
			slog.String("property_id", property.ID.String()),
			slog.String("title", property.Title),
			slog.String("booked", booking.Range().String()))
	}

	return nil
}

// signupOrLogin keeps the seed rerunnable against an existing database.
func signupOrLogin(ctx context.Context, users usecase.UserUsecase, name, email, password string) (*usecase.AuthOutput, error) {
	out, err := users.Signup(ctx, &usecase.SignupInput{Name: name, Email: email, Password: password})
	if errors.Is(err, domainerrors.ErrUserAlreadyExists) {
		return users.Login(ctx, &usecase.LoginInput{Email: email, Password: password})
	}

	return out, errors.Wrapf(err, "sign up %s", email)
}
