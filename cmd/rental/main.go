package main

import (
	"context"
	"log/slog"
	"os"

	"rental/config"
	"rental/internal/delivery"
	"rental/internal/delivery/api"
	"rental/internal/delivery/api/middleware"
	"rental/internal/delivery/api/router/handler"
	"rental/internal/domain/lifecycle"
	"rental/internal/infra/auth"
	"rental/internal/infra/geocode"
	"rental/internal/infra/lock"
	logs "rental/internal/infra/log"
	"rental/internal/infra/persistence/postgres"
	"rental/internal/infra/pubsub"
	"rental/internal/usecase/impl"

	"go.uber.org/fx"
	"gorm.io/gorm"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
		fx.Invoke(
			migrateOnStart,
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		postgres.New,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewUserRepository,
			postgres.NewPropertyRepository,
			postgres.NewBookingRepository,
			postgres.NewReviewRepository,
			postgres.NewTransactionManager,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewBcryptHasher,
			auth.NewJWTService,
			lock.NewPropertyLocker,
			geocode.NewGeocoder,
		),
		pubsub.Module,
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewUserService,
			impl.NewPropertyService,
			impl.NewBookingLedger,
			impl.NewAvailabilityService,
			impl.NewProjectionService,
			impl.NewReviewService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewAuthHandler,
			handler.NewSearchHandler,
			handler.NewPropertyHandler,
			handler.NewBookingHandler,
			handler.NewProfileHandler,
			handler.NewReviewHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				api.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

// migrateOnStart brings the schema up to date after the database ping succeeds
// and before any delivery accepts traffic.
func migrateOnStart(lc fx.Lifecycle, db *gorm.DB, logger *slog.Logger) {
	lc.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			return postgres.Migrate(ctx, db, logger)
		},
	})
}

// startServer launches every delivery once the earlier start hooks, including
// the migration, have completed.
func startServer(ctx context.Context, params startServerParams) {
	params.Append(fx.Hook{
		OnStart: func(context.Context) error {
			for _, delivery := range params.Deliveries {
				go func() {
					if err := delivery.Serve(ctx); err != nil {
						slog.Error("Failed to start server", slog.Any("error", err))
						os.Exit(1)
					}
				}()
			}

			return nil
		},
	})
}
