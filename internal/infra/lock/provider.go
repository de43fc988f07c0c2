package lock

import (
	"context"
	"log/slog"

	"rental/config"
	"rental/internal/domain/lifecycle"
	"rental/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

// Params defines the dependencies for creating a property locker
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// NewPropertyLocker creates the locker selected by booking.lock.provider
func NewPropertyLocker(params Params) (service.PropertyLocker, error) {
	provider := params.Config.Booking.Lock.Provider

	switch provider {
	case "", config.LockProviderMemory:
		params.Logger.Info("Using in-process property locks")

		return NewMemoryLocker(), nil

	case config.LockProviderRedis:
		if params.Config.Redis == nil || params.Config.Redis.Addr == "" {
			return nil, errors.New("redis.addr is required for the redis lock provider")
		}

		client := redis.NewClient(&redis.Options{
			Addr:     params.Config.Redis.Addr,
			Password: params.Config.Redis.Password,
			DB:       params.Config.Redis.DB,
		})

		params.Append(fx.Hook{
			OnStart: func(startCtx context.Context) error {
				ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
				defer cancel()

				return errors.Wrap(client.Ping(ctx).Err(), "failed to ping redis")
			},
			OnStop: func(_ context.Context) error {
				return client.Close()
			},
		})

		params.Logger.Info("Using redis property locks", slog.String("addr", params.Config.Redis.Addr))

		return NewRedisLocker(client, params.Config.Booking.Lock.TTL, params.Logger), nil

	default:
		return nil, errors.Errorf("unknown lock provider: %s", provider)
	}
}
