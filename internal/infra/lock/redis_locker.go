package lock

import (
	"context"
	"log/slog"
	"time"

	"rental/internal/domain/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
)

const (
	redisKeyPrefix     = "rental:lock:property:"
	redisRetryInterval = 25 * time.Millisecond
)

// releaseScript deletes the key only if it still holds our token, so an expired
// holder cannot release a lock that someone else has since acquired.
var releaseScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`)

// redisLocker implements a single-node redis lock (SET NX PX plus compare-and-delete).
type redisLocker struct {
	client  redis.UniversalClient
	ttl     time.Duration
	logger  *slog.Logger
	tokenFn func() string
}

// NewRedisLocker creates a redis-backed property locker. ttl bounds how long a
// crashed holder can block others.
func NewRedisLocker(client redis.UniversalClient, ttl time.Duration, logger *slog.Logger) service.PropertyLocker {
	return &redisLocker{
		client:  client,
		ttl:     ttl,
		logger:  logger,
		tokenFn: uuid.NewString,
	}
}

// Lock polls SET NX until it wins or ctx is done.
func (l *redisLocker) Lock(ctx context.Context, propertyID uuid.UUID) (func(), error) {
	key := redisKeyPrefix + propertyID.String()
	token := l.tokenFn()

	ticker := time.NewTicker(redisRetryInterval)
	defer ticker.Stop()

	for {
		ok, err := l.client.SetNX(ctx, key, token, l.ttl).Result()
		if err != nil {
			return nil, errors.Wrap(err, "acquire redis property lock")
		}
		if ok {
			return l.unlockFunc(key, token), nil
		}

		select {
		case <-ctx.Done():
			return nil, errors.Wrap(ctx.Err(), "wait for property lock")
		case <-ticker.C:
		}
	}
}

func (l *redisLocker) unlockFunc(key, token string) func() {
	released := false

	return func() {
		if released {
			return
		}
		released = true

		// The caller's context may already be cancelled; release on a fresh one.
		ctx, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()

		if err := releaseScript.Run(ctx, l.client, []string{key}, token).Err(); err != nil {
			l.logger.Warn("Failed to release redis property lock", slog.String("key", key), slog.Any("error", err))
		}
	}
}
