package lock

import (
	"context"
	"log/slog"
	"strconv"
	"sync"
	"time"

	"vidgate/internal/domain/service"
	"vidgate/internal/errors"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"github.com/sethvargo/go-retry"
)

const (
	keyPrefix         = "vidgate:user-lock:"
	defaultRetryEvery = 25 * time.Millisecond
)

// ErrLockTimeout is returned when the lock stayed taken for the whole wait.
var ErrLockTimeout = errors.New("user lock wait timed out")

var errLockTaken = errors.New("user lock taken")

// renewScript pushes the expiry out only while the key still carries our token.
var renewScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("PEXPIRE", KEYS[1], ARGV[2])
end
return 0
`)

// unlockScript deletes the key only while it still carries our token, so an
// expired holder never frees a lock someone else acquired since.
var unlockScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`)

// redisLocker serializes a user's requests across replicas.
type redisLocker struct {
	client     *redis.Client
	ttl        time.Duration
	wait       time.Duration
	retryEvery time.Duration
	renewEvery time.Duration
	logger     *slog.Logger
}

// NewRedisLocker creates a locker on top of client. ttl bounds how long a crashed
// holder can block the user; a live holder keeps renewing it every ttl/3.
// wait bounds how long Lock waits.
func NewRedisLocker(client *redis.Client, ttl, wait time.Duration, logger *slog.Logger) service.UserLocker {
	return &redisLocker{
		client:     client,
		ttl:        ttl,
		wait:       wait,
		retryEvery: defaultRetryEvery,
		renewEvery: ttl / 3,
		logger:     logger,
	}
}

func (l *redisLocker) Lock(ctx context.Context, userID int64) (func(), error) {
	key := keyPrefix + strconv.FormatInt(userID, 10)
	token := uuid.NewString()

	backoff := retry.WithMaxDuration(l.wait, retry.NewConstant(l.retryEvery))
	err := retry.Do(ctx, backoff, func(ctx context.Context) error {
		ok, err := l.client.SetNX(ctx, key, token, l.ttl).Result()
		if err != nil {
			return errors.Wrap(err, "redis setnx failed")
		}
		if !ok {
			return retry.RetryableError(errLockTaken)
		}

		return nil
	})
	if errors.Is(err, errLockTaken) {
		return nil, ErrLockTimeout
	}
	if err != nil {
		return nil, err
	}

	watchCtx, stopWatch := context.WithCancel(context.WithoutCancel(ctx))
	var wg sync.WaitGroup
	if l.renewEvery > 0 {
		wg.Go(func() {
			l.keepAlive(watchCtx, key, token, userID)
		})
	}

	var once sync.Once

	return func() {
		once.Do(func() {
			stopWatch()
			wg.Wait()

			// The caller's ctx may already be done; the key must still be freed.
			releaseCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), l.wait)
			defer cancel()

			if err := unlockScript.Run(releaseCtx, l.client, []string{key}, token).Err(); err != nil {
				l.logger.Warn("Failed to release user lock", slog.Int64("user_id", userID), slog.Any("error", err))
			}
		})
	}, nil
}

// keepAlive renews the lease until ctx ends or the key no longer carries token.
func (l *redisLocker) keepAlive(ctx context.Context, key, token string, userID int64) {
	ticker := time.NewTicker(l.renewEvery)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}

		renewed, err := renewScript.Run(ctx, l.client, []string{key}, token, l.ttl.Milliseconds()).Int()
		if err != nil {
			if ctx.Err() != nil {
				return
			}
			l.logger.Warn("Failed to renew user lock", slog.Int64("user_id", userID), slog.Any("error", err))

			continue
		}

		if renewed == 0 {
			l.logger.Error("User lock lost while held", slog.Int64("user_id", userID))

			return
		}
	}
}
