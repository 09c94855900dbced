package lock

import (
	"context"
	"log/slog"
	"time"

	"vidgate/config"
	"vidgate/internal/domain/constants"
	"vidgate/internal/domain/lifecycle"
	"vidgate/internal/domain/service"
	"vidgate/internal/errors"

	"github.com/go-redis/redis/v8"
	"go.uber.org/fx"
)

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// New selects the locker named by the lock provider.
func New(params Params) (service.UserLocker, error) {
	cfg := params.Config.Lock
	if cfg == nil || cfg.Provider == "" || cfg.Provider == constants.LockProviderMemory {
		params.Logger.Info("Using in-process user locks")

		return NewMemoryLocker(), nil
	}

	if cfg.Provider != constants.LockProviderRedis {
		return nil, errors.Errorf("unsupported lock provider: %s", cfg.Provider)
	}

	client, err := NewRedisClient(cfg.RedisURL)
	if err != nil {
		return nil, err
	}

	params.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			if err := client.Ping(ctx).Err(); err != nil {
				return errors.Wrap(err, "failed to connect to redis")
			}

			params.Logger.Info("Using redis user locks", slog.String("addr", client.Options().Addr))

			return nil
		},
		OnStop: func(_ context.Context) error {
			return client.Close()
		},
	})

	return NewRedisLocker(client, cfg.TTL, cfg.Wait, params.Logger), nil
}

// NewRedisClient parses url and applies the connection timeouts.
func NewRedisClient(url string) (*redis.Client, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, errors.Wrap(err, "invalid redis URL")
	}

	opts.DialTimeout = 5 * time.Second
	opts.ReadTimeout = 3 * time.Second
	opts.WriteTimeout = 3 * time.Second
	opts.PoolTimeout = 4 * time.Second

	return redis.NewClient(opts), nil
}
