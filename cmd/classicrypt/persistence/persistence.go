package persistence

import (
	"context"
	"fmt"

	"github.com/jonboulle/clockwork"
	goredis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.uber.org/fx"

	"github.com/sergeii/classicrypt/internal/persistence"
	"github.com/sergeii/classicrypt/internal/persistence/memory"
	"github.com/sergeii/classicrypt/internal/persistence/redis"
)

type Config struct {
	// Keys are kept in memory when empty.
	RedisURL string
}

func Provide(
	lc fx.Lifecycle,
	cfg Config,
	clock clockwork.Clock,
	logger *zerolog.Logger,
) (persistence.Repositories, error) {
	if cfg.RedisURL == "" {
		logger.Debug().Msg("Using in-memory key storage")
		return memory.New(), nil
	}

	opts, err := goredis.ParseURL(cfg.RedisURL)
	if err != nil {
		return persistence.Repositories{}, fmt.Errorf("persistence: parse redis url: %w", err)
	}
	client := goredis.NewClient(opts)

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			if pingErr := client.Ping(ctx).Err(); pingErr != nil {
				logger.Error().Err(pingErr).Str("addr", opts.Addr).Msg("Unable to connect to redis")
				return pingErr
			}
			logger.Info().Str("addr", opts.Addr).Msg("Connected to redis")
			return nil
		},
		OnStop: func(context.Context) error {
			return client.Close()
		},
	})

	return redis.New(client, clock), nil
}
