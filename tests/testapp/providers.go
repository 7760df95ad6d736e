package testapp

import (
	"context"

	"github.com/alicebob/miniredis/v2"
	"github.com/jonboulle/clockwork"
	goredis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.uber.org/fx"

	"github.com/sergeii/classicrypt/internal/persistence"
	"github.com/sergeii/classicrypt/internal/persistence/redis"
	"github.com/sergeii/classicrypt/internal/settings"
)

func ProvidePersistence(lc fx.Lifecycle, clock clockwork.Clock) (persistence.Repositories, error) {
	mr, err := miniredis.Run()
	if err != nil {
		return persistence.Repositories{}, err
	}

	rdb := goredis.NewClient(&goredis.Options{
		Addr: mr.Addr(),
	})

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			defer mr.Close()
			return rdb.Close()
		},
	})

	return redis.New(rdb, clock), nil
}

func ProvideSettings() settings.Settings {
	return settings.Settings{
		NormalizeInput: true,
		MaxTextLength:  1024,
	}
}

func NoLogging() *zerolog.Logger {
	logger := zerolog.Nop()
	return &logger
}
