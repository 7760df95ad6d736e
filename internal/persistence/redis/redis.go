package redis

import (
	"github.com/jonboulle/clockwork"
	"github.com/redis/go-redis/v9"

	"github.com/sergeii/classicrypt/internal/persistence"
	"github.com/sergeii/classicrypt/internal/persistence/redis/repositories/keys"
)

func New(client *redis.Client, c clockwork.Clock) persistence.Repositories {
	return persistence.Repositories{
		Keys: keys.New(client, c),
	}
}
