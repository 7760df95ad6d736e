package testredis

import (
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

func MakeClient(tb testing.TB) *redis.Client {
	mr := miniredis.RunT(tb)
	return newClient(tb, mr.Addr())
}

// MakeUnavailableClient returns a client whose server is already gone,
// so that every command fails.
func MakeUnavailableClient(tb testing.TB) *redis.Client {
	mr := miniredis.NewMiniRedis()
	if err := mr.Start(); err != nil {
		tb.Fatalf("failed to start miniredis: %v", err)
	}
	addr := mr.Addr()
	mr.Close()
	return newClient(tb, addr)
}

func newClient(tb testing.TB, addr string) *redis.Client {
	rdb := redis.NewClient(&redis.Options{
		Addr:       addr,
		MaxRetries: -1,
	})
	tb.Cleanup(func() {
		rdb.Close() // nolint: errcheck
	})
	return rdb
}
