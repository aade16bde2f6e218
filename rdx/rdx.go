package rdx

import (
	"context"
	"os"
	"time"

	"github.com/redis/go-redis/v9"
)

var Conn *redis.Client

func init() {
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		addr = "localhost:6379"
	}
	Conn = redis.NewClient(&redis.Options{Addr: addr})
}

// Get returns "" on miss or any redis failure; callers fall through to the
// record store.
func Get(ctx context.Context, key string) string {
	val, err := Conn.Get(ctx, key).Result()
	if err != nil {
		return ""
	}
	return val
}

func SetEx(ctx context.Context, key, value string, ttl time.Duration) {
	Conn.Set(ctx, key, value, ttl)
}

func Del(ctx context.Context, keys ...string) {
	if len(keys) > 0 {
		Conn.Del(ctx, keys...)
	}
}
