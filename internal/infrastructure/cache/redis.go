package cache

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

const pingTimeout = 5 * time.Second

// OpenRedis connects and pings once; the caller owns the client.
func OpenRedis(ctx context.Context, addr string, db int) (*redis.Client, error) {
	r := redis.NewClient(&redis.Options{Addr: addr, DB: db})
	if err := Ping(ctx, r); err != nil {
		_ = r.Close()
		return nil, err
	}
	return r, nil
}

// Ping reports whether redis answers within pingTimeout. Used by readiness checks.
func Ping(ctx context.Context, r redis.UniversalClient) error {
	ctx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()
	return r.Ping(ctx).Err()
}
