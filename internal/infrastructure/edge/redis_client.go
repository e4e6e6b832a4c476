// Package edge wraps the key-value edge store (Redis) used for best-effort
// duplicate suppression of chat interaction events.
package edge

import (
	"os"
	"strconv"

	redis "github.com/redis/go-redis/v9"
)

// ConnectRedis creates a Redis client from environment variables, or nil when
// no edge store is configured. Callers must treat a nil client as "dedup
// disabled" and keep working.
//
// Supported env vars:
//   - REDIS_ADDR (e.g. localhost:6379; empty disables the edge store)
//   - REDIS_PASSWORD (optional)
//   - REDIS_DB (optional, defaults to 0)
func ConnectRedis() *redis.Client {
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		return nil
	}
	db := 0
	if v := os.Getenv("REDIS_DB"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			db = n
		}
	}
	return redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: os.Getenv("REDIS_PASSWORD"),
		DB:       db,
	})
}
