package cache

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/redis/go-redis/v9"
)

// DashboardStatsKey caches the dashboard stats payload
const DashboardStatsKey = "dashboard:stats"

var client *redis.Client

// Init initializes the Redis connection. An empty addr or a failed
// ping leaves the cache disabled; every helper degrades to a miss.
func Init(addr, password string) error {
	if addr == "" {
		return nil
	}

	client = redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       0,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		// Close the failed client and set to nil for graceful degradation
		client.Close()
		client = nil
		return err
	}
	return nil
}

// Enabled reports whether a Redis connection is live.
func Enabled() bool {
	return client != nil
}

// GetJSON loads key into dest. Returns false on miss, disabled cache or
// decode failure.
func GetJSON(ctx context.Context, key string, dest interface{}) bool {
	if client == nil {
		return false
	}
	raw, err := client.Get(ctx, key).Bytes()
	if err != nil {
		return false
	}
	if err := json.Unmarshal(raw, dest); err != nil {
		log.Printf("[Cache] Bad payload under %s, ignoring: %v", key, err)
		return false
	}
	return true
}

// SetJSON stores value under key with a TTL. Failures are logged and
// swallowed; the cache is best effort.
func SetJSON(ctx context.Context, key string, value interface{}, ttl time.Duration) {
	if client == nil {
		return
	}
	raw, err := json.Marshal(value)
	if err != nil {
		return
	}
	if err := client.Set(ctx, key, raw, ttl).Err(); err != nil {
		log.Printf("[Cache] Set %s failed: %v", key, err)
	}
}

// Invalidate drops keys after a mutation.
func Invalidate(ctx context.Context, keys ...string) {
	if client == nil {
		return
	}
	if err := client.Del(ctx, keys...).Err(); err != nil {
		log.Printf("[Cache] Invalidate failed: %v", err)
	}
}
