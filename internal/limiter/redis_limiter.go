package limiter

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisLimiter implements distributed rate limiting using Redis, for
// deployments where the limit must be shared across instances.
//
// Fixed-window counting with one key per client and window:
// "ratelimit:{client}:{window}". Keys expire on their own, so there is
// no cleanup pass.
type RedisLimiter struct {
	client *redis.Client
	ctx    context.Context
	rate   float64
	span   time.Duration
}

// incrWindowScript atomically increments the window counter and sets its
// expiry on first use. Running it as a Lua script keeps the two steps
// race-free across instances.
const incrWindowScript = `
local current = redis.call('INCR', KEYS[1])
if current == 1 then
	redis.call('EXPIRE', KEYS[1], ARGV[1])
end
return current
`

// NewRedisLimiter creates a Redis-backed limiter allowing
// requestsPerSecond requests per client. Fractional rates widen the
// window, same as the in-memory limiter.
func NewRedisLimiter(addr, password string, db int, requestsPerSecond float64) (*RedisLimiter, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	ctx := context.Background()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis for rate limiting: %w", err)
	}

	span := time.Second
	if requestsPerSecond < 1.0 {
		span = time.Duration(float64(time.Second) / requestsPerSecond)
	}

	return &RedisLimiter{
		client: client,
		ctx:    ctx,
		rate:   requestsPerSecond,
		span:   span,
	}, nil
}

// Allow implements the Limiter interface.
// On Redis errors it fails open: blocking all traffic because the
// limiter store is down would be worse than briefly not limiting.
func (l *RedisLimiter) Allow(client string) bool {
	spanSeconds := int64(l.span.Seconds())
	windowID := time.Now().Unix() / spanSeconds
	key := fmt.Sprintf("ratelimit:%s:%d", client, windowID)

	result, err := l.client.Eval(l.ctx, incrWindowScript, []string{key}, spanSeconds*2).Result()
	if err != nil {
		return true
	}
	count, ok := result.(int64)
	if !ok {
		return true
	}

	limit := int64(math.Ceil(l.rate * l.span.Seconds()))
	return count <= limit
}

// Close closes the Redis connection
func (l *RedisLimiter) Close() error {
	if l.client != nil {
		return l.client.Close()
	}
	return nil
}
