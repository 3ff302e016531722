// Package inflight rejects a second submit of the same action while the first is still running.
package inflight

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// ErrInFlight is returned by Acquire when the key is already held
var ErrInFlight = errors.New("inflight: request already in progress")

// Guard hands out one lease per key at a time
type Guard interface {
	Acquire(ctx context.Context, key string) (release func(), err error)
}

// NewGuard returns a redis guard when client is set, otherwise an in-process guard
func NewGuard(client *redis.Client, ttl time.Duration) Guard {
	if client == nil {
		return NewMemoryGuard(ttl)
	}
	return NewRedisGuard(client, ttl)
}

// RedisGuard leases keys with SET NX and a TTL
type RedisGuard struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisGuard(client *redis.Client, ttl time.Duration) *RedisGuard {
	return &RedisGuard{client: client, ttl: ttl}
}

// Only the holder's token may delete the key
const releaseScript = `
if redis.call('GET', KEYS[1]) == ARGV[1] then
	return redis.call('DEL', KEYS[1])
end
return 0
`

func (g *RedisGuard) Acquire(ctx context.Context, key string) (func(), error) {
	token := uuid.NewString()

	ok, err := g.client.SetNX(ctx, key, token, g.ttl).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to acquire %s: %w", key, err)
	}
	if !ok {
		return nil, ErrInFlight
	}

	return func() {
		// the request context may already be cancelled
		g.client.Eval(context.Background(), releaseScript, []string{key}, token)
	}, nil
}

// MemoryGuard is the single-process fallback
type MemoryGuard struct {
	mu    sync.Mutex
	ttl   time.Duration
	held  map[string]time.Time
	clock func() time.Time
}

func NewMemoryGuard(ttl time.Duration) *MemoryGuard {
	return &MemoryGuard{
		ttl:   ttl,
		held:  make(map[string]time.Time),
		clock: time.Now,
	}
}

func (g *MemoryGuard) Acquire(_ context.Context, key string) (func(), error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	now := g.clock()
	if expires, ok := g.held[key]; ok && now.Before(expires) {
		return nil, ErrInFlight
	}

	expires := now.Add(g.ttl)
	g.held[key] = expires

	var once sync.Once
	return func() {
		once.Do(func() {
			g.mu.Lock()
			defer g.mu.Unlock()
			if g.held[key].Equal(expires) {
				delete(g.held, key)
			}
		})
	}, nil
}
