package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"holidaze/internal/shared/constants"

	"github.com/redis/go-redis/v9"
)

// Store persists one session per visitor id
type Store interface {
	// Get returns nil, nil when the visitor has no session
	Get(ctx context.Context, visitorID string) (*UserSession, error)
	Set(ctx context.Context, visitorID string, s *UserSession, ttl time.Duration) error
	Delete(ctx context.Context, visitorID string) error
}

// NewStore picks the redis store when a client is available
func NewStore(client *redis.Client) Store {
	if client == nil {
		return NewMemoryStore()
	}
	return NewRedisStore(client)
}

type RedisStore struct {
	client *redis.Client
}

func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{client: client}
}

func (r *RedisStore) Get(ctx context.Context, visitorID string) (*UserSession, error) {
	data, err := r.client.Get(ctx, constants.BuildSessionKey(visitorID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load session: %w", err)
	}

	var s UserSession
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("failed to decode session: %w", err)
	}
	return &s, nil
}

// Set replaces the whole session in a single SET
func (r *RedisStore) Set(ctx context.Context, visitorID string, s *UserSession, ttl time.Duration) error {
	data, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("failed to encode session: %w", err)
	}
	if err := r.client.Set(ctx, constants.BuildSessionKey(visitorID), data, ttl).Err(); err != nil {
		return fmt.Errorf("failed to store session: %w", err)
	}
	return nil
}

func (r *RedisStore) Delete(ctx context.Context, visitorID string) error {
	return r.client.Del(ctx, constants.BuildSessionKey(visitorID)).Err()
}

type memoryEntry struct {
	session   UserSession
	expiresAt time.Time
}

// MemoryStore keeps sessions in process. Expired entries are dropped on read.
type MemoryStore struct {
	mu      sync.RWMutex
	entries map[string]memoryEntry
	clock   func() time.Time
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		entries: make(map[string]memoryEntry),
		clock:   time.Now,
	}
}

func (m *MemoryStore) Get(_ context.Context, visitorID string) (*UserSession, error) {
	m.mu.RLock()
	entry, ok := m.entries[visitorID]
	m.mu.RUnlock()
	if !ok {
		return nil, nil
	}

	if !entry.expiresAt.IsZero() && !m.clock().Before(entry.expiresAt) {
		m.mu.Lock()
		if current, ok := m.entries[visitorID]; ok && current.expiresAt.Equal(entry.expiresAt) {
			delete(m.entries, visitorID)
		}
		m.mu.Unlock()
		return nil, nil
	}

	s := entry.session
	return &s, nil
}

func (m *MemoryStore) Set(_ context.Context, visitorID string, s *UserSession, ttl time.Duration) error {
	entry := memoryEntry{session: *s}
	if ttl > 0 {
		entry.expiresAt = m.clock().Add(ttl)
	}

	m.mu.Lock()
	m.entries[visitorID] = entry
	m.mu.Unlock()
	return nil
}

func (m *MemoryStore) Delete(_ context.Context, visitorID string) error {
	m.mu.Lock()
	delete(m.entries, visitorID)
	m.mu.Unlock()
	return nil
}
