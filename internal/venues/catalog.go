package venues

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"holidaze/internal/shared/constants"
	"holidaze/pkg/noroff"

	"github.com/redis/go-redis/v9"
)

// Catalog is the visitor's accumulated, de-duplicated venue list
type Catalog struct {
	Query    string         `json:"query"`
	NextPage int            `json:"next_page"`
	HasMore  bool           `json:"has_more"`
	Venues   []noroff.Venue `json:"venues"`
}

func NewCatalog(query string) *Catalog {
	c := &Catalog{}
	c.Reset(query)
	return c
}

// Reset returns the catalog to its first-page state for query
func (c *Catalog) Reset(query string) {
	c.Query = query
	c.NextPage = 1
	c.HasMore = true
	c.Venues = []noroff.Venue{}
}

// Merge adds a fetched page. A venue already present is replaced where it stands.
func (c *Catalog) Merge(page []noroff.Venue) {
	index := make(map[string]int, len(c.Venues))
	for i, v := range c.Venues {
		index[v.ID] = i
	}

	for _, v := range page {
		if i, ok := index[v.ID]; ok {
			c.Venues[i] = v
			continue
		}
		index[v.ID] = len(c.Venues)
		c.Venues = append(c.Venues, v)
	}
}

// CatalogStore keeps one catalog per visitor between page loads
type CatalogStore interface {
	// Load returns nil, nil when the visitor has no catalog yet
	Load(ctx context.Context, visitorID string) (*Catalog, error)
	Save(ctx context.Context, visitorID string, c *Catalog) error
}

func NewCatalogStore(client *redis.Client, ttl time.Duration) CatalogStore {
	if client == nil {
		return newMemoryCatalogStore(ttl)
	}
	return &redisCatalogStore{client: client, ttl: ttl}
}

type redisCatalogStore struct {
	client *redis.Client
	ttl    time.Duration
}

func (r *redisCatalogStore) Load(ctx context.Context, visitorID string) (*Catalog, error) {
	data, err := r.client.Get(ctx, constants.BuildCatalogKey(visitorID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load catalog: %w", err)
	}

	var c Catalog
	if err := json.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("failed to decode catalog: %w", err)
	}
	return &c, nil
}

func (r *redisCatalogStore) Save(ctx context.Context, visitorID string, c *Catalog) error {
	data, err := json.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to encode catalog: %w", err)
	}
	return r.client.Set(ctx, constants.BuildCatalogKey(visitorID), data, r.ttl).Err()
}

type memoryCatalogStore struct {
	mu        sync.Mutex
	ttl       time.Duration
	catalogs  map[string]memoryCatalog
	lastSweep time.Time
	clock     func() time.Time
}

type memoryCatalog struct {
	catalog   Catalog
	expiresAt time.Time
}

func newMemoryCatalogStore(ttl time.Duration) *memoryCatalogStore {
	return &memoryCatalogStore{
		ttl:      ttl,
		catalogs: make(map[string]memoryCatalog),
		clock:    time.Now,
	}
}

func (m *memoryCatalogStore) Load(_ context.Context, visitorID string) (*Catalog, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	entry, ok := m.catalogs[visitorID]
	if !ok {
		return nil, nil
	}
	if m.expired(entry) {
		delete(m.catalogs, visitorID)
		return nil, nil
	}

	c := entry.catalog
	c.Venues = append(make([]noroff.Venue, 0, len(c.Venues)), c.Venues...)
	return &c, nil
}

func (m *memoryCatalogStore) Save(_ context.Context, visitorID string, c *Catalog) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	entry := memoryCatalog{catalog: *c}
	entry.catalog.Venues = append(make([]noroff.Venue, 0, len(c.Venues)), c.Venues...)
	if m.ttl > 0 {
		entry.expiresAt = m.clock().Add(m.ttl)
	}
	m.catalogs[visitorID] = entry

	m.sweep()
	return nil
}

func (m *memoryCatalogStore) expired(entry memoryCatalog) bool {
	return !entry.expiresAt.IsZero() && !m.clock().Before(entry.expiresAt)
}

// sweep drops expired catalogs of visitors that never came back, at most
// once per ttl. Callers hold mu.
func (m *memoryCatalogStore) sweep() {
	if m.ttl <= 0 || m.clock().Sub(m.lastSweep) < m.ttl {
		return
	}
	m.lastSweep = m.clock()
	for id, entry := range m.catalogs {
		if m.expired(entry) {
			delete(m.catalogs, id)
		}
	}
}
