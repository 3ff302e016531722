package venues

import (
	"context"
	"fmt"
	"testing"
	"time"

	"holidaze/pkg/noroff"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ids(venues []noroff.Venue) []string {
	out := make([]string, 0, len(venues))
	for _, v := range venues {
		out = append(out, v.ID)
	}
	return out
}

func TestCatalog_Merge(t *testing.T) {
	c := NewCatalog("")
	c.Merge([]noroff.Venue{{ID: "a", Name: "A"}, {ID: "b", Name: "B"}})
	c.Merge([]noroff.Venue{{ID: "c"}, {ID: "a", Name: "A2"}})

	assert.Equal(t, []string{"a", "b", "c"}, ids(c.Venues), "first-seen order is kept")
	assert.Equal(t, "A2", c.Venues[0].Name, "last fetched wins")
}

func TestCatalog_MergeIsIdempotent(t *testing.T) {
	page := []noroff.Venue{{ID: "a"}, {ID: "b"}}

	c := NewCatalog("")
	c.Merge(page)
	once := append([]noroff.Venue(nil), c.Venues...)
	c.Merge(page)

	assert.Equal(t, once, c.Venues)
}

func TestCatalog_Reset(t *testing.T) {
	c := NewCatalog("")
	c.Merge([]noroff.Venue{{ID: "a"}})
	c.NextPage = 3
	c.HasMore = false

	c.Reset("cabin")

	assert.Equal(t, "cabin", c.Query)
	assert.Equal(t, 1, c.NextPage)
	assert.True(t, c.HasMore)
	assert.Empty(t, c.Venues)
	assert.NotNil(t, c.Venues)
}

func TestCatalogStores(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	defer client.Close()

	stores := map[string]CatalogStore{
		"memory": NewCatalogStore(nil, time.Hour),
		"redis":  NewCatalogStore(client, time.Hour),
	}

	for name, store := range stores {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()

			loaded, err := store.Load(ctx, "visitor")
			require.NoError(t, err)
			assert.Nil(t, loaded)

			c := NewCatalog("beach")
			c.Merge([]noroff.Venue{{ID: "a", Name: "Beach hut"}})
			c.NextPage = 2
			require.NoError(t, store.Save(ctx, "visitor", c))

			// later changes to c are not visible until saved
			c.Merge([]noroff.Venue{{ID: "b"}})

			loaded, err = store.Load(ctx, "visitor")
			require.NoError(t, err)
			require.NotNil(t, loaded)
			assert.Equal(t, "beach", loaded.Query)
			assert.Equal(t, 2, loaded.NextPage)
			assert.Equal(t, []string{"a"}, ids(loaded.Venues))
		})
	}

	assert.True(t, mr.Exists("holidaze:catalog:visitor"))
}

func TestMemoryCatalogStore_Expiry(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	store := newMemoryCatalogStore(time.Minute)
	store.clock = func() time.Time { return now }

	for i := 0; i < 100; i++ {
		require.NoError(t, store.Save(ctx, fmt.Sprintf("visitor-%d", i), NewCatalog("")))
	}

	now = now.Add(30 * time.Second)
	loaded, err := store.Load(ctx, "visitor-0")
	require.NoError(t, err)
	assert.NotNil(t, loaded)

	now = now.Add(time.Minute)
	loaded, err = store.Load(ctx, "visitor-0")
	require.NoError(t, err)
	assert.Nil(t, loaded)

	// the next save clears out the visitors who never came back
	require.NoError(t, store.Save(ctx, "visitor-new", NewCatalog("")))
	assert.Len(t, store.catalogs, 1)
}
