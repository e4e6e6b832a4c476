package cache

import (
	"fmt"
	"sync"
	"testing"

	"staffdesk/internal/domain/entities"

	"github.com/stretchr/testify/require"
)

func TestMemoryQuoteCache_GetPutAll(t *testing.T) {
	c := NewMemoryQuoteCache()

	_, ok := c.Get("missing")
	require.False(t, ok)

	q := entities.Quote{ID: "q-1", QuoteNumber: 1}
	c.Put(q)

	got, ok := c.Get("q-1")
	require.True(t, ok)
	require.Equal(t, int64(1), got.QuoteNumber)

	// Put with the same id replaces.
	q.ClaimedBy = "staff-7"
	c.Put(q)
	got, _ = c.Get("q-1")
	require.Equal(t, "staff-7", got.ClaimedBy)

	c.Put(entities.Quote{ID: "q-2", QuoteNumber: 2})
	require.Len(t, c.All(), 2)
}

func TestMemoryQuoteCache_WarmReplacesContents(t *testing.T) {
	c := NewMemoryQuoteCache()
	c.Put(entities.Quote{ID: "stale"})

	c.Warm([]entities.Quote{
		{ID: "q-1", QuoteNumber: 1},
		{ID: "q-2", QuoteNumber: 2},
	})

	_, ok := c.Get("stale")
	require.False(t, ok)
	require.Len(t, c.All(), 2)
}

func TestMemoryQuoteCache_ConcurrentAccess(t *testing.T) {
	c := NewMemoryQuoteCache()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(2)
		go func(i int) {
			defer wg.Done()
			c.Put(entities.Quote{ID: fmt.Sprintf("q-%d", i)})
		}(i)
		go func(i int) {
			defer wg.Done()
			c.Get(fmt.Sprintf("q-%d", i))
		}(i)
	}
	wg.Wait()

	require.Len(t, c.All(), 50)
}
