// Package cache holds the in-process authoritative copy of every quote.
//
// While the process is alive reads and writes go here first; the durable
// store only receives asynchronous write-throughs and is consulted again only
// at the next startup, when Warm rebuilds the map from whatever was durable.
package cache

import (
	"sync"

	"staffdesk/internal/domain/entities"
	"staffdesk/internal/usecase/interfaces"
)

type MemoryQuoteCache struct {
	mu     sync.RWMutex
	quotes map[string]entities.Quote
}

var _ interfaces.IQuoteCache = (*MemoryQuoteCache)(nil)

func NewMemoryQuoteCache() *MemoryQuoteCache {
	return &MemoryQuoteCache{quotes: make(map[string]entities.Quote)}
}

func (c *MemoryQuoteCache) Get(id string) (entities.Quote, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	q, ok := c.quotes[id]
	return q, ok
}

func (c *MemoryQuoteCache) Put(q entities.Quote) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.quotes[q.ID] = q
}

func (c *MemoryQuoteCache) All() []entities.Quote {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]entities.Quote, 0, len(c.quotes))
	for _, q := range c.quotes {
		out = append(out, q)
	}
	return out
}

// Warm replaces the cache contents with the store snapshot. Called once at
// startup, before the server accepts traffic.
func (c *MemoryQuoteCache) Warm(quotes []entities.Quote) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.quotes = make(map[string]entities.Quote, len(quotes))
	for _, q := range quotes {
		c.quotes[q.ID] = q
	}
}
