package usecase

import (
	"context"
	"sync"

	"staffdesk/internal/usecase/interfaces"

	"go.uber.org/zap"
)

// QuoteNumberAllocator hands out the human-facing quote numbers.
//
// Numbers are unique and strictly increasing for the lifetime of the process.
// The counter is seeded from the durable store's highest stored number at
// startup; after that the store is never consulted again.
type QuoteNumberAllocator struct {
	mu   sync.Mutex
	next int64
}

// NewQuoteNumberAllocator seeds the allocator from repo.MaxQuoteNumber.
//
// If the store is unreachable the allocator starts at 1 and the process runs
// degraded: numbers may collide with quotes persisted by a previous run. The
// warning is the only signal, matching the store-failure policy everywhere
// else in the lifecycle manager.
func NewQuoteNumberAllocator(ctx context.Context, repo interfaces.IQuoteRepository, log *zap.Logger) *QuoteNumberAllocator {
	max := int64(0)
	if repo != nil {
		m, err := repo.MaxQuoteNumber(ctx)
		if err != nil {
			log.Warn("quote number seed unavailable, starting degraded at 1", zap.Error(err))
		} else {
			max = m
		}
	}
	return &QuoteNumberAllocator{next: max + 1}
}

// Next returns the next quote number. Safe for concurrent use.
func (a *QuoteNumberAllocator) Next() int64 {
	a.mu.Lock()
	defer a.mu.Unlock()
	n := a.next
	a.next++
	return n
}
