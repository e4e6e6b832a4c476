package interfaces

import "staffdesk/internal/domain/entities"

// IQuoteCache is the authoritative in-process copy of every quote.
//
// Reads and synchronous writes during an operation go against the cache; the
// durable store only sees asynchronous write-throughs. The cache is lost on
// restart and rebuilt from the store via Warm.
type IQuoteCache interface {
	Get(id string) (entities.Quote, bool)
	Put(q entities.Quote)
	All() []entities.Quote
	Warm(quotes []entities.Quote)
}
