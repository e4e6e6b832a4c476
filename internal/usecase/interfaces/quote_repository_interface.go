package interfaces

import (
	"context"
	"staffdesk/internal/domain/entities"
)

// IQuoteRepository abstracts DynamoDB persistence for Quote.
//
// The lifecycle manager must be able to:
//   - write a quote through after every cache mutation (upsert semantics)
//   - rebuild the in-process cache from the full collection at startup
//   - seed the quote-number allocator from the highest stored number
type IQuoteRepository interface {
	Upsert(ctx context.Context, q entities.Quote) (entities.Quote, error)
	GetByID(ctx context.Context, id string) (entities.Quote, error)
	ListAll(ctx context.Context) ([]entities.Quote, error)
	MaxQuoteNumber(ctx context.Context) (int64, error)
}
