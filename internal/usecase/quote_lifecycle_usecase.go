package usecase

import (
	"context"
	"errors"
	"sort"
	"strings"
	"sync"
	"time"

	"staffdesk/internal/domain/entities"
	"staffdesk/internal/usecase/interfaces"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

var (
	ErrQuoteNotFound       = errors.New("quote not found")
	ErrQuoteAlreadyClaimed = errors.New("quote already claimed")
	ErrInvalidQuoteID      = errors.New("invalid quote id")
	ErrInvalidCustomerID   = errors.New("invalid customer id")
	ErrInvalidActorID      = errors.New("invalid actor id")
	ErrInvalidPrice        = errors.New("invalid price")
	ErrInvalidTimeframe    = errors.New("invalid timeframe")
	ErrInvalidMethod       = errors.New("invalid payment method")
	ErrInvalidInvoiceLink  = errors.New("invalid invoice link")

	// ErrInvalidTransition is reserved for a future ordering policy (e.g.
	// requiring acceptance before claim, or payment before completion). The
	// current pipeline is deliberately permissive and never returns it.
	ErrInvalidTransition = errors.New("invalid transition")
)

const defaultPersistTimeout = 5 * time.Second

// IQuoteLifecycleUseCase exposes the commission quote state machine.
//
// Two orthogonal axes:
//   - decision: Pending -> Accepted/Rejected (customer response, informational)
//   - execution: claim -> payment method -> paid -> invoice -> completed
//
// Neither axis gates the other. Staff can claim, collect payment on and
// complete a quote that was never formally accepted.
type IQuoteLifecycleUseCase interface {
	Issue(ctx context.Context, customerID, customerName string, price decimal.Decimal, timeframeDays int, details, issuedBy string) (entities.Quote, error)
	Accept(ctx context.Context, id, decidedBy string) (entities.Quote, error)
	Reject(ctx context.Context, id, decidedBy string) (entities.Quote, error)
	Claim(ctx context.Context, id, staffID string) (entities.Quote, error)
	SelectPaymentMethod(ctx context.Context, id string, method entities.PaymentMethod) (entities.Quote, error)
	ConfirmPaid(ctx context.Context, id, confirmedBy string) (entities.Quote, error)
	AttachInvoice(ctx context.Context, id, link, sentBy string) (entities.Quote, error)
	Complete(ctx context.Context, id, completedBy string) (entities.Quote, error)
	GetByID(ctx context.Context, id string) (entities.Quote, error)
	List(ctx context.Context) ([]entities.Quote, error)
}

// QuoteLifecycleUseCase mutates the cache synchronously and writes through to
// the durable store asynchronously. The caller sees success as soon as the
// cache reflects the mutation; a failed write-through is logged and dropped
// (the store catches up on the next mutation of the same quote, or never).
type QuoteLifecycleUseCase struct {
	cache    interfaces.IQuoteCache
	repo     interfaces.IQuoteRepository
	notifier interfaces.INotificationEmitter
	numbers  *QuoteNumberAllocator
	log      *zap.Logger

	persistTimeout time.Duration
	inflight       sync.WaitGroup

	// Serializes mutations per quote. The source system relied on a
	// cooperative single-threaded scheduler for this; under real goroutines
	// the claim precondition needs an explicit critical section.
	locksMu sync.Mutex
	locks   map[string]*sync.Mutex
}

var _ IQuoteLifecycleUseCase = (*QuoteLifecycleUseCase)(nil)

func NewQuoteLifecycleUseCase(
	cache interfaces.IQuoteCache,
	repo interfaces.IQuoteRepository,
	notifier interfaces.INotificationEmitter,
	numbers *QuoteNumberAllocator,
	log *zap.Logger,
) *QuoteLifecycleUseCase {
	return &QuoteLifecycleUseCase{
		cache:          cache,
		repo:           repo,
		notifier:       notifier,
		numbers:        numbers,
		log:            log.Named("lifecycle"),
		persistTimeout: defaultPersistTimeout,
		locks:          make(map[string]*sync.Mutex),
	}
}

func (u *QuoteLifecycleUseCase) Issue(ctx context.Context, customerID, customerName string, price decimal.Decimal, timeframeDays int, details, issuedBy string) (entities.Quote, error) {
	customerID = strings.TrimSpace(customerID)
	if customerID == "" {
		return entities.Quote{}, ErrInvalidCustomerID
	}
	issuedBy = strings.TrimSpace(issuedBy)
	if issuedBy == "" {
		return entities.Quote{}, ErrInvalidActorID
	}
	if price.Sign() <= 0 {
		return entities.Quote{}, ErrInvalidPrice
	}
	if timeframeDays <= 0 {
		return entities.Quote{}, ErrInvalidTimeframe
	}

	q := entities.Quote{
		ID:                  uuid.NewString(),
		QuoteNumber:         u.numbers.Next(),
		CustomerID:          customerID,
		CustomerDisplayName: strings.TrimSpace(customerName),
		Price:               price,
		TimeframeDays:       timeframeDays,
		Details:             strings.TrimSpace(details),
		Status:              entities.QuoteStatusPending,
		CreatedBy:           issuedBy,
		CreatedAt:           time.Now().UTC(),
	}

	u.cache.Put(q)
	u.writeThrough(q, "issue")
	u.notify(q, entities.QuoteEventIssued)
	return q, nil
}

func (u *QuoteLifecycleUseCase) Accept(ctx context.Context, id, decidedBy string) (entities.Quote, error) {
	return u.decide(ctx, id, decidedBy, entities.QuoteStatusAccepted, entities.QuoteEventAccepted)
}

func (u *QuoteLifecycleUseCase) Reject(ctx context.Context, id, decidedBy string) (entities.Quote, error) {
	return u.decide(ctx, id, decidedBy, entities.QuoteStatusRejected, entities.QuoteEventRejected)
}

func (u *QuoteLifecycleUseCase) decide(ctx context.Context, id, decidedBy string, status entities.QuoteStatus, event entities.QuoteEvent) (entities.Quote, error) {
	return u.mutate(id, decidedBy, "decide", func(q *entities.Quote, actor string, now time.Time) (entities.QuoteEvent, bool, error) {
		q.Status = status
		q.DecisionBy = actor
		q.DecisionAt = &now
		return event, true, nil
	})
}

// Claim takes execution ownership of a quote. A quote is claimed at most once;
// the losing side of a near-simultaneous double claim gets ErrQuoteAlreadyClaimed
// while claimed_by keeps the winner.
func (u *QuoteLifecycleUseCase) Claim(ctx context.Context, id, staffID string) (entities.Quote, error) {
	return u.mutate(id, staffID, "claim", func(q *entities.Quote, actor string, now time.Time) (entities.QuoteEvent, bool, error) {
		if q.Claimed() {
			return "", false, ErrQuoteAlreadyClaimed
		}
		q.ClaimedBy = actor
		q.ClaimedAt = &now
		return entities.QuoteEventClaimed, true, nil
	})
}

func (u *QuoteLifecycleUseCase) SelectPaymentMethod(ctx context.Context, id string, method entities.PaymentMethod) (entities.Quote, error) {
	if !entities.ValidPaymentMethod(method) {
		return entities.Quote{}, ErrInvalidMethod
	}
	// No claim precondition: customers may pick the channel before any staff
	// member takes the work. This is the one mutation with no who/when pair,
	// so it skips the actor requirement.
	return u.apply(id, "", "select_payment_method", func(q *entities.Quote, _ string, _ time.Time) (entities.QuoteEvent, bool, error) {
		q.PaymentMethod = method
		return entities.QuoteEventMethodSelected, true, nil
	})
}

// ConfirmPaid flips paid exactly once. A repeated confirmation is a no-op
// success so duplicate button presses cannot double-process; the original
// paid_by/paid_at survive.
func (u *QuoteLifecycleUseCase) ConfirmPaid(ctx context.Context, id, confirmedBy string) (entities.Quote, error) {
	return u.mutate(id, confirmedBy, "confirm_paid", func(q *entities.Quote, actor string, now time.Time) (entities.QuoteEvent, bool, error) {
		if q.Paid {
			return "", false, nil
		}
		q.Paid = true
		q.PaidBy = actor
		q.PaidAt = &now
		return entities.QuoteEventPaid, true, nil
	})
}

// AttachInvoice records the invoice link. The administrative capability check
// lives with the collaborator issuing the request, not here.
func (u *QuoteLifecycleUseCase) AttachInvoice(ctx context.Context, id, link, sentBy string) (entities.Quote, error) {
	link = strings.TrimSpace(link)
	if link == "" {
		return entities.Quote{}, ErrInvalidInvoiceLink
	}
	return u.mutate(id, sentBy, "attach_invoice", func(q *entities.Quote, actor string, now time.Time) (entities.QuoteEvent, bool, error) {
		q.InvoiceLink = link
		q.InvoiceSentBy = actor
		q.InvoiceSentAt = &now
		return entities.QuoteEventInvoiceSent, true, nil
	})
}

// Complete marks the quote finished. There is no paid/invoiced precondition:
// staff close out quotes settled out-of-band.
func (u *QuoteLifecycleUseCase) Complete(ctx context.Context, id, completedBy string) (entities.Quote, error) {
	return u.mutate(id, completedBy, "complete", func(q *entities.Quote, actor string, now time.Time) (entities.QuoteEvent, bool, error) {
		q.Status = entities.QuoteStatusCompleted
		q.CompletedBy = actor
		q.CompletedAt = &now
		return entities.QuoteEventCompleted, true, nil
	})
}

func (u *QuoteLifecycleUseCase) GetByID(ctx context.Context, id string) (entities.Quote, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Quote{}, ErrInvalidQuoteID
	}
	q, ok := u.cache.Get(id)
	if !ok {
		return entities.Quote{}, ErrQuoteNotFound
	}
	return q, nil
}

func (u *QuoteLifecycleUseCase) List(ctx context.Context) ([]entities.Quote, error) {
	quotes := u.cache.All()
	sort.Slice(quotes, func(i, j int) bool { return quotes[i].QuoteNumber < quotes[j].QuoteNumber })
	return quotes, nil
}

// mutate wraps apply for the operations that record a who/when pair. A blank
// actor would leave a timestamp with no owner (and, for claims, a quote that
// reads as unclaimed), so it is rejected up front.
func (u *QuoteLifecycleUseCase) mutate(
	id, actor, op string,
	fn func(q *entities.Quote, actor string, now time.Time) (entities.QuoteEvent, bool, error),
) (entities.Quote, error) {
	if strings.TrimSpace(actor) == "" {
		return entities.Quote{}, ErrInvalidActorID
	}
	return u.apply(id, actor, op, fn)
}

// apply is the shared two-phase skeleton: lock the quote, apply fn against
// the cached copy, publish to the cache, then write through asynchronously.
// fn reports the event to emit and whether anything changed; a no-op result
// skips both the write-through and the notification.
func (u *QuoteLifecycleUseCase) apply(
	id, actor, op string,
	fn func(q *entities.Quote, actor string, now time.Time) (entities.QuoteEvent, bool, error),
) (entities.Quote, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Quote{}, ErrInvalidQuoteID
	}
	actor = strings.TrimSpace(actor)

	lock := u.lockFor(id)
	lock.Lock()
	defer lock.Unlock()

	q, ok := u.cache.Get(id)
	if !ok {
		return entities.Quote{}, ErrQuoteNotFound
	}

	event, changed, err := fn(&q, actor, time.Now().UTC())
	if err != nil {
		return entities.Quote{}, err
	}
	if !changed {
		return q, nil
	}

	u.cache.Put(q)
	u.writeThrough(q, op)
	u.notify(q, event)
	return q, nil
}

func (u *QuoteLifecycleUseCase) lockFor(id string) *sync.Mutex {
	u.locksMu.Lock()
	defer u.locksMu.Unlock()
	m, ok := u.locks[id]
	if !ok {
		m = &sync.Mutex{}
		u.locks[id] = m
	}
	return m
}

// writeThrough persists the quote without blocking the caller. Failures are
// logged and dropped: the cache is already ahead and stays authoritative
// until restart.
func (u *QuoteLifecycleUseCase) writeThrough(q entities.Quote, op string) {
	if u.repo == nil {
		u.log.Warn("store not configured, running cache-only",
			zap.String("quote_id", q.ID), zap.String("op", op))
		return
	}
	u.inflight.Add(1)
	go func() {
		defer u.inflight.Done()
		ctx, cancel := context.WithTimeout(context.Background(), u.persistTimeout)
		defer cancel()
		if _, err := u.repo.Upsert(ctx, q); err != nil {
			u.log.Error("write-through failed, cache ahead of store",
				zap.String("quote_id", q.ID),
				zap.Int64("quote_number", q.QuoteNumber),
				zap.String("op", op),
				zap.Error(err))
		}
	}()
}

func (u *QuoteLifecycleUseCase) notify(q entities.Quote, event entities.QuoteEvent) {
	if u.notifier == nil {
		return
	}
	u.notifier.Notify(q, event)
}

// WaitForPersistence blocks until every in-flight write-through has finished.
// Used by graceful shutdown and by tests.
func (u *QuoteLifecycleUseCase) WaitForPersistence() {
	u.inflight.Wait()
}
