package notification

import (
	"testing"
	"time"

	"staffdesk/internal/domain/entities"
	"staffdesk/internal/usecase"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func sampleQuote() entities.Quote {
	now := time.Now().UTC()
	return entities.Quote{
		ID:                  "q-1",
		QuoteNumber:         12,
		CustomerID:          "cust-42",
		CustomerDisplayName: "Apricot",
		Price:               decimal.NewFromFloat(150),
		TimeframeDays:       7,
		Status:              entities.QuoteStatusPending,
		CreatedBy:           "staff-1",
		CreatedAt:           now,
	}
}

func TestRender_EventMessages(t *testing.T) {
	q := sampleQuote()

	n := Render(q, entities.QuoteEventIssued)
	require.Contains(t, n.UserMessage, "#12")
	require.Contains(t, n.UserMessage, "Apricot")
	require.Contains(t, n.UserMessage, "150.00")
	require.Contains(t, n.AuditMessage, "staff-1")

	q.ClaimedBy = "staff-7"
	n = Render(q, entities.QuoteEventClaimed)
	require.Contains(t, n.UserMessage, "staff-7")
	require.Contains(t, n.AuditMessage, "claimed by staff-7")

	q.PaidBy = "staff-7"
	n = Render(q, entities.QuoteEventPaid)
	require.Contains(t, n.AuditMessage, "marked paid by staff-7")
}

func TestRender_DefensiveDefaults(t *testing.T) {
	// Zero-value quote must still render something usable.
	n := Render(entities.Quote{}, entities.QuoteEventCompleted)
	require.NotEmpty(t, n.UserMessage)
	require.Contains(t, n.AuditMessage, "completed by -")

	// Display name falls back to the customer reference.
	n = Render(entities.Quote{CustomerID: "cust-42", QuoteNumber: 3}, entities.QuoteEventIssued)
	require.Contains(t, n.UserMessage, "cust-42")

	// Unknown event tags still produce messages.
	n = Render(sampleQuote(), entities.QuoteEvent("mystery"))
	require.NotEmpty(t, n.UserMessage)
	require.NotEmpty(t, n.AuditMessage)
}

func TestRenderError(t *testing.T) {
	require.Contains(t, RenderError(usecase.ErrQuoteNotFound), "no longer exists")
	require.Contains(t, RenderError(usecase.ErrQuoteAlreadyClaimed), "already claimed")
	require.NotEmpty(t, RenderError(usecase.ErrInvalidPrice))
}

func TestEmitter_NotifyReturnsRendered(t *testing.T) {
	e := NewEmitter(zap.NewNop())
	q := sampleQuote()

	n := e.Notify(q, entities.QuoteEventIssued)
	require.Equal(t, Render(q, entities.QuoteEventIssued), n)
}
