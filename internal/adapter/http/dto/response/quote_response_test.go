package response

import (
	"testing"
	"time"

	"staffdesk/internal/domain/entities"

	"github.com/shopspring/decimal"
)

func TestFromQuote(t *testing.T) {
	now := time.Now().UTC()
	claimedAt := now.Add(time.Minute)
	q := entities.Quote{
		ID:                  "q-1",
		QuoteNumber:         12,
		CustomerID:          "cust-42",
		CustomerDisplayName: "Apricot",
		Price:               decimal.RequireFromString("150.5"),
		TimeframeDays:       7,
		Details:             "logo",
		Status:              entities.QuoteStatusPending,
		CreatedBy:           "staff-1",
		CreatedAt:           now,
		ClaimedBy:           "staff-7",
		ClaimedAt:           &claimedAt,
		Paid:                true,
	}

	res := FromQuote(q)
	if res.ID != "q-1" || res.QuoteNumber != 12 {
		t.Fatalf("unexpected ids: %+v", res)
	}
	if res.Price != "150.50" {
		t.Fatalf("expected fixed-point price, got %q", res.Price)
	}
	if res.Status != "pending" || !res.Paid {
		t.Fatalf("unexpected mapped fields: %+v", res)
	}
	if res.ClaimedBy != "staff-7" || res.ClaimedAt == nil || !res.ClaimedAt.Equal(claimedAt) {
		t.Fatalf("unexpected claim fields: %+v", res)
	}
	if !res.CreatedAt.Equal(now) {
		t.Fatalf("unexpected created_at: %+v", res)
	}
}

func TestFromQuotes(t *testing.T) {
	quotes := []entities.Quote{
		{ID: "q-1", QuoteNumber: 1, Price: decimal.NewFromInt(10)},
		{ID: "q-2", QuoteNumber: 2, Price: decimal.NewFromInt(20)},
	}

	res := FromQuotes(quotes)
	if len(res) != 2 {
		t.Fatalf("expected 2 responses, got %d", len(res))
	}
	if res[0].ID != "q-1" || res[1].ID != "q-2" {
		t.Fatalf("unexpected order: %+v", res)
	}
}
