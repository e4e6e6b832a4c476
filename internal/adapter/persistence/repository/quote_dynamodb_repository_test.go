package repository

import (
	"testing"
	"time"

	"staffdesk/internal/domain/entities"

	"github.com/shopspring/decimal"
)

func TestQuoteItemRoundTrip(t *testing.T) {
	now := time.Now().UTC().Truncate(time.Millisecond)
	claimedAt := now.Add(time.Minute)
	paidAt := now.Add(2 * time.Minute)

	q := entities.Quote{
		ID:                  "q-1",
		QuoteNumber:         7,
		CustomerID:          "cust-42",
		CustomerDisplayName: "Apricot",
		Price:               decimal.RequireFromString("150.50"),
		TimeframeDays:       7,
		Details:             "logo",
		Status:              entities.QuoteStatusPending,
		CreatedBy:           "staff-1",
		CreatedAt:           now,
		ClaimedBy:           "staff-7",
		ClaimedAt:           &claimedAt,
		PaymentMethod:       entities.PaymentMethodPayPal,
		Paid:                true,
		PaidBy:              "staff-7",
		PaidAt:              &paidAt,
	}

	got := fromQuoteItem(toQuoteItem(q))

	if got.ID != q.ID || got.QuoteNumber != q.QuoteNumber {
		t.Fatalf("identity lost: %+v", got)
	}
	if !got.Price.Equal(q.Price) {
		t.Fatalf("price lost precision: %s != %s", got.Price, q.Price)
	}
	if !got.CreatedAt.Equal(q.CreatedAt) {
		t.Fatalf("created_at mismatch: %v != %v", got.CreatedAt, q.CreatedAt)
	}
	if got.ClaimedAt == nil || !got.ClaimedAt.Equal(claimedAt) {
		t.Fatalf("claimed_at mismatch: %v", got.ClaimedAt)
	}
	if !got.Paid || got.PaidBy != "staff-7" || got.PaidAt == nil {
		t.Fatalf("payment fields mismatch: %+v", got)
	}
	if got.Status != entities.QuoteStatusPending || got.PaymentMethod != entities.PaymentMethodPayPal {
		t.Fatalf("enum fields mismatch: %+v", got)
	}
}

func TestQuoteItemOptionalFieldsStayEmpty(t *testing.T) {
	q := entities.Quote{
		ID:          "q-2",
		QuoteNumber: 8,
		CustomerID:  "cust-1",
		Price:       decimal.NewFromInt(10),
		Status:      entities.QuoteStatusPending,
		CreatedAt:   time.Now().UTC(),
	}

	it := toQuoteItem(q)
	if it.ClaimedAt != "" || it.PaidAt != "" || it.CompletedAt != "" || it.DecisionAt != "" {
		t.Fatalf("unset timestamps should serialize empty: %+v", it)
	}
	if it.SchemaVersion != quoteSchemaVersion {
		t.Fatalf("expected schema version %d, got %d", quoteSchemaVersion, it.SchemaVersion)
	}

	got := fromQuoteItem(it)
	if got.ClaimedAt != nil || got.PaidAt != nil || got.CompletedAt != nil || got.DecisionAt != nil {
		t.Fatalf("unset timestamps should stay nil: %+v", got)
	}
	if got.Claimed() || got.Paid {
		t.Fatalf("unexpected execution state: %+v", got)
	}
}

func TestQuoteItemToleratesBadTimestamps(t *testing.T) {
	it := quoteItem{
		ID:        "q-3",
		Price:     "not-a-number",
		CreatedAt: "garbage",
		ClaimedAt: "also-garbage",
	}

	got := fromQuoteItem(it)
	if got.ID != "q-3" {
		t.Fatalf("id lost: %+v", got)
	}
	if !got.CreatedAt.IsZero() || got.ClaimedAt != nil {
		t.Fatalf("bad timestamps should become zero values: %+v", got)
	}
	if !got.Price.IsZero() {
		t.Fatalf("bad price should become zero: %s", got.Price)
	}
}
