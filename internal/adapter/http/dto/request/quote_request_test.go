package request

import (
	"errors"
	"testing"
)

func TestIssueQuoteRequest_ResolvePrice(t *testing.T) {
	r := IssueQuoteRequest{Price: 150.50}
	price, err := r.ResolvePrice()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if price.StringFixed(2) != "150.50" {
		t.Fatalf("expected 150.50, got %s", price)
	}

	for _, bad := range []float64{0, -1} {
		r2 := IssueQuoteRequest{Price: bad}
		if _, err := r2.ResolvePrice(); !errors.Is(err, ErrInvalidQuotePrice) {
			t.Fatalf("expected ErrInvalidQuotePrice for %v, got %v", bad, err)
		}
	}
}

func TestIssueQuoteRequest_ResolveCustomerID(t *testing.T) {
	r := IssueQuoteRequest{CustomerID: " cust-42 "}
	if got := r.ResolveCustomerID(); got != "cust-42" {
		t.Fatalf("expected cust-42, got %q", got)
	}
}

func TestParseInteractionAction(t *testing.T) {
	valid := map[string]InteractionAction{
		"issue":                 ActionIssue,
		"ACCEPT":                ActionAccept,
		" reject ":              ActionReject,
		"claim":                 ActionClaim,
		"select_payment_method": ActionSelectMethod,
		"confirm_paid":          ActionConfirmPaid,
		"attach_invoice":        ActionAttachInvoice,
		"complete":              ActionComplete,
	}
	for raw, want := range valid {
		got, err := ParseInteractionAction(raw)
		if err != nil {
			t.Fatalf("unexpected error for %q: %v", raw, err)
		}
		if got != want {
			t.Fatalf("expected %q for %q, got %q", want, raw, got)
		}
	}

	for _, raw := range []string{"", "delete", "claim_all", "unknown"} {
		if _, err := ParseInteractionAction(raw); !errors.Is(err, ErrUnknownInteraction) {
			t.Fatalf("expected ErrUnknownInteraction for %q, got %v", raw, err)
		}
	}
}

func TestInteractionEventRequest_Resolvers(t *testing.T) {
	r := InteractionEventRequest{
		Action:        " Claim ",
		QuoteID:       " q-1 ",
		ActorID:       " staff-7 ",
		InteractionID: " btn-123 ",
	}

	action, err := r.ResolveAction()
	if err != nil || action != ActionClaim {
		t.Fatalf("expected claim, got %q err=%v", action, err)
	}
	if r.ResolveQuoteID() != "q-1" || r.ResolveActorID() != "staff-7" || r.ResolveInteractionID() != "btn-123" {
		t.Fatalf("unexpected resolvers: %+v", r)
	}
}
