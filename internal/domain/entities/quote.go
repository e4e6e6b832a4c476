package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

// QuoteStatus represents the lifecycle of a commission quote.
//
// Domain notes:
//   - The decision axis (pending -> accepted/rejected) records the customer's
//     response to the quote. It is informational: it does not gate the
//     execution track (claim -> payment -> invoice -> completion), matching
//     how staff actually work the pipeline.
//   - Completed is terminal and may be reached without a recorded decision.
type QuoteStatus string

const (
	QuoteStatusPending   QuoteStatus = "pending"
	QuoteStatusAccepted  QuoteStatus = "accepted"
	QuoteStatusRejected  QuoteStatus = "rejected"
	QuoteStatusCompleted QuoteStatus = "completed"
)

// PaymentMethod is the out-of-band channel the customer pays through.
// Payment itself happens outside the system; staff confirm it manually.
type PaymentMethod string

const (
	PaymentMethodPayPal   PaymentMethod = "paypal"
	PaymentMethodCashApp  PaymentMethod = "cashapp"
	PaymentMethodTransfer PaymentMethod = "transfer"
)

// QuoteEvent tags a lifecycle mutation for notification rendering.
type QuoteEvent string

const (
	QuoteEventIssued         QuoteEvent = "issued"
	QuoteEventAccepted       QuoteEvent = "accepted"
	QuoteEventRejected       QuoteEvent = "rejected"
	QuoteEventClaimed        QuoteEvent = "claimed"
	QuoteEventMethodSelected QuoteEvent = "payment_method_selected"
	QuoteEventPaid           QuoteEvent = "paid"
	QuoteEventInvoiceSent    QuoteEvent = "invoice_sent"
	QuoteEventCompleted      QuoteEvent = "completed"
)

// Quote is the commission quote persisted in DynamoDB.
//
// Storage model (DynamoDB):
//   - PK: id
//   - quote_number is a plain numeric attribute; the allocator scans for the
//     max once at startup, so no GSI is required.
//
// Monetary representation:
//   - Price is a decimal amount; the currency unit is implied by the shop.
//
// Every "who" field pairs with a "when" field and the two are always written
// together.
type Quote struct {
	ID                  string          `json:"id"`
	QuoteNumber         int64           `json:"quote_number"`
	CustomerID          string          `json:"customer_id"`
	CustomerDisplayName string          `json:"customer_display_name"`
	Price               decimal.Decimal `json:"price"`
	TimeframeDays       int             `json:"timeframe_days"`
	Details             string          `json:"details"`
	Status              QuoteStatus     `json:"status"`

	CreatedBy string    `json:"created_by"`
	CreatedAt time.Time `json:"created_at"`

	ClaimedBy string     `json:"claimed_by,omitempty"`
	ClaimedAt *time.Time `json:"claimed_at,omitempty"`

	PaymentMethod PaymentMethod `json:"payment_method,omitempty"`
	Paid          bool          `json:"paid"`
	PaidBy        string        `json:"paid_by,omitempty"`
	PaidAt        *time.Time    `json:"paid_at,omitempty"`

	InvoiceLink   string     `json:"invoice_link,omitempty"`
	InvoiceSentBy string     `json:"invoice_sent_by,omitempty"`
	InvoiceSentAt *time.Time `json:"invoice_sent_at,omitempty"`

	CompletedBy string     `json:"completed_by,omitempty"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`

	DecisionBy string     `json:"decision_by,omitempty"`
	DecisionAt *time.Time `json:"decision_at,omitempty"`
}

// Claimed reports whether any staff member owns the quote's execution.
func (q Quote) Claimed() bool {
	return q.ClaimedBy != ""
}

// ValidPaymentMethod reports whether m is one of the supported channels.
func ValidPaymentMethod(m PaymentMethod) bool {
	switch m {
	case PaymentMethodPayPal, PaymentMethodCashApp, PaymentMethodTransfer:
		return true
	}
	return false
}
