package response

import (
	"time"

	"staffdesk/internal/domain/entities"
)

type QuoteResponse struct {
	ID                  string     `json:"id"`
	QuoteNumber         int64      `json:"quote_number"`
	CustomerID          string     `json:"customer_id"`
	CustomerDisplayName string     `json:"customer_display_name,omitempty"`
	Price               string     `json:"price"`
	TimeframeDays       int        `json:"timeframe_days"`
	Details             string     `json:"details,omitempty"`
	Status              string     `json:"status"`
	CreatedBy           string     `json:"created_by"`
	CreatedAt           time.Time  `json:"created_at"`
	ClaimedBy           string     `json:"claimed_by,omitempty"`
	ClaimedAt           *time.Time `json:"claimed_at,omitempty"`
	PaymentMethod       string     `json:"payment_method,omitempty"`
	Paid                bool       `json:"paid"`
	PaidBy              string     `json:"paid_by,omitempty"`
	PaidAt              *time.Time `json:"paid_at,omitempty"`
	InvoiceLink         string     `json:"invoice_link,omitempty"`
	InvoiceSentBy       string     `json:"invoice_sent_by,omitempty"`
	InvoiceSentAt       *time.Time `json:"invoice_sent_at,omitempty"`
	CompletedBy         string     `json:"completed_by,omitempty"`
	CompletedAt         *time.Time `json:"completed_at,omitempty"`
	DecisionBy          string     `json:"decision_by,omitempty"`
	DecisionAt          *time.Time `json:"decision_at,omitempty"`
}

func FromQuote(q entities.Quote) QuoteResponse {
	return QuoteResponse{
		ID:                  q.ID,
		QuoteNumber:         q.QuoteNumber,
		CustomerID:          q.CustomerID,
		CustomerDisplayName: q.CustomerDisplayName,
		Price:               q.Price.StringFixed(2),
		TimeframeDays:       q.TimeframeDays,
		Details:             q.Details,
		Status:              string(q.Status),
		CreatedBy:           q.CreatedBy,
		CreatedAt:           q.CreatedAt,
		ClaimedBy:           q.ClaimedBy,
		ClaimedAt:           q.ClaimedAt,
		PaymentMethod:       string(q.PaymentMethod),
		Paid:                q.Paid,
		PaidBy:              q.PaidBy,
		PaidAt:              q.PaidAt,
		InvoiceLink:         q.InvoiceLink,
		InvoiceSentBy:       q.InvoiceSentBy,
		InvoiceSentAt:       q.InvoiceSentAt,
		CompletedBy:         q.CompletedBy,
		CompletedAt:         q.CompletedAt,
		DecisionBy:          q.DecisionBy,
		DecisionAt:          q.DecisionAt,
	}
}

func FromQuotes(quotes []entities.Quote) []QuoteResponse {
	out := make([]QuoteResponse, 0, len(quotes))
	for _, q := range quotes {
		out = append(out, FromQuote(q))
	}
	return out
}

// InteractionResponse is what the chat layer renders back to the user after
// dispatching an interaction event.
type InteractionResponse struct {
	OK        bool          `json:"ok"`
	Duplicate bool          `json:"duplicate,omitempty"`
	Message   string        `json:"message,omitempty"`
	Quote     QuoteResponse `json:"quote"`
}

// InteractionErrorResponse carries the user-visible failure message for a
// rejected interaction event.
type InteractionErrorResponse struct {
	OK      bool   `json:"ok"`
	Code    string `json:"code"`
	Message string `json:"message"`
}
