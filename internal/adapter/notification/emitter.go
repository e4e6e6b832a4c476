// Package notification renders lifecycle events into the two messages the
// chat layer forwards: one for the customer/staff conversation, one for the
// audit channel.
package notification

import (
	"errors"
	"fmt"

	"staffdesk/internal/domain/entities"
	"staffdesk/internal/usecase"
	"staffdesk/internal/usecase/interfaces"

	"go.uber.org/zap"
)

// Emitter renders notifications and mirrors the audit line to a named zap
// logger. Rendering never fails; missing optional fields fall back to
// placeholders.
type Emitter struct {
	audit *zap.Logger
}

var _ interfaces.INotificationEmitter = (*Emitter)(nil)

func NewEmitter(log *zap.Logger) *Emitter {
	return &Emitter{audit: log.Named("audit")}
}

func (e *Emitter) Notify(q entities.Quote, event entities.QuoteEvent) interfaces.Notification {
	n := Render(q, event)
	e.audit.Info(n.AuditMessage,
		zap.String("quote_id", q.ID),
		zap.Int64("quote_number", q.QuoteNumber),
		zap.String("event", string(event)),
	)
	return n
}

// Render produces both messages for a post-mutation quote. Pure; safe on
// zero-value quotes.
func Render(q entities.Quote, event entities.QuoteEvent) interfaces.Notification {
	customer := q.CustomerDisplayName
	if customer == "" {
		customer = q.CustomerID
	}
	if customer == "" {
		customer = "unknown customer"
	}
	number := fmt.Sprintf("#%d", q.QuoteNumber)

	var user, audit string
	switch event {
	case entities.QuoteEventIssued:
		user = fmt.Sprintf("Quote %s issued for %s: %s over %d days.", number, customer, q.Price.StringFixed(2), q.TimeframeDays)
		audit = fmt.Sprintf("quote %s issued by %s for %s", number, orDash(q.CreatedBy), customer)
	case entities.QuoteEventAccepted:
		user = fmt.Sprintf("Quote %s was accepted.", number)
		audit = fmt.Sprintf("quote %s accepted, decision by %s", number, orDash(q.DecisionBy))
	case entities.QuoteEventRejected:
		user = fmt.Sprintf("Quote %s was rejected.", number)
		audit = fmt.Sprintf("quote %s rejected, decision by %s", number, orDash(q.DecisionBy))
	case entities.QuoteEventClaimed:
		user = fmt.Sprintf("Quote %s is now being handled by %s.", number, orDash(q.ClaimedBy))
		audit = fmt.Sprintf("quote %s claimed by %s", number, orDash(q.ClaimedBy))
	case entities.QuoteEventMethodSelected:
		user = fmt.Sprintf("Payment method for quote %s set to %s.", number, orDash(string(q.PaymentMethod)))
		audit = fmt.Sprintf("quote %s payment method set to %s", number, orDash(string(q.PaymentMethod)))
	case entities.QuoteEventPaid:
		user = fmt.Sprintf("Payment for quote %s confirmed.", number)
		audit = fmt.Sprintf("quote %s marked paid by %s", number, orDash(q.PaidBy))
	case entities.QuoteEventInvoiceSent:
		user = fmt.Sprintf("Invoice for quote %s: %s", number, orDash(q.InvoiceLink))
		audit = fmt.Sprintf("quote %s invoice attached by %s", number, orDash(q.InvoiceSentBy))
	case entities.QuoteEventCompleted:
		user = fmt.Sprintf("Quote %s is complete. Thank you!", number)
		audit = fmt.Sprintf("quote %s completed by %s", number, orDash(q.CompletedBy))
	default:
		user = fmt.Sprintf("Quote %s was updated.", number)
		audit = fmt.Sprintf("quote %s updated (%s)", number, event)
	}

	return interfaces.Notification{UserMessage: user, AuditMessage: audit}
}

// RenderError turns a lifecycle failure into the message shown to the user
// who triggered the interaction.
func RenderError(err error) string {
	switch {
	case errors.Is(err, usecase.ErrQuoteNotFound):
		return "That quote no longer exists."
	case errors.Is(err, usecase.ErrQuoteAlreadyClaimed):
		return "Someone already claimed this quote."
	case errors.Is(err, usecase.ErrInvalidTransition):
		return "That action is not allowed right now."
	default:
		return "Something went wrong, please try again."
	}
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
