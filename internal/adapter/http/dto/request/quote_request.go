package request

import (
	"errors"
	"strings"

	"github.com/shopspring/decimal"
)

var (
	ErrInvalidQuotePrice  = errors.New("invalid quote price")
	ErrUnknownInteraction = errors.New("unknown interaction action")
)

// IssueQuoteRequest is the payload that opens a new commission quote.
type IssueQuoteRequest struct {
	CustomerID          string  `json:"customer_id" binding:"required"`
	CustomerDisplayName string  `json:"customer_display_name"`
	Price               float64 `json:"price" binding:"required"`
	TimeframeDays       int     `json:"timeframe_days" binding:"required"`
	Details             string  `json:"details"`
	IssuedBy            string  `json:"issued_by" binding:"required"`
}

func (r IssueQuoteRequest) ResolveCustomerID() string {
	return strings.TrimSpace(r.CustomerID)
}

func (r IssueQuoteRequest) ResolvePrice() (decimal.Decimal, error) {
	if r.Price <= 0 {
		return decimal.Decimal{}, ErrInvalidQuotePrice
	}
	return decimal.NewFromFloat(r.Price), nil
}

// ActorRequest carries the staff/customer reference behind single-actor
// actions (decide, claim, confirm-paid, complete).
type ActorRequest struct {
	ActorID string `json:"actor_id" binding:"required"`
}

func (r ActorRequest) ResolveActorID() string {
	return strings.TrimSpace(r.ActorID)
}

type PaymentMethodRequest struct {
	Method string `json:"method" binding:"required"`
}

func (r PaymentMethodRequest) ResolveMethod() string {
	return strings.ToLower(strings.TrimSpace(r.Method))
}

type AttachInvoiceRequest struct {
	Link    string `json:"link" binding:"required"`
	ActorID string `json:"actor_id" binding:"required"`
}

func (r AttachInvoiceRequest) ResolveLink() string {
	return strings.TrimSpace(r.Link)
}

func (r AttachInvoiceRequest) ResolveActorID() string {
	return strings.TrimSpace(r.ActorID)
}

// InteractionAction is the closed set of actions the chat layer may dispatch.
// Anything not in this set is rejected at the boundary.
type InteractionAction string

const (
	ActionIssue         InteractionAction = "issue"
	ActionAccept        InteractionAction = "accept"
	ActionReject        InteractionAction = "reject"
	ActionClaim         InteractionAction = "claim"
	ActionSelectMethod  InteractionAction = "select_payment_method"
	ActionConfirmPaid   InteractionAction = "confirm_paid"
	ActionAttachInvoice InteractionAction = "attach_invoice"
	ActionComplete      InteractionAction = "complete"
)

func ParseInteractionAction(s string) (InteractionAction, error) {
	switch a := InteractionAction(strings.ToLower(strings.TrimSpace(s))); a {
	case ActionIssue, ActionAccept, ActionReject, ActionClaim,
		ActionSelectMethod, ActionConfirmPaid, ActionAttachInvoice, ActionComplete:
		return a, nil
	default:
		return "", ErrUnknownInteraction
	}
}

// InteractionPayload carries the action-specific fields of an interaction
// event. Only the fields the resolved action needs are read.
type InteractionPayload struct {
	CustomerID          string  `json:"customer_id"`
	CustomerDisplayName string  `json:"customer_display_name"`
	Price               float64 `json:"price"`
	TimeframeDays       int     `json:"timeframe_days"`
	Details             string  `json:"details"`
	Method              string  `json:"method"`
	Link                string  `json:"link"`
}

// InteractionEventRequest is the envelope the chat layer posts for every
// button press, form submission or menu selection.
type InteractionEventRequest struct {
	Action        string             `json:"action" binding:"required"`
	QuoteID       string             `json:"quote_id"`
	ActorID       string             `json:"actor_id" binding:"required"`
	InteractionID string             `json:"interaction_id"`
	Payload       InteractionPayload `json:"payload"`
}

func (r InteractionEventRequest) ResolveAction() (InteractionAction, error) {
	return ParseInteractionAction(r.Action)
}

func (r InteractionEventRequest) ResolveQuoteID() string {
	return strings.TrimSpace(r.QuoteID)
}

func (r InteractionEventRequest) ResolveActorID() string {
	return strings.TrimSpace(r.ActorID)
}

func (r InteractionEventRequest) ResolveInteractionID() string {
	return strings.TrimSpace(r.InteractionID)
}
