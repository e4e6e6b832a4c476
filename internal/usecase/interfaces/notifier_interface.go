package interfaces

import "staffdesk/internal/domain/entities"

// Notification is the rendered pair of messages for a lifecycle event: one for
// the customer/staff conversation, one for the audit channel.
type Notification struct {
	UserMessage  string
	AuditMessage string
}

// INotificationEmitter renders and emits lifecycle notifications.
//
// Notify is invoked by the lifecycle manager after each successful mutation
// with the post-mutation quote. Implementations must not fail: rendering uses
// defensive defaults for missing optional fields.
type INotificationEmitter interface {
	Notify(q entities.Quote, event entities.QuoteEvent) Notification
}
