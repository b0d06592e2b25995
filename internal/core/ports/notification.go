package ports

import (
	"context"
	"time"
)

// NotificationKind identifies the template a notification renders with.
type NotificationKind string

const (
	// NotificationWelcome is sent once after registration.
	NotificationWelcome NotificationKind = "welcome"
	// NotificationReverifyEmail is sent when an email change deactivates
	// the account pending re-verification.
	NotificationReverifyEmail NotificationKind = "reverify_email"
)

// Notification is the DTO handed from services to the async notifier.
type Notification struct {
	UserID int64
	Email  string
	Kind   NotificationKind
	At     time.Time
}

// NotificationQueue accepts notifications for asynchronous delivery.
// Enqueue never blocks the calling request beyond channel buffering.
type NotificationQueue interface {
	Enqueue(n Notification)
}

// NotificationService delivers a single notification (dedup + send).
type NotificationService interface {
	Deliver(ctx context.Context, n Notification) error
}

// NotificationSender is the outbound boundary (SMTP or similar lives
// behind it; this service only logs through a stand-in sender).
type NotificationSender interface {
	Send(ctx context.Context, n Notification) error
}
