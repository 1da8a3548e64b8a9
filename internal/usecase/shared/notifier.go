package shared

import "context"

// Notification is a push message for a single device token.
type Notification struct {
	Token string            `json:"token"`
	Title string            `json:"title"`
	Body  string            `json:"body"`
	Data  map[string]string `json:"data,omitempty"`
}

// Notifier delivers push notifications on a best-effort basis.
type Notifier interface {
	Send(ctx context.Context, n Notification) error
}
