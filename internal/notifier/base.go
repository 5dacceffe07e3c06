// Package notifier implements push notifications.
package notifier

import (
	"context"

	"github.com/inwx-ddns/inwx-ddns/internal/pp"
)

//go:generate mockgen -destination=../mocks/mock_notifier.go -package=mocks . Notifier

// Notifier is an abstract service for push notifications.
type Notifier interface {
	// Describe the notification services in a human-readable format.
	Describe() string

	// Send out a message.
	Send(ctx context.Context, ppfmt pp.PP, msg string) bool
}
