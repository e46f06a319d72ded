// Package notify delivers catalog mirror sync notifications.
package notify

import (
	"context"
	"time"
)

// Event kinds, also used as the event metric label.
const (
	EventSyncFailed    = "sync_failed"
	EventSyncRecovered = "sync_recovered"
)

// SyncEvent describes a mirror sync worth telling someone about: the first
// failure after a success, each further failure, or the success that ends a
// failure streak.
type SyncEvent struct {
	Kind      string
	SyncID    string
	StartedAt time.Time
	Duration  time.Duration
	// Failures is the number of consecutive failed syncs, including this
	// one for EventSyncFailed and excluding it for EventSyncRecovered.
	Failures       int
	Suppliers      int
	Categories     int
	AttributeTypes int
	Error          string
}

// Notifier defines the interface for sending sync notifications.
type Notifier interface {
	Notify(ctx context.Context, event *SyncEvent) error
}
