package notify

import (
	"context"
	"log/slog"
)

// NoOpNotifier implements Notifier by logging discarded events. It is used
// when no webhook is configured.
type NoOpNotifier struct {
	log *slog.Logger
}

// NewNoOpNotifier creates a notifier that discards events with a log message.
func NewNoOpNotifier(log *slog.Logger) *NoOpNotifier {
	return &NoOpNotifier{log: log}
}

// Notify logs and discards event.
func (n *NoOpNotifier) Notify(ctx context.Context, event *SyncEvent) error {
	n.log.DebugContext(ctx, "notification discarded (no backend configured)",
		"event", event.Kind,
		"sync_id", event.SyncID,
		"failures", event.Failures,
	)
	return nil
}
