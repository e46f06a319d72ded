package mirror

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/donaldgifford/satsearch-go/internal/metrics"
	"github.com/donaldgifford/satsearch-go/internal/notify"
	"github.com/donaldgifford/satsearch-go/pkg/satsearch"
)

// Scheduler runs Syncer.Sync on a fixed interval.
type Scheduler struct {
	cron    *cron.Cron
	syncer  *Syncer
	creds   *satsearch.Credentials
	timeout time.Duration
	log     *slog.Logger

	syncEntryID cron.EntryID

	notifier notify.Notifier

	// running serializes RunNow between cron and manual triggers and
	// guards failures.
	running  sync.Mutex
	failures int
}

// notifyTimeout bounds one notification call.
const notifyTimeout = 10 * time.Second

// SchedulerOption configures a Scheduler.
type SchedulerOption func(*Scheduler)

// WithNotifier reports failed syncs, and the success that ends a run of
// failures, to n.
func WithNotifier(n notify.Notifier) SchedulerOption {
	return func(s *Scheduler) {
		s.notifier = n
	}
}

// NewScheduler creates a Scheduler that syncs with creds every interval.
// Each run is bounded by timeout; zero means no bound. Overlapping runs
// are skipped.
func NewScheduler(
	syncer *Syncer,
	creds *satsearch.Credentials,
	interval time.Duration,
	timeout time.Duration,
	log *slog.Logger,
	opts ...SchedulerOption,
) (*Scheduler, error) {
	if interval <= 0 {
		return nil, fmt.Errorf("sync interval must be positive (got %s)", interval)
	}

	c := cron.New(cron.WithChain(
		cron.SkipIfStillRunning(cron.DiscardLogger),
	))

	s := &Scheduler{
		cron:    c,
		syncer:  syncer,
		creds:   creds,
		timeout: timeout,
		log:     log,
	}
	for _, opt := range opts {
		opt(s)
	}

	id, err := c.AddFunc("@every "+interval.String(), s.runSync)
	if err != nil {
		return nil, err
	}
	s.syncEntryID = id

	return s, nil
}

// Start begins running scheduled syncs.
func (s *Scheduler) Start() {
	s.log.Info("mirror scheduler started")
	s.cron.Start()
	s.SyncNextRunTimestamps()
}

// Stop gracefully stops the scheduler; the returned context is done once
// a running sync finishes.
func (s *Scheduler) Stop() context.Context {
	s.log.Info("mirror scheduler stopping")
	return s.cron.Stop()
}

// Entries returns the registered cron entries for inspection.
func (s *Scheduler) Entries() []cron.Entry {
	return s.cron.Entries()
}

// SyncNextRunTimestamps publishes the next sync time as a gauge.
func (s *Scheduler) SyncNextRunTimestamps() {
	next := s.cron.Entry(s.syncEntryID).Next
	if !next.IsZero() {
		metrics.MirrorNextSyncTimestamp.Set(float64(next.Unix()))
	}
}

// RunNow performs one sync immediately, outside the cron schedule. It
// returns ErrSyncInProgress when another sync is running.
func (s *Scheduler) RunNow(ctx context.Context) (*SyncResult, error) {
	if !s.running.TryLock() {
		return nil, ErrSyncInProgress
	}
	defer s.running.Unlock()

	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	result, err := s.syncer.Sync(ctx, s.creds)
	s.notify(ctx, result, err)
	return result, err
}

// notify tracks the failure streak and reports each failure and the
// success that ends a streak. Callers hold s.running.
func (s *Scheduler) notify(ctx context.Context, result *SyncResult, err error) {
	if result == nil {
		return
	}

	var event *notify.SyncEvent
	if err != nil {
		s.failures++
		event = syncEvent(notify.EventSyncFailed, result, s.failures)
		event.Error = err.Error()
	} else {
		if s.failures == 0 {
			return
		}
		event = syncEvent(notify.EventSyncRecovered, result, s.failures)
		s.failures = 0
	}

	if s.notifier == nil {
		return
	}

	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), notifyTimeout)
	defer cancel()
	if nerr := s.notifier.Notify(ctx, event); nerr != nil {
		s.log.WarnContext(ctx, "sending sync notification failed",
			"event", event.Kind,
			"sync_id", result.ID,
			"error", nerr,
		)
	}
}

func syncEvent(kind string, result *SyncResult, failures int) *notify.SyncEvent {
	return &notify.SyncEvent{
		Kind:           kind,
		SyncID:         result.ID.String(),
		StartedAt:      result.StartedAt,
		Duration:       result.Duration,
		Failures:       failures,
		Suppliers:      result.Suppliers,
		Categories:     result.Categories,
		AttributeTypes: result.AttributeTypes,
	}
}

func (s *Scheduler) runSync() {
	defer s.SyncNextRunTimestamps()

	s.log.Info("scheduled mirror sync starting")
	_, err := s.RunNow(context.Background())
	switch {
	case errors.Is(err, ErrSyncInProgress):
		s.log.Info("scheduled mirror sync skipped, a sync is already running")
	case err != nil:
		s.log.Error("scheduled mirror sync failed", "error", err)
	}
}
