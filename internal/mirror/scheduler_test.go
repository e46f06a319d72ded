package mirror_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"sync"
	"testing"
	"time"

	ptestutil "github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/donaldgifford/satsearch-go/internal/metrics"
	"github.com/donaldgifford/satsearch-go/internal/mirror"
	"github.com/donaldgifford/satsearch-go/internal/mirror/mocks"
	"github.com/donaldgifford/satsearch-go/internal/notify"
	"github.com/donaldgifford/satsearch-go/pkg/satsearch"
)

func newTestScheduler(
	t *testing.T,
	interval time.Duration,
	timeout time.Duration,
) (*mirror.Scheduler, *mocks.MockCatalog, *mocks.MockStore) {
	t.Helper()

	cat := mocks.NewMockCatalog(t)
	ms := mocks.NewMockStore(t)
	syncer := mirror.NewSyncer(cat, ms, quietLogger())

	sched, err := mirror.NewScheduler(syncer, testCreds, interval, timeout, quietLogger())
	require.NoError(t, err)
	return sched, cat, ms
}

func TestNewScheduler_RegistersCronEntry(t *testing.T) {
	t.Parallel()

	sched, _, _ := newTestScheduler(t, 6*time.Hour, 0)
	assert.Len(t, sched.Entries(), 1)
}

func TestNewScheduler_InvalidInterval(t *testing.T) {
	t.Parallel()

	syncer := mirror.NewSyncer(mocks.NewMockCatalog(t), mocks.NewMockStore(t), quietLogger())
	_, err := mirror.NewScheduler(syncer, testCreds, -time.Minute, 0, quietLogger())
	require.Error(t, err)
}

func TestScheduler_StartStop(t *testing.T) {
	t.Parallel()

	sched, _, _ := newTestScheduler(t, time.Hour, 0)

	sched.Start()
	ctx := sched.Stop()
	<-ctx.Done()
}

func TestScheduler_SyncNextRunTimestamps(t *testing.T) {
	sched, _, _ := newTestScheduler(t, 6*time.Hour, 0)

	// Start so that cron populates Next times.
	sched.Start()
	defer sched.Stop()

	sched.SyncNextRunTimestamps()

	next := ptestutil.ToFloat64(metrics.MirrorNextSyncTimestamp)
	assert.InDelta(t, float64(time.Now().Add(6*time.Hour).Unix()), next, 5)
}

func TestScheduler_RunNow(t *testing.T) {
	t.Parallel()

	sched, cat, ms := newTestScheduler(t, time.Hour, time.Minute)

	cat.EXPECT().Suppliers(mock.Anything, testCreds).
		Run(func(ctx context.Context, _ *satsearch.Credentials) {
			deadline, ok := ctx.Deadline()
			assert.True(t, ok, "sync context should carry the timeout")
			assert.WithinDuration(t, time.Now().Add(time.Minute), deadline, 5*time.Second)
		}).
		Return(nil, nil).Once()
	cat.EXPECT().Categories(mock.Anything, testCreds).Return(nil, nil).Once()
	cat.EXPECT().AttributeTypes(mock.Anything, testCreds).Return(nil, nil).Once()
	ms.EXPECT().UpsertSuppliers(mock.Anything, mock.Anything).Return(0, nil).Once()
	ms.EXPECT().UpsertCategories(mock.Anything, mock.Anything).Return(0, nil).Once()
	ms.EXPECT().UpsertAttributeTypes(mock.Anything, mock.Anything).Return(0, nil).Once()
	ms.EXPECT().RecordSync(mock.Anything, mock.Anything).Return(nil).Once()

	result, err := sched.RunNow(context.Background())
	require.NoError(t, err)
	assert.Equal(t, mirror.StatusSucceeded, result.Status)
}

func TestScheduler_RunNow_RejectsOverlap(t *testing.T) {
	t.Parallel()

	sched, cat, ms := newTestScheduler(t, time.Hour, 0)

	started := make(chan struct{})
	release := make(chan struct{})

	cat.EXPECT().Suppliers(mock.Anything, testCreds).
		Run(func(context.Context, *satsearch.Credentials) {
			close(started)
			<-release
		}).
		Return(nil, nil).Once()
	cat.EXPECT().Categories(mock.Anything, testCreds).Return(nil, nil).Once()
	cat.EXPECT().AttributeTypes(mock.Anything, testCreds).Return(nil, nil).Once()
	ms.EXPECT().UpsertSuppliers(mock.Anything, mock.Anything).Return(0, nil).Once()
	ms.EXPECT().UpsertCategories(mock.Anything, mock.Anything).Return(0, nil).Once()
	ms.EXPECT().UpsertAttributeTypes(mock.Anything, mock.Anything).Return(0, nil).Once()
	ms.EXPECT().RecordSync(mock.Anything, mock.Anything).Return(nil).Once()

	done := make(chan error, 1)
	go func() {
		_, err := sched.RunNow(context.Background())
		done <- err
	}()
	<-started

	_, err := sched.RunNow(context.Background())
	require.ErrorIs(t, err, mirror.ErrSyncInProgress)

	close(release)
	require.NoError(t, <-done)
}

func TestScheduler_ScheduledTick_SkipsWhileRunning(t *testing.T) {
	t.Parallel()

	cat := mocks.NewMockCatalog(t)
	ms := mocks.NewMockStore(t)
	var buf syncBuffer
	log := slog.New(slog.NewTextHandler(&buf, nil))

	sched, err := mirror.NewScheduler(mirror.NewSyncer(cat, ms, quietLogger()), testCreds, time.Hour, 0, log)
	require.NoError(t, err)

	started := make(chan struct{})
	release := make(chan struct{})

	cat.EXPECT().Suppliers(mock.Anything, testCreds).
		Run(func(context.Context, *satsearch.Credentials) {
			close(started)
			<-release
		}).
		Return(nil, nil).Once()
	cat.EXPECT().Categories(mock.Anything, testCreds).Return(nil, nil).Once()
	cat.EXPECT().AttributeTypes(mock.Anything, testCreds).Return(nil, nil).Once()
	ms.EXPECT().UpsertSuppliers(mock.Anything, mock.Anything).Return(0, nil).Once()
	ms.EXPECT().UpsertCategories(mock.Anything, mock.Anything).Return(0, nil).Once()
	ms.EXPECT().UpsertAttributeTypes(mock.Anything, mock.Anything).Return(0, nil).Once()
	ms.EXPECT().RecordSync(mock.Anything, mock.Anything).Return(nil).Once()

	done := make(chan error, 1)
	go func() {
		_, err := sched.RunNow(context.Background())
		done <- err
	}()
	<-started

	sched.RunScheduled()

	close(release)
	require.NoError(t, <-done)

	out := buf.String()
	assert.Contains(t, out, "level=INFO")
	assert.Contains(t, out, "scheduled mirror sync skipped")
	assert.NotContains(t, out, "level=ERROR")
}

// syncBuffer is a bytes.Buffer safe for concurrent log writes.
type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

// recordingNotifier captures sync events.
type recordingNotifier struct {
	events []notify.SyncEvent
	err    error
}

func (r *recordingNotifier) Notify(_ context.Context, event *notify.SyncEvent) error {
	r.events = append(r.events, *event)
	return r.err
}

func TestScheduler_RunNow_NotifiesFailureStreak(t *testing.T) {
	t.Parallel()

	cat := mocks.NewMockCatalog(t)
	ms := mocks.NewMockStore(t)
	rec := &recordingNotifier{err: errors.New("webhook down")}
	syncer := mirror.NewSyncer(cat, ms, quietLogger())
	sched, err := mirror.NewScheduler(syncer, testCreds, time.Hour, 0, quietLogger(), mirror.WithNotifier(rec))
	require.NoError(t, err)

	ms.EXPECT().RecordSync(mock.Anything, mock.Anything).Return(nil).Times(4)

	// Two failures.
	cat.EXPECT().Suppliers(mock.Anything, testCreds).Return(nil, errors.New("boom")).Twice()
	for range 2 {
		_, err := sched.RunNow(context.Background())
		require.Error(t, err)
	}

	// Recovery, then a quiet success.
	cat.EXPECT().Suppliers(mock.Anything, testCreds).Return(nil, nil).Twice()
	cat.EXPECT().Categories(mock.Anything, testCreds).Return(nil, nil).Twice()
	cat.EXPECT().AttributeTypes(mock.Anything, testCreds).Return(nil, nil).Twice()
	ms.EXPECT().UpsertSuppliers(mock.Anything, mock.Anything).Return(3, nil).Twice()
	ms.EXPECT().UpsertCategories(mock.Anything, mock.Anything).Return(4, nil).Twice()
	ms.EXPECT().UpsertAttributeTypes(mock.Anything, mock.Anything).Return(2, nil).Twice()
	for range 2 {
		_, err := sched.RunNow(context.Background())
		require.NoError(t, err)
	}

	require.Len(t, rec.events, 3)
	assert.Equal(t, notify.EventSyncFailed, rec.events[0].Kind)
	assert.Equal(t, 1, rec.events[0].Failures)
	assert.Contains(t, rec.events[0].Error, "fetching suppliers: boom")
	assert.Equal(t, notify.EventSyncFailed, rec.events[1].Kind)
	assert.Equal(t, 2, rec.events[1].Failures)
	assert.Equal(t, notify.EventSyncRecovered, rec.events[2].Kind)
	assert.Equal(t, 2, rec.events[2].Failures)
	assert.Equal(t, 3, rec.events[2].Suppliers)
	assert.Empty(t, rec.events[2].Error)
}
