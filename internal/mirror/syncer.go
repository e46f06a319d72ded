package mirror

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/donaldgifford/satsearch-go/internal/metrics"
	"github.com/donaldgifford/satsearch-go/pkg/satsearch"
)

// Syncer copies the SatSearch catalog into a Store.
type Syncer struct {
	catalog Catalog
	store   Store
	log     *slog.Logger
	now     func() time.Time
}

// SyncerOption configures a Syncer.
type SyncerOption func(*Syncer)

// WithClock overrides time.Now, for tests.
func WithClock(now func() time.Time) SyncerOption {
	return func(s *Syncer) {
		s.now = now
	}
}

// NewSyncer creates a Syncer reading from catalog and writing to store.
func NewSyncer(catalog Catalog, store Store, log *slog.Logger, opts ...SyncerOption) *Syncer {
	s := &Syncer{
		catalog: catalog,
		store:   store,
		log:     log,
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Sync fetches all suppliers, categories and attribute types with creds
// and upserts them. The first failure aborts the run. Every run, failed
// or not, is recorded in the store and returned.
func (s *Syncer) Sync(ctx context.Context, creds *satsearch.Credentials) (*SyncResult, error) {
	result := &SyncResult{
		ID:        uuid.New(),
		StartedAt: s.now(),
	}

	s.log.InfoContext(ctx, "mirror sync starting", "sync_id", result.ID)

	err := s.sync(ctx, creds, result)

	result.FinishedAt = s.now()
	result.Duration = result.FinishedAt.Sub(result.StartedAt)
	result.Status = StatusSucceeded
	if err != nil {
		result.Status = StatusFailed
		result.Error = err.Error()
	}

	metrics.MirrorSyncsTotal.WithLabelValues(result.Status).Inc()
	metrics.MirrorSyncDuration.Observe(result.Duration.Seconds())

	// The run is recorded even when ctx was canceled mid-sync.
	if recErr := s.store.RecordSync(context.WithoutCancel(ctx), result); recErr != nil {
		s.log.ErrorContext(ctx, "recording mirror sync failed", "sync_id", result.ID, "error", recErr)
		if err == nil {
			err = recErr
		}
	}

	if err != nil {
		s.log.ErrorContext(ctx, "mirror sync failed",
			"sync_id", result.ID,
			"duration", result.Duration,
			"error", err,
		)
		return result, err
	}

	metrics.MirrorLastSuccessTimestamp.Set(float64(result.FinishedAt.Unix()))
	s.log.InfoContext(ctx, "mirror sync complete",
		"sync_id", result.ID,
		"suppliers", result.Suppliers,
		"categories", result.Categories,
		"attribute_types", result.AttributeTypes,
		"duration", result.Duration,
	)
	return result, nil
}

func (s *Syncer) sync(ctx context.Context, creds *satsearch.Credentials, result *SyncResult) error {
	suppliers, err := s.catalog.Suppliers(ctx, creds)
	if err != nil {
		return fmt.Errorf("fetching suppliers: %w", err)
	}
	if result.Suppliers, err = s.store.UpsertSuppliers(ctx, suppliers); err != nil {
		return err
	}
	metrics.MirrorRecordsUpserted.WithLabelValues("supplier").Add(float64(result.Suppliers))

	categories, err := s.catalog.Categories(ctx, creds)
	if err != nil {
		return fmt.Errorf("fetching categories: %w", err)
	}
	if result.Categories, err = s.store.UpsertCategories(ctx, categories); err != nil {
		return err
	}
	metrics.MirrorRecordsUpserted.WithLabelValues("category").Add(float64(result.Categories))

	types, err := s.catalog.AttributeTypes(ctx, creds)
	if err != nil {
		return fmt.Errorf("fetching attribute types: %w", err)
	}
	if result.AttributeTypes, err = s.store.UpsertAttributeTypes(ctx, types); err != nil {
		return err
	}
	metrics.MirrorRecordsUpserted.WithLabelValues("attribute_type").Add(float64(result.AttributeTypes))

	return nil
}
