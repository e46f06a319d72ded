// Package mirror keeps a local PostgreSQL copy of the SatSearch catalog
// reference data (suppliers, categories and attribute types). A Syncer
// pulls the catalog through the SatSearch service and upserts it into a
// Store; a Scheduler repeats that on a fixed interval.
package mirror

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/donaldgifford/satsearch-go/pkg/satsearch"
)

// ErrNoSyncRuns is returned by Store.LastSync before the first recorded run.
var ErrNoSyncRuns = errors.New("no sync runs recorded")

// ErrSyncInProgress is returned when a sync is requested while one runs.
var ErrSyncInProgress = errors.New("a mirror sync is already running")

// ErrNotFound is returned when a requested record is not in the mirror.
var ErrNotFound = errors.New("not found in mirror")

// Sync run statuses.
const (
	StatusSucceeded = "succeeded"
	StatusFailed    = "failed"
)

// SyncResult describes one sync run.
type SyncResult struct {
	ID             uuid.UUID     `json:"id"`
	StartedAt      time.Time     `json:"started_at"`
	FinishedAt     time.Time     `json:"finished_at"`
	Status         string        `json:"status"`
	Suppliers      int           `json:"suppliers"`
	Categories     int           `json:"categories"`
	AttributeTypes int           `json:"attribute_types"`
	Error          string        `json:"error,omitempty"`
	Duration       time.Duration `json:"-"`
}

// Store defines the data access operations of the catalog mirror.
type Store interface {
	// Catalog
	UpsertSuppliers(ctx context.Context, suppliers []satsearch.Supplier) (int, error)
	UpsertCategories(ctx context.Context, categories []satsearch.Category) (int, error)
	UpsertAttributeTypes(ctx context.Context, types []satsearch.AttributeType) (int, error)
	ListSuppliers(ctx context.Context, q *SupplierQuery) ([]satsearch.Supplier, int, error)
	GetSupplier(ctx context.Context, id uuid.UUID) (*satsearch.Supplier, error)
	ListCategories(ctx context.Context) ([]satsearch.Category, error)
	ListAttributeTypes(ctx context.Context) ([]satsearch.AttributeType, error)

	// Sync runs
	RecordSync(ctx context.Context, run *SyncResult) error
	LastSync(ctx context.Context) (*SyncResult, error)

	// Lifecycle
	Ping(ctx context.Context) error
	Migrate(ctx context.Context) error
	Close()
}

// Catalog is the part of satsearch.SearchService the mirror reads from.
// *satsearch.Service satisfies it.
type Catalog interface {
	Suppliers(ctx context.Context, creds *satsearch.Credentials) ([]satsearch.Supplier, error)
	Categories(ctx context.Context, creds *satsearch.Credentials) ([]satsearch.Category, error)
	AttributeTypes(ctx context.Context, creds *satsearch.Credentials) ([]satsearch.AttributeType, error)
}

var _ Catalog = (*satsearch.Service)(nil)
