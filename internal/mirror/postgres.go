package mirror

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/donaldgifford/satsearch-go/pkg/satsearch"
)

const defaultPoolSize = 4

// PostgresStore implements Store using pgxpool (connection-pooled PostgreSQL).
// Its methods need a live database and are covered by the integration tests.
type PostgresStore struct {
	pool *pgxpool.Pool
}

var _ Store = (*PostgresStore)(nil)

// NewPostgresStore creates a new PostgresStore with connection pooling.
// poolSize <= 0 selects the default.
func NewPostgresStore(ctx context.Context, connString string, poolSize int) (*PostgresStore, error) {
	cfg, err := pgxpool.ParseConfig(connString)
	if err != nil {
		return nil, fmt.Errorf("parsing connection string: %w", err)
	}

	if poolSize <= 0 {
		poolSize = defaultPoolSize
	}
	cfg.MaxConns = int32(poolSize) //nolint:gosec // bounded by config validation

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("creating connection pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("pinging database: %w", err)
	}

	return &PostgresStore{pool: pool}, nil
}

// Close gracefully shuts down the connection pool.
func (s *PostgresStore) Close() {
	s.pool.Close()
}

// Ping verifies the database connection is alive.
func (s *PostgresStore) Ping(ctx context.Context) error {
	return s.pool.Ping(ctx)
}

// Migrate applies pending SQL schema migrations.
func (s *PostgresStore) Migrate(ctx context.Context) error {
	return RunMigrations(ctx, s.pool)
}

// UpsertSuppliers inserts or updates suppliers by uuid in one transaction
// and returns the number written.
func (s *PostgresStore) UpsertSuppliers(ctx context.Context, suppliers []satsearch.Supplier) (int, error) {
	batch := &pgx.Batch{}
	for i := range suppliers {
		sup := &suppliers[i]
		batch.Queue(queryUpsertSupplier, pgx.NamedArgs{
			"uuid":          sup.UUID,
			"name":          sup.Name,
			"supplier_url":  sup.SupplierURL,
			"logo":          sup.Logo,
			"summary":       sup.Summary,
			"last_modified": nullableTime(sup.LastModified),
		})
	}
	return s.sendBatch(ctx, "suppliers", batch)
}

// UpsertCategories inserts or updates categories by uuid in one
// transaction. A nil parent is stored as NULL.
func (s *PostgresStore) UpsertCategories(ctx context.Context, categories []satsearch.Category) (int, error) {
	batch := &pgx.Batch{}
	for i := range categories {
		c := &categories[i]
		var parent *uuid.UUID
		if c.Parent != uuid.Nil {
			parent = &c.Parent
		}
		batch.Queue(queryUpsertCategory, pgx.NamedArgs{
			"uuid":        c.UUID,
			"name":        c.Name,
			"parent_uuid": parent,
		})
	}
	return s.sendBatch(ctx, "categories", batch)
}

// UpsertAttributeTypes inserts or updates attribute types by uuid in one
// transaction.
func (s *PostgresStore) UpsertAttributeTypes(
	ctx context.Context,
	types []satsearch.AttributeType,
) (int, error) {
	batch := &pgx.Batch{}
	for i := range types {
		at := &types[i]
		units := at.AllowedMeasurementUnits
		if units == nil {
			units = []string{}
		}
		batch.Queue(queryUpsertAttributeType, pgx.NamedArgs{
			"uuid":                      at.UUID,
			"name":                      at.Name,
			"value_type":                at.ValueType,
			"description":               at.Description,
			"allowed_measurement_units": units,
		})
	}
	return s.sendBatch(ctx, "attribute types", batch)
}

func (s *PostgresStore) sendBatch(ctx context.Context, kind string, batch *pgx.Batch) (int, error) {
	if batch.Len() == 0 {
		return 0, nil
	}

	err := pgx.BeginFunc(ctx, s.pool, func(tx pgx.Tx) error {
		return tx.SendBatch(ctx, batch).Close()
	})
	if err != nil {
		return 0, fmt.Errorf("upserting %s: %w", kind, err)
	}
	return batch.Len(), nil
}

// ListSuppliers returns one page of suppliers matching q and the total
// number of matches.
func (s *PostgresStore) ListSuppliers(
	ctx context.Context,
	q *SupplierQuery,
) ([]satsearch.Supplier, int, error) {
	if q == nil {
		q = &SupplierQuery{}
	}
	dataSQL, countSQL, args := q.ToSQL()

	var total int
	if err := s.pool.QueryRow(ctx, countSQL, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("counting suppliers: %w", err)
	}

	rows, err := s.pool.Query(ctx, dataSQL, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("querying suppliers: %w", err)
	}
	defer rows.Close()

	suppliers := []satsearch.Supplier{}
	for rows.Next() {
		var sup satsearch.Supplier
		if err := scanSupplier(rows, &sup); err != nil {
			return nil, 0, fmt.Errorf("scanning supplier: %w", err)
		}
		suppliers = append(suppliers, sup)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("iterating suppliers: %w", err)
	}

	return suppliers, total, nil
}

// GetSupplier returns the mirrored supplier with the given id, or
// ErrNotFound.
func (s *PostgresStore) GetSupplier(ctx context.Context, id uuid.UUID) (*satsearch.Supplier, error) {
	sup := &satsearch.Supplier{}
	err := scanSupplier(s.pool.QueryRow(ctx, queryGetSupplier, id), sup)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("supplier %s: %w", id, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("getting supplier: %w", err)
	}
	return sup, nil
}

// ListCategories returns every mirrored category ordered by name.
func (s *PostgresStore) ListCategories(ctx context.Context) ([]satsearch.Category, error) {
	rows, err := s.pool.Query(ctx, queryListCategories)
	if err != nil {
		return nil, fmt.Errorf("querying categories: %w", err)
	}

	categories, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (satsearch.Category, error) {
		var (
			c      satsearch.Category
			parent *uuid.UUID
		)
		if err := row.Scan(&c.UUID, &c.Name, &parent); err != nil {
			return c, err
		}
		if parent != nil {
			c.Parent = *parent
		}
		return c, nil
	})
	if err != nil {
		return nil, fmt.Errorf("scanning categories: %w", err)
	}
	return categories, nil
}

// ListAttributeTypes returns every mirrored attribute type ordered by name.
func (s *PostgresStore) ListAttributeTypes(ctx context.Context) ([]satsearch.AttributeType, error) {
	rows, err := s.pool.Query(ctx, queryListAttributeTypes)
	if err != nil {
		return nil, fmt.Errorf("querying attribute types: %w", err)
	}

	types, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (satsearch.AttributeType, error) {
		var at satsearch.AttributeType
		err := row.Scan(&at.UUID, &at.Name, &at.ValueType, &at.Description, &at.AllowedMeasurementUnits)
		return at, err
	})
	if err != nil {
		return nil, fmt.Errorf("scanning attribute types: %w", err)
	}
	return types, nil
}

// RecordSync stores a sync run. A zero ID is replaced with a new UUID.
func (s *PostgresStore) RecordSync(ctx context.Context, run *SyncResult) error {
	if run.ID == uuid.Nil {
		run.ID = uuid.New()
	}

	_, err := s.pool.Exec(ctx, queryInsertSyncRun, pgx.NamedArgs{
		"id":              run.ID,
		"started_at":      run.StartedAt,
		"finished_at":     run.FinishedAt,
		"status":          run.Status,
		"suppliers":       run.Suppliers,
		"categories":      run.Categories,
		"attribute_types": run.AttributeTypes,
		"error":           run.Error,
	})
	if err != nil {
		return fmt.Errorf("recording sync run: %w", err)
	}
	return nil
}

// LastSync returns the most recently started sync run, or ErrNoSyncRuns.
func (s *PostgresStore) LastSync(ctx context.Context) (*SyncResult, error) {
	run := &SyncResult{}
	err := s.pool.QueryRow(ctx, queryLastSyncRun).Scan(
		&run.ID,
		&run.StartedAt,
		&run.FinishedAt,
		&run.Status,
		&run.Suppliers,
		&run.Categories,
		&run.AttributeTypes,
		&run.Error,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNoSyncRuns
	}
	if err != nil {
		return nil, fmt.Errorf("getting last sync run: %w", err)
	}

	run.Duration = run.FinishedAt.Sub(run.StartedAt)
	return run, nil
}

func scanSupplier(row pgx.Row, sup *satsearch.Supplier) error {
	var modified *time.Time
	err := row.Scan(&sup.UUID, &sup.Name, &sup.SupplierURL, &sup.Logo, &sup.Summary, &modified)
	if err != nil {
		return err
	}
	if modified != nil {
		sup.LastModified = satsearch.Timestamp{Time: *modified}
	}
	return nil
}

func nullableTime(ts satsearch.Timestamp) *time.Time {
	if ts.IsZero() {
		return nil
	}
	t := ts.Time
	return &t
}
