//go:build integration

package mirror_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/donaldgifford/satsearch-go/internal/mirror"
	"github.com/donaldgifford/satsearch-go/pkg/satsearch"
)

func setupPostgres(t *testing.T) *mirror.PostgresStore {
	t.Helper()
	ctx := context.Background()

	pgContainer, err := postgres.Run(ctx,
		"postgres:16-alpine",
		postgres.WithDatabase("satsearch_test"),
		postgres.WithUsername("test"),
		postgres.WithPassword("test"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	require.NoError(t, err)

	t.Cleanup(func() {
		require.NoError(t, pgContainer.Terminate(ctx))
	})

	connStr, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	s, err := mirror.NewPostgresStore(ctx, connStr, 2)
	require.NoError(t, err)

	t.Cleanup(func() {
		s.Close()
	})

	require.NoError(t, s.Migrate(ctx))

	return s
}

func TestPostgresStore_Ping(t *testing.T) {
	s := setupPostgres(t)
	require.NoError(t, s.Ping(context.Background()))
}

func TestPostgresStore_MigrateIsIdempotent(t *testing.T) {
	s := setupPostgres(t)
	require.NoError(t, s.Migrate(context.Background()))
}

func TestPostgresStore_UpsertSuppliers(t *testing.T) {
	s := setupPostgres(t)
	ctx := context.Background()

	id := uuid.New()
	modified := satsearch.Timestamp{Time: time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)}
	suppliers := []satsearch.Supplier{
		{Thing: satsearch.Thing{UUID: id, Name: "Acme Space"}, LastModified: modified},
		{Thing: satsearch.Thing{UUID: uuid.New(), Name: "Orbital Parts"}},
	}

	n, err := s.UpsertSuppliers(ctx, suppliers)
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	t.Run("update existing", func(t *testing.T) {
		suppliers[0].Name = "Acme Space Systems"
		n, err := s.UpsertSuppliers(ctx, suppliers[:1])
		require.NoError(t, err)
		assert.Equal(t, 1, n)
	})

	t.Run("empty batch", func(t *testing.T) {
		n, err := s.UpsertSuppliers(ctx, nil)
		require.NoError(t, err)
		assert.Zero(t, n)
	})
}

func TestPostgresStore_UpsertCategories(t *testing.T) {
	s := setupPostgres(t)
	ctx := context.Background()

	root := uuid.New()
	n, err := s.UpsertCategories(ctx, []satsearch.Category{
		{Thing: satsearch.Thing{UUID: root, Name: "Attitude control"}},
		{Thing: satsearch.Thing{UUID: uuid.New(), Name: "Reaction wheels"}, Parent: root},
		{Thing: satsearch.Thing{UUID: uuid.New(), Name: "Orphan"}, Parent: uuid.New()},
	})
	require.NoError(t, err)
	assert.Equal(t, 3, n)
}

func TestPostgresStore_UpsertAttributeTypes(t *testing.T) {
	s := setupPostgres(t)
	ctx := context.Background()

	n, err := s.UpsertAttributeTypes(ctx, []satsearch.AttributeType{
		{
			Thing:                   satsearch.Thing{UUID: uuid.New(), Name: "Mass"},
			ValueType:               "float",
			AllowedMeasurementUnits: []string{"kg", "g"},
		},
		{Thing: satsearch.Thing{UUID: uuid.New(), Name: "Heritage"}},
	})
	require.NoError(t, err)
	assert.Equal(t, 2, n)
}

func TestPostgresStore_SyncRuns(t *testing.T) {
	s := setupPostgres(t)
	ctx := context.Background()

	_, err := s.LastSync(ctx)
	require.ErrorIs(t, err, mirror.ErrNoSyncRuns)

	start := time.Now().UTC().Truncate(time.Microsecond)
	first := &mirror.SyncResult{
		StartedAt:  start,
		FinishedAt: start.Add(time.Second),
		Status:     mirror.StatusFailed,
		Error:      "fetching suppliers: boom",
	}
	require.NoError(t, s.RecordSync(ctx, first))
	assert.NotEqual(t, uuid.Nil, first.ID)

	second := &mirror.SyncResult{
		ID:             uuid.New(),
		StartedAt:      start.Add(time.Minute),
		FinishedAt:     start.Add(time.Minute + 3*time.Second),
		Status:         mirror.StatusSucceeded,
		Suppliers:      12,
		Categories:     40,
		AttributeTypes: 7,
	}
	require.NoError(t, s.RecordSync(ctx, second))

	last, err := s.LastSync(ctx)
	require.NoError(t, err)
	assert.Equal(t, second.ID, last.ID)
	assert.Equal(t, mirror.StatusSucceeded, last.Status)
	assert.Equal(t, 12, last.Suppliers)
	assert.Equal(t, 40, last.Categories)
	assert.Equal(t, 7, last.AttributeTypes)
	assert.Equal(t, 3*time.Second, last.Duration)
	assert.True(t, second.StartedAt.Equal(last.StartedAt))
}

func TestPostgresStore_ReadSuppliers(t *testing.T) {
	s := setupPostgres(t)
	ctx := context.Background()

	acme := uuid.New()
	older := satsearch.Timestamp{Time: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)}
	newer := satsearch.Timestamp{Time: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)}
	_, err := s.UpsertSuppliers(ctx, []satsearch.Supplier{
		{Thing: satsearch.Thing{UUID: acme, Name: "Acme Space"}, SupplierURL: "https://acme.example", LastModified: older},
		{Thing: satsearch.Thing{UUID: uuid.New(), Name: "Orbital Parts"}, LastModified: newer},
		{Thing: satsearch.Thing{UUID: uuid.New(), Name: "100%_Propulsion"}},
	})
	require.NoError(t, err)

	tests := []struct {
		name      string
		query     mirror.SupplierQuery
		wantTotal int
		wantNames []string
	}{
		{
			name:      "all by name",
			query:     mirror.SupplierQuery{},
			wantTotal: 3,
			wantNames: []string{"100%_Propulsion", "Acme Space", "Orbital Parts"},
		},
		{
			name:      "name filter ignores case",
			query:     mirror.SupplierQuery{Name: "ACME"},
			wantTotal: 1,
			wantNames: []string{"Acme Space"},
		},
		{
			name:      "wildcards match literally",
			query:     mirror.SupplierQuery{Name: "0%_p"},
			wantTotal: 1,
			wantNames: []string{"100%_Propulsion"},
		},
		{
			name:      "newest first",
			query:     mirror.SupplierQuery{OrderBy: "last_modified"},
			wantTotal: 3,
			wantNames: []string{"Orbital Parts", "Acme Space", "100%_Propulsion"},
		},
		{
			name:      "paged",
			query:     mirror.SupplierQuery{Limit: 1, Offset: 1},
			wantTotal: 3,
			wantNames: []string{"Acme Space"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			suppliers, total, err := s.ListSuppliers(ctx, &tt.query)
			require.NoError(t, err)
			assert.Equal(t, tt.wantTotal, total)

			names := make([]string, 0, len(suppliers))
			for i := range suppliers {
				names = append(names, suppliers[i].Name)
			}
			assert.Equal(t, tt.wantNames, names)
		})
	}

	t.Run("get", func(t *testing.T) {
		got, err := s.GetSupplier(ctx, acme)
		require.NoError(t, err)
		assert.Equal(t, "Acme Space", got.Name)
		assert.Equal(t, "https://acme.example", got.SupplierURL)
		assert.True(t, older.Equal(got.LastModified.Time))
	})

	t.Run("get missing", func(t *testing.T) {
		_, err := s.GetSupplier(ctx, uuid.New())
		require.ErrorIs(t, err, mirror.ErrNotFound)
	})
}

func TestPostgresStore_ReadCatalog(t *testing.T) {
	s := setupPostgres(t)
	ctx := context.Background()

	root := uuid.New()
	_, err := s.UpsertCategories(ctx, []satsearch.Category{
		{Thing: satsearch.Thing{UUID: root, Name: "Attitude control"}},
		{Thing: satsearch.Thing{UUID: uuid.New(), Name: "Reaction wheels"}, Parent: root},
	})
	require.NoError(t, err)

	_, err = s.UpsertAttributeTypes(ctx, []satsearch.AttributeType{{
		Thing:                   satsearch.Thing{UUID: uuid.New(), Name: "Mass"},
		ValueType:               "float",
		AllowedMeasurementUnits: []string{"kg", "g"},
	}})
	require.NoError(t, err)

	categories, err := s.ListCategories(ctx)
	require.NoError(t, err)
	require.Len(t, categories, 2)

	roots := satsearch.BuildCategoryTree(categories)
	require.Len(t, roots, 1)
	assert.Equal(t, root, roots[0].UUID)
	require.Len(t, roots[0].Children, 1)
	assert.Equal(t, "Reaction wheels", roots[0].Children[0].Name)

	types, err := s.ListAttributeTypes(ctx)
	require.NoError(t, err)
	require.Len(t, types, 1)
	assert.Equal(t, "float", types[0].ValueType)
	assert.Equal(t, []string{"kg", "g"}, types[0].AllowedMeasurementUnits)
}
