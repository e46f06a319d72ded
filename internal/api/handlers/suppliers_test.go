package handlers_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/donaldgifford/satsearch-go/internal/api/handlers"
	"github.com/donaldgifford/satsearch-go/internal/mirror"
	"github.com/donaldgifford/satsearch-go/internal/mirror/mocks"
	"github.com/donaldgifford/satsearch-go/pkg/satsearch"
)

var acmeID = uuid.MustParse("6d706383-2b27-5942-9c55-385f4e425ff6")

func acmeSupplier() satsearch.Supplier {
	return satsearch.Supplier{
		Thing:        satsearch.Thing{UUID: acmeID, Name: "Acme Space Systems"},
		SupplierURL:  "https://acme.example",
		LastModified: satsearch.Timestamp{Time: time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)},
	}
}

func TestListSuppliers(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		path      string
		wantQuery mirror.SupplierQuery
		wantLimit int
	}{
		{
			name:      "defaults",
			path:      "/api/v1/suppliers",
			wantQuery: mirror.SupplierQuery{},
			wantLimit: 50,
		},
		{
			name:      "filters and paging",
			path:      "/api/v1/suppliers?name=acme&order_by=last_modified&limit=10&offset=20",
			wantQuery: mirror.SupplierQuery{Name: "acme", OrderBy: "last_modified", Limit: 10, Offset: 20},
			wantLimit: 10,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ms := mocks.NewMockStore(t)
			ms.EXPECT().ListSuppliers(mock.Anything, mock.MatchedBy(func(q *mirror.SupplierQuery) bool {
				return *q == tt.wantQuery
			})).Return([]satsearch.Supplier{acmeSupplier()}, 21, nil)

			_, api := humatest.New(t)
			handlers.RegisterSupplierRoutes(api, handlers.NewSuppliersHandler(ms))

			resp := api.Get(tt.path)
			require.Equal(t, http.StatusOK, resp.Code, resp.Body.String())

			var body handlers.SupplierPage
			require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &body))
			assert.Equal(t, 21, body.Total)
			assert.Equal(t, tt.wantLimit, body.Limit)
			assert.Equal(t, tt.wantQuery.Offset, body.Offset)
			require.Len(t, body.Suppliers, 1)
			assert.Equal(t, acmeID.String(), body.Suppliers[0].UUID)
			require.NotNil(t, body.Suppliers[0].LastModified)
		})
	}
}

func TestListSuppliers_Empty(t *testing.T) {
	t.Parallel()

	ms := mocks.NewMockStore(t)
	ms.EXPECT().ListSuppliers(mock.Anything, mock.Anything).Return(nil, 0, nil)

	_, api := humatest.New(t)
	handlers.RegisterSupplierRoutes(api, handlers.NewSuppliersHandler(ms))

	resp := api.Get("/api/v1/suppliers")
	require.Equal(t, http.StatusOK, resp.Code)
	assert.Contains(t, resp.Body.String(), `"suppliers":[]`)
}

func TestListSuppliers_InvalidOrderBy(t *testing.T) {
	t.Parallel()

	ms := mocks.NewMockStore(t)
	_, api := humatest.New(t)
	handlers.RegisterSupplierRoutes(api, handlers.NewSuppliersHandler(ms))

	resp := api.Get("/api/v1/suppliers?order_by=uuid")
	assert.Equal(t, http.StatusUnprocessableEntity, resp.Code)
}

func TestListSuppliers_StoreError(t *testing.T) {
	t.Parallel()

	ms := mocks.NewMockStore(t)
	ms.EXPECT().ListSuppliers(mock.Anything, mock.Anything).Return(nil, 0, assert.AnError)

	_, api := humatest.New(t)
	handlers.RegisterSupplierRoutes(api, handlers.NewSuppliersHandler(ms))

	resp := api.Get("/api/v1/suppliers")
	assert.Equal(t, http.StatusInternalServerError, resp.Code)
}

func TestGetSupplier(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		id         string
		setup      func(ms *mocks.MockStore)
		wantStatus int
	}{
		{
			name: "found",
			id:   acmeID.String(),
			setup: func(ms *mocks.MockStore) {
				s := acmeSupplier()
				ms.EXPECT().GetSupplier(mock.Anything, acmeID).Return(&s, nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name: "not found",
			id:   acmeID.String(),
			setup: func(ms *mocks.MockStore) {
				ms.EXPECT().GetSupplier(mock.Anything, acmeID).
					Return(nil, fmt.Errorf("supplier %s: %w", acmeID, mirror.ErrNotFound))
			},
			wantStatus: http.StatusNotFound,
		},
		{
			name: "store error",
			id:   acmeID.String(),
			setup: func(ms *mocks.MockStore) {
				ms.EXPECT().GetSupplier(mock.Anything, acmeID).Return(nil, assert.AnError)
			},
			wantStatus: http.StatusInternalServerError,
		},
		{
			name:       "invalid id",
			id:         "not-a-uuid",
			setup:      func(*mocks.MockStore) {},
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ms := mocks.NewMockStore(t)
			tt.setup(ms)

			_, api := humatest.New(t)
			handlers.RegisterSupplierRoutes(api, handlers.NewSuppliersHandler(ms))

			resp := api.Get("/api/v1/suppliers/" + tt.id)
			require.Equal(t, tt.wantStatus, resp.Code, resp.Body.String())
			if tt.wantStatus == http.StatusOK {
				assert.Contains(t, resp.Body.String(), "Acme Space Systems")
			}
		})
	}
}
