package handlers_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/donaldgifford/satsearch-go/internal/api/handlers"
	"github.com/donaldgifford/satsearch-go/internal/mirror"
	"github.com/donaldgifford/satsearch-go/internal/mirror/mocks"
)

func TestStatusPage(t *testing.T) {
	t.Parallel()

	started := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name       string
		setup      func(ms *mocks.MockStore)
		wantStatus int
		wantBody   []string
		wantErr    bool
	}{
		{
			name: "last sync rendered",
			setup: func(ms *mocks.MockStore) {
				ms.EXPECT().Ping(mock.Anything).Return(nil)
				ms.EXPECT().LastSync(mock.Anything).Return(&mirror.SyncResult{
					ID:         uuid.New(),
					StartedAt:  started,
					FinishedAt: started.Add(2 * time.Second),
					Status:     mirror.StatusSucceeded,
					Suppliers:  3,
				}, nil)
			},
			wantStatus: http.StatusOK,
			wantBody:   []string{"reachable", "succeeded", "<td>2s</td>", "(1m0s ago)", `href="/metrics"`},
		},
		{
			name: "no syncs yet",
			setup: func(ms *mocks.MockStore) {
				ms.EXPECT().Ping(mock.Anything).Return(nil)
				ms.EXPECT().LastSync(mock.Anything).Return(nil, mirror.ErrNoSyncRuns)
			},
			wantStatus: http.StatusOK,
			wantBody:   []string{"No mirror syncs recorded."},
		},
		{
			name: "database down",
			setup: func(ms *mocks.MockStore) {
				ms.EXPECT().Ping(mock.Anything).Return(errors.New("connection refused"))
			},
			wantStatus: http.StatusServiceUnavailable,
			wantBody:   []string{"unreachable"},
		},
		{
			name: "last sync query fails",
			setup: func(ms *mocks.MockStore) {
				ms.EXPECT().Ping(mock.Anything).Return(nil)
				ms.EXPECT().LastSync(mock.Anything).Return(nil, errors.New("boom"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ms := mocks.NewMockStore(t)
			tt.setup(ms)

			h := handlers.NewStatusPageHandler(ms, "v1.0.0", "/metrics")
			h.SetNow(func() time.Time { return started.Add(time.Minute) })

			e := echo.New()
			req := httptest.NewRequest(http.MethodGet, "/status", http.NoBody)
			rec := httptest.NewRecorder()

			err := h.StatusPage(e.NewContext(req, rec))
			if tt.wantErr {
				var he *echo.HTTPError
				require.ErrorAs(t, err, &he)
				assert.Equal(t, http.StatusInternalServerError, he.Code)
				return
			}
			require.NoError(t, err)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, echo.MIMETextHTMLCharsetUTF8, rec.Header().Get(echo.HeaderContentType))
			for _, s := range tt.wantBody {
				assert.Contains(t, rec.Body.String(), s)
			}
		})
	}
}
