package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/donaldgifford/satsearch-go/internal/mirror"
)

// SyncTrigger runs a mirror sync on demand. *mirror.Scheduler satisfies it.
type SyncTrigger interface {
	RunNow(ctx context.Context) (*mirror.SyncResult, error)
}

// SyncHandler reports on and triggers mirror syncs.
type SyncHandler struct {
	store   mirror.Store
	trigger SyncTrigger
}

// NewSyncHandler creates a new SyncHandler. trigger may be nil, in which
// case the trigger endpoint is not registered.
func NewSyncHandler(s mirror.Store, trigger SyncTrigger) *SyncHandler {
	return &SyncHandler{store: s, trigger: trigger}
}

// SyncRunOutput is the response body for sync endpoints.
type SyncRunOutput struct {
	Body SyncRun
}

// LastSync returns the most recent recorded sync.
func (h *SyncHandler) LastSync(ctx context.Context, _ *struct{}) (*SyncRunOutput, error) {
	last, err := h.store.LastSync(ctx)
	if errors.Is(err, mirror.ErrNoSyncRuns) {
		return nil, huma.Error404NotFound("no mirror syncs recorded")
	}
	if err != nil {
		return nil, huma.Error500InternalServerError("failed to load last sync: " + err.Error())
	}
	return &SyncRunOutput{Body: toSyncRun(last)}, nil
}

// TriggerSync runs a sync and waits for it to finish.
func (h *SyncHandler) TriggerSync(ctx context.Context, _ *struct{}) (*SyncRunOutput, error) {
	result, err := h.trigger.RunNow(ctx)
	switch {
	case errors.Is(err, mirror.ErrSyncInProgress):
		return nil, huma.Error409Conflict("a mirror sync is already running")
	case err != nil && result != nil:
		return nil, huma.Error502BadGateway("mirror sync failed: " + err.Error())
	case err != nil:
		return nil, huma.Error500InternalServerError("mirror sync failed: " + err.Error())
	}
	return &SyncRunOutput{Body: toSyncRun(result)}, nil
}

// RegisterSyncRoutes registers sync endpoints with the Huma API.
func RegisterSyncRoutes(api huma.API, h *SyncHandler) {
	huma.Register(api, huma.Operation{
		OperationID: "get-last-sync",
		Method:      http.MethodGet,
		Path:        "/api/v1/sync/latest",
		Summary:     "Get the last sync",
		Description: "Returns the most recent mirror sync, successful or not.",
		Tags:        []string{"sync"},
		Errors:      []int{http.StatusNotFound},
	}, h.LastSync)

	if h.trigger == nil {
		return
	}

	huma.Register(api, huma.Operation{
		OperationID: "trigger-sync",
		Method:      http.MethodPost,
		Path:        "/api/v1/sync",
		Summary:     "Trigger a mirror sync",
		Description: "Runs a full mirror sync against the SatSearch API and returns its result.",
		Tags:        []string{"sync"},
		Errors:      []int{http.StatusConflict, http.StatusBadGateway},
	}, h.TriggerSync)
}
