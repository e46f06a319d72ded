package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/google/uuid"

	"github.com/donaldgifford/satsearch-go/internal/mirror"
)

// SuppliersHandler serves mirrored suppliers.
type SuppliersHandler struct {
	store mirror.Store
}

// NewSuppliersHandler creates a new SuppliersHandler.
func NewSuppliersHandler(s mirror.Store) *SuppliersHandler {
	return &SuppliersHandler{store: s}
}

// --- Input/Output types ---

// ListSuppliersInput is the query for listing suppliers.
type ListSuppliersInput struct {
	Name    string `query:"name" doc:"Case-insensitive substring of the supplier name"`
	OrderBy string `query:"order_by" enum:"name,last_modified" doc:"Sort order (default name)"`
	Limit   int    `query:"limit" minimum:"1" maximum:"500" doc:"Page size (default 50)"`
	Offset  int    `query:"offset" minimum:"0" doc:"Number of suppliers to skip"`
}

// SupplierPage is one page of suppliers.
type SupplierPage struct {
	Suppliers []Supplier `json:"suppliers"`
	Total     int        `json:"total" doc:"Suppliers matching the query"`
	Limit     int        `json:"limit"`
	Offset    int        `json:"offset"`
}

// ListSuppliersOutput is the response for listing suppliers.
type ListSuppliersOutput struct {
	Body SupplierPage
}

// GetSupplierInput is the input for getting a single supplier.
type GetSupplierInput struct {
	ID string `path:"id" doc:"Supplier UUID"`
}

// GetSupplierOutput is the response for getting a single supplier.
type GetSupplierOutput struct {
	Body Supplier
}

// --- Handlers ---

// ListSuppliers returns one page of mirrored suppliers.
func (h *SuppliersHandler) ListSuppliers(
	ctx context.Context,
	input *ListSuppliersInput,
) (*ListSuppliersOutput, error) {
	q := &mirror.SupplierQuery{
		Name:    input.Name,
		OrderBy: input.OrderBy,
		Limit:   input.Limit,
		Offset:  input.Offset,
	}

	suppliers, total, err := h.store.ListSuppliers(ctx, q)
	if err != nil {
		return nil, huma.Error500InternalServerError("failed to list suppliers: " + err.Error())
	}

	resp := &ListSuppliersOutput{}
	resp.Body.Suppliers = make([]Supplier, 0, len(suppliers))
	for i := range suppliers {
		resp.Body.Suppliers = append(resp.Body.Suppliers, toSupplier(&suppliers[i]))
	}
	resp.Body.Total = total
	resp.Body.Limit = q.EffectiveLimit()
	resp.Body.Offset = q.EffectiveOffset()
	return resp, nil
}

// GetSupplier returns a single mirrored supplier.
func (h *SuppliersHandler) GetSupplier(
	ctx context.Context,
	input *GetSupplierInput,
) (*GetSupplierOutput, error) {
	id, err := uuid.Parse(input.ID)
	if err != nil {
		return nil, huma.Error400BadRequest("invalid supplier id: " + err.Error())
	}

	s, err := h.store.GetSupplier(ctx, id)
	if errors.Is(err, mirror.ErrNotFound) {
		return nil, huma.Error404NotFound("supplier not found")
	}
	if err != nil {
		return nil, huma.Error500InternalServerError("failed to get supplier: " + err.Error())
	}

	return &GetSupplierOutput{Body: toSupplier(s)}, nil
}

// RegisterSupplierRoutes registers supplier endpoints with the Huma API.
func RegisterSupplierRoutes(api huma.API, h *SuppliersHandler) {
	huma.Register(api, huma.Operation{
		OperationID: "list-suppliers",
		Method:      http.MethodGet,
		Path:        "/api/v1/suppliers",
		Summary:     "List suppliers",
		Description: "Returns one page of mirrored suppliers, optionally filtered by name.",
		Tags:        []string{"catalog"},
	}, h.ListSuppliers)

	huma.Register(api, huma.Operation{
		OperationID: "get-supplier",
		Method:      http.MethodGet,
		Path:        "/api/v1/suppliers/{id}",
		Summary:     "Get a supplier",
		Description: "Returns a single mirrored supplier by UUID.",
		Tags:        []string{"catalog"},
		Errors:      []int{http.StatusBadRequest, http.StatusNotFound},
	}, h.GetSupplier)
}
