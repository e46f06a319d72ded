package handlers

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/donaldgifford/satsearch-go/internal/mirror"
	"github.com/donaldgifford/satsearch-go/pkg/satsearch"
)

// CatalogHandler serves mirrored categories and attribute types.
type CatalogHandler struct {
	store mirror.Store
}

// NewCatalogHandler creates a new CatalogHandler.
func NewCatalogHandler(s mirror.Store) *CatalogHandler {
	return &CatalogHandler{store: s}
}

// ListCategoriesInput selects the flat or nested listing.
type ListCategoriesInput struct {
	Tree bool `query:"tree" doc:"Nest categories under their parents"`
}

// ListCategoriesOutput is the response for listing categories.
type ListCategoriesOutput struct {
	Body []Category
}

// ListAttributeTypesOutput is the response for listing attribute types.
type ListAttributeTypesOutput struct {
	Body []AttributeType
}

// ListCategories returns every mirrored category. With tree set, only
// roots are returned and descendants are nested under children.
func (h *CatalogHandler) ListCategories(
	ctx context.Context,
	input *ListCategoriesInput,
) (*ListCategoriesOutput, error) {
	categories, err := h.store.ListCategories(ctx)
	if err != nil {
		return nil, huma.Error500InternalServerError("failed to list categories: " + err.Error())
	}

	body := []Category{}
	if input.Tree {
		for _, root := range satsearch.BuildCategoryTree(categories) {
			body = append(body, toCategory(root))
		}
	} else {
		for i := range categories {
			c := categories[i]
			c.Children = nil
			body = append(body, toCategory(&c))
		}
	}

	return &ListCategoriesOutput{Body: body}, nil
}

// ListAttributeTypes returns every mirrored attribute type.
func (h *CatalogHandler) ListAttributeTypes(
	ctx context.Context,
	_ *struct{},
) (*ListAttributeTypesOutput, error) {
	types, err := h.store.ListAttributeTypes(ctx)
	if err != nil {
		return nil, huma.Error500InternalServerError("failed to list attribute types: " + err.Error())
	}

	body := make([]AttributeType, 0, len(types))
	for i := range types {
		body = append(body, toAttributeType(&types[i]))
	}
	return &ListAttributeTypesOutput{Body: body}, nil
}

// RegisterCatalogRoutes registers category and attribute type endpoints.
func RegisterCatalogRoutes(api huma.API, h *CatalogHandler) {
	huma.Register(api, huma.Operation{
		OperationID: "list-categories",
		Method:      http.MethodGet,
		Path:        "/api/v1/categories",
		Summary:     "List categories",
		Description: "Returns mirrored product categories, flat or as a tree.",
		Tags:        []string{"catalog"},
	}, h.ListCategories)

	huma.Register(api, huma.Operation{
		OperationID: "list-attribute-types",
		Method:      http.MethodGet,
		Path:        "/api/v1/attribute-types",
		Summary:     "List attribute types",
		Description: "Returns mirrored product attribute types.",
		Tags:        []string{"catalog"},
	}, h.ListAttributeTypes)
}
