package client

import (
	"context"
	"net/url"
	"strconv"

	"github.com/donaldgifford/satsearch-go/internal/api/handlers"
)

// SupplierQuery filters ListSuppliers. Zero fields use the server defaults.
type SupplierQuery struct {
	Name    string
	OrderBy string
	Limit   int
	Offset  int
}

func (q SupplierQuery) encode() string {
	v := url.Values{}
	if q.Name != "" {
		v.Set("name", q.Name)
	}
	if q.OrderBy != "" {
		v.Set("order_by", q.OrderBy)
	}
	if q.Limit > 0 {
		v.Set("limit", strconv.Itoa(q.Limit))
	}
	if q.Offset > 0 {
		v.Set("offset", strconv.Itoa(q.Offset))
	}
	if len(v) == 0 {
		return ""
	}
	return "?" + v.Encode()
}

// ListSuppliers returns one page of mirrored suppliers.
func (c *Client) ListSuppliers(ctx context.Context, q SupplierQuery) (*handlers.SupplierPage, error) {
	var page handlers.SupplierPage
	if err := c.get(ctx, "/api/v1/suppliers"+q.encode(), &page); err != nil {
		return nil, err
	}
	return &page, nil
}

// GetSupplier returns a single mirrored supplier by UUID.
func (c *Client) GetSupplier(ctx context.Context, id string) (*handlers.Supplier, error) {
	var s handlers.Supplier
	if err := c.get(ctx, "/api/v1/suppliers/"+url.PathEscape(id), &s); err != nil {
		return nil, err
	}
	return &s, nil
}

// ListCategories returns mirrored categories, nested when tree is set.
func (c *Client) ListCategories(ctx context.Context, tree bool) ([]handlers.Category, error) {
	path := "/api/v1/categories"
	if tree {
		path += "?tree=true"
	}
	var categories []handlers.Category
	if err := c.get(ctx, path, &categories); err != nil {
		return nil, err
	}
	return categories, nil
}

// ListAttributeTypes returns mirrored attribute types.
func (c *Client) ListAttributeTypes(ctx context.Context) ([]handlers.AttributeType, error) {
	var types []handlers.AttributeType
	if err := c.get(ctx, "/api/v1/attribute-types", &types); err != nil {
		return nil, err
	}
	return types, nil
}

// LastSync returns the most recent mirror sync. It fails with an error
// satisfying IsNotFound before the first sync.
func (c *Client) LastSync(ctx context.Context) (*handlers.SyncRun, error) {
	var run handlers.SyncRun
	if err := c.get(ctx, "/api/v1/sync/latest", &run); err != nil {
		return nil, err
	}
	return &run, nil
}

// TriggerSync runs a mirror sync on the server and waits for its result.
func (c *Client) TriggerSync(ctx context.Context) (*handlers.SyncRun, error) {
	var run handlers.SyncRun
	if err := c.post(ctx, "/api/v1/sync", nil, &run); err != nil {
		return nil, err
	}
	return &run, nil
}
