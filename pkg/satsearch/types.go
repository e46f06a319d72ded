// Package satsearch is a client for the SatSearch product-search API. It
// caches one configured HTTP client per set of Credentials and one entity per
// identifier, and decodes responses into the types in this file.
package satsearch

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Entity is implemented by every identified SatSearch record.
type Entity interface {
	ID() uuid.UUID
}

// Thing holds the fields shared by all SatSearch entities.
type Thing struct {
	UUID uuid.UUID `json:"uuid"`
	Name string    `json:"name"`
}

// ID returns the entity identifier.
func (t Thing) ID() uuid.UUID { return t.UUID }

// Supplier is a company offering products on SatSearch.
type Supplier struct {
	Thing
	SupplierURL  string    `json:"supplier_url"`
	Logo         string    `json:"logo"`
	Summary      string    `json:"summary"`
	LastModified Timestamp `json:"last_modified"`
}

// Product is a single catalog entry.
type Product struct {
	Thing
	Supplier       string      `json:"supplier_name"`
	SupplierURL    string      `json:"supplier_url"`
	ProductURL     string      `json:"product_url"`
	Images         []string    `json:"images"`
	SubComponents  []string    `json:"subcomponents"`
	Configurations []string    `json:"configurations"`
	Summary        string      `json:"summary"`
	Category       *Category   `json:"category"`
	LastModified   Timestamp   `json:"last_modified"`
	Attributes     []Attribute `json:"attributes"`
}

// Category groups products. Parent is uuid.Nil for top-level categories.
// Children is not part of the wire format; BuildCategoryTree fills it.
type Category struct {
	Thing
	Parent   uuid.UUID   `json:"parent_uuid"`
	Children []*Category `json:"-"`
}

// UnmarshalJSON implements json.Unmarshaler. A null or empty parent_uuid
// decodes to uuid.Nil.
func (c *Category) UnmarshalJSON(data []byte) error {
	type plain Category
	aux := struct {
		*plain
		Parent optionalUUID `json:"parent_uuid"`
	}{plain: (*plain)(c)}

	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	c.Parent = uuid.UUID(aux.Parent)
	return nil
}

// AttributeType describes a measurable product property.
type AttributeType struct {
	Thing
	ValueType               string   `json:"value_type"`
	Description             string   `json:"description"`
	AllowedMeasurementUnits []string `json:"allowed_measurement_units"`
}

// Attribute is a product's value for one AttributeType.
type Attribute struct {
	AttributeType        AttributeType `json:"class"`
	ProductConfiguration string        `json:"product_configuration"`
	ProductSubcomponent  string        `json:"product_subcomponent"`
	Value                string        `json:"value"`
	MinimumValue         string        `json:"minimum_value"`
	MaximumValue         string        `json:"maximum_value"`
	MeasurementUnit      string        `json:"measurement_unit"`
	Description          string        `json:"description"`
}

// Pagination is the paging envelope shared by list endpoints. The service
// sends perPage and lastPage; per_page and last_page are accepted as well.
type Pagination struct {
	Total    int `json:"total"`
	PerPage  int `json:"perPage"`
	Page     int `json:"page"`
	LastPage int `json:"lastPage"`
}

type wirePagination struct {
	Total         int  `json:"total"`
	Page          int  `json:"page"`
	PerPage       *int `json:"perPage"`
	PerPageSnake  *int `json:"per_page"`
	LastPage      *int `json:"lastPage"`
	LastPageSnake *int `json:"last_page"`
}

// UnmarshalJSON implements json.Unmarshaler. When both spellings of a key
// are present the camelCase one wins.
func (p *Pagination) UnmarshalJSON(data []byte) error {
	var w wirePagination
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	*p = Pagination{
		Total:    w.Total,
		Page:     w.Page,
		PerPage:  firstInt(w.PerPage, w.PerPageSnake),
		LastPage: firstInt(w.LastPage, w.LastPageSnake),
	}
	return nil
}

func firstInt(vals ...*int) int {
	for _, v := range vals {
		if v != nil {
			return *v
		}
	}
	return 0
}

// SupplierResult is one page of suppliers.
type SupplierResult struct {
	Pagination
	Data []Supplier `json:"data"`
}

// UnmarshalJSON implements json.Unmarshaler. It is required because the
// promoted Pagination.UnmarshalJSON would otherwise swallow Data.
func (r *SupplierResult) UnmarshalJSON(data []byte) error {
	var body struct {
		Data []Supplier `json:"data"`
	}
	if err := json.Unmarshal(data, &body); err != nil {
		return err
	}
	if err := r.Pagination.UnmarshalJSON(data); err != nil {
		return err
	}
	r.Data = body.Data
	return nil
}

// ProductResult is one page of product search results.
type ProductResult struct {
	Pagination
	Data []Product `json:"data"`

	// SearchParameter is the query that produced this page. Set by
	// Service.Search, never decoded from the response.
	SearchParameter *SearchParameter `json:"-"`
}

// UnmarshalJSON implements json.Unmarshaler, see SupplierResult.
func (r *ProductResult) UnmarshalJSON(data []byte) error {
	var body struct {
		Data []Product `json:"data"`
	}
	if err := json.Unmarshal(data, &body); err != nil {
		return err
	}
	if err := r.Pagination.UnmarshalJSON(data); err != nil {
		return err
	}
	r.Data = body.Data
	return nil
}

// optionalUUID decodes null and "" as uuid.Nil.
type optionalUUID uuid.UUID

func (o *optionalUUID) UnmarshalJSON(data []byte) error {
	var s *string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("uuid must be a string: %w", err)
	}
	if s == nil || *s == "" {
		*o = optionalUUID(uuid.Nil)
		return nil
	}
	id, err := uuid.Parse(*s)
	if err != nil {
		return fmt.Errorf("parsing uuid %q: %w", *s, err)
	}
	*o = optionalUUID(id)
	return nil
}

// timestampLayouts are tried in order when decoding a Timestamp.
var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// Timestamp is a time.Time that decodes the date formats the SatSearch API
// emits. Empty strings and null decode to the zero time.
type Timestamp struct {
	time.Time
}

// UnmarshalJSON implements json.Unmarshaler.
func (t *Timestamp) UnmarshalJSON(data []byte) error {
	if bytes.Equal(data, []byte("null")) {
		t.Time = time.Time{}
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("timestamp must be a string: %w", err)
	}
	if s == "" {
		t.Time = time.Time{}
		return nil
	}

	for _, layout := range timestampLayouts {
		if parsed, err := time.Parse(layout, s); err == nil {
			t.Time = parsed
			return nil
		}
	}
	return fmt.Errorf("unrecognized timestamp %q", s)
}

// MarshalJSON implements json.Marshaler. The zero time encodes as null.
func (t Timestamp) MarshalJSON() ([]byte, error) {
	if t.IsZero() {
		return []byte("null"), nil
	}
	return json.Marshal(t.Format(time.RFC3339))
}
