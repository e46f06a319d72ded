// Package handlers implements the HTTP handlers of the catalog mirror API.
// Read endpoints serve the PostgreSQL mirror; the sync endpoints report on
// and trigger mirror syncs.
package handlers

import (
	"time"

	"github.com/google/uuid"

	"github.com/donaldgifford/satsearch-go/internal/mirror"
	"github.com/donaldgifford/satsearch-go/pkg/satsearch"
)

// StatusResponse is a generic status response body.
type StatusResponse struct {
	Status string `json:"status" example:"ok"`
}

// Supplier is a mirrored supplier.
type Supplier struct {
	UUID         string     `json:"uuid" format:"uuid" doc:"Supplier UUID"`
	Name         string     `json:"name" example:"Acme Space Systems"`
	SupplierURL  string     `json:"supplier_url,omitempty"`
	Logo         string     `json:"logo,omitempty"`
	Summary      string     `json:"summary,omitempty"`
	LastModified *time.Time `json:"last_modified,omitempty" doc:"When SatSearch last modified the supplier"`
}

// Category is a mirrored product category. Children is only populated for
// tree listings.
type Category struct {
	UUID       string     `json:"uuid" format:"uuid"`
	Name       string     `json:"name" example:"Reaction wheels"`
	ParentUUID string     `json:"parent_uuid,omitempty" doc:"Parent category UUID; empty for roots"`
	Children   []Category `json:"children,omitempty"`
}

// AttributeType is a mirrored attribute type.
type AttributeType struct {
	UUID                    string   `json:"uuid" format:"uuid"`
	Name                    string   `json:"name" example:"Mass"`
	ValueType               string   `json:"value_type,omitempty"`
	Description             string   `json:"description,omitempty"`
	AllowedMeasurementUnits []string `json:"allowed_measurement_units,omitempty"`
}

// SyncRun describes one mirror sync.
type SyncRun struct {
	ID             string    `json:"id" format:"uuid"`
	StartedAt      time.Time `json:"started_at"`
	FinishedAt     time.Time `json:"finished_at"`
	Status         string    `json:"status" enum:"succeeded,failed"`
	Suppliers      int       `json:"suppliers" doc:"Suppliers written"`
	Categories     int       `json:"categories" doc:"Categories written"`
	AttributeTypes int       `json:"attribute_types" doc:"Attribute types written"`
	DurationMS     int64     `json:"duration_ms"`
	Error          string    `json:"error,omitempty"`
}

func toSupplier(s *satsearch.Supplier) Supplier {
	out := Supplier{
		UUID:        s.UUID.String(),
		Name:        s.Name,
		SupplierURL: s.SupplierURL,
		Logo:        s.Logo,
		Summary:     s.Summary,
	}
	if !s.LastModified.IsZero() {
		t := s.LastModified.Time
		out.LastModified = &t
	}
	return out
}

func toCategory(c *satsearch.Category) Category {
	out := Category{UUID: c.UUID.String(), Name: c.Name}
	if c.Parent != uuid.Nil {
		out.ParentUUID = c.Parent.String()
	}
	for _, child := range c.Children {
		out.Children = append(out.Children, toCategory(child))
	}
	return out
}

func toAttributeType(a *satsearch.AttributeType) AttributeType {
	return AttributeType{
		UUID:                    a.UUID.String(),
		Name:                    a.Name,
		ValueType:               a.ValueType,
		Description:             a.Description,
		AllowedMeasurementUnits: a.AllowedMeasurementUnits,
	}
}

func toSyncRun(r *mirror.SyncResult) SyncRun {
	return SyncRun{
		ID:             r.ID.String(),
		StartedAt:      r.StartedAt,
		FinishedAt:     r.FinishedAt,
		Status:         r.Status,
		Suppliers:      r.Suppliers,
		Categories:     r.Categories,
		AttributeTypes: r.AttributeTypes,
		DurationMS:     r.FinishedAt.Sub(r.StartedAt).Milliseconds(),
		Error:          r.Error,
	}
}
