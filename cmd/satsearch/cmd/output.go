package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/google/uuid"

	"github.com/donaldgifford/satsearch-go/internal/mirror"
	"github.com/donaldgifford/satsearch-go/pkg/satsearch"
)

const dateLayout = "2006-01-02 15:04:05"

// tabWriter wraps tabwriter with error tracking.
type tabWriter struct {
	*tabwriter.Writer
	err error
}

func newTabWriter(w io.Writer) *tabWriter {
	return &tabWriter{Writer: tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)}
}

func (tw *tabWriter) writef(format string, args ...any) {
	if tw.err != nil {
		return
	}
	_, tw.err = fmt.Fprintf(tw.Writer, format, args...)
}

func (tw *tabWriter) finish() error {
	if tw.err != nil {
		return tw.err
	}
	return tw.Flush()
}

func printSuppliersTable(w io.Writer, suppliers []satsearch.Supplier) error {
	tw := newTabWriter(w)
	tw.writef("UUID\tNAME\tURL\tLAST MODIFIED\n")
	for i := range suppliers {
		s := &suppliers[i]
		tw.writef("%s\t%s\t%s\t%s\n",
			s.UUID,
			truncate(s.Name, 40),
			s.SupplierURL,
			formatTimestamp(s.LastModified),
		)
	}
	return tw.finish()
}

func printSupplierDetail(w io.Writer, s *satsearch.Supplier) error {
	tw := newTabWriter(w)
	tw.writef("UUID:\t%s\n", s.UUID)
	tw.writef("Name:\t%s\n", s.Name)
	tw.writef("URL:\t%s\n", s.SupplierURL)
	tw.writef("Logo:\t%s\n", s.Logo)
	tw.writef("Last Modified:\t%s\n", formatTimestamp(s.LastModified))
	tw.writef("Summary:\t%s\n", truncate(s.Summary, 120))
	return tw.finish()
}

func printCategoriesTable(w io.Writer, categories []satsearch.Category) error {
	tw := newTabWriter(w)
	tw.writef("UUID\tNAME\tPARENT\n")
	for i := range categories {
		c := &categories[i]
		parent := "-"
		if c.Parent != uuid.Nil {
			parent = c.Parent.String()
		}
		tw.writef("%s\t%s\t%s\n", c.UUID, c.Name, parent)
	}
	return tw.finish()
}

func printCategoryTree(w io.Writer, roots []*satsearch.Category) error {
	tw := newTabWriter(w)
	for _, root := range roots {
		root.Walk(func(c *satsearch.Category, depth int) {
			tw.writef("%s%s\t%s\n", strings.Repeat("  ", depth), c.Name, c.UUID)
		})
	}
	return tw.finish()
}

func printAttributeTypesTable(w io.Writer, types []satsearch.AttributeType) error {
	tw := newTabWriter(w)
	tw.writef("UUID\tNAME\tTYPE\tUNITS\n")
	for i := range types {
		at := &types[i]
		tw.writef("%s\t%s\t%s\t%s\n",
			at.UUID,
			truncate(at.Name, 40),
			at.ValueType,
			strings.Join(at.AllowedMeasurementUnits, ","),
		)
	}
	return tw.finish()
}

func printProductsTable(w io.Writer, products []satsearch.Product) error {
	tw := newTabWriter(w)
	tw.writef("UUID\tNAME\tSUPPLIER\tCATEGORY\n")
	for i := range products {
		p := &products[i]
		category := "-"
		if p.Category != nil {
			category = p.Category.Name
		}
		tw.writef("%s\t%s\t%s\t%s\n",
			p.UUID,
			truncate(p.Name, 40),
			truncate(p.Supplier, 30),
			category,
		)
	}
	return tw.finish()
}

func printProductDetail(w io.Writer, p *satsearch.Product) error {
	tw := newTabWriter(w)
	tw.writef("UUID:\t%s\n", p.UUID)
	tw.writef("Name:\t%s\n", p.Name)
	tw.writef("Supplier:\t%s\n", p.Supplier)
	if p.Category != nil {
		tw.writef("Category:\t%s\n", p.Category.Name)
	}
	tw.writef("URL:\t%s\n", p.ProductURL)
	tw.writef("Last Modified:\t%s\n", formatTimestamp(p.LastModified))
	tw.writef("Summary:\t%s\n", truncate(p.Summary, 120))
	if len(p.Attributes) > 0 {
		tw.writef("\nATTRIBUTE\tVALUE\tUNIT\n")
		for i := range p.Attributes {
			attr := &p.Attributes[i]
			tw.writef("%s\t%s\t%s\n", attr.AttributeType.Name, attributeValue(attr), attr.MeasurementUnit)
		}
	}
	return tw.finish()
}

func printSyncResult(w io.Writer, r *mirror.SyncResult) error {
	tw := newTabWriter(w)
	tw.writef("Sync ID:\t%s\n", r.ID)
	tw.writef("Status:\t%s\n", r.Status)
	tw.writef("Started:\t%s\n", r.StartedAt.Format(dateLayout))
	tw.writef("Duration:\t%s\n", r.Duration.Round(time.Millisecond))
	tw.writef("Suppliers:\t%d\n", r.Suppliers)
	tw.writef("Categories:\t%d\n", r.Categories)
	tw.writef("Attribute Types:\t%d\n", r.AttributeTypes)
	if r.Error != "" {
		tw.writef("Error:\t%s\n", r.Error)
	}
	return tw.finish()
}

// attributeValue renders a single value or a min..max range.
func attributeValue(a *satsearch.Attribute) string {
	if a.Value != "" {
		return a.Value
	}
	if a.MinimumValue != "" || a.MaximumValue != "" {
		return a.MinimumValue + ".." + a.MaximumValue
	}
	return "-"
}

func formatTimestamp(ts satsearch.Timestamp) string {
	if ts.IsZero() {
		return "-"
	}
	return ts.UTC().Format(dateLayout)
}

func outputJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen-3] + "..."
}
