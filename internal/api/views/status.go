// Package views renders the HTML pages of the mirror server.
package views

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/a-h/templ"
)

// StatusData is everything the status page shows.
type StatusData struct {
	Version     string
	Ready       bool
	MetricsPath string
	// LastSync is nil until the first sync has been recorded.
	LastSync *SyncSummary
	Now      time.Time
}

// SyncSummary is the status page view of one sync run.
type SyncSummary struct {
	Status         string
	StartedAt      time.Time
	Duration       time.Duration
	Suppliers      int
	Categories     int
	AttributeTypes int
	Error          string
}

const pageStyle = `body{font-family:system-ui,sans-serif;margin:2rem;color:#222}` +
	`table{border-collapse:collapse}td,th{padding:.3rem .8rem;text-align:left;border-bottom:1px solid #ddd}` +
	`.ok{color:#2e7d32}.bad{color:#c62828}`

// StatusPage renders the mirror status page.
func StatusPage(d StatusData) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		p := &printer{w: w}

		p.raw(`<!DOCTYPE html><html lang="en"><head><meta charset="utf-8">`)
		p.raw(`<title>SatSearch Mirror</title><style>` + pageStyle + `</style></head><body>`)
		p.raw(`<h1>SatSearch Mirror</h1>`)
		p.raw(`<p>Version `)
		p.text(d.Version)
		p.raw(`</p>`)

		p.raw(`<h2>Database</h2>`)
		if d.Ready {
			p.raw(`<p class="ok">reachable</p>`)
		} else {
			p.raw(`<p class="bad">unreachable</p>`)
		}

		p.raw(`<h2>Last sync</h2>`)
		if d.LastSync == nil {
			p.raw(`<p>No mirror syncs recorded.</p>`)
		} else {
			syncTable(p, d.LastSync, d.Now)
		}

		p.raw(`<p><a href="/docs">API documentation</a> | <a href="`)
		p.text(d.MetricsPath)
		p.raw(`">Metrics</a></p></body></html>`)

		return p.err
	})
}

func syncTable(p *printer, s *SyncSummary, now time.Time) {
	class := "ok"
	if s.Error != "" {
		class = "bad"
	}

	p.raw(`<table>`)
	p.raw(`<tr><th>Status</th><td class="` + class + `">`)
	p.text(s.Status)
	p.raw(`</td></tr>`)
	row(p, "Started", fmt.Sprintf("%s (%s ago)",
		s.StartedAt.UTC().Format(time.RFC3339), now.Sub(s.StartedAt).Truncate(time.Second)))
	row(p, "Duration", s.Duration.Round(time.Millisecond).String())
	row(p, "Suppliers", strconv.Itoa(s.Suppliers))
	row(p, "Categories", strconv.Itoa(s.Categories))
	row(p, "Attribute types", strconv.Itoa(s.AttributeTypes))
	if s.Error != "" {
		row(p, "Error", s.Error)
	}
	p.raw(`</table>`)
}

func row(p *printer, label, value string) {
	p.raw(`<tr><th>`)
	p.text(label)
	p.raw(`</th><td>`)
	p.text(value)
	p.raw(`</td></tr>`)
}

// printer writes until the first error and remembers it.
type printer struct {
	w   io.Writer
	err error
}

func (p *printer) raw(s string) {
	if p.err != nil {
		return
	}
	_, p.err = io.WriteString(p.w, s)
}

func (p *printer) text(s string) {
	p.raw(templ.EscapeString(s))
}
