// Package validate checks generated dashboards and rules: every PromQL
// expression must parse and reference only known metrics.
package validate

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/grafana/grafana-foundation-sdk/go/dashboard"
	"github.com/prometheus/prometheus/model/labels"
	"github.com/prometheus/prometheus/promql/parser"

	"github.com/donaldgifford/satsearch-go/tools/dashgen/rules"
)

// histogramSuffixes are stripped before looking a series up in the known
// metric set.
var histogramSuffixes = []string{"_bucket", "_sum", "_count"}

// Result collects validation findings. Errors fail generation; warnings
// are reported only.
type Result struct {
	Errors   []string
	Warnings []string
}

// Ok reports whether no errors were found.
func (r Result) Ok() bool { return len(r.Errors) == 0 }

// Merge appends the findings of other to r.
func (r *Result) Merge(other Result) {
	r.Errors = append(r.Errors, other.Errors...)
	r.Warnings = append(r.Warnings, other.Warnings...)
}

// Dashboard validates every query expression in dash. Raw metric selectors
// without a job matcher produce a warning.
func Dashboard(dash dashboard.Dashboard, known map[string]bool) Result {
	var res Result

	data, err := json.Marshal(dash)
	if err != nil {
		res.Errors = append(res.Errors, fmt.Sprintf("marshaling dashboard: %v", err))
		return res
	}
	var tree any
	if err := json.Unmarshal(data, &tree); err != nil {
		res.Errors = append(res.Errors, fmt.Sprintf("decoding dashboard: %v", err))
		return res
	}

	exprs := collectExprs(tree, "", nil)
	if len(exprs) == 0 {
		res.Errors = append(res.Errors, "dashboard has no query expressions")
	}
	for _, e := range exprs {
		res.Merge(Expr(e.where, e.expr, known, true))
	}
	return res
}

// Rules validates every rule expression in cr.
func Rules(cr rules.PrometheusRule, known map[string]bool) Result {
	var res Result
	for _, g := range cr.Spec.Groups {
		for _, r := range g.Rules {
			name := r.Record
			if name == "" {
				name = r.Alert
			}
			if name == "" {
				res.Errors = append(res.Errors, fmt.Sprintf("%s: rule has neither record nor alert", g.Name))
				continue
			}
			res.Merge(Expr(g.Name+"/"+name, r.Expr, known, false))
		}
	}
	return res
}

// Expr parses expr and checks each vector selector against known. where
// prefixes every finding. When requireJob is set, raw metric selectors
// (names without a colon) must carry a job matcher.
func Expr(where, expr string, known map[string]bool, requireJob bool) Result {
	var res Result

	node, err := parser.ParseExpr(expr)
	if err != nil {
		res.Errors = append(res.Errors, fmt.Sprintf("%s: invalid PromQL %q: %v", where, expr, err))
		return res
	}

	parser.Inspect(node, func(n parser.Node, _ []parser.Node) error {
		vs, ok := n.(*parser.VectorSelector)
		if !ok {
			return nil
		}
		name := selectorName(vs)
		if name == "" {
			res.Errors = append(res.Errors, fmt.Sprintf("%s: selector without a metric name in %q", where, expr))
			return nil
		}
		if !isKnown(name, known) {
			res.Errors = append(res.Errors, fmt.Sprintf("%s: unknown metric %q", where, name))
		}
		if requireJob && !strings.Contains(name, ":") && !hasMatcher(vs, "job") {
			res.Warnings = append(res.Warnings, fmt.Sprintf("%s: %s has no job matcher", where, name))
		}
		return nil
	})
	return res
}

func selectorName(vs *parser.VectorSelector) string {
	if vs.Name != "" {
		return vs.Name
	}
	for _, m := range vs.LabelMatchers {
		if m.Name == labels.MetricName {
			return m.Value
		}
	}
	return ""
}

func hasMatcher(vs *parser.VectorSelector, label string) bool {
	for _, m := range vs.LabelMatchers {
		if m.Name == label {
			return true
		}
	}
	return false
}

func isKnown(name string, known map[string]bool) bool {
	if known[name] {
		return true
	}
	for _, suffix := range histogramSuffixes {
		if base, ok := strings.CutSuffix(name, suffix); ok && known[base] {
			return true
		}
	}
	return false
}

type located struct {
	where string
	expr  string
}

// collectExprs walks decoded dashboard JSON and returns every "expr"
// string, labeled with the title of the panel that holds it.
func collectExprs(node any, title string, out []located) []located {
	switch v := node.(type) {
	case map[string]any:
		if t, ok := v["title"].(string); ok && t != "" {
			title = t
		}
		if e, ok := v["expr"].(string); ok {
			out = append(out, located{where: title, expr: e})
		}
		for k, child := range v {
			if k == "expr" {
				continue
			}
			out = collectExprs(child, title, out)
		}
	case []any:
		for _, child := range v {
			out = collectExprs(child, title, out)
		}
	}
	return out
}
