// Package validate checks generated dashboards and rules: every PromQL
// expression must parse and every metric it selects must be known.
package validate

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/prometheus/prometheus/promql/parser"
)

// histogramSuffixes are the series suffixes Prometheus derives from a
// histogram's base name.
var histogramSuffixes = []string{"_bucket", "_sum", "_count"}

// Result collects validation findings. Errors fail generation; warnings
// are reported only.
type Result struct {
	Errors   []string
	Warnings []string
}

// Ok reports whether validation found no errors.
func (r Result) Ok() bool {
	return len(r.Errors) == 0
}

// Merge appends other's findings to r.
func (r *Result) Merge(other Result) {
	r.Errors = append(r.Errors, other.Errors...)
	r.Warnings = append(r.Warnings, other.Warnings...)
}

// Exprs validates a list of PromQL expressions against known metric names.
func Exprs(exprs []string, known map[string]bool) Result {
	var r Result
	for _, expr := range exprs {
		r.Merge(Expr(expr, known))
	}
	return r
}

// Expr validates a single PromQL expression.
func Expr(expr string, known map[string]bool) Result {
	var r Result

	if strings.TrimSpace(expr) == "" {
		r.Errors = append(r.Errors, "empty expression")
		return r
	}

	node, err := parser.ParseExpr(expr)
	if err != nil {
		r.Errors = append(r.Errors, fmt.Sprintf("parse %q: %v", expr, err))
		return r
	}

	seen := make(map[string]bool)
	parser.Inspect(node, func(n parser.Node, _ []parser.Node) error {
		vs, ok := n.(*parser.VectorSelector)
		if !ok || vs.Name == "" || seen[vs.Name] {
			return nil
		}
		seen[vs.Name] = true
		if !isKnown(vs.Name, known) {
			r.Errors = append(r.Errors, fmt.Sprintf("unknown metric %q in %q", vs.Name, expr))
		}
		return nil
	})

	if len(seen) == 0 {
		r.Warnings = append(r.Warnings, fmt.Sprintf("expression %q selects no metric", expr))
	}
	return r
}

// Dashboard validates every query target in a built dashboard. The
// dashboard is walked in its JSON form so any panel type is covered.
func Dashboard(dash any, known map[string]bool) Result {
	data, err := json.Marshal(dash)
	if err != nil {
		return Result{Errors: []string{fmt.Sprintf("marshal dashboard: %v", err)}}
	}

	var tree any
	if err := json.Unmarshal(data, &tree); err != nil {
		return Result{Errors: []string{fmt.Sprintf("decode dashboard: %v", err)}}
	}

	var exprs []string
	collectExprs(tree, &exprs)
	if len(exprs) == 0 {
		return Result{Errors: []string{"dashboard has no query targets"}}
	}
	return Exprs(exprs, known)
}

func collectExprs(v any, out *[]string) {
	switch x := v.(type) {
	case map[string]any:
		if expr, ok := x["expr"].(string); ok {
			*out = append(*out, expr)
		}
		for _, child := range x {
			collectExprs(child, out)
		}
	case []any:
		for _, child := range x {
			collectExprs(child, out)
		}
	}
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
