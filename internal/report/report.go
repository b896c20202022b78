// Package report renders verification results for the console, either as
// colored text for people or as JSON for other programs.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"github.com/specialistvlad/guardian/internal/evaluator"
	"github.com/specialistvlad/guardian/internal/scoring"
	"github.com/specialistvlad/guardian/internal/verifier"
)

const (
	FormatText = "text"
	FormatJSON = "json"
)

// Reporter writes results to out.
type Reporter struct {
	out    io.Writer
	format string

	green  *color.Color
	yellow *color.Color
	red    *color.Color
	cyan   *color.Color
	dim    *color.Color
}

// New creates a Reporter. Colors apply to the text format only and are
// forced on or off by useColor regardless of the terminal.
func New(out io.Writer, format string, useColor bool) *Reporter {
	r := &Reporter{
		out:    out,
		format: format,
		green:  color.New(color.FgGreen, color.Bold),
		yellow: color.New(color.FgYellow, color.Bold),
		red:    color.New(color.FgRed, color.Bold),
		cyan:   color.New(color.FgCyan),
		dim:    color.New(color.Faint),
	}
	for _, c := range []*color.Color{r.green, r.yellow, r.red, r.cyan, r.dim} {
		if useColor {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return r
}

type resultJSON struct {
	Name   string          `json:"name,omitempty"`
	Report *scoring.Report `json:"report,omitempty"`
	Error  string          `json:"error,omitempty"`
}

// Results renders one block per result in order.
func (r *Reporter) Results(results []verifier.Result) error {
	if r.format == FormatJSON {
		out := make([]resultJSON, 0, len(results))
		for _, res := range results {
			item := resultJSON{Name: res.Request.Name, Report: res.Report}
			if res.Err != nil {
				item.Error = res.Err.Error()
			}
			out = append(out, item)
		}
		return r.writeJSON(out)
	}

	for i, res := range results {
		if i > 0 {
			fmt.Fprintln(r.out)
		}
		r.textResult(res)
	}
	return nil
}

func (r *Reporter) textResult(res verifier.Result) {
	name := res.Request.Name
	if name == "" {
		name = "candidate"
	}
	r.cyan.Fprintf(r.out, "%s", name)
	fmt.Fprintf(r.out, " -> %s\n", res.Request.DishID)

	if res.Err != nil {
		r.red.Fprint(r.out, "  rejected: ")
		fmt.Fprintln(r.out, res.Err)
		return
	}

	rep := res.Report
	r.scoreColor(rep.Score()).Fprintf(r.out, "  score %d/100", rep.Score())
	if summary := kindSummary(rep); summary != "" {
		fmt.Fprintf(r.out, " (%s)", summary)
	}
	r.dim.Fprintf(r.out, "  report %s\n", rep.ID())

	vs := rep.Violations()
	if len(vs) == 0 {
		r.green.Fprintln(r.out, "  no violations")
		return
	}
	for _, v := range vs {
		r.red.Fprint(r.out, "  x ")
		fmt.Fprintf(r.out, "%-22s %-24s %s\n", v.Kind, v.NodeRef, v.Detail)
	}
}

// kindSummary counts violations per kind, e.g. "2 missing_ingredient, 1 missing_step".
func kindSummary(rep *scoring.Report) string {
	var parts []string
	for _, k := range evaluator.Kinds() {
		if n := rep.Count(k); n > 0 {
			parts = append(parts, fmt.Sprintf("%d %s", n, k))
		}
	}
	return strings.Join(parts, ", ")
}

func (r *Reporter) scoreColor(score int) *color.Color {
	switch {
	case score >= 80:
		return r.green
	case score >= 50:
		return r.yellow
	}
	return r.red
}

// Dishes renders the catalog listing.
func (r *Reporter) Dishes(ids []string) error {
	if r.format == FormatJSON {
		if ids == nil {
			ids = []string{}
		}
		return r.writeJSON(map[string][]string{"dishes": ids})
	}
	if len(ids) == 0 {
		r.yellow.Fprintln(r.out, "catalog is empty")
		return nil
	}
	for _, id := range ids {
		fmt.Fprintln(r.out, id)
	}
	return nil
}

// CatalogSummary renders the outcome of a catalog check.
func (r *Reporter) CatalogSummary(ids []string) error {
	if r.format == FormatJSON {
		if ids == nil {
			ids = []string{}
		}
		return r.writeJSON(map[string]any{"valid": true, "dishes": ids})
	}
	r.green.Fprint(r.out, "ok")
	fmt.Fprintf(r.out, ": %d dishes\n", len(ids))
	for _, id := range ids {
		r.dim.Fprintf(r.out, "  %s\n", id)
	}
	return nil
}

func (r *Reporter) writeJSON(v any) error {
	enc := json.NewEncoder(r.out)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("failed to encode output: %w", err)
	}
	return nil
}
