// Package render formats a quality report as markdown and HTML for
// offline export. Pure string formatting; no narrative generation.
package render

import (
	"fmt"
	"sort"
	"strings"

	"github.com/gomarkdown/markdown"
	"github.com/gomarkdown/markdown/html"
	"github.com/gomarkdown/markdown/parser"

	"guardrails/domain/report"
)

// Markdown renders the report as a markdown document. Map-backed
// sections are emitted in sorted key order so output is deterministic.
func Markdown(r *report.Report) string {
	var b strings.Builder

	b.WriteString("# Data Quality Report\n\n")
	b.WriteString(r.Summary + "\n\n")

	b.WriteString("## Column Profile\n\n")
	b.WriteString("| Column | Type | Missing | Unique | Outliers |\n")
	b.WriteString("| --- | --- | --- | --- | --- |\n")
	for _, col := range r.Profile.Columns {
		fmt.Fprintf(&b, "| %s | %s | %.1f%% | %d | %d |\n",
			col.Name, col.DType, col.MissingPercent*100, col.UniqueCount, col.OutlierCount)
	}
	b.WriteString("\n")

	b.WriteString("## Inferred Schema\n\n")
	for _, name := range sortedKeys(r.Schema.Inferred) {
		violation := r.Schema.Violations[name]
		fmt.Fprintf(&b, "- **%s**: %s (%d invalid values)\n", name, r.Schema.Inferred[name], violation.InvalidCount)
	}
	b.WriteString("\n")

	if r.Drift != nil {
		b.WriteString("## Drift vs Baseline\n\n")
		writeDrift(&b, r.Drift)
	}

	b.WriteString("## Recommendations\n\n")
	if len(r.Recommendations) == 0 {
		b.WriteString("No remediation needed.\n")
	}
	for _, rec := range r.Recommendations {
		fmt.Fprintf(&b, "- [%s] **%s** (%s): %s\n", rec.Severity, rec.Column, rec.Issue, rec.Recommendation)
	}
	return b.String()
}

func writeDrift(b *strings.Builder, drift *report.DriftReport) {
	numericNames := make([]string, 0, len(drift.Numeric))
	for name := range drift.Numeric {
		numericNames = append(numericNames, name)
	}
	sort.Strings(numericNames)
	for _, name := range numericNames {
		record := drift.Numeric[name]
		if record.MeanDelta != nil {
			fmt.Fprintf(b, "- **%s**: mean delta %.4f\n", name, *record.MeanDelta)
		} else {
			fmt.Fprintf(b, "- **%s**: mean delta unavailable\n", name)
		}
	}

	categoricalNames := make([]string, 0, len(drift.Categorical))
	for name := range drift.Categorical {
		categoricalNames = append(categoricalNames, name)
	}
	sort.Strings(categoricalNames)
	for _, name := range categoricalNames {
		record := drift.Categorical[name]
		fmt.Fprintf(b, "- **%s**: top value %s (baseline %s)\n",
			name, derefOr(record.CurrentTop, "n/a"), derefOr(record.BaselineTop, "n/a"))
	}

	for _, note := range drift.Notes {
		fmt.Fprintf(b, "- %s\n", note)
	}
	b.WriteString("\n")
}

// HTML converts the report's markdown rendering to a standalone HTML page
func HTML(r *report.Report) []byte {
	p := parser.NewWithExtensions(parser.CommonExtensions | parser.Tables)
	renderer := html.NewRenderer(html.RendererOptions{
		Title: "Data Quality Report",
		Flags: html.CommonFlags | html.CompletePage,
	})
	return markdown.ToHTML([]byte(Markdown(r)), p, renderer)
}

func sortedKeys(m map[string]report.ColumnType) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func derefOr(s *string, fallback string) string {
	if s != nil {
		return *s
	}
	return fallback
}
