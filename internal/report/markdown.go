// Package report renders a dashboard as a markdown document.
package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/mattn/go-runewidth"

	"payment-insights-go/internal/export"
	"payment-insights-go/internal/types"
)

// WriteMarkdown writes d as a title, the filter summary and one table per
// section.
func WriteMarkdown(w io.Writer, d types.Dashboard) error {
	var sb strings.Builder
	sb.WriteString("# Digital Payment Platforms Survey\n\n")
	if d.Dataset != "" {
		fmt.Fprintf(&sb, "Source: `%s`\n\n", d.Dataset)
	}
	fmt.Fprintf(&sb, "_%s_\n", d.Filters.Summary)

	for _, s := range export.Sections(d) {
		if s.Name == "Filters" {
			continue
		}
		fmt.Fprintf(&sb, "\n## %s\n\n", s.Name)
		if len(s.Rows) == 0 {
			sb.WriteString("No data.\n")
			continue
		}
		for _, line := range Table(s.Header, s.Rows) {
			sb.WriteString(line)
			sb.WriteByte('\n')
		}
	}
	_, err := io.WriteString(w, sb.String())
	return err
}

// Table renders an aligned markdown table. Column widths are measured in
// display cells so wide characters line up in a terminal.
func Table(header []string, rows [][]string) []string {
	colWidths := make([]int, len(header))
	measure := func(row []string) {
		for i := 0; i < len(row) && i < len(colWidths); i++ {
			if w := runewidth.StringWidth(escape(row[i])); w > colWidths[i] {
				colWidths[i] = w
			}
		}
	}
	measure(header)
	for _, row := range rows {
		measure(row)
	}
	// separator needs at least "---"
	for i := range colWidths {
		if colWidths[i] < 3 {
			colWidths[i] = 3
		}
	}

	line := func(row []string) string {
		var sb strings.Builder
		sb.WriteString("|")
		for j, width := range colWidths {
			content := ""
			if j < len(row) {
				content = escape(row[j])
			}
			sb.WriteString(" ")
			sb.WriteString(runewidth.FillRight(content, width))
			sb.WriteString(" |")
		}
		return sb.String()
	}

	out := []string{line(header)}
	var sep strings.Builder
	sep.WriteString("|")
	for _, width := range colWidths {
		sep.WriteString(" " + strings.Repeat("-", width) + " |")
	}
	out = append(out, sep.String())
	for _, row := range rows {
		out = append(out, line(row))
	}
	return out
}

// cellEscaper keeps each cell on its table row.
var cellEscaper = strings.NewReplacer(
	"|", `\|`,
	"\r\n", " ",
	"\n", " ",
	"\r", " ",
)

func escape(s string) string {
	return cellEscaper.Replace(s)
}
