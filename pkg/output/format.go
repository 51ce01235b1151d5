// Package output provides utilities for formatting and displaying report tables.
package output

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/iwvelando/marui-portal/pkg/constants"
	"github.com/iwvelando/marui-portal/pkg/validation"
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true)
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#3AA99F"))
	borderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#575653"))
)

// Table is a titled grid of already formatted cells.
type Table struct {
	Title   string
	Headers []string
	Rows    [][]string
}

// Write renders tables in the requested output format.
func Write(w io.Writer, format string, tables ...Table) error {
	if err := validation.ValidateOutputFormat(format); err != nil {
		return err
	}
	if format == constants.OutputFormatCSV {
		return CsvFormat(w, tables...)
	}
	return PrettyFormat(w, tables...)
}

// PrettyFormat outputs a human-readable rather than machine-readable table.
func PrettyFormat(w io.Writer, tables ...Table) error {
	for i, t := range tables {
		if i > 0 {
			if _, err := fmt.Fprintln(w); err != nil {
				return err
			}
		}
		if _, err := io.WriteString(w, renderPretty(t)); err != nil {
			return err
		}
	}
	return nil
}

func renderPretty(t Table) string {
	numCols := len(t.Headers)
	for _, row := range t.Rows {
		if len(row) > numCols {
			numCols = len(row)
		}
	}

	widths := make([]int, numCols)
	for i, h := range t.Headers {
		widths[i] = lipgloss.Width(h)
	}
	for _, row := range t.Rows {
		for i, cell := range row {
			if cw := lipgloss.Width(cell); cw > widths[i] {
				widths[i] = cw
			}
		}
	}

	var b strings.Builder
	if t.Title != "" {
		b.WriteString(titleStyle.Render(fmt.Sprintf("--- %s ---", t.Title)))
		b.WriteString("\n")
	}
	if numCols == 0 {
		b.WriteString("(no rows)\n")
		return b.String()
	}

	sep := borderStyle.Render(" | ")
	if len(t.Headers) > 0 {
		cells := make([]string, numCols)
		for i := range cells {
			h := ""
			if i < len(t.Headers) {
				h = t.Headers[i]
			}
			cells[i] = headerStyle.Render(pad(h, widths[i], false))
		}
		b.WriteString(strings.Join(cells, sep))
		b.WriteString("\n")

		rules := make([]string, numCols)
		for i, width := range widths {
			rules[i] = strings.Repeat("_", width)
		}
		b.WriteString(borderStyle.Render(strings.Join(rules, " | ")))
		b.WriteString("\n")
	}

	for _, row := range t.Rows {
		cells := make([]string, numCols)
		for i := range cells {
			cell := ""
			if i < len(row) {
				cell = row[i]
			}
			// First column is a label, the rest are figures.
			cells[i] = pad(cell, widths[i], i > 0)
		}
		b.WriteString(strings.TrimRight(strings.Join(cells, sep), " "))
		b.WriteString("\n")
	}
	if len(t.Rows) == 0 {
		b.WriteString("(no rows)\n")
	}
	return b.String()
}

func pad(s string, width int, right bool) string {
	gap := width - lipgloss.Width(s)
	if gap <= 0 {
		return s
	}
	if right {
		return strings.Repeat(" ", gap) + s
	}
	return s + strings.Repeat(" ", gap)
}

// CsvFormat outputs in comma-separated value format. Each table is preceded
// by a single-cell title record when it has a title.
func CsvFormat(w io.Writer, tables ...Table) error {
	cw := csv.NewWriter(w)
	for i, t := range tables {
		if i > 0 {
			if err := cw.Write([]string{}); err != nil {
				return err
			}
		}
		if t.Title != "" {
			if err := cw.Write([]string{t.Title}); err != nil {
				return err
			}
		}
		if len(t.Headers) > 0 {
			if err := cw.Write(t.Headers); err != nil {
				return err
			}
		}
		if err := cw.WriteAll(t.Rows); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// CsvString returns the CSV rendering of tables as a string.
func CsvString(tables ...Table) (string, error) {
	var buf bytes.Buffer
	if err := CsvFormat(&buf, tables...); err != nil {
		return "", err
	}
	return buf.String(), nil
}
