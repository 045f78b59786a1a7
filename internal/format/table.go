// Package format renders fixed-width tables for CLI listings.
package format

import (
	"fmt"
	"io"
	"strings"

	"github.com/ch1m3z13/beadapp/internal/colors"
)

// Column describes a single table column.
type Column struct {
	// Name is the column name displayed in the header.
	Name string

	// Width is the column width in characters.
	Width int

	// Alignment is the text alignment (left, right, center).
	Alignment string

	// Truncate adds "..." instead of hard-cutting overlong values.
	Truncate bool
}

// Table writes rows of string cells under a colored header.
type Table struct {
	columns     []Column
	headerColor string
	showHeaders bool
}

// NewTable creates a table with the given columns.
func NewTable(columns ...Column) *Table {
	return &Table{
		columns:     columns,
		headerColor: colors.Blue,
		showHeaders: true,
	}
}

// WithoutHeaders disables the header and separator lines.
func (t *Table) WithoutHeaders() *Table {
	t.showHeaders = false
	return t
}

// Render writes all rows to the writer. Rows shorter than the column
// set are padded with empty cells, longer rows are cut.
func (t *Table) Render(w io.Writer, rows [][]string) error {
	if t.showHeaders {
		if err := t.writeHeader(w); err != nil {
			return err
		}
		if err := t.writeSeparator(w); err != nil {
			return err
		}
	}
	for _, row := range rows {
		if err := t.writeRow(w, row); err != nil {
			return err
		}
	}
	return nil
}

func (t *Table) writeHeader(w io.Writer) error {
	cells := make([]string, len(t.columns))
	for i, col := range t.columns {
		cells[i] = formatCell(col.Name, col.Width, "left", false)
	}
	_, err := fmt.Fprintf(w, "%s%s%s\n", t.headerColor, strings.Join(cells, "  "), colors.Reset)
	return err
}

func (t *Table) writeSeparator(w io.Writer) error {
	cells := make([]string, len(t.columns))
	for i, col := range t.columns {
		cells[i] = strings.Repeat("-", col.Width)
	}
	_, err := fmt.Fprintf(w, "%s%s%s\n", t.headerColor, strings.Join(cells, "  "), colors.Reset)
	return err
}

func (t *Table) writeRow(w io.Writer, row []string) error {
	cells := make([]string, len(t.columns))
	for i, col := range t.columns {
		value := ""
		if i < len(row) {
			value = row[i]
		}
		cells[i] = formatCell(value, col.Width, col.Alignment, col.Truncate)
	}
	_, err := fmt.Fprintln(w, strings.Join(cells, "  "))
	return err
}

// formatCell pads or cuts a value to the column width.
func formatCell(s string, width int, alignment string, truncate bool) string {
	runes := []rune(s)
	if len(runes) > width {
		if truncate && width > 3 {
			return string(runes[:width-3]) + "..."
		}
		return string(runes[:width])
	}

	pad := width - len(runes)
	switch alignment {
	case "right":
		return strings.Repeat(" ", pad) + s
	case "center":
		left := pad / 2
		return strings.Repeat(" ", left) + s + strings.Repeat(" ", pad-left)
	default: // left
		return s + strings.Repeat(" ", pad)
	}
}
