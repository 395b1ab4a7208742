// Package table renders fixed-width column tables with ANSI-aware cell
// layout. Cell text longer than its column truncates (never wraps); width
// math always uses visible text, so colored cells line up with plain ones.
package table

import (
	"io"
	"strings"

	"gitlab.com/tinyland/lab/termviz/pkg/ansitext"
	"gitlab.com/tinyland/lab/termviz/pkg/glyphs"
	"gitlab.com/tinyland/lab/termviz/pkg/theme"
)

// minAutoWidth is the floor applied by auto-sizing.
const minAutoWidth = 5

const noData = "(no data)"

// Column defines a single table column with a fixed declared width.
type Column struct {
	Header string
	Width  int
	Align  ansitext.Align
}

// Table holds columns, row data, and presentation configuration. A row may
// have fewer cells than columns (missing cells render empty); extra cells
// are ignored.
type Table struct {
	columns []Column
	rows    [][]string
	style   glyphs.Style
	theme   *theme.Theme
}

// New creates an empty table with the Unicode border style and no colors.
func New() *Table {
	return &Table{style: glyphs.StyleUnicode}
}

// NewAuto creates a table whose column widths are derived from the data:
// each column takes max(longest cell in the column, 5) cells.
func NewAuto(headers []string, rows [][]string) *Table {
	t := New()
	t.columns = AutoColumns(headers, rows)
	for _, r := range rows {
		t.rows = append(t.rows, r)
	}
	return t
}

// AutoColumns builds left-aligned columns sized to the widest cell in each
// column, with a floor of 5 cells.
func AutoColumns(headers []string, rows [][]string) []Column {
	cols := make([]Column, len(headers))
	for i, h := range headers {
		w := ansitext.VisibleLen(h)
		for _, r := range rows {
			if i < len(r) {
				if n := ansitext.VisibleLen(r[i]); n > w {
					w = n
				}
			}
		}
		if w < minAutoWidth {
			w = minAutoWidth
		}
		cols[i] = Column{Header: h, Width: w}
	}
	return cols
}

// AddColumn appends a column with a fixed width. Negative widths clamp to
// zero.
func (t *Table) AddColumn(header string, width int, align ansitext.Align) *Table {
	if width < 0 {
		width = 0
	}
	t.columns = append(t.columns, Column{Header: header, Width: width, Align: align})
	return t
}

// AddRow appends a data row.
func (t *Table) AddRow(cells ...string) *Table {
	t.rows = append(t.rows, cells)
	return t
}

// Style selects the border glyph family.
func (t *Table) Style(s glyphs.Style) *Table {
	t.style = s
	return t
}

// Theme enables colored output: border, header, and alternating even/odd
// row colors come from th.
func (t *Table) Theme(th theme.Theme) *Table {
	t.theme = &th
	return t
}

// Render returns the table as a string. See RenderTo.
func (t *Table) Render() string {
	var b strings.Builder
	_ = t.RenderTo(&b)
	return b.String()
}

// RenderTo draws the table into w: top border, header row, separator, data
// rows, bottom border. A table with no rows renders a single centered
// "(no data)" row inside the frame.
func (t *Table) RenderTo(w io.Writer) error {
	if len(t.columns) == 0 {
		_, err := io.WriteString(w, noData+"\n")
		return err
	}

	set := glyphs.Borders(t.style)
	var lines []string

	lines = append(lines, t.borderLine(set.TopLeft, set.TopTee, set.TopRight, set.Horizontal))
	lines = append(lines, t.headerLine(set))
	lines = append(lines, t.borderLine(set.LeftTee, set.Cross, set.RightTee, set.Horizontal))
	if len(t.rows) == 0 {
		lines = append(lines, t.spanLine(set, noData))
	} else {
		for i, row := range t.rows {
			lines = append(lines, t.rowLine(set, row, i))
		}
	}
	lines = append(lines, t.borderLine(set.BottomLeft, set.BottomTee, set.BottomRight, set.Horizontal))

	for _, line := range lines {
		if _, err := io.WriteString(w, line+"\n"); err != nil {
			return err
		}
	}
	return nil
}

// borderSeq returns the SGR sequence for border glyphs, or "".
func (t *Table) borderSeq() string {
	if t.theme == nil {
		return ""
	}
	return ansitext.Fg(t.theme.Border)
}

// borderLine builds a horizontal frame line from left, junction and right
// glyphs.
func (t *Table) borderLine(left, junction, right, horizontal string) string {
	var b strings.Builder
	b.WriteString(left)
	for i, col := range t.columns {
		if i > 0 {
			b.WriteString(junction)
		}
		b.WriteString(strings.Repeat(horizontal, col.Width))
	}
	b.WriteString(right)
	return ansitext.Colorize(b.String(), t.borderSeq())
}

// headerLine builds the header row with each title fitted to its column.
func (t *Table) headerLine(set glyphs.BorderSet) string {
	cells := make([]string, len(t.columns))
	headerSeq := ""
	if t.theme != nil {
		headerSeq = ansitext.Fg(t.theme.Header)
	}
	for i, col := range t.columns {
		cell := ansitext.Fit(col.Header, col.Width, col.Align)
		if headerSeq != "" {
			cell = ansitext.Colorize(ansitext.Bold+cell, headerSeq)
		}
		cells[i] = cell
	}
	return t.joinCells(set, cells)
}

// rowLine builds one data row. Missing cells render empty; extra cells are
// dropped. Even and odd rows alternate colors when a theme is set.
func (t *Table) rowLine(set glyphs.BorderSet, row []string, rowIndex int) string {
	rowSeq := ""
	if t.theme != nil {
		if rowIndex%2 == 0 {
			rowSeq = ansitext.Fg(t.theme.RowEven)
		} else {
			rowSeq = ansitext.Fg(t.theme.RowOdd)
		}
	}
	cells := make([]string, len(t.columns))
	for i, col := range t.columns {
		cell := ""
		if i < len(row) {
			cell = row[i]
		}
		cell = ansitext.Fit(cell, col.Width, col.Align)
		if rowSeq != "" {
			cell = ansitext.Colorize(cell, rowSeq)
		}
		cells[i] = cell
	}
	return t.joinCells(set, cells)
}

// spanLine builds a single row spanning every column, used for the empty
// placeholder.
func (t *Table) spanLine(set glyphs.BorderSet, text string) string {
	inner := len(t.columns) - 1
	for _, col := range t.columns {
		inner += col.Width
	}
	borderSeq := t.borderSeq()
	edge := ansitext.Colorize(set.Vertical, borderSeq)
	return edge + ansitext.Fit(text, inner, ansitext.AlignCenter) + edge
}

// joinCells frames prepared cells with vertical border glyphs.
func (t *Table) joinCells(set glyphs.BorderSet, cells []string) string {
	sep := ansitext.Colorize(set.Vertical, t.borderSeq())
	return sep + strings.Join(cells, sep) + sep
}
