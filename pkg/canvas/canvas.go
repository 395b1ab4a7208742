// Package canvas implements the 2D character grid every chart renders
// into, along with the data-to-screen scale mapping. A canvas lives for a
// single render pass: layers (gridlines, line segments, point markers,
// labels) are laid down in order with later layers overwriting earlier
// ones, then the grid is emitted row-major as text.
package canvas

import (
	"io"
	"math"
	"strings"

	"gitlab.com/tinyland/lab/termviz/pkg/glyphs"
)

// Canvas is a height × width grid of single-cell glyphs, blank-initialized.
// Coordinates are (x, y) with the origin at the top-left corner.
type Canvas struct {
	width  int
	height int
	cells  [][]rune
}

// New allocates a blank canvas. Non-positive dimensions are clamped to 1.
func New(width, height int) *Canvas {
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}
	cells := make([][]rune, height)
	for y := range cells {
		row := make([]rune, width)
		for x := range row {
			row[x] = ' '
		}
		cells[y] = row
	}
	return &Canvas{width: width, height: height, cells: cells}
}

// Width returns the number of columns.
func (c *Canvas) Width() int { return c.width }

// Height returns the number of rows.
func (c *Canvas) Height() int { return c.height }

// Set writes a glyph at (x, y). Out-of-range coordinates are dropped
// silently; charts routinely cull points at their edges.
func (c *Canvas) Set(x, y int, g rune) {
	if x < 0 || x >= c.width || y < 0 || y >= c.height {
		return
	}
	c.cells[y][x] = g
}

// At returns the glyph at (x, y), or a space for out-of-range coordinates.
func (c *Canvas) At(x, y int) rune {
	if x < 0 || x >= c.width || y < 0 || y >= c.height {
		return ' '
	}
	return c.cells[y][x]
}

// Line rasterizes a segment from (x1, y1) to (x2, y2) with incremental
// stepping: steps = max(|dx|, |dy|), advancing dx/steps and dy/steps per
// iteration. A zero-length segment is skipped; its cell is already covered
// by the endpoint marker pass. The glyph per step follows the dominant
// direction, with the diagonal slash chosen from the sign combination of
// dx and dy.
func (c *Canvas) Line(x1, y1, x2, y2 int, set glyphs.LineSet) {
	dx := x2 - x1
	dy := y2 - y1

	steps := abs(dx)
	if abs(dy) > steps {
		steps = abs(dy)
	}
	if steps == 0 {
		return
	}

	g := set.DiagDown
	switch {
	case abs(dx) > abs(dy):
		g = set.Horizontal
	case abs(dy) > abs(dx):
		g = set.Vertical
	case (dx > 0) != (dy > 0):
		g = set.DiagUp
	}

	incX := float64(dx) / float64(steps)
	incY := float64(dy) / float64(steps)
	fx := float64(x1)
	fy := float64(y1)
	for i := 0; i <= steps; i++ {
		c.Set(int(math.Round(fx)), int(math.Round(fy)), g)
		fx += incX
		fy += incY
	}
}

// Grid overlays gridlines every height/5 rows and width/5 columns. Callers
// must draw the grid before any data layer so gridlines never occlude data.
func (c *Canvas) Grid(set glyphs.LineSet) {
	rowStep := c.height / 5
	if rowStep < 1 {
		rowStep = 1
	}
	colStep := c.width / 5
	if colStep < 1 {
		colStep = 1
	}
	for y := rowStep; y < c.height; y += rowStep {
		for x := 0; x < c.width; x++ {
			c.cells[y][x] = set.GridH
		}
	}
	for x := colStep; x < c.width; x += colStep {
		for y := 0; y < c.height; y++ {
			c.cells[y][x] = set.GridV
		}
	}
}

// WriteString lays the runes of s onto row y starting at column x,
// overwriting the cells beneath. Runes past the right edge are dropped.
func (c *Canvas) WriteString(x, y int, s string) {
	for _, r := range s {
		c.Set(x, y, r)
		x++
	}
}

// WriteCentered lays s onto row y centered within the canvas width.
func (c *Canvas) WriteCentered(y int, s string) {
	runes := []rune(s)
	c.WriteString((c.width-len(runes))/2, y, s)
}

// Row returns row y as a string.
func (c *Canvas) Row(y int) string {
	if y < 0 || y >= c.height {
		return ""
	}
	return string(c.cells[y])
}

// String emits the grid row-major, one line per row, each line
// newline-terminated.
func (c *Canvas) String() string {
	var b strings.Builder
	b.Grow(c.height * (c.width + 1))
	for y := 0; y < c.height; y++ {
		b.WriteString(string(c.cells[y]))
		b.WriteByte('\n')
	}
	return b.String()
}

// WriteTo emits the grid to w, implementing io.WriterTo.
func (c *Canvas) WriteTo(w io.Writer) (int64, error) {
	n, err := io.WriteString(w, c.String())
	return int64(n), err
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
