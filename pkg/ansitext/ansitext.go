// Package ansitext provides ANSI-aware text measurement and padding
// primitives for the termviz renderers. Every widget that lays text into
// fixed-width cells goes through this package so that embedded escape
// sequences never distort column math.
package ansitext

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// Align controls horizontal text alignment within a cell or box.
type Align int

const (
	// AlignLeft aligns text to the left edge (default).
	AlignLeft Align = iota
	// AlignCenter centers text horizontally.
	AlignCenter
	// AlignRight aligns text to the right edge.
	AlignRight
)

// VisibleLen returns the visible width of s in terminal cells. ANSI escape
// sequences contribute nothing; wide characters (CJK, emoji) count as 2.
func VisibleLen(s string) int {
	return ansi.StringWidth(s)
}

// Strip removes all ANSI escape sequences from s, leaving only the visible
// text.
func Strip(s string) string {
	return ansi.Strip(s)
}

// Truncate cuts s to at most maxWidth visible cells with no tail marker.
// Escape sequences before the cut point are preserved. Strings already
// within maxWidth are returned unchanged.
func Truncate(s string, maxWidth int) string {
	if maxWidth <= 0 {
		return ""
	}
	return ansi.Truncate(s, maxWidth, "")
}

// TruncateWithTail cuts s to at most maxWidth visible cells, appending tail
// (e.g. "…") when truncation occurs. The tail counts toward maxWidth.
func TruncateWithTail(s string, maxWidth int, tail string) string {
	if maxWidth <= 0 {
		return ""
	}
	return ansi.Truncate(s, maxWidth, tail)
}

// PadRight pads s with trailing spaces to exactly width visible cells.
// Strings already at or past width are returned unchanged.
func PadRight(s string, width int) string {
	vis := VisibleLen(s)
	if vis >= width {
		return s
	}
	return s + strings.Repeat(" ", width-vis)
}

// PadLeft pads s with leading spaces to exactly width visible cells.
func PadLeft(s string, width int) string {
	vis := VisibleLen(s)
	if vis >= width {
		return s
	}
	return strings.Repeat(" ", width-vis) + s
}

// PadCenter pads s with spaces on both sides so it is centered within
// width. An odd leftover space goes on the right.
func PadCenter(s string, width int) string {
	vis := VisibleLen(s)
	if vis >= width {
		return s
	}
	total := width - vis
	left := total / 2
	right := total - left
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", right)
}

// Pad pads s to width according to align. See PadLeft, PadRight and
// PadCenter for the individual behaviors.
func Pad(s string, width int, align Align) string {
	switch align {
	case AlignRight:
		return PadLeft(s, width)
	case AlignCenter:
		return PadCenter(s, width)
	default:
		return PadRight(s, width)
	}
}

// Fit truncates or pads s to exactly width visible cells according to
// align. Cell renderers use this to guarantee fixed column widths.
func Fit(s string, width int, align Align) string {
	if width <= 0 {
		return ""
	}
	if VisibleLen(s) > width {
		s = Truncate(s, width)
	}
	return Pad(s, width, align)
}
