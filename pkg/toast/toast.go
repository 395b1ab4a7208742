// Package toast renders single-shot framed notifications. It is a
// presentation wrapper over the rendering core: lipgloss supplies the
// frame and color styling, the theme package supplies the per-level
// palette.
package toast

import (
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"gitlab.com/tinyland/lab/termviz/pkg/glyphs"
	"gitlab.com/tinyland/lab/termviz/pkg/theme"
)

// Level classifies a toast notification.
type Level int

const (
	Info Level = iota
	Success
	Warning
	Error
)

// levelIcons maps levels to their marker glyphs.
var levelIcons = [...]string{
	Info:    "ℹ",
	Success: "✔",
	Warning: "⚠",
	Error:   "✖",
}

// asciiIcons are the 7-bit fallbacks for StyleASCII output.
var asciiIcons = [...]string{
	Info:    "i",
	Success: "+",
	Warning: "!",
	Error:   "x",
}

// Toast is a framed notification with a level, optional title, and a
// message body.
type Toast struct {
	level   Level
	title   string
	message string
	width   int
	style   glyphs.Style
	theme   theme.Theme
}

// New creates a toast with the default theme, Unicode rounded frame, and a
// width derived from the content.
func New(level Level, message string) *Toast {
	return &Toast{
		level:   level,
		message: message,
		style:   glyphs.StyleRounded,
		theme:   theme.Default(),
	}
}

// Title sets the title rendered in bold above the message.
func (t *Toast) Title(s string) *Toast {
	t.title = s
	return t
}

// Width fixes the inner content width. Zero sizes to the content.
func (t *Toast) Width(w int) *Toast {
	if w < 0 {
		w = 0
	}
	t.width = w
	return t
}

// Style selects the frame glyph family.
func (t *Toast) Style(s glyphs.Style) *Toast {
	t.style = s
	return t
}

// Theme replaces the color palette.
func (t *Toast) Theme(th theme.Theme) *Toast {
	t.theme = th
	return t
}

// levelColor returns the theme hex color for the toast level.
func (t *Toast) levelColor() string {
	switch t.level {
	case Success:
		return t.theme.Success
	case Warning:
		return t.theme.Warning
	case Error:
		return t.theme.Error
	default:
		return t.theme.Info
	}
}

// border maps the glyph style onto a lipgloss border set.
func (t *Toast) border() lipgloss.Border {
	switch t.style {
	case glyphs.StyleASCII:
		return lipgloss.Border{
			Top: "-", Bottom: "-", Left: "|", Right: "|",
			TopLeft: "+", TopRight: "+", BottomLeft: "+", BottomRight: "+",
		}
	case glyphs.StyleDouble:
		return lipgloss.DoubleBorder()
	case glyphs.StyleHeavy:
		return lipgloss.ThickBorder()
	case glyphs.StyleUnicode:
		return lipgloss.NormalBorder()
	default:
		return lipgloss.RoundedBorder()
	}
}

// icon returns the level marker for the active glyph style.
func (t *Toast) icon() string {
	if t.style == glyphs.StyleASCII {
		return asciiIcons[t.level]
	}
	return levelIcons[t.level]
}

// Render returns the framed toast as a string. See RenderTo.
func (t *Toast) Render() string {
	color := lipgloss.Color(t.levelColor())

	header := t.icon()
	if t.title != "" {
		header += " " + lipgloss.NewStyle().Bold(true).Foreground(color).Render(t.title)
	}

	body := header
	if t.message != "" {
		body += "\n" + t.message
	}

	frame := lipgloss.NewStyle().
		Border(t.border()).
		BorderForeground(color).
		Padding(0, 1)
	if t.width > 0 {
		frame = frame.Width(t.width)
	}
	return frame.Render(body)
}

// RenderTo writes the framed toast to w with a trailing newline.
func (t *Toast) RenderTo(w io.Writer) error {
	out := t.Render()
	if !strings.HasSuffix(out, "\n") {
		out += "\n"
	}
	_, err := io.WriteString(w, out)
	return err
}
