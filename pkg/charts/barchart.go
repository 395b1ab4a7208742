package charts

import (
	"io"
	"math"
	"math/rand/v2"
	"strings"

	"gitlab.com/tinyland/lab/termviz/pkg/ansitext"
	"gitlab.com/tinyland/lab/termviz/pkg/glyphs"
)

// Bar is one labeled entry in a horizontal bar chart.
type Bar struct {
	Label string
	Value float64
	Color string // SGR sequence; empty uses the chart default
}

// ColorPicker supplies an SGR sequence for a single bar cell. Random-color
// mode consults it once per filled cell, so tests can inject a
// deterministic sequence instead of relying on process-global randomness.
type ColorPicker func() string

// BarChart renders labeled horizontal bars whose length is proportional to
// their value. Negative values are clamped to zero; they fall outside the
// supported input domain.
type BarChart struct {
	barWidth int
	bars     []Bar

	style        glyphs.Style
	title        string
	color        string
	showValues   bool
	randomColors bool
	pick         ColorPicker
}

// NewBarChart creates an empty chart whose longest bar spans barWidth
// cells.
func NewBarChart(barWidth int) *BarChart {
	if barWidth < 1 {
		barWidth = 1
	}
	return &BarChart{barWidth: barWidth, style: glyphs.StyleUnicode}
}

// Title sets the centered title line drawn above the bars.
func (bc *BarChart) Title(s string) *BarChart {
	bc.title = s
	return bc
}

// Style selects the glyph family for bar fills.
func (bc *BarChart) Style(s glyphs.Style) *BarChart {
	bc.style = s
	return bc
}

// Color sets the default SGR sequence for bars without their own color.
func (bc *BarChart) Color(seq string) *BarChart {
	bc.color = seq
	return bc
}

// ShowValues toggles the numeric value printed after each bar.
func (bc *BarChart) ShowValues(on bool) *BarChart {
	bc.showValues = on
	return bc
}

// RandomColors toggles independent per-cell color sampling from the fixed
// palette. A display-variety effect only; cell colors carry no meaning.
func (bc *BarChart) RandomColors(on bool) *BarChart {
	bc.randomColors = on
	return bc
}

// ColorPicker replaces the per-cell color source used in random-color
// mode.
func (bc *BarChart) ColorPicker(fn ColorPicker) *BarChart {
	bc.pick = fn
	return bc
}

// AddBar appends a labeled bar.
func (bc *BarChart) AddBar(label string, value float64) *BarChart {
	return bc.AddColoredBar(label, value, "")
}

// AddColoredBar appends a labeled bar with its own SGR color sequence.
func (bc *BarChart) AddColoredBar(label string, value float64, seq string) *BarChart {
	bc.bars = append(bc.bars, Bar{Label: label, Value: value, Color: seq})
	return bc
}

// Render returns the chart as a string. See RenderTo.
func (bc *BarChart) Render() string {
	return render(bc)
}

// RenderTo draws the bars into w, one line per bar: padded label, filled
// run, empty track, and optionally the raw value. All-zero values render
// every bar with zero filled cells rather than failing.
func (bc *BarChart) RenderTo(w io.Writer) error {
	if len(bc.bars) == 0 {
		return writeLines(w, []string{noData})
	}

	maxVal := 0.0
	labelW := 0
	for _, b := range bc.bars {
		if b.Value > maxVal {
			maxVal = b.Value
		}
		if n := ansitext.VisibleLen(b.Label); n > labelW {
			labelW = n
		}
	}

	pick := bc.pick
	if bc.randomColors && pick == nil {
		pick = func() string {
			return ansitext.PaletteColor(rand.IntN(len(ansitext.Palette)))
		}
	}

	set := glyphs.Bars(bc.style)
	var lines []string
	if bc.title != "" {
		total := labelW + 1 + bc.barWidth
		lines = append(lines, strings.TrimRight(ansitext.PadCenter(bc.title, total), " "))
	}

	for _, b := range bc.bars {
		filled := bc.barLength(b.Value, maxVal)

		var run string
		switch {
		case bc.randomColors:
			var sb strings.Builder
			for i := 0; i < filled; i++ {
				sb.WriteString(ansitext.Colorize(set.Filled, pick()))
			}
			run = sb.String()
		case b.Color != "":
			run = ansitext.Colorize(strings.Repeat(set.Filled, filled), b.Color)
		case bc.color != "":
			run = ansitext.Colorize(strings.Repeat(set.Filled, filled), bc.color)
		default:
			run = strings.Repeat(set.Filled, filled)
		}

		line := ansitext.PadRight(b.Label, labelW) + " " + run + strings.Repeat(set.Empty, bc.barWidth-filled)
		if bc.showValues {
			line += " " + formatValue(b.Value)
		}
		lines = append(lines, line)
	}
	return writeLines(w, lines)
}

// barLength maps a value onto filled cells. A non-positive maximum forces
// every bar to zero length; negative values clamp to zero.
func (bc *BarChart) barLength(value, maxVal float64) int {
	if maxVal <= 0 || value <= 0 {
		return 0
	}
	n := int(math.Round(value * float64(bc.barWidth) / maxVal))
	if n > bc.barWidth {
		n = bc.barWidth
	}
	return n
}
