// Package glyphs holds the per-widget lookup tables that map a visual
// style to concrete border, line, bar, and tree characters. Renderers never
// hard-code box-drawing characters; they resolve a set here so ASCII and
// Unicode output stay interchangeable.
package glyphs

// Style selects which family of characters a renderer uses.
type Style int

const (
	// StyleASCII uses plain 7-bit characters only.
	StyleASCII Style = iota
	// StyleUnicode uses single-line box-drawing characters.
	StyleUnicode
	// StyleRounded uses single-line characters with rounded corners.
	StyleRounded
	// StyleDouble uses double-line box-drawing characters.
	StyleDouble
	// StyleHeavy uses heavy (thick) box-drawing characters.
	StyleHeavy
)

// styleNames maps Style values to human-readable strings.
var styleNames = [...]string{
	StyleASCII:   "ascii",
	StyleUnicode: "unicode",
	StyleRounded: "rounded",
	StyleDouble:  "double",
	StyleHeavy:   "heavy",
}

// String returns the lowercase name of the style.
func (s Style) String() string {
	if int(s) >= 0 && int(s) < len(styleNames) {
		return styleNames[s]
	}
	return "unknown"
}

// ParseStyle resolves a style name from configuration input. Unknown names
// fall back to StyleUnicode.
func ParseStyle(name string) Style {
	for i, n := range styleNames {
		if n == name {
			return Style(i)
		}
	}
	return StyleUnicode
}

// BorderSet holds the characters that frame a table or box: four corners,
// the two edges, and the five junctions.
type BorderSet struct {
	TopLeft     string
	TopRight    string
	BottomLeft  string
	BottomRight string
	Horizontal  string
	Vertical    string
	LeftTee     string
	RightTee    string
	TopTee      string
	BottomTee   string
	Cross       string
}

var borderSets = map[Style]BorderSet{
	StyleASCII: {
		TopLeft: "+", TopRight: "+", BottomLeft: "+", BottomRight: "+",
		Horizontal: "-", Vertical: "|",
		LeftTee: "+", RightTee: "+", TopTee: "+", BottomTee: "+", Cross: "+",
	},
	StyleUnicode: {
		TopLeft: "┌", TopRight: "┐",
		BottomLeft: "└", BottomRight: "┘",
		Horizontal: "─", Vertical: "│",
		LeftTee: "├", RightTee: "┤",
		TopTee: "┬", BottomTee: "┴", Cross: "┼",
	},
	StyleRounded: {
		TopLeft: "╭", TopRight: "╮",
		BottomLeft: "╰", BottomRight: "╯",
		Horizontal: "─", Vertical: "│",
		LeftTee: "├", RightTee: "┤",
		TopTee: "┬", BottomTee: "┴", Cross: "┼",
	},
	StyleDouble: {
		TopLeft: "╔", TopRight: "╗",
		BottomLeft: "╚", BottomRight: "╝",
		Horizontal: "═", Vertical: "║",
		LeftTee: "╠", RightTee: "╣",
		TopTee: "╦", BottomTee: "╩", Cross: "╬",
	},
	StyleHeavy: {
		TopLeft: "┏", TopRight: "┓",
		BottomLeft: "┗", BottomRight: "┛",
		Horizontal: "━", Vertical: "┃",
		LeftTee: "┣", RightTee: "┫",
		TopTee: "┳", BottomTee: "┻", Cross: "╋",
	},
}

// Borders returns the border set for s, falling back to StyleUnicode for
// styles without a dedicated set.
func Borders(s Style) BorderSet {
	if set, ok := borderSets[s]; ok {
		return set
	}
	return borderSets[StyleUnicode]
}

// LineSet holds the characters a canvas uses when rasterizing line
// segments and point markers.
type LineSet struct {
	Horizontal rune // |dx| > |dy| steps
	Vertical   rune // |dy| > |dx| steps
	DiagUp     rune // dx and dy of opposite sign (screen coordinates)
	DiagDown   rune // dx and dy of matching sign
	Point      rune // explicit data-point marker
	GridH      rune // horizontal gridline
	GridV      rune // vertical gridline
}

var lineSets = map[Style]LineSet{
	StyleASCII: {
		Horizontal: '-', Vertical: '|',
		DiagUp: '/', DiagDown: '\\',
		Point: '*', GridH: '.', GridV: '.',
	},
	StyleUnicode: {
		Horizontal: '─', Vertical: '│',
		DiagUp: '╱', DiagDown: '╲',
		Point: '●', GridH: '┄', GridV: '┆',
	},
	StyleHeavy: {
		Horizontal: '━', Vertical: '┃',
		DiagUp: '╱', DiagDown: '╲',
		Point: '◉', GridH: '┅', GridV: '┇',
	},
}

// Lines returns the line set for s. Rounded and double styles have no
// distinct line characters and share the Unicode set.
func Lines(s Style) LineSet {
	if set, ok := lineSets[s]; ok {
		return set
	}
	return lineSets[StyleUnicode]
}

// BarSet holds the fill characters for horizontal bars.
type BarSet struct {
	Filled string
	Empty  string
}

var barSets = map[Style]BarSet{
	StyleASCII:   {Filled: "#", Empty: "."},
	StyleUnicode: {Filled: "█", Empty: "░"},
	StyleHeavy:   {Filled: "▉", Empty: "░"},
}

// Bars returns the bar fill set for s, defaulting to the Unicode blocks.
func Bars(s Style) BarSet {
	if set, ok := barSets[s]; ok {
		return set
	}
	return barSets[StyleUnicode]
}

// TreeSet holds the connector prefixes used by the tree renderer. Each
// entry is exactly 4 cells wide so sibling columns stay aligned.
type TreeSet struct {
	Branch     string // child with following siblings
	LastBranch string // final child at a level
	Vertical   string // continuation under an open branch
	Indent     string // continuation under a closed branch
}

var treeSets = map[Style]TreeSet{
	StyleASCII: {
		Branch:     "|-- ",
		LastBranch: "`-- ",
		Vertical:   "|   ",
		Indent:     "    ",
	},
	StyleUnicode: {
		Branch:     "├── ",
		LastBranch: "└── ",
		Vertical:   "│   ",
		Indent:     "    ",
	},
	StyleHeavy: {
		Branch:     "┣━━ ",
		LastBranch: "┗━━ ",
		Vertical:   "┃   ",
		Indent:     "    ",
	},
}

// Trees returns the tree connector set for s, defaulting to Unicode.
func Trees(s Style) TreeSet {
	if set, ok := treeSets[s]; ok {
		return set
	}
	return treeSets[StyleUnicode]
}

// SparkBlocks is the 8-level block ramp used by sparklines, lowest first.
var SparkBlocks = [8]rune{'▁', '▂', '▃', '▄', '▅', '▆', '▇', '█'}
