// Package theme provides named color palettes for the termviz widgets:
// table chrome, chart lines, bar fills, and toast levels. Themes are plain
// hex-color tables; widgets convert them to escape sequences at render
// time.
package theme

import (
	"sort"
	"strings"
	"sync"
)

// Theme defines the complete color palette for the toolkit. All fields are
// hex colors like "#1a1b26".
type Theme struct {
	Name string

	// Table colors
	Border  string // border and junction glyphs
	Header  string // header row text
	RowEven string // even data rows (0-indexed)
	RowOdd  string // odd data rows

	// Chart colors
	Title     string // chart titles and axis captions
	ChartLine string // line segments and markers
	ChartGrid string // gridline overlay
	BarFill   string // default bar and segment fill
	Legend    string // legend text

	// Toast levels
	Info    string
	Success string
	Warning string
	Error   string
}

var (
	mu       sync.RWMutex
	registry = map[string]Theme{}
)

func init() {
	registerBuiltins()
}

// Get returns a named theme, falling back to the default when the name is
// unknown.
func Get(name string) Theme {
	mu.RLock()
	defer mu.RUnlock()
	if t, ok := registry[strings.ToLower(name)]; ok {
		return t
	}
	return registry["default"]
}

// Default returns the default theme.
func Default() Theme {
	return Get("default")
}

// Names returns all registered theme names sorted alphabetically.
func Names() []string {
	mu.RLock()
	defer mu.RUnlock()
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Register adds a theme under its lowercase name, replacing any existing
// entry.
func Register(t Theme) {
	mu.Lock()
	defer mu.Unlock()
	registry[strings.ToLower(t.Name)] = t
}
