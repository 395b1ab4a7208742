package theme

import (
	"fmt"
	"os"
	"regexp"

	"github.com/BurntSushi/toml"
)

// tomlTheme is the TOML-serializable representation of a Theme.
type tomlTheme struct {
	Name  string     `toml:"name"`
	Table tomlTable  `toml:"table"`
	Chart tomlChart  `toml:"chart"`
	Toast tomlLevels `toml:"toast"`
}

type tomlTable struct {
	Border  string `toml:"border"`
	Header  string `toml:"header"`
	RowEven string `toml:"row_even"`
	RowOdd  string `toml:"row_odd"`
}

type tomlChart struct {
	Title  string `toml:"title"`
	Line   string `toml:"line"`
	Grid   string `toml:"grid"`
	Bar    string `toml:"bar"`
	Legend string `toml:"legend"`
}

type tomlLevels struct {
	Info    string `toml:"info"`
	Success string `toml:"success"`
	Warning string `toml:"warning"`
	Error   string `toml:"error"`
}

var hexColorRegex = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

// LoadFromTOML parses a TOML theme definition from raw bytes.
func LoadFromTOML(data []byte) (Theme, error) {
	var tt tomlTheme
	if err := toml.Unmarshal(data, &tt); err != nil {
		return Theme{}, fmt.Errorf("theme: parse TOML: %w", err)
	}

	t := Theme{
		Name: tt.Name,

		Border:  tt.Table.Border,
		Header:  tt.Table.Header,
		RowEven: tt.Table.RowEven,
		RowOdd:  tt.Table.RowOdd,

		Title:     tt.Chart.Title,
		ChartLine: tt.Chart.Line,
		ChartGrid: tt.Chart.Grid,
		BarFill:   tt.Chart.Bar,
		Legend:    tt.Chart.Legend,

		Info:    tt.Toast.Info,
		Success: tt.Toast.Success,
		Warning: tt.Toast.Warning,
		Error:   tt.Toast.Error,
	}

	if err := validate(t); err != nil {
		return Theme{}, err
	}
	return t, nil
}

// LoadFile loads, validates, and registers a theme from a TOML file.
func LoadFile(path string) (Theme, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Theme{}, fmt.Errorf("theme: read %s: %w", path, err)
	}
	t, err := LoadFromTOML(data)
	if err != nil {
		return Theme{}, err
	}
	Register(t)
	return t, nil
}

// validate rejects themes with a missing name or malformed colors. Empty
// color fields are allowed; widgets skip coloring for them.
func validate(t Theme) error {
	if t.Name == "" {
		return fmt.Errorf("theme: missing name")
	}
	colors := map[string]string{
		"table.border":   t.Border,
		"table.header":   t.Header,
		"table.row_even": t.RowEven,
		"table.row_odd":  t.RowOdd,
		"chart.title":    t.Title,
		"chart.line":     t.ChartLine,
		"chart.grid":     t.ChartGrid,
		"chart.bar":      t.BarFill,
		"chart.legend":   t.Legend,
		"toast.info":     t.Info,
		"toast.success":  t.Success,
		"toast.warning":  t.Warning,
		"toast.error":    t.Error,
	}
	for field, c := range colors {
		if c == "" {
			continue
		}
		if !hexColorRegex.MatchString(c) {
			return fmt.Errorf("theme %s: %s: invalid hex color %q", t.Name, field, c)
		}
	}
	return nil
}
