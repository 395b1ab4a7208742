package theme

// registerBuiltins registers all built-in themes in the registry.
func registerBuiltins() {
	for _, t := range []Theme{
		defaultTheme(),
		gruvboxTheme(),
		nordTheme(),
	} {
		Register(t)
	}
}

// defaultTheme returns the dark neutral theme with purple accent.
func defaultTheme() Theme {
	return Theme{
		Name: "default",

		Border:  "#3e3e3e",
		Header:  "#d4d4d4",
		RowEven: "#c0c0c0",
		RowOdd:  "#8a8a8a",

		Title:     "#d4d4d4",
		ChartLine: "#7C3AED",
		ChartGrid: "#3e3e3e",
		BarFill:   "#5b21b6",
		Legend:    "#6b6b6b",

		Info:    "#61afef",
		Success: "#4ec970",
		Warning: "#e5c07b",
		Error:   "#e06c75",
	}
}

// gruvboxTheme returns the warm retro Gruvbox theme.
func gruvboxTheme() Theme {
	return Theme{
		Name: "gruvbox",

		Border:  "#504945",
		Header:  "#ebdbb2",
		RowEven: "#d5c4a1",
		RowOdd:  "#928374",

		Title:     "#ebdbb2",
		ChartLine: "#fe8019",
		ChartGrid: "#504945",
		BarFill:   "#d65d0e",
		Legend:    "#928374",

		Info:    "#83a598",
		Success: "#b8bb26",
		Warning: "#fabd2f",
		Error:   "#fb4934",
	}
}

// nordTheme returns the arctic blue Nord theme.
func nordTheme() Theme {
	return Theme{
		Name: "nord",

		Border:  "#3b4252",
		Header:  "#eceff4",
		RowEven: "#d8dee9",
		RowOdd:  "#4c566a",

		Title:     "#eceff4",
		ChartLine: "#88c0d0",
		ChartGrid: "#3b4252",
		BarFill:   "#5e81ac",
		Legend:    "#4c566a",

		Info:    "#81a1c1",
		Success: "#a3be8c",
		Warning: "#ebcb8b",
		Error:   "#bf616a",
	}
}
