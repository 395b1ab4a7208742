package ansitext

// Raw SGR escape sequences emitted by the renderers. The set is fixed:
// reset, bold, the 8 standard foreground colors, their bright variants,
// and the matching backgrounds. Values follow the ANSI escape code table.
const (
	Reset = "\x1b[0m"
	Bold  = "\x1b[1m"

	FgBlack   = "\x1b[30m"
	FgRed     = "\x1b[31m"
	FgGreen   = "\x1b[32m"
	FgYellow  = "\x1b[33m"
	FgBlue    = "\x1b[34m"
	FgMagenta = "\x1b[35m"
	FgCyan    = "\x1b[36m"
	FgWhite   = "\x1b[37m"

	FgBrightBlack   = "\x1b[90m"
	FgBrightRed     = "\x1b[91m"
	FgBrightGreen   = "\x1b[92m"
	FgBrightYellow  = "\x1b[93m"
	FgBrightBlue    = "\x1b[94m"
	FgBrightMagenta = "\x1b[95m"
	FgBrightCyan    = "\x1b[96m"
	FgBrightWhite   = "\x1b[97m"

	BgBlack   = "\x1b[40m"
	BgRed     = "\x1b[41m"
	BgGreen   = "\x1b[42m"
	BgYellow  = "\x1b[43m"
	BgBlue    = "\x1b[44m"
	BgMagenta = "\x1b[45m"
	BgCyan    = "\x1b[46m"
	BgWhite   = "\x1b[47m"

	BgBrightBlack   = "\x1b[100m"
	BgBrightRed     = "\x1b[101m"
	BgBrightGreen   = "\x1b[102m"
	BgBrightYellow  = "\x1b[103m"
	BgBrightBlue    = "\x1b[104m"
	BgBrightMagenta = "\x1b[105m"
	BgBrightCyan    = "\x1b[106m"
	BgBrightWhite   = "\x1b[107m"
)

// Palette is the ordering used when a color is selected by index: the 8
// standard foregrounds followed by their bright variants. Black is skipped
// from the standard run so indexed colors stay readable on dark terminals.
var Palette = []string{
	FgRed, FgGreen, FgYellow, FgBlue, FgMagenta, FgCyan, FgWhite,
	FgBrightRed, FgBrightGreen, FgBrightYellow, FgBrightBlue,
	FgBrightMagenta, FgBrightCyan, FgBrightWhite,
}

// PaletteColor returns the palette entry for i, wrapping out-of-range
// indices with modulo rather than failing.
func PaletteColor(i int) string {
	if len(Palette) == 0 {
		return ""
	}
	i %= len(Palette)
	if i < 0 {
		i += len(Palette)
	}
	return Palette[i]
}

// Colorize wraps s in the given SGR sequence followed by a reset. An empty
// sequence returns s unchanged.
func Colorize(s, seq string) string {
	if seq == "" {
		return s
	}
	return seq + s + Reset
}
