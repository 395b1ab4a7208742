package ansitext

import (
	"fmt"
	"strconv"
	"strings"
)

// Fg produces an ANSI true-color foreground escape sequence from a hex
// color like "#ff5500" or "ff5500". Empty or malformed input yields "".
func Fg(hex string) string {
	r, g, b, ok := ParseHex(hex)
	if !ok {
		return ""
	}
	return fmt.Sprintf("\x1b[38;2;%d;%d;%dm", r, g, b)
}

// Bg produces an ANSI true-color background escape sequence from a hex
// color like "#ff5500" or "ff5500". Empty or malformed input yields "".
func Bg(hex string) string {
	r, g, b, ok := ParseHex(hex)
	if !ok {
		return ""
	}
	return fmt.Sprintf("\x1b[48;2;%d;%d;%dm", r, g, b)
}

// ParseHex parses "#RRGGBB" or "RRGGBB" into r, g, b components.
func ParseHex(hex string) (r, g, b uint8, ok bool) {
	hex = strings.TrimPrefix(hex, "#")
	if len(hex) != 6 {
		return 0, 0, 0, false
	}
	rv, err := strconv.ParseUint(hex[0:2], 16, 8)
	if err != nil {
		return 0, 0, 0, false
	}
	gv, err := strconv.ParseUint(hex[2:4], 16, 8)
	if err != nil {
		return 0, 0, 0, false
	}
	bv, err := strconv.ParseUint(hex[4:6], 16, 8)
	if err != nil {
		return 0, 0, 0, false
	}
	return uint8(rv), uint8(gv), uint8(bv), true
}
