// Package terminal is the host-side glue between the rendering core and
// the console: one-time UTF-8 output setup, TTY detection, and color
// capability probing. The renderers themselves never touch the
// environment; a host calls Setup once before the first Unicode render.
package terminal

import (
	"os"
	"sync"

	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
)

var setupOnce sync.Once

// Setup switches the console to UTF-8 output where the platform requires
// it (a no-op elsewhere). Safe to call more than once; only the first call
// takes effect.
func Setup() error {
	var err error
	setupOnce.Do(func() {
		err = enableUTF8()
	})
	return err
}

// IsTTY reports whether f is attached to a terminal.
func IsTTY(f *os.File) bool {
	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// ColorProfile probes the terminal's color support.
func ColorProfile() termenv.Profile {
	return termenv.ColorProfile()
}

// ColorEnabled reports whether stdout is a terminal with any color
// support at all.
func ColorEnabled() bool {
	return IsTTY(os.Stdout) && ColorProfile() != termenv.Ascii
}
