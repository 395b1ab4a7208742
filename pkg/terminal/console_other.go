//go:build !windows

package terminal

// enableUTF8 is a no-op: non-Windows consoles speak UTF-8 already.
func enableUTF8() error {
	return nil
}
