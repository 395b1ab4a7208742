//go:build windows

package terminal

import "golang.org/x/sys/windows"

// utf8CodePage is the Windows code page identifier for UTF-8 (CP_UTF8).
const utf8CodePage = 65001

var (
	kernel32            = windows.NewLazySystemDLL("kernel32.dll")
	setConsoleOutputCP  = kernel32.NewProc("SetConsoleOutputCP")
)

// enableUTF8 switches the console output code page to UTF-8 so box-drawing
// and block glyphs render instead of mojibake.
func enableUTF8() error {
	r, _, err := setConsoleOutputCP.Call(uintptr(utf8CodePage))
	if r == 0 {
		return err
	}
	return nil
}
