package clipboard

import "github.com/atotto/clipboard"

// System is the operating system clipboard.
type System interface {
	ReadText() (string, error)
	WriteText(s string) error
}

// SystemClipboard talks to the OS clipboard through xclip/xsel/wl-clipboard,
// pbcopy or the Windows API.
type SystemClipboard struct{}

func (SystemClipboard) ReadText() (string, error) { return clipboard.ReadAll() }

func (SystemClipboard) WriteText(s string) error { return clipboard.WriteAll(s) }

// SystemSupported reports whether a system clipboard backend is available.
func SystemSupported() bool { return !clipboard.Unsupported }
