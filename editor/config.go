package editor

import (
	"log/slog"

	"github.com/iw2rmb/quill/buffer"
	"github.com/iw2rmb/quill/clipboard"
	"github.com/iw2rmb/quill/highlight"
	"github.com/iw2rmb/quill/search"
)

// Config configures the editor Model.
type Config struct {
	// Buffer to edit. When nil, a new buffer is created from Text.
	Buffer *buffer.Buffer
	Text   string

	// Rendering options.
	ShowLineNums bool
	TabWidth     int
	Style        Style
	KeyMap       KeyMap

	// Tokenizer styles lines. When nil one is picked from the buffer path.
	Tokenizer highlight.Tokenizer

	// System is mirrored by the internal clipboard. Nil keeps it in-process.
	System clipboard.System

	Search        search.Options
	PreviewLength int

	// OnChange is called after a key changes the document.
	OnChange func(ChangeEvent)

	Logger *slog.Logger
}

func (c Config) withDefaults() Config {
	if c.TabWidth <= 0 {
		c.TabWidth = 4
	}
	if c.PreviewLength <= 0 {
		c.PreviewLength = 50
	}
	if c.KeyMap.isZero() {
		c.KeyMap = DefaultKeyMap()
	}
	return c
}
