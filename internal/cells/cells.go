// Package cells measures text in terminal cells.
package cells

import (
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

// Width returns the number of terminal cells text occupies.
func Width(text string) int {
	if text == "" {
		return 0
	}
	return uniseg.StringWidth(text)
}

// RuneWidth returns the cell width of r drawn at visual column col. Tabs
// advance to the next multiple of tabWidth. Control runes and zero-width
// runes take no cells.
func RuneWidth(r rune, col, tabWidth int) int {
	if r == '\t' {
		return TabAdvance(col, tabWidth)
	}
	w := runewidth.RuneWidth(r)
	if w < 0 {
		return 0
	}
	return w
}

// TabAdvance returns the cells a tab at visual column col spans.
func TabAdvance(col, tabWidth int) int {
	if tabWidth <= 0 {
		tabWidth = 4
	}
	if col < 0 {
		col = 0
	}
	return tabWidth - col%tabWidth
}

// Truncate shortens text to at most width cells, ending with tail when cut.
func Truncate(text string, width int, tail string) string {
	if width <= 0 {
		return ""
	}
	if Width(text) <= width {
		return text
	}
	return runewidth.Truncate(text, width, tail)
}

// PadRight fills text with spaces up to width cells.
func PadRight(text string, width int) string {
	w := Width(text)
	if w >= width {
		return text
	}
	return text + strings.Repeat(" ", width-w)
}

// Fit truncates or pads text to exactly width cells.
func Fit(text string, width int) string {
	return PadRight(Truncate(text, width, "…"), width)
}
