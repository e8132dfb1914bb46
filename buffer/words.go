package buffer

import "unicode"

// IsWordRune reports whether r belongs to the word-character class: Unicode
// letters and numbers. Everything else, punctuation included, is a boundary.
func IsWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsNumber(r)
}

func isSpaceRune(r rune) bool {
	return unicode.IsSpace(r)
}

// WordAt returns the half-open column span [start, end) of the run of word
// runes touching col on row. ok is false when col is at or past the end of the
// line or no word run touches it.
func (b *Buffer) WordAt(p Pos) (start, end int, ok bool) {
	if p.Row < 0 || p.Row >= len(b.lines) {
		return 0, 0, false
	}
	line := b.lines[p.Row]
	if p.Col < 0 || p.Col >= len(line) {
		return 0, 0, false
	}

	start, end = p.Col, p.Col
	for start > 0 && IsWordRune(line[start-1]) {
		start--
	}
	for end < len(line) && IsWordRune(line[end]) {
		end++
	}
	if start == end {
		return 0, 0, false
	}
	return start, end, true
}
