package buffer

import "strings"

// Slice returns the text of r as fragments, one per touched row: the first
// fragment starts at r.Start.Col, middle rows are whole, and the last fragment
// ends at r.End.Col. r is clamped and normalized first.
func (b *Buffer) Slice(r Range) []string {
	r = NormalizeRange(ClampRange(r, len(b.lines), b.lineLen))
	if r.SingleLine() {
		return []string{string(b.lines[r.Start.Row][r.Start.Col:r.End.Col])}
	}

	out := make([]string, 0, r.End.Row-r.Start.Row+1)
	out = append(out, string(b.lines[r.Start.Row][r.Start.Col:]))
	for row := r.Start.Row + 1; row < r.End.Row; row++ {
		out = append(out, string(b.lines[row]))
	}
	out = append(out, string(b.lines[r.End.Row][:r.End.Col]))
	return out
}

// TextIn returns the text of r with rows joined by '\n'.
func (b *Buffer) TextIn(r Range) string {
	return strings.Join(b.Slice(r), "\n")
}

// SpliceLine replaces columns [startCol, endCol) of row with text and returns
// the position just after the inserted text. Out-of-range rows are ignored.
func (b *Buffer) SpliceLine(row, startCol, endCol int, text string) Pos {
	if row < 0 || row >= len(b.lines) {
		return Pos{Row: row, Col: startCol}
	}
	n := len(b.lines[row])
	startCol = clampInt(startCol, 0, n)
	endCol = clampInt(endCol, startCol, n)
	return b.replaceRange(Range{
		Start: Pos{Row: row, Col: startCol},
		End:   Pos{Row: row, Col: endCol},
	}, text)
}

// InsertText inserts text (which may contain line breaks) at p and returns
// the position just after it.
func (b *Buffer) InsertText(p Pos, text string) Pos {
	return b.replaceRange(Range{Start: p, End: p}, text)
}

// DeleteRange removes the span r. On multiple rows the start row keeps its
// prefix and receives the end row's suffix; the rows after it through the end
// row are removed.
func (b *Buffer) DeleteRange(r Range) Pos {
	return b.replaceRange(r, "")
}

// InsertLines inserts whole lines before row, pushing existing lines down.
// row may equal LineCount to append.
func (b *Buffer) InsertLines(row int, lines []string) {
	if len(lines) == 0 {
		return
	}
	row = clampInt(row, 0, len(b.lines))

	ins := make([][]rune, 0, len(lines))
	for _, s := range lines {
		for _, part := range strings.Split(normalizeNewlines(s), "\n") {
			ins = append(ins, []rune(part))
		}
	}

	out := make([][]rune, 0, len(b.lines)+len(ins))
	out = append(out, b.lines[:row]...)
	out = append(out, ins...)
	out = append(out, b.lines[row:]...)
	b.lines = out
	b.touch()
}

// RemoveLine removes row. The only remaining line is cleared instead, so the
// document never drops below one line. It reports false for rows out of range.
func (b *Buffer) RemoveLine(row int) bool {
	if row < 0 || row >= len(b.lines) {
		return false
	}
	if len(b.lines) == 1 {
		b.lines[0] = nil
	} else {
		b.lines = append(b.lines[:row], b.lines[row+1:]...)
	}
	b.touch()
	return true
}

func (b *Buffer) replaceRange(r Range, text string) Pos {
	r = NormalizeRange(ClampRange(r, len(b.lines), b.lineLen))
	if r.IsEmpty() && text == "" {
		return r.Start
	}

	startRow, startCol := r.Start.Row, r.Start.Col
	endRow, endCol := r.End.Row, r.End.Col

	prefix := b.lines[startRow][:startCol]
	suffix := b.lines[endRow][endCol:]

	parts := strings.Split(normalizeNewlines(text), "\n")
	repl := make([][]rune, 0, len(parts))
	var next Pos
	if len(parts) == 1 {
		ins := []rune(parts[0])
		line := make([]rune, 0, len(prefix)+len(ins)+len(suffix))
		line = append(line, prefix...)
		line = append(line, ins...)
		line = append(line, suffix...)
		repl = append(repl, line)
		next = Pos{Row: startRow, Col: len(prefix) + len(ins)}
	} else {
		first := make([]rune, 0, len(prefix)+len(parts[0]))
		first = append(first, prefix...)
		first = append(first, []rune(parts[0])...)
		repl = append(repl, first)

		for i := 1; i < len(parts)-1; i++ {
			repl = append(repl, []rune(parts[i]))
		}

		lastPart := []rune(parts[len(parts)-1])
		last := make([]rune, 0, len(lastPart)+len(suffix))
		last = append(last, lastPart...)
		last = append(last, suffix...)
		repl = append(repl, last)

		next = Pos{Row: startRow + len(parts) - 1, Col: len(lastPart)}
	}

	before := b.lines[:startRow]
	after := b.lines[endRow+1:]
	out := make([][]rune, 0, len(before)+len(repl)+len(after))
	out = append(out, before...)
	out = append(out, repl...)
	out = append(out, after...)

	b.lines = out
	b.touch()
	return next
}
