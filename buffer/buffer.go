package buffer

import "strings"

type Options struct {
	// Storage performs file I/O for LoadFile and Save. Default: OSStorage.
	Storage Storage
}

// Buffer is the document: an ordered sequence of lines, never fewer than one.
//
// Buffer exclusively owns its line storage. Cursor, Selection and the
// clipboard/search managers borrow it through the methods below and never
// hold on to line slices.
type Buffer struct {
	lines    [][]rune
	path     string
	modified bool
	version  uint64

	opt Options
}

func New(text string, opt Options) *Buffer {
	if opt.Storage == nil {
		opt.Storage = OSStorage{}
	}
	return &Buffer{
		lines: splitLines(text),
		opt:   opt,
	}
}

// Load replaces all lines with content split on line breaks and clears the
// modified flag.
func (b *Buffer) Load(content string) {
	b.lines = splitLines(content)
	b.modified = false
	b.version++
}

// LoadFile reads path through the Storage collaborator and loads it.
// On failure the buffer is unchanged and an *IOError is returned.
func (b *Buffer) LoadFile(path string) error {
	data, err := b.opt.Storage.ReadFile(path)
	if err != nil {
		return &IOError{Op: "load", Path: path, Err: err}
	}
	b.Load(string(data))
	b.path = path
	return nil
}

// Save writes the lines joined by '\n' (no trailing newline) to Path.
func (b *Buffer) Save() error {
	if b.path == "" {
		return ErrNoPath
	}
	return b.writeTo(b.path)
}

// SaveAs writes to path and adopts it as the target once the write succeeds.
func (b *Buffer) SaveAs(path string) error {
	if path == "" {
		return ErrNoPath
	}
	if err := b.writeTo(path); err != nil {
		return err
	}
	b.path = path
	return nil
}

func (b *Buffer) writeTo(path string) error {
	if err := b.opt.Storage.WriteFile(path, []byte(b.Text())); err != nil {
		return &IOError{Op: "save", Path: path, Err: err}
	}
	b.modified = false
	return nil
}

// Path returns the target file name, or "" if none is known.
func (b *Buffer) Path() string { return b.path }

func (b *Buffer) SetPath(path string) { b.path = path }

func (b *Buffer) Modified() bool { return b.modified }

func (b *Buffer) SetModified(modified bool) { b.modified = modified }

// Version increases on every text mutation, including Load.
func (b *Buffer) Version() uint64 { return b.version }

func (b *Buffer) Text() string {
	var sb strings.Builder
	for i, line := range b.lines {
		if i > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString(string(line))
	}
	return sb.String()
}

func (b *Buffer) LineCount() int { return len(b.lines) }

// Line returns the text of row, or "" when row is out of range.
func (b *Buffer) Line(row int) string {
	if row < 0 || row >= len(b.lines) {
		return ""
	}
	return string(b.lines[row])
}

// LineLen returns the rune length of row, or 0 when row is out of range.
func (b *Buffer) LineLen(row int) int {
	if row < 0 || row >= len(b.lines) {
		return 0
	}
	return len(b.lines[row])
}

// IsEmpty reports whether the document is a single empty line.
func (b *Buffer) IsEmpty() bool {
	return len(b.lines) == 1 && len(b.lines[0]) == 0
}

// InsertChar inserts ch into row at col. Rows past the end are created as
// empty lines first. A line-break rune splits the line instead.
func (b *Buffer) InsertChar(row, col int, ch rune) {
	if ch == '\n' || ch == '\r' {
		b.InsertLine(row, col)
		return
	}
	if row < 0 {
		row = 0
	}
	for len(b.lines) <= row {
		b.lines = append(b.lines, nil)
	}

	line := b.lines[row]
	col = clampInt(col, 0, len(line))
	next := make([]rune, 0, len(line)+1)
	next = append(next, line[:col]...)
	next = append(next, ch)
	next = append(next, line[col:]...)
	b.lines[row] = next
	b.touch()
}

// DeleteChar removes the rune at (row, col). It reports false and changes
// nothing when there is no rune there.
func (b *Buffer) DeleteChar(row, col int) bool {
	if row < 0 || row >= len(b.lines) {
		return false
	}
	line := b.lines[row]
	if col < 0 || col >= len(line) {
		return false
	}
	b.lines[row] = append(line[:col:col], line[col+1:]...)
	b.touch()
	return true
}

// Backspace deletes the rune before (row, col). At column 0 it joins the row
// onto the previous one and returns the join point. At (0,0) it does nothing.
func (b *Buffer) Backspace(row, col int) Pos {
	p := b.clampPos(Pos{Row: row, Col: col})

	if p.Col > 0 {
		line := b.lines[p.Row]
		b.lines[p.Row] = append(line[:p.Col-1:p.Col-1], line[p.Col:]...)
		b.touch()
		return Pos{Row: p.Row, Col: p.Col - 1}
	}
	if p.Row == 0 {
		return p
	}

	prev := b.lines[p.Row-1]
	joinCol := len(prev)
	joined := make([]rune, 0, len(prev)+len(b.lines[p.Row]))
	joined = append(joined, prev...)
	joined = append(joined, b.lines[p.Row]...)
	b.lines[p.Row-1] = joined
	b.lines = append(b.lines[:p.Row], b.lines[p.Row+1:]...)
	b.touch()
	return Pos{Row: p.Row - 1, Col: joinCol}
}

// InsertLine splits row at col; the tail becomes a new line at row+1.
// It returns (row+1, 0). Past the last row it appends an empty line.
func (b *Buffer) InsertLine(row, col int) Pos {
	if row >= len(b.lines) {
		b.lines = append(b.lines, nil)
		b.touch()
		return Pos{Row: len(b.lines) - 1, Col: 0}
	}
	if row < 0 {
		row = 0
	}

	line := b.lines[row]
	col = clampInt(col, 0, len(line))
	head := append([]rune(nil), line[:col]...)
	tail := append([]rune(nil), line[col:]...)

	b.lines = append(b.lines, nil)
	copy(b.lines[row+2:], b.lines[row+1:])
	b.lines[row] = head
	b.lines[row+1] = tail
	b.touch()
	return Pos{Row: row + 1, Col: 0}
}

// Clamp forces p into the current document bounds.
func (b *Buffer) Clamp(p Pos) Pos { return b.clampPos(p) }

func (b *Buffer) touch() {
	b.modified = true
	b.version++
}

func (b *Buffer) lineLen(row int) int {
	if row < 0 || row >= len(b.lines) {
		return 0
	}
	return len(b.lines[row])
}

func (b *Buffer) clampPos(p Pos) Pos {
	return ClampPos(p, len(b.lines), b.lineLen)
}

// splitLines splits text on "\n", "\r\n" and "\r". A single trailing line
// terminator does not start a new line.
func splitLines(text string) [][]rune {
	text = normalizeNewlines(text)
	text = strings.TrimSuffix(text, "\n")
	parts := strings.Split(text, "\n")
	lines := make([][]rune, 0, len(parts))
	for _, s := range parts {
		lines = append(lines, []rune(s))
	}
	if len(lines) == 0 {
		lines = append(lines, nil)
	}
	return lines
}

func normalizeNewlines(s string) string {
	if !strings.ContainsRune(s, '\r') {
		return s
	}
	s = strings.ReplaceAll(s, "\r\n", "\n")
	return strings.ReplaceAll(s, "\r", "\n")
}
