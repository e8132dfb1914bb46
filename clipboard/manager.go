package clipboard

import (
	"fmt"
	"strings"

	"github.com/iw2rmb/quill/buffer"
)

// Manager is the editor clipboard.
type Manager struct {
	fragments []string
	lineMode  bool

	sys      System
	mirrored string
	sysErr   error
}

// New returns a Manager. sys may be nil to keep the clipboard process-local.
func New(sys System) *Manager {
	return &Manager{sys: sys}
}

// Fragments returns a copy of the captured fragments.
func (m *Manager) Fragments() []string {
	return append([]string(nil), m.fragments...)
}

// LineMode reports whether the fragments are whole lines.
func (m *Manager) LineMode() bool { return m.lineMode }

func (m *Manager) IsEmpty() bool { return len(m.fragments) == 0 }

// SystemErr returns the last error from the System bridge, if any.
func (m *Manager) SystemErr() error { return m.sysErr }

// Set replaces the clipboard content directly.
func (m *Manager) Set(fragments []string, lineMode bool) {
	m.fragments = append([]string(nil), fragments...)
	m.lineMode = lineMode
	m.mirror()
}

// CopySpan captures r (normalized start <= end) as a character span.
func (m *Manager) CopySpan(b *buffer.Buffer, r buffer.Range) {
	m.Set(b.Slice(r), false)
}

// CopyLine captures row as a whole line.
func (m *Manager) CopyLine(b *buffer.Buffer, row int) {
	m.Set([]string{b.Line(row)}, true)
}

// CopyWordAt captures the word touching p. It reports false and leaves the
// clipboard untouched when there is no word there.
func (m *Manager) CopyWordAt(b *buffer.Buffer, p buffer.Pos) bool {
	start, end, ok := b.WordAt(p)
	if !ok {
		return false
	}
	m.CopySpan(b, buffer.Range{
		Start: buffer.Pos{Row: p.Row, Col: start},
		End:   buffer.Pos{Row: p.Row, Col: end},
	})
	return true
}

// CutSpan copies r and deletes it from b.
func (m *Manager) CutSpan(b *buffer.Buffer, r buffer.Range) {
	m.CopySpan(b, r)
	b.DeleteRange(r)
	b.SetModified(true)
}

// CutLine copies row and removes it. The only remaining line is cleared
// instead of removed.
func (m *Manager) CutLine(b *buffer.Buffer, row int) {
	m.CopyLine(b, row)
	b.RemoveLine(row)
	b.SetModified(true)
}

// Paste inserts the clipboard at p and returns the position after the pasted
// content. An empty clipboard returns p unchanged.
//
// p is clamped to the document first. Whole lines are inserted above p's row
// and the result is the start of that row, now below them. A single fragment is spliced into the row at p. Several
// fragments split the row at p: the first fragment ends the head, the last
// one starts the tail.
func (m *Manager) Paste(b *buffer.Buffer, p buffer.Pos) buffer.Pos {
	m.importSystem()
	if len(m.fragments) == 0 {
		return p
	}
	n := len(m.fragments)
	p = b.Clamp(p)

	if m.lineMode {
		b.InsertLines(p.Row, m.fragments)
		return buffer.Pos{Row: p.Row + n, Col: 0}
	}

	if n == 1 {
		return b.SpliceLine(p.Row, p.Col, p.Col, m.fragments[0])
	}

	tail := string([]rune(b.Line(p.Row))[p.Col:])
	b.SpliceLine(p.Row, p.Col, b.LineLen(p.Row), m.fragments[0])

	rest := make([]string, 0, n-1)
	rest = append(rest, m.fragments[1:n-1]...)
	rest = append(rest, m.fragments[n-1]+tail)
	b.InsertLines(p.Row+1, rest)

	return buffer.Pos{Row: p.Row + n - 1, Col: len([]rune(m.fragments[n-1]))}
}

// Preview describes the clipboard for a status line: "Empty", the single
// fragment truncated to max runes with "...", or "N lines".
func (m *Manager) Preview(max int) string {
	switch len(m.fragments) {
	case 0:
		return "Empty"
	case 1:
		r := []rune(m.fragments[0])
		if max >= 0 && len(r) > max {
			return string(r[:max]) + "..."
		}
		return m.fragments[0]
	default:
		return fmt.Sprintf("%d lines", len(m.fragments))
	}
}

func (m *Manager) joined() string {
	s := strings.Join(m.fragments, "\n")
	if m.lineMode {
		s += "\n"
	}
	return s
}

func (m *Manager) mirror() {
	if m.sys == nil {
		return
	}
	s := m.joined()
	if err := m.sys.WriteText(s); err != nil {
		m.sysErr = err
		return
	}
	m.mirrored = s
	m.sysErr = nil
}

// importSystem adopts text copied in another application since the last
// mirror, as a character span.
func (m *Manager) importSystem() {
	if m.sys == nil {
		return
	}
	s, err := m.sys.ReadText()
	if err != nil {
		m.sysErr = err
		return
	}
	if s == "" || s == m.mirrored {
		return
	}
	m.mirrored = s
	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = strings.ReplaceAll(s, "\r", "\n")
	m.fragments = strings.Split(s, "\n")
	m.lineMode = false
}
