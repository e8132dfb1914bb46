package editor

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/lipgloss"

	"github.com/iw2rmb/quill/buffer"
	"github.com/iw2rmb/quill/highlight"
	"github.com/iw2rmb/quill/internal/cells"
	"github.com/iw2rmb/quill/search"
)

const (
	noName       = "[No Name]"
	modifiedMark = "[+]"
)

func (m *Model) renderContent() string {
	n := m.buf.LineCount()
	cursor := m.buf.Clamp(m.cursor.Pos())

	// Match highlights only make sense while the session describes this text.
	showMatches := m.search.State() == search.HasMatches && !m.search.Stale(m.buf)
	info, hasCurrent := m.search.MatchInfo()

	out := make([]string, 0, n)
	for row := 0; row < n; row++ {
		var sb strings.Builder
		if m.cfg.ShowLineNums {
			numStyle := m.cfg.Style.LineNum
			if m.focused && row == cursor.Row {
				numStyle = m.cfg.Style.LineNumActive
			}
			sb.WriteString(numStyle.Render(fmt.Sprintf("%3d", row+1)))
			sb.WriteString(m.cfg.Style.Gutter.Render(" "))
		}
		var spans []matchSpan
		if showMatches {
			for _, mt := range m.search.MatchesOnRow(row) {
				spans = append(spans, matchSpan{start: mt.Col, end: mt.Col + mt.Length, current: hasCurrent && mt == info.Match})
			}
		}
		sb.WriteString(m.renderLine(row, cursor, spans))
		out = append(out, sb.String())
	}
	return strings.Join(out, "\n")
}

type matchSpan struct {
	start, end int
	current    bool
}

// renderLine styles one document row. Precedence, highest first: cursor,
// selection, current match, other matches, token tag.
func (m *Model) renderLine(row int, cursor buffer.Pos, matches []matchSpan) string {
	st := m.cfg.Style
	line := []rune(m.buf.Line(row))

	// Tag per rune from the tokenizer.
	tags := make([]highlight.Tag, 0, len(line))
	for _, tok := range m.tok.TokenizeLine(string(line)) {
		for range tok.Text {
			tags = append(tags, tok.Tag)
		}
	}

	hasCursor := m.focused && row == cursor.Row

	var sb strings.Builder
	var run []rune
	var runStyle lipgloss.Style
	runKey := -1
	flush := func() {
		if len(run) > 0 {
			sb.WriteString(runStyle.Render(string(run)))
		}
		run = run[:0]
	}

	visual := 0
	for col, r := range line {
		style, k := st.Text, 0
		if col < len(tags) {
			style, k = st.token(tags[col]), 100+int(tags[col])
		}
		for _, sp := range matches {
			if col >= sp.start && col < sp.end {
				if sp.current {
					style, k = st.CurrentMatch, 2
				} else {
					style, k = st.Match, 3
				}
				break
			}
		}
		p := buffer.Pos{Row: row, Col: col}
		if m.sel.Contains(p) {
			style, k = st.Selection, 1
		}
		if hasCursor && col == cursor.Col {
			style, k = st.Cursor, -2
		}

		w := cells.RuneWidth(r, visual, m.cfg.TabWidth)
		text := []rune{r}
		if r == '\t' {
			text = []rune(strings.Repeat(" ", w))
		}
		visual += w

		if k != runKey || k == -2 {
			flush()
			runKey, runStyle = k, style
		}
		run = append(run, text...)
	}
	flush()

	// Cursor at EOL is rendered as a 1-cell placeholder space.
	if hasCursor && cursor.Col >= len(line) {
		sb.WriteString(st.Cursor.Render(" "))
	}
	return sb.String()
}

func (m Model) statusLine() string {
	name := m.buf.Path()
	if name == "" {
		name = noName
	}
	if m.buf.Modified() {
		name += " " + modifiedMark
	}

	p := m.cursor.Pos()
	right := fmt.Sprintf("Ln %d, Col %d", p.Row+1, p.Col+1)
	if info, ok := m.search.MatchInfo(); ok && !m.search.Stale(m.buf) {
		right += fmt.Sprintf(" | %d/%d", info.Current, info.Total)
	}
	if !m.clip.IsEmpty() {
		right += " | " + m.clip.Preview(m.cfg.PreviewLength)
	}
	right += " | " + m.tok.Language()

	line := name + "  " + right
	if w := m.width; w > 0 {
		left := cells.Truncate(name, maxInt(w-cells.Width(right)-1, 0), "…")
		gap := maxInt(w-cells.Width(left)-cells.Width(right), 1)
		line = cells.Fit(left+strings.Repeat(" ", gap)+right, w)
	}
	return m.renderStatus(line)
}

func newHelp(st Style) help.Model {
	h := help.New()
	h.ShortSeparator = "  "
	h.Styles.ShortKey = st.Message.Bold(true)
	h.Styles.ShortDesc = st.Message
	h.Styles.ShortSeparator = st.Message
	h.Styles.Ellipsis = st.Message
	return h
}

// renderStatus styles the laid-out status line, giving the modified mark its
// own style. Widths are measured before styling.
func (m Model) renderStatus(line string) string {
	st := m.cfg.Style
	i := strings.Index(line, modifiedMark)
	if i < 0 || !m.buf.Modified() {
		return st.Status.Render(line)
	}
	j := i + len(modifiedMark)
	return st.Status.Render(line[:i]) +
		st.Modified.Inherit(st.Status).Render(modifiedMark) +
		st.Status.Render(line[j:])
}

func (m Model) messageLine() string {
	if m.prompt.active() && m.prompt.kind != promptConfirm {
		return m.prompt.input.View()
	}
	if m.message == "" {
		return m.help.ShortHelpView(m.cfg.KeyMap.ShortHelp())
	}
	style := m.cfg.Style.Message
	if m.messageErr {
		style = m.cfg.Style.Error
	}
	msg := m.message
	if m.width > 0 {
		msg = cells.Truncate(msg, m.width, "…")
	}
	return style.Render(msg)
}
