package editor

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/quill/buffer"
	"github.com/iw2rmb/quill/highlight"
)

func (m Model) updateKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	if !m.focused {
		return m, nil
	}

	// Paste events should always insert literal text and never trigger shortcuts.
	if msg.Type == tea.KeyRunes && msg.Paste && len(msg.Runes) > 0 {
		m.insertText(string(msg.Runes))
		return m, nil
	}

	km := m.cfg.KeyMap
	b := m.buf
	switch {
	case key.Matches(msg, km.Left):
		m.move(false, func() { m.cursor.MoveLeft(b) })
	case key.Matches(msg, km.Right):
		m.move(false, func() { m.cursor.MoveRight(b) })
	case key.Matches(msg, km.Up):
		m.move(false, func() { m.cursor.MoveUp(b) })
	case key.Matches(msg, km.Down):
		m.move(false, func() { m.cursor.MoveDown(b) })

	case key.Matches(msg, km.ShiftLeft):
		m.move(true, func() { m.cursor.MoveLeft(b) })
	case key.Matches(msg, km.ShiftRight):
		m.move(true, func() { m.cursor.MoveRight(b) })
	case key.Matches(msg, km.ShiftUp):
		m.move(true, func() { m.cursor.MoveUp(b) })
	case key.Matches(msg, km.ShiftDown):
		m.move(true, func() { m.cursor.MoveDown(b) })

	case key.Matches(msg, km.WordLeft):
		m.move(false, func() { m.cursor.MoveWordBackward(b) })
	case key.Matches(msg, km.WordRight):
		m.move(false, func() { m.cursor.MoveWordForward(b) })

	case key.Matches(msg, km.Home):
		m.move(false, m.cursor.MoveToLineStart)
	case key.Matches(msg, km.End):
		m.move(false, func() { m.cursor.MoveToLineEnd(b) })
	case key.Matches(msg, km.ShiftHome):
		m.move(true, m.cursor.MoveToLineStart)
	case key.Matches(msg, km.ShiftEnd):
		m.move(true, func() { m.cursor.MoveToLineEnd(b) })
	case key.Matches(msg, km.PageUp):
		m.move(false, func() { m.cursor.PageUp(b, m.pageRows()) })
	case key.Matches(msg, km.PageDown):
		m.move(false, func() { m.cursor.PageDown(b, m.pageRows()) })
	case key.Matches(msg, km.DocStart):
		m.move(false, m.cursor.MoveToDocStart)
	case key.Matches(msg, km.DocEnd):
		m.move(false, func() { m.cursor.MoveToDocEnd(b) })

	case key.Matches(msg, km.Backspace):
		m.backspace()
	case key.Matches(msg, km.Delete):
		m.deleteForward()
	case key.Matches(msg, km.Enter):
		m.deleteSelection()
		p := m.cursor.Pos()
		m.cursor.SetPosition(b.InsertLine(p.Row, p.Col))
	case key.Matches(msg, km.Tab):
		m.insertText(strings.Repeat(" ", m.cfg.TabWidth))

	case key.Matches(msg, km.Copy):
		m.copy()
	case key.Matches(msg, km.Cut):
		m.cut()
	case key.Matches(msg, km.Paste):
		m.paste()

	case key.Matches(msg, km.SelectWord):
		if !m.sel.SelectWordAt(b, m.cursor.Pos()) {
			m.setMessage("No word at cursor")
			break
		}
		r, _ := m.sel.Bounds()
		m.cursor.SetPosition(r.End)
	case key.Matches(msg, km.SelectLine):
		row := m.cursor.Pos().Row
		m.sel.SelectLine(b, row)
		m.cursor.SetPosition(buffer.Pos{Row: row, Col: b.LineLen(row)})
	case key.Matches(msg, km.SelectAll):
		m.sel.SelectAll(b)
		m.cursor.MoveToDocEnd(b)

	case key.Matches(msg, km.Find):
		m.openPrompt(promptFind, "Find: ", m.search.Term())
	case key.Matches(msg, km.FindNext):
		m.step(true)
	case key.Matches(msg, km.FindPrev):
		m.step(false)
	case key.Matches(msg, km.Replace):
		m.openPrompt(promptReplaceTerm, "Replace: ", m.search.Term())
	case key.Matches(msg, km.ReplaceCurrent):
		m.replaceCurrent()

	case key.Matches(msg, km.Save):
		return m.save(afterNone)
	case key.Matches(msg, km.SaveAs):
		m.openPrompt(promptSaveAs, "Save as: ", m.buf.Path())
	case key.Matches(msg, km.Open):
		if m.buf.Modified() {
			m.confirm(afterOpen)
			break
		}
		m.openPrompt(promptOpen, "Open: ", "")
	case key.Matches(msg, km.Quit):
		if m.buf.Modified() {
			m.confirm(afterQuit)
			break
		}
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, km.Escape):
		m.sel.Clear()
		m.setMessage("")

	default:
		if msg.Type == tea.KeyRunes && len(msg.Runes) > 0 && !msg.Alt {
			m.insertText(string(msg.Runes))
		} else if msg.Type == tea.KeySpace {
			m.insertText(" ")
		}
	}

	return m, nil
}

// move runs a cursor movement. Extending movements grow the selection from
// the cursor; plain movements drop it.
func (m *Model) move(extend bool, fn func()) {
	if !extend {
		m.sel.Clear()
		fn()
		return
	}
	if !m.sel.Active() {
		m.sel.Start(m.cursor.Pos())
	}
	fn()
	m.sel.Update(m.cursor.Pos())
}

// deleteSelection removes the selected span, if any, and puts the cursor at
// its start.
func (m *Model) deleteSelection() bool {
	r, ok := m.sel.Bounds()
	m.sel.Clear()
	if !ok {
		return false
	}
	m.cursor.SetPosition(m.buf.DeleteRange(r))
	return true
}

func (m *Model) insertText(s string) {
	m.deleteSelection()
	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = strings.ReplaceAll(s, "\r", "\n")
	m.cursor.SetPosition(m.buf.InsertText(m.cursor.Pos(), s))
}

func (m *Model) backspace() {
	if m.deleteSelection() {
		return
	}
	p := m.cursor.Pos()
	m.cursor.SetPosition(m.buf.Backspace(p.Row, p.Col))
}

func (m *Model) deleteForward() {
	if m.deleteSelection() {
		return
	}
	p := m.buf.Clamp(m.cursor.Pos())
	if m.buf.DeleteChar(p.Row, p.Col) {
		return
	}
	// At end of line: join the next line onto this one.
	if p.Row < m.buf.LineCount()-1 {
		m.buf.Backspace(p.Row+1, 0)
	}
}

func (m *Model) copy() {
	if r, ok := m.sel.Bounds(); ok {
		m.clip.CopySpan(m.buf, r)
		m.setMessage("Copied selection")
	} else {
		m.clip.CopyLine(m.buf, m.cursor.Pos().Row)
		m.setMessage("Copied line")
	}
	m.logClipboardErr()
}

func (m *Model) cut() {
	if r, ok := m.sel.Bounds(); ok {
		m.clip.CutSpan(m.buf, r)
		m.sel.Clear()
		m.cursor.SetPosition(r.Start)
		m.setMessage("Cut selection")
	} else {
		row := m.cursor.Pos().Row
		m.clip.CutLine(m.buf, row)
		m.cursor.SetPosition(buffer.Pos{Row: row, Col: 0})
		m.setMessage("Cut line")
	}
	m.logClipboardErr()
}

func (m *Model) paste() {
	m.deleteSelection()
	p := m.clip.Paste(m.buf, m.cursor.Pos())
	m.logClipboardErr()
	if m.clip.IsEmpty() {
		m.setMessage("Clipboard is empty")
		return
	}
	m.cursor.SetPosition(p)
}

func (m *Model) logClipboardErr() {
	if err := m.clip.SystemErr(); err != nil {
		m.log.Warn("system clipboard", "err", err)
	}
}

// runSearch starts a session for term from the cursor.
func (m *Model) runSearch(term string) {
	m.sel.Clear()
	match, ok := m.search.Search(m.buf, term, m.cursor.Pos())
	if err := m.search.Err(); err != nil {
		m.log.Warn("search", "term", term, "err", err)
		m.setError(fmt.Sprintf("Invalid pattern: %s", term))
		return
	}
	if !ok {
		m.setMessage(fmt.Sprintf("Not found: %s", term))
		return
	}
	m.cursor.SetPosition(match.Pos())
	m.reportMatch()
}

// step moves to the next or previous match of the current session.
func (m *Model) step(forward bool) {
	if m.search.Term() == "" {
		m.openPrompt(promptFind, "Find: ", "")
		return
	}
	if m.search.Stale(m.buf) {
		m.runSearch(m.search.Term())
		return
	}
	find := m.search.FindNext
	if !forward {
		find = m.search.FindPrevious
	}
	match, ok := find()
	if !ok {
		m.setMessage(fmt.Sprintf("Not found: %s", m.search.Term()))
		return
	}
	m.sel.Clear()
	m.cursor.SetPosition(match.Pos())
	m.reportMatch()
}

func (m *Model) reportMatch() {
	if info, ok := m.search.MatchInfo(); ok {
		m.setMessage(fmt.Sprintf("Match %d of %d", info.Current, info.Total))
	}
}

func (m *Model) replaceCurrent() {
	info, ok := m.search.MatchInfo()
	if !ok || m.search.Stale(m.buf) {
		m.setMessage("No current match")
		return
	}
	if !m.search.ReplaceCurrent(m.buf, m.lastReplacement) {
		return
	}
	m.sel.Clear()
	m.setMessage(fmt.Sprintf("Replaced match %d of %d", info.Current, info.Total))
	if next, ok := m.search.FindNext(); ok {
		m.cursor.SetPosition(m.buf.Clamp(next.Pos()))
	}
}

func (m *Model) replaceAll(term, replacement string) {
	m.lastReplacement = replacement
	n := m.search.ReplaceAll(m.buf, term, replacement)
	if err := m.search.Err(); err != nil {
		m.log.Warn("replace", "term", term, "err", err)
		m.setError(fmt.Sprintf("Invalid pattern: %s", term))
		return
	}
	m.sel.Clear()
	m.log.Info("replace all", "term", term, "count", n)
	m.setMessage(fmt.Sprintf("Replaced %d occurrence(s)", n))
}

func (m Model) save(then afterAction) (Model, tea.Cmd) {
	err := m.buf.Save()
	if errors.Is(err, buffer.ErrNoPath) {
		m.prompt.then = then
		m.openPrompt(promptSaveAs, "Save as: ", "")
		return m, nil
	}
	if err != nil {
		m.log.Error("save", "path", m.buf.Path(), "err", err)
		m.setError(err.Error())
		return m, nil
	}
	m.log.Info("saved", "path", m.buf.Path(), "lines", m.buf.LineCount())
	m.setMessage(fmt.Sprintf("Saved %s", m.buf.Path()))
	return m.runAfter(then)
}

func (m Model) saveAs(path string, then afterAction) (Model, tea.Cmd) {
	if err := m.buf.SaveAs(path); err != nil {
		m.log.Error("save as", "path", path, "err", err)
		m.setError(err.Error())
		return m, nil
	}
	m.log.Info("saved", "path", path, "lines", m.buf.LineCount())
	m.tok = m.retokenizer(path)
	m.setMessage(fmt.Sprintf("Saved %s", path))
	return m.runAfter(then)
}

// Open loads path into the buffer, resetting cursor, selection and search.
// On failure the buffer is left as it was.
func (m Model) Open(path string) Model {
	if err := m.buf.LoadFile(path); err != nil {
		m.log.Error("open", "path", path, "err", err)
		m.setError(err.Error())
		return m
	}
	m.log.Info("opened", "path", path, "lines", m.buf.LineCount())
	m.cursor = buffer.Cursor{}
	m.sel.Clear()
	m.search.Reset()
	m.tok = m.retokenizer(path)
	m.viewport.SetYOffset(0)
	m.setMessage(fmt.Sprintf("Opened %s", path))
	m.rememberState()
	m.rebuildContent()
	return m
}

func (m Model) retokenizer(path string) highlight.Tokenizer {
	if m.cfg.Tokenizer != nil {
		return m.cfg.Tokenizer
	}
	return tokenizerFor(path)
}

func (m Model) runAfter(then afterAction) (Model, tea.Cmd) {
	switch then {
	case afterQuit:
		m.quitting = true
		return m, tea.Quit
	case afterOpen:
		m.openPrompt(promptOpen, "Open: ", "")
	}
	return m, nil
}
