package editor

import (
	"fmt"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

type promptKind int

const (
	promptNone promptKind = iota
	promptFind
	promptReplaceTerm
	promptReplaceWith
	promptSaveAs
	promptOpen
	promptConfirm
)

// afterAction is what runs once a save (or a declined save) completes.
type afterAction int

const (
	afterNone afterAction = iota
	afterQuit
	afterOpen
)

type prompt struct {
	kind  promptKind
	input textinput.Model
	then  afterAction

	// term carries the search term from the replace prompt to the
	// replacement prompt.
	term string
}

func newPrompt(st Style) prompt {
	in := textinput.New()
	in.PromptStyle = st.Prompt
	in.TextStyle = st.Text
	return prompt{input: in}
}

func (p prompt) active() bool { return p.kind != promptNone }

func (m *Model) openPrompt(kind promptKind, label, value string) {
	m.prompt.kind = kind
	m.prompt.input.Prompt = label
	m.prompt.input.SetValue(value)
	m.prompt.input.CursorEnd()
	m.prompt.input.Focus()
	m.setMessage("")
}

func (m *Model) closePrompt() {
	m.prompt.kind = promptNone
	m.prompt.then = afterNone
	m.prompt.term = ""
	m.prompt.input.Blur()
	m.prompt.input.SetValue("")
}

// confirm asks whether to save the modified buffer before then runs.
func (m *Model) confirm(then afterAction) {
	m.prompt.kind = promptConfirm
	m.prompt.then = then
	name := m.buf.Path()
	if name == "" {
		name = noName
	}
	m.setMessage(fmt.Sprintf("Save changes to %s? (y/n, esc cancels)", name))
}

func (m Model) updatePrompt(msg tea.KeyMsg) (Model, tea.Cmd) {
	if m.prompt.kind == promptConfirm {
		return m.updateConfirm(msg)
	}

	switch msg.String() {
	case "esc", "ctrl+c":
		m.closePrompt()
		m.setMessage("Cancelled")
		return m, nil
	case "enter":
	default:
		var cmd tea.Cmd
		m.prompt.input, cmd = m.prompt.input.Update(msg)
		return m, cmd
	}

	value := m.prompt.input.Value()
	kind, then, term := m.prompt.kind, m.prompt.then, m.prompt.term
	m.closePrompt()

	switch kind {
	case promptFind:
		if value != "" {
			m.runSearch(value)
		}
	case promptReplaceTerm:
		if value != "" {
			m.openPrompt(promptReplaceWith, fmt.Sprintf("Replace %s with: ", value), m.lastReplacement)
			m.prompt.term = value
		}
	case promptReplaceWith:
		m.replaceAll(term, value)
	case promptSaveAs:
		if value == "" {
			m.setMessage("Not saved")
			return m, nil
		}
		return m.saveAs(value, then)
	case promptOpen:
		if value != "" {
			m = m.Open(value)
		}
	}
	return m, nil
}

func (m Model) updateConfirm(msg tea.KeyMsg) (Model, tea.Cmd) {
	then := m.prompt.then
	switch msg.String() {
	case "y", "Y":
		m.closePrompt()
		return m.save(then)
	case "n", "N":
		m.closePrompt()
		m.setMessage("")
		return m.runAfter(then)
	case "esc", "ctrl+c":
		m.closePrompt()
		m.setMessage("Cancelled")
	}
	return m, nil
}
