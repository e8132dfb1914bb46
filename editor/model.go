package editor

import (
	"log/slog"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/quill/buffer"
	"github.com/iw2rmb/quill/clipboard"
	"github.com/iw2rmb/quill/highlight"
	"github.com/iw2rmb/quill/internal/logger"
	"github.com/iw2rmb/quill/search"
)

// chromeRows is the status line plus the message line.
const chromeRows = 2

// Model is a Bubble Tea component that edits one buffer.
type Model struct {
	cfg Config
	buf *buffer.Buffer
	log *slog.Logger

	cursor buffer.Cursor
	sel    buffer.Selection
	clip   *clipboard.Manager
	search *search.Manager
	tok    highlight.Tokenizer

	focused bool
	width   int

	viewport viewport.Model
	prompt   prompt
	help     help.Model

	message    string
	messageErr bool

	lastReplacement string
	quitting        bool

	lastBufVersion uint64
	lastCursor     buffer.Pos
	lastSel        buffer.Range
	lastSelOK      bool
}

func New(cfg Config) Model {
	cfg = cfg.withDefaults()
	buf := cfg.Buffer
	if buf == nil {
		buf = buffer.New(cfg.Text, buffer.Options{})
	}
	log := cfg.Logger
	if log == nil {
		log = logger.Discard()
	}

	m := Model{
		cfg:      cfg,
		buf:      buf,
		log:      log,
		clip:     clipboard.New(cfg.System),
		search:   search.New(cfg.Search),
		tok:      cfg.Tokenizer,
		focused:  true,
		viewport: viewport.New(0, 0),
		prompt:   newPrompt(cfg.Style),
		help:     newHelp(cfg.Style),
	}
	if m.tok == nil {
		m.tok = tokenizerFor(buf.Path())
	}
	m.rememberState()
	m.rebuildContent()
	return m
}

func tokenizerFor(path string) highlight.Tokenizer {
	if path == "" {
		return highlight.Plain{}
	}
	return highlight.ForFile(path)
}

func (m Model) Buffer() *buffer.Buffer          { return m.buf }
func (m Model) Cursor() buffer.Pos              { return m.cursor.Pos() }
func (m Model) Selection() (buffer.Range, bool) { return m.sel.Bounds() }
func (m Model) Clipboard() *clipboard.Manager   { return m.clip }
func (m Model) Search() *search.Manager         { return m.search }
func (m Model) Message() string                 { return m.message }

// Quitting reports whether the model has asked the program to exit.
func (m Model) Quitting() bool { return m.quitting }

func (m Model) Init() tea.Cmd { return nil }

func (m Model) SetSize(width, height int) Model {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	m.width = width
	m.viewport.Width = width
	m.viewport.Height = maxInt(height-chromeRows, 0)
	m.prompt.input.Width = maxInt(width-len(m.prompt.input.Prompt)-1, 0)
	m.help.Width = width

	m.rebuildContent()
	m.followCursor()
	return m
}

func (m Model) Focus() Model {
	if !m.focused {
		m.focused = true
		m.rebuildContent()
		m.followCursor()
	}
	return m
}

func (m Model) Blur() Model {
	if m.focused {
		m.focused = false
		m.rebuildContent()
	}
	return m
}

func (m Model) Focused() bool { return m.focused }

// SetCursor moves the cursor to p, clamped, and clears the selection.
func (m Model) SetCursor(p buffer.Pos) Model {
	m.sel.Clear()
	m.cursor.SetPosition(m.buf.Clamp(p))
	m.rememberState()
	m.rebuildContent()
	m.followCursor()
	return m
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.SetSize(msg.Width, msg.Height), nil
	case tea.MouseMsg:
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		return m, cmd
	case tea.KeyMsg:
		var cmd tea.Cmd
		if m.prompt.active() {
			m, cmd = m.updatePrompt(msg)
		} else {
			m, cmd = m.updateKey(msg)
		}
		m.afterKey()
		return m, cmd
	default:
		if m.prompt.active() {
			var cmd tea.Cmd
			m.prompt.input, cmd = m.prompt.input.Update(msg)
			return m, cmd
		}
		return m, nil
	}
}

func (m Model) View() string {
	return m.viewport.View() + "\n" + m.statusLine() + "\n" + m.messageLine()
}

// afterKey restores the invariants between the buffer and the cursor,
// selection and search session, then notifies the host.
func (m *Model) afterKey() {
	if m.buf.Version() != m.lastBufVersion {
		m.cursor.ClampToBuffer(m.buf)
		if m.search.State() != search.Idle && m.search.Stale(m.buf) {
			m.search.Reset()
		}
	}

	changed := m.stateChanged()
	m.rememberState()
	m.rebuildContent()
	if changed {
		m.followCursor()
		if m.cfg.OnChange != nil {
			m.cfg.OnChange(m.buildChangeEvent())
		}
	}
}

func (m *Model) stateChanged() bool {
	r, ok := m.sel.Bounds()
	return m.buf.Version() != m.lastBufVersion ||
		m.cursor.Pos() != m.lastCursor ||
		ok != m.lastSelOK || r != m.lastSel
}

func (m *Model) rememberState() {
	m.lastBufVersion = m.buf.Version()
	m.lastCursor = m.cursor.Pos()
	m.lastSel, m.lastSelOK = m.sel.Bounds()
}

func (m *Model) rebuildContent() {
	m.viewport.SetContent(m.renderContent())
}

func (m *Model) followCursor() {
	h := m.viewport.Height - m.viewport.Style.GetVerticalFrameSize()
	if h <= 0 {
		return
	}

	row := m.cursor.Pos().Row
	y := m.viewport.YOffset
	if row < y {
		m.viewport.SetYOffset(row)
		return
	}
	if row >= y+h {
		m.viewport.SetYOffset(row - h + 1)
	}
}

func (m *Model) setMessage(s string) {
	m.message = s
	m.messageErr = false
}

func (m *Model) setError(s string) {
	m.message = s
	m.messageErr = true
}

// pageRows is the number of rows PageUp and PageDown move.
func (m Model) pageRows() int {
	h := m.viewport.Height - m.viewport.Style.GetVerticalFrameSize()
	if h <= 1 {
		return 1
	}
	return h - 1
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
