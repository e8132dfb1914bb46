package search

import "github.com/iw2rmb/quill/buffer"

// State is the search session state.
type State int

const (
	// Idle: no term searched yet, or the session was reset.
	Idle State = iota
	// HasMatches: the last search found at least one match.
	HasMatches
	// Exhausted: the last search ran but found nothing.
	Exhausted
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case HasMatches:
		return "has-matches"
	case Exhausted:
		return "exhausted"
	default:
		return "unknown"
	}
}

// Info describes the current match for display. Current is 1-based.
type Info struct {
	Current int
	Total   int
	Match   Match
}

// Manager holds one search session over a buffer.
type Manager struct {
	Options

	term    string
	matches []Match
	current int
	err     error

	scanned    bool
	bufVersion uint64
}

func New(opt Options) *Manager {
	return &Manager{Options: opt, current: -1}
}

// Term returns the last searched term.
func (m *Manager) Term() string { return m.term }

// Matches returns a copy of the match list.
func (m *Manager) Matches() []Match { return append([]Match(nil), m.matches...) }

// Current returns the index of the current match, or -1.
func (m *Manager) Current() int { return m.current }

// Err returns the failure of the last scan, wrapping ErrInvalidPattern, or nil.
// A failed scan still yields an empty match list.
func (m *Manager) Err() error { return m.err }

func (m *Manager) State() State {
	switch {
	case !m.scanned:
		return Idle
	case len(m.matches) > 0:
		return HasMatches
	default:
		return Exhausted
	}
}

// Stale reports whether b changed since the match list was computed or last
// rebased by a replace.
func (m *Manager) Stale(b *buffer.Buffer) bool {
	return m.scanned && b.Version() != m.bufVersion
}

// Reset drops the match list and the current match, keeping term and options.
func (m *Manager) Reset() {
	m.matches = nil
	m.current = -1
	m.scanned = false
	m.err = nil
}

// FindAll returns all matches of term in b using the manager's options. An
// invalid pattern yields an empty list; see Err.
func (m *Manager) FindAll(b *buffer.Buffer, term string) []Match {
	matches, err := Scan(b, QueryFor(term, m.Options), m.Options)
	m.err = err
	if err != nil {
		return nil
	}
	return matches
}

// Search recomputes the match list for term and selects the first match at or
// after from, wrapping to the first match overall. It reports false only when
// there are no matches.
func (m *Manager) Search(b *buffer.Buffer, term string, from buffer.Pos) (Match, bool) {
	m.term = term
	m.matches = m.FindAll(b, term)
	m.current = -1
	m.scanned = true
	m.bufVersion = b.Version()

	if len(m.matches) == 0 {
		return Match{}, false
	}
	m.current = 0
	for i, mt := range m.matches {
		if buffer.ComparePos(mt.Pos(), from) >= 0 {
			m.current = i
			break
		}
	}
	return m.matches[m.current], true
}

// FindNext advances circularly through the existing match list.
func (m *Manager) FindNext() (Match, bool) {
	if len(m.matches) == 0 || m.term == "" {
		return Match{}, false
	}
	if m.current < len(m.matches)-1 {
		m.current++
	} else {
		m.current = 0
	}
	return m.matches[m.current], true
}

// FindPrevious retreats circularly through the existing match list.
func (m *Manager) FindPrevious() (Match, bool) {
	if len(m.matches) == 0 || m.term == "" {
		return Match{}, false
	}
	if m.current > 0 {
		m.current--
	} else {
		m.current = len(m.matches) - 1
	}
	return m.matches[m.current], true
}

// ReplaceCurrent replaces the current match with replacement and rebases the
// later matches that shared its row. The current index does not move and the
// replaced entry stays in the list; call FindNext to advance.
func (m *Manager) ReplaceCurrent(b *buffer.Buffer, replacement string) bool {
	if m.current < 0 || m.current >= len(m.matches) {
		return false
	}
	mt := m.matches[m.current]
	end := b.SpliceLine(mt.Row, mt.Col, mt.Col+mt.Length, replacement)
	b.SetModified(true)

	oldEnd := mt.Col + mt.Length
	rowShift := end.Row - mt.Row
	for i := m.current + 1; i < len(m.matches); i++ {
		later := &m.matches[i]
		if later.Row == mt.Row {
			later.Col = later.Col - oldEnd + end.Col
			later.Row = end.Row
		} else {
			later.Row += rowShift
		}
	}
	if m.scanned {
		m.bufVersion = b.Version()
	}
	return true
}

// ReplaceAll rescans for term and replaces every match, last match first so
// earlier columns never need rebasing. The session is cleared afterwards. It
// returns the number of replacements.
func (m *Manager) ReplaceAll(b *buffer.Buffer, term, replacement string) int {
	m.term = term
	matches := m.FindAll(b, term)
	m.matches = nil
	m.current = -1
	m.scanned = false
	if len(matches) == 0 {
		return 0
	}

	for i := len(matches) - 1; i >= 0; i-- {
		mt := matches[i]
		b.SpliceLine(mt.Row, mt.Col, mt.Col+mt.Length, replacement)
	}
	b.SetModified(true)
	return len(matches)
}

// MatchInfo describes the current match, or reports false when there is none.
func (m *Manager) MatchInfo() (Info, bool) {
	if m.current < 0 || m.current >= len(m.matches) {
		return Info{}, false
	}
	return Info{
		Current: m.current + 1,
		Total:   len(m.matches),
		Match:   m.matches[m.current],
	}, true
}

// MatchesOnRow returns the matches on row in column order.
func (m *Manager) MatchesOnRow(row int) []Match {
	var out []Match
	for _, mt := range m.matches {
		if mt.Row == row {
			out = append(out, mt)
		} else if mt.Row > row {
			break
		}
	}
	return out
}
