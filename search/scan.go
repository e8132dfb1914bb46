package search

import (
	"fmt"

	"github.com/iw2rmb/quill/buffer"
)

// Match is where a term was found at scan time.
type Match struct {
	Row    int
	Col    int
	Length int
	Text   string
}

func (m Match) Pos() buffer.Pos { return buffer.Pos{Row: m.Row, Col: m.Col} }

// End is the position just past the match.
func (m Match) End() buffer.Pos { return buffer.Pos{Row: m.Row, Col: m.Col + m.Length} }

// Scan returns every non-overlapping match of q in b, ordered by row then
// column. An empty term yields no matches and no error.
func Scan(b *buffer.Buffer, q Query, opt Options) ([]Match, error) {
	if q == nil || q.Term() == "" {
		return nil, nil
	}
	re, err := compile(q, opt)
	if err != nil {
		return nil, err
	}

	var out []Match
	for row := 0; row < b.LineCount(); row++ {
		line := b.Line(row)
		m, err := re.FindStringMatch(line)
		for m != nil && err == nil {
			out = append(out, Match{
				Row:    row,
				Col:    m.Index,
				Length: m.Length,
				Text:   m.String(),
			})
			m, err = re.FindNextMatch(m)
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %q: %v", ErrInvalidPattern, q.Term(), err)
		}
	}
	return out, nil
}
