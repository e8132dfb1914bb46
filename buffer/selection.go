package buffer

// Selection is an anchor-based span over the document.
//
// The anchor is where the selection started and the head is where it currently
// extends to; they are not ordered. Read the span through Bounds only.
type Selection struct {
	active bool
	anchor Pos
	head   Pos
}

// Start begins a new selection with anchor and head at p.
func (s *Selection) Start(p Pos) {
	s.active = true
	s.anchor = p
	s.head = p
}

// Update moves the head. It does nothing unless the selection is active.
func (s *Selection) Update(p Pos) {
	if !s.active {
		return
	}
	s.head = p
}

// End deactivates the selection but keeps its endpoints until Clear.
func (s *Selection) End() {
	s.active = false
}

func (s *Selection) Clear() {
	*s = Selection{}
}

// Active reports whether the selection is being extended, even if empty.
func (s *Selection) Active() bool { return s.active }

// HasSelection reports whether the selection is active and non-empty.
func (s *Selection) HasSelection() bool {
	return s.active && s.anchor != s.head
}

// Bounds returns the ordered span, or false when HasSelection is false.
func (s *Selection) Bounds() (Range, bool) {
	if !s.HasSelection() {
		return Range{}, false
	}
	return NormalizeRange(Range{Start: s.anchor, End: s.head}), true
}

// Contains reports whether p lies inside Bounds. Columns are half-open on the
// boundary rows; interior rows are fully selected.
func (s *Selection) Contains(p Pos) bool {
	r, ok := s.Bounds()
	if !ok {
		return false
	}
	if p.Row < r.Start.Row || p.Row > r.End.Row {
		return false
	}
	switch {
	case r.SingleLine():
		return r.Start.Col <= p.Col && p.Col < r.End.Col
	case p.Row == r.Start.Row:
		return p.Col >= r.Start.Col
	case p.Row == r.End.Row:
		return p.Col < r.End.Col
	default:
		return true
	}
}

// SelectWordAt selects the word run touching p. It reports false and leaves
// the selection unchanged when there is no word there.
func (s *Selection) SelectWordAt(b *Buffer, p Pos) bool {
	start, end, ok := b.WordAt(p)
	if !ok {
		return false
	}
	s.Start(Pos{Row: p.Row, Col: start})
	s.Update(Pos{Row: p.Row, Col: end})
	return true
}

// SelectLine selects [0, LineLen(row)) on row.
func (s *Selection) SelectLine(b *Buffer, row int) {
	s.Start(Pos{Row: row, Col: 0})
	s.Update(Pos{Row: row, Col: b.LineLen(row)})
}

func (s *Selection) SelectAll(b *Buffer) {
	last := b.LineCount() - 1
	s.Start(Pos{})
	s.Update(Pos{Row: last, Col: b.LineLen(last)})
}

// Text returns the selected text with rows joined by '\n', or "".
func (s *Selection) Text(b *Buffer) string {
	r, ok := s.Bounds()
	if !ok {
		return ""
	}
	return b.TextIn(r)
}
