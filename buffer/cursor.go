package buffer

// Cursor is a single position plus a remembered target column for vertical
// movement. Moving through a short line and back to a long one restores the
// original column.
//
// Every movement consults the buffer it is given and leaves the cursor at a
// valid position.
type Cursor struct {
	pos        Pos
	desiredCol int
}

func (c *Cursor) Pos() Pos { return c.pos }

// DesiredCol is the unclamped column used by vertical moves.
func (c *Cursor) DesiredCol() int { return c.desiredCol }

// SetPosition sets an absolute position and adopts its column as the desired
// column. Callers that may pass stale coordinates follow up with ClampToBuffer.
func (c *Cursor) SetPosition(p Pos) {
	c.pos = p
	c.desiredCol = p.Col
}

// ClampToBuffer forces the cursor into b's bounds and resets the desired column.
func (c *Cursor) ClampToBuffer(b *Buffer) {
	c.pos = b.clampPos(c.pos)
	c.desiredCol = c.pos.Col
}

func (c *Cursor) MoveUp(b *Buffer) {
	p := b.clampPos(c.pos)
	if p.Row == 0 {
		c.pos = p
		return
	}
	nr := p.Row - 1
	c.pos = Pos{Row: nr, Col: minInt(c.desiredCol, b.lineLen(nr))}
}

func (c *Cursor) MoveDown(b *Buffer) {
	p := b.clampPos(c.pos)
	if p.Row >= len(b.lines)-1 {
		c.pos = p
		return
	}
	nr := p.Row + 1
	c.pos = Pos{Row: nr, Col: minInt(c.desiredCol, b.lineLen(nr))}
}

// PageUp moves up n rows, keeping the desired column.
func (c *Cursor) PageUp(b *Buffer, n int) {
	for i := 0; i < n; i++ {
		c.MoveUp(b)
	}
}

// PageDown moves down n rows, keeping the desired column.
func (c *Cursor) PageDown(b *Buffer, n int) {
	for i := 0; i < n; i++ {
		c.MoveDown(b)
	}
}

func (c *Cursor) MoveLeft(b *Buffer) {
	p := b.clampPos(c.pos)
	switch {
	case p.Col > 0:
		p.Col--
	case p.Row > 0:
		p.Row--
		p.Col = b.lineLen(p.Row)
	}
	c.SetPosition(p)
}

func (c *Cursor) MoveRight(b *Buffer) {
	p := b.clampPos(c.pos)
	switch {
	case p.Col < b.lineLen(p.Row):
		p.Col++
	case p.Row < len(b.lines)-1:
		p = Pos{Row: p.Row + 1, Col: 0}
	}
	c.SetPosition(p)
}

func (c *Cursor) MoveToLineStart() {
	c.SetPosition(Pos{Row: c.pos.Row, Col: 0})
}

func (c *Cursor) MoveToLineEnd(b *Buffer) {
	p := b.clampPos(c.pos)
	c.SetPosition(Pos{Row: p.Row, Col: b.lineLen(p.Row)})
}

func (c *Cursor) MoveToDocStart() {
	c.SetPosition(Pos{})
}

func (c *Cursor) MoveToDocEnd(b *Buffer) {
	last := len(b.lines) - 1
	c.SetPosition(Pos{Row: last, Col: b.lineLen(last)})
}

// MoveWordForward skips the word run under the cursor, then any whitespace.
// Reaching the end of a line that has a successor moves to the next line start.
func (c *Cursor) MoveWordForward(b *Buffer) {
	p := b.clampPos(c.pos)
	line := b.lines[p.Row]

	col := p.Col
	for col < len(line) && IsWordRune(line[col]) {
		col++
	}
	for col < len(line) && isSpaceRune(line[col]) {
		col++
	}
	if col >= len(line) && p.Row < len(b.lines)-1 {
		c.SetPosition(Pos{Row: p.Row + 1, Col: 0})
		return
	}
	c.SetPosition(Pos{Row: p.Row, Col: col})
}

// MoveWordBackward steps left once, skips whitespace, then skips word runes,
// stopping at column 0 or a non-word rune. At column 0 it moves to the end of
// the previous line.
func (c *Cursor) MoveWordBackward(b *Buffer) {
	p := b.clampPos(c.pos)
	if p.Col == 0 {
		if p.Row > 0 {
			c.SetPosition(Pos{Row: p.Row - 1, Col: b.lineLen(p.Row - 1)})
		} else {
			c.SetPosition(p)
		}
		return
	}

	line := b.lines[p.Row]
	col := p.Col - 1
	for col > 0 && isSpaceRune(line[col]) {
		col--
	}
	for col > 0 && IsWordRune(line[col-1]) {
		col--
	}
	c.SetPosition(Pos{Row: p.Row, Col: col})
}
