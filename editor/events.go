package editor

import "github.com/iw2rmb/quill/buffer"

type ChangeEvent struct {
	Version   uint64
	Modified  bool
	Cursor    buffer.Pos
	Selection struct {
		Range  buffer.Range
		Active bool
	}

	Text string
}

func (m Model) buildChangeEvent() ChangeEvent {
	ev := ChangeEvent{
		Version:  m.buf.Version(),
		Modified: m.buf.Modified(),
		Cursor:   m.cursor.Pos(),
		Text:     m.buf.Text(),
	}
	if r, ok := m.sel.Bounds(); ok {
		ev.Selection.Active = true
		ev.Selection.Range = r
	}
	return ev
}
