package buffer

import (
	"errors"
	"io/fs"
	"reflect"
	"testing"
)

func lines(b *Buffer) []string {
	out := make([]string, 0, b.LineCount())
	for row := 0; row < b.LineCount(); row++ {
		out = append(out, b.Line(row))
	}
	return out
}

func wantLines(t *testing.T, b *Buffer, want ...string) {
	t.Helper()
	if got := lines(b); !reflect.DeepEqual(got, want) {
		t.Fatalf("lines=%q, want %q", got, want)
	}
}

func TestBuffer_Load_SplitsLineBreaks(t *testing.T) {
	cases := []struct {
		in   string
		want []string
	}{
		{in: "", want: []string{""}},
		{in: "\n", want: []string{""}},
		{in: "a", want: []string{"a"}},
		{in: "a\n", want: []string{"a"}},
		{in: "a\n\n", want: []string{"a", ""}},
		{in: "a\r\nb\rc", want: []string{"a", "b", "c"}},
		{in: "\nx", want: []string{"", "x"}},
	}

	for _, tc := range cases {
		b := New("seed", Options{})
		b.InsertChar(0, 0, 'x')
		b.Load(tc.in)
		if got := lines(b); !reflect.DeepEqual(got, tc.want) {
			t.Fatalf("Load(%q) lines=%q, want %q", tc.in, got, tc.want)
		}
		if b.Modified() {
			t.Fatalf("Load(%q) left modified set", tc.in)
		}
	}
}

func TestBuffer_Accessors_OutOfRange(t *testing.T) {
	b := New("ab\nπテ", Options{})

	if got := b.LineCount(); got != 2 {
		t.Fatalf("line count=%d, want 2", got)
	}
	if got := b.Line(5); got != "" {
		t.Fatalf("Line(5)=%q, want empty", got)
	}
	if got := b.Line(-1); got != "" {
		t.Fatalf("Line(-1)=%q, want empty", got)
	}
	if got := b.LineLen(1); got != 2 {
		t.Fatalf("LineLen(1)=%d, want 2 runes", got)
	}
	if got := b.LineLen(9); got != 0 {
		t.Fatalf("LineLen(9)=%d, want 0", got)
	}
	if b.IsEmpty() {
		t.Fatalf("expected non-empty buffer")
	}
	if !New("", Options{}).IsEmpty() {
		t.Fatalf("expected empty buffer")
	}
}

func TestBuffer_InsertChar(t *testing.T) {
	b := New("ac", Options{})
	v := b.Version()

	b.InsertChar(0, 1, 'b')
	wantLines(t, b, "abc")
	if !b.Modified() {
		t.Fatalf("expected modified")
	}
	if b.Version() != v+1 {
		t.Fatalf("version=%d, want %d", b.Version(), v+1)
	}

	b.InsertChar(0, 99, 'd')
	wantLines(t, b, "abcd")

	b.InsertChar(2, 0, 'z')
	wantLines(t, b, "abcd", "", "z")
}

func TestBuffer_InsertChar_LineBreakSplits(t *testing.T) {
	b := New("ab", Options{})
	b.InsertChar(0, 1, '\n')
	wantLines(t, b, "a", "b")
}

func TestBuffer_DeleteChar(t *testing.T) {
	b := New("abc", Options{})

	if b.DeleteChar(0, 3) {
		t.Fatalf("expected no deletion at end of line")
	}
	if b.DeleteChar(4, 0) {
		t.Fatalf("expected no deletion past last row")
	}
	if b.Modified() {
		t.Fatalf("failed delete must not set modified")
	}

	if !b.DeleteChar(0, 1) {
		t.Fatalf("expected deletion")
	}
	wantLines(t, b, "ac")
	if !b.Modified() {
		t.Fatalf("expected modified")
	}
}

func TestBuffer_Backspace(t *testing.T) {
	b := New("ab\ncd", Options{})

	if got := b.Backspace(0, 0); got != (Pos{Row: 0, Col: 0}) {
		t.Fatalf("backspace at origin=%v, want (0,0)", got)
	}
	wantLines(t, b, "ab", "cd")
	if b.Modified() {
		t.Fatalf("no-op backspace must not set modified")
	}

	if got := b.Backspace(1, 1); got != (Pos{Row: 1, Col: 0}) {
		t.Fatalf("backspace=%v, want (1,0)", got)
	}
	wantLines(t, b, "ab", "d")

	if got := b.Backspace(1, 0); got != (Pos{Row: 0, Col: 2}) {
		t.Fatalf("join=%v, want (0,2)", got)
	}
	wantLines(t, b, "abd")
}

func TestBuffer_InsertLine(t *testing.T) {
	b := New("hello", Options{})

	if got := b.InsertLine(0, 2); got != (Pos{Row: 1, Col: 0}) {
		t.Fatalf("insert line=%v, want (1,0)", got)
	}
	wantLines(t, b, "he", "llo")

	if got := b.InsertLine(1, 3); got != (Pos{Row: 2, Col: 0}) {
		t.Fatalf("insert line at eol=%v, want (2,0)", got)
	}
	wantLines(t, b, "he", "llo", "")

	if got := b.InsertLine(7, 0); got != (Pos{Row: 3, Col: 0}) {
		t.Fatalf("insert line past end=%v, want (3,0)", got)
	}
	wantLines(t, b, "he", "llo", "", "")
}

func TestBuffer_InsertLineThenBackspace_RestoresLine(t *testing.T) {
	for col := 0; col <= 5; col++ {
		b := New("hello", Options{})
		p := b.InsertLine(0, col)
		back := b.Backspace(p.Row, p.Col)
		wantLines(t, b, "hello")
		if back != (Pos{Row: 0, Col: col}) {
			t.Fatalf("col %d: join point=%v, want (0,%d)", col, back, col)
		}
	}
}

func TestBuffer_LoadFileAndSave(t *testing.T) {
	st := NewMemStorage()
	_ = st.WriteFile("a.txt", []byte("one\r\ntwo\n"))

	b := New("", Options{Storage: st})
	if err := b.LoadFile("a.txt"); err != nil {
		t.Fatalf("load: %v", err)
	}
	wantLines(t, b, "one", "two")
	if b.Path() != "a.txt" {
		t.Fatalf("path=%q, want a.txt", b.Path())
	}

	b.InsertChar(1, 3, '!')
	if err := b.Save(); err != nil {
		t.Fatalf("save: %v", err)
	}
	if b.Modified() {
		t.Fatalf("save must clear modified")
	}
	data, _ := st.ReadFile("a.txt")
	if got, want := string(data), "one\ntwo!"; got != want {
		t.Fatalf("saved=%q, want %q", got, want)
	}
}

func TestBuffer_LoadFile_FailureLeavesBufferUnchanged(t *testing.T) {
	b := New("keep", Options{Storage: NewMemStorage()})
	b.InsertChar(0, 4, '!')
	v := b.Version()

	err := b.LoadFile("missing.txt")
	var ioErr *IOError
	if !errors.As(err, &ioErr) || ioErr.Op != "load" {
		t.Fatalf("expected load IOError, got %v", err)
	}
	if !errors.Is(err, fs.ErrNotExist) {
		t.Fatalf("expected wrapped ErrNotExist, got %v", err)
	}
	wantLines(t, b, "keep!")
	if !b.Modified() || b.Version() != v {
		t.Fatalf("buffer state changed on failed load")
	}
}

func TestBuffer_Save_Errors(t *testing.T) {
	st := NewMemStorage()
	b := New("x", Options{Storage: st})

	if err := b.Save(); !errors.Is(err, ErrNoPath) {
		t.Fatalf("expected ErrNoPath, got %v", err)
	}
	if err := b.SaveAs(""); !errors.Is(err, ErrNoPath) {
		t.Fatalf("expected ErrNoPath for empty SaveAs, got %v", err)
	}

	boom := errors.New("disk full")
	st.WriteErr = boom
	b.InsertChar(0, 0, 'y')
	err := b.SaveAs("out.txt")
	if !errors.Is(err, boom) {
		t.Fatalf("expected wrapped write error, got %v", err)
	}
	if b.Path() != "" {
		t.Fatalf("failed SaveAs must not adopt path, got %q", b.Path())
	}
	if !b.Modified() {
		t.Fatalf("failed save must keep modified")
	}

	st.WriteErr = nil
	if err := b.SaveAs("out.txt"); err != nil {
		t.Fatalf("save as: %v", err)
	}
	if b.Path() != "out.txt" || b.Modified() {
		t.Fatalf("path=%q modified=%v after SaveAs", b.Path(), b.Modified())
	}
}
