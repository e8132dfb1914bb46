package buffer

import "testing"

func TestSelection_StartUpdateBounds(t *testing.T) {
	var s Selection

	s.Update(Pos{Row: 1, Col: 1})
	if s.HasSelection() {
		t.Fatalf("update without start must not select")
	}

	s.Start(Pos{Row: 2, Col: 3})
	if s.HasSelection() {
		t.Fatalf("zero-width selection must report none")
	}
	if _, ok := s.Bounds(); ok {
		t.Fatalf("expected no bounds for zero-width selection")
	}

	s.Update(Pos{Row: 0, Col: 4})
	r, ok := s.Bounds()
	if !ok {
		t.Fatalf("expected bounds")
	}
	want := Range{Start: Pos{Row: 0, Col: 4}, End: Pos{Row: 2, Col: 3}}
	if r != want {
		t.Fatalf("bounds=%v, want %v", r, want)
	}
}

func TestSelection_EndKeepsSpanUntilClear(t *testing.T) {
	var s Selection
	s.Start(Pos{Row: 0, Col: 0})
	s.Update(Pos{Row: 0, Col: 3})

	s.End()
	if s.HasSelection() || s.Active() {
		t.Fatalf("ended selection must not be active")
	}
	s.Update(Pos{Row: 0, Col: 9})

	for i := 0; i < 3; i++ {
		s.End()
		s.Clear()
		if s.HasSelection() {
			t.Fatalf("selection reported after repeated clear/end")
		}
	}
	if s != (Selection{}) {
		t.Fatalf("clear must reset endpoints, got %+v", s)
	}
}

func TestSelection_Contains(t *testing.T) {
	var multi Selection
	multi.Start(Pos{Row: 2, Col: 1})
	multi.Update(Pos{Row: 0, Col: 3})

	cases := []struct {
		p    Pos
		want bool
	}{
		{p: Pos{Row: 0, Col: 2}, want: false},
		{p: Pos{Row: 0, Col: 3}, want: true},
		{p: Pos{Row: 0, Col: 50}, want: true},
		{p: Pos{Row: 1, Col: 0}, want: true},
		{p: Pos{Row: 2, Col: 0}, want: true},
		{p: Pos{Row: 2, Col: 1}, want: false},
		{p: Pos{Row: 3, Col: 0}, want: false},
	}
	for _, tc := range cases {
		if got := multi.Contains(tc.p); got != tc.want {
			t.Fatalf("multi Contains(%v)=%v, want %v", tc.p, got, tc.want)
		}
	}

	var single Selection
	single.Start(Pos{Row: 1, Col: 2})
	single.Update(Pos{Row: 1, Col: 4})
	for col, want := range []bool{false, false, true, true, false} {
		if got := single.Contains(Pos{Row: 1, Col: col}); got != want {
			t.Fatalf("single Contains(1,%d)=%v, want %v", col, got, want)
		}
	}

	var none Selection
	if none.Contains(Pos{}) {
		t.Fatalf("empty selection contains nothing")
	}
}

func TestSelection_SelectWordAt(t *testing.T) {
	b := New("hello world\n  !", Options{})
	var s Selection

	if !s.SelectWordAt(b, Pos{Row: 0, Col: 1}) {
		t.Fatalf("expected word selection")
	}
	r, _ := s.Bounds()
	if r != (Range{Start: Pos{Row: 0, Col: 0}, End: Pos{Row: 0, Col: 5}}) {
		t.Fatalf("bounds=%v, want [(0,0),(0,5))", r)
	}
	if got := s.Text(b); got != "hello" {
		t.Fatalf("text=%q, want hello", got)
	}

	if s.SelectWordAt(b, Pos{Row: 0, Col: 11}) {
		t.Fatalf("expected no word at end of line")
	}
	if s.SelectWordAt(b, Pos{Row: 1, Col: 2}) {
		t.Fatalf("expected no word on punctuation")
	}
	if got := s.Text(b); got != "hello" {
		t.Fatalf("failed select must leave selection unchanged, got %q", got)
	}
}

func TestSelection_SelectLineAndAll(t *testing.T) {
	b := New("one\ntwo\nthree", Options{})
	var s Selection

	s.SelectLine(b, 1)
	if got := s.Text(b); got != "two" {
		t.Fatalf("line text=%q, want two", got)
	}

	s.SelectAll(b)
	if got := s.Text(b); got != "one\ntwo\nthree" {
		t.Fatalf("all text=%q", got)
	}
	r, _ := s.Bounds()
	if r.End != (Pos{Row: 2, Col: 5}) {
		t.Fatalf("select all end=%v, want (2,5)", r.End)
	}
}

func TestSelection_SelectAll_EmptyDocumentHasNoSelection(t *testing.T) {
	b := New("", Options{})
	var s Selection
	s.SelectAll(b)
	if s.HasSelection() {
		t.Fatalf("select all on an empty document is zero-width")
	}
	if got := s.Text(b); got != "" {
		t.Fatalf("text=%q, want empty", got)
	}
}
