package lex

import "testing"

func TestLocate(t *testing.T) {
	text := "a = 1\nb = X\n"
	for _, c := range []struct {
		offset int
		pos    Pos
	}{
		{0, Pos{Line: 1, Column: 1}},
		{4, Pos{Line: 1, Column: 5}},
		{6, Pos{Line: 2, Column: 1}},
		{10, Pos{Line: 2, Column: 5}},
		{100, Pos{Line: 3, Column: 1}},
	} {
		if got := Locate(text, c.offset); got != c.pos {
			t.Fatalf("offset %d: got %v, want %v", c.offset, got, c.pos)
		}
	}
}

func TestLocateMultibyte(t *testing.T) {
	// columns count runes, not bytes
	text := "name = '日本'"
	if got := Locate(text, 11); got != (Pos{Line: 1, Column: 10}) {
		t.Fatalf("got %v", got)
	}
}

func TestAnnotate(t *testing.T) {
	text := "a = 1\nb = X\n"
	want := "b = X\n    ^\n"
	if got := Annotate(text, 10); got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestOffset(t *testing.T) {
	_, err := Scan("a = $")
	if err == nil {
		t.Fatal("expected error")
	}
	if got := Offset(err); got != 4 {
		t.Fatalf("got offset %d", got)
	}
	if got := Offset(nil); got != -1 {
		t.Fatalf("got offset %d for nil", got)
	}
}
