package core

import (
	"strings"
	"testing"
)

func TestScreenSetAndGet(t *testing.T) {
	s := NewScreen(10, 5)

	s.SetCell(3, 2, 'X', ColorRed)
	got := s.GetCell(3, 2)
	if got.Rune != 'X' || got.Color != ColorRed {
		t.Errorf("cell = %+v, want X/red", got)
	}
	if s.Get(3, 2) != 'X' {
		t.Errorf("Get = %q, want X", s.Get(3, 2))
	}

	// Out of bounds writes are ignored, reads return a blank cell
	s.SetCell(-1, 0, 'Y', ColorBlue)
	s.SetCell(10, 0, 'Y', ColorBlue)
	s.SetCell(0, 5, 'Y', ColorBlue)
	if c := s.GetCell(-1, 0); c.Rune != ' ' {
		t.Errorf("oob cell = %+v, want blank", c)
	}
}

func TestScreenClear(t *testing.T) {
	s := NewScreen(4, 3)
	s.Set(1, 1, '#')

	s.Clear()
	if s.Get(1, 1) != ' ' {
		t.Error("Clear did not reset cell")
	}
}

func TestScreenResizePreservesContent(t *testing.T) {
	s := NewScreen(10, 5)
	s.Set(2, 2, 'A')
	s.Set(9, 4, 'B')

	s.Resize(5, 3)
	if s.Width() != 5 || s.Height() != 3 {
		t.Fatalf("size = %dx%d, want 5x3", s.Width(), s.Height())
	}
	if s.Get(2, 2) != 'A' {
		t.Error("content inside new bounds lost")
	}

	s.Resize(12, 6)
	if s.Get(2, 2) != 'A' {
		t.Error("content lost growing back")
	}
	if s.Get(9, 4) != ' ' {
		t.Error("cell dropped in the shrink came back")
	}
}

func TestScreenDrawText(t *testing.T) {
	s := NewScreen(10, 3)

	s.DrawText(2, 1, "hi")
	if s.Get(2, 1) != 'h' || s.Get(3, 1) != 'i' {
		t.Error("DrawText misplaced")
	}

	// Clipped at the right edge without panicking
	s.DrawText(8, 0, "long")
	if s.Get(8, 0) != 'l' || s.Get(9, 0) != 'o' {
		t.Error("clipped text misplaced")
	}
}

func TestScreenDrawTextCentered(t *testing.T) {
	s := NewScreen(11, 3)
	s.DrawTextCentered(1, "abc")

	if s.Get(4, 1) != 'a' || s.Get(5, 1) != 'b' || s.Get(6, 1) != 'c' {
		t.Errorf("centered row = %q", s.Row(1))
	}
}

func TestScreenDrawBox(t *testing.T) {
	s := NewScreen(10, 5)
	s.DrawBox(1, 1, 5, 3, ColorWhite)

	if s.Get(1, 1) != '┌' || s.Get(5, 1) != '┐' {
		t.Error("top corners wrong")
	}
	if s.Get(1, 3) != '└' || s.Get(5, 3) != '┘' {
		t.Error("bottom corners wrong")
	}
	if s.Get(3, 1) != '─' || s.Get(1, 2) != '│' {
		t.Error("edges wrong")
	}
}

func TestScreenString(t *testing.T) {
	s := NewScreen(3, 2)
	s.Set(0, 0, 'a')
	s.Set(2, 1, 'b')

	got := s.String()
	want := "a  \n  b"
	if got != want {
		t.Errorf("String = %q, want %q", got, want)
	}
	if strings.Count(got, "\n") != 1 {
		t.Errorf("newlines = %d, want 1", strings.Count(got, "\n"))
	}
}

func TestScreenRow(t *testing.T) {
	s := NewScreen(4, 2)
	s.DrawText(0, 1, "ab")

	if got := s.Row(1); got != "ab  " {
		t.Errorf("Row(1) = %q, want %q", got, "ab  ")
	}
	if got := s.Row(5); got != "    " {
		t.Errorf("oob Row = %q, want blanks", got)
	}
}
