package core

import "testing"

func TestScreenSetGet(t *testing.T) {
	s := NewScreen(10, 5)

	s.Set(3, 2, 'x')
	if got := s.Get(3, 2); got != 'x' {
		t.Errorf("Get(3, 2) = %q, expected 'x'", got)
	}

	// Out-of-bounds writes are ignored, reads return space
	s.Set(-1, 0, 'y')
	s.Set(10, 0, 'y')
	if got := s.Get(10, 0); got != ' ' {
		t.Errorf("Out-of-bounds Get = %q, expected space", got)
	}
}

func TestScreenSetColored(t *testing.T) {
	s := NewScreen(10, 5)

	s.SetColored(1, 1, '@', ColorBrightYellow)
	cell := s.GetCell(1, 1)
	if cell.Rune != '@' || cell.Color != ColorBrightYellow {
		t.Errorf("GetCell(1, 1) = %+v, expected '@' in bright yellow", cell)
	}
}

func TestScreenClear(t *testing.T) {
	s := NewScreen(4, 4)
	s.SetColored(0, 0, '#', ColorRed)

	s.Clear()

	cell := s.GetCell(0, 0)
	if cell.Rune != ' ' || cell.Color != ColorDefault {
		t.Errorf("Cleared cell = %+v, expected default space", cell)
	}
}

func TestScreenResizePreservesContent(t *testing.T) {
	s := NewScreen(10, 5)
	s.Set(2, 2, 'x')

	s.Resize(20, 10)
	if s.Get(2, 2) != 'x' {
		t.Error("Resize lost content inside the preserved region")
	}

	s.Resize(2, 2)
	if s.Get(2, 2) != ' ' {
		t.Error("Shrunk screen should clip out-of-range content")
	}
}

func TestScreenDrawText(t *testing.T) {
	s := NewScreen(10, 3)
	s.DrawText(7, 1, "abcde")

	// Clipped at the right edge
	if s.Get(7, 1) != 'a' || s.Get(9, 1) != 'c' {
		t.Errorf("DrawText content wrong: %q", s.Row(1))
	}
}

func TestScreenString(t *testing.T) {
	s := NewScreen(3, 2)
	s.Set(0, 0, 'a')
	s.Set(2, 1, 'b')

	want := "a  \n  b"
	if got := s.String(); got != want {
		t.Errorf("String() = %q, expected %q", got, want)
	}
}
