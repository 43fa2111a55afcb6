package core

import (
	"strings"
	"testing"
)

func TestNewScreen(t *testing.T) {
	s := NewScreen(80, 24)

	if s.Width() != 80 {
		t.Errorf("Width() = %d, expected 80", s.Width())
	}
	if s.Height() != 24 {
		t.Errorf("Height() = %d, expected 24", s.Height())
	}

	// Check that it's initialized with spaces
	for y := 0; y < s.Height(); y++ {
		for x := 0; x < s.Width(); x++ {
			if s.Get(x, y) != ' ' {
				t.Errorf("New screen should be filled with spaces, got %q at (%d, %d)", s.Get(x, y), x, y)
			}
		}
	}
}

func TestScreenSetGet(t *testing.T) {
	s := NewScreen(10, 10)

	s.Set(5, 5, 'X')
	if s.Get(5, 5) != 'X' {
		t.Errorf("Get(5, 5) = %q, expected 'X'", s.Get(5, 5))
	}

	// Out of bounds should be silent
	s.Set(-1, 0, 'A')  // Should not panic
	s.Set(100, 0, 'A') // Should not panic
	s.Set(0, -1, 'A')  // Should not panic
	s.Set(0, 100, 'A') // Should not panic

	// Out of bounds get should return space
	if s.Get(-1, 0) != ' ' {
		t.Error("Out of bounds Get should return space")
	}
	if s.Get(100, 0) != ' ' {
		t.Error("Out of bounds Get should return space")
	}
}

func TestScreenClear(t *testing.T) {
	s := NewScreen(10, 10)

	// Fill with some characters
	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {
			s.Set(x, y, 'X')
		}
	}

	s.Clear()

	// Should all be spaces now
	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {
			if s.Get(x, y) != ' ' {
				t.Errorf("After Clear, expected space at (%d, %d), got %q", x, y, s.Get(x, y))
			}
		}
	}
}

func TestScreenDrawText(t *testing.T) {
	s := NewScreen(20, 5)
	s.DrawText(2, 1, "Hello")

	expected := "Hello"
	for i, ch := range expected {
		if s.Get(2+i, 1) != ch {
			t.Errorf("DrawText: expected %q at (%d, 1), got %q", ch, 2+i, s.Get(2+i, 1))
		}
	}

	// Text should be clipped at boundaries
	s.DrawText(18, 0, "Hello") // Only "He" should fit
	if s.Get(18, 0) != 'H' || s.Get(19, 0) != 'e' {
		t.Error("Text should be clipped at right boundary")
	}
}

func TestScreenDrawTextCentered(t *testing.T) {
	s := NewScreen(20, 5)
	text := "Hi"
	s.DrawTextCentered(2, text)

	// "Hi" is 2 chars, centered in 20 chars should start at position 9
	x := (20 - 2) / 2
	if s.Get(x, 2) != 'H' || s.Get(x+1, 2) != 'i' {
		t.Errorf("DrawTextCentered failed, text not at expected position")
	}
}

func TestScreenDrawBox(t *testing.T) {
	s := NewScreen(10, 10)
	s.DrawBox(NewRect(1, 1, 5, 4))

	want := []string{
		"          ",
		" ┌───┐    ",
		" │   │    ",
		" │   │    ",
		" └───┘    ",
	}
	for y, row := range want {
		if got := s.Row(y); got != row {
			t.Errorf("row %d = %q, want %q", y, got, row)
		}
	}
}

func TestScreenDrawBoxColored(t *testing.T) {
	s := NewScreen(6, 4)
	s.DrawBoxColored(NewRect(0, 0, 6, 4), ColorGray)

	for _, p := range [][2]int{{0, 0}, {5, 0}, {0, 3}, {5, 3}, {2, 0}, {0, 2}} {
		if c := s.GetCell(p[0], p[1]); c.Color != ColorGray || c.Rune == ' ' {
			t.Errorf("cell %v = %+v, want gray border", p, c)
		}
	}
	if c := s.GetCell(2, 2); c != blank {
		t.Errorf("interior should stay blank, got %+v", c)
	}

	// Degenerate boxes draw nothing
	s.Clear()
	s.DrawBoxColored(NewRect(1, 1, 1, 3), ColorGray)
	if s.String() != NewScreen(6, 4).String() {
		t.Error("1-wide box should not be drawn")
	}
}

func TestScreenFillRect(t *testing.T) {
	s := NewScreen(5, 3)
	s.DrawTextColored(0, 1, "abcde", ColorYellow)
	s.FillRect(NewRect(1, 0, 3, 2), '#')

	if got := s.Row(0); got != " ### " {
		t.Errorf("row 0 = %q", got)
	}
	if got := s.Row(1); got != "a###e" {
		t.Errorf("row 1 = %q", got)
	}
	if c := s.GetCell(2, 1); c.Color != ColorDefault {
		t.Errorf("filled cell should lose its color, got %v", c.Color)
	}
	if c := s.GetCell(0, 1); c.Color != ColorYellow {
		t.Error("cells outside the rect keep their color")
	}

	// Clipped at the screen edge
	s.FillRect(NewRect(3, 2, 10, 10), '.')
	if got := s.Row(2); got != "   .." {
		t.Errorf("row 2 = %q", got)
	}
}

func TestScreenString(t *testing.T) {
	s := NewScreen(5, 3)
	s.DrawText(0, 0, "AAAAA")
	s.DrawText(0, 1, "BBBBB")
	s.DrawText(0, 2, "CCCCC")

	result := s.String()
	expected := "AAAAA\nBBBBB\nCCCCC"

	if result != expected {
		t.Errorf("String() = %q, expected %q", result, expected)
	}
}

func TestScreenResize(t *testing.T) {
	s := NewScreen(10, 10)
	s.DrawText(0, 0, "Hello")
	s.DrawText(0, 5, "World")

	// Resize smaller - should preserve top-left content
	s.Resize(8, 4)
	if s.Width() != 8 || s.Height() != 4 {
		t.Errorf("After resize, dimensions should be 8x4, got %dx%d", s.Width(), s.Height())
	}

	row0 := s.Row(0)
	if !strings.HasPrefix(row0, "Hello") {
		t.Errorf("Content should be preserved, row 0 = %q", row0)
	}

	// Resize larger - old content should still be there
	s.Resize(15, 8)
	row0 = s.Row(0)
	if !strings.HasPrefix(row0, "Hello") {
		t.Errorf("Content should be preserved after enlarging, row 0 = %q", row0)
	}
}

func TestScreenRow(t *testing.T) {
	s := NewScreen(10, 5)
	s.DrawText(0, 2, "Test")

	row := s.Row(2)
	if !strings.HasPrefix(row, "Test") {
		t.Errorf("Row(2) should start with 'Test', got %q", row)
	}
	if len(row) != 10 {
		t.Errorf("Row length should be 10, got %d", len(row))
	}

	// Out of bounds row
	outOfBounds := s.Row(-1)
	if outOfBounds != "          " {
		t.Errorf("Out of bounds row should be spaces, got %q", outOfBounds)
	}
}

func TestScreenColoredCells(t *testing.T) {
	s := NewScreen(10, 3)
	s.DrawTextColored(1, 1, "██", ColorTilePink)
	s.Set(4, 1, 'x')

	if c := s.GetCell(1, 1); c.Rune != '█' || c.Color != ColorTilePink {
		t.Errorf("GetCell(1, 1) = %+v, expected pink block", c)
	}
	if c := s.GetCell(2, 1); c.Color != ColorTilePink {
		t.Errorf("multi-byte runes should advance one cell, got %+v at (2, 1)", c)
	}
	if c := s.GetCell(4, 1); c.Color != ColorDefault {
		t.Errorf("Set should use the default color, got %v", c.Color)
	}

	s.Clear()
	if c := s.GetCell(1, 1); c.Rune != ' ' || c.Color != ColorDefault {
		t.Errorf("Clear should reset color, got %+v", c)
	}
}

func TestScreenResizeKeepsColors(t *testing.T) {
	s := NewScreen(6, 2)
	s.SetColored(0, 0, '#', ColorTileMoss)
	s.Resize(3, 1)

	if c := s.GetCell(0, 0); c.Color != ColorTileMoss {
		t.Errorf("Resize should keep cell colors, got %+v", c)
	}
}
