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

	for y := 0; y < s.Height(); y++ {
		for x := 0; x < s.Width(); x++ {
			if s.Get(x, y) != ' ' {
				t.Fatalf("New screen should be filled with spaces, got %q at (%d, %d)", s.Get(x, y), x, y)
			}
		}
	}
}

func TestScreenSetGet(t *testing.T) {
	s := NewScreen(10, 10)

	s.Set(5, 5, 'O', ColorBubble)
	cell := s.GetCell(5, 5)
	if cell.Rune != 'O' || cell.Color != ColorBubble {
		t.Errorf("GetCell(5, 5) = %+v, expected 'O' in ColorBubble", cell)
	}

	// Out of bounds should be silent
	s.Set(-1, 0, 'A', ColorDefault)
	s.Set(100, 0, 'A', ColorDefault)
	s.Set(0, -1, 'A', ColorDefault)
	s.Set(0, 100, 'A', ColorDefault)

	if s.Get(-1, 0) != ' ' {
		t.Error("Out of bounds Get should return space")
	}
	if s.Get(100, 0) != ' ' {
		t.Error("Out of bounds Get should return space")
	}
}

func TestScreenClear(t *testing.T) {
	s := NewScreen(10, 10)
	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {
			s.Set(x, y, 'X', ColorLine)
		}
	}

	s.Clear()

	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {
			if c := s.GetCell(x, y); c.Rune != ' ' || c.Color != ColorDefault {
				t.Fatalf("After Clear, expected blank cell at (%d, %d), got %+v", x, y, c)
			}
		}
	}
}

func TestScreenDrawText(t *testing.T) {
	s := NewScreen(20, 5)
	s.DrawText(2, 1, "Hello", ColorHUD)

	for i, ch := range "Hello" {
		if s.Get(2+i, 1) != ch {
			t.Errorf("DrawText: expected %q at (%d, 1), got %q", ch, 2+i, s.Get(2+i, 1))
		}
	}

	// Text should be clipped at boundaries
	s.DrawText(18, 0, "Hello", ColorHUD)
	if s.Get(18, 0) != 'H' || s.Get(19, 0) != 'e' {
		t.Error("Text should be clipped at right boundary")
	}
}

func TestScreenDrawTextCentered(t *testing.T) {
	s := NewScreen(20, 5)
	s.DrawTextCentered(2, "Hi", ColorHUD)

	x := (20 - 2) / 2
	if s.Get(x, 2) != 'H' || s.Get(x+1, 2) != 'i' {
		t.Errorf("DrawTextCentered failed, text not at expected position")
	}
}

func TestScreenDrawSegment(t *testing.T) {
	tests := []struct {
		name           string
		x0, y0, x1, y1 int
		expected       [][2]int
	}{
		{"horizontal", 1, 2, 5, 2, [][2]int{{1, 2}, {2, 2}, {3, 2}, {4, 2}, {5, 2}}},
		{"vertical reversed", 3, 4, 3, 1, [][2]int{{3, 1}, {3, 2}, {3, 3}, {3, 4}}},
		{"diagonal", 0, 0, 3, 3, [][2]int{{0, 0}, {1, 1}, {2, 2}, {3, 3}}},
		{"single cell", 4, 4, 4, 4, [][2]int{{4, 4}}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := NewScreen(10, 10)
			s.DrawSegment(tc.x0, tc.y0, tc.x1, tc.y1, '*', ColorLine)
			for _, p := range tc.expected {
				if s.Get(p[0], p[1]) != '*' {
					t.Errorf("expected '*' at (%d, %d)", p[0], p[1])
				}
			}
			count := strings.Count(s.String(), "*")
			if count != len(tc.expected) {
				t.Errorf("drew %d cells, expected %d", count, len(tc.expected))
			}
		})
	}
}

func TestScreenString(t *testing.T) {
	s := NewScreen(5, 3)
	s.DrawText(0, 0, "AAAAA", ColorDefault)
	s.DrawText(0, 1, "BBBBB", ColorDefault)
	s.DrawText(0, 2, "CCCCC", ColorDefault)

	result := s.String()
	expected := "AAAAA\nBBBBB\nCCCCC"

	if result != expected {
		t.Errorf("String() = %q, expected %q", result, expected)
	}
}

func TestScreenResize(t *testing.T) {
	s := NewScreen(10, 10)
	s.DrawText(0, 0, "Hello", ColorDefault)

	s.Resize(8, 4)
	if s.Width() != 8 || s.Height() != 4 {
		t.Errorf("After resize, dimensions should be 8x4, got %dx%d", s.Width(), s.Height())
	}
	if s.Row(0) != "        " {
		t.Errorf("Resize should clear content, row 0 = %q", s.Row(0))
	}
}

func TestScreenRow(t *testing.T) {
	s := NewScreen(10, 5)
	s.DrawText(0, 2, "Test", ColorDefault)

	row := s.Row(2)
	if !strings.HasPrefix(row, "Test") {
		t.Errorf("Row(2) should start with 'Test', got %q", row)
	}
	if len(row) != 10 {
		t.Errorf("Row length should be 10, got %d", len(row))
	}

	if outOfBounds := s.Row(-1); outOfBounds != "          " {
		t.Errorf("Out of bounds row should be spaces, got %q", outOfBounds)
	}
}

func TestProjectionRoundTrip(t *testing.T) {
	p := Projection{Width: 80, Height: 24, CellsPerUnitX: 10, CellsPerUnitY: 5}

	half := p.HalfExtents()
	if half.X != 4 || half.Y != 2.4 {
		t.Errorf("HalfExtents() = %v, expected (4, 2.4)", half)
	}

	for _, c := range [][2]int{{0, 0}, {40, 12}, {79, 23}, {13, 7}} {
		x, y := p.ToCell(p.ToWorld(c[0], c[1]))
		if x != c[0] || y != c[1] {
			t.Errorf("ToCell(ToWorld(%d, %d)) = (%d, %d)", c[0], c[1], x, y)
		}
	}

	// Y grows upwards in world space
	top := p.ToWorld(40, 0)
	bottom := p.ToWorld(40, 23)
	if top.Y <= bottom.Y {
		t.Errorf("top row should have larger Y than bottom row: %v vs %v", top, bottom)
	}

	if x, y := p.ToCell(Pt(0, 0)); x != 40 || y != 12 {
		t.Errorf("origin should map to screen center, got (%d, %d)", x, y)
	}
}
