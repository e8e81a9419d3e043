package core

import "testing"

func TestRectContains(t *testing.T) {
	r := NewRect(0, 0, 19, 13)

	tests := []struct {
		name     string
		x, y     int
		expected bool
	}{
		{"inside", 5, 5, true},
		{"top-left corner", 0, 0, true},
		{"last column", 18, 12, true},
		{"right edge (exclusive)", 19, 5, false},
		{"bottom edge (exclusive)", 5, 13, false},
		{"outside left", -1, 5, false},
		{"outside top", 5, -1, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result := r.Contains(tc.x, tc.y)
			if result != tc.expected {
				t.Errorf("Contains(%d, %d) = %v, expected %v", tc.x, tc.y, result, tc.expected)
			}
		})
	}
}

func TestRectEdges(t *testing.T) {
	r := NewRect(5, 10, 20, 15)

	if r.Right() != 25 {
		t.Errorf("Right() = %d, expected 25", r.Right())
	}
	if r.Bottom() != 25 {
		t.Errorf("Bottom() = %d, expected 25", r.Bottom())
	}
}

func TestCoordStep(t *testing.T) {
	tests := []struct {
		dir      Dir
		expected Coord
	}{
		{DirUp, C(3, -1)},
		{DirDown, C(3, 1)},
		{DirLeft, C(2, 0)},
		{DirRight, C(4, 0)},
		{DirNone, C(3, 0)},
	}

	for _, tc := range tests {
		got := C(3, 0).Step(tc.dir)
		if got != tc.expected {
			t.Errorf("Step(%v) = %v, expected %v", tc.dir, got, tc.expected)
		}
	}
}

func TestAbsSign(t *testing.T) {
	if Abs(-5) != 5 || Abs(5) != 5 || Abs(0) != 0 {
		t.Error("Abs returned wrong value")
	}
	if Sign(-7) != -1 || Sign(7) != 1 || Sign(0) != 0 {
		t.Error("Sign returned wrong value")
	}
}
