package core

import "testing"

func TestRectFOverlaps(t *testing.T) {
	tests := []struct {
		name     string
		a, b     RectF
		expected bool
	}{
		{
			name:     "overlapping boxes",
			a:        NewRectF(0, 0, 10, 10),
			b:        NewRectF(5, 5, 10, 10),
			expected: true,
		},
		{
			name:     "separated horizontally",
			a:        NewRectF(0, 0, 10, 10),
			b:        NewRectF(15, 0, 10, 10),
			expected: false,
		},
		{
			name:     "separated vertically",
			a:        NewRectF(0, 0, 10, 10),
			b:        NewRectF(0, 15, 10, 10),
			expected: false,
		},
		{
			name:     "touching edges horizontally",
			a:        NewRectF(0, 0, 10, 10),
			b:        NewRectF(10, 0, 10, 10),
			expected: false,
		},
		{
			name:     "touching edges vertically",
			a:        NewRectF(0, 0, 20, 28),
			b:        NewRectF(0, 28, 32, 32),
			expected: false,
		},
		{
			name:     "sub-unit overlap",
			a:        NewRectF(0, 0, 20, 28.4),
			b:        NewRectF(0, 28, 32, 32),
			expected: true,
		},
		{
			name:     "contained box",
			a:        NewRectF(0, 0, 32, 32),
			b:        NewRectF(8, 8, 16, 16),
			expected: true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.a.Overlaps(tc.b); got != tc.expected {
				t.Errorf("Overlaps() = %v, expected %v", got, tc.expected)
			}
			if got := tc.b.Overlaps(tc.a); got != tc.expected {
				t.Errorf("Overlaps() (reversed) = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestRectFEdges(t *testing.T) {
	r := NewRectF(64, 160, 20, 28)

	if r.Right() != 84 {
		t.Errorf("Right() = %f, expected 84", r.Right())
	}
	if r.Bottom() != 188 {
		t.Errorf("Bottom() = %f, expected 188", r.Bottom())
	}
	if r.CenterX() != 74 {
		t.Errorf("CenterX() = %f, expected 74", r.CenterX())
	}
}

func TestFloorDiv(t *testing.T) {
	tests := []struct {
		v, d     float64
		expected int
	}{
		{0, 32, 0},
		{31.9, 32, 0},
		{32, 32, 1},
		{-0.5, 32, -1},
		{-32, 32, -1},
		{-32.1, 32, -2},
	}

	for _, tc := range tests {
		if got := FloorDiv(tc.v, tc.d); got != tc.expected {
			t.Errorf("FloorDiv(%f, %f) = %d, expected %d", tc.v, tc.d, got, tc.expected)
		}
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, min, max, expected int
	}{
		{5, 0, 10, 5},
		{-5, 0, 10, 0},
		{15, 0, 10, 10},
		{0, 0, 10, 0},
		{10, 0, 10, 10},
	}

	for _, tc := range tests {
		if got := Clamp(tc.val, tc.min, tc.max); got != tc.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tc.val, tc.min, tc.max, got, tc.expected)
		}
	}
}

func TestClampF(t *testing.T) {
	tests := []struct {
		val, min, max, expected float64
	}{
		{5.5, 0.0, 10.0, 5.5},
		{-5.5, 0.0, 10.0, 0.0},
		{15.5, 0.0, 10.0, 10.0},
	}

	for _, tc := range tests {
		if got := ClampF(tc.val, tc.min, tc.max); got != tc.expected {
			t.Errorf("ClampF(%f, %f, %f) = %f, expected %f", tc.val, tc.min, tc.max, got, tc.expected)
		}
	}
}
