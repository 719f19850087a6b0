package utils

import "testing"

func TestRectOverlaps(t *testing.T) {
	base := NewRect(0, 0, 10, 10)

	tests := []struct {
		name  string
		other Rect
		want  bool
	}{
		{"identical", NewRect(0, 0, 10, 10), true},
		{"partial", NewRect(5, 5, 10, 10), true},
		{"touching edge", NewRect(10, 0, 5, 5), true},
		{"touching corner", NewRect(10, 10, 5, 5), true},
		{"left of", NewRect(-6, 0, 5, 5), false},
		{"below", NewRect(0, 10.5, 5, 5), false},
		{"contained", NewRect(2, 2, 2, 2), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := base.Overlaps(tt.other); got != tt.want {
				t.Errorf("Overlaps: expected %v, got %v", tt.want, got)
			}
			if got := tt.other.Overlaps(base); got != tt.want {
				t.Errorf("Overlaps should be symmetric: expected %v, got %v", tt.want, got)
			}
		})
	}
}

func TestRectContainsStrict(t *testing.T) {
	r := NewRect(10, 20, 100, 50)

	if !r.ContainsStrict(60, 45) {
		t.Error("Center point should be inside")
	}
	if r.ContainsStrict(10, 45) {
		t.Error("Point on left edge should not be strictly inside")
	}
	if r.ContainsStrict(60, 70) {
		t.Error("Point on bottom edge should not be strictly inside")
	}

	box := NewRect(100, 60, 40, 40) // 中心 (120, 80) 在外
	if r.ContainsCenterOf(box) {
		t.Error("Box center outside the rect should not count")
	}
	box = NewRect(90, 30, 40, 40) // 中心 (110, 50)
	if r.ContainsCenterOf(box) {
		t.Error("Box center on right edge should not count")
	}
	box = NewRect(80, 30, 40, 40) // 中心 (100, 50)
	if !r.ContainsCenterOf(box) {
		t.Error("Box center inside should count even if the box sticks out")
	}
}

func TestClampBoxInto(t *testing.T) {
	container := NewRect(100, 100, 200, 100)

	x, y := ClampBoxInto(50, 250, 40, 40, container)
	if x != 100 || y != 160 {
		t.Errorf("Expected (100, 160), got (%f, %f)", x, y)
	}

	x, y = ClampBoxInto(150, 120, 40, 40, container)
	if x != 150 || y != 120 {
		t.Errorf("In-range box should not move, got (%f, %f)", x, y)
	}

	// 容器比盒子小时贴左上角
	tiny := NewRect(0, 0, 10, 10)
	x, y = ClampBoxInto(5, 5, 40, 40, tiny)
	if x != 0 || y != 0 {
		t.Errorf("Expected (0, 0) for oversize box, got (%f, %f)", x, y)
	}
}

func TestRectContains(t *testing.T) {
	r := NewRect(10, 10, 20, 20)
	tests := []struct {
		name string
		x, y float64
		want bool
	}{
		{"top-left corner", 10, 10, true},
		{"inside", 15, 25, true},
		{"right edge", 30, 15, false},
		{"bottom edge", 15, 30, false},
		{"left of rect", 9.9, 15, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := r.Contains(tt.x, tt.y); got != tt.want {
				t.Errorf("Contains(%v, %v) = %v, expected %v", tt.x, tt.y, got, tt.want)
			}
		})
	}
}
