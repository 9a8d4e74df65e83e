package game

import (
	"math"
	"testing"
)

func TestDist(t *testing.T) {
	cases := []struct {
		ax, ay, bx, by float64
		want           float64
	}{
		{0, 0, 3, 4, 5},
		{1, 1, 1, 1, 0},
		{-3, 0, 3, 0, 6},
		{100, 200, 100, 260, 60},
	}
	for _, c := range cases {
		got := Dist(c.ax, c.ay, c.bx, c.by)
		if math.Abs(got-c.want) > 1e-9 {
			t.Errorf("Dist(%v,%v,%v,%v) = %v, want %v", c.ax, c.ay, c.bx, c.by, got, c.want)
		}
	}
}

func TestDirToUnitLength(t *testing.T) {
	dx, dy := DirTo(10, 20, -5, 80)
	if l := math.Hypot(dx, dy); math.Abs(l-1) > 1e-9 {
		t.Errorf("direction length = %v, want 1", l)
	}
	dx, dy = DirTo(0, 0, 5, 0)
	if dx != 1 || dy != 0 {
		t.Errorf("DirTo along x = (%v,%v), want (1,0)", dx, dy)
	}
}

func TestDirToCoincidentIsZero(t *testing.T) {
	dx, dy := DirTo(42, 17, 42, 17)
	if dx != 0 || dy != 0 {
		t.Errorf("coincident points gave (%v,%v), want (0,0)", dx, dy)
	}
	// Near-coincident must not blow up into NaN either.
	dx, dy = DirTo(1, 1, 1+1e-12, 1)
	if math.IsNaN(dx) || math.IsNaN(dy) {
		t.Errorf("near-coincident points gave NaN direction")
	}
}
