package game

import "math"

// Dist returns the Euclidean distance between (ax,ay) and (bx,by).
func Dist(ax, ay, bx, by float64) float64 {
	dx := bx - ax
	dy := by - ay
	return math.Sqrt(dx*dx + dy*dy)
}

// DirTo returns the unit vector pointing from (ax,ay) toward (bx,by).
// Coincident points yield (0,0) so callers never divide by zero; a rocket
// sitting exactly on its target is treated as arrived, not NaN.
func DirTo(ax, ay, bx, by float64) (float64, float64) {
	dx := bx - ax
	dy := by - ay
	d := math.Sqrt(dx*dx + dy*dy)
	if d < 1e-9 {
		return 0, 0
	}
	return dx / d, dy / d
}
