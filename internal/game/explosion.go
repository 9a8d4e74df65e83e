package game

// Explosion is a transient blast zone. It grows from explosionStartRadius to
// explosionMaxRadius, then shrinks at the same rate and is removed at zero.
// While alive in either phase it destroys any rocket inside its radius.
type Explosion struct {
	id      int
	x, y    float64
	radius  float64
	growing bool
}

// ID returns the explosion's unique identifier within its round.
func (e *Explosion) ID() int { return e.id }

// Pos returns the blast centre.
func (e *Explosion) Pos() (float64, float64) { return e.x, e.y }

// Radius returns the current blast radius.
func (e *Explosion) Radius() float64 { return e.radius }

// Growing reports whether the blast is still in its expansion phase.
func (e *Explosion) Growing() bool { return e.growing }

// step advances the blast one tick and reports whether it has burnt out.
// Radius is clamped at the maximum before the phase flips, so it never
// overshoots even if the growth rate stops dividing the range evenly.
func (e *Explosion) step() (done bool) {
	if e.growing {
		e.radius += explosionGrowthRate
		if e.radius >= explosionMaxRadius {
			e.radius = explosionMaxRadius
			e.growing = false
		}
		return false
	}
	e.radius -= explosionGrowthRate
	return e.radius <= 0
}

// engulfs reports whether the point (x,y) is inside the blast. The strict
// comparison matters at the frame the blast flips to shrinking: a rocket
// sitting exactly on the radius is spared.
func (e *Explosion) engulfs(x, y float64) bool {
	return Dist(e.x, e.y, x, y) < e.radius
}
