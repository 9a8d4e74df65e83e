package game

// Missile is a player-launched interceptor. It is not locked to any one
// rocket: every tick it re-aims at whichever live rocket is nearest within
// missileDetectRange, and otherwise keeps flying toward its last destination.
type Missile struct {
	id   int
	x, y float64

	// Launch origin, fixed, for trail rendering.
	originX, originY float64

	// Mutable destination. Starts at the fire command's target point and is
	// overwritten by heat seeking.
	destX, destY float64
}

// ID returns the missile's unique identifier within its round.
func (m *Missile) ID() int { return m.id }

// Pos returns the missile's current position.
func (m *Missile) Pos() (float64, float64) { return m.x, m.y }

// Origin returns the battery position the missile launched from.
func (m *Missile) Origin() (float64, float64) { return m.originX, m.originY }

// Dest returns the missile's current destination point.
func (m *Missile) Dest() (float64, float64) { return m.destX, m.destY }

// retarget re-aims the missile at the nearest rocket within detection range.
// Strictly nearest wins; ties fall to store order because the comparison is
// strict. With no rocket in range the destination is left untouched.
func (m *Missile) retarget(rockets []*Rocket) {
	best := missileDetectRange
	var lock *Rocket
	for _, r := range rockets {
		d := Dist(m.x, m.y, r.x, r.y)
		if d < best {
			best = d
			lock = r
		}
	}
	if lock != nil {
		m.destX = lock.x
		m.destY = lock.y
	}
}

// advance moves the missile one tick toward its destination and reports
// whether it is within one tick's travel of arriving (detonation range).
func (m *Missile) advance() (arrived bool) {
	if Dist(m.x, m.y, m.destX, m.destY) < missileSpeed {
		return true
	}
	dx, dy := DirTo(m.x, m.y, m.destX, m.destY)
	m.x += dx * missileSpeed
	m.y += dy * missileSpeed
	return false
}
