package game

// Gunner is a deterministic autoplay bot for headless runs. Each tick it
// picks the deepest unengaged rocket and fires one interceptor at a simple
// lead point, then waits out a cooldown. It is intentionally imperfect;
// reports are more useful when some rockets get through.
type Gunner struct {
	sim      *Sim
	cooldown int // ticks between shots
	wait     int
	engaged  map[int]bool // rocket IDs already fired at
}

// NewGunner creates a bot driving the given sim.
func NewGunner(sim *Sim, cooldown int) *Gunner {
	if cooldown < 1 {
		cooldown = 1
	}
	return &Gunner{
		sim:      sim,
		cooldown: cooldown,
		engaged:  make(map[int]bool),
	}
}

// Step issues at most one fire command. Call once per tick, before or after
// Sim.Tick; the fire command is synchronous either way.
func (g *Gunner) Step() {
	if g.wait > 0 {
		g.wait--
		return
	}
	target := g.pickTarget()
	if target == nil {
		return
	}

	// Lead the shot: assume the nearest eligible battery fires, estimate
	// flight time, and aim where the rocket will be by then.
	bx := g.nearestBatteryX(target.x)
	t := Dist(bx, batteryY, target.x, target.y) / missileSpeed
	dx, dy := DirTo(target.x, target.y, target.targetX, target.targetY)
	aimX := target.x + dx*target.speed*t
	aimY := target.y + dy*target.speed*t

	g.sim.Fire(aimX, aimY)
	g.engaged[target.id] = true
	g.wait = g.cooldown
}

// pickTarget returns the unengaged rocket closest to the ground, or nil.
func (g *Gunner) pickTarget() *Rocket {
	var best *Rocket
	for _, r := range g.sim.rockets {
		if g.engaged[r.id] {
			continue
		}
		if best == nil || r.y > best.y {
			best = r
		}
	}
	return best
}

func (g *Gunner) nearestBatteryX(x float64) float64 {
	bx := batteryX[1]
	best := -1.0
	for _, b := range g.sim.batteries {
		if !b.canFire() {
			continue
		}
		d := b.x - x
		if d < 0 {
			d = -d
		}
		if best < 0 || d < best {
			best = d
			bx = b.x
		}
	}
	return bx
}
