package game

// rocketVariants is the number of cosmetic rocket looks the renderer knows.
const rocketVariants = 3

// Rocket is an enemy projectile descending toward a fixed structure position.
// Its target never changes after spawn; speed is fixed for its lifetime.
type Rocket struct {
	id   int
	x, y float64

	// Launch point at the top edge, kept for trail rendering only.
	originX, originY float64

	// Target is the aimed structure's position at spawn time. The structure
	// may already be rubble by the time the rocket arrives.
	targetX, targetY float64

	speed   float64 // units per tick, in [rocketSpeedMin, rocketSpeedMax]
	variant int     // cosmetic tag, no effect on behaviour
}

// ID returns the rocket's unique identifier within its round.
func (r *Rocket) ID() int { return r.id }

// Pos returns the rocket's current position.
func (r *Rocket) Pos() (float64, float64) { return r.x, r.y }

// Origin returns the rocket's spawn point (for trail rendering).
func (r *Rocket) Origin() (float64, float64) { return r.originX, r.originY }

// Target returns the fixed position the rocket is descending toward.
func (r *Rocket) Target() (float64, float64) { return r.targetX, r.targetY }

// Variant returns the cosmetic variant index.
func (r *Rocket) Variant() int { return r.variant }

// advance moves the rocket one tick toward its target and reports whether it
// has reached impact range. The impact itself is resolved by the caller.
func (r *Rocket) advance() (impacted bool) {
	if Dist(r.x, r.y, r.targetX, r.targetY) < rocketImpactDist {
		return true
	}
	dx, dy := DirTo(r.x, r.y, r.targetX, r.targetY)
	r.x += dx * r.speed
	r.y += dy * r.speed
	return false
}
