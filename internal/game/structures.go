package game

// Battery is a missile launch site with a fixed position and finite ammo.
// A destroyed battery keeps its slot (ammo snapshots stay three-wide) but
// reports zero ammo and is skipped by both the spawner and the fire command.
type Battery struct {
	x, y      float64
	ammo      int
	capacity  int
	destroyed bool
}

// Pos returns the battery's fixed position.
func (b *Battery) Pos() (float64, float64) { return b.x, b.y }

// Ammo returns the remaining interceptor count.
func (b *Battery) Ammo() int { return b.ammo }

// Capacity returns the round-start ammo count.
func (b *Battery) Capacity() int { return b.capacity }

// Destroyed reports whether the battery has been hit.
func (b *Battery) Destroyed() bool { return b.destroyed }

// canFire reports whether the battery can launch an interceptor.
func (b *Battery) canFire() bool {
	return !b.destroyed && b.ammo > 0
}

// destroy marks the battery as rubble and zeroes its ammo.
func (b *Battery) destroy() {
	b.destroyed = true
	b.ammo = 0
}

// City is a pure damage sink: a destructible target with no gameplay role
// beyond drawing rocket fire away from the batteries.
type City struct {
	x, y      float64
	destroyed bool
}

// Pos returns the city's fixed position.
func (c *City) Pos() (float64, float64) { return c.x, c.y }

// Destroyed reports whether the city has been flattened.
func (c *City) Destroyed() bool { return c.destroyed }
