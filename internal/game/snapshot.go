package game

// AmmoSnapshot is the per-battery ammo readout in fixed left/centre/right
// order, regardless of which batteries still stand.
type AmmoSnapshot struct {
	Left   int
	Center int
	Right  int
}

// Snapshot is the immutable per-tick view the UI layer consumes. The core
// returns a fresh value from every Tick call; nothing in it aliases store
// state.
type Snapshot struct {
	Score int
	Ammo  AmmoSnapshot
	Phase Phase
}

func (s *Sim) buildSnapshot() Snapshot {
	return Snapshot{
		Score: s.score,
		Ammo: AmmoSnapshot{
			Left:   s.batteries[0].ammo,
			Center: s.batteries[1].ammo,
			Right:  s.batteries[2].ammo,
		},
		Phase: s.phase,
	}
}

// --- Read-only store views for the rendering collaborator ---

// Rockets returns the live rocket store. Callers must not mutate it.
func (s *Sim) Rockets() []*Rocket { return s.rockets }

// Missiles returns the live missile store. Callers must not mutate it.
func (s *Sim) Missiles() []*Missile { return s.missiles }

// Explosions returns the live explosion store. Callers must not mutate it.
func (s *Sim) Explosions() []*Explosion { return s.explosions }

// Batteries returns the three battery slots in left/centre/right order.
func (s *Sim) Batteries() [3]*Battery { return s.batteries }

// Cities returns the six city slots.
func (s *Sim) Cities() [6]*City { return s.cities }

// Score returns the current score.
func (s *Sim) Score() int { return s.score }

// Phase returns the current round phase.
func (s *Sim) Phase() Phase { return s.phase }

// CurrentTick returns the number of playing-phase ticks since the last restart.
func (s *Sim) CurrentTick() int { return s.tick }
