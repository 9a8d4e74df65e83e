package game

// TestSim is a deterministic harness used by tests and the headless report
// runner. It wraps a Sim started straight into the playing phase, with a
// structured log attached and direct entity injection so scenarios can be
// set up without waiting on the spawner's dice.
type TestSim struct {
	Sim    *Sim
	SimLog *SimLog

	seed    int64
	verbose bool
}

// simOptionKind controls the pass in which an option is applied.
type simOptionKind int

const (
	simOptInfra  simOptionKind = iota // seed and verbose, applied before the Sim exists
	simOptEntity                      // injected entities and state, applied after Start
)

// SimOption is a builder function applied to a TestSim during construction.
type SimOption struct {
	kind simOptionKind
	fn   func(*TestSim)
}

// WithSeed sets the RNG seed for deterministic runs.
func WithSeed(seed int64) SimOption {
	return SimOption{simOptInfra, func(ts *TestSim) { ts.seed = seed }}
}

// WithVerbose enables per-tick verbose logging.
func WithVerbose(v bool) SimOption {
	return SimOption{simOptInfra, func(ts *TestSim) { ts.verbose = v }}
}

// WithoutSpawning suppresses random rocket spawns so injected entities are
// the only things in the air.
func WithoutSpawning() SimOption {
	return SimOption{simOptEntity, func(ts *TestSim) { ts.Sim.noSpawn = true }}
}

// WithRocket injects a rocket at (x,y) descending toward (tx,ty).
func WithRocket(x, y, tx, ty, speed float64) SimOption {
	return SimOption{simOptEntity, func(ts *TestSim) {
		ts.AddRocket(x, y, tx, ty, speed)
	}}
}

// WithMissile injects an in-flight missile at (x,y) heading for (dx,dy).
func WithMissile(x, y, dx, dy float64) SimOption {
	return SimOption{simOptEntity, func(ts *TestSim) {
		ts.AddMissile(x, y, dx, dy)
	}}
}

// WithExplosion injects a live blast with the given radius and phase.
func WithExplosion(x, y, radius float64, growing bool) SimOption {
	return SimOption{simOptEntity, func(ts *TestSim) {
		ts.AddExplosion(x, y, radius, growing)
	}}
}

// WithScore presets the score, e.g. to test the win threshold or spawn ramp.
func WithScore(n int) SimOption {
	return SimOption{simOptEntity, func(ts *TestSim) { ts.Sim.score = n }}
}

// WithDestroyedBattery marks battery i (0=left, 1=centre, 2=right) as rubble.
func WithDestroyedBattery(i int) SimOption {
	return SimOption{simOptEntity, func(ts *TestSim) { ts.Sim.batteries[i].destroy() }}
}

// WithBatteryAmmo overrides battery i's remaining ammo.
func WithBatteryAmmo(i, ammo int) SimOption {
	return SimOption{simOptEntity, func(ts *TestSim) { ts.Sim.batteries[i].ammo = ammo }}
}

// WithDestroyedCity marks city i as rubble.
func WithDestroyedCity(i int) SimOption {
	return SimOption{simOptEntity, func(ts *TestSim) { ts.Sim.cities[i].destroyed = true }}
}

// NewTestSim constructs a harness in two ordered passes: infrastructure
// first (seed, verbose), then Start, then entity injection.
func NewTestSim(opts ...SimOption) *TestSim {
	ts := &TestSim{seed: 1}
	for _, o := range opts {
		if o.kind == simOptInfra {
			o.fn(ts)
		}
	}
	ts.Sim = NewSim(ts.seed)
	ts.SimLog = NewSimLog(ts.verbose)
	ts.Sim.AttachLog(ts.SimLog)
	ts.Sim.Start()
	for _, o := range opts {
		if o.kind == simOptEntity {
			o.fn(ts)
		}
	}
	return ts
}

// AddRocket injects a rocket mid-flight and returns it for tracking.
func (ts *TestSim) AddRocket(x, y, tx, ty, speed float64) *Rocket {
	s := ts.Sim
	r := &Rocket{
		id:      s.nextID,
		x:       x,
		y:       y,
		originX: x,
		originY: y,
		targetX: tx,
		targetY: ty,
		speed:   speed,
	}
	s.nextID++
	s.rockets = append(s.rockets, r)
	return r
}

// AddMissile injects a missile mid-flight and returns it for tracking.
func (ts *TestSim) AddMissile(x, y, dx, dy float64) *Missile {
	s := ts.Sim
	m := &Missile{
		id:      s.nextID,
		x:       x,
		y:       y,
		originX: x,
		originY: y,
		destX:   dx,
		destY:   dy,
	}
	s.nextID++
	s.missiles = append(s.missiles, m)
	return m
}

// AddExplosion injects a live blast and returns it for tracking.
func (ts *TestSim) AddExplosion(x, y, radius float64, growing bool) *Explosion {
	s := ts.Sim
	e := &Explosion{
		id:      s.nextID,
		x:       x,
		y:       y,
		radius:  radius,
		growing: growing,
	}
	s.nextID++
	s.explosions = append(s.explosions, e)
	return e
}

// RunTicks advances the simulation n ticks.
func (ts *TestSim) RunTicks(n int) {
	for i := 0; i < n; i++ {
		ts.Sim.Tick()
	}
}

// RunUntil advances the simulation up to maxTicks, stopping early if
// predicate returns true. Returns the tick at which the predicate was
// satisfied, or -1.
func (ts *TestSim) RunUntil(predicate func(*Sim) bool, maxTicks int) int {
	for i := 0; i < maxTicks; i++ {
		ts.Sim.Tick()
		if predicate(ts.Sim) {
			return ts.Sim.tick
		}
	}
	return -1
}
