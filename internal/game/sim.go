package game

import (
	"fmt"
	"math"
	"math/rand"
	"time"
)

// Sim is the whole simulation for one session: entity stores, score, phase,
// and the RNG driving spawns. It is single-threaded and frame-driven:
// exactly one Tick call per animation frame, Fire is the only mutation
// arriving outside the tick cadence. There is no global state; construct one
// Sim per session and discard it when the session ends.
type Sim struct {
	rng *rand.Rand
	log *SimLog // nil unless a harness or report runner attaches one

	// noSpawn suppresses the spawner; harness-only, so scenario tests can
	// inject entities without random rockets drifting into them.
	noSpawn bool

	tick   int
	score  int
	phase  Phase
	nextID int

	rockets    []*Rocket
	missiles   []*Missile
	explosions []*Explosion
	batteries  [3]*Battery
	cities     [6]*City

	// Latest observable state, rebuilt at the end of each playing tick and
	// returned unchanged while the round is not running.
	snap Snapshot

	// One-shot celebration callback, invoked on the playing → won
	// transition. UI-side only; the core never reads it back.
	onWin func()

	stats RoundStats
}

// NewSim creates a session in the menu phase. Seed 0 means "use the clock";
// tests and headless runs pass a fixed seed for determinism.
func NewSim(seed int64) *Sim {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	s := &Sim{
		rng: rand.New(rand.NewSource(seed)), // #nosec G404 -- game RNG, not crypto
	}
	s.reset()
	s.phase = PhaseMenu
	s.snap = s.buildSnapshot()
	return s
}

// AttachLog wires a structured log into the sim. Pass nil to detach.
func (s *Sim) AttachLog(l *SimLog) { s.log = l }

// SetWinHook registers the celebration callback fired once on winning.
func (s *Sim) SetWinHook(fn func()) { s.onWin = fn }

// reset rebuilds every store to the round's fixed initial configuration.
func (s *Sim) reset() {
	s.tick = 0
	s.score = 0
	s.nextID = 1
	s.rockets = nil
	s.missiles = nil
	s.explosions = nil
	for i := range s.batteries {
		s.batteries[i] = &Battery{
			x:        batteryX[i],
			y:        batteryY,
			ammo:     batteryCapacity[i],
			capacity: batteryCapacity[i],
		}
	}
	for i := range s.cities {
		s.cities[i] = &City{x: cityX[i], y: cityY}
	}
	s.stats = RoundStats{}
}

// Start begins the round from the menu. A no-op in any other phase.
func (s *Sim) Start() {
	if s.phase != PhaseMenu {
		return
	}
	s.Restart()
}

// Restart resets all entity stores, score, and ammo to the fixed initial
// configuration and enters the playing phase. Calling it twice in a row
// yields the same state as calling it once.
func (s *Sim) Restart() {
	s.reset()
	s.phase = PhasePlaying
	s.snap = s.buildSnapshot()
	if s.log != nil {
		s.log.Add(s.tick, "--", "phase", "change", "→ playing", 0)
	}
}

// Tick advances the simulation by one frame and returns the latest
// observable snapshot. Outside the playing phase it is a pure no-op: stores
// are untouched and the previous snapshot is returned as-is.
func (s *Sim) Tick() Snapshot {
	if s.phase != PhasePlaying {
		return s.snap
	}
	s.tick++

	s.trySpawn()
	s.updateRockets()
	s.updateMissiles()
	s.resolveBlasts()
	s.updateExplosions()
	s.checkRound()

	s.logVerboseTick()
	s.snap = s.buildSnapshot()
	return s.snap
}

// Fire attempts to launch an interceptor toward (x,y) from whichever
// standing battery with ammo is horizontally closest to x (ties by store
// order). With no eligible battery, or outside the playing phase, it is a
// silent no-op. Every successful call consumes one unit of ammo immediately;
// there is no queueing or debouncing.
func (s *Sim) Fire(x, y float64) {
	if s.phase != PhasePlaying {
		return
	}
	var from *Battery
	best := math.MaxFloat64
	for _, b := range s.batteries {
		if !b.canFire() {
			continue
		}
		if d := math.Abs(b.x - x); d < best {
			best = d
			from = b
		}
	}
	if from == nil {
		return
	}

	from.ammo--
	s.stats.ShotsFired++
	m := &Missile{
		id:      s.nextID,
		x:       from.x,
		y:       from.y,
		originX: from.x,
		originY: from.y,
		destX:   x,
		destY:   y,
	}
	s.nextID++
	s.missiles = append(s.missiles, m)
	if s.log != nil {
		s.log.Add(s.tick, label("M", m.id), "fire", "launched",
			fmt.Sprintf("from x=%.0f toward (%.0f,%.0f)", from.x, x, y), 0)
	}
}

// updateRockets advances every rocket and resolves impacts in the same pass.
// Removal uses write-index compaction so a removed rocket never causes its
// neighbour to be skipped.
func (s *Sim) updateRockets() {
	kept := s.rockets[:0]
	for _, r := range s.rockets {
		if r.advance() {
			s.resolveImpact(r)
			continue
		}
		kept = append(kept, r)
	}
	clearTail(s.rockets, len(kept))
	s.rockets = kept
}

// updateMissiles re-aims, advances, and detonates missiles in one pass.
func (s *Sim) updateMissiles() {
	kept := s.missiles[:0]
	for _, m := range s.missiles {
		m.retarget(s.rockets)
		if m.advance() {
			s.detonate(m)
			continue
		}
		kept = append(kept, m)
	}
	clearTail(s.missiles, len(kept))
	s.missiles = kept
}

// resolveImpact converts an arrived rocket into a growing explosion at the
// rocket's current position and destroys the one structure it was aimed at,
// if that structure is still within the per-axis match tolerance. Only the
// aimed-at entity is checked; an impact never area-damages neighbours.
func (s *Sim) resolveImpact(r *Rocket) {
	s.spawnExplosion(r.x, r.y)
	s.stats.GroundImpacts++
	if s.log != nil {
		s.log.Add(s.tick, label("R", r.id), "impact", "ground",
			fmt.Sprintf("at (%.0f,%.0f)", r.x, r.y), 0)
	}

	for i, b := range s.batteries {
		if b.destroyed || !withinTol(b.x, b.y, r.targetX, r.targetY) {
			continue
		}
		b.destroy()
		s.stats.BatteriesLost++
		if s.log != nil {
			s.log.Add(s.tick, label("B", i), "impact", "battery_destroyed",
				fmt.Sprintf("by %s", label("R", r.id)), 0)
		}
		return
	}
	for i, c := range s.cities {
		if c.destroyed || !withinTol(c.x, c.y, r.targetX, r.targetY) {
			continue
		}
		c.destroyed = true
		s.stats.CitiesLost++
		if s.log != nil {
			s.log.Add(s.tick, label("C", i), "impact", "city_destroyed",
				fmt.Sprintf("by %s", label("R", r.id)), 0)
		}
		return
	}
}

// detonate converts an arrived missile into a growing explosion at its
// destination point.
func (s *Sim) detonate(m *Missile) {
	s.spawnExplosion(m.destX, m.destY)
	if s.log != nil {
		s.log.Add(s.tick, label("M", m.id), "intercept", "detonated",
			fmt.Sprintf("at (%.0f,%.0f)", m.destX, m.destY), 0)
	}
}

// resolveBlasts removes every rocket caught inside a live explosion's
// current radius and scores it. The check runs for growing and shrinking
// blasts alike, so a rocket can be caught at any point of a blast's life.
func (s *Sim) resolveBlasts() {
	for _, e := range s.explosions {
		kept := s.rockets[:0]
		for _, r := range s.rockets {
			if e.engulfs(r.x, r.y) {
				s.score += killAward
				s.stats.RocketsIntercepted++
				if s.log != nil {
					s.log.Add(s.tick, label("R", r.id), "blast", "rocket_killed",
						fmt.Sprintf("caught by %s at (%.0f,%.0f)", label("X", e.id), r.x, r.y),
						float64(s.score))
				}
				continue
			}
			kept = append(kept, r)
		}
		clearTail(s.rockets, len(kept))
		s.rockets = kept
	}
}

// updateExplosions steps every blast through its grow/shrink cycle and drops
// the burnt-out ones.
func (s *Sim) updateExplosions() {
	kept := s.explosions[:0]
	for _, e := range s.explosions {
		if e.step() {
			if s.log != nil {
				s.log.Add(s.tick, label("X", e.id), "blast", "expired", "", 0)
			}
			continue
		}
		kept = append(kept, e)
	}
	clearTail(s.explosions, len(kept))
	s.explosions = kept
}

func (s *Sim) spawnExplosion(x, y float64) {
	e := &Explosion{
		id:      s.nextID,
		x:       x,
		y:       y,
		radius:  explosionStartRadius,
		growing: true,
	}
	s.nextID++
	s.explosions = append(s.explosions, e)
}

// checkRound evaluates terminal conditions, win before loss, once per tick
// after collision resolution.
func (s *Sim) checkRound() {
	if s.score >= winScore {
		s.phase = PhaseWon
		if s.log != nil {
			s.log.Add(s.tick, "--", "phase", "change", "playing → won", float64(s.score))
		}
		if s.onWin != nil {
			s.onWin()
		}
		return
	}
	for _, b := range s.batteries {
		if !b.destroyed {
			return
		}
	}
	s.phase = PhaseLost
	if s.log != nil {
		s.log.Add(s.tick, "--", "phase", "change", "playing → lost", float64(s.score))
	}
}

func (s *Sim) logVerboseTick() {
	if s.log == nil {
		return
	}
	for _, r := range s.rockets {
		s.log.AddVerbose(s.tick, label("R", r.id), "move", "position",
			fmt.Sprintf("(%.1f,%.1f)", r.x, r.y), 0)
	}
	for _, m := range s.missiles {
		s.log.AddVerbose(s.tick, label("M", m.id), "move", "position",
			fmt.Sprintf("(%.1f,%.1f)", m.x, m.y), 0)
	}
	for _, e := range s.explosions {
		s.log.AddVerbose(s.tick, label("X", e.id), "blast", "radius",
			fmt.Sprintf("%.1f", e.radius), e.radius)
	}
}

// withinTol reports whether two points match within the structure-impact
// tolerance on both axes. The tolerance exists because impact is declared at
// distance < 2 from the target, not at exact equality.
func withinTol(ax, ay, bx, by float64) bool {
	return math.Abs(ax-bx) <= structureMatchTol && math.Abs(ay-by) <= structureMatchTol
}

// clearTail nils pointers past the compaction point so removed entities do
// not linger reachable from the backing array.
func clearTail[T any](s []*T, from int) {
	for i := from; i < len(s); i++ {
		s[i] = nil
	}
}

func label(prefix string, id int) string {
	return fmt.Sprintf("%s%d", prefix, id)
}
