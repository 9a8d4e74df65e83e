package game

import (
	"fmt"
	"strings"
)

// RoundStats aggregates behaviour counters over one round. They feed the
// headless report runner and the in-game debug report; nothing in the
// simulation reads them back.
type RoundStats struct {
	RocketsSpawned     int
	RocketsIntercepted int // killed by a blast (scored)
	GroundImpacts      int // rockets that reached their target point
	BatteriesLost      int
	CitiesLost         int
	ShotsFired         int
}

// Stats returns a copy of the current round's counters.
func (s *Sim) Stats() RoundStats { return s.stats }

// Accuracy returns intercepted rockets per shot fired, or 0 before any shot.
// Can exceed 1: one blast may catch several rockets.
func (rs RoundStats) Accuracy() float64 {
	if rs.ShotsFired == 0 {
		return 0
	}
	return float64(rs.RocketsIntercepted) / float64(rs.ShotsFired)
}

// FormatRoundReport renders a human-readable summary of one round, used by
// the headless runner's per-run output and the in-game clipboard report.
func FormatRoundReport(s *Sim) string {
	snap := s.buildSnapshot()
	st := s.stats

	var sb strings.Builder
	fmt.Fprintf(&sb, "--- Round report at T=%03d ---\n", s.tick)
	fmt.Fprintf(&sb, "phase=%s score=%d ammo=%d/%d/%d\n",
		snap.Phase, snap.Score, snap.Ammo.Left, snap.Ammo.Center, snap.Ammo.Right)
	fmt.Fprintf(&sb, "rockets: spawned=%d intercepted=%d ground_impacts=%d in_flight=%d\n",
		st.RocketsSpawned, st.RocketsIntercepted, st.GroundImpacts, len(s.rockets))
	fmt.Fprintf(&sb, "shots: fired=%d in_flight=%d accuracy=%.2f\n",
		st.ShotsFired, len(s.missiles), st.Accuracy())
	fmt.Fprintf(&sb, "losses: batteries=%d cities=%d\n", st.BatteriesLost, st.CitiesLost)

	standing := 0
	for _, b := range s.batteries {
		if !b.destroyed {
			standing++
		}
	}
	intact := 0
	for _, c := range s.cities {
		if !c.destroyed {
			intact++
		}
	}
	fmt.Fprintf(&sb, "standing: batteries=%d/3 cities=%d/6\n", standing, intact)
	return sb.String()
}
