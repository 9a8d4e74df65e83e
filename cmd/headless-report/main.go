package main

import (
	"flag"
	"fmt"

	"skyfall/internal/game"
)

type runStats struct {
	runIndex int
	seed     int64

	endTick  int // tick the round ended, or -1 if still running at cutoff
	phase    game.Phase
	score    int
	stats    game.RoundStats
	ammoLeft int // total ammo remaining across batteries
}

func main() {
	var runs int
	var ticks int
	var seedBase int64
	var seedStep int64
	var cooldown int

	flag.IntVar(&runs, "runs", 5, "number of headless simulation runs")
	flag.IntVar(&ticks, "ticks", 20000, "tick cutoff per run")
	flag.Int64Var(&seedBase, "seed-base", 42, "base RNG seed for run 1")
	flag.Int64Var(&seedStep, "seed-step", 1, "seed increment between runs")
	flag.IntVar(&cooldown, "cooldown", 45, "gunner ticks between shots")
	flag.Parse()

	if runs <= 0 {
		fmt.Println("error: -runs must be > 0")
		return
	}
	if ticks <= 0 {
		fmt.Println("error: -ticks must be > 0")
		return
	}

	fmt.Printf("=== Headless Defense Report ===\n")
	fmt.Printf("runs=%d ticks=%d seed_base=%d seed_step=%d cooldown=%d\n\n",
		runs, ticks, seedBase, seedStep, cooldown)

	all := make([]runStats, 0, runs)
	for i := 0; i < runs; i++ {
		seed := seedBase + int64(i)*seedStep
		stats := runOne(i+1, seed, ticks, cooldown)
		all = append(all, stats)
		printRun(stats)
	}

	printAggregate(all)
}

func runOne(runIndex int, seed int64, ticks, cooldown int) runStats {
	sim := game.NewSim(seed)
	sim.Start()
	gunner := game.NewGunner(sim, cooldown)

	endTick := -1
	var snap game.Snapshot
	for i := 0; i < ticks; i++ {
		gunner.Step()
		snap = sim.Tick()
		if snap.Phase != game.PhasePlaying {
			endTick = sim.CurrentTick()
			break
		}
	}

	return runStats{
		runIndex: runIndex,
		seed:     seed,
		endTick:  endTick,
		phase:    snap.Phase,
		score:    snap.Score,
		stats:    sim.Stats(),
		ammoLeft: snap.Ammo.Left + snap.Ammo.Center + snap.Ammo.Right,
	}
}

func printRun(rs runStats) {
	fmt.Printf("--- Run %d (seed=%d) ---\n", rs.runIndex, rs.seed)
	end := "cutoff"
	if rs.endTick >= 0 {
		end = fmt.Sprintf("T=%d", rs.endTick)
	}
	fmt.Printf("outcome=%s at %s  score=%d\n", rs.phase, end, rs.score)
	fmt.Printf("rockets: spawned=%d intercepted=%d impacts=%d\n",
		rs.stats.RocketsSpawned, rs.stats.RocketsIntercepted, rs.stats.GroundImpacts)
	fmt.Printf("shots=%d accuracy=%.2f ammo_left=%d losses: batteries=%d cities=%d\n\n",
		rs.stats.ShotsFired, rs.stats.Accuracy(), rs.ammoLeft,
		rs.stats.BatteriesLost, rs.stats.CitiesLost)
}

func printAggregate(all []runStats) {
	wins, losses, cutoffs := 0, 0, 0
	var sumScore, sumShots, sumKills, sumImpacts int
	for _, rs := range all {
		switch rs.phase {
		case game.PhaseWon:
			wins++
		case game.PhaseLost:
			losses++
		default:
			cutoffs++
		}
		sumScore += rs.score
		sumShots += rs.stats.ShotsFired
		sumKills += rs.stats.RocketsIntercepted
		sumImpacts += rs.stats.GroundImpacts
	}
	n := float64(len(all))
	fmt.Printf("=== Aggregate over %d runs ===\n", len(all))
	fmt.Printf("wins=%d losses=%d cutoffs=%d\n", wins, losses, cutoffs)
	fmt.Printf("avg: score=%.0f shots=%.1f intercepted=%.1f impacts=%.1f\n",
		float64(sumScore)/n, float64(sumShots)/n, float64(sumKills)/n, float64(sumImpacts)/n)
	if sumShots > 0 {
		fmt.Printf("overall accuracy=%.2f\n", float64(sumKills)/float64(sumShots))
	}
}
