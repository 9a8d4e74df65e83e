package game

import (
	"math"
	"testing"
)

func TestSpawnChanceRampsWithScore(t *testing.T) {
	cases := []struct {
		score int
		want  float64
	}{
		{0, 0.015},
		{1000, 0.115},
		{5000, 0.515},
		{9850, 1.0},
		{20000, 2.015}, // uncapped by design
	}
	for _, c := range cases {
		if got := spawnChance(c.score); math.Abs(got-c.want) > 1e-9 {
			t.Errorf("spawnChance(%d) = %v, want %v", c.score, got, c.want)
		}
	}
}

func TestGuaranteedSpawnsAboveFullChance(t *testing.T) {
	// Past 9850 points the chance exceeds 1 and the roll can never skip, so
	// every spawn attempt launches exactly one rocket. The spawner is driven
	// directly because a score that high would end the round on its own.
	ts := NewTestSim(WithSeed(7), WithScore(10000))
	for i := 0; i < 5; i++ {
		ts.Sim.trySpawn()
	}

	rockets := ts.Sim.Rockets()
	if len(rockets) != 5 {
		t.Fatalf("got %d rockets after 5 guaranteed-spawn ticks, want 5", len(rockets))
	}
	for _, r := range rockets {
		ox, oy := r.Origin()
		if oy != 0 {
			t.Errorf("rocket %d spawned at y=%.1f, want the top edge", r.ID(), oy)
		}
		if ox < 0 || ox > worldW {
			t.Errorf("rocket %d spawned at x=%.1f, outside the world", r.ID(), ox)
		}
		if r.speed < rocketSpeedMin || r.speed > rocketSpeedMax {
			t.Errorf("rocket %d speed %.3f outside [%.2f,%.2f]",
				r.ID(), r.speed, rocketSpeedMin, rocketSpeedMax)
		}
		if !aimedAtStructure(r) {
			tx, ty := r.Target()
			t.Errorf("rocket %d aimed at (%.0f,%.0f), not a structure position", r.ID(), tx, ty)
		}
	}
}

// aimedAtStructure reports whether the rocket targets some battery or city
// position exactly.
func aimedAtStructure(r *Rocket) bool {
	tx, ty := r.Target()
	for i := range batteryX {
		if tx == batteryX[i] && ty == batteryY {
			return true
		}
	}
	for i := range cityX {
		if tx == cityX[i] && ty == cityY {
			return true
		}
	}
	return false
}

func TestSpawnTargetsOnlyStandingStructures(t *testing.T) {
	// Everything destroyed except the right battery: every spawn must aim there.
	opts := []SimOption{WithSeed(3), WithScore(10000),
		WithDestroyedBattery(0), WithDestroyedBattery(1)}
	for i := 0; i < 6; i++ {
		opts = append(opts, WithDestroyedCity(i))
	}
	ts := NewTestSim(opts...)
	for i := 0; i < 10; i++ {
		ts.Sim.trySpawn()
	}

	for _, r := range ts.Sim.Rockets() {
		tx, ty := r.Target()
		if tx != batteryX[2] || ty != batteryY {
			t.Errorf("rocket %d aimed at (%.0f,%.0f), only the right battery stands", r.ID(), tx, ty)
		}
	}
}

func TestEmptyTargetPoolSpawnsNothing(t *testing.T) {
	opts := []SimOption{WithSeed(3),
		WithDestroyedBattery(0), WithDestroyedBattery(1), WithDestroyedBattery(2)}
	for i := 0; i < 6; i++ {
		opts = append(opts, WithDestroyedCity(i))
	}
	ts := NewTestSim(opts...)

	// Force the roll to succeed: even then the empty pool yields nothing.
	ts.Sim.score = 10000
	ts.Sim.trySpawn()
	if len(ts.Sim.Rockets()) != 0 {
		t.Error("rocket spawned with no standing structure to aim at")
	}

	// Through the normal tick path the same state reads as a loss.
	ts.Sim.score = 0
	snap := ts.Sim.Tick()
	if snap.Phase != PhaseLost {
		t.Errorf("phase = %s, want lost with every battery down", snap.Phase)
	}
}

func TestAtMostOneSpawnPerAttempt(t *testing.T) {
	ts := NewTestSim(WithSeed(11), WithScore(50000)) // chance > 5
	for i := 1; i <= 20; i++ {
		ts.Sim.trySpawn()
		if got := ts.Sim.Stats().RocketsSpawned; got != i {
			t.Fatalf("after attempt %d: %d rockets spawned, want exactly one per attempt", i, got)
		}
	}
}
