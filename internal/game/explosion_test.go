package game

import "testing"

func TestExplosionGrowsThenShrinksThenExpires(t *testing.T) {
	ts := NewTestSim(WithSeed(1), WithVerbose(true), WithoutSpawning())
	ts.AddExplosion(400, 300, explosionStartRadius, true)

	gone := ts.RunUntil(func(s *Sim) bool { return len(s.Explosions()) == 0 }, 200)
	if gone < 0 {
		t.Fatal("explosion never expired")
	}

	// Lifetime is about 2*(max-start)/rate ticks; allow slack for the clamp
	// tick at the top and the overshoot tick at the bottom.
	approxF := 2 * (explosionMaxRadius - explosionStartRadius) / explosionGrowthRate
	approx := int(approxF)
	if gone < approx-3 || gone > approx+5 {
		t.Errorf("lifetime %d ticks, expected about %d", gone, approx)
	}

	// Radius trace: strictly rising to the cap, never past it, then
	// strictly falling.
	var radii []float64
	for _, e := range ts.SimLog.Filter("blast", "radius") {
		radii = append(radii, e.NumVal)
	}
	if len(radii) == 0 {
		t.Fatal("no radius trace recorded (verbose log expected)")
	}
	peaked := false
	for i, r := range radii {
		if r > explosionMaxRadius {
			t.Fatalf("radius %.2f exceeded the cap at sample %d", r, i)
		}
		if i == 0 {
			continue
		}
		switch {
		case radii[i] > radii[i-1]:
			if peaked {
				t.Fatalf("radius rose again after shrinking at sample %d", i)
			}
		case radii[i] < radii[i-1]:
			peaked = true
		default:
			// Flat only at the clamped peak.
			if radii[i] != explosionMaxRadius {
				t.Fatalf("radius stalled at %.2f (sample %d), only the cap may repeat", radii[i], i)
			}
		}
	}
	if !peaked {
		t.Error("radius never entered the shrink phase")
	}
}

func TestExplosionClampsAtMaxBeforeFlipping(t *testing.T) {
	e := &Explosion{radius: explosionMaxRadius - 0.5, growing: true}
	if done := e.step(); done {
		t.Fatal("blast expired while clamping at the cap")
	}
	if e.radius != explosionMaxRadius {
		t.Errorf("radius = %.2f, want clamped to %.0f", e.radius, explosionMaxRadius)
	}
	if e.growing {
		t.Error("blast still growing after reaching the cap")
	}
}

func TestExplosionRemovedAtZero(t *testing.T) {
	e := &Explosion{radius: explosionGrowthRate, growing: false}
	if done := e.step(); !done {
		t.Errorf("blast at radius %.2f should expire after one shrink step", explosionGrowthRate)
	}
}

func TestExpiryDuringPassRemovesOnlyTheExpired(t *testing.T) {
	ts := NewTestSim(WithSeed(1), WithoutSpawning())
	// Three blasts: the middle one a step from expiry, neighbours fresh.
	ts.AddExplosion(100, 100, 20, true)
	ts.AddExplosion(200, 100, explosionGrowthRate, false)
	ts.AddExplosion(300, 100, 20, true)

	ts.RunTicks(1)
	ex := ts.Sim.Explosions()
	if len(ex) != 2 {
		t.Fatalf("got %d explosions, want 2 survivors", len(ex))
	}
	if ex[0].x != 100 || ex[1].x != 300 {
		t.Errorf("wrong survivors at x=%.0f and x=%.0f, want 100 and 300", ex[0].x, ex[1].x)
	}
	// Both neighbours must have been stepped this tick.
	if ex[0].radius != 21.5 || ex[1].radius != 21.5 {
		t.Errorf("neighbour radii %.1f/%.1f, want both 21.5 (no skipped step)",
			ex[0].radius, ex[1].radius)
	}
}
