package game

import "fmt"

// spawnChance returns the per-tick rocket spawn probability. The ramp is
// tied directly to score and deliberately uncapped: past 9850 points every
// tick spawns, but never more than one rocket per tick.
func spawnChance(score int) float64 {
	return spawnBaseChance + float64(score)/spawnScoreFactor
}

// trySpawn rolls the spawn chance and, on success, launches one rocket from
// a random point on the top edge at a random speed, aimed at a uniformly
// chosen standing structure. With nothing left to aim at it does nothing;
// in practice that state coincides with the round already being lost.
func (s *Sim) trySpawn() {
	if s.noSpawn {
		return
	}
	if s.rng.Float64() >= spawnChance(s.score) {
		return
	}

	type point struct{ x, y float64 }
	var pool []point
	for _, b := range s.batteries {
		if !b.destroyed {
			pool = append(pool, point{b.x, b.y})
		}
	}
	for _, c := range s.cities {
		if !c.destroyed {
			pool = append(pool, point{c.x, c.y})
		}
	}
	if len(pool) == 0 {
		return
	}

	target := pool[s.rng.Intn(len(pool))]
	originX := s.rng.Float64() * worldW
	r := &Rocket{
		id:      s.nextID,
		x:       originX,
		y:       0,
		originX: originX,
		originY: 0,
		targetX: target.x,
		targetY: target.y,
		speed:   rocketSpeedMin + s.rng.Float64()*(rocketSpeedMax-rocketSpeedMin),
		variant: s.rng.Intn(rocketVariants),
	}
	s.nextID++
	s.rockets = append(s.rockets, r)
	s.stats.RocketsSpawned++
	if s.log != nil {
		s.log.Add(s.tick, label("R", r.id), "spawn", "rocket",
			fmt.Sprintf("from x=%.0f toward (%.0f,%.0f) speed=%.2f",
				originX, target.x, target.y, r.speed), r.speed)
	}
}
