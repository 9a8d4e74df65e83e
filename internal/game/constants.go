package game

// Logical world size. All simulation coordinates live in this space; the
// front end maps window pixels onto it.
const (
	worldW = 800
	worldH = 600
)

// --- Rocket tuning ---

const (
	rocketSpeedMin   = 0.25 // units per tick
	rocketSpeedMax   = 0.75 // units per tick
	rocketImpactDist = 2.0  // closer than this to the target counts as a hit
)

// --- Missile tuning ---

const (
	missileSpeed       = 7.0   // units per tick, faster than any rocket
	missileDetectRange = 300.0 // re-aim radius for heat seeking
)

// --- Explosion tuning ---

const (
	explosionStartRadius = 2.0
	explosionMaxRadius   = 40.0
	explosionGrowthRate  = 1.5 // per tick, same rate growing and shrinking
)

// --- Spawning and scoring ---

const (
	spawnBaseChance  = 0.015   // per-tick spawn probability at score 0
	spawnScoreFactor = 10000.0 // chance ramps by score/spawnScoreFactor
	killAward        = 20      // points per rocket destroyed by an explosion
	winScore         = 1000    // reaching this ends the round in a win
)

// --- Structures ---

const (
	batteryY          = 560.0
	structureMatchTol = 5.0 // per-axis tolerance matching an impact to its target
	cityY             = 575.0
)

// Batteries sit left/centre/right on the baseline. Capacities are fixed per
// round: the centre battery carries double ammo.
var (
	batteryX        = [3]float64{100, 400, 700}
	batteryCapacity = [3]int{20, 40, 20}
)

// Six cities spread between and outside the batteries.
var cityX = [6]float64{175, 250, 325, 475, 550, 625}
