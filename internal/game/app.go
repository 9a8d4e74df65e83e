package game

import (
	"log"
	"math/rand"
	"time"

	"github.com/atotto/clipboard"
	"github.com/hajimehoshi/ebiten/v2"
)

// simSpeeds are the selectable speed multipliers, cycled with , and .
var simSpeeds = []float64{0, 0.5, 1, 2, 4}

// App is the windowed front end: it owns a Sim, drives exactly one core tick
// per accumulated frame, and translates pointer input into the core's two
// entry points. All store access from here is read-only except through
// Start/Fire/Restart.
type App struct {
	sim   *Sim
	snap  Snapshot
	burst *Burst

	// Input edge detection.
	prevMouseLeft bool
	prevKeys      map[ebiten.Key]bool

	// Simulation speed control (UI-side only; the core always advances one
	// whole tick per Tick call).
	simSpeed  float64 // multiplier: 0=paused, 0.5, 1, 2, 4
	tickAccum float64 // fractional tick accumulator for sub-1x speeds
}

// NewApp creates the front end with a clock-seeded session.
func NewApp() *App {
	a := &App{
		sim:      NewSim(0),
		prevKeys: make(map[ebiten.Key]bool),
		simSpeed: 1.0,
		burst:    NewBurst(rand.New(rand.NewSource(time.Now().UnixNano()))), // #nosec G404 -- cosmetic only
	}
	a.sim.SetWinHook(func() {
		a.burst.Trigger(worldW/2, worldH/3)
	})
	a.snap = a.sim.Tick()
	return a
}

func (a *App) Update() error {
	a.handleInput()

	// Celebration particles animate even while paused or in a menu.
	a.burst.Update()

	if a.simSpeed <= 0 {
		return nil
	}

	// For speeds > 1 run multiple sim ticks per frame; for speeds < 1
	// accumulate fractions.
	a.tickAccum += a.simSpeed
	for a.tickAccum >= 1.0 {
		a.tickAccum -= 1.0
		a.snap = a.sim.Tick()
	}
	return nil
}

// handleInput processes clicks and keypresses (edge-triggered).
func (a *App) handleInput() {
	// Left click: start / fire / restart depending on phase.
	mouseLeft := ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	if mouseLeft && !a.prevMouseLeft {
		x, y := cursorWorld()
		switch a.sim.Phase() {
		case PhaseMenu:
			a.sim.Start()
		case PhasePlaying:
			a.sim.Fire(x, y)
		case PhaseWon, PhaseLost:
			a.sim.Restart()
		}
	}
	a.prevMouseLeft = mouseLeft

	currentKeys := map[ebiten.Key]bool{}
	press := func(k ebiten.Key) bool {
		currentKeys[k] = ebiten.IsKeyPressed(k)
		return currentKeys[k] && !a.prevKeys[k]
	}

	// Space: pause toggle (remembers the previous speed via 1x).
	if press(ebiten.KeySpace) {
		if a.simSpeed > 0 {
			a.simSpeed = 0
		} else {
			a.simSpeed = 1.0
		}
	}

	// Comma / period: step the speed ladder down / up.
	if press(ebiten.KeyComma) {
		for i := len(simSpeeds) - 1; i > 0; i-- {
			if simSpeeds[i] < a.simSpeed {
				a.simSpeed = simSpeeds[i]
				break
			}
		}
	}
	if press(ebiten.KeyPeriod) {
		for _, s := range simSpeeds {
			if s > a.simSpeed {
				a.simSpeed = s
				break
			}
		}
	}

	// R: copy a round report to the clipboard.
	if press(ebiten.KeyR) {
		report := FormatRoundReport(a.sim)
		if err := clipboard.WriteAll(report); err != nil {
			log.Printf("clipboard copy failed: %v", err)
		}
	}

	a.prevKeys = currentKeys
}

func (a *App) Layout(_, _ int) (int, int) {
	return worldW, worldH
}
