package game

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Palette. Presentation only; nothing here feeds back into the simulation.
var (
	colSky         = color.RGBA{R: 8, G: 8, B: 24, A: 255}
	colGround      = color.RGBA{R: 40, G: 36, B: 28, A: 255}
	colBattery     = color.RGBA{R: 90, G: 160, B: 220, A: 255}
	colCity        = color.RGBA{R: 70, G: 130, B: 90, A: 255}
	colRubble      = color.RGBA{R: 60, G: 55, B: 50, A: 255}
	colRocket      = color.RGBA{R: 235, G: 80, B: 60, A: 255}
	colRocketAlt1  = color.RGBA{R: 235, G: 140, B: 60, A: 255}
	colRocketAlt2  = color.RGBA{R: 200, G: 60, B: 120, A: 255}
	colMissile     = color.RGBA{R: 120, G: 220, B: 255, A: 255}
	colTrail       = color.RGBA{R: 120, G: 220, B: 255, A: 70}
	colRocketTrail = color.RGBA{R: 235, G: 80, B: 60, A: 60}
	colBlast       = color.RGBA{R: 255, G: 200, B: 80, A: 120}
	colBlastRim    = color.RGBA{R: 255, G: 240, B: 180, A: 200}
)

var rocketColors = [rocketVariants]color.RGBA{colRocket, colRocketAlt1, colRocketAlt2}

func (a *App) Draw(screen *ebiten.Image) {
	screen.Fill(colSky)

	// Ground strip under the structures.
	vector.DrawFilledRect(screen, 0, batteryY-4, worldW, worldH-(batteryY-4), colGround, false)

	a.drawStructures(screen)
	a.drawRockets(screen)
	a.drawMissiles(screen)
	a.drawExplosions(screen)
	a.burst.Draw(screen)
	a.drawHUD(screen)
}

func (a *App) drawStructures(screen *ebiten.Image) {
	for _, b := range a.sim.Batteries() {
		x, y := b.Pos()
		if b.Destroyed() {
			vector.DrawFilledRect(screen, float32(x)-12, float32(y)-4, 24, 8, colRubble, false)
			continue
		}
		// Battery: a squat block with a barrel stub.
		vector.DrawFilledRect(screen, float32(x)-12, float32(y)-8, 24, 12, colBattery, false)
		vector.StrokeLine(screen, float32(x), float32(y)-8, float32(x), float32(y)-16, 2, colBattery, false)
	}
	for _, c := range a.sim.Cities() {
		x, y := c.Pos()
		if c.Destroyed() {
			vector.DrawFilledRect(screen, float32(x)-10, float32(y)-3, 20, 6, colRubble, false)
			continue
		}
		vector.DrawFilledRect(screen, float32(x)-10, float32(y)-8, 20, 11, colCity, false)
	}
}

func (a *App) drawRockets(screen *ebiten.Image) {
	for _, r := range a.sim.Rockets() {
		ox, oy := r.Origin()
		x, y := r.Pos()
		vector.StrokeLine(screen, float32(ox), float32(oy), float32(x), float32(y), 1, colRocketTrail, true)
		vector.DrawFilledCircle(screen, float32(x), float32(y), 2.5, rocketColors[r.Variant()], true)
	}
}

func (a *App) drawMissiles(screen *ebiten.Image) {
	for _, m := range a.sim.Missiles() {
		ox, oy := m.Origin()
		x, y := m.Pos()
		vector.StrokeLine(screen, float32(ox), float32(oy), float32(x), float32(y), 1, colTrail, true)
		vector.DrawFilledCircle(screen, float32(x), float32(y), 2, colMissile, true)
	}
}

func (a *App) drawExplosions(screen *ebiten.Image) {
	for _, e := range a.sim.Explosions() {
		x, y := e.Pos()
		r := float32(e.Radius())
		vector.DrawFilledCircle(screen, float32(x), float32(y), r, colBlast, true)
		vector.StrokeCircle(screen, float32(x), float32(y), r, 1.5, colBlastRim, true)
	}
}

func (a *App) drawHUD(screen *ebiten.Image) {
	hud := fmt.Sprintf("score %d   ammo %d/%d/%d",
		a.snap.Score, a.snap.Ammo.Left, a.snap.Ammo.Center, a.snap.Ammo.Right)
	if a.simSpeed != 1.0 {
		hud += fmt.Sprintf("   speed %.1fx", a.simSpeed)
	}
	ebitenutil.DebugPrintAt(screen, hud, 8, 4)

	switch a.sim.Phase() {
	case PhaseMenu:
		ebitenutil.DebugPrintAt(screen, "SKYFALL DEFENSE", worldW/2-46, worldH/2-20)
		ebitenutil.DebugPrintAt(screen, "click to start", worldW/2-42, worldH/2)
	case PhaseWon:
		ebitenutil.DebugPrintAt(screen, "CITY SAVED! click to play again", worldW/2-93, worldH/2)
	case PhaseLost:
		ebitenutil.DebugPrintAt(screen, "ALL BATTERIES LOST. click to retry", worldW/2-102, worldH/2)
	}
}
