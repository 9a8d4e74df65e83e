package game

import "github.com/hajimehoshi/ebiten/v2"

// cursorWorld converts the raw pointer position into the core's logical
// coordinate space. Layout pins the logical resolution to the world size, so
// Ebiten already reports the cursor in logical units; this is the single
// place that assumption lives, plus clamping so off-window drags still map
// to a valid world point.
func cursorWorld() (float64, float64) {
	mx, my := ebiten.CursorPosition()
	x := float64(mx)
	y := float64(my)
	if x < 0 {
		x = 0
	}
	if x > worldW {
		x = worldW
	}
	if y < 0 {
		y = 0
	}
	if y > worldH {
		y = worldH
	}
	return x, y
}
