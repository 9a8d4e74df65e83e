package main

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"skyfall/internal/game"
)

func main() {
	ebiten.SetWindowTitle("Skyfall Defense")
	ebiten.SetWindowSize(800, 600)
	if err := ebiten.RunGame(game.NewApp()); err != nil {
		log.Fatal(err)
	}
}
