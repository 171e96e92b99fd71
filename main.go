// KnightTour - an animated knight's tour built with Ebitengine
package main

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/hailam/knighttour/internal/board"
	"github.com/hailam/knighttour/internal/ui"
)

func main() {
	game := ui.NewGame(board.A1)

	ebiten.SetWindowSize(ui.ScreenWidth, ui.ScreenHeight)
	ebiten.SetWindowTitle("Knight's Tour")

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
