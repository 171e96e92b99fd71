package ui

import (
	"fmt"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/hailam/knighttour/internal/board"
	"github.com/hailam/knighttour/internal/tour"
)

// Screen layout constants.
const (
	SquareSize   = 80
	BoardSize    = 8 * SquareSize
	StatusHeight = 40
	ScreenWidth  = BoardSize
	ScreenHeight = BoardSize + StatusHeight
)

// Animation speed: game ticks between knight moves (60 ticks per second).
const ticksPerMove = 12

// Game animates a knight's tour and implements ebiten.Game. Clicking a
// square restarts the tour from it.
type Game struct {
	renderer *Renderer

	start  board.Square
	result tour.Result

	step  int // squares of the path currently shown
	ticks int
}

// NewGame creates the visualizer with a tour from the given square.
func NewGame(start board.Square) *Game {
	g := &Game{
		renderer: NewRenderer(SquareSize),
	}
	g.restart(start)
	return g
}

// restart runs a fresh search from the given square and resets the
// animation.
func (g *Game) restart(start board.Square) {
	res, err := tour.Search(start)
	if err != nil {
		log.Printf("search from %v: %v", start, err)
		return
	}
	g.start = start
	g.result = res
	g.step = 0
	g.ticks = 0
}

// Update advances the animation and handles board clicks.
func (g *Game) Update() error {
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		if sq := g.renderer.SquareAt(x, y); sq.IsValid() {
			g.restart(sq)
			return nil
		}
	}

	if !g.result.Found || g.step >= len(g.result.Path) {
		return nil
	}

	g.ticks++
	if g.ticks >= ticksPerMove {
		g.ticks = 0
		g.step++
	}
	return nil
}

// Draw renders the board, the animated path and the status line.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(g.renderer.Background())

	shown := g.result.Path[:g.step]

	visited := board.Empty
	for _, sq := range shown {
		visited = visited.Set(sq)
	}

	current := board.NoSquare
	if len(shown) > 0 {
		current = shown[len(shown)-1]
	}

	g.renderer.DrawBoard(screen, visited, current)
	g.renderer.DrawPath(screen, shown)
	g.renderer.DrawStatus(screen, g.status(), BoardSize+12)
}

func (g *Game) status() string {
	if !g.result.Found {
		return fmt.Sprintf("No tour from %v — click a square to try another", g.start)
	}
	if g.step < len(g.result.Path) {
		return fmt.Sprintf("Tour from %v — move %d/64 — %d nodes searched",
			g.start, g.step, g.result.Nodes)
	}
	return fmt.Sprintf("Tour from %v complete — %d nodes searched — click a square to restart",
		g.start, g.result.Nodes)
}

// Layout returns the game's screen dimensions.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return ScreenWidth, ScreenHeight
}
