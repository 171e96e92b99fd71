package ui

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/hailam/knighttour/internal/board"
)

// Theme defines the color scheme for the board.
type Theme struct {
	LightSquare   color.RGBA
	DarkSquare    color.RGBA
	VisitedLight  color.RGBA
	VisitedDark   color.RGBA
	CurrentSquare color.RGBA
	Background    color.RGBA
	TextColor     color.RGBA
	NumberColor   color.RGBA
}

// DefaultTheme returns the default color theme.
func DefaultTheme() *Theme {
	return &Theme{
		LightSquare:   color.RGBA{240, 217, 181, 255}, // Tan
		DarkSquare:    color.RGBA{181, 136, 99, 255},  // Brown
		VisitedLight:  color.RGBA{205, 210, 160, 255}, // Faded green over tan
		VisitedDark:   color.RGBA{150, 160, 100, 255}, // Faded green over brown
		CurrentSquare: color.RGBA{247, 247, 105, 200}, // Yellow highlight
		Background:    color.RGBA{40, 44, 52, 255},    // Dark gray
		TextColor:     color.RGBA{220, 220, 220, 255}, // Light gray
		NumberColor:   color.RGBA{45, 45, 45, 255},    // Near black
	}
}

// Renderer draws the board, the visit numbers and the status line.
type Renderer struct {
	sprite     *KnightSprite
	theme      *Theme
	squareSize int
}

// NewRenderer creates a renderer with the given square size in pixels.
func NewRenderer(squareSize int) *Renderer {
	return &Renderer{
		sprite:     NewKnightSprite(squareSize),
		theme:      DefaultTheme(),
		squareSize: squareSize,
	}
}

// squareOrigin returns the top-left pixel of a square. Rank 1 is drawn at
// the bottom of the board.
func (r *Renderer) squareOrigin(sq board.Square) (int, int) {
	x := sq.File() * r.squareSize
	y := (7 - sq.Rank()) * r.squareSize
	return x, y
}

// SquareAt maps a pixel position to the board square under it, or
// NoSquare when the position is outside the board.
func (r *Renderer) SquareAt(x, y int) board.Square {
	if x < 0 || y < 0 {
		return board.NoSquare
	}
	file := x / r.squareSize
	rank := 7 - y/r.squareSize
	if file > 7 || rank < 0 || rank > 7 {
		return board.NoSquare
	}
	return board.NewSquare(file, rank)
}

// DrawBoard draws the board squares, shading visited squares and
// highlighting the knight's current square.
func (r *Renderer) DrawBoard(screen *ebiten.Image, visited board.Bitboard, current board.Square) {
	for sq := board.A1; sq <= board.H8; sq++ {
		x, y := r.squareOrigin(sq)

		dark := (sq.File()+sq.Rank())%2 == 0
		var c color.RGBA
		switch {
		case visited.IsSet(sq) && dark:
			c = r.theme.VisitedDark
		case visited.IsSet(sq):
			c = r.theme.VisitedLight
		case dark:
			c = r.theme.DarkSquare
		default:
			c = r.theme.LightSquare
		}

		vector.DrawFilledRect(screen, float32(x), float32(y),
			float32(r.squareSize), float32(r.squareSize), c, false)
	}

	if current.IsValid() {
		x, y := r.squareOrigin(current)
		vector.DrawFilledRect(screen, float32(x), float32(y),
			float32(r.squareSize), float32(r.squareSize), r.theme.CurrentSquare, false)
	}
}

// DrawPath draws the visit number on every square of path and the knight
// sprite on the last one.
func (r *Renderer) DrawPath(screen *ebiten.Image, path []board.Square) {
	face := BoldFace(numberFontSize)
	for i, sq := range path {
		x, y := r.squareOrigin(sq)

		if i == len(path)-1 {
			r.sprite.DrawAt(screen, x, y)
			continue
		}
		if face == nil {
			continue
		}

		label := fmt.Sprintf("%d", i+1)
		w, h := MeasureText(label, face)
		op := &text.DrawOptions{}
		op.GeoM.Translate(float64(x)+float64(r.squareSize)/2-w/2,
			float64(y)+float64(r.squareSize)/2-h/2)
		op.ColorScale.ScaleWithColor(r.theme.NumberColor)
		text.Draw(screen, label, face, op)
	}
}

// DrawStatus draws the status line below the board.
func (r *Renderer) DrawStatus(screen *ebiten.Image, s string, y int) {
	face := Face(statusFontSize)
	if face == nil {
		return
	}
	op := &text.DrawOptions{}
	op.GeoM.Translate(10, float64(y))
	op.ColorScale.ScaleWithColor(r.theme.TextColor)
	text.Draw(screen, s, face, op)
}

// Background returns the theme background color.
func (r *Renderer) Background() color.RGBA {
	return r.theme.Background
}
