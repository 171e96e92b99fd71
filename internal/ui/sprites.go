package ui

import (
	"bytes"
	"embed"
	"image"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"
)

//go:embed assets/knight.svg
var knightAsset embed.FS

// KnightSprite holds the rasterized knight image.
type KnightSprite struct {
	img         *ebiten.Image
	size        int     // Display size in pixels
	renderScale float64 // Render at higher resolution for quality
}

// NewKnightSprite rasterizes the embedded knight SVG at the given display size.
func NewKnightSprite(size int) *KnightSprite {
	ks := &KnightSprite{
		size:        size,
		renderScale: 3.0, // Render at 3x resolution for sharp scaling
	}
	ks.load()
	return ks
}

func (ks *KnightSprite) load() {
	data, err := knightAsset.ReadFile("assets/knight.svg")
	if err != nil {
		log.Printf("Failed to read knight asset: %v", err)
		return
	}

	icon, err := oksvg.ReadIconStream(bytes.NewReader(data))
	if err != nil {
		log.Printf("Failed to parse knight SVG: %v", err)
		return
	}

	renderSize := int(float64(ks.size) * ks.renderScale)
	icon.SetTarget(0, 0, float64(renderSize), float64(renderSize))

	rgba := image.NewRGBA(image.Rect(0, 0, renderSize, renderSize))
	scanner := rasterx.NewScannerGV(renderSize, renderSize, rgba, rgba.Bounds())
	raster := rasterx.NewDasher(renderSize, renderSize, scanner)
	icon.Draw(raster, 1.0)

	ks.img = ebiten.NewImageFromImage(rgba)
}

// DrawAt draws the knight at the given pixel coordinates.
func (ks *KnightSprite) DrawAt(screen *ebiten.Image, x, y int) {
	if ks.img == nil {
		return
	}
	op := &ebiten.DrawImageOptions{}
	scale := 1.0 / ks.renderScale
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(float64(x), float64(y))
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(ks.img, op)
}
