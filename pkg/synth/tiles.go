package synth

import (
	"image/color"

	"github.com/user/samplegen/pkg/ports"
)

// TileGrid describes a fixed-stride tiling. Tile origins are spaced Step
// pixels apart starting at (0,0); each tile is Size pixels square, so
// Step-Size pixels of background show between tiles.
type TileGrid struct {
	Step int
	Size int
}

// DefaultTileGrid returns the grid used by the 720p sample.
func DefaultTileGrid() TileGrid {
	return TileGrid{Step: 50, Size: 40}
}

// TileColor returns the deterministic fill for the tile whose top-left
// corner sits at canvas coordinates (x, y).
func TileColor(x, y int) color.RGBA {
	return color.RGBA{
		R: uint8(x % 255),
		G: uint8(y % 255),
		B: uint8((x + y) % 255),
		A: 255,
	}
}

// Fill paints every tile whose origin lies inside the canvas, in row-major
// order. Tiles do not overlap, so the order does not affect the result;
// tiles extending past the right or bottom edge are clipped by the canvas.
func (g TileGrid) Fill(c ports.Canvas, width, height int) error {
	if width <= 0 || height <= 0 {
		return ErrInvalidDimensions
	}
	if g.Step <= 0 || g.Size <= 0 {
		return ErrInvalidDimensions
	}
	for y := 0; y < height; y += g.Step {
		for x := 0; x < width; x += g.Step {
			c.DrawRect(x, y, g.Size, g.Size, TileColor(x, y))
		}
	}
	return nil
}
