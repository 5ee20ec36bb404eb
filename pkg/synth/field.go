package synth

import (
	"image"
	"image/color"
	"math"
)

// The video color field cycles every fieldPeriod frames; the per-channel
// phase depends on x only, y only, and x+y respectively, which makes the
// field scroll diagonally over time.
const (
	fieldPeriod  = 60.0
	phaseScaleX  = 100.0
	phaseScaleY  = 100.0
	phaseScaleXY = 200.0
)

// FieldColor computes the sinusoidal color field at pixel (x, y) for the
// given frame index. The result depends only on its arguments.
func FieldColor(x, y, frameIndex int) color.RGBA {
	base := 2 * math.Pi * float64(frameIndex) / fieldPeriod
	return color.RGBA{
		R: Clamp(int(128 + 127*math.Sin(base+float64(x)/phaseScaleX))),
		G: Clamp(int(128 + 127*math.Sin(base+float64(y)/phaseScaleY))),
		B: Clamp(int(128 + 127*math.Sin(base+float64(x+y)/phaseScaleXY))),
		A: 255,
	}
}

// FillField writes the field for one frame into img, row-major. The fill
// may be reorganized internally (per row, per pixel, in parallel) without
// changing FieldColor's contract.
func FillField(img *image.RGBA, frameIndex int) {
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		i := img.PixOffset(b.Min.X, y)
		for x := b.Min.X; x < b.Max.X; x++ {
			c := FieldColor(x, y, frameIndex)
			img.Pix[i] = c.R
			img.Pix[i+1] = c.G
			img.Pix[i+2] = c.B
			img.Pix[i+3] = 255
			i += 4
		}
	}
}
