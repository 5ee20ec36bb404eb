package synth

import (
	"image/color"

	"github.com/user/samplegen/pkg/ports"
)

// DefaultLabelSize is the point size used for overlay labels.
const DefaultLabelSize = 28.0

// Label is one short text stamp at a fixed top-left anchor.
type Label struct {
	Text string
	X    int
	Y    int
}

// Stamp draws white labels onto the canvas. Text is cosmetic: the canvas
// absorbs any font problem by falling back to its built-in bitmap face,
// so Stamp never fails.
func Stamp(c ports.Canvas, fontPath string, labels ...Label) {
	style := ports.TextStyle{
		FontSize: DefaultLabelSize,
		FontPath: fontPath,
		Color:    color.White,
	}
	for _, l := range labels {
		c.DrawText(l.Text, l.X, l.Y, style)
	}
}
