package ports

import (
	"image"
)

// DebugSink abstracts debug output for intermediate results.
// It allows saving synthesized canvases before encoding.
type DebugSink interface {
	// Enabled returns true if debug output is enabled.
	Enabled() bool

	// SaveStill saves a synthesized still-image canvas.
	SaveStill(name string, img image.Image) error

	// SaveFrame saves a single synthesized video frame.
	SaveFrame(index int, img image.Image) error
}
