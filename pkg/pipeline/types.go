package pipeline

import (
	"image"
)

// =============================================================================
// Common Types
// =============================================================================

// Dimension represents width and height in pixels.
type Dimension struct {
	Width  int
	Height int
}

// =============================================================================
// Still Stage Types
// =============================================================================

// Scene identifies one of the fixed still-image compositions.
type Scene int

const (
	// SceneShowcase is a solid background with shape primitives and labels.
	SceneShowcase Scene = iota
	// SceneGradient is a horizontal linear gradient.
	SceneGradient
	// SceneTiles is a strided tile pattern over a solid background.
	SceneTiles
	// SceneLandscape is a two-band vertical gradient with polygon mountains.
	SceneLandscape
)

// String returns the scene name, used for debug output file names.
func (s Scene) String() string {
	switch s {
	case SceneShowcase:
		return "showcase"
	case SceneGradient:
		return "gradient"
	case SceneTiles:
		return "tiles"
	case SceneLandscape:
		return "landscape"
	default:
		return "unknown"
	}
}

// StillInput contains parameters for one still-image artifact.
type StillInput struct {
	Width    int
	Height   int
	Scene    Scene
	FontPath string // empty means the built-in bitmap face
}

// StillResult contains the synthesized still image.
type StillResult struct {
	Image image.Image
}

// =============================================================================
// Frames Stage Types
// =============================================================================

// Frame pairs one synthesized canvas with its position in the video sequence.
type Frame struct {
	Index       int // 0-based, contiguous
	TimestampMs int // Index / FPS in milliseconds
	Image       image.Image
}

// FrameSource is a finite, restartable sequence of frames ordered by index.
// Frame is a pure function of the index: requesting the same index twice
// yields identical pixels.
type FrameSource interface {
	// Len returns the total number of frames.
	Len() int

	// Frame computes the frame at the given index in [0, Len).
	Frame(index int) (Frame, error)
}

// FramesInput contains parameters for the video frame synthesizer.
type FramesInput struct {
	Width       int
	Height      int
	TotalFrames int
	FPS         float64
	Caption     string // constant caption stamped on every frame
	FontPath    string
}

// FramesResult contains the lazy frame sequence.
type FramesResult struct {
	Source FrameSource
}

// =============================================================================
// Encode Stage Types
// =============================================================================

// EncodeInput contains parameters for video encoding.
type EncodeInput struct {
	Source  FrameSource
	FPS     float64
	Quality int // CRF: 0-63 (lower is higher quality)
	Bitrate int // Target bitrate in kbps (0 = encoder default)
}

// EncodeResult contains the encoded video.
type EncodeResult struct {
	VideoData  []byte
	DurationMs int
	FileSize   int64
}
