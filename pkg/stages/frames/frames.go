// Package frames implements the video frame synthesizer.
package frames

import (
	"context"
	"fmt"
	"image"
	"math"

	"github.com/user/samplegen/pkg/pipeline"
	"github.com/user/samplegen/pkg/ports"
	"github.com/user/samplegen/pkg/synth"
)

// Stage builds the lazy frame sequence for the video artifact.
type Stage struct {
	renderer ports.Renderer
	sink     ports.DebugSink
	logger   ports.Logger
}

// NewStage creates a new frames stage.
func NewStage(renderer ports.Renderer, sink ports.DebugSink, logger ports.Logger) *Stage {
	return &Stage{
		renderer: renderer,
		sink:     sink,
		logger:   logger.WithComponent("frames"),
	}
}

// Execute validates the input and returns a lazy frame source. No pixels
// are computed until the consumer requests a frame.
func (s *Stage) Execute(ctx context.Context, input pipeline.FramesInput) (pipeline.FramesResult, error) {
	src, err := NewSequence(s.renderer, s.sink, input)
	if err != nil {
		return pipeline.FramesResult{}, err
	}
	s.logger.Debug("Synthesizing %d frames at %.1f fps", input.TotalFrames, input.FPS)
	return pipeline.FramesResult{Source: src}, nil
}

// Sequence is a lazy, restartable frame source. Each frame is computed
// fresh from its index, so requesting the same index twice yields
// identical pixels and the sequence can be re-read from the start.
type Sequence struct {
	renderer ports.Renderer
	sink     ports.DebugSink
	width    int
	height   int
	total    int
	fps      float64
	caption  string
	fontPath string
}

// NewSequence creates a frame source over indices [0, TotalFrames).
func NewSequence(renderer ports.Renderer, sink ports.DebugSink, input pipeline.FramesInput) (*Sequence, error) {
	if input.Width <= 0 || input.Height <= 0 {
		return nil, synth.ErrInvalidDimensions
	}
	if input.TotalFrames <= 0 || input.FPS <= 0 {
		return nil, fmt.Errorf("frames: total frames and fps must be positive")
	}
	return &Sequence{
		renderer: renderer,
		sink:     sink,
		width:    input.Width,
		height:   input.Height,
		total:    input.TotalFrames,
		fps:      input.FPS,
		caption:  input.Caption,
		fontPath: input.FontPath,
	}, nil
}

// Len returns the total number of frames.
func (s *Sequence) Len() int {
	return s.total
}

// Frame computes the frame at the given index: the sinusoidal color field
// for that point in time, stamped with the frame counter, the elapsed
// time and the constant caption.
func (s *Sequence) Frame(index int) (pipeline.Frame, error) {
	if index < 0 || index >= s.total {
		return pipeline.Frame{}, fmt.Errorf("frames: index %d out of range [0,%d)", index, s.total)
	}

	img := image.NewRGBA(image.Rect(0, 0, s.width, s.height))
	synth.FillField(img, index)

	canvas := s.renderer.CanvasFromImage(img)
	seconds := float64(index) / s.fps
	synth.Stamp(canvas, s.fontPath,
		synth.Label{Text: fmt.Sprintf("Frame %d/%d", index+1, s.total), X: 50, Y: 50},
		synth.Label{Text: fmt.Sprintf("Time: %.1fs", seconds), X: 50, Y: 100},
		synth.Label{Text: s.caption, X: 50, Y: s.height - 50},
	)

	if s.sink != nil && s.sink.Enabled() {
		s.sink.SaveFrame(index, img)
	}

	return pipeline.Frame{
		Index:       index,
		TimestampMs: int(math.Round(seconds * 1000)),
		Image:       img,
	}, nil
}

// Ensure Sequence implements pipeline.FrameSource
var _ pipeline.FrameSource = (*Sequence)(nil)
