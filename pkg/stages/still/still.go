// Package still implements the still-image synthesis stage.
package still

import (
	"context"
	"fmt"

	"github.com/user/samplegen/pkg/pipeline"
	"github.com/user/samplegen/pkg/ports"
	"github.com/user/samplegen/pkg/synth"
)

// Stage synthesizes one still-image artifact per execution.
type Stage struct {
	renderer ports.Renderer
	sink     ports.DebugSink
	logger   ports.Logger
}

// NewStage creates a new still stage.
func NewStage(renderer ports.Renderer, sink ports.DebugSink, logger ports.Logger) *Stage {
	return &Stage{
		renderer: renderer,
		sink:     sink,
		logger:   logger.WithComponent("still"),
	}
}

// Execute paints the scene for the requested artifact and returns the
// finished image. Dimensions are validated up front; a failed scene
// aborts only this artifact.
func (s *Stage) Execute(ctx context.Context, input pipeline.StillInput) (pipeline.StillResult, error) {
	result := pipeline.StillResult{}

	if input.Width <= 0 || input.Height <= 0 {
		return result, synth.ErrInvalidDimensions
	}

	s.logger.Debug("Painting %s scene (%dx%d)", input.Scene, input.Width, input.Height)

	var canvas ports.Canvas
	var err error
	switch input.Scene {
	case pipeline.SceneShowcase:
		canvas, err = s.paintShowcase(input)
	case pipeline.SceneGradient:
		canvas, err = s.paintGradient(input)
	case pipeline.SceneTiles:
		canvas, err = s.paintTiles(input)
	case pipeline.SceneLandscape:
		canvas, err = s.paintLandscape(input)
	default:
		err = fmt.Errorf("unknown scene: %d", input.Scene)
	}
	if err != nil {
		return result, fmt.Errorf("paint %s scene: %w", input.Scene, err)
	}

	result.Image = canvas.ToImage()

	if s.sink.Enabled() {
		s.sink.SaveStill(input.Scene.String(), result.Image)
	}

	return result, nil
}
