// Package encode implements the video encoding stage.
package encode

import (
	"context"
	"fmt"

	"github.com/user/samplegen/pkg/pipeline"
	"github.com/user/samplegen/pkg/ports"
)

// Stage pulls frames from a FrameSource in index order and feeds them to
// the video encoder. The container format encodes temporal order
// positionally, so the order must not be disturbed.
type Stage struct {
	encoder ports.VideoEncoder
	logger  ports.Logger
}

// NewStage creates a new encode stage.
func NewStage(encoder ports.VideoEncoder, logger ports.Logger) *Stage {
	return &Stage{
		encoder: encoder,
		logger:  logger.WithComponent("encode"),
	}
}

// Execute encodes all frames from the source into a video.
func (s *Stage) Execute(ctx context.Context, input pipeline.EncodeInput) (pipeline.EncodeResult, error) {
	result := pipeline.EncodeResult{}

	if input.Source == nil || input.Source.Len() == 0 {
		return result, fmt.Errorf("no frames to encode")
	}

	// Dimensions come from the first frame; the source recomputes it
	// cheaply when the encode loop reaches index 0 again.
	first, err := input.Source.Frame(0)
	if err != nil {
		return result, fmt.Errorf("frame 0: %w", err)
	}
	bounds := first.Image.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()

	s.logger.Debug("Encoding video with quality %d", input.Quality)

	opts := ports.EncoderOptions{
		Bitrate: input.Bitrate,
		Quality: input.Quality,
	}
	if err := s.encoder.Begin(width, height, input.FPS, opts); err != nil {
		return result, fmt.Errorf("begin encoding: %w", err)
	}

	for i := 0; i < input.Source.Len(); i++ {
		select {
		case <-ctx.Done():
			return result, ctx.Err()
		default:
		}

		frame := first
		if i > 0 {
			frame, err = input.Source.Frame(i)
			if err != nil {
				return result, fmt.Errorf("frame %d: %w", i, err)
			}
		}

		if err := s.encoder.EncodeFrame(frame.Image, frame.TimestampMs); err != nil {
			return result, fmt.Errorf("encode frame %d: %w", i, err)
		}
	}

	data, err := s.encoder.End()
	if err != nil {
		return result, fmt.Errorf("end encoding: %w", err)
	}

	s.logger.Debug("Video encoded: %d bytes", len(data))

	result.VideoData = data
	result.DurationMs = int(float64(input.Source.Len()) * 1000 / input.FPS)
	result.FileSize = int64(len(data))

	return result, nil
}
