// Package orchestrator drives generation of the fixed artifact set: four
// still images and one synthetic video.
package orchestrator

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/ideamans/go-l10n"

	"github.com/user/samplegen/pkg/pipeline"
	"github.com/user/samplegen/pkg/ports"
)

// Config contains all configuration for a generation run.
type Config struct {
	// OutDir is the directory artifact files are written into.
	OutDir string

	// FontPath is the label font; empty selects the built-in bitmap face.
	FontPath string

	// SkipVideo disables the video artifact regardless of encoder support.
	SkipVideo bool

	// VideoSupport is the startup probe result for the video encoder.
	// When unavailable, the video artifact is skipped with a notice and
	// image generation is unaffected.
	VideoSupport ports.EncoderAvailability

	// Encoding parameters for the video artifact.
	VideoQuality int // CRF 0-63
	VideoBitrate int // kbps, 0 = encoder default
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() Config {
	return Config{
		OutDir:       "samples",
		VideoSupport: ports.EncoderAvailability{Available: true},
		VideoQuality: 30,
	}
}

// stillArtifact is one row of the fixed still-image table.
type stillArtifact struct {
	file    string
	scene   pipeline.Scene
	width   int
	height  int
	format  ports.ImageFormat
	quality int
}

// stillArtifacts returns the fixed set of still-image variants.
func stillArtifacts() []stillArtifact {
	return []stillArtifact{
		{file: "sample_4k.png", scene: pipeline.SceneShowcase, width: 3840, height: 2160, format: ports.FormatPNG},
		{file: "sample_1080p.jpg", scene: pipeline.SceneGradient, width: 1920, height: 1080, format: ports.FormatJPEG, quality: 95},
		{file: "sample_720p.jpg", scene: pipeline.SceneTiles, width: 1280, height: 720, format: ports.FormatJPEG, quality: 90},
		{file: "sample_photo.jpg", scene: pipeline.SceneLandscape, width: 2048, height: 1536, format: ports.FormatJPEG, quality: 85},
	}
}

// Video artifact parameters.
const (
	videoFile    = "sample_video.mp4"
	videoWidth   = 1280
	videoHeight  = 720
	videoFPS     = 30.0
	videoSeconds = 10
	videoCaption = "Compression Test Video"
)

// Orchestrator coordinates the execution of all pipeline stages.
type Orchestrator struct {
	stillStage  pipeline.Stage[pipeline.StillInput, pipeline.StillResult]
	framesStage pipeline.Stage[pipeline.FramesInput, pipeline.FramesResult]
	encodeStage pipeline.Stage[pipeline.EncodeInput, pipeline.EncodeResult]
	renderer    ports.Renderer
	inspector   ports.VideoInspector
	fs          ports.FileSystem
	logger      ports.Logger
}

// New creates a new Orchestrator. inspector may be nil to skip post-write
// video verification.
func New(
	stillStage pipeline.Stage[pipeline.StillInput, pipeline.StillResult],
	framesStage pipeline.Stage[pipeline.FramesInput, pipeline.FramesResult],
	encodeStage pipeline.Stage[pipeline.EncodeInput, pipeline.EncodeResult],
	renderer ports.Renderer,
	inspector ports.VideoInspector,
	fs ports.FileSystem,
	logger ports.Logger,
) *Orchestrator {
	return &Orchestrator{
		stillStage:  stillStage,
		framesStage: framesStage,
		encodeStage: encodeStage,
		renderer:    renderer,
		inspector:   inspector,
		fs:          fs,
		logger:      logger,
	}
}

// ArtifactResult describes one written artifact.
type ArtifactResult struct {
	Name   string
	Path   string
	Width  int
	Height int
	Bytes  int64
}

// RunResult contains the results of a generation run.
type RunResult struct {
	Images []ArtifactResult
	Failed []string // artifact names that were aborted

	VideoWritten bool
	Video        ArtifactResult
	VideoSkipped bool
	SkipReason   string
}

// Run generates every artifact in the fixed table. A failed still
// artifact is logged and skipped; the remaining artifacts still run.
// Only encoding or write failures abort the run.
func (o *Orchestrator) Run(ctx context.Context, config Config) (RunResult, error) {
	result := RunResult{}

	o.logger.Info(l10n.T("Generating sample media fixtures"))

	for _, a := range stillArtifacts() {
		select {
		case <-ctx.Done():
			return result, ctx.Err()
		default:
		}

		still, err := o.stillStage.Execute(ctx, pipeline.StillInput{
			Width:    a.width,
			Height:   a.height,
			Scene:    a.scene,
			FontPath: config.FontPath,
		})
		if err != nil {
			o.logger.Error(l10n.F("Failed to generate %s: %s", a.file, err))
			result.Failed = append(result.Failed, a.file)
			continue
		}

		data, err := o.renderer.EncodeImage(still.Image, a.format, a.quality)
		if err != nil {
			// No fallback path exists for a broken image codec.
			o.logger.Error(l10n.F("Failed to encode %s: %s", a.file, err))
			return result, fmt.Errorf("encode %s: %w", a.file, err)
		}

		path := filepath.Join(config.OutDir, a.file)
		if err := o.fs.WriteFile(path, data); err != nil {
			o.logger.Error(l10n.F("Failed to write %s: %s", a.file, err))
			return result, fmt.Errorf("write %s: %w", a.file, err)
		}

		o.logger.Info(l10n.F("Created %s (%dx%d)", a.file, a.width, a.height))
		result.Images = append(result.Images, ArtifactResult{
			Name:   a.file,
			Path:   path,
			Width:  a.width,
			Height: a.height,
			Bytes:  int64(len(data)),
		})
	}

	if err := o.runVideo(ctx, config, &result); err != nil {
		return result, err
	}

	o.logger.Info(l10n.T("Generation completed"))
	return result, nil
}

// runVideo generates the optional video artifact. The encoder capability
// was probed once at startup; an unavailable encoder yields a skip notice
// instead of an error.
func (o *Orchestrator) runVideo(ctx context.Context, config Config, result *RunResult) error {
	if config.SkipVideo {
		result.VideoSkipped = true
		result.SkipReason = "disabled"
		o.logger.Info(l10n.F("Video generation disabled, skipping %s", videoFile))
		return nil
	}

	if !config.VideoSupport.Available {
		result.VideoSkipped = true
		result.SkipReason = config.VideoSupport.Reason
		o.logger.Warn(l10n.F("Video encoder unavailable, skipping %s: %s", videoFile, config.VideoSupport.Reason))
		o.logger.Warn(l10n.T("Install ffmpeg and make sure it is on PATH to enable video generation"))
		return nil
	}

	frames, err := o.framesStage.Execute(ctx, pipeline.FramesInput{
		Width:       videoWidth,
		Height:      videoHeight,
		TotalFrames: int(videoFPS * videoSeconds),
		FPS:         videoFPS,
		Caption:     videoCaption,
		FontPath:    config.FontPath,
	})
	if err != nil {
		o.logger.Error(l10n.F("Failed to generate %s: %s", videoFile, err))
		return fmt.Errorf("frames stage: %w", err)
	}

	encoded, err := o.encodeStage.Execute(ctx, pipeline.EncodeInput{
		Source:  frames.Source,
		FPS:     videoFPS,
		Quality: config.VideoQuality,
		Bitrate: config.VideoBitrate,
	})
	if err != nil {
		o.logger.Error(l10n.F("Failed to encode %s: %s", videoFile, err))
		return fmt.Errorf("encode stage: %w", err)
	}

	path := filepath.Join(config.OutDir, videoFile)
	if err := o.fs.WriteFile(path, encoded.VideoData); err != nil {
		o.logger.Error(l10n.F("Failed to write %s: %s", videoFile, err))
		return fmt.Errorf("write %s: %w", videoFile, err)
	}

	o.logger.Info(l10n.F("Created %s (%dx%d, %ds)", videoFile, videoWidth, videoHeight, videoSeconds))
	result.VideoWritten = true
	result.Video = ArtifactResult{
		Name:   videoFile,
		Path:   path,
		Width:  videoWidth,
		Height: videoHeight,
		Bytes:  encoded.FileSize,
	}

	if o.inspector != nil {
		if info, err := o.inspector.Inspect(encoded.VideoData); err != nil {
			o.logger.Debug("Could not verify video: %s", err)
		} else {
			o.logger.Debug("Video verified: %s %dx%d, %d frames", info.Codec, info.Width, info.Height, info.FrameCount)
		}
	}

	return nil
}
