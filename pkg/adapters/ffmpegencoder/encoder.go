// Package ffmpegencoder provides H.264/MP4 video encoding through an
// external ffmpeg process. Raw RGBA frames are piped to ffmpeg's stdin
// and the finished MP4 is read back from a temporary file.
//
// The encoder is optional: Detect probes for the executable once at
// startup and callers branch on the result instead of failing mid-run.
package ffmpegencoder

import (
	"fmt"
	"image"
	"image/draw"
	"io"
	"os"
	"os/exec"
	"runtime"
	"sync"

	"github.com/user/samplegen/pkg/ports"
)

// Detect probes for a usable ffmpeg executable. customPath, when not
// empty, is checked before the standard locations.
func Detect(customPath string) ports.EncoderAvailability {
	if _, err := findFFmpeg(customPath); err != nil {
		return ports.EncoderAvailability{Available: false, Reason: err.Error()}
	}
	return ports.EncoderAvailability{Available: true}
}

// findFFmpeg searches for ffmpeg in the custom path, PATH, and common
// install locations.
func findFFmpeg(customPath string) (string, error) {
	if customPath != "" {
		if _, err := os.Stat(customPath); err == nil {
			return customPath, nil
		}
		return "", fmt.Errorf("%w: %s", ErrFFmpegNotFound, customPath)
	}

	execName := "ffmpeg"
	if runtime.GOOS == "windows" {
		execName = "ffmpeg.exe"
	}
	if path, err := exec.LookPath(execName); err == nil {
		return path, nil
	}

	var commonPaths []string
	if runtime.GOOS == "windows" {
		commonPaths = []string{
			`C:\ffmpeg\bin\ffmpeg.exe`,
			`C:\Program Files\ffmpeg\bin\ffmpeg.exe`,
		}
	} else {
		commonPaths = []string{
			"/usr/bin/ffmpeg",
			"/usr/local/bin/ffmpeg",
			"/opt/homebrew/bin/ffmpeg",
			"/snap/bin/ffmpeg",
		}
	}
	for _, p := range commonPaths {
		if _, err := os.Stat(p); err == nil {
			return p, nil
		}
	}

	return "", ErrFFmpegNotFound
}

// Encoder implements ports.VideoEncoder by piping raw frames to ffmpeg.
type Encoder struct {
	customPath string

	mu       sync.Mutex
	width    int
	height   int
	cmd      *exec.Cmd
	stdin    io.WriteCloser
	tempPath string
}

// New creates a new Encoder. customPath overrides ffmpeg discovery when
// not empty.
func New(customPath string) *Encoder {
	return &Encoder{customPath: customPath}
}

// Begin starts the ffmpeg process for the given dimensions and frame rate.
func (e *Encoder) Begin(width, height int, fps float64, opts ports.EncoderOptions) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	ffmpegPath, err := findFFmpeg(e.customPath)
	if err != nil {
		return err
	}

	e.width = width
	e.height = height

	tmpFile, err := os.CreateTemp("", "samplegen_*.mp4")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	e.tempPath = tmpFile.Name()
	tmpFile.Close()

	args := []string{
		"-y",
		"-f", "rawvideo",
		"-pix_fmt", "rgba",
		"-s", fmt.Sprintf("%dx%d", width, height),
		"-r", fmt.Sprintf("%.2f", fps),
		"-i", "pipe:0",
		"-c:v", "libx264",
		"-preset", "fast",
		"-pix_fmt", "yuv420p",
	}

	if opts.Quality > 0 && opts.Quality <= 63 {
		// Map our 0-63 scale to x264's CRF range (0-51).
		crf := opts.Quality * 51 / 63
		if crf > 51 {
			crf = 51
		}
		args = append(args, "-crf", fmt.Sprintf("%d", crf))
	} else {
		args = append(args, "-crf", "23")
	}

	if opts.Bitrate > 0 {
		args = append(args, "-b:v", fmt.Sprintf("%dk", opts.Bitrate))
	}

	args = append(args,
		"-profile:v", "baseline",
		"-level", "3.1",
		"-movflags", "+faststart",
		e.tempPath,
	)

	e.cmd = exec.Command(ffmpegPath, args...)
	e.cmd.Stderr = io.Discard

	stdin, err := e.cmd.StdinPipe()
	if err != nil {
		os.Remove(e.tempPath)
		return fmt.Errorf("stdin pipe: %w", err)
	}
	e.stdin = stdin

	if err := e.cmd.Start(); err != nil {
		os.Remove(e.tempPath)
		return fmt.Errorf("start ffmpeg: %w", err)
	}

	return nil
}

// EncodeFrame writes one frame to the encoder. Frames are positional in
// the output; they must be submitted in presentation order.
func (e *Encoder) EncodeFrame(img image.Image, timestampMs int) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.stdin == nil {
		return ErrNotInitialized
	}

	rgba, ok := img.(*image.RGBA)
	if !ok || rgba.Bounds().Dx() != e.width || rgba.Bounds().Dy() != e.height {
		converted := image.NewRGBA(image.Rect(0, 0, e.width, e.height))
		draw.Draw(converted, converted.Bounds(), img, img.Bounds().Min, draw.Src)
		rgba = converted
	}

	if _, err := e.stdin.Write(rgba.Pix); err != nil {
		return fmt.Errorf("write frame: %w", err)
	}
	return nil
}

// End closes the input stream, waits for ffmpeg to finish and returns the
// MP4 data.
func (e *Encoder) End() ([]byte, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.stdin == nil {
		return nil, ErrNotInitialized
	}

	e.stdin.Close()
	e.stdin = nil

	if err := e.cmd.Wait(); err != nil {
		os.Remove(e.tempPath)
		return nil, fmt.Errorf("ffmpeg encoding failed: %w", err)
	}
	e.cmd = nil

	data, err := os.ReadFile(e.tempPath)
	os.Remove(e.tempPath)
	e.tempPath = ""
	if err != nil {
		return nil, fmt.Errorf("read output: %w", err)
	}

	return data, nil
}

// Ensure Encoder implements ports.VideoEncoder
var _ ports.VideoEncoder = (*Encoder)(nil)
