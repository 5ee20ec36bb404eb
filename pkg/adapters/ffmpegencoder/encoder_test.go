package ffmpegencoder

import (
	"errors"
	"image"
	"testing"

	"github.com/user/samplegen/pkg/ports"
)

func TestDetect_BogusCustomPath(t *testing.T) {
	avail := Detect("/no/such/ffmpeg")
	if avail.Available {
		t.Fatal("expected a nonexistent custom path to be unavailable")
	}
	if avail.Reason == "" {
		t.Error("expected a diagnostic reason")
	}
}

func TestEncoder_NotInitialized(t *testing.T) {
	e := New("")

	img := image.NewRGBA(image.Rect(0, 0, 4, 4))
	if err := e.EncodeFrame(img, 0); !errors.Is(err, ErrNotInitialized) {
		t.Errorf("EncodeFrame before Begin: expected ErrNotInitialized, got %v", err)
	}
	if _, err := e.End(); !errors.Is(err, ErrNotInitialized) {
		t.Errorf("End before Begin: expected ErrNotInitialized, got %v", err)
	}
}

func TestEncoder_BeginWithBogusPath(t *testing.T) {
	e := New("/no/such/ffmpeg")

	err := e.Begin(64, 36, 30, ports.EncoderOptions{Quality: 30})
	if !errors.Is(err, ErrFFmpegNotFound) {
		t.Errorf("expected ErrFFmpegNotFound, got %v", err)
	}
}
