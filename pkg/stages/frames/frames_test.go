package frames

import (
	"bytes"
	"context"
	"errors"
	"image"
	"testing"

	"github.com/user/samplegen/pkg/adapters/ggrenderer"
	"github.com/user/samplegen/pkg/adapters/logger"
	"github.com/user/samplegen/pkg/mocks"
	"github.com/user/samplegen/pkg/pipeline"
	"github.com/user/samplegen/pkg/synth"
)

func smallInput() pipeline.FramesInput {
	return pipeline.FramesInput{
		Width:       32,
		Height:      18,
		TotalFrames: 300,
		FPS:         30,
		Caption:     "Compression Test Video",
	}
}

func TestStage_Execute(t *testing.T) {
	stage := NewStage(ggrenderer.New(), mocks.NewDebugSink(false), logger.NewNoop())

	result, err := stage.Execute(context.Background(), smallInput())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Source == nil {
		t.Fatal("expected a frame source")
	}
	if result.Source.Len() != 300 {
		t.Errorf("expected 300 frames, got %d", result.Source.Len())
	}
}

func TestSequence_Timestamps(t *testing.T) {
	src, err := NewSequence(ggrenderer.New(), nil, smallInput())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	cases := []struct {
		index int
		want  int
	}{
		{0, 0},
		{1, 33},
		{30, 1000},
		{150, 5000},
		{299, 9967},
	}
	for _, c := range cases {
		frame, err := src.Frame(c.index)
		if err != nil {
			t.Fatalf("frame %d: unexpected error: %v", c.index, err)
		}
		if frame.Index != c.index {
			t.Errorf("frame %d: index mismatch: %d", c.index, frame.Index)
		}
		if frame.TimestampMs != c.want {
			t.Errorf("frame %d: expected timestamp %dms, got %dms", c.index, c.want, frame.TimestampMs)
		}
	}
}

func TestSequence_FrameMatchesField(t *testing.T) {
	// With an 18-pixel-high canvas every label anchor falls outside the
	// drawable area, so the frame is the bare color field.
	src, err := NewSequence(ggrenderer.New(), nil, smallInput())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	frame, err := src.Frame(3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	img := frame.Image.(*image.RGBA)
	for _, p := range []image.Point{{0, 0}, {5, 4}, {31, 17}} {
		want := synth.FieldColor(p.X, p.Y, 3)
		if got := img.RGBAAt(p.X, p.Y); got != want {
			t.Errorf("pixel (%d,%d): expected %v, got %v", p.X, p.Y, want, got)
		}
	}
}

func TestSequence_Restartable(t *testing.T) {
	src, err := NewSequence(ggrenderer.New(), nil, smallInput())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	a, err := src.Frame(7)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// Read other frames in between, then re-request index 7.
	if _, err := src.Frame(200); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	b, err := src.Frame(7)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !bytes.Equal(a.Image.(*image.RGBA).Pix, b.Image.(*image.RGBA).Pix) {
		t.Error("re-requesting a frame index should yield identical pixels")
	}
}

func TestSequence_IndexOutOfRange(t *testing.T) {
	src, err := NewSequence(ggrenderer.New(), nil, smallInput())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for _, index := range []int{-1, 300, 1000} {
		if _, err := src.Frame(index); err == nil {
			t.Errorf("index %d: expected an out-of-range error", index)
		}
	}
}

func TestNewSequence_Invalid(t *testing.T) {
	r := ggrenderer.New()

	bad := smallInput()
	bad.Width = 0
	if _, err := NewSequence(r, nil, bad); !errors.Is(err, synth.ErrInvalidDimensions) {
		t.Errorf("zero width: expected ErrInvalidDimensions, got %v", err)
	}

	bad = smallInput()
	bad.TotalFrames = 0
	if _, err := NewSequence(r, nil, bad); err == nil {
		t.Error("zero frame count: expected an error")
	}

	bad = smallInput()
	bad.FPS = 0
	if _, err := NewSequence(r, nil, bad); err == nil {
		t.Error("zero fps: expected an error")
	}
}

func TestSequence_DebugSink(t *testing.T) {
	sink := mocks.NewDebugSink(true)
	src, err := NewSequence(ggrenderer.New(), sink, smallInput())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, err := src.Frame(5); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(sink.FrameIndexes) != 1 || sink.FrameIndexes[0] != 5 {
		t.Errorf("expected the sink to record frame 5, got %v", sink.FrameIndexes)
	}
}
