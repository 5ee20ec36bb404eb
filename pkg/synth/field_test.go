package synth

import (
	"bytes"
	"image"
	"testing"
)

func TestFieldColor_Deterministic(t *testing.T) {
	for _, frame := range []int{0, 1, 150, 299} {
		a := FieldColor(17, 42, frame)
		b := FieldColor(17, 42, frame)
		if a != b {
			t.Errorf("frame %d: recomputation differs: %v vs %v", frame, a, b)
		}
	}
}

func TestFieldColor_Origin(t *testing.T) {
	// At frame 0 every phase is zero, so sin(0) = 0 and all channels sit
	// at the midpoint.
	got := FieldColor(0, 0, 0)
	if got.R != 128 || got.G != 128 || got.B != 128 || got.A != 255 {
		t.Errorf("expected (128,128,128,255) at the origin of frame 0, got %v", got)
	}
}

func TestFieldColor_ChannelPhases(t *testing.T) {
	// R depends on x only, G on y only, B on x+y.
	if a, b := FieldColor(30, 0, 7), FieldColor(30, 99, 7); a.R != b.R {
		t.Errorf("R should not depend on y: %d vs %d", a.R, b.R)
	}
	if a, b := FieldColor(0, 40, 7), FieldColor(99, 40, 7); a.G != b.G {
		t.Errorf("G should not depend on x: %d vs %d", a.G, b.G)
	}
	if a, b := FieldColor(10, 30, 7), FieldColor(25, 15, 7); a.B != b.B {
		t.Errorf("B should depend on x+y only: %d vs %d", a.B, b.B)
	}
}

func TestFieldColor_VariesAcrossFrames(t *testing.T) {
	a := FieldColor(100, 100, 0)
	b := FieldColor(100, 100, 15)
	if a == b {
		t.Error("expected the field to change between frames 0 and 15")
	}
}

func TestFillField_MatchesFieldColor(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 16, 9))
	FillField(img, 3)

	for _, p := range []image.Point{{0, 0}, {5, 4}, {15, 8}, {7, 0}, {0, 8}} {
		want := FieldColor(p.X, p.Y, 3)
		got := img.RGBAAt(p.X, p.Y)
		if got != want {
			t.Errorf("pixel (%d,%d): expected %v, got %v", p.X, p.Y, want, got)
		}
	}
}

func TestFillField_Restartable(t *testing.T) {
	a := image.NewRGBA(image.Rect(0, 0, 32, 18))
	b := image.NewRGBA(image.Rect(0, 0, 32, 18))
	FillField(a, 42)
	FillField(b, 42)
	if !bytes.Equal(a.Pix, b.Pix) {
		t.Error("two fills of the same frame should be bit-identical")
	}
}
