package synth

import (
	"errors"
	"image/color"
	"testing"

	"github.com/user/samplegen/pkg/mocks"
)

func TestTileColor(t *testing.T) {
	cases := []struct {
		x, y int
		want color.RGBA
	}{
		{0, 0, color.RGBA{R: 0, G: 0, B: 0, A: 255}},
		{50, 0, color.RGBA{R: 50, G: 0, B: 50, A: 255}},
		{0, 50, color.RGBA{R: 0, G: 50, B: 50, A: 255}},
		{100, 100, color.RGBA{R: 100, G: 100, B: 200, A: 255}},
		{250, 250, color.RGBA{R: 250, G: 250, B: 245, A: 255}},
		// All channels wrap modulo 255.
		{255, 0, color.RGBA{R: 0, G: 0, B: 0, A: 255}},
		{300, 210, color.RGBA{R: 45, G: 210, B: 0, A: 255}},
	}
	for _, c := range cases {
		if got := TileColor(c.x, c.y); got != c.want {
			t.Errorf("TileColor(%d, %d): expected %v, got %v", c.x, c.y, c.want, got)
		}
	}
}

func TestTileGrid_Fill(t *testing.T) {
	canvas := mocks.NewCanvas(200, 120)

	if err := DefaultTileGrid().Fill(canvas, 200, 120); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	rects := canvas.OpsOf("rect")
	// Origins at every multiple of 50 inside the canvas: 4 columns, 3 rows.
	if len(rects) != 12 {
		t.Fatalf("expected 12 tiles, got %d", len(rects))
	}

	i := 0
	for y := 0; y < 120; y += 50 {
		for x := 0; x < 200; x += 50 {
			op := rects[i]
			if op.X != x || op.Y != y {
				t.Errorf("tile %d: expected origin (%d,%d), got (%d,%d)", i, x, y, op.X, op.Y)
			}
			if op.W != 40 || op.H != 40 {
				t.Errorf("tile %d: expected 40x40, got %dx%d", i, op.W, op.H)
			}
			if want := TileColor(x, y); op.Color != want {
				t.Errorf("tile %d: expected color %v, got %v", i, want, op.Color)
			}
			i++
		}
	}
}

func TestTileGrid_Fill_Deterministic(t *testing.T) {
	a := mocks.NewCanvas(300, 300)
	b := mocks.NewCanvas(300, 300)
	grid := DefaultTileGrid()

	if err := grid.Fill(a, 300, 300); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := grid.Fill(b, 300, 300); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(a.Ops) != len(b.Ops) {
		t.Fatalf("op count differs: %d vs %d", len(a.Ops), len(b.Ops))
	}
	for i := range a.Ops {
		if a.Ops[i].X != b.Ops[i].X || a.Ops[i].Y != b.Ops[i].Y || a.Ops[i].Color != b.Ops[i].Color {
			t.Errorf("op %d differs between runs", i)
		}
	}
}

func TestTileGrid_Fill_Invalid(t *testing.T) {
	canvas := mocks.NewCanvas(100, 100)

	if err := DefaultTileGrid().Fill(canvas, 0, 100); !errors.Is(err, ErrInvalidDimensions) {
		t.Errorf("zero width: expected ErrInvalidDimensions, got %v", err)
	}
	if err := (TileGrid{Step: 0, Size: 40}).Fill(canvas, 100, 100); !errors.Is(err, ErrInvalidDimensions) {
		t.Errorf("zero step: expected ErrInvalidDimensions, got %v", err)
	}
	if err := (TileGrid{Step: 50, Size: -1}).Fill(canvas, 100, 100); !errors.Is(err, ErrInvalidDimensions) {
		t.Errorf("negative size: expected ErrInvalidDimensions, got %v", err)
	}
}
