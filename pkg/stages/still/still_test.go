package still

import (
	"bytes"
	"context"
	"errors"
	"image"
	"image/color"
	"testing"

	"github.com/user/samplegen/pkg/adapters/ggrenderer"
	"github.com/user/samplegen/pkg/adapters/logger"
	"github.com/user/samplegen/pkg/mocks"
	"github.com/user/samplegen/pkg/pipeline"
	"github.com/user/samplegen/pkg/synth"
)

func newTestStage() *Stage {
	return NewStage(ggrenderer.New(), mocks.NewDebugSink(false), logger.NewNoop())
}

func TestStage_Execute_Dimensions(t *testing.T) {
	stage := newTestStage()

	cases := []struct {
		scene         pipeline.Scene
		width, height int
	}{
		{pipeline.SceneShowcase, 640, 360},
		{pipeline.SceneGradient, 480, 270},
		{pipeline.SceneTiles, 320, 180},
		{pipeline.SceneLandscape, 512, 384},
	}

	for _, c := range cases {
		result, err := stage.Execute(context.Background(), pipeline.StillInput{
			Width:  c.width,
			Height: c.height,
			Scene:  c.scene,
		})
		if err != nil {
			t.Fatalf("%s: unexpected error: %v", c.scene, err)
		}
		b := result.Image.Bounds()
		if b.Dx() != c.width || b.Dy() != c.height {
			t.Errorf("%s: expected %dx%d, got %dx%d", c.scene, c.width, c.height, b.Dx(), b.Dy())
		}
	}
}

func TestStage_Execute_InvalidDimensions(t *testing.T) {
	stage := newTestStage()

	for _, dims := range [][2]int{{0, 100}, {100, 0}, {-5, 100}} {
		_, err := stage.Execute(context.Background(), pipeline.StillInput{
			Width:  dims[0],
			Height: dims[1],
			Scene:  pipeline.SceneGradient,
		})
		if !errors.Is(err, synth.ErrInvalidDimensions) {
			t.Errorf("dims %v: expected ErrInvalidDimensions, got %v", dims, err)
		}
	}
}

func TestStage_Execute_UnknownScene(t *testing.T) {
	stage := newTestStage()
	_, err := stage.Execute(context.Background(), pipeline.StillInput{
		Width:  100,
		Height: 100,
		Scene:  pipeline.Scene(99),
	})
	if err == nil {
		t.Error("expected an error for an unknown scene")
	}
}

func TestStage_Execute_GradientScene(t *testing.T) {
	stage := newTestStage()

	result, err := stage.Execute(context.Background(), pipeline.StillInput{
		Width:  1920,
		Height: 1080,
		Scene:  pipeline.SceneGradient,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	img := result.Image
	// Sample a row below the labels. Blue on the left, red on the right,
	// green constant at 100.
	left := color.RGBAModel.Convert(img.At(0, 600)).(color.RGBA)
	if left.R > 2 || left.B < 253 || left.G != 100 {
		t.Errorf("left edge: expected approximately (0,100,255), got %v", left)
	}
	right := color.RGBAModel.Convert(img.At(1919, 600)).(color.RGBA)
	if right.R < 253 || right.B > 2 || right.G != 100 {
		t.Errorf("right edge: expected approximately (255,100,0), got %v", right)
	}

	prev := -1
	for x := 0; x < 1920; x += 64 {
		r := int(color.RGBAModel.Convert(img.At(x, 600)).(color.RGBA).R)
		if r < prev {
			t.Fatalf("red channel not monotonic at x=%d: %d < %d", x, r, prev)
		}
		prev = r
	}
}

func TestStage_Execute_TilesScene(t *testing.T) {
	stage := newTestStage()

	result, err := stage.Execute(context.Background(), pipeline.StillInput{
		Width:  300,
		Height: 200,
		Scene:  pipeline.SceneTiles,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	img := result.Image
	// Interior of the tile at origin (100, 150), away from the labels.
	got := color.RGBAModel.Convert(img.At(110, 160)).(color.RGBA)
	if want := synth.TileColor(100, 150); got != want {
		t.Errorf("tile interior: expected %v, got %v", want, got)
	}
	// Gap between tiles shows the orange background.
	gap := color.RGBAModel.Convert(img.At(145, 160)).(color.RGBA)
	if gap.R != 255 || gap.G != 165 || gap.B != 0 {
		t.Errorf("tile gap: expected the orange background, got %v", gap)
	}
}

func TestStage_Execute_LandscapeScene(t *testing.T) {
	stage := newTestStage()

	result, err := stage.Execute(context.Background(), pipeline.StillInput{
		Width:  2048,
		Height: 1536,
		Scene:  pipeline.SceneLandscape,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	img := result.Image
	// Sky at y=0: (135, 155, 255).
	sky := color.RGBAModel.Convert(img.At(1800, 0)).(color.RGBA)
	if sky.R != 135 || sky.G != 155 || sky.B != 255 {
		t.Errorf("sky top row: expected (135,155,255), got %v", sky)
	}
	// Ground at y=535 away from the mountains: v=34+(35/1036)*100=37.
	ground := color.RGBAModel.Convert(img.At(2040, 535)).(color.RGBA)
	if ground.R != 37 || ground.G != 87 || ground.B != 37 {
		t.Errorf("ground row: expected (37,87,37), got %v", ground)
	}
	// Inside the first mountain slope: gray.
	mountain := color.RGBAModel.Convert(img.At(300, 450)).(color.RGBA)
	if mountain.R != 128 || mountain.G != 128 || mountain.B != 128 {
		t.Errorf("mountain interior: expected gray, got %v", mountain)
	}
}

func TestStage_Execute_Deterministic(t *testing.T) {
	stage := newTestStage()
	input := pipeline.StillInput{Width: 480, Height: 270, Scene: pipeline.SceneGradient}

	a, err := stage.Execute(context.Background(), input)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	b, err := stage.Execute(context.Background(), input)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	imgA, ok := a.Image.(*image.RGBA)
	if !ok {
		t.Fatalf("expected *image.RGBA, got %T", a.Image)
	}
	imgB := b.Image.(*image.RGBA)
	if !bytes.Equal(imgA.Pix, imgB.Pix) {
		t.Error("two renders of the same scene should be bit-identical")
	}
}

func TestStage_Execute_DebugSink(t *testing.T) {
	sink := mocks.NewDebugSink(true)
	stage := NewStage(ggrenderer.New(), sink, logger.NewNoop())

	_, err := stage.Execute(context.Background(), pipeline.StillInput{
		Width:  100,
		Height: 100,
		Scene:  pipeline.SceneTiles,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(sink.StillNames) != 1 || sink.StillNames[0] != "tiles" {
		t.Errorf("expected the sink to record the tiles still, got %v", sink.StillNames)
	}
}
