package still

import (
	"image"
	"image/color"

	"github.com/user/samplegen/pkg/pipeline"
	"github.com/user/samplegen/pkg/ports"
	"github.com/user/samplegen/pkg/synth"
)

// CSS named colors used by the fixture scenes.
var (
	colorSkyBlue    = color.RGBA{R: 135, G: 206, B: 235, A: 255}
	colorLightGreen = color.RGBA{R: 144, G: 238, B: 144, A: 255}
	colorOrange     = color.RGBA{R: 255, G: 165, B: 0, A: 255}
	colorLightBlue  = color.RGBA{R: 173, G: 216, B: 230, A: 255}
	colorRed        = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	colorGreen      = color.RGBA{R: 0, G: 128, B: 0, A: 255}
	colorBlue       = color.RGBA{R: 0, G: 0, B: 255, A: 255}
	colorGray       = color.RGBA{R: 128, G: 128, B: 128, A: 255}
)

// skyHeight is where the landscape scene's sky band ends and the ground
// band begins.
const skyHeight = 500

// mountainRange is the fixed polygon stamped over the landscape bands.
var mountainRange = []image.Point{
	{X: 0, Y: 500},
	{X: 300, Y: 200},
	{X: 600, Y: 350},
	{X: 900, Y: 150},
	{X: 1200, Y: 300},
	{X: 1500, Y: 100},
	{X: 1800, Y: 250},
	{X: 2048, Y: 180},
	{X: 2048, Y: 500},
}

// paintShowcase draws the 4K sample: a sky blue background with an
// outlined rectangle and ellipse.
func (s *Stage) paintShowcase(input pipeline.StillInput) (ports.Canvas, error) {
	canvas := s.renderer.CreateCanvas(input.Width, input.Height, colorSkyBlue)

	synth.Draw(canvas, synth.Rectangle(100, 100, 1000, 600, colorRed).WithOutline(color.Black, 5))
	synth.Draw(canvas, synth.Ellipse(2000, 500, 3500, 1500, colorGreen).WithOutline(colorBlue, 10))

	synth.Stamp(canvas, input.FontPath,
		synth.Label{Text: "Sample 4K Image", X: 200, Y: 200},
		synth.Label{Text: "Compression Test Fixture", X: 200, Y: 300},
	)
	return canvas, nil
}

// paintGradient draws the 1080p sample: a horizontal gradient from blue
// to red, one column per pass.
func (s *Stage) paintGradient(input pipeline.StillInput) (ports.Canvas, error) {
	canvas := s.renderer.CreateCanvas(input.Width, input.Height, colorLightGreen)

	spec := synth.GradientSpec{
		Axis: synth.AxisHorizontal,
		At: func(t float64) color.RGBA {
			v := int(255 * t)
			return color.RGBA{R: synth.Clamp(v), G: 100, B: synth.Clamp(255 - v), A: 255}
		},
	}
	if err := synth.FillGradient(canvas, input.Width, input.Height, spec); err != nil {
		return nil, err
	}

	synth.Stamp(canvas, input.FontPath,
		synth.Label{Text: "Sample 1080p Image", X: 100, Y: 100},
		synth.Label{Text: "Gradient Background", X: 100, Y: 150},
	)
	return canvas, nil
}

// paintTiles draws the 720p sample: a strided tile pattern over an orange
// background.
func (s *Stage) paintTiles(input pipeline.StillInput) (ports.Canvas, error) {
	canvas := s.renderer.CreateCanvas(input.Width, input.Height, colorOrange)

	if err := synth.DefaultTileGrid().Fill(canvas, input.Width, input.Height); err != nil {
		return nil, err
	}

	synth.Stamp(canvas, input.FontPath,
		synth.Label{Text: "Sample 720p Image", X: 50, Y: 50},
		synth.Label{Text: "Pattern Background", X: 50, Y: 100},
	)
	return canvas, nil
}

// paintLandscape draws the photo-like sample: a brightening sky band over
// a darkening ground band with a gray mountain polygon between them.
func (s *Stage) paintLandscape(input pipeline.StillInput) (ports.Canvas, error) {
	canvas := s.renderer.CreateCanvas(input.Width, input.Height, colorLightBlue)

	skyEnd := skyHeight
	if skyEnd > input.Height {
		skyEnd = input.Height
	}

	err := synth.FillBand(canvas, input.Width, 0, skyEnd, func(y int) color.RGBA {
		v := int(135 + float64(y)/float64(skyHeight)*120)
		return color.RGBA{R: synth.Clamp(v), G: synth.Clamp(v + 20), B: 255, A: 255}
	})
	if err != nil {
		return nil, err
	}

	if input.Height > skyEnd {
		groundSpan := float64(input.Height - skyEnd)
		err = synth.FillBand(canvas, input.Width, skyEnd, input.Height, func(y int) color.RGBA {
			v := int(34 + float64(y-skyEnd)/groundSpan*100)
			return color.RGBA{R: synth.Clamp(v), G: synth.Clamp(v + 50), B: synth.Clamp(v), A: 255}
		})
		if err != nil {
			return nil, err
		}
	}

	synth.Draw(canvas, synth.Polygon(colorGray, mountainRange...))

	synth.Stamp(canvas, input.FontPath,
		synth.Label{Text: "Sample Photo-like Image", X: 100, Y: 1400},
		synth.Label{Text: "Landscape Simulation", X: 100, Y: 1450},
	)
	return canvas, nil
}
