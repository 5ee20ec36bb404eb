// Package mocks provides hand-rolled mock implementations of the ports
// interfaces for tests.
package mocks

import (
	"image"
	"image/color"

	"github.com/user/samplegen/pkg/ports"
)

// Renderer is a mock implementation of ports.Renderer.
type Renderer struct {
	CreateCanvasFunc    func(width, height int, bg color.Color) ports.Canvas
	CanvasFromImageFunc func(img *image.RGBA) ports.Canvas
	EncodeImageFunc     func(img image.Image, format ports.ImageFormat, quality int) ([]byte, error)

	// Recorded calls for verification
	EncodeImageCalls []EncodeImageCall
}

// EncodeImageCall records a call to EncodeImage.
type EncodeImageCall struct {
	Format  ports.ImageFormat
	Quality int
}

func (m *Renderer) CreateCanvas(width, height int, bg color.Color) ports.Canvas {
	if m.CreateCanvasFunc != nil {
		return m.CreateCanvasFunc(width, height, bg)
	}
	return NewCanvas(width, height)
}

func (m *Renderer) CanvasFromImage(img *image.RGBA) ports.Canvas {
	if m.CanvasFromImageFunc != nil {
		return m.CanvasFromImageFunc(img)
	}
	b := img.Bounds()
	c := NewCanvas(b.Dx(), b.Dy())
	c.img = img
	return c
}

func (m *Renderer) EncodeImage(img image.Image, format ports.ImageFormat, quality int) ([]byte, error) {
	m.EncodeImageCalls = append(m.EncodeImageCalls, EncodeImageCall{Format: format, Quality: quality})
	if m.EncodeImageFunc != nil {
		return m.EncodeImageFunc(img, format, quality)
	}
	return []byte{0x89, 0x50}, nil
}

var _ ports.Renderer = (*Renderer)(nil)

// CanvasOp records one drawing operation on the mock canvas.
type CanvasOp struct {
	Op      string // "rect", "rect-stroke", "ellipse", "polygon", "line", "text"
	X, Y    int
	W, H    int
	Color   color.Color
	Text    string
	Points  []image.Point
}

// Canvas is a mock implementation of ports.Canvas that records every
// drawing operation for later verification.
type Canvas struct {
	Width  int
	Height int
	Ops    []CanvasOp

	img *image.RGBA
}

// NewCanvas creates a recording mock canvas.
func NewCanvas(width, height int) *Canvas {
	return &Canvas{Width: width, Height: height}
}

func (m *Canvas) DrawRect(x, y, w, h int, c color.Color) {
	m.Ops = append(m.Ops, CanvasOp{Op: "rect", X: x, Y: y, W: w, H: h, Color: c})
}

func (m *Canvas) DrawRectStroke(x, y, w, h int, c color.Color, strokeWidth float64) {
	m.Ops = append(m.Ops, CanvasOp{Op: "rect-stroke", X: x, Y: y, W: w, H: h, Color: c})
}

func (m *Canvas) DrawEllipse(x, y, w, h int, c color.Color) {
	m.Ops = append(m.Ops, CanvasOp{Op: "ellipse", X: x, Y: y, W: w, H: h, Color: c})
}

func (m *Canvas) DrawEllipseStroke(x, y, w, h int, c color.Color, strokeWidth float64) {
	m.Ops = append(m.Ops, CanvasOp{Op: "ellipse-stroke", X: x, Y: y, W: w, H: h, Color: c})
}

func (m *Canvas) DrawPolygon(points []image.Point, c color.Color) {
	m.Ops = append(m.Ops, CanvasOp{Op: "polygon", Points: points, Color: c})
}

func (m *Canvas) DrawPolygonStroke(points []image.Point, c color.Color, strokeWidth float64) {
	m.Ops = append(m.Ops, CanvasOp{Op: "polygon-stroke", Points: points, Color: c})
}

func (m *Canvas) DrawLine(x1, y1, x2, y2 int, c color.Color, width float64) {
	m.Ops = append(m.Ops, CanvasOp{Op: "line", X: x1, Y: y1, W: x2 - x1, H: y2 - y1, Color: c})
}

func (m *Canvas) DrawText(text string, x, y int, style ports.TextStyle) {
	m.Ops = append(m.Ops, CanvasOp{Op: "text", X: x, Y: y, Color: style.Color, Text: text})
}

// OpsOf returns the recorded operations of one kind, in order.
func (m *Canvas) OpsOf(op string) []CanvasOp {
	var out []CanvasOp
	for _, o := range m.Ops {
		if o.Op == op {
			out = append(out, o)
		}
	}
	return out
}

func (m *Canvas) ToImage() image.Image {
	if m.img != nil {
		return m.img
	}
	return image.NewRGBA(image.Rect(0, 0, m.Width, m.Height))
}

var _ ports.Canvas = (*Canvas)(nil)
