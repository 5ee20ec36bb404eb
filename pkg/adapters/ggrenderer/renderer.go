// Package ggrenderer provides a renderer implementation using the gg library.
package ggrenderer

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"

	"github.com/fogleman/gg"
	"golang.org/x/image/font/basicfont"

	"github.com/user/samplegen/pkg/ports"
)

// Renderer implements ports.Renderer using the gg library.
type Renderer struct{}

// New creates a new Renderer.
func New() *Renderer {
	return &Renderer{}
}

// CreateCanvas creates a new drawing canvas filled with the background color.
func (r *Renderer) CreateCanvas(width, height int, bg color.Color) ports.Canvas {
	dc := gg.NewContext(width, height)
	dc.SetColor(bg)
	dc.Clear()
	return &Canvas{dc: dc}
}

// CanvasFromImage wraps an existing RGBA buffer; drawing mutates it in place.
func (r *Renderer) CanvasFromImage(img *image.RGBA) ports.Canvas {
	return &Canvas{dc: gg.NewContextForRGBA(img)}
}

// EncodeImage encodes an image to the specified format.
func (r *Renderer) EncodeImage(img image.Image, format ports.ImageFormat, quality int) ([]byte, error) {
	var buf bytes.Buffer

	switch format {
	case ports.FormatJPEG:
		opts := &jpeg.Options{Quality: quality}
		if err := jpeg.Encode(&buf, img, opts); err != nil {
			return nil, fmt.Errorf("encode JPEG: %w", err)
		}
	case ports.FormatPNG:
		if err := png.Encode(&buf, img); err != nil {
			return nil, fmt.Errorf("encode PNG: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported format: %d", format)
	}

	return buf.Bytes(), nil
}

// Ensure Renderer implements ports.Renderer
var _ ports.Renderer = (*Renderer)(nil)

// Canvas implements ports.Canvas using gg.Context. Drawing outside the
// context bounds is clipped by the rasterizer.
type Canvas struct {
	dc *gg.Context
}

// DrawRect draws a filled rectangle.
func (c *Canvas) DrawRect(x, y, w, h int, col color.Color) {
	c.dc.SetColor(col)
	c.dc.DrawRectangle(float64(x), float64(y), float64(w), float64(h))
	c.dc.Fill()
}

// DrawRectStroke draws a rectangle outline.
func (c *Canvas) DrawRectStroke(x, y, w, h int, col color.Color, strokeWidth float64) {
	c.dc.SetColor(col)
	c.dc.SetLineWidth(strokeWidth)
	c.dc.DrawRectangle(float64(x), float64(y), float64(w), float64(h))
	c.dc.Stroke()
}

// DrawEllipse draws a filled ellipse inscribed in the bounding box.
func (c *Canvas) DrawEllipse(x, y, w, h int, col color.Color) {
	c.dc.SetColor(col)
	c.dc.DrawEllipse(c.ellipseGeometry(x, y, w, h))
	c.dc.Fill()
}

// DrawEllipseStroke draws an ellipse outline inscribed in the bounding box.
func (c *Canvas) DrawEllipseStroke(x, y, w, h int, col color.Color, strokeWidth float64) {
	c.dc.SetColor(col)
	c.dc.SetLineWidth(strokeWidth)
	c.dc.DrawEllipse(c.ellipseGeometry(x, y, w, h))
	c.dc.Stroke()
}

// ellipseGeometry converts a bounding box to center and radii.
func (c *Canvas) ellipseGeometry(x, y, w, h int) (cx, cy, rx, ry float64) {
	rx = float64(w) / 2
	ry = float64(h) / 2
	cx = float64(x) + rx
	cy = float64(y) + ry
	return cx, cy, rx, ry
}

// DrawPolygon draws a filled polygon.
func (c *Canvas) DrawPolygon(points []image.Point, col color.Color) {
	if len(points) < 3 {
		return
	}
	c.dc.SetColor(col)
	c.tracePolygon(points)
	c.dc.Fill()
}

// DrawPolygonStroke draws a closed polygon outline.
func (c *Canvas) DrawPolygonStroke(points []image.Point, col color.Color, strokeWidth float64) {
	if len(points) < 2 {
		return
	}
	c.dc.SetColor(col)
	c.dc.SetLineWidth(strokeWidth)
	c.tracePolygon(points)
	c.dc.Stroke()
}

func (c *Canvas) tracePolygon(points []image.Point) {
	c.dc.NewSubPath()
	c.dc.MoveTo(float64(points[0].X), float64(points[0].Y))
	for _, p := range points[1:] {
		c.dc.LineTo(float64(p.X), float64(p.Y))
	}
	c.dc.ClosePath()
}

// DrawLine draws a line between two points.
func (c *Canvas) DrawLine(x1, y1, x2, y2 int, col color.Color, width float64) {
	c.dc.SetColor(col)
	c.dc.SetLineWidth(width)
	c.dc.DrawLine(float64(x1), float64(y1), float64(x2), float64(y2))
	c.dc.Stroke()
}

// DrawText draws text with its top-left corner near (x, y). A missing or
// unreadable font falls back to the built-in bitmap face instead of failing.
func (c *Canvas) DrawText(text string, x, y int, style ports.TextStyle) {
	c.dc.SetColor(style.Color)

	loaded := false
	if style.FontPath != "" {
		if err := c.dc.LoadFontFace(style.FontPath, style.FontSize); err == nil {
			loaded = true
		}
	}
	if !loaded {
		c.dc.SetFontFace(basicfont.Face7x13)
	}

	// Anchor (0, 1) places the baseline one line height below y,
	// approximating a top-left anchor.
	c.dc.DrawStringAnchored(text, float64(x), float64(y), 0, 1)
}

// ToImage returns the canvas as an image.Image.
func (c *Canvas) ToImage() image.Image {
	return c.dc.Image()
}

// Ensure Canvas implements ports.Canvas
var _ ports.Canvas = (*Canvas)(nil)
