package synth

import (
	"image"
	"image/color"

	"github.com/user/samplegen/pkg/ports"
)

// ShapeKind discriminates the Shape variant.
type ShapeKind int

const (
	KindRectangle ShapeKind = iota
	KindEllipse
	KindPolygon
)

// Shape is a tagged variant of the drawable primitives. Min/Max hold the
// corners for rectangles and the bounding box for ellipses; Points holds
// the ordered vertices for polygons.
type Shape struct {
	Kind         ShapeKind
	Min, Max     image.Point
	Points       []image.Point
	Fill         color.Color
	Outline      color.Color // nil for no outline
	OutlineWidth float64
}

// Rectangle creates a filled rectangle shape from two corners.
func Rectangle(x0, y0, x1, y1 int, fill color.Color) Shape {
	return Shape{
		Kind: KindRectangle,
		Min:  image.Point{X: x0, Y: y0},
		Max:  image.Point{X: x1, Y: y1},
		Fill: fill,
	}
}

// Ellipse creates a filled ellipse shape inscribed in the bounding box.
func Ellipse(x0, y0, x1, y1 int, fill color.Color) Shape {
	return Shape{
		Kind: KindEllipse,
		Min:  image.Point{X: x0, Y: y0},
		Max:  image.Point{X: x1, Y: y1},
		Fill: fill,
	}
}

// Polygon creates a filled polygon shape from an ordered vertex sequence.
func Polygon(fill color.Color, points ...image.Point) Shape {
	return Shape{
		Kind:   KindPolygon,
		Points: points,
		Fill:   fill,
	}
}

// WithOutline returns a copy of the shape with an outline.
func (s Shape) WithOutline(c color.Color, width float64) Shape {
	s.Outline = c
	s.OutlineWidth = width
	return s
}

// Draw rasterizes the shape onto the canvas, fill first, then outline.
// Coordinates outside the canvas are clipped by the canvas, never reported.
func Draw(c ports.Canvas, s Shape) {
	switch s.Kind {
	case KindRectangle:
		w := s.Max.X - s.Min.X
		h := s.Max.Y - s.Min.Y
		c.DrawRect(s.Min.X, s.Min.Y, w, h, s.Fill)
		if s.Outline != nil {
			c.DrawRectStroke(s.Min.X, s.Min.Y, w, h, s.Outline, s.OutlineWidth)
		}
	case KindEllipse:
		w := s.Max.X - s.Min.X
		h := s.Max.Y - s.Min.Y
		c.DrawEllipse(s.Min.X, s.Min.Y, w, h, s.Fill)
		if s.Outline != nil {
			c.DrawEllipseStroke(s.Min.X, s.Min.Y, w, h, s.Outline, s.OutlineWidth)
		}
	case KindPolygon:
		if len(s.Points) < 3 {
			return
		}
		c.DrawPolygon(s.Points, s.Fill)
		if s.Outline != nil {
			c.DrawPolygonStroke(s.Points, s.Outline, s.OutlineWidth)
		}
	}
}
