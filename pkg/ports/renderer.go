package ports

import (
	"image"
	"image/color"
)

// Renderer abstracts canvas creation and still-image encoding.
type Renderer interface {
	// CreateCanvas creates a new drawing canvas filled with the background color.
	CreateCanvas(width, height int, bg color.Color) Canvas

	// CanvasFromImage wraps an existing RGBA buffer so drawing operations
	// mutate it in place.
	CanvasFromImage(img *image.RGBA) Canvas

	// EncodeImage encodes an image to the specified format.
	// Quality is ignored for lossless formats.
	EncodeImage(img image.Image, format ImageFormat, quality int) ([]byte, error)
}

// Canvas provides the drawing operations used by the synthesis core.
// Coordinates outside the canvas bounds are silently clipped.
type Canvas interface {
	// DrawRect draws a filled rectangle.
	DrawRect(x, y, w, h int, c color.Color)

	// DrawRectStroke draws a rectangle outline.
	DrawRectStroke(x, y, w, h int, c color.Color, strokeWidth float64)

	// DrawEllipse draws a filled ellipse inscribed in the given bounding box.
	DrawEllipse(x, y, w, h int, c color.Color)

	// DrawEllipseStroke draws an ellipse outline inscribed in the bounding box.
	DrawEllipseStroke(x, y, w, h int, c color.Color, strokeWidth float64)

	// DrawPolygon draws a filled polygon from an ordered sequence of points.
	DrawPolygon(points []image.Point, c color.Color)

	// DrawPolygonStroke draws a closed polygon outline.
	DrawPolygonStroke(points []image.Point, c color.Color, strokeWidth float64)

	// DrawLine draws a line between two points.
	DrawLine(x1, y1, x2, y2 int, c color.Color, width float64)

	// DrawText draws text with its top-left corner near (x, y).
	// Font loading failures degrade to a built-in bitmap face.
	DrawText(text string, x, y int, style TextStyle)

	// ToImage returns the canvas as an image.Image.
	ToImage() image.Image
}

// TextStyle defines text rendering properties.
type TextStyle struct {
	FontSize float64
	FontPath string // empty selects the built-in bitmap face
	Color    color.Color
}

// ImageFormat specifies image encoding format.
type ImageFormat int

const (
	FormatJPEG ImageFormat = iota
	FormatPNG
)
