// Package skiztarget holds the render target model: the ordered list of
// drawing primitives the parser produces and the renderer consumes.
package skiztarget

import (
	"github.com/skizlabs/skiz/lib/geo"
)

const (
	DEFAULT_STROKE_WIDTH = 1.5

	// Axis padding applied around the raw extent of a sketch.
	PADDING_RATIO = 0.1
	// Padding used when an axis has zero raw extent, so the bounding box is
	// never degenerate.
	MIN_PADDING = 1.0
)

// Style is the shared per-command styling record. Zero values mean "unset";
// the SVG renderer resolves unset fields to defaults, never the parser.
type Style struct {
	Stroke        string  `json:"stroke,omitempty"`
	StrokeOpacity float64 `json:"strokeOpacity,omitempty"`
	Fill          string  `json:"fill,omitempty"`
	FillOpacity   float64 `json:"fillOpacity,omitempty"`
	StrokeWidth   float64 `json:"strokeWidth,omitempty"`
	DashArray     string  `json:"dashArray,omitempty"`
	MarkerStart   bool    `json:"markerStart,omitempty"`
	MarkerEnd     bool    `json:"markerEnd,omitempty"`
}

// Command is one drawing primitive. The concrete types form a closed set:
// Line, Circle, Ellipse, Rect, Bezier, Text.
type Command interface {
	GetStyle() Style
	// Extent reports every point that contributes to visible geometry.
	Extent() []*geo.Point
}

type Line struct {
	Start *geo.Point `json:"start"`
	End   *geo.Point `json:"end"`
	Style Style      `json:"style"`
}

type Circle struct {
	Center *geo.Point `json:"center"`
	Radius float64    `json:"radius"`
	Style  Style      `json:"style"`
}

type Ellipse struct {
	Center  *geo.Point `json:"center"`
	RadiusX float64    `json:"rx"`
	RadiusY float64    `json:"ry"`
	Style   Style      `json:"style"`
}

type Rect struct {
	Corner1 *geo.Point `json:"corner1"`
	Corner2 *geo.Point `json:"corner2"`
	Style   Style      `json:"style"`
}

type Bezier struct {
	Start    *geo.Point `json:"start"`
	End      *geo.Point `json:"end"`
	Control1 *geo.Point `json:"control1"`
	Control2 *geo.Point `json:"control2"`
	Style    Style      `json:"style"`
}

type Text struct {
	Anchor *geo.Point `json:"anchor"`
	Label  string     `json:"label"`
	Style  Style      `json:"style"`
}

func (c Line) GetStyle() Style    { return c.Style }
func (c Circle) GetStyle() Style  { return c.Style }
func (c Ellipse) GetStyle() Style { return c.Style }
func (c Rect) GetStyle() Style    { return c.Style }
func (c Bezier) GetStyle() Style  { return c.Style }
func (c Text) GetStyle() Style    { return c.Style }

func (c Line) Extent() []*geo.Point {
	return []*geo.Point{c.Start, c.End}
}

func (c Circle) Extent() []*geo.Point {
	return []*geo.Point{
		geo.NewPoint(c.Center.X-c.Radius, c.Center.Y-c.Radius),
		geo.NewPoint(c.Center.X+c.Radius, c.Center.Y+c.Radius),
	}
}

func (c Ellipse) Extent() []*geo.Point {
	return []*geo.Point{
		geo.NewPoint(c.Center.X-c.RadiusX, c.Center.Y-c.RadiusY),
		geo.NewPoint(c.Center.X+c.RadiusX, c.Center.Y+c.RadiusY),
	}
}

func (c Rect) Extent() []*geo.Point {
	return []*geo.Point{c.Corner1, c.Corner2}
}

func (c Bezier) Extent() []*geo.Point {
	return []*geo.Point{c.Start, c.End, c.Control1, c.Control2}
}

func (c Text) Extent() []*geo.Point {
	return []*geo.Point{c.Anchor}
}

// Sketch is an ordered list of commands. Order is source-scan order, which is
// also SVG paint order.
type Sketch struct {
	Commands []Command `json:"commands"`
}

// BoundingBox computes the padded model-space bounds over every command. Each
// axis gets 10% of its raw extent as padding, or 1 model unit when the raw
// extent on that axis is zero, so the result always satisfies MaxX > MinX and
// MaxY > MinY.
func (s *Sketch) BoundingBox() *geo.Box {
	var raw *geo.Box
	for _, c := range s.Commands {
		for _, p := range c.Extent() {
			raw = raw.Expand(p)
		}
	}
	if raw == nil {
		raw = geo.NewBox(geo.NewPoint(0, 0), 0, 0)
	}

	padX := raw.Width * PADDING_RATIO
	if raw.Width == 0 {
		padX = MIN_PADDING
	}
	padY := raw.Height * PADDING_RATIO
	if raw.Height == 0 {
		padY = MIN_PADDING
	}

	return geo.NewBox(
		geo.NewPoint(raw.MinX()-padX, raw.MinY()-padY),
		raw.Width+2*padX,
		raw.Height+2*padY,
	)
}
